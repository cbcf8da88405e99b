//go:build sqlite

package storage

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sqlx.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func newSQLiteStore(path string) (Store, error) {
	return NewSQLiteStore(path), nil
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sqlx.Open("sqlite", s.path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveDomain(ctx context.Context, rec DomainRecord) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	rec = SyncDomain(rec)
	_, err = db.NamedExecContext(ctx, `
		INSERT INTO domains (
			id, name, domain_type, description, state, is_active,
			duality_name, positive_name, positive_value, negative_name, negative_value,
			compliant
		) VALUES (
			:id, :name, :domain_type, :description, :state, :is_active,
			:duality_name, :positive_name, :positive_value, :negative_name, :negative_value,
			:compliant
		)
		ON CONFLICT(name) DO UPDATE SET
			id = excluded.id,
			domain_type = excluded.domain_type,
			description = excluded.description,
			state = excluded.state,
			is_active = excluded.is_active,
			duality_name = excluded.duality_name,
			positive_name = excluded.positive_name,
			positive_value = excluded.positive_value,
			negative_name = excluded.negative_name,
			negative_value = excluded.negative_value,
			compliant = excluded.compliant
	`, rec)
	return err
}

func (s *SQLiteStore) GetDomain(ctx context.Context, name string) (DomainRecord, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return DomainRecord{}, false, err
	}

	var rec DomainRecord
	err = db.GetContext(ctx, &rec, `SELECT * FROM domains WHERE name = ?`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DomainRecord{}, false, nil
		}
		return DomainRecord{}, false, err
	}
	return rec, true, nil
}

func (s *SQLiteStore) ListDomains(ctx context.Context) ([]DomainRecord, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	var recs []DomainRecord
	if err := db.SelectContext(ctx, &recs, `SELECT * FROM domains ORDER BY name`); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *SQLiteStore) DeleteDomain(ctx context.Context, name string) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.GetContext(ctx, &id, `SELECT id FROM domains WHERE name = ?`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM concepts WHERE domain_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM domains WHERE name = ?`, name); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) SaveDuality(ctx context.Context, rec DualityRecord) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	rec = SyncDuality(rec)
	_, err = db.NamedExecContext(ctx, `
		INSERT INTO dualities (
			id, name, positive_name, positive_value, negative_name, negative_value, is_balanced
		) VALUES (
			:id, :name, :positive_name, :positive_value, :negative_name, :negative_value, :is_balanced
		)
		ON CONFLICT(name) DO UPDATE SET
			id = excluded.id,
			positive_name = excluded.positive_name,
			positive_value = excluded.positive_value,
			negative_name = excluded.negative_name,
			negative_value = excluded.negative_value,
			is_balanced = excluded.is_balanced
	`, rec)
	return err
}

func (s *SQLiteStore) GetDuality(ctx context.Context, name string) (DualityRecord, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return DualityRecord{}, false, err
	}

	var rec DualityRecord
	err = db.GetContext(ctx, &rec, `SELECT * FROM dualities WHERE name = ?`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DualityRecord{}, false, nil
		}
		return DualityRecord{}, false, err
	}
	return rec, true, nil
}

func (s *SQLiteStore) SaveConcept(ctx context.Context, rec ConceptRecord) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	rec = SyncConcept(rec)
	_, err = db.NamedExecContext(ctx, `
		INSERT INTO concepts (
			id, domain_id, name, concept_type, description,
			certainty, uncertainty, is_balanced
		) VALUES (
			:id, :domain_id, :name, :concept_type, :description,
			:certainty, :uncertainty, :is_balanced
		)
		ON CONFLICT(id) DO UPDATE SET
			domain_id = excluded.domain_id,
			name = excluded.name,
			concept_type = excluded.concept_type,
			description = excluded.description,
			certainty = excluded.certainty,
			uncertainty = excluded.uncertainty,
			is_balanced = excluded.is_balanced
	`, rec)
	return err
}

func (s *SQLiteStore) ConceptsForDomain(ctx context.Context, domainID string) ([]ConceptRecord, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	var recs []ConceptRecord
	err = db.SelectContext(ctx, &recs, `SELECT * FROM concepts WHERE domain_id = ? ORDER BY name`, domainID)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *SQLiteStore) SaveRelation(ctx context.Context, rec RelationRecord) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	rec = SyncRelation(rec)
	_, err = db.NamedExecContext(ctx, `
		INSERT INTO relations (
			id, name, relation_type, source_domain, target_domain,
			influence_give, influence_receive, is_balanced
		) VALUES (
			:id, :name, :relation_type, :source_domain, :target_domain,
			:influence_give, :influence_receive, :is_balanced
		)
		ON CONFLICT(name) DO UPDATE SET
			id = excluded.id,
			relation_type = excluded.relation_type,
			source_domain = excluded.source_domain,
			target_domain = excluded.target_domain,
			influence_give = excluded.influence_give,
			influence_receive = excluded.influence_receive,
			is_balanced = excluded.is_balanced
	`, rec)
	return err
}

func (s *SQLiteStore) GetRelation(ctx context.Context, name string) (RelationRecord, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return RelationRecord{}, false, err
	}

	var rec RelationRecord
	err = db.GetContext(ctx, &rec, `SELECT * FROM relations WHERE name = ?`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RelationRecord{}, false, nil
		}
		return RelationRecord{}, false, err
	}
	return rec, true, nil
}

func (s *SQLiteStore) Stats(ctx context.Context) (Stats, error) {
	db, err := s.getDB()
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	err = db.GetContext(ctx, &stats.Domains, `SELECT COUNT(*) FROM domains`)
	if err != nil {
		return Stats{}, err
	}
	if err := db.GetContext(ctx, &stats.Concepts, `SELECT COUNT(*) FROM concepts`); err != nil {
		return Stats{}, err
	}
	err = db.GetContext(ctx, &stats.CompliantDomains, `SELECT COUNT(*) FROM domains WHERE compliant`)
	if err != nil {
		return Stats{}, err
	}
	if stats.Domains == 0 {
		stats.ComplianceRate = 100
	} else {
		stats.ComplianceRate = float64(stats.CompliantDomains) / float64(stats.Domains) * 100
	}
	return stats, nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sqlx.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS domains (
			id TEXT NOT NULL,
			name TEXT PRIMARY KEY,
			domain_type TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 0,
			duality_name TEXT NOT NULL DEFAULT '',
			positive_name TEXT NOT NULL DEFAULT '',
			positive_value REAL NOT NULL DEFAULT 0,
			negative_name TEXT NOT NULL DEFAULT '',
			negative_value REAL NOT NULL DEFAULT 0,
			compliant INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS dualities (
			id TEXT NOT NULL,
			name TEXT PRIMARY KEY,
			positive_name TEXT NOT NULL,
			positive_value REAL NOT NULL,
			negative_name TEXT NOT NULL,
			negative_value REAL NOT NULL,
			is_balanced INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS concepts (
			id TEXT PRIMARY KEY,
			domain_id TEXT NOT NULL,
			name TEXT NOT NULL,
			concept_type TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			certainty REAL NOT NULL,
			uncertainty REAL NOT NULL,
			is_balanced INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS relations (
			id TEXT NOT NULL,
			name TEXT PRIMARY KEY,
			relation_type TEXT NOT NULL,
			source_domain TEXT NOT NULL,
			target_domain TEXT NOT NULL,
			influence_give REAL NOT NULL,
			influence_receive REAL NOT NULL,
			is_balanced INTEGER NOT NULL DEFAULT 0
		);
	`)
	return err
}
