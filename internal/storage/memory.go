package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps records in process memory. Writes run the same sync
// guards as the durable backends.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	domains     map[string]DomainRecord
	dualities   map[string]DualityRecord
	relations   map[string]RelationRecord
	concepts    map[string][]ConceptRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.domains = make(map[string]DomainRecord)
	s.dualities = make(map[string]DualityRecord)
	s.relations = make(map[string]RelationRecord)
	s.concepts = make(map[string][]ConceptRecord)
	return nil
}

func (s *MemoryStore) SaveDomain(_ context.Context, rec DomainRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.domains[rec.Name] = SyncDomain(rec)
	return nil
}

func (s *MemoryStore) GetDomain(_ context.Context, name string) (DomainRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.domains[name]
	return rec, ok, nil
}

func (s *MemoryStore) ListDomains(_ context.Context) ([]DomainRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]DomainRecord, 0, len(s.domains))
	for _, rec := range s.domains {
		out = append(out, rec)
	}
	return out, nil
}

func (s *MemoryStore) DeleteDomain(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.domains[name]; ok {
		delete(s.concepts, rec.ID)
	}
	delete(s.domains, name)
	return nil
}

func (s *MemoryStore) SaveDuality(_ context.Context, rec DualityRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dualities[rec.Name] = SyncDuality(rec)
	return nil
}

func (s *MemoryStore) GetDuality(_ context.Context, name string) (DualityRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.dualities[name]
	return rec, ok, nil
}

func (s *MemoryStore) SaveConcept(_ context.Context, rec ConceptRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec = SyncConcept(rec)
	list := s.concepts[rec.DomainID]
	for i, existing := range list {
		if existing.ID == rec.ID {
			list[i] = rec
			return nil
		}
	}
	s.concepts[rec.DomainID] = append(list, rec)
	return nil
}

func (s *MemoryStore) ConceptsForDomain(_ context.Context, domainID string) ([]ConceptRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.concepts[domainID]
	out := make([]ConceptRecord, len(list))
	copy(out, list)
	return out, nil
}

func (s *MemoryStore) SaveRelation(_ context.Context, rec RelationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.relations[rec.Name] = SyncRelation(rec)
	return nil
}

func (s *MemoryStore) GetRelation(_ context.Context, name string) (RelationRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.relations[name]
	return rec, ok, nil
}

func (s *MemoryStore) Stats(_ context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{Domains: len(s.domains)}
	for _, list := range s.concepts {
		stats.Concepts += len(list)
	}
	for _, rec := range s.domains {
		if rec.Compliant {
			stats.CompliantDomains++
		}
	}
	if stats.Domains > 0 {
		stats.ComplianceRate = float64(stats.CompliantDomains) / float64(stats.Domains) * 100
	} else {
		stats.ComplianceRate = 100
	}
	return stats, nil
}
