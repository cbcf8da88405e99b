package storage

import "context"

// Store defines persistence operations for knowledge-domain records. Every
// Save runs the matching sync guard on the record actually written, inside
// the backend's transaction where one exists.
type Store interface {
	Init(ctx context.Context) error
	SaveDomain(ctx context.Context, rec DomainRecord) error
	GetDomain(ctx context.Context, name string) (DomainRecord, bool, error)
	ListDomains(ctx context.Context) ([]DomainRecord, error)
	DeleteDomain(ctx context.Context, name string) error
	SaveDuality(ctx context.Context, rec DualityRecord) error
	GetDuality(ctx context.Context, name string) (DualityRecord, bool, error)
	SaveConcept(ctx context.Context, rec ConceptRecord) error
	ConceptsForDomain(ctx context.Context, domainID string) ([]ConceptRecord, error)
	SaveRelation(ctx context.Context, rec RelationRecord) error
	GetRelation(ctx context.Context, name string) (RelationRecord, bool, error)
	Stats(ctx context.Context) (Stats, error)
}
