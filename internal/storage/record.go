// Package storage persists knowledge-domain records and re-enforces the
// balance invariants at the write boundary. Every stored compliance flag is
// recomputed from the values in the same write; caller-supplied flags are
// never trusted.
package storage

// DualityRecord is the durable form of a domain duality.
type DualityRecord struct {
	ID            string  `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	PositiveName  string  `db:"positive_name" json:"positive_name"`
	PositiveValue float64 `db:"positive_value" json:"positive_value"`
	NegativeName  string  `db:"negative_name" json:"negative_name"`
	NegativeValue float64 `db:"negative_value" json:"negative_value"`
	Balanced      bool    `db:"is_balanced" json:"is_balanced"`
}

// DomainRecord is the durable form of a domain. The duality pole values are
// denormalized into the record so the compliance flag can be recomputed from
// the record alone; an empty DualityName means no duality is attached.
type DomainRecord struct {
	ID            string  `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	Type          string  `db:"domain_type" json:"type"`
	Description   string  `db:"description" json:"description"`
	State         string  `db:"state" json:"state"`
	Active        bool    `db:"is_active" json:"is_active"`
	DualityName   string  `db:"duality_name" json:"duality_name,omitempty"`
	PositiveName  string  `db:"positive_name" json:"positive_name,omitempty"`
	PositiveValue float64 `db:"positive_value" json:"positive_value,omitempty"`
	NegativeName  string  `db:"negative_name" json:"negative_name,omitempty"`
	NegativeValue float64 `db:"negative_value" json:"negative_value,omitempty"`
	Compliant     bool    `db:"compliant" json:"compliant"`
}

// ConceptRecord is the durable form of a concept.
type ConceptRecord struct {
	ID          string  `db:"id" json:"id"`
	DomainID    string  `db:"domain_id" json:"domain_id"`
	Name        string  `db:"name" json:"name"`
	Type        string  `db:"concept_type" json:"type"`
	Description string  `db:"description" json:"description"`
	Certainty   float64 `db:"certainty" json:"certainty"`
	Uncertainty float64 `db:"uncertainty" json:"uncertainty"`
	Balanced    bool    `db:"is_balanced" json:"is_balanced"`
}

// RelationRecord is the durable form of a relation between two domains.
type RelationRecord struct {
	ID           string  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Type         string  `db:"relation_type" json:"type"`
	SourceDomain string  `db:"source_domain" json:"source_domain"`
	TargetDomain string  `db:"target_domain" json:"target_domain"`
	Give         float64 `db:"influence_give" json:"influence_give"`
	Receive      float64 `db:"influence_receive" json:"influence_receive"`
	Balanced     bool    `db:"is_balanced" json:"is_balanced"`
}

// Stats summarizes a store's contents.
type Stats struct {
	Domains          int     `json:"total_domains"`
	Concepts         int     `json:"total_concepts"`
	CompliantDomains int     `json:"compliant_domains"`
	ComplianceRate   float64 `json:"compliance_rate"`
}
