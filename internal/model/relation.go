package model

import (
	"github.com/google/uuid"

	"noesis/internal/equilibrium"
)

// RelationType classifies a relation between two concepts.
type RelationType string

const (
	RelationDerivesFrom RelationType = "derives_from"
	RelationImplies     RelationType = "implies"
	RelationContradicts RelationType = "contradicts"
	RelationSupports    RelationType = "supports"
	RelationExtends     RelationType = "extends"
	RelationSpecializes RelationType = "specializes"
	RelationGeneralizes RelationType = "generalizes"
	RelationEquivalent  RelationType = "equivalent"
)

// ConceptRelation links two concepts with a strength scalar. A scalar has no
// complementary pair to check, so its balance contract degenerates to always
// valid; it exists for interface uniformity.
type ConceptRelation struct {
	ID            uuid.UUID
	SourceID      uuid.UUID
	TargetID      uuid.UUID
	Type          RelationType
	Strength      float64
	Bidirectional bool
}

func NewConceptRelation(source, target *Concept, typ RelationType, strength float64) *ConceptRelation {
	return &ConceptRelation{
		ID:       uuid.New(),
		SourceID: source.ID,
		TargetID: target.ID,
		Type:     typ,
		Strength: strength,
	}
}

func (r *ConceptRelation) ValidateBalance() bool { return true }

func (r *ConceptRelation) IsBalanced() bool { return true }

// DomainRelation links two domains with give/receive influence values. Its
// check is one-sided: only the give percentage is compared against 50. A
// zero-total pair is vacuously balanced. Validation never renormalizes and
// never fails; an unbalanced relation is only flagged.
type DomainRelation struct {
	ID      uuid.UUID
	Name    string
	Source  *Domain
	Target  *Domain
	Type    string
	Give    float64
	Receive float64

	balanced bool
}

func NewDomainRelation(name string, source, target *Domain, give, receive float64) *DomainRelation {
	r := &DomainRelation{
		ID:      uuid.New(),
		Name:    name,
		Source:  source,
		Target:  target,
		Type:    "bidirectional",
		Give:    give,
		Receive: receive,
	}
	r.ValidateBalance()
	return r
}

// ValidateBalance checks only the give share against the 50 target. The
// receive side is deliberately ignored even when the pair sums correctly.
func (r *DomainRelation) ValidateBalance() bool {
	r.balanced = equilibrium.IsBalancedAt(r.Give, r.Receive, equilibrium.DefaultTarget, equilibrium.DefaultEpsilon)
	return r.balanced
}

func (r *DomainRelation) IsBalanced() bool {
	return r.balanced
}

// Balance returns the give/receive percentage split.
func (r *DomainRelation) Balance() (float64, float64) {
	return equilibrium.PercentageSplit(r.Give, r.Receive)
}

// TotalInfluence is the sum of give and receive.
func (r *DomainRelation) TotalInfluence() float64 {
	return r.Give + r.Receive
}
