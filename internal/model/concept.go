package model

import (
	"math"

	"github.com/google/uuid"

	"noesis/internal/equilibrium"
)

// ConceptType classifies a concept within a domain.
type ConceptType string

const (
	ConceptAxiom      ConceptType = "axiom"
	ConceptTheorem    ConceptType = "theorem"
	ConceptHypothesis ConceptType = "hypothesis"
	ConceptDefinition ConceptType = "definition"
	ConceptPrinciple  ConceptType = "principle"
	ConceptLaw        ConceptType = "law"
	ConceptTheory     ConceptType = "theory"
	ConceptModel      ConceptType = "model"
)

// Concept owns a certainty/uncertainty pair targeting 50/50. Enforcement is
// lazy and corrective: validation renormalizes the stored values in place
// and reports the result. It never fails.
type Concept struct {
	ID          uuid.UUID
	DomainID    uuid.UUID
	Name        string
	Type        ConceptType
	Description string
	Certainty   float64
	Uncertainty float64

	balanced bool
}

// NewConcept creates a concept whose uncertainty complements the given
// certainty to 100.
func NewConcept(name string, typ ConceptType, description string, certainty float64) *Concept {
	c := &Concept{
		ID:          uuid.New(),
		Name:        name,
		Type:        typ,
		Description: description,
		Certainty:   certainty,
		Uncertainty: 100 - certainty,
	}
	c.ValidateBalance()
	return c
}

// ValidateBalance renormalizes certainty/uncertainty to sum to 100 by
// proportional rescale (50/50 when both are zero), then reports whether the
// renormalized certainty sits at 50 within tolerance. Repeated calls are
// idempotent once renormalized.
func (c *Concept) ValidateBalance() bool {
	total := c.Certainty + c.Uncertainty
	if total > 0 {
		c.Certainty = c.Certainty / total * 100
		c.Uncertainty = c.Uncertainty / total * 100
	} else {
		c.Certainty = 50
		c.Uncertainty = 50
	}
	c.balanced = math.Abs(c.Certainty-equilibrium.DefaultTarget) < equilibrium.DefaultEpsilon
	return c.balanced
}

func (c *Concept) IsBalanced() bool {
	return c.balanced
}

// Balance returns the current certainty/uncertainty values.
func (c *Concept) Balance() (float64, float64) {
	return c.Certainty, c.Uncertainty
}

// AdjustCertainty shifts certainty by delta, clamped to [0, 100], with
// uncertainty adjusting inversely so the pair keeps summing to 100.
func (c *Concept) AdjustCertainty(delta float64) {
	c.Certainty = math.Max(0, math.Min(100, c.Certainty+delta))
	c.Uncertainty = 100 - c.Certainty
}
