package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"noesis/internal/equilibrium"
)

// DomainType classifies how a domain came to be.
type DomainType string

const (
	DomainFundamental DomainType = "fundamental"
	DomainDerived     DomainType = "derived"
	DomainComposite   DomainType = "composite"
	DomainEmergent    DomainType = "emergent"
)

// DomainState tracks a domain's lifecycle.
type DomainState string

const (
	StateNascent  DomainState = "nascent"
	StateActive   DomainState = "active"
	StateEvolving DomainState = "evolving"
	StateStable   DomainState = "stable"
	StateArchived DomainState = "archived"
)

// Domain is a knowledge domain: at most one duality, a set of concepts and
// attributes, outgoing/incoming relations to other domains, and sub-domains.
// Domain compliance means exactly that its duality is balanced; sub-domain
// compliance is tracked and surfaced separately, never folded in.
type Domain struct {
	id          uuid.UUID
	name        string
	typ         DomainType
	description string
	state       DomainState
	registry    *equilibrium.Registry

	duality     *Duality
	concepts    []*Concept
	conceptIdx  map[uuid.UUID]*Concept
	conceptRels []*ConceptRelation
	attributes  []Attribute
	outgoing    []*DomainRelation
	incoming    []*DomainRelation
	subDomains  []*Domain
}

// NewDomain creates a nascent domain bound to the given registry. A nil
// registry gets a fresh isolated one.
func NewDomain(name string, typ DomainType, description string, reg *equilibrium.Registry) *Domain {
	if reg == nil {
		reg = equilibrium.NewRegistry()
	}
	return &Domain{
		id:          uuid.New(),
		name:        name,
		typ:         typ,
		description: description,
		state:       StateNascent,
		registry:    reg,
		conceptIdx:  make(map[uuid.UUID]*Concept),
	}
}

func (d *Domain) ID() uuid.UUID { return d.id }

func (d *Domain) Name() string { return d.name }

func (d *Domain) Type() DomainType { return d.typ }

func (d *Domain) Description() string { return d.description }

func (d *Domain) State() DomainState { return d.state }

func (d *Domain) Duality() *Duality { return d.duality }

func (d *Domain) Registry() *equilibrium.Registry { return d.registry }

// SetDuality constructs and eagerly validates the domain's duality, then
// registers the pair under the duality name. An empty dualityName defaults
// to "<domain>_duality". Failure aborts domain setup.
func (d *Domain) SetDuality(positiveName string, positiveValue float64, negativeName string, negativeValue float64, dualityName string) error {
	if dualityName == "" {
		dualityName = d.name + "_duality"
	}
	duality, err := NewDuality(dualityName,
		Pole{Name: positiveName, Value: positiveValue},
		Pole{Name: negativeName, Value: negativeValue},
	)
	if err != nil {
		return err
	}
	d.duality = duality
	return d.registry.Register(dualityName, positiveValue, negativeValue)
}

// Activate transitions the domain to active. It fails with a construction
// invariant error when no duality is set or the duality is unbalanced.
func (d *Domain) Activate() error {
	if d.duality == nil {
		return fmt.Errorf("activate domain %q: %w", d.name, ErrNoDuality)
	}
	if !d.duality.ValidateBalance() {
		pa, pb := d.duality.Balance()
		return &ImbalanceError{
			Name:         d.duality.Name,
			PositiveName: d.duality.Positive.Name,
			NegativeName: d.duality.Negative.Name,
			PositivePct:  pa,
			NegativePct:  pb,
		}
	}
	d.state = StateActive
	return nil
}

// Stabilize marks an active domain stable.
func (d *Domain) Stabilize() error {
	if d.state != StateActive {
		return fmt.Errorf("stabilize domain %q: %w", d.name, ErrNotActive)
	}
	d.state = StateStable
	return nil
}

// AddConcept attaches a concept to the domain.
func (d *Domain) AddConcept(c *Concept) {
	c.DomainID = d.id
	d.concepts = append(d.concepts, c)
	d.conceptIdx[c.ID] = c
}

// CreateConcept builds, attaches, and returns a concept.
func (d *Domain) CreateConcept(name string, typ ConceptType, description string, certainty float64) *Concept {
	c := NewConcept(name, typ, description, certainty)
	d.AddConcept(c)
	return c
}

// Concept returns an attached concept by ID.
func (d *Domain) Concept(id uuid.UUID) (*Concept, bool) {
	c, ok := d.conceptIdx[id]
	return c, ok
}

// ConceptByName returns an attached concept by case-insensitive name.
func (d *Domain) ConceptByName(name string) (*Concept, bool) {
	for _, c := range d.concepts {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return nil, false
}

// Concepts returns the attached concepts in attachment order.
func (d *Domain) Concepts() []*Concept {
	out := make([]*Concept, len(d.concepts))
	copy(out, d.concepts)
	return out
}

// AddConceptRelation attaches a relation between two of the domain's
// concepts.
func (d *Domain) AddConceptRelation(r *ConceptRelation) {
	d.conceptRels = append(d.conceptRels, r)
}

// ConceptRelations returns the attached concept relations in attachment
// order.
func (d *Domain) ConceptRelations() []*ConceptRelation {
	out := make([]*ConceptRelation, len(d.conceptRels))
	copy(out, d.conceptRels)
	return out
}

// RelationsFor returns every concept relation touching the given concept.
func (d *Domain) RelationsFor(conceptID uuid.UUID) []*ConceptRelation {
	var out []*ConceptRelation
	for _, r := range d.conceptRels {
		if r.SourceID == conceptID || r.TargetID == conceptID {
			out = append(out, r)
		}
	}
	return out
}

// AddAttribute derives and stores a 52/48-split attribute.
func (d *Domain) AddAttribute(name string, total float64) Attribute {
	attr := NewAttribute(name, total)
	d.attributes = append(d.attributes, attr)
	return attr
}

func (d *Domain) Attributes() []Attribute {
	out := make([]Attribute, len(d.attributes))
	copy(out, d.attributes)
	return out
}

// AddRelation records a domain relation on the appropriate side. A relation
// where this domain is neither source nor target is ignored.
func (d *Domain) AddRelation(r *DomainRelation) {
	if r.Source == d {
		d.outgoing = append(d.outgoing, r)
	}
	if r.Target == d {
		d.incoming = append(d.incoming, r)
	}
}

func (d *Domain) Outgoing() []*DomainRelation {
	out := make([]*DomainRelation, len(d.outgoing))
	copy(out, d.outgoing)
	return out
}

func (d *Domain) Incoming() []*DomainRelation {
	out := make([]*DomainRelation, len(d.incoming))
	copy(out, d.incoming)
	return out
}

// AddSubDomain attaches a sub-domain.
func (d *Domain) AddSubDomain(sub *Domain) {
	d.subDomains = append(d.subDomains, sub)
}

// SubDomains returns direct sub-domains in attachment order.
func (d *Domain) SubDomains() []*Domain {
	out := make([]*Domain, len(d.subDomains))
	copy(out, d.subDomains)
	return out
}

// Compliant recomputes and reports the domain's own compliance: a duality is
// set and balanced. Sub-domains do not participate.
func (d *Domain) Compliant() bool {
	if d.duality == nil {
		return false
	}
	return d.duality.ValidateBalance()
}
