// Package catalog builds knowledge domains from declarative descriptors.
// One generic constructor driven by data replaces per-domain constructors:
// a descriptor names the domain, its duality poles, and its concept,
// relation, and attribute seeds.
package catalog

import (
	"errors"
	"fmt"

	"noesis/internal/equilibrium"
	"noesis/internal/model"
)

var (
	ErrMissingName  = errors.New("descriptor name is required")
	ErrMissingPoles = errors.New("descriptor duality poles are required")
	ErrUnknownSeed  = errors.New("relation seed references unknown concept")
)

// DualitySpec names the duality poles and their values. Zero values for both
// poles mean the default 50/50.
type DualitySpec struct {
	Name          string  `yaml:"name,omitempty" json:"name,omitempty"`
	PositiveName  string  `yaml:"positive" json:"positive"`
	PositiveValue float64 `yaml:"positive_value,omitempty" json:"positive_value,omitempty"`
	NegativeName  string  `yaml:"negative" json:"negative"`
	NegativeValue float64 `yaml:"negative_value,omitempty" json:"negative_value,omitempty"`
}

// ConceptSeed declares one concept. A zero Certainty means the default 50.
type ConceptSeed struct {
	Name        string  `yaml:"name" json:"name"`
	Type        string  `yaml:"type,omitempty" json:"type,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Certainty   float64 `yaml:"certainty,omitempty" json:"certainty,omitempty"`
}

// RelationSeed declares a relation between two seeded concepts, by name.
// A zero Strength means the default 50.
type RelationSeed struct {
	Source   string  `yaml:"source" json:"source"`
	Target   string  `yaml:"target" json:"target"`
	Type     string  `yaml:"type,omitempty" json:"type,omitempty"`
	Strength float64 `yaml:"strength,omitempty" json:"strength,omitempty"`
}

// AttributeSeed declares a scalar attribute; its 52/48 split is derived at
// build time.
type AttributeSeed struct {
	Name  string  `yaml:"name" json:"name"`
	Total float64 `yaml:"total" json:"total"`
}

// Descriptor declares one knowledge domain.
type Descriptor struct {
	Name        string          `yaml:"name" json:"name"`
	Type        string          `yaml:"type,omitempty" json:"type,omitempty"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Duality     DualitySpec     `yaml:"duality" json:"duality"`
	Attributes  []AttributeSeed `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Concepts    []ConceptSeed   `yaml:"concepts,omitempty" json:"concepts,omitempty"`
	Relations   []RelationSeed  `yaml:"relations,omitempty" json:"relations,omitempty"`
	SubDomains  []Descriptor    `yaml:"sub_domains,omitempty" json:"sub_domains,omitempty"`
}

func (d Descriptor) validate() error {
	if d.Name == "" {
		return ErrMissingName
	}
	if d.Duality.PositiveName == "" || d.Duality.NegativeName == "" {
		return fmt.Errorf("%w: domain %q", ErrMissingPoles, d.Name)
	}
	for _, sub := range d.SubDomains {
		if err := sub.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (d DualitySpec) values() (float64, float64) {
	if d.PositiveValue == 0 && d.NegativeValue == 0 {
		return 50, 50
	}
	return d.PositiveValue, d.NegativeValue
}

func domainType(s string) model.DomainType {
	switch model.DomainType(s) {
	case model.DomainDerived, model.DomainComposite, model.DomainEmergent:
		return model.DomainType(s)
	default:
		return model.DomainFundamental
	}
}

func conceptType(s string) model.ConceptType {
	switch model.ConceptType(s) {
	case model.ConceptAxiom, model.ConceptTheorem, model.ConceptHypothesis,
		model.ConceptPrinciple, model.ConceptLaw, model.ConceptTheory, model.ConceptModel:
		return model.ConceptType(s)
	default:
		return model.ConceptDefinition
	}
}

func relationType(s string) model.RelationType {
	switch model.RelationType(s) {
	case model.RelationImplies, model.RelationContradicts, model.RelationSupports,
		model.RelationExtends, model.RelationSpecializes, model.RelationGeneralizes,
		model.RelationEquivalent:
		return model.RelationType(s)
	default:
		return model.RelationDerivesFrom
	}
}

// Build constructs and activates a domain from its descriptor. Duality
// imbalance surfaces as the construction error, untouched.
func Build(desc Descriptor, reg *equilibrium.Registry) (*model.Domain, error) {
	if err := desc.validate(); err != nil {
		return nil, err
	}

	domain := model.NewDomain(desc.Name, domainType(desc.Type), desc.Description, reg)

	pos, neg := desc.Duality.values()
	if err := domain.SetDuality(desc.Duality.PositiveName, pos, desc.Duality.NegativeName, neg, desc.Duality.Name); err != nil {
		return nil, fmt.Errorf("build domain %q: %w", desc.Name, err)
	}
	if err := domain.Activate(); err != nil {
		return nil, err
	}

	for _, seed := range desc.Attributes {
		domain.AddAttribute(seed.Name, seed.Total)
	}

	for _, seed := range desc.Concepts {
		certainty := seed.Certainty
		if certainty == 0 {
			certainty = 50
		}
		domain.CreateConcept(seed.Name, conceptType(seed.Type), seed.Description, certainty)
	}

	for _, seed := range desc.Relations {
		source, ok := domain.ConceptByName(seed.Source)
		if !ok {
			return nil, fmt.Errorf("%w: %q in domain %q", ErrUnknownSeed, seed.Source, desc.Name)
		}
		target, ok := domain.ConceptByName(seed.Target)
		if !ok {
			return nil, fmt.Errorf("%w: %q in domain %q", ErrUnknownSeed, seed.Target, desc.Name)
		}
		strength := seed.Strength
		if strength == 0 {
			strength = 50
		}
		domain.AddConceptRelation(model.NewConceptRelation(source, target, relationType(seed.Type), strength))
	}

	for _, subDesc := range desc.SubDomains {
		sub, err := Build(subDesc, domain.Registry())
		if err != nil {
			return nil, err
		}
		domain.AddSubDomain(sub)
	}

	return domain, nil
}

// BuildHierarchy builds every descriptor against one shared registry and
// collects the domains into a hierarchy.
func BuildHierarchy(name string, descs []Descriptor, reg *equilibrium.Registry) (*model.Hierarchy, error) {
	if reg == nil {
		reg = equilibrium.NewRegistry()
	}
	h := model.NewHierarchy(name)
	for _, desc := range descs {
		domain, err := Build(desc, reg)
		if err != nil {
			return nil, err
		}
		h.AddRoot(domain)
	}
	return h, nil
}
