package model

import (
	"errors"
	"testing"

	"noesis/internal/equilibrium"
)

func TestDomainLifecycle(t *testing.T) {
	d := NewDomain("psychology", DomainFundamental, "study of mind and behavior", nil)
	if d.State() != StateNascent {
		t.Fatalf("state = %s, want nascent", d.State())
	}

	if err := d.SetDuality("conscious", 50, "unconscious", 50, ""); err != nil {
		t.Fatalf("set duality: %v", err)
	}
	if d.Duality().Name != "psychology_duality" {
		t.Fatalf("default duality name = %s", d.Duality().Name)
	}

	if err := d.Activate(); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if d.State() != StateActive {
		t.Fatalf("state = %s, want active", d.State())
	}

	if err := d.Stabilize(); err != nil {
		t.Fatalf("stabilize: %v", err)
	}
	if d.State() != StateStable {
		t.Fatalf("state = %s, want stable", d.State())
	}
}

func TestDomainActivateWithoutDuality(t *testing.T) {
	d := NewDomain("empty", DomainFundamental, "", nil)
	err := d.Activate()
	if !errors.Is(err, ErrNoDuality) {
		t.Fatalf("expected ErrNoDuality, got %v", err)
	}
	if !errors.Is(err, ErrConstructionInvariant) {
		t.Fatal("missing duality must surface as a construction invariant failure")
	}
	if d.State() != StateNascent {
		t.Fatal("failed activation must not change state")
	}
}

func TestDomainSetDualityRejectsImbalance(t *testing.T) {
	d := NewDomain("skewed", DomainFundamental, "", nil)
	err := d.SetDuality("order", 60, "chaos", 40, "")
	if !errors.Is(err, ErrConstructionInvariant) {
		t.Fatalf("expected construction invariant error, got %v", err)
	}
	if d.Duality() != nil {
		t.Fatal("failed duality must not attach")
	}
}

func TestDomainStabilizeRequiresActive(t *testing.T) {
	d := NewDomain("nascent", DomainFundamental, "", nil)
	if err := d.Stabilize(); !errors.Is(err, ErrNotActive) {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}
}

func TestDomainRegistersDualityPair(t *testing.T) {
	reg := equilibrium.NewRegistry()
	d := NewDomain("music", DomainFundamental, "", reg)
	if err := d.SetDuality("sound", 50, "silence", 50, ""); err != nil {
		t.Fatalf("set duality: %v", err)
	}

	params := reg.Enumerate()
	if len(params) != 1 || params[0].Name != "music_duality" {
		t.Fatalf("registry parameters: %+v", params)
	}
}

func TestDomainCompliance(t *testing.T) {
	d := NewDomain("ecology", DomainFundamental, "", nil)
	if d.Compliant() {
		t.Fatal("domain without duality must be non-compliant")
	}

	if err := d.SetDuality("growth", 50, "decay", 50, ""); err != nil {
		t.Fatalf("set duality: %v", err)
	}
	if !d.Compliant() {
		t.Fatal("balanced duality must make the domain compliant")
	}

	d.Duality().Positive.Value = 80
	if d.Compliant() {
		t.Fatal("compliance must recompute from current pole values")
	}
}

func TestDomainConceptsAndAttributes(t *testing.T) {
	d := NewDomain("mathematics", DomainFundamental, "", nil)

	c := d.CreateConcept("Set", ConceptDefinition, "a collection of elements", 50)
	if c.DomainID != d.ID() {
		t.Fatal("concept must be bound to owning domain")
	}
	if got, ok := d.ConceptByName("set"); !ok || got != c {
		t.Fatal("case-insensitive concept lookup failed")
	}
	if got, ok := d.Concept(c.ID); !ok || got != c {
		t.Fatal("concept lookup by id failed")
	}

	attr := d.AddAttribute("rigor", 100)
	if attr.Structure != 52 || attr.Flexibility != 48 {
		t.Fatalf("attribute split = (%v, %v), want (52, 48)", attr.Structure, attr.Flexibility)
	}
	if len(d.Attributes()) != 1 {
		t.Fatalf("attributes = %d, want 1", len(d.Attributes()))
	}
}

func TestDomainSubDomainComplianceNotFoldedIn(t *testing.T) {
	parent := NewDomain("science", DomainComposite, "", nil)
	if err := parent.SetDuality("theory", 50, "experiment", 50, ""); err != nil {
		t.Fatalf("set duality: %v", err)
	}

	child := NewDomain("alchemy", DomainDerived, "", parent.Registry())
	parent.AddSubDomain(child)

	// The child has no duality, but the parent's own compliance holds.
	if !parent.Compliant() {
		t.Fatal("sub-domain compliance must not fold into the parent flag")
	}
	if child.Compliant() {
		t.Fatal("child without duality must be non-compliant on its own")
	}
}
