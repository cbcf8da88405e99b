package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noesis/internal/compliance"
	"noesis/internal/equilibrium"
	"noesis/internal/model"
)

func TestBuildFromDescriptor(t *testing.T) {
	desc := Descriptor{
		Name:        "Art",
		Description: "visual arts",
		Duality:     DualitySpec{PositiveName: "form", NegativeName: "content"},
		Attributes:  []AttributeSeed{{Name: "technique", Total: 100}},
		Concepts: []ConceptSeed{
			{Name: "Significant Form", Type: "principle", Certainty: 80},
			{Name: "Expression Theory", Type: "principle", Certainty: 80},
		},
		Relations: []RelationSeed{
			{Source: "Significant Form", Target: "Expression Theory", Type: "contradicts"},
		},
	}

	reg := equilibrium.NewRegistry()
	domain, err := Build(desc, reg)
	require.NoError(t, err)

	assert.Equal(t, model.StateActive, domain.State())
	assert.True(t, domain.Compliant())
	assert.Equal(t, "Art_duality", domain.Duality().Name)
	assert.Len(t, domain.Concepts(), 2)
	assert.Len(t, domain.ConceptRelations(), 1)
	assert.Equal(t, model.RelationContradicts, domain.ConceptRelations()[0].Type)

	// The duality pair lands in the shared registry.
	require.Equal(t, 1, reg.Len())
	assert.Equal(t, "Art_duality", reg.Enumerate()[0].Name)
}

func TestBuildDefaultsPoleValues(t *testing.T) {
	domain, err := Build(Descriptor{
		Name:    "Music",
		Duality: DualitySpec{PositiveName: "sound", NegativeName: "silence"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 50.0, domain.Duality().Positive.Value)
	assert.Equal(t, 50.0, domain.Duality().Negative.Value)
}

func TestBuildRejectsUnbalancedDuality(t *testing.T) {
	_, err := Build(Descriptor{
		Name: "Skewed",
		Duality: DualitySpec{
			PositiveName: "order", PositiveValue: 60,
			NegativeName: "chaos", NegativeValue: 40,
		},
	}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConstructionInvariant)
}

func TestBuildValidatesDescriptor(t *testing.T) {
	_, err := Build(Descriptor{}, nil)
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = Build(Descriptor{Name: "NoPoles"}, nil)
	assert.ErrorIs(t, err, ErrMissingPoles)

	_, err = Build(Descriptor{
		Name:      "Dangling",
		Duality:   DualitySpec{PositiveName: "a", NegativeName: "b"},
		Relations: []RelationSeed{{Source: "missing", Target: "also missing"}},
	}, nil)
	assert.ErrorIs(t, err, ErrUnknownSeed)
}

func TestBuildSubDomains(t *testing.T) {
	domain, err := Build(Descriptor{
		Name:    "Science",
		Type:    "composite",
		Duality: DualitySpec{PositiveName: "theory", NegativeName: "experiment"},
		SubDomains: []Descriptor{
			{Name: "Chemistry", Type: "derived", Duality: DualitySpec{PositiveName: "synthesis", NegativeName: "analysis"}},
		},
	}, nil)
	require.NoError(t, err)

	require.Len(t, domain.SubDomains(), 1)
	sub := domain.SubDomains()[0]
	assert.Equal(t, model.DomainDerived, sub.Type())
	assert.Same(t, domain.Registry(), sub.Registry())
	assert.Equal(t, 2, domain.Registry().Len())
}

func TestSeedsBuildAllCompliant(t *testing.T) {
	reg := equilibrium.NewRegistry()
	h, err := BuildHierarchy("knowledge", Seeds(), reg)
	require.NoError(t, err)

	report := compliance.HierarchyReport(h)
	assert.Equal(t, len(Seeds()), report.Total)
	assert.True(t, report.AllCompliant, "invalid: %v", report.InvalidNames)

	audit := compliance.RegistryAudit(reg)
	assert.Equal(t, len(Seeds()), audit.Total)
	assert.True(t, audit.AllBalanced)
}
