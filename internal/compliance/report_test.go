package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noesis/internal/model"
)

func makeDomain(t *testing.T, name string) *model.Domain {
	t.Helper()
	d := model.NewDomain(name, model.DomainFundamental, "", nil)
	require.NoError(t, d.SetDuality("positive", 50, "negative", 50, ""))
	require.NoError(t, d.Activate())
	return d
}

func TestHierarchyReportCountsForcedImbalances(t *testing.T) {
	h := model.NewHierarchy("knowledge")
	names := []string{"art", "astronomy", "psychology", "ecology", "music"}
	domains := make([]*model.Domain, 0, len(names))
	for _, name := range names {
		d := makeDomain(t, name)
		domains = append(domains, d)
		h.AddRoot(d)
	}

	// Force two domains out of balance.
	domains[1].Duality().Positive.Value = 80
	domains[3].Duality().Negative.Value = 10

	report := HierarchyReport(h)
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 3, report.Valid)
	assert.Equal(t, 2, report.Invalid)
	assert.Equal(t, []string{"astronomy", "ecology"}, report.InvalidNames)
	assert.Equal(t, []string{"art", "psychology", "music"}, report.ValidNames)
	assert.False(t, report.AllCompliant)
}

func TestHierarchyReportAllCompliant(t *testing.T) {
	h := model.NewHierarchy("knowledge")
	h.AddRoot(makeDomain(t, "art"))
	h.AddRoot(makeDomain(t, "music"))

	report := HierarchyReport(h)
	assert.True(t, report.AllCompliant)
	assert.Equal(t, 0, report.Invalid)
	assert.Empty(t, report.InvalidNames)
}

func TestDomainReportSingleDomain(t *testing.T) {
	d := makeDomain(t, "art")

	report := DomainReport(d)
	assert.Equal(t, 1, report.Total)
	assert.True(t, report.AllCompliant)

	d.Duality().Positive.Value = 99
	report = DomainReport(d)
	assert.Equal(t, []string{"art"}, report.InvalidNames)
	assert.False(t, report.AllCompliant)
}

func TestSubDomainsReportedSeparately(t *testing.T) {
	parent := makeDomain(t, "science")
	child := model.NewDomain("alchemy", model.DomainDerived, "", parent.Registry())
	parent.AddSubDomain(child)

	// Parent's own report ignores the non-compliant child.
	own := DomainReport(parent)
	assert.True(t, own.AllCompliant)

	subs := SubDomainsReport(parent)
	assert.Equal(t, 1, subs.Total)
	assert.Equal(t, []string{"alchemy"}, subs.InvalidNames)
	assert.False(t, subs.AllCompliant)
}

func TestEntityReportValidatesAndCorrects(t *testing.T) {
	d := makeDomain(t, "physics")
	d.CreateConcept("relativity", model.ConceptTheory, "", 50)
	skewed := d.CreateConcept("ether", model.ConceptHypothesis, "", 90)

	other := makeDomain(t, "mathematics")
	rel := model.NewDomainRelation("models", d, other, 0, 100)
	d.AddRelation(rel)

	report := EntityReport(d)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, []string{"ether", "models"}, report.InvalidNames)

	// Concept validation renormalized in place.
	assert.InDelta(t, 90, skewed.Certainty, 0.01)
	assert.InDelta(t, 10, skewed.Uncertainty, 0.01)
}
