// Package compliance walks domains and hierarchies and composes individual
// entity validations into summary reports and proof payloads. Aggregation is
// pure reporting: an invalid entity is counted and named, never an error.
package compliance

import "noesis/internal/model"

// Report summarizes compliance over a set of validated entities.
type Report struct {
	Total        int      `json:"total"`
	Valid        int      `json:"valid"`
	Invalid      int      `json:"invalid"`
	ValidNames   []string `json:"valid_names"`
	InvalidNames []string `json:"invalid_names"`
	AllCompliant bool     `json:"all_compliant"`
}

func newReport() Report {
	return Report{
		ValidNames:   []string{},
		InvalidNames: []string{},
	}
}

func (r *Report) add(name string, valid bool) {
	r.Total++
	if valid {
		r.Valid++
		r.ValidNames = append(r.ValidNames, name)
	} else {
		r.Invalid++
		r.InvalidNames = append(r.InvalidNames, name)
	}
}

func (r *Report) finish() {
	r.AllCompliant = r.Invalid == 0
}

// DomainReport reports a single domain's own compliance, which depends on
// its duality only. Sub-domain and concept compliance are surfaced by
// SubDomainsReport and EntityReport, not folded in here.
func DomainReport(d *model.Domain) Report {
	report := newReport()
	report.add(d.Name(), d.Compliant())
	report.finish()
	return report
}

// SubDomainsReport reports the compliance of every domain reachable below d,
// depth-first in attachment order, excluding d itself.
func SubDomainsReport(d *model.Domain) Report {
	report := newReport()
	var walk func(*model.Domain)
	walk = func(sub *model.Domain) {
		report.add(sub.Name(), sub.Compliant())
		for _, next := range sub.SubDomains() {
			walk(next)
		}
	}
	for _, sub := range d.SubDomains() {
		walk(sub)
	}
	report.finish()
	return report
}

// EntityReport validates every concept and relation attached to d and
// composes the results. Concept validation renormalizes in place, as the
// concept contract specifies; the aggregator itself has no other side
// effects.
func EntityReport(d *model.Domain) Report {
	report := newReport()
	for _, c := range d.Concepts() {
		report.add(c.Name, c.ValidateBalance())
	}
	for _, r := range d.Outgoing() {
		report.add(r.Name, r.ValidateBalance())
	}
	report.finish()
	return report
}

// HierarchyReport reports the compliance of every reachable domain in the
// hierarchy, depth-first in registration order.
func HierarchyReport(h *model.Hierarchy) Report {
	report := newReport()
	h.Walk(func(d *model.Domain) {
		report.add(d.Name(), d.Compliant())
	})
	report.finish()
	return report
}
