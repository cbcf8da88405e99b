package model

import (
	"strings"

	"github.com/google/uuid"
)

// Hierarchy is a forest of root domains plus a flat index of every reachable
// domain by identity. Domains are indexed depth-first, parent before
// children, in the order roots were added.
type Hierarchy struct {
	name  string
	roots []*Domain
	index map[uuid.UUID]*Domain
	order []*Domain
}

func NewHierarchy(name string) *Hierarchy {
	return &Hierarchy{
		name:  name,
		index: make(map[uuid.UUID]*Domain),
	}
}

func (h *Hierarchy) Name() string { return h.name }

// AddRoot adds a root domain and registers it and all sub-domains reachable
// at this moment.
func (h *Hierarchy) AddRoot(d *Domain) {
	h.roots = append(h.roots, d)
	h.register(d)
}

func (h *Hierarchy) register(d *Domain) {
	if _, seen := h.index[d.ID()]; seen {
		return
	}
	h.index[d.ID()] = d
	h.order = append(h.order, d)
	for _, sub := range d.SubDomains() {
		h.register(sub)
	}
}

// Roots returns the root domains in registration order.
func (h *Hierarchy) Roots() []*Domain {
	out := make([]*Domain, len(h.roots))
	copy(out, h.roots)
	return out
}

// Domains returns every reachable domain, depth-first in registration order.
func (h *Hierarchy) Domains() []*Domain {
	out := make([]*Domain, len(h.order))
	copy(out, h.order)
	return out
}

// DomainByID looks up a reachable domain by identity.
func (h *Hierarchy) DomainByID(id uuid.UUID) (*Domain, bool) {
	d, ok := h.index[id]
	return d, ok
}

// DomainByName scans all reachable domains for a case-insensitive name match.
func (h *Hierarchy) DomainByName(name string) (*Domain, bool) {
	for _, d := range h.order {
		if strings.EqualFold(d.Name(), name) {
			return d, true
		}
	}
	return nil, false
}

func (h *Hierarchy) TotalDomains() int {
	return len(h.order)
}

// Walk visits every reachable domain, depth-first in registration order,
// parent before children.
func (h *Hierarchy) Walk(fn func(*Domain)) {
	for _, d := range h.order {
		fn(d)
	}
}
