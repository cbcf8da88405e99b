package model

import "noesis/internal/equilibrium"

// Attribute is a scalar deterministically decomposed into structural and
// flexible components at the fixed 52/48 ratio. The split is a derivation,
// not a checked invariant; no tolerance test applies.
type Attribute struct {
	Name        string
	Description string
	Total       float64
	Structure   float64
	Flexibility float64
}

func NewAttribute(name string, total float64) Attribute {
	structure, flexibility := equilibrium.OperationalSplit(total)
	return Attribute{
		Name:        name,
		Total:       total,
		Structure:   structure,
		Flexibility: flexibility,
	}
}
