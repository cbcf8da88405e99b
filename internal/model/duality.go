package model

import (
	"fmt"

	"noesis/internal/equilibrium"
)

// Pole is one side of a domain's duality.
type Pole struct {
	Name        string
	Value       float64
	Description string
}

// Duality is the fundamental paired attribute of a domain. Its 50/50 check
// runs eagerly at construction and failure is fatal; there is no
// self-correction path. Pole values are not mutated after creation, so a
// duality attached to an active domain stays balanced for the domain's
// lifetime.
type Duality struct {
	Name     string
	Positive Pole
	Negative Pole

	balanced bool
}

// NewDuality validates the pair eagerly. An out-of-balance pair returns an
// *ImbalanceError carrying the computed percentages and pole names.
func NewDuality(name string, positive, negative Pole) (*Duality, error) {
	if positive.Value < 0 {
		return nil, fmt.Errorf("%w: %s=%v", ErrNegativePole, positive.Name, positive.Value)
	}
	if negative.Value < 0 {
		return nil, fmt.Errorf("%w: %s=%v", ErrNegativePole, negative.Name, negative.Value)
	}

	d := &Duality{Name: name, Positive: positive, Negative: negative}
	if !d.ValidateBalance() {
		pa, pb := d.Balance()
		return nil, &ImbalanceError{
			Name:         name,
			PositiveName: positive.Name,
			NegativeName: negative.Name,
			PositivePct:  pa,
			NegativePct:  pb,
		}
	}
	return d, nil
}

// ValidateBalance recomputes the 50/50 check from the current pole values.
func (d *Duality) ValidateBalance() bool {
	d.balanced = equilibrium.IsBalanced(d.Positive.Value, d.Negative.Value)
	return d.balanced
}

func (d *Duality) IsBalanced() bool {
	return d.balanced
}

// Balance returns the current percentage split of the two poles.
func (d *Duality) Balance() (float64, float64) {
	return equilibrium.PercentageSplit(d.Positive.Value, d.Negative.Value)
}

// TotalEnergy is the sum of both pole values.
func (d *Duality) TotalEnergy() float64 {
	return d.Positive.Value + d.Negative.Value
}
