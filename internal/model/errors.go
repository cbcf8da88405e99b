package model

import (
	"errors"
	"fmt"
)

var (
	// ErrConstructionInvariant is the fatal failure kind: a duality failed
	// its 50/50 check at construction, or a domain was activated without a
	// valid duality.
	ErrConstructionInvariant = errors.New("construction invariant violated")

	// ErrNoDuality indicates a domain was activated with no duality set.
	ErrNoDuality = fmt.Errorf("%w: no duality set", ErrConstructionInvariant)

	// ErrNegativePole indicates a pole was created with a negative value.
	ErrNegativePole = errors.New("pole value cannot be negative")

	// ErrNotActive indicates a lifecycle transition requiring an active domain.
	ErrNotActive = errors.New("domain is not active")
)

// ImbalanceError carries the computed percentages and pole names for a fatal
// 50/50 violation. It unwraps to ErrConstructionInvariant.
type ImbalanceError struct {
	Name         string
	PositiveName string
	NegativeName string
	PositivePct  float64
	NegativePct  float64
}

func (e *ImbalanceError) Error() string {
	return fmt.Sprintf("duality %q violates 50/50 balance: %s=%.2f%% / %s=%.2f%%",
		e.Name, e.PositiveName, e.PositivePct, e.NegativeName, e.NegativePct)
}

func (e *ImbalanceError) Unwrap() error {
	return ErrConstructionInvariant
}
