package equilibrium

import (
	"errors"
	"fmt"
)

// ErrImbalance indicates a complementary pair violates the 50/50 target.
var ErrImbalance = errors.New("pair violates 50/50 balance")

// Parameter is a named complementary pair that has been proven balanced.
type Parameter struct {
	Name     string
	Positive float64
	Negative float64
}

// Registry stores named parameters that passed the balance check, in
// registration order, for later audit and proof generation. Registries are
// passed explicitly; there is no process-wide instance. A registry assumes a
// single writer and performs no internal locking.
type Registry struct {
	index  map[string]int
	params []Parameter
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register validates and stores a named pair. Re-registering a name
// overwrites the prior value without changing its position in the
// enumeration order. An unbalanced pair is rejected with ErrImbalance.
func (r *Registry) Register(name string, positive, negative float64) error {
	if name == "" {
		return errors.New("parameter name is required")
	}
	if !IsBalanced(positive, negative) {
		pa, pb := PercentageSplit(positive, negative)
		return fmt.Errorf("%w: parameter %q at %.2f/%.2f", ErrImbalance, name, pa, pb)
	}

	param := Parameter{Name: name, Positive: positive, Negative: negative}
	if i, ok := r.index[name]; ok {
		r.params[i] = param
		return nil
	}
	r.index[name] = len(r.params)
	r.params = append(r.params, param)
	return nil
}

// CalculateBalance exposes the percentage split so callers report ratios
// without duplicating the arithmetic.
func (r *Registry) CalculateBalance(a, b float64) (float64, float64) {
	return PercentageSplit(a, b)
}

// VerifyBalance checks a pair against the registry's 50/50 target.
func (r *Registry) VerifyBalance(a, b float64) bool {
	return IsBalanced(a, b)
}

// Enumerate returns all registered parameters in registration order.
func (r *Registry) Enumerate() []Parameter {
	out := make([]Parameter, len(r.params))
	copy(out, r.params)
	return out
}

func (r *Registry) Len() int {
	return len(r.params)
}
