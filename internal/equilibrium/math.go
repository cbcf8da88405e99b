// Package equilibrium implements the shared ratio arithmetic behind the
// knowledge-domain balance invariants: percentage splits of complementary
// pairs, tolerance-based balance checks against the 50/50 target, and the
// fixed 52/48 structural decomposition of scalar attributes.
package equilibrium

import "math"

const (
	// DefaultTarget is the balance target for complementary pairs, in percent.
	DefaultTarget = 50.0
	// DefaultEpsilon is the balance tolerance, in percentage points.
	DefaultEpsilon = 0.01

	// StructureFraction is the fixed structural share of a scalar attribute.
	StructureFraction = 0.52

	// OperationalStructure and OperationalFlexibility are the expected
	// percentages of the operational 52/48 split.
	OperationalStructure   = 52.0
	OperationalFlexibility = 48.0
)

// PercentageSplit returns the percentage each magnitude contributes to the
// pair's total. A zero-total pair is vacuously balanced: the target midpoint
// is returned without dividing. That convention is deliberate, so callers
// never see a division error for empty or uninitialized pairs.
func PercentageSplit(a, b float64) (float64, float64) {
	total := math.Abs(a) + math.Abs(b)
	if total == 0 {
		return DefaultTarget, DefaultTarget
	}
	return math.Abs(a) / total * 100, math.Abs(b) / total * 100
}

// IsBalanced reports whether the pair sits at 50/50 within DefaultEpsilon.
func IsBalanced(a, b float64) bool {
	return IsBalancedAt(a, b, DefaultTarget, DefaultEpsilon)
}

// IsBalancedAt reports whether the first side of the pair sits at target
// percent within epsilon. Only the first side is checked: for a symmetric
// target the second side follows from pa+pb=100, and one-sided checks
// (relation give/receive) want exactly this behavior.
func IsBalancedAt(a, b, target, epsilon float64) bool {
	pa, _ := PercentageSplit(a, b)
	return math.Abs(pa-target) < epsilon
}

// FixedSplit decomposes total into structural and flexible components using
// the given structure fraction. The split is exact deterministic arithmetic,
// not a checked invariant; no tolerance applies.
func FixedSplit(total, structureFraction float64) (float64, float64) {
	return total * structureFraction, total * (1 - structureFraction)
}

// OperationalSplit is FixedSplit at the canonical 52/48 fraction.
func OperationalSplit(total float64) (float64, float64) {
	return FixedSplit(total, StructureFraction)
}

// VerifyOperational reports whether a structure/flexibility pair sits at
// 52/48 within DefaultEpsilon. Unlike the balance checks, a zero total here
// is a failure: an empty pair cannot prove the operational split.
func VerifyOperational(structure, flexibility float64) bool {
	total := structure + flexibility
	if total == 0 {
		return false
	}
	actualStructure := structure / total * 100
	actualFlexibility := flexibility / total * 100
	return math.Abs(actualStructure-OperationalStructure) < DefaultEpsilon &&
		math.Abs(actualFlexibility-OperationalFlexibility) < DefaultEpsilon
}
