package equilibrium

import (
	"math"
	"testing"
)

func TestPercentageSplitSumsToHundred(t *testing.T) {
	pairs := [][2]float64{
		{50, 50},
		{1, 99},
		{0.003, 0.007},
		{1234.5, 6789.1},
		{0, 100},
	}
	for _, pair := range pairs {
		pa, pb := PercentageSplit(pair[0], pair[1])
		if math.Abs(pa+pb-100) > 1e-9 {
			t.Fatalf("split of (%v, %v) sums to %v, want 100", pair[0], pair[1], pa+pb)
		}
	}
}

func TestPercentageSplitZeroTotal(t *testing.T) {
	pa, pb := PercentageSplit(0, 0)
	if pa != 50 || pb != 50 {
		t.Fatalf("zero-total split = (%v, %v), want sentinel (50, 50)", pa, pb)
	}
}

func TestIsBalanced(t *testing.T) {
	cases := []struct {
		a, b float64
		want bool
	}{
		{50, 50, true},
		{50.005, 49.995, true},
		{51, 49, false},
		{60, 40, false},
		{0, 0, true},
	}
	for _, tc := range cases {
		if got := IsBalanced(tc.a, tc.b); got != tc.want {
			t.Fatalf("IsBalanced(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestIsBalancedAtOneSided(t *testing.T) {
	// Only the first side is compared: a pair summing correctly can still
	// fail when its first side is off target.
	if IsBalancedAt(0, 100, 50, DefaultEpsilon) {
		t.Fatal("expected (0, 100) off a 50 target")
	}
	if !IsBalancedAt(52, 48, 52, DefaultEpsilon) {
		t.Fatal("expected (52, 48) to meet a 52 target")
	}
}

func TestFixedSplit(t *testing.T) {
	s, f := FixedSplit(100, 0.52)
	if s != 52.0 || f != 48.0 {
		t.Fatalf("FixedSplit(100, 0.52) = (%v, %v), want (52, 48)", s, f)
	}
	s, f = FixedSplit(0, 0.52)
	if s != 0 || f != 0 {
		t.Fatalf("FixedSplit(0, 0.52) = (%v, %v), want (0, 0)", s, f)
	}
}

func TestFixedSplitDeterministic(t *testing.T) {
	s1, f1 := FixedSplit(73.4, StructureFraction)
	s2, f2 := FixedSplit(73.4, StructureFraction)
	if s1 != s2 || f1 != f2 {
		t.Fatalf("repeated split diverged: (%v, %v) vs (%v, %v)", s1, f1, s2, f2)
	}
}

func TestVerifyOperational(t *testing.T) {
	if !VerifyOperational(52, 48) {
		t.Fatal("expected (52, 48) operational")
	}
	if !VerifyOperational(26, 24) {
		t.Fatal("expected proportional (26, 24) operational")
	}
	if VerifyOperational(50, 50) {
		t.Fatal("expected (50, 50) not operational")
	}
	if VerifyOperational(0, 0) {
		t.Fatal("expected zero pair not operational")
	}
}
