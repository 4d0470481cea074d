package pricing

import (
	"errors"
	"math"
	"testing"
)

// referenceInputs is a TSLA-like scenario with published values for
// d1, d2 and all three Greeks; used across the package tests.
var referenceInputs = MarketInputs{
	Spot:   819.42,
	Strike: 1020,
	Rate:   0.01,
	Years:  42.0 / 365.0,
	Vol:    0.6966,
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestComputeAuxiliaries_ReferenceCase(t *testing.T) {
	aux, err := ComputeAuxiliaries(referenceInputs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(aux.D1, -0.803609, 1e-4) {
		t.Fatalf("d1 mismatch: got=%v want=-0.803609", aux.D1)
	}
	if !almostEqual(aux.D2, -1.039908, 1e-4) {
		t.Fatalf("d2 mismatch: got=%v want=-1.039908", aux.D2)
	}
	// d2 = d1 - sigma*sqrt(t) exactly
	want := aux.D1 - referenceInputs.Vol*math.Sqrt(referenceInputs.Years)
	if aux.D2 != want {
		t.Fatalf("d2 not derived from d1: got=%v want=%v", aux.D2, want)
	}
}

func TestComputeAuxiliaries_InvalidInputs(t *testing.T) {
	cases := []struct {
		name string
		m    MarketInputs
	}{
		{"zero vol", MarketInputs{Spot: 100, Strike: 100, Rate: 0.01, Years: 1, Vol: 0}},
		{"zero years", MarketInputs{Spot: 100, Strike: 100, Rate: 0.01, Years: 0, Vol: 0.2}},
		{"negative spot", MarketInputs{Spot: -1, Strike: 100, Rate: 0.01, Years: 1, Vol: 0.2}},
		{"zero strike", MarketInputs{Spot: 100, Strike: 0, Rate: 0.01, Years: 1, Vol: 0.2}},
		{"nan vol", MarketInputs{Spot: 100, Strike: 100, Rate: 0.01, Years: 1, Vol: math.NaN()}},
		{"inf rate", MarketInputs{Spot: 100, Strike: 100, Rate: math.Inf(1), Years: 1, Vol: 0.2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeAuxiliaries(tc.m)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestComputeAuxiliaries_DegenerateOverflow(t *testing.T) {
	// Positive but denormal vol: ln(S/K)/(vol*sqrt(t)) overflows to +Inf.
	m := MarketInputs{
		Spot:   200,
		Strike: 100,
		Rate:   0.01,
		Years:  1,
		Vol:    math.SmallestNonzeroFloat64,
	}
	_, err := ComputeAuxiliaries(m)
	if !errors.Is(err, ErrNumericDegenerate) {
		t.Fatalf("expected ErrNumericDegenerate, got %v", err)
	}
}
