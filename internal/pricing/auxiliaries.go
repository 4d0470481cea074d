package pricing

import (
	"fmt"
	"math"
)

// Auxiliaries holds the standardized quantities d1 and d2 that appear
// inside every normal-distribution term of the model.
//
// They are derived deterministically from one MarketInputs value and are
// only meaningful together with it; recompute whenever any input changes.
type Auxiliaries struct {
	D1 float64
	D2 float64
}

// ComputeAuxiliaries computes d1 and d2 from the market inputs:
//
//	d1 = ( ln(S/K) + (r + sigma^2/2)*t ) / (sigma*sqrt(t))
//	d2 = d1 - sigma*sqrt(t)
//
// Inputs are validated first (ErrInvalidInput), so the log and the
// division are always defined. If the inputs are extreme enough to push
// d1 or d2 outside the finite range the call fails with
// ErrNumericDegenerate rather than handing back NaN or Inf.
func ComputeAuxiliaries(m MarketInputs) (Auxiliaries, error) {
	if err := m.Validate(); err != nil {
		return Auxiliaries{}, err
	}

	volSqrtT := m.Vol * math.Sqrt(m.Years)
	d1 := (math.Log(m.Spot/m.Strike) + (m.Rate+0.5*m.Vol*m.Vol)*m.Years) / volSqrtT
	d2 := d1 - volSqrtT

	if !isFinite(d1) || !isFinite(d2) {
		return Auxiliaries{}, fmt.Errorf("%w: d1=%g d2=%g", ErrNumericDegenerate, d1, d2)
	}
	return Auxiliaries{D1: d1, D2: d2}, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
