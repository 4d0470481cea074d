// Package pricing implements the Black-Scholes theoretical price and
// selected sensitivities (Delta, Gamma, Theta) for European options.
//
// Responsibilities:
//   - Validate raw market inputs (spot, strike, rate, expiry, volatility)
//   - Compute the auxiliary quantities d1 and d2
//   - Price calls and puts from the closed-form model
//   - Compute Delta, Gamma and Theta from shared auxiliaries
//
// Design notes:
//   - Every function is pure; inputs are passed by value and nothing is cached
//   - d1/d2 are computed once by the caller and threaded through, so the
//     pricer and the Greeks never disagree about which auxiliaries were used
//   - The standard normal CDF and PDF come from gonum's distuv package;
//     this package contains no distribution code of its own
//   - Errors are typed sentinels so callers can distinguish bad inputs
//     from degenerate arithmetic without string matching
package pricing

import (
	"errors"
	"fmt"
	"math"
)

//
// ==========================
// Error taxonomy
// ==========================
//

var (
	// ErrInvalidInput reports market inputs outside the model's domain
	// (non-positive spot, strike, expiry or volatility, or non-finite
	// values). These would otherwise surface as NaN from log or a
	// division by zero.
	ErrInvalidInput = errors.New("invalid market input")

	// ErrInvalidContractType reports a ContractType other than Call or Put.
	ErrInvalidContractType = errors.New("invalid contract type")

	// ErrNumericDegenerate reports inputs that are individually valid but
	// overflow or underflow the model (for example an extremely small
	// expiry driving d1 to infinity). The result is unusable and must not
	// be presented as a price or Greek.
	ErrNumericDegenerate = errors.New("numerically degenerate result")
)

//
// ==========================
// Market inputs
// ==========================
//

// MarketInputs holds the five scalars the Black-Scholes model prices from.
//
// All fields are annualized: Rate is the continuously-compounded risk-free
// rate, Vol the implied volatility, Years the remaining option life in
// years (e.g. 42 calendar days = 42/365).
type MarketInputs struct {
	Spot   float64 // S: current underlying price
	Strike float64 // K: exercise price
	Rate   float64 // r: risk-free rate (may be ~0)
	Years  float64 // t: time to expiration in years
	Vol    float64 // sigma: implied volatility
}

// Validate reports whether the inputs are inside the model's domain.
//
// Spot, Strike, Years and Vol must be strictly positive: the model divides
// by sigma*sqrt(t) and takes ln(S/K), so zero is just as fatal as a
// negative value. Rate may be any finite real (including zero or negative).
func (m MarketInputs) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"spot", m.Spot},
		{"strike", m.Strike},
		{"years", m.Years},
		{"vol", m.Vol},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidInput, f.name)
		}
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %g", ErrInvalidInput, f.name, f.value)
		}
	}
	if math.IsNaN(m.Rate) || math.IsInf(m.Rate, 0) {
		return fmt.Errorf("%w: rate is not finite", ErrInvalidInput)
	}
	return nil
}
