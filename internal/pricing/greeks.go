package pricing

import (
	"fmt"
	"math"
)

// Greeks aggregates the three sensitivities this package computes.
// Delta and Theta depend on the contract type; Gamma does not.
type Greeks struct {
	Delta float64 // dPrice/dSpot, in [-1, 1]
	Gamma float64 // dDelta/dSpot, always >= 0
	Theta float64 // dPrice/dTime, per year
}

// Delta calculates the sensitivity of the option price to a unit change
// in the underlying price.
//
//	call:  Phi(d1)
//	put:  -Phi(-d1)
//
// Delta is a function of d1 alone; the d1 used in the formula is always
// the parameter passed in, never shared state. Call delta lies in [0, 1],
// put delta in [-1, 0], and for the same d1 they differ by exactly 1.
func Delta(d1 float64, contract ContractType) (float64, error) {
	switch contract {
	case Call:
		return stdNormal.CDF(d1), nil
	case Put:
		return -stdNormal.CDF(-d1), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidContractType, contract)
	}
}

// Gamma calculates the sensitivity of Delta to a unit change in the
// underlying price. It is identical for calls and puts:
//
//	K*e^(-r*t) * phi(d2) / (S^2 * sigma * sqrt(t))
//
// This is the dual (strike-discounted) form, algebraically equal to the
// more common phi(d1)/(S*sigma*sqrt(t)). The discount exponent uses the
// risk-free rate r, the same rate threaded through every other formula;
// some derivations print it under a different symbol but no second rate
// exists in this model.
func Gamma(d2 float64, m MarketInputs) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	gamma := m.Strike * math.Exp(-m.Rate*m.Years) * stdNormal.Prob(d2) /
		(m.Spot * m.Spot * m.Vol * math.Sqrt(m.Years))

	if !isFinite(gamma) {
		return 0, fmt.Errorf("%w: gamma=%g", ErrNumericDegenerate, gamma)
	}
	return gamma, nil
}

// Theta calculates the sensitivity of the option price to the passage of
// time, per year:
//
//	call: -(S*sigma*phi(d1))/(2*sqrt(t)) - r*K*e^(-r*t)*Phi(d2)
//	put:  -(S*sigma*phi(-d1))/(2*sqrt(t)) + r*K*e^(-r*t)*Phi(-d2)
//
// Presentation scaling (per-calendar-day theta, display rescaling) is the
// caller's concern; see the report package.
func Theta(aux Auxiliaries, m MarketInputs, contract ContractType) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	decay := m.Spot * m.Vol / (2 * math.Sqrt(m.Years))
	carry := m.Rate * m.Strike * math.Exp(-m.Rate*m.Years)

	var theta float64
	switch contract {
	case Call:
		theta = -decay*stdNormal.Prob(aux.D1) - carry*stdNormal.CDF(aux.D2)
	case Put:
		theta = -decay*stdNormal.Prob(-aux.D1) + carry*stdNormal.CDF(-aux.D2)
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidContractType, contract)
	}

	if !isFinite(theta) {
		return 0, fmt.Errorf("%w: theta=%g", ErrNumericDegenerate, theta)
	}
	return theta, nil
}

// ComputeGreeks computes Delta, Gamma and Theta in one pass over shared
// auxiliaries. Convenience for callers that want all three; each Greek
// remains independently computable via its own function.
func ComputeGreeks(m MarketInputs, aux Auxiliaries, contract ContractType) (Greeks, error) {
	delta, err := Delta(aux.D1, contract)
	if err != nil {
		return Greeks{}, err
	}
	gamma, err := Gamma(aux.D2, m)
	if err != nil {
		return Greeks{}, err
	}
	theta, err := Theta(aux, m, contract)
	if err != nil {
		return Greeks{}, err
	}
	return Greeks{Delta: delta, Gamma: gamma, Theta: theta}, nil
}
