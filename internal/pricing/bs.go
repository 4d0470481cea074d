package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal is the standard normal distribution N(0,1). Its CDF is the
// Phi term of the model and Prob is the density phi.
var stdNormal = distuv.UnitNormal

// Price calculates the Black-Scholes price of a European call and put.
//
// Parameters:
//   - m: validated market inputs (spot, strike, rate, expiry, volatility)
//   - aux: auxiliaries previously computed from the same m via
//     ComputeAuxiliaries
//
// Returns:
//
//	The theoretical call and put prices:
//
//	  call =  Phi(d1)*S - Phi(d2)*K*e^(-r*t)
//	  put  = -Phi(-d1)*S + Phi(-d2)*K*e^(-r*t)
//
// Put-call parity holds by construction: call - put = S - K*e^(-r*t)
// up to floating-point error. A non-finite result (possible only for
// extreme inputs that survived validation) fails with
// ErrNumericDegenerate.
func Price(m MarketInputs, aux Auxiliaries) (call, put float64, err error) {
	if err := m.Validate(); err != nil {
		return 0, 0, err
	}

	discounted := m.Strike * math.Exp(-m.Rate*m.Years)

	call = stdNormal.CDF(aux.D1)*m.Spot - stdNormal.CDF(aux.D2)*discounted
	put = -stdNormal.CDF(-aux.D1)*m.Spot + stdNormal.CDF(-aux.D2)*discounted

	if !isFinite(call) || !isFinite(put) {
		return 0, 0, fmt.Errorf("%w: call=%g put=%g", ErrNumericDegenerate, call, put)
	}
	return call, put, nil
}
