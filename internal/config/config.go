// Package config loads pricing scenarios from JSON files and CLI values.
//
// Responsibilities:
//   - Decode a scenario (the five market inputs plus a contract type)
//     from JSON
//   - Accept numeric fields either as plain numbers or as arithmetic
//     expressions such as "42/365" (times to expiry are usually quoted
//     in days, rates in percent)
//   - Convert a scenario into validated pricing inputs
//
// Design notes:
//   - Expression evaluation uses govaluate; expressions must reduce to a
//     single numeric constant, no variables are bound
//   - Validation of the numeric domain lives in the pricing package;
//     this package only rejects values that fail to parse at all
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Knetic/govaluate"

	"github.com/contactkeval/option-greeks/internal/logger"
	"github.com/contactkeval/option-greeks/internal/pricing"
)

// ErrInvalidNumberExpression reports a scenario field that is neither a
// JSON number nor an evaluable arithmetic expression.
var ErrInvalidNumberExpression = errors.New("invalid number expression")

// Number is a float64 that unmarshals from either a JSON number or a
// string holding a constant arithmetic expression ("42/365", "1.5e-2").
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidNumberExpression, b)
	}
	f, err := EvalNumber(s)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// EvalNumber evaluates a constant arithmetic expression to a float64.
//
// No variables are bound: "42/365" is valid, "days/365" is not.
func EvalNumber(expr string) (float64, error) {
	evalExpr, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidNumberExpression, expr, err)
	}

	result, err := evalExpr.Evaluate(nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidNumberExpression, expr, err)
	}

	f, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidNumberExpression, expr)
	}
	return f, nil
}

// Scenario is one set of market inputs plus the contract side to report
// Delta and Theta for. It represents user intent; domain validation
// happens when it is converted to pricing.MarketInputs.
type Scenario struct {
	Spot   Number `json:"spot"`   // S: underlying price
	Strike Number `json:"strike"` // K: exercise price
	Rate   Number `json:"rate"`   // r: annualized risk-free rate
	Years  Number `json:"years"`  // t: time to expiry in years (e.g. "42/365")
	Vol    Number `json:"vol"`    // sigma: annualized implied volatility
	Type   string `json:"type"`   // "call" or "put"
}

// Default returns the illustrative scenario the CLI falls back to when
// no config file or overrides are given: a TSLA-like underlying at
// 819.42 against a 1020 strike, 42 days out, 69.66% vol.
func Default() Scenario {
	return Scenario{
		Spot:   819.42,
		Strike: 1020,
		Rate:   0.01,
		Years:  Number(42.0 / 365.0),
		Vol:    0.6966,
		Type:   "call",
	}
}

// Load reads and decodes a scenario JSON file.
func Load(path string) (Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	if err := json.Unmarshal(b, &s); err != nil {
		return Scenario{}, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	logger.Debugf("loaded scenario from %s: %+v", path, s)
	return s, nil
}

// MarketInputs converts the scenario to validated pricing inputs.
func (s Scenario) MarketInputs() (pricing.MarketInputs, error) {
	m := pricing.MarketInputs{
		Spot:   float64(s.Spot),
		Strike: float64(s.Strike),
		Rate:   float64(s.Rate),
		Years:  float64(s.Years),
		Vol:    float64(s.Vol),
	}
	if err := m.Validate(); err != nil {
		return pricing.MarketInputs{}, err
	}
	return m, nil
}

// ContractType parses the scenario's contract side.
func (s Scenario) ContractType() (pricing.ContractType, error) {
	return pricing.ParseContractType(s.Type)
}
