package pricing

import (
	"fmt"
	"strings"
)

// ContractType selects the exercise-side branch of the model.
//
// The zero value is deliberately invalid: a ContractType that was never
// assigned must fail loudly instead of silently pricing as a call.
type ContractType int

const (
	Call ContractType = iota + 1
	Put
)

// Valid reports whether c is one of the two known contract types.
func (c ContractType) Valid() bool {
	return c == Call || c == Put
}

// String returns "call", "put", or a diagnostic form for unknown values.
func (c ContractType) String() string {
	switch c {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return fmt.Sprintf("ContractType(%d)", int(c))
	}
}

// ParseContractType converts a user-supplied string ("call" or "put",
// case-insensitive) into a ContractType. Anything else is
// ErrInvalidContractType.
func ParseContractType(s string) (ContractType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidContractType, s)
	}
}
