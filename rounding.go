package decimal

import (
	"fmt"
	"math/big"
	"sync/atomic"
)

// RoundingMode selects how a quotient that cannot be represented exactly at
// the target scale is collapsed to a coefficient.
// The zero value is [RoundDefault].
type RoundingMode int8

const (
	// RoundDefault uses the process-wide mode returned by [DefaultRoundingMode].
	RoundDefault RoundingMode = iota
	// RoundHalfEven rounds to the nearest neighbour, ties go to the even one.
	RoundHalfEven
	// RoundHalfUp rounds to the nearest neighbour, ties go away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to the nearest neighbour, ties go towards zero.
	RoundHalfDown
	// RoundDown rounds towards zero (truncation).
	RoundDown
	// RoundUp rounds away from zero.
	RoundUp
	// RoundCeiling rounds towards positive infinity.
	RoundCeiling
	// RoundFloor rounds towards negative infinity.
	RoundFloor
	// Round05Up rounds away from zero if the last digit after truncation
	// would be 0 or 5, and towards zero otherwise.
	Round05Up
)

var roundingModeNames = [...]string{
	RoundDefault:  "default",
	RoundHalfEven: "half-even",
	RoundHalfUp:   "half-up",
	RoundHalfDown: "half-down",
	RoundDown:     "down",
	RoundUp:       "up",
	RoundCeiling:  "ceiling",
	RoundFloor:    "floor",
	Round05Up:     "05up",
}

// RoundingModes returns all concrete rounding modes, excluding [RoundDefault].
func RoundingModes() []RoundingMode {
	return []RoundingMode{
		RoundHalfEven,
		RoundHalfUp,
		RoundHalfDown,
		RoundDown,
		RoundUp,
		RoundCeiling,
		RoundFloor,
		Round05Up,
	}
}

func (m RoundingMode) valid() bool {
	return m >= RoundDefault && m <= Round05Up
}

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("RoundingMode(%d)", int8(m))
	}
	return roundingModeNames[m]
}

// ParseRoundingMode converts a name returned by [RoundingMode.String] back
// to a rounding mode.
func ParseRoundingMode(name string) (RoundingMode, error) {
	for m, n := range roundingModeNames {
		if n == name {
			return RoundingMode(m), nil
		}
	}
	return RoundDefault, fmt.Errorf("%q: %w", name, errInvalidRoundingMode)
}

// defaultMode holds the process-wide rounding mode.
// The stored zero value stands for RoundHalfEven.
var defaultMode atomic.Int32

// DefaultRoundingMode returns the mode used whenever [RoundDefault] is given.
// Unless changed with [SetDefaultRoundingMode], it is [RoundHalfEven].
func DefaultRoundingMode() RoundingMode {
	m := RoundingMode(defaultMode.Load())
	if m == RoundDefault {
		return RoundHalfEven
	}
	return m
}

// SetDefaultRoundingMode changes the process-wide rounding mode.
// It is safe for concurrent use, but operations already in progress
// may observe either the old or the new mode.
//
// SetDefaultRoundingMode returns an error if m is [RoundDefault] or
// not a valid rounding mode.
func SetDefaultRoundingMode(m RoundingMode) error {
	if m == RoundDefault || !m.valid() {
		return fmt.Errorf("setting default to %v: %w", m, errInvalidRoundingMode)
	}
	defaultMode.Store(int32(m))
	return nil
}

// resolve replaces RoundDefault with the process-wide mode.
func (m RoundingMode) resolve() RoundingMode {
	if m == RoundDefault {
		return DefaultRoundingMode()
	}
	return m
}

// roundUp reports whether the magnitude of a truncated quotient has to be
// incremented by one.
// It must only be called when the remainder is not zero.
//
//   - neg is the sign of the mathematical quotient.
//   - half is -1, 0, or +1 if the remainder is less than, equal to, or
//     greater than half of the divisor.
//   - digit returns the last decimal digit of the truncated magnitude.
func (m RoundingMode) roundUp(neg bool, half int, digit func() uint) bool {
	switch m.resolve() {
	case RoundHalfEven:
		return half > 0 || (half == 0 && digit()%2 != 0)
	case RoundHalfUp:
		return half >= 0
	case RoundHalfDown:
		return half > 0
	case RoundDown:
		return false
	case RoundUp:
		return true
	case RoundCeiling:
		return !neg
	case RoundFloor:
		return neg
	case Round05Up:
		d := digit()
		return d == 0 || d == 5
	}
	panic(fmt.Sprintf("roundUp(%v) failed: %v", m, errInvalidRoundingMode)) // unexpected
}

// DivRounded returns x / y rounded to an integer using the given mode.
// If mode is [RoundDefault], [DefaultRoundingMode] is used.
// Exact quotients are returned unchanged regardless of the mode.
// The sign of the result is the sign of the mathematical quotient.
// Neither x nor y is modified.
//
// DivRounded returns an error if:
//   - y is 0;
//   - mode is not a valid rounding mode.
func DivRounded(x, y *big.Int, mode RoundingMode) (*big.Int, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("dividing %v by %v: %w", x, y, errInvalidRoundingMode)
	}
	if y.Sign() == 0 {
		return nil, fmt.Errorf("dividing %v by %v: %w", x, y, errDivisionByZero)
	}

	var (
		xabs, yabs, z bint
		neg           bool
	)

	(*big.Int)(&xabs).Abs(x)
	(*big.Int)(&yabs).Abs(y)
	neg = (x.Sign() < 0) != (y.Sign() < 0)

	// Quotient
	z.quoRound(&xabs, &yabs, neg, mode)

	// Sign
	if neg {
		(*big.Int)(&z).Neg((*big.Int)(&z))
	}

	return (*big.Int)(&z), nil
}
