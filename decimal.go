package decimal

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Decimal type is a representation of a fixed-point decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: the number of digits after the decimal point.
//   - Coefficient: an integer value of the decimal without the decimal point.
//
// For example, a decimal with a coefficient of 12345 and a scale of 2 represents
// the value 123.45.
// The same numerical value can have multiple representations:
// 1, 1.0, and 1.00 have the same value, but different scales and coefficients.
//
// Decimals are compared with == by representation, not by value.
// Use [Decimal.Cmp] for numerical comparison.
type Decimal struct {
	neg   bool  // indicates whether the decimal is negative
	scale uint8 // the number of digits after the decimal point
	coef  wint  // the absolute value of the coefficient
}

const (
	MaxScale = 255 // maximum number of digits after the decimal point
	CoefBits = 127 // maximum bit length of the absolute value of the coefficient
)

var (
	errDecimalOverflow     = errors.New("decimal overflow")
	errInvalidDecimal      = errors.New("invalid decimal")
	errScaleRange          = errors.New("scale out of range")
	errDivisionByZero      = errors.New("division by zero")
	errInvalidRoundingMode = errors.New("invalid rounding mode")
)

// Errors reported by constructors and arithmetic operations.
// They can be matched with [errors.Is].
var (
	ErrDecimalOverflow = errDecimalOverflow
	ErrDivisionByZero  = errDivisionByZero
	ErrScaleRange      = errScaleRange
)

func newDecimal(neg bool, coef wint, scale int) (Decimal, error) {
	switch {
	case scale < 0 || scale > MaxScale:
		return Decimal{}, errScaleRange
	case !coef.fitsCoef():
		return Decimal{}, errDecimalOverflow
	}
	if coef.isZero() {
		neg = false
	}
	return Decimal{neg: neg, coef: coef, scale: uint8(scale)}, nil
}

func newDecimalFromBint(neg bool, coef *bint, scale int) (Decimal, error) {
	if !coef.fitsCoef() {
		return Decimal{}, fmt.Errorf("the coefficient of a %T can have at most %v bit(s), but it has %v bit(s): %w", Decimal{}, CoefBits, (*big.Int)(coef).BitLen(), errDecimalOverflow)
	}
	w, ok := coef.wint()
	if !ok {
		return Decimal{}, errDecimalOverflow // unexpected
	}
	return newDecimal(neg, w, scale)
}

// New returns a decimal equal to coef / 10^scale.
//
// New returns an error if scale is negative or greater than [MaxScale].
func New(coef int64, scale int) (Decimal, error) {
	neg := coef < 0
	abs := uint64(coef)
	if neg {
		abs = -abs
	}
	d, err := newDecimal(neg, newWint(abs), scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return d, nil
}

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// NewFromBigInt returns a decimal equal to coef / 10^scale.
//
// NewFromBigInt returns an error if:
//   - the absolute value of coef has more than [CoefBits] bits;
//   - scale is negative or greater than [MaxScale].
func NewFromBigInt(coef *big.Int, scale int) (Decimal, error) {
	var abs bint
	(*big.Int)(&abs).Abs(coef)
	d, err := newDecimalFromBint(coef.Sign() < 0, &abs, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return d, nil
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// The scale of the result is equal to the number of digits after the decimal point,
// trailing zeros included.
//
// Parse returns an error:
//   - if the string does not represent a valid decimal number;
//   - if the coefficient has more than [CoefBits] bits;
//   - if there are more than [MaxScale] digits after the decimal point.
func Parse(s string) (Decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		coef    wint
		scale   int
		hascoef bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		if !coef.fsa(&coef, 1, s[pos]-'0') {
			return Decimal{}, fmt.Errorf("parsing %q: %w", s, errDecimalOverflow)
		}
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			if scale == MaxScale {
				return Decimal{}, fmt.Errorf("parsing %q: %w", s, errScaleRange)
			}
			if !coef.fsa(&coef, 1, s[pos]-'0') {
				return Decimal{}, fmt.Errorf("parsing %q: %w", s, errDecimalOverflow)
			}
			scale++
			pos++
		}
	}

	if pos != width {
		return Decimal{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], errInvalidDecimal)
	}
	if !hascoef {
		return Decimal{}, fmt.Errorf("parsing %q: no coefficient: %w", s, errInvalidDecimal)
	}

	d, err := newDecimal(neg, coef, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The returned string does not use scientific notation and always has
// exactly [Decimal.Scale] digits after the decimal point.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	digits := d.coef.string()
	scale := d.Scale()

	var sb strings.Builder
	sb.Grow(len(digits) + scale + 3)

	// Sign
	if d.IsNeg() {
		sb.WriteByte('-')
	}

	// Leading zeros
	if n := scale + 1 - len(digits); n > 0 {
		digits = strings.Repeat("0", n) + digits
	}

	// Integer and fractional parts
	point := len(digits) - scale
	sb.WriteString(digits[:point])
	if scale > 0 {
		sb.WriteByte('.')
		sb.WriteString(digits[point:])
	}

	return sb.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Coef returns the signed coefficient of the decimal.
func (d Decimal) Coef() *big.Int {
	z := d.coef.u().ToBig()
	if d.neg {
		z.Neg(z)
	}
	return z
}

// Scale returns number of digits after the decimal point.
func (d Decimal) Scale() int {
	return int(d.scale)
}

// Neg returns d with opposite sign.
func (d Decimal) Neg() Decimal {
	f, err := newDecimal(!d.IsNeg(), d.coef, d.Scale())
	if err != nil {
		panic(fmt.Sprintf("%q.Neg() failed: %v", d, err)) // unexpected
	}
	return f
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	return Decimal{coef: d.coef, scale: d.scale}
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.coef.isZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.coef.isZero() && !d.neg
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.coef.isZero()
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}

	// General case
	dcoef, ecoef := getBint(), getBint()
	defer putBint(dcoef)
	defer putBint(ecoef)
	dcoef.setWint(d.coef)
	ecoef.setWint(e.coef)

	// Alignment
	switch {
	case e.Scale() < d.Scale():
		ecoef.lsh(ecoef, d.Scale()-e.Scale())
	case d.Scale() < e.Scale():
		dcoef.lsh(dcoef, e.Scale()-d.Scale())
	}

	// Comparison
	switch dcoef.cmp(ecoef) {
	case 1:
		return d.Sign()
	case -1:
		return -e.Sign()
	default:
		return 0
	}
}
