package decimal

import (
	"fmt"

	"gopkg.in/inf.v0"
)

// maxInfShift is the largest negative scale of an [inf.Dec] with a non-zero
// coefficient that can still fit, since 10^39 has more than [CoefBits] bits.
const maxInfShift = 38

// NewFromInfDec converts an [inf.Dec] to a decimal.
// This is the representation used by Cassandra drivers for the decimal type.
// A negative scale of x is removed by multiplying the coefficient,
// and a zero with a negative scale is returned with scale 0.
//
// NewFromInfDec returns an error if:
//   - the coefficient of the result has more than [CoefBits] bits;
//   - the scale of x is greater than [MaxScale].
func NewFromInfDec(x *inf.Dec) (Decimal, error) {
	var (
		coef  *bint
		scale int
	)

	// Errors below do not format x, whose string form grows with its scale.
	scale = int(x.Scale())
	switch {
	case scale > MaxScale:
		return Decimal{}, fmt.Errorf("converting inf.Dec with scale %v: %w", scale, errScaleRange)
	case scale < 0 && x.Sign() == 0:
		return Decimal{}, nil
	case scale < -maxInfShift:
		return Decimal{}, fmt.Errorf("converting inf.Dec with scale %v: %w", scale, errDecimalOverflow)
	}

	coef = getBint()
	defer putBint(coef)
	coef.setBint((*bint)(x.UnscaledBig()))
	coef.abs(coef)

	if scale < 0 {
		coef.lsh(coef, -scale)
		scale = 0
	}

	d, err := newDecimalFromBint(x.Sign() < 0, coef, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting %v: %w", x, err)
	}
	return d, nil
}

// InfDec returns d as an [inf.Dec] with the same coefficient and scale.
func (d Decimal) InfDec() *inf.Dec {
	return inf.NewDecBig(d.Coef(), inf.Scale(d.Scale()))
}
