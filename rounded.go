package decimal

import "fmt"

// MulRounded returns the product of d and e rounded to the given number of
// digits after the decimal point, using [DefaultRoundingMode].
// Also see method [Decimal.MulRoundedMode].
func (d Decimal) MulRounded(e Decimal, scale int) (Decimal, error) {
	return d.MulRoundedMode(e, scale, RoundDefault)
}

// MulRoundedMode returns the product of d and e rounded to the given number of
// digits after the decimal point, using the given rounding mode.
//
// The exact product has d.Scale() + e.Scale() digits after the decimal point.
// If scale is less than that, the exact product is rounded and the result has
// exactly scale digits after the decimal point.
// Otherwise the exact product is returned as is: its scale is not increased
// to the requested one, since the additional zeros would not carry information.
//
// MulRoundedMode returns an error if:
//   - the coefficient of the result has more than [CoefBits] bits;
//   - the scale of the result is greater than [MaxScale], that is,
//     both scale and d.Scale() + e.Scale() are greater than [MaxScale];
//   - scale is negative;
//   - mode is not a valid rounding mode.
func (d Decimal) MulRoundedMode(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	if err := checkRounding(scale, mode); err != nil {
		return Decimal{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	f, err := d.mulWint(e, scale, mode)
	if err != nil {
		f, err = d.mulBint(e, scale, mode)
		if err != nil {
			return Decimal{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
		}
	}
	return f, nil
}

// mulWint computes the product of two decimals using wint arithmetic.
func (d Decimal) mulWint(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	var (
		fcoef  wint
		fscale int
		neg    bool
	)

	// Sign
	neg = d.IsNeg() != e.IsNeg()

	// Coefficient
	if !fcoef.mul(&d.coef, &e.coef) {
		return Decimal{}, errDecimalOverflow // unexpected
	}

	// Scale
	fscale = d.Scale() + e.Scale()
	if scale < fscale {
		fcoef.rshRound(&fcoef, fscale-scale, neg, mode)
		fscale = scale
	}

	return newDecimal(neg, fcoef, fscale)
}

// mulBint computes the product of two decimals using *big.Int arithmetic.
func (d Decimal) mulBint(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	var (
		dcoef  *bint
		ecoef  *bint
		fscale int
		neg    bool
	)

	dcoef = getBint()
	defer putBint(dcoef)
	dcoef.setWint(d.coef)

	ecoef = getBint()
	defer putBint(ecoef)
	ecoef.setWint(e.coef)

	// Sign
	neg = d.IsNeg() != e.IsNeg()

	// Coefficient
	dcoef.mul(dcoef, ecoef)

	// Scale
	fscale = d.Scale() + e.Scale()
	if scale < fscale {
		dcoef.rshRound(dcoef, fscale-scale, neg, mode)
		fscale = scale
	}

	return newDecimalFromBint(neg, dcoef, fscale)
}

// AddRounded returns the sum of d and e rounded to the given number of
// digits after the decimal point, using [DefaultRoundingMode].
// Also see method [Decimal.AddRoundedMode].
func (d Decimal) AddRounded(e Decimal, scale int) (Decimal, error) {
	return d.AddRoundedMode(e, scale, RoundDefault)
}

// AddRoundedMode returns the sum of d and e rounded to the given number of
// digits after the decimal point, using the given rounding mode.
//
// The exact sum has max(d.Scale(), e.Scale()) digits after the decimal point.
// If scale is less than that, the exact sum is rounded and the result has
// exactly scale digits after the decimal point.
// Otherwise the exact sum is returned as is.
// A scale greater than [MaxScale] is accepted, since the scale of the
// exact sum never exceeds it.
//
// AddRoundedMode returns an error if:
//   - the coefficient of the result has more than [CoefBits] bits;
//   - scale is negative;
//   - mode is not a valid rounding mode.
func (d Decimal) AddRoundedMode(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	if err := checkRounding(scale, mode); err != nil {
		return Decimal{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	f, err := d.addWint(e, scale, mode)
	if err != nil {
		f, err = d.addBint(e, scale, mode)
		if err != nil {
			return Decimal{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
		}
	}
	return f, nil
}

// addWint computes the sum of two decimals using wint arithmetic.
func (d Decimal) addWint(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	var (
		dcoef  wint
		ecoef  wint
		fscale int
		neg    bool
	)

	dcoef = d.coef
	ecoef = e.coef

	// Alignment and scale
	switch {
	case d.Scale() == e.Scale():
		fscale = d.Scale()
	case e.Scale() < d.Scale():
		fscale = d.Scale()
		if !ecoef.lsh(&ecoef, d.Scale()-e.Scale()) {
			return Decimal{}, errDecimalOverflow
		}
	case d.Scale() < e.Scale():
		fscale = e.Scale()
		if !dcoef.lsh(&dcoef, e.Scale()-d.Scale()) {
			return Decimal{}, errDecimalOverflow
		}
	}

	// Sign
	if ecoef.cmp(&dcoef) < 0 {
		neg = d.IsNeg()
	} else {
		neg = e.IsNeg()
	}

	// Coefficient
	if d.IsNeg() != e.IsNeg() {
		dcoef.dist(&dcoef, &ecoef)
	} else if !dcoef.add(&dcoef, &ecoef) {
		return Decimal{}, errDecimalOverflow
	}

	// Rounding
	if scale < fscale {
		dcoef.rshRound(&dcoef, fscale-scale, neg, mode)
		fscale = scale
	}

	return newDecimal(neg, dcoef, fscale)
}

// addBint computes the sum of two decimals using *big.Int arithmetic.
func (d Decimal) addBint(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	var (
		dcoef  *bint
		ecoef  *bint
		fscale int
		neg    bool
	)

	dcoef = getBint()
	defer putBint(dcoef)
	dcoef.setWint(d.coef)

	ecoef = getBint()
	defer putBint(ecoef)
	ecoef.setWint(e.coef)

	// Alignment and scale
	switch {
	case d.Scale() == e.Scale():
		fscale = d.Scale()
	case e.Scale() < d.Scale():
		fscale = d.Scale()
		ecoef.lsh(ecoef, d.Scale()-e.Scale())
	case d.Scale() < e.Scale():
		fscale = e.Scale()
		dcoef.lsh(dcoef, e.Scale()-d.Scale())
	}

	// Sign
	if dcoef.cmp(ecoef) > 0 {
		neg = d.IsNeg()
	} else {
		neg = e.IsNeg()
	}

	// Coefficient
	if d.IsNeg() != e.IsNeg() {
		dcoef.dist(dcoef, ecoef)
	} else {
		dcoef.add(dcoef, ecoef)
	}

	// Rounding
	if scale < fscale {
		dcoef.rshRound(dcoef, fscale-scale, neg, mode)
		fscale = scale
	}

	return newDecimalFromBint(neg, dcoef, fscale)
}

// SubRounded returns the difference of d and e rounded to the given number of
// digits after the decimal point, using [DefaultRoundingMode].
// Also see method [Decimal.SubRoundedMode].
func (d Decimal) SubRounded(e Decimal, scale int) (Decimal, error) {
	return d.SubRoundedMode(e, scale, RoundDefault)
}

// SubRoundedMode returns the difference of d and e rounded to the given number of
// digits after the decimal point, using the given rounding mode.
// It follows the same scale rules as [Decimal.AddRoundedMode].
func (d Decimal) SubRoundedMode(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	if err := checkRounding(scale, mode); err != nil {
		return Decimal{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	f, err := d.addWint(e.Neg(), scale, mode)
	if err != nil {
		f, err = d.addBint(e.Neg(), scale, mode)
		if err != nil {
			return Decimal{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
		}
	}
	return f, nil
}

// QuoRounded returns the quotient of d and e rounded to the given number of
// digits after the decimal point, using [DefaultRoundingMode].
// Also see method [Decimal.QuoRoundedMode].
func (d Decimal) QuoRounded(e Decimal, scale int) (Decimal, error) {
	return d.QuoRoundedMode(e, scale, RoundDefault)
}

// QuoRoundedMode returns the quotient of d and e rounded to the given number of
// digits after the decimal point, using the given rounding mode.
// Unlike other rounded operations, the result always has exactly scale digits
// after the decimal point, since a quotient generally has no finite exact scale.
//
// QuoRoundedMode returns an error if:
//   - e is 0;
//   - the coefficient of the result has more than [CoefBits] bits;
//   - scale is negative or greater than [MaxScale];
//   - mode is not a valid rounding mode.
func (d Decimal) QuoRoundedMode(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	if err := checkRounding(scale, mode); err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	if scale > MaxScale {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, errScaleRange)
	}

	// Special case: zero divisor
	if e.IsZero() {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, errDivisionByZero)
	}

	// General case
	f, err := d.quoWint(e, scale, mode)
	if err != nil {
		f, err = d.quoBint(e, scale, mode)
		if err != nil {
			return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
		}
	}
	return f, nil
}

// quoWint computes the quotient of two decimals using wint arithmetic.
func (d Decimal) quoWint(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	var (
		dcoef wint
		ecoef wint
		neg   bool
	)

	dcoef = d.coef
	ecoef = e.coef

	// Sign
	neg = d.IsNeg() != e.IsNeg()

	// Alignment
	switch shift := scale + e.Scale() - d.Scale(); {
	case shift > 0:
		if !dcoef.lsh(&dcoef, shift) {
			return Decimal{}, errDecimalOverflow
		}
	case shift < 0:
		if !ecoef.lsh(&ecoef, -shift) {
			return Decimal{}, errDecimalOverflow
		}
	}

	// Coefficient
	dcoef.quoRound(&dcoef, &ecoef, neg, mode)

	return newDecimal(neg, dcoef, scale)
}

// quoBint computes the quotient of two decimals using *big.Int arithmetic.
func (d Decimal) quoBint(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	var (
		dcoef *bint
		ecoef *bint
		neg   bool
	)

	dcoef = getBint()
	defer putBint(dcoef)
	dcoef.setWint(d.coef)

	ecoef = getBint()
	defer putBint(ecoef)
	ecoef.setWint(e.coef)

	// Sign
	neg = d.IsNeg() != e.IsNeg()

	// Alignment
	switch shift := scale + e.Scale() - d.Scale(); {
	case shift > 0:
		dcoef.lsh(dcoef, shift)
	case shift < 0:
		ecoef.lsh(ecoef, -shift)
	}

	// Coefficient
	dcoef.quoRound(dcoef, ecoef, neg, mode)

	return newDecimalFromBint(neg, dcoef, scale)
}

// checkRounding validates the arguments shared by all rounded operations.
// A target scale above MaxScale is accepted, since the result of
// multiplication, addition, or subtraction never exceeds its natural scale.
func checkRounding(scale int, mode RoundingMode) error {
	switch {
	case scale < 0:
		return errScaleRange
	case !mode.valid():
		return errInvalidRoundingMode
	}
	return nil
}
