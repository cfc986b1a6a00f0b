package decimal

import "fmt"

// MustMulRounded is like [Decimal.MulRounded] but panics if computing error.
func (d Decimal) MustMulRounded(e Decimal, scale int) Decimal {
	f, err := d.MulRounded(e, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.MustMulRounded(%q, %v) failed: %v", d, e, scale, err))
	}
	return f
}

// MustAddRounded is like [Decimal.AddRounded] but panics if computing error.
func (d Decimal) MustAddRounded(e Decimal, scale int) Decimal {
	f, err := d.AddRounded(e, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.MustAddRounded(%q, %v) failed: %v", d, e, scale, err))
	}
	return f
}

// MustSubRounded is like [Decimal.SubRounded] but panics if computing error.
func (d Decimal) MustSubRounded(e Decimal, scale int) Decimal {
	f, err := d.SubRounded(e, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.MustSubRounded(%q, %v) failed: %v", d, e, scale, err))
	}
	return f
}

// MustQuoRounded is like [Decimal.QuoRounded] but panics if computing error.
func (d Decimal) MustQuoRounded(e Decimal, scale int) Decimal {
	f, err := d.QuoRounded(e, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.MustQuoRounded(%q, %v) failed: %v", d, e, scale, err))
	}
	return f
}
