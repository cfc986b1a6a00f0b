package decimal

// Operand is a constraint satisfied by a decimal and by a pointer to a decimal.
// It lets the package-level rounded operations accept any combination of
// values and pointers, for example when operands are stored in slices of
// *Decimal or in struct fields accessed through pointers.
type Operand interface {
	Decimal | *Decimal
}

// value returns the decimal x refers to.
// If x is a nil pointer, value panics.
func value[T Operand](x T) Decimal {
	if p, ok := any(x).(*Decimal); ok {
		return *p
	}
	return any(x).(Decimal)
}

// MulRounded is a shorthand for [Decimal.MulRoundedMode] that accepts
// decimals as well as pointers to decimals.
func MulRounded[L, R Operand](x L, y R, scale int, mode RoundingMode) (Decimal, error) {
	return value(x).MulRoundedMode(value(y), scale, mode)
}

// AddRounded is a shorthand for [Decimal.AddRoundedMode] that accepts
// decimals as well as pointers to decimals.
func AddRounded[L, R Operand](x L, y R, scale int, mode RoundingMode) (Decimal, error) {
	return value(x).AddRoundedMode(value(y), scale, mode)
}

// SubRounded is a shorthand for [Decimal.SubRoundedMode] that accepts
// decimals as well as pointers to decimals.
func SubRounded[L, R Operand](x L, y R, scale int, mode RoundingMode) (Decimal, error) {
	return value(x).SubRoundedMode(value(y), scale, mode)
}

// QuoRounded is a shorthand for [Decimal.QuoRoundedMode] that accepts
// decimals as well as pointers to decimals.
func QuoRounded[L, R Operand](x L, y R, scale int, mode RoundingMode) (Decimal, error) {
	return value(x).QuoRoundedMode(value(y), scale, mode)
}
