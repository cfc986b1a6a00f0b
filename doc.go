/*
Package decimal implements immutable fixed-point decimal numbers and
arithmetic operations that round their results to a requested number of
digits after the decimal point.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unsigned integer representing the numeric value of the decimal
    without the decimal point.
    Its absolute value has at most [CoefBits] bits, which is the range of
    a signed 128-bit integer.
  - Scale: a non-negative integer indicating the number of digits after the
    decimal point.
    For example, a decimal with a coefficient of 12345 and a scale of 2 represents
    the value 123.45.
    The range of allowed values for the scale is from 0 to [MaxScale].

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

The same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have different
scales and coefficients.

# Rounded Arithmetic

Each binary operation takes a target scale:

  - [Decimal.MulRounded]: the exact product has the sum of the operand scales.
  - [Decimal.AddRounded], [Decimal.SubRounded]: the exact result has the larger
    of the operand scales; the other operand is aligned before combining.
  - [Decimal.QuoRounded]: a quotient has no exact scale in general,
    so the result always has the target scale.

For multiplication, addition and subtraction, if the target scale is less than the
scale of the exact result, the coefficient of the exact result is divided by a power
of ten and rounded.
Otherwise the exact result is returned with its own scale:

	| Operation             | Target | Result        |
	| --------------------- | ------ | ------------- |
	| 123.45 * 123.45       | 2      | 15239.90      |
	| 123.45 * 123.45       | 4      | 15239.9025    |
	| 123.45 * 0.5781       | 10     | 71.366445     |
	| 1.1 + 0.15            | 1      | 1.2           |
	| 2 / 3                 | 5      | 0.66667       |

The exact result is never padded with trailing zeros to reach a larger target
scale.

Rounding is performed on the integer coefficient.
Intermediate results are computed on 256-bit integers, which hold the product of any
two coefficients, and on [big.Int] when a scale alignment does not fit.
Only the final coefficient is checked against [CoefBits].

# Rounding Modes

The Mode variants of the operations accept a [RoundingMode].
[RoundDefault] stands for the process-wide mode returned by [DefaultRoundingMode],
which is [RoundHalfEven] unless changed with [SetDefaultRoundingMode].
The rounding kernel is also available for plain integers as [DivRounded].

# Operands

Package-level functions [MulRounded], [AddRounded], [SubRounded], and [QuoRounded]
accept any combination of decimals and pointers to decimals.
They produce the same results as the methods.

# Errors

Operations return an error instead of a partial result:

  - [ErrDecimalOverflow]: the coefficient of the result has more than [CoefBits] bits.
  - [ErrDivisionByZero]: the divisor is zero.
  - [ErrScaleRange]: the target scale is negative, or the target scale of a
    quotient is greater than [MaxScale].

Must variants, such as [Decimal.MustMulRounded], panic instead.
*/
package decimal
