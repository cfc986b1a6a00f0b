package decimal

import (
	"math/big"
	"sync"

	"github.com/holiman/uint256"
)

// wint (Wide INTeger) is a wrapper around uint256.Int.
// It is twice as wide as a coefficient, so the unscaled product of any two
// coefficients fits into it without overflow.
type wint uint256.Int

// maxWintPow is the largest power of 10 that fits into wint.
const maxWintPow = 77

// wpow10 is a cache of powers of 10, where wpow10[x] = 10^x.
var wpow10 = func() [maxWintPow + 1]wint {
	var p [maxWintPow + 1]wint
	ten := uint256.NewInt(10)
	p[0].u().SetOne()
	for i := 1; i < len(p); i++ {
		p[i].u().Mul(p[i-1].u(), ten)
	}
	return p
}()

func newWint(x uint64) wint {
	var z wint
	z.u().SetUint64(x)
	return z
}

func (z *wint) u() *uint256.Int {
	return (*uint256.Int)(z)
}

func (z *wint) isZero() bool {
	return z.u().IsZero()
}

func (z *wint) cmp(x *wint) int {
	return z.u().Cmp(x.u())
}

func (z *wint) string() string {
	return z.u().ToBig().String()
}

// fitsCoef reports whether z can be used as a coefficient.
func (z *wint) fitsCoef() bool {
	return z.u().BitLen() <= CoefBits
}

// add calculates z = x + y and checks overflow.
func (z *wint) add(x, y *wint) bool {
	_, overflow := z.u().AddOverflow(x.u(), y.u())
	return !overflow
}

// mul calculates z = x * y and checks overflow.
func (z *wint) mul(x, y *wint) bool {
	_, overflow := z.u().MulOverflow(x.u(), y.u())
	return !overflow
}

// dist calculates z = abs(x - y).
func (z *wint) dist(x, y *wint) {
	if x.cmp(y) > 0 {
		z.u().Sub(x.u(), y.u())
	} else {
		z.u().Sub(y.u(), x.u())
	}
}

// lsh (Left Shift) calculates z = x * 10^shift and checks overflow.
func (z *wint) lsh(x *wint, shift int) bool {
	// Special cases
	switch {
	case shift <= 0:
		*z = *x
		return true
	case x.isZero():
		*z = wint{}
		return true
	case shift > maxWintPow:
		return false
	}
	// General case
	return z.mul(x, &wpow10[shift])
}

// fsa (Fused Shift and Addition) calculates z = x * 10^shift + b and checks overflow.
func (z *wint) fsa(x *wint, shift int, b byte) bool {
	if !z.lsh(x, shift) {
		return false
	}
	y := newWint(uint64(b))
	return z.add(z, &y)
}

// lastDigit returns the least significant decimal digit of z.
func (z *wint) lastDigit() uint {
	var r uint256.Int
	r.Mod(z.u(), uint256.NewInt(10))
	return uint(r.Uint64())
}

// quoRound calculates z = x / y and rounds the result using the given mode.
// neg is the sign of the mathematical quotient.
// If y is zero, the result is unpredictable.
func (z *wint) quoRound(x, y *wint, neg bool, mode RoundingMode) {
	var q, r, t wint
	q.u().Div(x.u(), y.u())
	r.u().Mod(x.u(), y.u())
	if !r.isZero() {
		t.u().Sub(y.u(), r.u()) // r is compared with y - r to avoid doubling r
		if mode.roundUp(neg, r.cmp(&t), q.lastDigit) {
			q.u().AddUint64(q.u(), 1)
		}
	}
	*z = q
}

// rshRound (Right Shift) calculates z = x / 10^shift and rounds the result
// using the given mode.
func (z *wint) rshRound(x *wint, shift int, neg bool, mode RoundingMode) {
	// Special cases
	switch {
	case x.isZero():
		*z = wint{}
		return
	case shift <= 0:
		*z = *x
		return
	case shift > maxWintPow:
		// x < 10^shift / 2, the truncated quotient is 0.
		*z = wint{}
		if mode.roundUp(neg, -1, func() uint { return 0 }) {
			*z = newWint(1)
		}
		return
	}
	// General case
	z.quoRound(x, &wpow10[shift], neg, mode)
}

// bint (Big INTeger) is a wrapper around big.Int.
// It is used when an intermediate result does not fit into wint.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = func() [100]*bint {
	var p [100]*bint
	ten := big.NewInt(10)
	p[0] = (*bint)(big.NewInt(1))
	for i := 1; i < len(p); i++ {
		p[i] = (*bint)(new(big.Int).Mul((*big.Int)(p[i-1]), ten))
	}
	return p
}()

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

func (z *bint) setWint(x wint) {
	(*big.Int)(z).Set(x.u().ToBig())
}

// wint converts z to wint.
// If z is negative or cannot be represented as wint, ok is false.
func (z *bint) wint() (w wint, ok bool) {
	if z.sign() < 0 {
		return wint{}, false
	}
	u, overflow := uint256.FromBig((*big.Int)(z))
	if overflow {
		return wint{}, false
	}
	return wint(*u), true
}

// fitsCoef reports whether z can be used as a coefficient.
func (z *bint) fitsCoef() bool {
	return (*big.Int)(z).BitLen() <= CoefBits
}

// abs calculates z = abs(x).
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// inc calculates z = x + 1.
func (z *bint) inc(x *bint) {
	z.add(x, bpow10[0])
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// dist calculates z = abs(x - y).
func (z *bint) dist(x, y *bint) {
	switch x.cmp(y) {
	case 1:
		z.sub(x, y)
	default:
		z.sub(y, x)
	}
}

// dbl (Double) calculates z = x * 2.
func (z *bint) dbl(x *bint) {
	(*big.Int)(z).Lsh((*big.Int)(x), 1)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	(*big.Int)(z).Exp(big.NewInt(10), big.NewInt(int64(power)), nil)
}

// quoRem calculates z and r such that x = z * y + r.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// lastDigit returns the least significant decimal digit of abs(z).
func (z *bint) lastDigit() uint {
	r := getBint()
	defer putBint(r)
	(*big.Int)(r).Rem((*big.Int)(z), big.NewInt(10))
	(*big.Int)(r).Abs((*big.Int)(r))
	return uint((*big.Int)(r).Uint64())
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	if shift <= 0 {
		z.setBint(x)
		return
	}
	y := getBint()
	defer putBint(y)
	y.pow10(shift)
	z.mul(x, y)
}

// quoRound calculates z = x / y and rounds the result using the given mode.
// Both x and y are expected to be non-negative, neg is the sign of the
// mathematical quotient.
// If y is zero, quoRound panics.
func (z *bint) quoRound(x, y *bint, neg bool, mode RoundingMode) {
	q, r := getBint(), getBint()
	defer putBint(q)
	defer putBint(r)
	q.quoRem(x, y, r)
	if r.sign() != 0 {
		r.dbl(r) // r = r * 2
		if mode.roundUp(neg, r.cmp(y), q.lastDigit) {
			q.inc(q)
		}
	}
	z.setBint(q)
}

// rshRound (Right Shift) calculates z = x / 10^shift and rounds the result
// using the given mode.
func (z *bint) rshRound(x *bint, shift int, neg bool, mode RoundingMode) {
	// Special cases
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	// General case
	y := getBint()
	defer putBint(y)
	y.pow10(shift)
	z.quoRound(x, y, neg, mode)
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
