package decimal

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"gopkg.in/inf.v0"
)

// infRounders maps rounding modes to their gopkg.in/inf.v0 counterparts.
// Round05Up has no counterpart.
var infRounders = map[RoundingMode]inf.Rounder{
	RoundHalfEven: inf.RoundHalfEven,
	RoundHalfUp:   inf.RoundHalfUp,
	RoundHalfDown: inf.RoundHalfDown,
	RoundDown:     inf.RoundDown,
	RoundUp:       inf.RoundUp,
	RoundCeiling:  inf.RoundCeil,
	RoundFloor:    inf.RoundFloor,
}

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		m    RoundingMode
		want string
	}{
		{RoundDefault, "default"},
		{RoundHalfEven, "half-even"},
		{RoundHalfUp, "half-up"},
		{RoundHalfDown, "half-down"},
		{RoundDown, "down"},
		{RoundUp, "up"},
		{RoundCeiling, "ceiling"},
		{RoundFloor, "floor"},
		{Round05Up, "05up"},
		{RoundingMode(42), "RoundingMode(42)"},
	}
	for _, tt := range tests {
		got := tt.m.String()
		if got != tt.want {
			t.Errorf("RoundingMode(%d).String() = %q, want %q", int8(tt.m), got, tt.want)
		}
	}
}

func TestParseRoundingMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for _, m := range append(RoundingModes(), RoundDefault) {
			got, err := ParseRoundingMode(m.String())
			if err != nil {
				t.Errorf("ParseRoundingMode(%q) failed: %v", m, err)
				continue
			}
			if got != m {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", m, got, m)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "nearest", "HALF-EVEN", "RoundingMode(42)"}
		for _, name := range tests {
			_, err := ParseRoundingMode(name)
			if !errors.Is(err, errInvalidRoundingMode) {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", name, err, errInvalidRoundingMode)
			}
		}
	})
}

func TestDefaultRoundingMode(t *testing.T) {
	t.Cleanup(func() {
		if err := SetDefaultRoundingMode(RoundHalfEven); err != nil {
			t.Errorf("SetDefaultRoundingMode(%v) failed: %v", RoundHalfEven, err)
		}
	})

	if got := DefaultRoundingMode(); got != RoundHalfEven {
		t.Errorf("DefaultRoundingMode() = %v, want %v", got, RoundHalfEven)
	}

	t.Run("success", func(t *testing.T) {
		for _, m := range RoundingModes() {
			if err := SetDefaultRoundingMode(m); err != nil {
				t.Errorf("SetDefaultRoundingMode(%v) failed: %v", m, err)
				continue
			}
			if got := DefaultRoundingMode(); got != m {
				t.Errorf("DefaultRoundingMode() = %v, want %v", got, m)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, m := range []RoundingMode{RoundDefault, RoundingMode(-1), RoundingMode(42)} {
			if err := SetDefaultRoundingMode(m); err == nil {
				t.Errorf("SetDefaultRoundingMode(%v) did not fail", m)
			}
		}
	})

	t.Run("effect", func(t *testing.T) {
		x, y := big.NewInt(25), big.NewInt(10)
		tests := []struct {
			m    RoundingMode
			want int64
		}{
			{RoundHalfEven, 2},
			{RoundHalfUp, 3},
			{RoundDown, 2},
			{RoundCeiling, 3},
		}
		for _, tt := range tests {
			if err := SetDefaultRoundingMode(tt.m); err != nil {
				t.Fatalf("SetDefaultRoundingMode(%v) failed: %v", tt.m, err)
			}
			got, err := DivRounded(x, y, RoundDefault)
			if err != nil {
				t.Errorf("DivRounded(%v, %v, %v) failed: %v", x, y, RoundDefault, err)
				continue
			}
			if got.Int64() != tt.want {
				t.Errorf("with default %v, DivRounded(%v, %v, %v) = %v, want %v", tt.m, x, y, RoundDefault, got, tt.want)
			}
		}
	})
}

func TestDivRounded(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		modes := RoundingModes()
		tests := []struct {
			x, y int64
			want [8]int64 // in the order of RoundingModes()
		}{
			//         half-even, half-up, half-down, down, up, ceiling, floor, 05up
			{15, 10, [8]int64{2, 2, 1, 1, 2, 2, 1, 1}},
			{-15, 10, [8]int64{-2, -2, -1, -1, -2, -1, -2, -1}},
			{25, 10, [8]int64{2, 3, 2, 2, 3, 3, 2, 2}},
			{-25, 10, [8]int64{-2, -3, -2, -2, -3, -2, -3, -2}},
			{18, 10, [8]int64{2, 2, 2, 1, 2, 2, 1, 1}},
			{-12, 10, [8]int64{-1, -1, -1, -1, -2, -1, -2, -1}},
			{51, 10, [8]int64{5, 5, 5, 5, 6, 6, 5, 6}},
			{7, 2, [8]int64{4, 4, 3, 3, 4, 4, 3, 3}},
			{2, 3, [8]int64{1, 1, 1, 0, 1, 1, 0, 1}},
			{1, 3, [8]int64{0, 0, 0, 0, 1, 1, 0, 1}},
			{1, 30, [8]int64{0, 0, 0, 0, 1, 1, 0, 1}},
			{-1, 30, [8]int64{0, 0, 0, 0, -1, 0, -1, -1}},

			// Negative divisor
			{15, -10, [8]int64{-2, -2, -1, -1, -2, -1, -2, -1}},
			{-15, -10, [8]int64{2, 2, 1, 1, 2, 2, 1, 1}},

			// Exact division
			{30, 10, [8]int64{3, 3, 3, 3, 3, 3, 3, 3}},
			{-30, 10, [8]int64{-3, -3, -3, -3, -3, -3, -3, -3}},
			{0, 7, [8]int64{0, 0, 0, 0, 0, 0, 0, 0}},
		}
		for _, tt := range tests {
			x, y := big.NewInt(tt.x), big.NewInt(tt.y)
			for i, mode := range modes {
				got, err := DivRounded(x, y, mode)
				if err != nil {
					t.Errorf("DivRounded(%v, %v, %v) failed: %v", x, y, mode, err)
					continue
				}
				if got.Int64() != tt.want[i] {
					t.Errorf("DivRounded(%v, %v, %v) = %v, want %v", x, y, mode, got, tt.want[i])
				}
			}
			if x.Int64() != tt.x || y.Int64() != tt.y {
				t.Errorf("DivRounded modified its arguments: got %v, %v, want %v, %v", x, y, tt.x, tt.y)
			}
		}
	})

	t.Run("large", func(t *testing.T) {
		x, _ := new(big.Int).SetString("25"+strings.Repeat("0", 98), 10)
		y, _ := new(big.Int).SetString("1"+strings.Repeat("0", 99), 10)
		tests := []struct {
			mode RoundingMode
			want int64
		}{
			{RoundHalfEven, 2},
			{RoundHalfUp, 3},
			{RoundFloor, 2},
		}
		for _, tt := range tests {
			got, err := DivRounded(x, y, tt.mode)
			if err != nil {
				t.Errorf("DivRounded(%v, %v, %v) failed: %v", x, y, tt.mode, err)
				continue
			}
			if got.Int64() != tt.want {
				t.Errorf("DivRounded(%v, %v, %v) = %v, want %v", x, y, tt.mode, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			x, y int64
			mode RoundingMode
			want error
		}{
			"zero 1": {1, 0, RoundHalfEven, errDivisionByZero},
			"zero 2": {0, 0, RoundDefault, errDivisionByZero},
			"mode 1": {1, 1, RoundingMode(-1), errInvalidRoundingMode},
			"mode 2": {1, 1, RoundingMode(9), errInvalidRoundingMode},
		}
		for name, tt := range tests {
			x, y := big.NewInt(tt.x), big.NewInt(tt.y)
			_, err := DivRounded(x, y, tt.mode)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: DivRounded(%v, %v, %v) = %v, want %v", name, x, y, tt.mode, err, tt.want)
			}
		}
	})
}

func TestDivRounded_Distance(t *testing.T) {
	for x := int64(-60); x <= 60; x++ {
		for _, y := range []int64{1, 2, 3, 4, 5, 7, 10, 12, -3, -8} {
			bx, by := big.NewInt(x), big.NewInt(y)
			for _, mode := range RoundingModes() {
				got, err := DivRounded(bx, by, mode)
				if err != nil {
					t.Errorf("DivRounded(%v, %v, %v) failed: %v", x, y, mode, err)
					continue
				}

				// |got * y - x| < |y|
				dist := new(big.Int).Mul(got, by)
				dist.Sub(dist, bx)
				if dist.CmpAbs(by) >= 0 {
					t.Errorf("DivRounded(%v, %v, %v) = %v, which is not within 1 of the quotient", x, y, mode, got)
				}

				rounder, ok := infRounders[mode]
				if !ok {
					continue
				}
				want := new(inf.Dec).QuoRound(inf.NewDec(x, 0), inf.NewDec(y, 0), 0, rounder)
				if got.Cmp(want.UnscaledBig()) != 0 {
					t.Errorf("DivRounded(%v, %v, %v) = %v, whereas inf.Dec.QuoRound = %v", x, y, mode, got, want)
				}
			}
		}
	}
}
