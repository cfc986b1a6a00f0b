package decimal

import (
	"fmt"
	"testing"
)

func TestForwarding(t *testing.T) {
	x := MustNew(12345, 3) // 12.345
	y := MustNew(12345, 1) // 1234.5

	type op func(scale int, mode RoundingMode) ([4]Decimal, [4]error)

	ops := map[string]op{
		"MulRounded": func(scale int, mode RoundingMode) (got [4]Decimal, err [4]error) {
			got[0], err[0] = MulRounded(x, y, scale, mode)
			got[1], err[1] = MulRounded(&x, y, scale, mode)
			got[2], err[2] = MulRounded(x, &y, scale, mode)
			got[3], err[3] = MulRounded(&x, &y, scale, mode)
			return
		},
		"AddRounded": func(scale int, mode RoundingMode) (got [4]Decimal, err [4]error) {
			got[0], err[0] = AddRounded(x, y, scale, mode)
			got[1], err[1] = AddRounded(&x, y, scale, mode)
			got[2], err[2] = AddRounded(x, &y, scale, mode)
			got[3], err[3] = AddRounded(&x, &y, scale, mode)
			return
		},
		"SubRounded": func(scale int, mode RoundingMode) (got [4]Decimal, err [4]error) {
			got[0], err[0] = SubRounded(x, y, scale, mode)
			got[1], err[1] = SubRounded(&x, y, scale, mode)
			got[2], err[2] = SubRounded(x, &y, scale, mode)
			got[3], err[3] = SubRounded(&x, &y, scale, mode)
			return
		},
		"QuoRounded": func(scale int, mode RoundingMode) (got [4]Decimal, err [4]error) {
			got[0], err[0] = QuoRounded(x, y, scale, mode)
			got[1], err[1] = QuoRounded(&x, y, scale, mode)
			got[2], err[2] = QuoRounded(x, &y, scale, mode)
			got[3], err[3] = QuoRounded(&x, &y, scale, mode)
			return
		},
	}
	methods := map[string]func(d, e Decimal, scale int, mode RoundingMode) (Decimal, error){
		"MulRounded": Decimal.MulRoundedMode,
		"AddRounded": Decimal.AddRoundedMode,
		"SubRounded": Decimal.SubRoundedMode,
		"QuoRounded": Decimal.QuoRoundedMode,
	}

	for name, fn := range ops {
		t.Run(name, func(t *testing.T) {
			for _, mode := range append(RoundingModes(), RoundDefault) {
				for _, scale := range []int{0, 1, 2, 5, MaxScale} {
					want, wantErr := methods[name](x, y, scale, mode)
					got, errs := fn(scale, mode)
					for i := range got {
						if fmt.Sprint(errs[i]) != fmt.Sprint(wantErr) {
							t.Errorf("%v(%q, %q, %v, %v) call %v = %v, want %v", name, x, y, scale, mode, i, errs[i], wantErr)
							continue
						}
						if got[i] != want {
							t.Errorf("%v(%q, %q, %v, %v) call %v = %q, want %q", name, x, y, scale, mode, i, got[i], want)
						}
					}
				}
			}
		})
	}

	t.Run("product", func(t *testing.T) {
		got, err := MulRounded(&x, &y, 2, RoundDefault)
		if err != nil {
			t.Fatalf("MulRounded(%q, %q, 2, %v) failed: %v", x, y, RoundDefault, err)
		}
		if got.Coef().Int64() != 1523990 || got.Scale() != 2 {
			t.Errorf("MulRounded(%q, %q, 2, %v) = %q, want %q", x, y, RoundDefault, got, "15239.90")
		}
	})

	t.Run("operands", func(t *testing.T) {
		xs, ys := x.String(), y.String()
		for name, fn := range ops {
			fn(2, RoundUp)
			if x.String() != xs || y.String() != ys {
				t.Errorf("%v modified its operands: got %q, %q, want %q, %q", name, x, y, xs, ys)
			}
		}
	})

	t.Run("nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MulRounded(nil, %q, 2, %v) did not panic", y, RoundDefault)
			}
		}()
		var p *Decimal
		_, _ = MulRounded(p, y, 2, RoundDefault)
	})
}
