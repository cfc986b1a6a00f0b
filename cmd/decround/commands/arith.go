package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scaledint/decimal"
)

type operation struct {
	name  string
	short string
	fn    func(d, e decimal.Decimal, scale int, mode decimal.RoundingMode) (decimal.Decimal, error)
}

var operations = []operation{
	{"mul", "Multiply two decimals and round the product", decimal.Decimal.MulRoundedMode},
	{"add", "Add two decimals and round the sum", decimal.Decimal.AddRoundedMode},
	{"sub", "Subtract two decimals and round the difference", decimal.Decimal.SubRoundedMode},
	{"quo", "Divide two decimals and round the quotient", decimal.Decimal.QuoRoundedMode},
}

// result is the JSON form of a computed operation.
type result struct {
	Op     string          `json:"op"`
	X      decimal.Decimal `json:"x"`
	Y      decimal.Decimal `json:"y"`
	Scale  int             `json:"scale"`
	Mode   string          `json:"mode"`
	Result decimal.Decimal `json:"result"`
}

func arithCmd(op operation, opts *options) *cobra.Command {
	var scale int
	cmd := &cobra.Command{
		Use:   op.name + " <x> <y>",
		Short: op.short,
		Long: op.short + ".\n\n" +
			"The result has at most --scale digits after the decimal point.\n" +
			"Negative operands must follow \"--\", for example: decround " + op.name + " -s 2 -- -1.5 3",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := decimal.Parse(args[0])
			if err != nil {
				return fmt.Errorf("first operand: %w", err)
			}
			y, err := decimal.Parse(args[1])
			if err != nil {
				return fmt.Errorf("second operand: %w", err)
			}

			log := opts.log.With(
				zap.String("op", op.name),
				zap.Stringer("x", x),
				zap.Stringer("y", y),
				zap.Int("scale", scale),
				zap.Stringer("mode", opts.effectiveMode()),
			)
			log.Debug("computing")

			z, err := op.fn(x, y, scale, opts.mode)
			if err != nil {
				log.Debug("computation failed", zap.Error(err))
				return err
			}
			log.Debug("computed", zap.Stringer("result", z), zap.Int("result_scale", z.Scale()))

			return opts.print(cmd.OutOrStdout(), result{
				Op:     op.name,
				X:      x,
				Y:      y,
				Scale:  scale,
				Mode:   opts.effectiveMode().String(),
				Result: z,
			}, z.String())
		},
	}
	cmd.Flags().IntVarP(&scale, "scale", "s", 0, fmt.Sprintf("number of digits after the decimal point (0 to %v)", decimal.MaxScale))
	_ = cmd.MarkFlagRequired("scale")
	return cmd
}
