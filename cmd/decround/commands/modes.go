package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/scaledint/decimal"
)

type modeInfo struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

func modesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modes",
		Short: "List rounding modes, the default one is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def := opts.effectiveMode()
			modes := decimal.RoundingModes()
			infos := make([]modeInfo, 0, len(modes))
			var sb strings.Builder
			for i, m := range modes {
				infos = append(infos, modeInfo{Name: m.String(), Default: m == def})
				if i > 0 {
					sb.WriteByte('\n')
				}
				if m == def {
					sb.WriteString("* ")
				} else {
					sb.WriteString("  ")
				}
				sb.WriteString(m.String())
			}
			return opts.print(cmd.OutOrStdout(), infos, sb.String())
		},
	}
	return cmd
}
