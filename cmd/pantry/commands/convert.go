package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "convert <value> <from> <to>",
		Short:   "Convert a quantity between units",
		Example: "  pantry convert 2 lb g",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "invalid value"), "value", args[0])
			}
			return c.withApp(cmd, func(ctx context.Context) error {
				return c.app.Convert(ctx, value, args[1], args[2])
			})
		},
	}
}

func (c *CLI) newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units [unit]",
		Short: "List the units of the conversion table, or the units compatible with one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := ""
			if len(args) == 1 {
				unit = args[0]
			}
			return c.withApp(cmd, func(ctx context.Context) error {
				return c.app.Units(ctx, unit)
			})
		},
	}
}
