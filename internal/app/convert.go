package app

import (
	"context"
	"math"
	"strconv"
)

// Convert converts value between two units and prints the result.
func (a *App) Convert(ctx context.Context, value float64, from, to string) error {
	result, err := a.converter.Convert(ctx, value, from, to)
	if err != nil {
		return err
	}
	a.printf("%s %s = %s %s\n", formatQuantity(value), from, a.styles.Success.Render(formatQuantity(result)), to)
	return nil
}

// Units prints the units of the conversion table. With a unit it prints the units one
// conversion away from it instead.
func (a *App) Units(ctx context.Context, unit string) error {
	var (
		units   []string
		heading string
		err     error
	)
	if unit == "" {
		heading = "Available units:"
		units, err = a.converter.AvailableUnits(ctx)
	} else {
		heading = "Units compatible with '" + unit + "':"
		units, err = a.converter.CompatibleUnits(ctx, unit)
	}
	if err != nil {
		return err
	}

	a.printf("\n%s\n", a.styles.Heading.Render(heading))
	if len(units) == 0 {
		a.printf("  %s\n", a.styles.Muted.Render("(No units)"))
	}
	for _, u := range units {
		a.printf("  %s\n", u)
	}
	a.printf("\n")
	return nil
}

// UseTable switches the converter to the conversion table at source. A running watcher follows
// the switch.
func (a *App) UseTable(ctx context.Context, source string) error {
	if err := a.converter.UseTable(ctx, source); err != nil {
		return err
	}
	a.printf("Using conversion table %s\n", source)

	if a.watching {
		if err := a.watcher.Retarget(a.converter.Source()); err != nil {
			a.logger.Warn("conversion table changes will not be picked up: " + message(err))
		}
	}
	return nil
}

// formatQuantity prints v with at most six decimals and no trailing zeros.
func formatQuantity(v float64) string {
	rounded := math.Round(v*1e6) / 1e6
	if rounded == 0 {
		rounded = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
