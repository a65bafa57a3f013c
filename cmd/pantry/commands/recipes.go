package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "price <ingredient...> <price> <unit>",
		Short:   "Add or update the price of an ingredient",
		Example: "  pantry price Onion 1 oz\n  pantry price Olive oil 0.5 tbsp",
		Args:    cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[len(args)-2]
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return zerr.With(zerr.Wrap(domain.ErrInvalidPrice, "invalid price format"), "price", raw)
			}
			name := strings.Join(args[:len(args)-2], " ")
			unit := args[len(args)-1]
			return c.withApp(cmd, func(ctx context.Context) error {
				return c.app.SetPrice(ctx, name, price, unit)
			})
		},
	}
}

func (c *CLI) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search recipe names and ingredients",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return c.withApp(cmd, func(ctx context.Context) error {
				return c.app.Search(ctx, query)
			})
		},
	}
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [path]",
		Short: "List the folders and recipes of a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}
			return c.withApp(cmd, func(ctx context.Context) error {
				return c.app.List(ctx, path)
			})
		},
	}
}

func (c *CLI) newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "view <path/to/recipe>",
		Short:   "Show a recipe with its estimated cost",
		Example: "  pantry view /Soups/Gumbo",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := strings.Join(args, " ")
			if !strings.HasPrefix(ref, "/") {
				ref = "/" + ref
			}
			return c.withApp(cmd, func(ctx context.Context) error {
				return c.app.View(ctx, ref)
			})
		},
	}
}
