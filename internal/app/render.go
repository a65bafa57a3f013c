package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/ui/style"
)

const (
	// wrapWidth is the column at which instructions and notes are wrapped.
	wrapWidth = 70
	// ruleWidth is the width of the separator lines around a recipe view.
	ruleWidth = 50
)

var rule = strings.Repeat("=", ruleWidth)

// recipeCost estimates the cost of r with the current price book and conversion table.
// Conversion failures are reported as warnings and leave the ingredient's cost unknown.
func (a *App) recipeCost(ctx context.Context, r *domain.Recipe) domain.RecipeCost {
	cost := a.estimator(ctx).Recipe(r)
	for i, item := range cost.Items {
		if item.Err != nil {
			a.warnConversion(r.Ingredients[i], item)
		}
	}
	return cost
}

// ingredientCost estimates the cost of a single ingredient. Ingredients without an amount
// are never priced.
func (a *App) ingredientCost(ctx context.Context, ing domain.Ingredient) domain.IngredientCost {
	if !ing.HasAmount() {
		return domain.IngredientCost{Name: ing.Name}
	}
	cost := a.estimator(ctx).Ingredient(ing)
	if cost.Err != nil {
		a.warnConversion(ing, cost)
	}
	return cost
}

func (a *App) estimator(ctx context.Context) *domain.Estimator {
	return domain.NewEstimator(a.prices, func(value float64, from, to string) (float64, error) {
		return a.converter.Convert(ctx, value, from, to)
	})
}

func (a *App) warnConversion(ing domain.Ingredient, cost domain.IngredientCost) {
	price, _ := a.prices.Lookup(ing.Name)
	a.logger.Warn(fmt.Sprintf("Could not convert %s to %s for %s: %s",
		ing.Unit, price.Measurement, ing.Name, message(cost.Err)))
}

func (a *App) renderListing(ctx context.Context, folder *domain.Folder) {
	a.printf("\n%s\n", a.styles.Heading.Render("Folders:"))
	names := folder.FolderNames()
	if len(names) == 0 {
		a.printf("  %s\n", a.styles.Muted.Render("(No folders)"))
	}
	for _, name := range names {
		a.printf("  %s %s\n", style.Folder, name)
	}

	a.printf("\n%s\n", a.styles.Heading.Render("Recipes:"))
	names = folder.RecipeNames()
	if len(names) == 0 {
		a.printf("  %s\n", a.styles.Muted.Render("(No recipes)"))
	}
	for _, name := range names {
		line := "  " + style.Recipe + " " + name
		if cost := a.recipeCost(ctx, folder.Recipes[name]); cost.Known {
			line += " " + a.styles.Muted.Render("(Est: "+formatMoney(cost.Total)+")")
		}
		a.printf("%s\n", line)
	}
	a.printf("\n")
}

func (a *App) renderRecipe(ctx context.Context, name string, r *domain.Recipe) {
	a.printf("\n%s\n", rule)
	a.printf("%s %s\n", a.styles.Label.Render("Recipe:"), a.styles.Heading.Render(name))
	a.printf("%s\n", rule)

	cost := a.recipeCost(ctx, r)
	if cost.Known {
		a.printf("\nTotal Estimated Cost: %s\n", a.styles.Success.Render(formatMoney(cost.Total)))
	} else {
		a.printf("\nTotal Estimated Cost: Unknown (missing price data)\n")
	}

	a.printf("\n%s\n", a.styles.Heading.Render("Ingredients:"))
	var missing []string
	for i, ing := range r.Ingredients {
		text := "  " + style.Bullet + " " + ingredientText(ing)
		if item := cost.Items[i]; ing.HasAmount() && item.Known {
			a.printf("%s (%s)\n", text, formatMoney(item.Cost))
			continue
		}
		a.printf("%s %s\n", text, a.styles.Muted.Render("(price unknown)"))
		missing = append(missing, ing.Name)
	}
	if len(missing) > 0 {
		a.printf("\nNote: Missing price data for: %s\n", strings.Join(missing, ", "))
	}

	a.printf("\n%s\n", a.styles.Heading.Render("Instructions:"))
	a.renderWrapped(r.Instructions, "")

	if r.Notes != "" {
		a.printf("\n%s\n", a.styles.Heading.Render("Notes:"))
		a.renderWrapped(r.Notes, "")
	}
	a.printf("\n%s\n\n", rule)
}

// renderNumberedIngredients prints the ingredient list the way the editor shows it.
func (a *App) renderNumberedIngredients(ctx context.Context, r *domain.Recipe) {
	for i, ing := range r.Ingredients {
		text := fmt.Sprintf("  %d. %s", i+1, ingredientText(ing))
		if !ing.HasAmount() && ing.Unit != "" {
			text = fmt.Sprintf("  %d. %s: %s", i+1, ing.Name, ing.Unit)
		}
		if cost := a.ingredientCost(ctx, ing); cost.Known {
			a.printf("%s (%s)\n", text, formatMoney(cost.Cost))
			continue
		}
		a.printf("%s (price unknown)\n", text)
	}
}

// renderWrapped prints text wrapped and indented by two spaces. Empty text prints
// placeholder instead, or nothing when placeholder is empty.
func (a *App) renderWrapped(text, placeholder string) {
	lines := wrap(text, wrapWidth)
	if len(lines) == 0 && placeholder != "" {
		a.printf("  %s\n", placeholder)
		return
	}
	for _, line := range lines {
		a.printf("  %s\n", line)
	}
}

// wrap splits text into lines of at most width columns, breaking on whitespace.
func wrap(text string, width int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil
	}
	lines := strings.Split(wordwrap.String(text, width), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// ingredientText renders "name: amount unit", leaving out the parts that are not set.
func ingredientText(ing domain.Ingredient) string {
	if !ing.HasAmount() {
		return ing.Name
	}
	amount := strconv.FormatFloat(*ing.Amount, 'f', -1, 64)
	if ing.Unit == "" {
		return ing.Name + ": " + amount
	}
	return ing.Name + ": " + amount + " " + ing.Unit
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
