package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/zerr"
)

// Cwd returns the current location in the recipe tree.
func (a *App) Cwd() string {
	return a.catalog.Cwd()
}

// List prints the folders and recipes at path, or at the current location when path is
// empty. Each recipe shows its estimated cost when it is known.
func (a *App) List(ctx context.Context, path string) error {
	folder := a.catalog.Current()
	if path != "" {
		f, _, err := a.catalog.ResolveFolder(path)
		if err != nil {
			return err
		}
		folder = f
	}
	a.renderListing(ctx, folder)
	return nil
}

// ChangeDir enters a sub-folder, or goes up one level for "..".
func (a *App) ChangeDir(name string) error {
	if name == ".." {
		return a.catalog.Up()
	}
	return a.catalog.Enter(name)
}

// MakeDir creates a folder at the current location.
func (a *App) MakeDir(ctx context.Context, name string) error {
	if err := a.catalog.CreateFolder(name); err != nil {
		return err
	}
	if err := a.saveCatalog(ctx); err != nil {
		return err
	}
	a.printf("Folder '%s' created!\n", name)
	return nil
}

// RemoveDir deletes an empty folder at the current location after confirmation.
func (a *App) RemoveDir(ctx context.Context, name string) error {
	f, err := a.catalog.Folder(name)
	if err != nil {
		return err
	}
	if !f.IsEmpty() {
		return a.catalog.DeleteFolder(name)
	}

	ok, err := a.confirm(ctx, fmt.Sprintf("Are you sure you want to delete folder '%s'? (y/n): ", name))
	if err != nil {
		return err
	}
	if !ok {
		a.printf("Deletion cancelled.\n")
		return nil
	}

	if err := a.catalog.DeleteFolder(name); err != nil {
		return err
	}
	if err := a.saveCatalog(ctx); err != nil {
		return err
	}
	a.printf("Folder '%s' deleted!\n", name)
	return nil
}

// View prints a recipe with its estimated costs. ref is a recipe name at the current
// location, or a path such as "/Soups/Gumbo".
func (a *App) View(ctx context.Context, ref string) error {
	folder := a.catalog.Current()
	name := ref
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		dir := ref[:i]
		if dir == "" {
			dir = "/"
		}
		f, _, err := a.catalog.ResolveFolder(dir)
		if err != nil {
			return err
		}
		folder, name = f, ref[i+1:]
	}

	r, err := folder.Lookup(name)
	if err != nil {
		return err
	}
	a.renderRecipe(ctx, name, r)
	return nil
}

// Create asks for a new recipe's ingredients, instructions and notes and stores it at the
// current location.
func (a *App) Create(ctx context.Context, name string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}
	if _, err := a.catalog.Recipe(name); err == nil {
		msg := fmt.Sprintf("recipe '%s' already exists, use 'edit' to modify it", name)
		return zerr.With(zerr.Wrap(domain.ErrRecipeExists, msg), "recipe", name)
	}

	a.printf("\nCreating new recipe: %s\n", name)
	ingredients, err := a.readIngredients(ctx)
	if err != nil {
		return err
	}

	a.printf("\nEnter instructions (multi-line, type 'END' on a new line to finish):\n")
	instructions, err := a.readBlock(ctx)
	if err != nil {
		return err
	}

	a.printf("\nEnter notes (optional, multi-line, type 'END' on a new line to finish):\n")
	notes, err := a.readBlock(ctx)
	if err != nil {
		return err
	}

	r := &domain.Recipe{Ingredients: ingredients, Instructions: instructions, Notes: notes}
	if err := a.catalog.AddRecipe(name, r); err != nil {
		return err
	}
	if err := a.saveCatalog(ctx); err != nil {
		return err
	}
	a.printf("Recipe '%s' created successfully!\n", name)

	if cost := a.recipeCost(ctx, r); cost.Known {
		a.printf("Estimated cost: %s\n", formatMoney(cost.Total))
	} else {
		a.printf("Could not calculate price due to missing ingredient price data.\n")
	}
	return nil
}

// Edit walks through a recipe's sections and replaces the ones the user chooses to edit.
func (a *App) Edit(ctx context.Context, name string) error {
	r, err := a.catalog.Recipe(name)
	if err != nil {
		return err
	}

	a.printf("\nEditing recipe: %s\n", name)
	a.printf("\nCurrent ingredients:\n")
	a.renderNumberedIngredients(ctx, r)

	ok, err := a.confirm(ctx, "\nEdit ingredients? (y/n): ")
	if err != nil {
		return err
	}
	if ok {
		ingredients, err := a.readIngredients(ctx)
		if err != nil {
			return err
		}
		r.Ingredients = ingredients
	}

	a.printf("\nCurrent instructions:\n")
	a.renderWrapped(r.Instructions, "")

	ok, err = a.confirm(ctx, "\nEdit instructions? (y/n): ")
	if err != nil {
		return err
	}
	if ok {
		a.printf("Enter instructions (multi-line, type 'END' on a new line to finish):\n")
		if r.Instructions, err = a.readBlock(ctx); err != nil {
			return err
		}
	}

	a.printf("\nCurrent notes:\n")
	a.renderWrapped(r.Notes, "(No notes)")

	ok, err = a.confirm(ctx, "\nEdit notes? (y/n): ")
	if err != nil {
		return err
	}
	if ok {
		a.printf("Enter notes (multi-line, type 'END' on a new line to finish):\n")
		if r.Notes, err = a.readBlock(ctx); err != nil {
			return err
		}
	}

	if err := a.saveCatalog(ctx); err != nil {
		return err
	}
	a.printf("Recipe '%s' updated successfully!\n", name)

	if cost := a.recipeCost(ctx, r); cost.Known {
		a.printf("Updated estimated cost: %s\n", formatMoney(cost.Total))
	}
	return nil
}

// Delete removes a recipe from the current location after confirmation.
func (a *App) Delete(ctx context.Context, name string) error {
	if _, err := a.catalog.Recipe(name); err != nil {
		return err
	}

	ok, err := a.confirm(ctx, fmt.Sprintf("Are you sure you want to delete '%s'? (y/n): ", name))
	if err != nil {
		return err
	}
	if !ok {
		a.printf("Deletion cancelled.\n")
		return nil
	}

	if err := a.catalog.DeleteRecipe(name); err != nil {
		return err
	}
	if err := a.saveCatalog(ctx); err != nil {
		return err
	}
	a.printf("Recipe '%s' deleted!\n", name)
	return nil
}

// Move moves a recipe from the current location to dest.
func (a *App) Move(ctx context.Context, name, dest string) error {
	path, err := a.catalog.MoveRecipe(name, dest)
	if err != nil {
		return err
	}
	if err := a.saveCatalog(ctx); err != nil {
		return err
	}
	a.printf("Recipe '%s' moved to %s\n", name, path)
	return nil
}

// Search prints every recipe whose name or ingredients contain query.
func (a *App) Search(ctx context.Context, query string) error {
	hits := a.catalog.Search(query)
	if len(hits) == 0 {
		a.printf("No recipes found containing '%s'\n", query)
		return nil
	}

	a.printf("\nFound %d results for '%s':\n", len(hits), query)
	for _, hit := range hits {
		price := ""
		if cost := a.recipeCost(ctx, hit.Recipe); cost.Known {
			price = " (Est: " + formatMoney(cost.Total) + ")"
		}
		a.printf("  %s%s (in %s) - matched in %s\n", hit.Name, price, domain.FormatPath(hit.Path), hit.Match)
	}
	return nil
}

// SetPrice stores the price of one measurement unit of an ingredient.
func (a *App) SetPrice(ctx context.Context, name string, price float64, measurement string) error {
	if err := a.prices.Set(name, price, measurement); err != nil {
		return err
	}
	if err := a.store.SavePrices(ctx, a.prices); err != nil {
		return err
	}
	a.printf("Price data for '%s' added/updated.\n", name)
	return nil
}

func (a *App) saveCatalog(ctx context.Context) error {
	return a.store.SaveCatalog(ctx, a.catalog.Root())
}

// readIngredients reads ingredient lines until an empty line or the end of input.
func (a *App) readIngredients(ctx context.Context) (domain.IngredientList, error) {
	a.printf("Enter ingredients (format: ingredient amount unit, empty line to finish):\n")
	a.printf("Example: Shrimp 1 lb\n")

	var list domain.IngredientList
	for {
		line, err := a.prompter.ReadLine(ctx, "> ")
		if errors.Is(err, io.EOF) {
			return list, nil
		}
		if err != nil {
			return nil, err
		}
		ing, ok := domain.ParseIngredientLine(line)
		if !ok {
			return list, nil
		}
		list = upsertIngredient(list, ing)
	}
}

// upsertIngredient appends ing, replacing an earlier ingredient of the same name in place.
func upsertIngredient(list domain.IngredientList, ing domain.Ingredient) domain.IngredientList {
	for i := range list {
		if list[i].Name == ing.Name {
			list[i] = ing
			return list
		}
	}
	return append(list, ing)
}

// readBlock reads lines until a line reading END or the end of input and joins them with
// spaces.
func (a *App) readBlock(ctx context.Context) (string, error) {
	var lines []string
	for {
		line, err := a.prompter.ReadLine(ctx, "")
		if errors.Is(err, io.EOF) {
			return strings.Join(lines, " "), nil
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "END" {
			return strings.Join(lines, " "), nil
		}
		lines = append(lines, line)
	}
}

func (a *App) confirm(ctx context.Context, question string) (bool, error) {
	answer, err := a.prompter.ReadLine(ctx, question)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
