package app

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"go.trai.ch/pantry/internal/adapters/watcher"
	"go.trai.ch/pantry/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// command is a single shell command.
type command struct {
	name  string
	usage string
	help  string
	run   func(ctx context.Context, arg string) error
}

// errExit ends the shell loop.
var errExit = errors.New("exit")

// userErrors are reported as warnings without their cause chain.
var userErrors = []error{
	domain.ErrFolderNotFound,
	domain.ErrFolderExists,
	domain.ErrFolderNotEmpty,
	domain.ErrAtRoot,
	domain.ErrRecipeNotFound,
	domain.ErrRecipeExists,
	domain.ErrInvalidName,
	domain.ErrNoConversionPath,
}

func (a *App) commands() []command {
	return []command{
		{name: "ls", usage: "ls", help: "List contents of current directory", run: func(ctx context.Context, arg string) error {
			return a.List(ctx, arg)
		}},
		{name: "cd", usage: "cd <folder>", help: "Enter a folder", run: func(_ context.Context, arg string) error {
			if arg == "" {
				a.printf("Usage: cd <folder> or cd ..\n")
				return nil
			}
			return a.ChangeDir(arg)
		}},
		{name: "cd", usage: "cd ..", help: "Go up one level"},
		{name: "mkdir", usage: "mkdir <folder>", help: "Create a new folder", run: a.requireArg("mkdir <folder>", a.MakeDir)},
		{name: "rmdir", usage: "rmdir <folder>", help: "Remove an empty folder", run: a.requireArg("rmdir <folder>", a.RemoveDir)},
		{name: "view", usage: "view <recipe>", help: "View a recipe", run: a.requireArg("view <recipe>", a.View)},
		{name: "create", usage: "create <recipe>", help: "Create a new recipe", run: a.requireArg("create <recipe>", a.Create)},
		{name: "edit", usage: "edit <recipe>", help: "Edit an existing recipe", run: a.requireArg("edit <recipe>", a.Edit)},
		{name: "delete", usage: "delete <recipe>", help: "Delete a recipe", run: a.requireArg("delete <recipe>", a.Delete)},
		{name: "move", usage: "move <recipe> <path>", help: "Move a recipe to another folder", run: a.moveCommand},
		{name: "search", usage: "search <query>", help: "Search for recipes", run: a.requireArg("search <query>", a.Search)},
		{name: "price", usage: "price <ingredient> <price> <unit>", help: "Add/update ingredient price", run: a.priceCommand},
		{name: "convert", usage: "convert <value> <from> <to>", help: "Convert a quantity between units", run: a.convertCommand},
		{name: "units", usage: "units [unit]", help: "List units, or the units compatible with one", run: a.Units},
		{name: "table", usage: "table <source>", help: "Switch to another conversion table", run: a.requireArg("table <source>", a.UseTable)},
		{name: "help", usage: "help", help: "Display this help message", run: func(context.Context, string) error {
			a.Help()
			return nil
		}},
		{name: "exit", usage: "exit", help: "Exit the application", run: func(context.Context, string) error {
			return errExit
		}},
	}
}

// Help prints the available shell commands.
func (a *App) Help() {
	a.printf("\n%s\n", a.styles.Heading.Render("Available commands:"))
	for _, cmd := range a.commands() {
		a.printf("  %s%s\n", pad(cmd.usage, helpColumn), cmd.help)
	}
}

// helpColumn is the width of the usage column of the help listing.
const helpColumn = 24

// pad right-pads s with spaces to width, keeping at least two spaces after it.
func pad(s string, width int) string {
	if n := width - len(s); n >= 2 {
		return s + strings.Repeat(" ", n)
	}
	return s + "  "
}

// Dispatch runs a single shell command line. It returns true when the line asks the shell
// to exit.
func (a *App) Dispatch(ctx context.Context, line string) (bool, error) {
	name, arg := splitFirst(strings.TrimSpace(line))
	if name == "" {
		return false, nil
	}
	name = strings.ToLower(name)

	for _, cmd := range a.commands() {
		if cmd.name != name || cmd.run == nil {
			continue
		}
		err := cmd.run(ctx, arg)
		if errors.Is(err, errExit) {
			a.printf("Goodbye!\n")
			return true, nil
		}
		return false, err
	}

	a.printf("Unknown command: %s. Type 'help' for available commands.\n", name)
	return false, nil
}

// Shell runs the interactive command loop until exit or the end of input.
// With watching enabled the conversion table is reloaded whenever its file changes.
func (a *App) Shell(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if a.settings.Conversions.Watch {
		if err := a.startWatch(gctx, g); err != nil {
			return err
		}
	}

	a.printf("\n%s\nWelcome to Pantry!\n%s\nType 'help' for available commands.\n", rule, rule)

	err := a.loop(ctx)
	cancel()
	err = errors.Join(err, g.Wait())
	a.watching = false
	return err
}

func (a *App) loop(ctx context.Context) error {
	for {
		a.printf("Current location: %s\n", a.catalog.Cwd())
		line, err := a.prompter.ReadLine(ctx, "> ")
		if errors.Is(err, io.EOF) {
			a.printf("Goodbye!\n")
			return nil
		}
		if err != nil {
			return err
		}

		exit, err := a.Dispatch(ctx, line)
		if err != nil {
			a.report(err)
		}
		if exit {
			return nil
		}
	}
}

// startWatch watches the conversion table file and reloads it after each burst of changes.
func (a *App) startWatch(ctx context.Context, g *errgroup.Group) error {
	if err := a.watcher.Start(ctx, a.converter.Source()); err != nil {
		return err
	}
	a.watching = true

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func() {
		changed, err := a.converter.Reload(ctx)
		switch {
		case err != nil:
			a.logger.Warn("conversion table reload failed: " + message(err))
		case changed:
			a.logger.Info("reloaded conversion table " + a.converter.Source())
		}
	})

	g.Go(func() error {
		defer debouncer.Stop()
		for range a.watcher.Events() {
			debouncer.Trigger()
		}
		return nil
	})
	return nil
}

// report prints a command error. Errors caused by user input are shown as a single warning
// line; anything else is logged with its cause chain.
func (a *App) report(err error) {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			a.logger.Warn(message(err))
			return
		}
	}
	a.logger.Error(err)
}

func (a *App) requireArg(usage string, run func(ctx context.Context, arg string) error) func(context.Context, string) error {
	return func(ctx context.Context, arg string) error {
		if arg == "" {
			a.printf("Usage: %s\n", usage)
			return nil
		}
		return run(ctx, arg)
	}
}

func (a *App) moveCommand(ctx context.Context, arg string) error {
	name, dest := splitFirst(arg)
	if name == "" || dest == "" {
		a.printf("Usage: move <recipe> <destination_path>\n")
		return nil
	}
	return a.Move(ctx, name, dest)
}

func (a *App) priceCommand(ctx context.Context, arg string) error {
	const usage = "price <ingredient> <price> <unit>"
	parts := strings.Fields(arg)
	if len(parts) < 3 {
		a.printf("Usage: %s\nExample: price Onion 1 oz\n", usage)
		return nil
	}
	price, err := strconv.ParseFloat(parts[len(parts)-2], 64)
	if err != nil {
		a.printf("Invalid price format. Usage: %s\n", usage)
		return nil
	}
	name := strings.Join(parts[:len(parts)-2], " ")
	return a.SetPrice(ctx, name, price, parts[len(parts)-1])
}

func (a *App) convertCommand(ctx context.Context, arg string) error {
	const usage = "convert <value> <from> <to>"
	parts := strings.Fields(arg)
	if len(parts) != 3 {
		a.printf("Usage: %s\nExample: convert 2 lb g\n", usage)
		return nil
	}
	value, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		a.printf("Invalid value format. Usage: %s\n", usage)
		return nil
	}
	return a.Convert(ctx, value, parts[1], parts[2])
}

// splitFirst splits s into its first whitespace-separated token and the trimmed rest.
func splitFirst(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
