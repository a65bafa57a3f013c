// Package commands implements the CLI commands for the pantry recipe manager.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pantry/internal/app"
	"go.trai.ch/pantry/internal/build"
)

// CLI represents the command line interface for pantry.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Setup(ctx context.Context, opts app.Options) error
	Close(ctx context.Context) error
	Shell(ctx context.Context) error
	Convert(ctx context.Context, value float64, from, to string) error
	Units(ctx context.Context, unit string) error
	SetPrice(ctx context.Context, name string, price float64, measurement string) error
	Search(ctx context.Context, query string) error
	List(ctx context.Context, path string) error
	View(ctx context.Context, ref string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pantry",
		Short:         "A recipe manager with ingredient cost estimates and unit conversions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file (default: ./pantry.yaml)")
	rootCmd.PersistentFlags().String("conversions", "", "Conversion table to use instead of the configured one")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Directory holding the recipe and price databases")
	rootCmd.PersistentFlags().Bool("trace", false, "Print conversion spans to stderr")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write log messages as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.Flags().BoolP("watch", "w", false, "Reload the conversion table when its file changes")
	rootCmd.RunE = c.runShell

	rootCmd.AddCommand(c.newShellCmd())
	rootCmd.AddCommand(c.newConvertCmd())
	rootCmd.AddCommand(c.newUnitsCmd())
	rootCmd.AddCommand(c.newPriceCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newViewCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// withApp sets the application up from the command's flags, runs fn and closes the
// application again.
func (c *CLI) withApp(cmd *cobra.Command, fn func(ctx context.Context) error) (err error) {
	ctx := cmd.Context()
	if err := c.app.Setup(ctx, options(cmd)); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, c.app.Close(context.WithoutCancel(ctx)))
	}()
	return fn(ctx)
}

func options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	conversions, _ := cmd.Flags().GetString("conversions")
	dataDir, _ := cmd.Flags().GetString("data-dir")
	trace, _ := cmd.Flags().GetBool("trace")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	watch, _ := cmd.Flags().GetBool("watch")

	return app.Options{
		ConfigPath:  configPath,
		Conversions: conversions,
		DataDir:     dataDir,
		Trace:       trace,
		TraceOutput: cmd.ErrOrStderr(),
		JSONLogs:    jsonLogs,
		Watch:       watch,
		Stdout:      cmd.OutOrStdout(),
	}
}
