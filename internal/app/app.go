// Package app implements the application layer for pantry.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pantry/internal/adapters/telemetry"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/pantry/internal/engine/converter"
	"go.trai.ch/pantry/internal/ui/output"
	"go.trai.ch/pantry/internal/ui/style"
	"go.trai.ch/zerr"
)

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	storeOpener  ports.StoreOpener
	source       ports.ConversionSource
	watcher      ports.Watcher
	prompter     ports.Prompter
	logger       ports.Logger
	tracer       ports.Tracer

	out    io.Writer
	styles style.Styles

	settings  domain.Settings
	store     ports.Store
	converter ports.UnitConverter
	catalog   *domain.Catalog
	prices    domain.PriceBook
	provider  *sdktrace.TracerProvider
	watching  bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	opener ports.StoreOpener,
	source ports.ConversionSource,
	watcher ports.Watcher,
	prompter ports.Prompter,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		storeOpener:  opener,
		source:       source,
		watcher:      watcher,
		prompter:     prompter,
		logger:       log,
		tracer:       tracer,
		out:          os.Stdout,
		styles:       style.New(output.Renderer(os.Stdout)),
	}
}

// Options configures Setup.
type Options struct {
	// ConfigPath is an explicit config file. Empty searches the working directory.
	ConfigPath string
	// Conversions overrides the conversion table source.
	Conversions string
	// DataDir overrides the data directory.
	DataDir string
	// Trace prints finished spans to TraceOutput.
	Trace bool
	// TraceOutput receives spans when Trace is set. Defaults to stderr.
	TraceOutput io.Writer
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
	// Watch reloads the conversion table when its file changes while the shell runs.
	Watch bool
	// Stdout receives command output. Defaults to os.Stdout.
	Stdout io.Writer
}

// Setup loads the settings, opens the store and prepares the converter.
// A store whose data cannot be read or decoded is reported as a warning and replaced by an
// empty catalog or price book.
func (a *App) Setup(ctx context.Context, opts Options) error {
	settings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Conversions != "" {
		settings.ConversionsFile = opts.Conversions
	}
	if opts.DataDir != "" {
		settings.DataDir = opts.DataDir
	}
	if opts.Watch {
		settings.Conversions.Watch = true
	}
	if opts.JSONLogs {
		settings.Log.JSON = true
	}
	a.settings = settings

	if s, ok := a.logger.(jsonSwitcher); ok && settings.Log.JSON {
		s.SetJSON(true)
	}

	if opts.Stdout != nil {
		a.out = opts.Stdout
		a.styles = style.New(output.Renderer(opts.Stdout))
	}

	if opts.Trace {
		w := opts.TraceOutput
		if w == nil {
			w = os.Stderr
		}
		tp, err := telemetry.InstallStdout(w)
		if err != nil {
			return err
		}
		a.provider = tp
	}

	a.converter = converter.New(a.source, a.tracer, settings.ConversionsPath(), settings.SearchMode())

	store, err := a.storeOpener.Open(ctx, settings)
	if err != nil {
		return zerr.Wrap(err, "failed to open store")
	}
	a.store = store

	root, err := store.LoadCatalog(ctx)
	if err != nil {
		a.logger.Warn(message(err) + ", starting with an empty recipe database")
		root = nil
	}
	a.catalog = domain.NewCatalog(root)

	prices, err := store.LoadPrices(ctx)
	if err != nil {
		a.logger.Warn(message(err) + ", starting with an empty price database")
		prices = make(domain.PriceBook)
	}
	a.prices = prices

	return nil
}

// Close stops the watcher, releases the store and flushes pending spans.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			errs = append(errs, zerr.Wrap(err, "failed to stop watcher"))
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.provider != nil {
		if err := a.provider.Shutdown(ctx); err != nil {
			errs = append(errs, zerr.Wrap(err, "failed to flush traces"))
		}
	}
	return errors.Join(errs...)
}

// Settings returns the settings resolved by Setup.
func (a *App) Settings() domain.Settings {
	return a.settings
}

// Components holds the application components.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
}

// message returns the top-level message of err without its causes.
func message(err error) string {
	if m, ok := err.(interface{ Message() string }); ok && m.Message() != "" {
		return m.Message()
	}
	return err.Error()
}
