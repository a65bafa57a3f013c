// Package converter implements the unit conversion engine on top of a cached conversion table.
package converter

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.UnitConverter = (*Converter)(nil)

// State is the single cached table slot of a Converter.
type State struct {
	// Table is the loaded table, nil until the first load.
	Table *domain.ConversionTable
	// Source is the source the table was loaded from.
	Source string
}

// Converter converts quantities between units.
//
// It owns a single cache slot: the most recently loaded table, whatever its source. Loads
// are lazy unless triggered by UseTable. All methods are safe for concurrent use.
type Converter struct {
	source ports.ConversionSource
	tracer ports.Tracer
	mode   domain.SearchMode

	mu            sync.RWMutex
	defaultSource string
	state         State
}

// New creates a new Converter reading tables from source, with defaultSource as the table
// used when no explicit source is given.
func New(
	source ports.ConversionSource,
	tracer ports.Tracer,
	defaultSource string,
	mode domain.SearchMode,
) *Converter {
	return &Converter{
		source:        source,
		tracer:        tracer,
		mode:          mode,
		defaultSource: defaultSource,
	}
}

// Source returns the default table source.
func (c *Converter) Source() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defaultSource
}

// State returns a snapshot of the cache slot.
func (c *Converter) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Table returns the conversion table for source.
//
// An empty source means the cached table, whatever it was loaded from, or the default source
// when nothing is cached yet. An explicit source equal to the cached one returns the cache;
// any other explicit source is loaded into the slot without becoming the default.
func (c *Converter) Table(ctx context.Context, source string) (*domain.ConversionTable, error) {
	c.mu.RLock()
	cached := c.state
	c.mu.RUnlock()
	if cached.Table != nil && (source == "" || source == cached.Source) {
		return cached.Table, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Table != nil && (source == "" || source == c.state.Source) {
		return c.state.Table, nil
	}
	if source == "" {
		source = c.defaultSource
	}

	table, err := c.load(ctx, source)
	if err != nil {
		return nil, err
	}
	c.state = State{Table: table, Source: source}
	return table, nil
}

// UseTable switches the default table to source and loads it eagerly.
// When the load fails the previous table and default stay in place.
func (c *Converter) UseTable(ctx context.Context, source string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, err := c.load(ctx, source)
	if err != nil {
		return err
	}
	c.defaultSource = source
	c.state = State{Table: table, Source: source}
	return nil
}

// Reload re-reads the active table and reports whether it changed.
// A source whose digest matches the cached table is not parsed again. On failure the previous
// table stays active.
func (c *Converter) Reload(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	source := c.state.Source
	if c.state.Table == nil {
		source = c.defaultSource
	}

	if c.state.Table != nil {
		digest, err := c.source.Digest(ctx, source)
		if err != nil {
			return false, err
		}
		if digest == c.state.Table.Digest {
			return false, nil
		}
	}

	table, err := c.load(ctx, source)
	if err != nil {
		return false, err
	}
	c.state = State{Table: table, Source: source}
	return true, nil
}

// load reads a table from source. The caller must hold the write lock.
func (c *Converter) load(ctx context.Context, source string) (*domain.ConversionTable, error) {
	ctx, span := c.tracer.Start(ctx, "load_table", ports.WithAttributes(map[string]any{"source": source}))
	defer span.End()

	table, err := c.source.Load(ctx, source)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("units", table.Len())
	span.SetAttribute("edges", table.EdgeCount())
	return table, nil
}

// Convert converts value from one unit to another.
//
// Equal units return value unchanged without loading the table. Otherwise a direct edge is
// multiplied, a reverse edge divided, and as a last resort the table is searched depth-first
// for a chain of edges. Unconnected units fail with domain.ErrNoConversionPath.
func (c *Converter) Convert(ctx context.Context, value float64, from, to string) (float64, error) {
	ctx, span := c.tracer.Start(ctx, "convert", ports.WithAttributes(map[string]any{"from": from, "to": to}))
	defer span.End()

	if from == to {
		span.SetAttribute("strategy", string(domain.StrategyIdentity))
		span.SetAttribute("hops", 0)
		return value, nil
	}

	table, err := c.Table(ctx, "")
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	path, strategy, err := table.Resolve(from, to, c.mode)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	span.SetAttribute("strategy", string(strategy))
	span.SetAttribute("hops", path.Hops())
	return path.Apply(value), nil
}

// AvailableUnits returns the units with outgoing conversions, in table order.
func (c *Converter) AvailableUnits(ctx context.Context) ([]string, error) {
	table, err := c.Table(ctx, "")
	if err != nil {
		return nil, err
	}
	return table.Units(), nil
}

// CompatibleUnits returns the units one conversion away from unit, sorted by name.
func (c *Converter) CompatibleUnits(ctx context.Context, unit string) ([]string, error) {
	table, err := c.Table(ctx, "")
	if err != nil {
		return nil, zerr.With(err, "unit", unit)
	}
	units := table.Compatible(unit)
	slices.Sort(units)
	return units, nil
}
