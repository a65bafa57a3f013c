package ports

import (
	"context"

	"go.trai.ch/pantry/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=converter.go -destination=mocks/mock_converter.go -package=mocks

// ConversionSource loads conversion tables.
type ConversionSource interface {
	// Load reads and validates the conversion table identified by source.
	// It returns domain.ErrTableNotFound when the source does not exist and
	// domain.ErrTableMalformed when it is not a mapping of units to positive factors.
	Load(ctx context.Context, source string) (*domain.ConversionTable, error)
	// Digest returns the content hash of the source without parsing it.
	Digest(ctx context.Context, source string) (string, error)
}

// UnitConverter converts quantities between units using a conversion table.
type UnitConverter interface {
	// Convert converts value from one unit to another.
	Convert(ctx context.Context, value float64, from, to string) (float64, error)
	// AvailableUnits returns the units that have outgoing conversions, in table order.
	AvailableUnits(ctx context.Context) ([]string, error)
	// CompatibleUnits returns the units one conversion away from unit, in either direction.
	CompatibleUnits(ctx context.Context, unit string) ([]string, error)
	// UseTable loads source and makes it the default table.
	UseTable(ctx context.Context, source string) error
	// Reload re-reads the active table. It reports whether the table changed.
	Reload(ctx context.Context) (bool, error)
	// Source returns the default table source.
	Source() string
}
