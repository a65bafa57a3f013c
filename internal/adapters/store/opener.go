package store

import (
	"context"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StoreOpener = (*Opener)(nil)

// Opener implements ports.StoreOpener.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the backend named by settings.Storage.
func (o *Opener) Open(ctx context.Context, settings domain.Settings) (ports.Store, error) {
	switch settings.Storage {
	case domain.StorageJSON, "":
		return NewFileStore(settings.RecipesPath(), settings.PricesPath()), nil
	case domain.StorageSQLite:
		return OpenSQLite(ctx, settings.DatabasePath())
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "unknown storage backend"), "storage", settings.Storage)
	}
}
