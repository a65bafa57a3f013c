package ports

import (
	"context"

	"go.trai.ch/pantry/internal/core/domain"
)

// Store persists the recipe tree and the ingredient price book.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	// LoadCatalog returns the stored recipe tree, or an empty tree if nothing is stored yet.
	LoadCatalog(ctx context.Context) (*domain.Folder, error)
	// SaveCatalog replaces the stored recipe tree.
	SaveCatalog(ctx context.Context, root *domain.Folder) error
	// LoadPrices returns the stored price book, or an empty one if nothing is stored yet.
	LoadPrices(ctx context.Context) (domain.PriceBook, error)
	// SavePrices replaces the stored price book.
	SavePrices(ctx context.Context, prices domain.PriceBook) error
	// Close releases the resources held by the store.
	Close() error
}

// StoreOpener opens the storage backend selected by the settings.
type StoreOpener interface {
	// Open opens the backend named by settings.Storage.
	Open(ctx context.Context, settings domain.Settings) (Store, error)
}
