// Package store persists the recipe tree and the ingredient price book.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Store = (*FileStore)(nil)

// FileStore implements ports.Store with two JSON files.
type FileStore struct {
	recipesPath string
	pricesPath  string
	mu          sync.Mutex
}

// NewFileStore creates a FileStore reading and writing the given files.
func NewFileStore(recipesPath, pricesPath string) *FileStore {
	return &FileStore{
		recipesPath: filepath.Clean(recipesPath),
		pricesPath:  filepath.Clean(pricesPath),
	}
}

// LoadCatalog reads the recipe tree. A missing or empty file yields an empty tree.
func (s *FileStore) LoadCatalog(_ context.Context) (*domain.Folder, error) {
	root := domain.NewFolder()
	if err := s.read(s.recipesPath, root); err != nil {
		return nil, err
	}
	return root, nil
}

// SaveCatalog writes the recipe tree.
func (s *FileStore) SaveCatalog(_ context.Context, root *domain.Folder) error {
	return s.write(s.recipesPath, root)
}

// LoadPrices reads the price book. A missing or empty file yields an empty book.
func (s *FileStore) LoadPrices(_ context.Context) (domain.PriceBook, error) {
	prices := make(domain.PriceBook)
	if err := s.read(s.pricesPath, &prices); err != nil {
		return nil, err
	}
	if prices == nil {
		prices = make(domain.PriceBook)
	}
	return prices, nil
}

// SavePrices writes the price book.
func (s *FileStore) SavePrices(_ context.Context, prices domain.PriceBook) error {
	return s.write(s.pricesPath, prices)
}

// Close does nothing; files are not held open.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) read(path string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}
	return nil
}

func (s *FileStore) write(path string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}
