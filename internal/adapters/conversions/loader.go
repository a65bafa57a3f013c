// Package conversions loads conversion tables from JSON or YAML files.
package conversions

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConversionSource = (*FileSource)(nil)

// FileSource implements ports.ConversionSource for table files on disk.
//
// A table file is a mapping of units to mappings of target units and factors. JSON files
// are read as YAML flow documents, which keeps the key order of the file.
type FileSource struct{}

// NewFileSource creates a new FileSource.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Load reads and validates the table at path.
func (s *FileSource) Load(_ context.Context, path string) (*domain.ConversionTable, error) {
	data, err := read(path)
	if err != nil {
		return nil, err
	}

	table, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "source", path)
	}
	table.Source = path
	table.Digest = digest(data)
	return table, nil
}

// Digest returns the content hash of the file at path.
func (s *FileSource) Digest(_ context.Context, path string) (string, error) {
	data, err := read(path)
	if err != nil {
		return "", err
	}
	return digest(data), nil
}

func read(path string) ([]byte, error) {
	//nolint:gosec // Path is provided by the user on purpose
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			msg := fmt.Sprintf("conversion table '%s' not found", path)
			return nil, zerr.With(zerr.Wrap(domain.ErrTableNotFound, msg), "source", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read conversion table"), "source", path)
	}
	return data, nil
}

func digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Parse builds a conversion table from a JSON or YAML document.
//
// The document must be a mapping whose values are mappings of numbers. Every factor must be
// finite and greater than zero. Any violation is reported as domain.ErrTableMalformed.
// A unit listed twice keeps its first position and takes the conversions of its last entry.
func Parse(data []byte) (*domain.ConversionTable, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, malformed(zerr.Wrap(err, "invalid document"))
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, malformed(zerr.New("empty document"))
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, malformed(zerr.New("top level must be a mapping of units"))
	}

	table := domain.NewConversionTable()
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		unit := keyNode.Value

		if keyNode.Kind != yaml.ScalarNode {
			return nil, malformed(zerr.New("unit names must be scalars"))
		}
		if valueNode.Kind != yaml.MappingNode {
			err := zerr.New("conversions of a unit must be a mapping of target units")
			return nil, zerr.With(malformed(err), "unit", unit)
		}

		table.ResetUnit(unit)
		for j := 0; j+1 < len(valueNode.Content); j += 2 {
			targetNode, factorNode := valueNode.Content[j], valueNode.Content[j+1]
			target := targetNode.Value

			factor, err := parseFactor(factorNode)
			if err == nil {
				err = table.AddFactor(unit, target, factor)
			}
			if err != nil {
				wrapped := zerr.With(malformed(err), "unit", unit)
				wrapped = zerr.With(wrapped, "target", target)
				return nil, zerr.With(wrapped, "factor", factorNode.Value)
			}
		}
	}
	return table, nil
}

func parseFactor(node *yaml.Node) (float64, error) {
	if node.Kind != yaml.ScalarNode || (node.Tag != "!!int" && node.Tag != "!!float") {
		return 0, zerr.New("factor must be a number")
	}
	var factor float64
	if err := node.Decode(&factor); err != nil {
		return 0, zerr.Wrap(err, "factor must be a number")
	}
	return factor, nil
}

// malformed marks err as a malformed table error.
func malformed(err error) error {
	return zerr.Wrap(err, domain.ErrTableMalformed.Error())
}
