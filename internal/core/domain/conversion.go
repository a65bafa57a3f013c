// Package domain contains the core domain models and business logic for the recipe catalog
// and its unit conversion graph.
package domain

import (
	"math"
	"strconv"

	"go.trai.ch/zerr"
)

// Edge is a directed, weighted edge of the conversion graph: one unit of From equals Factor
// units of To.
type Edge struct {
	From   string
	To     string
	Factor float64
}

// ConversionTable is a directed weighted graph of unit conversions.
// It keeps the insertion order of source units and of each unit's targets, so searches
// expand neighbors in the order the conversion source listed them.
type ConversionTable struct {
	// Source identifies where the table was loaded from.
	Source string
	// Digest is a content hash of the source the table was built from.
	Digest string

	order []string
	edges map[string][]Edge
	index map[string]map[string]int
}

// NewConversionTable creates a new empty ConversionTable.
func NewConversionTable() *ConversionTable {
	return &ConversionTable{
		edges: make(map[string][]Edge),
		index: make(map[string]map[string]int),
	}
}

// AddUnit registers unit as a source key even if it has no outgoing edges.
func (t *ConversionTable) AddUnit(unit string) {
	if _, ok := t.index[unit]; ok {
		return
	}
	t.order = append(t.order, unit)
	t.index[unit] = make(map[string]int)
}

// ResetUnit drops every outgoing edge of unit. The unit keeps its position in the table order.
func (t *ConversionTable) ResetUnit(unit string) {
	t.AddUnit(unit)
	delete(t.edges, unit)
	t.index[unit] = make(map[string]int)
}

// AddFactor adds the edge from -> to with the given factor.
// Re-adding an existing edge replaces its factor but keeps its position.
func (t *ConversionTable) AddFactor(from, to string, factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		err := zerr.With(zerr.Wrap(ErrInvalidFactor, "invalid conversion factor"), "from", from)
		err = zerr.With(err, "to", to)
		return zerr.With(err, "factor", strconv.FormatFloat(factor, 'g', -1, 64))
	}

	t.AddUnit(from)
	if i, ok := t.index[from][to]; ok {
		t.edges[from][i].Factor = factor
		return nil
	}
	t.index[from][to] = len(t.edges[from])
	t.edges[from] = append(t.edges[from], Edge{From: from, To: to, Factor: factor})
	return nil
}

// Factor returns the factor of the direct edge from -> to.
func (t *ConversionTable) Factor(from, to string) (float64, bool) {
	targets, ok := t.index[from]
	if !ok {
		return 0, false
	}
	i, ok := targets[to]
	if !ok {
		return 0, false
	}
	return t.edges[from][i].Factor, true
}

// Edges returns the outgoing edges of unit in table order.
func (t *ConversionTable) Edges(unit string) []Edge {
	return t.edges[unit]
}

// Units returns a snapshot of the source units in table order.
// Units that only appear as conversion targets are not included.
func (t *ConversionTable) Units() []string {
	units := make([]string, len(t.order))
	copy(units, t.order)
	return units
}

// Len returns the number of source units.
func (t *ConversionTable) Len() int {
	return len(t.order)
}

// EdgeCount returns the total number of edges in the table.
func (t *ConversionTable) EdgeCount() int {
	n := 0
	for _, edges := range t.edges {
		n += len(edges)
	}
	return n
}

// ConversionStep is a single hop of a ConversionPath.
// Inverse steps come from a reverse lookup and divide by Factor instead of multiplying.
type ConversionStep struct {
	From    string
	To      string
	Factor  float64
	Inverse bool
}

// ConversionPath is the ordered chain of steps connecting two units.
// An empty path is the identity conversion.
type ConversionPath []ConversionStep

// Apply converts value along the path, applying each step in order.
func (p ConversionPath) Apply(value float64) float64 {
	result := value
	for _, step := range p {
		if step.Inverse {
			result /= step.Factor
			continue
		}
		result *= step.Factor
	}
	return result
}

// Hops returns the number of steps in the path.
func (p ConversionPath) Hops() int {
	return len(p)
}
