package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// Strategy names the rule that produced a conversion path.
type Strategy string

const (
	// StrategyIdentity is used when both units are the same string.
	StrategyIdentity Strategy = "identity"
	// StrategyDirect is used when the table has an edge from -> to.
	StrategyDirect Strategy = "direct"
	// StrategyReverse is used when the table has an edge to -> from.
	StrategyReverse Strategy = "reverse"
	// StrategySearch is used when the path was found by depth-first search.
	StrategySearch Strategy = "search"
)

// SearchMode controls which edges the depth-first search may follow.
type SearchMode int

const (
	// SearchForward only follows edges in their stored direction during the search.
	// Reverse edges are still honored by the top-level reverse lookup.
	SearchForward SearchMode = iota
	// SearchSymmetric also follows edges backwards during the search, dividing by their factor.
	SearchSymmetric
)

// Resolve finds a conversion path from one unit to another.
//
// Rules are applied in order: identity, direct edge, reverse edge, then a depth-first search
// from the source unit. The search returns the first path it finds, which is not necessarily
// the shortest one.
func (t *ConversionTable) Resolve(from, to string, mode SearchMode) (ConversionPath, Strategy, error) {
	if from == to {
		return ConversionPath{}, StrategyIdentity, nil
	}

	if f, ok := t.Factor(from, to); ok {
		return ConversionPath{{From: from, To: to, Factor: f}}, StrategyDirect, nil
	}

	if f, ok := t.Factor(to, from); ok {
		return ConversionPath{{From: from, To: to, Factor: f, Inverse: true}}, StrategyReverse, nil
	}

	if path, ok := t.search(from, to, mode); ok {
		return path, StrategySearch, nil
	}

	return nil, "", NoConversionPathError(from, to)
}

// NoConversionPathError builds the error returned when two units are not connected.
func NoConversionPathError(from, to string) error {
	err := zerr.Wrap(ErrNoConversionPath, fmt.Sprintf("no conversion path found from '%s' to '%s'", from, to))
	err = zerr.With(err, "from", from)
	return zerr.With(err, "to", to)
}

// frame is one level of the explicit depth-first search stack.
type frame struct {
	unit string
	next int
	via  ConversionStep
}

// search walks the graph depth-first from `from`, using an explicit stack and a visited set
// scoped to this call. At every node the final hop to `to` is checked before expanding any
// neighbor.
func (t *ConversionTable) search(from, to string, mode SearchMode) (ConversionPath, bool) {
	var incoming map[string][]Edge
	if mode == SearchSymmetric {
		incoming = t.incomingIndex()
	}

	visited := map[string]struct{}{from: {}}
	if last, ok := t.finalStep(from, to, incoming); ok {
		return ConversionPath{last}, true
	}

	stack := []frame{{unit: from}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		steps := t.neighbors(top.unit, incoming)

		var (
			next  ConversionStep
			found bool
		)
		for top.next < len(steps) {
			candidate := steps[top.next]
			top.next++
			if _, seen := visited[candidate.To]; !seen {
				next, found = candidate, true
				break
			}
		}

		if !found {
			stack = stack[:len(stack)-1]
			continue
		}

		visited[next.To] = struct{}{}
		if last, ok := t.finalStep(next.To, to, incoming); ok {
			path := make(ConversionPath, 0, len(stack)+1)
			for _, f := range stack[1:] {
				path = append(path, f.via)
			}
			return append(path, next, last), true
		}

		stack = append(stack, frame{unit: next.To, via: next})
	}

	return nil, false
}

// finalStep reports whether unit has an edge straight to target.
// In symmetric mode an edge target -> unit also counts, applied as a division.
func (t *ConversionTable) finalStep(unit, target string, incoming map[string][]Edge) (ConversionStep, bool) {
	if f, ok := t.Factor(unit, target); ok {
		return ConversionStep{From: unit, To: target, Factor: f}, true
	}
	if incoming != nil {
		if f, ok := t.Factor(target, unit); ok {
			return ConversionStep{From: unit, To: target, Factor: f, Inverse: true}, true
		}
	}
	return ConversionStep{}, false
}

// neighbors lists the steps leaving unit in table order.
// Reversed incoming edges follow the forward ones when incoming is non-nil.
func (t *ConversionTable) neighbors(unit string, incoming map[string][]Edge) []ConversionStep {
	out := t.edges[unit]
	in := incoming[unit]

	steps := make([]ConversionStep, 0, len(out)+len(in))
	for _, e := range out {
		steps = append(steps, ConversionStep{From: e.From, To: e.To, Factor: e.Factor})
	}
	for _, e := range in {
		steps = append(steps, ConversionStep{From: unit, To: e.From, Factor: e.Factor, Inverse: true})
	}
	return steps
}

// incomingIndex groups every edge by its target, preserving table order.
func (t *ConversionTable) incomingIndex() map[string][]Edge {
	incoming := make(map[string][]Edge)
	for _, unit := range t.order {
		for _, e := range t.edges[unit] {
			incoming[e.To] = append(incoming[e.To], e)
		}
	}
	return incoming
}

// Compatible returns the units one hop away from unit: the targets of its own edges followed
// by every unit that has an edge into it. It does not search for longer paths.
func (t *ConversionTable) Compatible(unit string) []string {
	seen := make(map[string]struct{})
	var units []string
	add := func(u string) {
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		units = append(units, u)
	}

	for _, e := range t.edges[unit] {
		add(e.To)
	}
	for _, source := range t.order {
		if _, ok := t.index[source][unit]; ok {
			add(source)
		}
	}
	return units
}
