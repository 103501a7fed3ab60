// Package bank: the Index Resolver.
// IndexSpec is a closed tagged variant over the legal index-selection forms:
// every position ("all"), a single position, an explicit ordered group of
// positions, or a contiguous range. A spec is resolved against the current
// index-axis length on every Compute call, since that length may vary
// between calls.

package bank

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// indexKind discriminates the IndexSpec variants.
type indexKind uint8

const (
	indexAll indexKind = iota
	indexSingle
	indexGroup
	indexRange
)

// IndexSpec selects positions along the index axis for one Bank entry.
// The zero value selects every position (the "all" sentinel).
type IndexSpec struct {
	kind  indexKind
	pos   int
	group []int
	start int
	stop  int
	step  int
}

// IndexAll selects every position 0..length-1 (the default for Add).
func IndexAll() IndexSpec { return IndexSpec{kind: indexAll} }

// IndexAt selects a single position. Negative positions resolve against the
// axis length (numpy-style).
func IndexAt(pos int) IndexSpec { return IndexSpec{kind: indexSingle, pos: pos} }

// IndexGroup selects an explicit ordered group of positions (repeats allowed).
func IndexGroup(positions ...int) IndexSpec {
	return IndexSpec{kind: indexGroup, group: append([]int(nil), positions...)}
}

// IndexRange selects the half-open range [start, stop) with the given
// positive step. Like a slice bound, stop is clamped to the axis length at
// resolution time; negative start/stop resolve against the length first.
func IndexRange(start, stop, step int) IndexSpec {
	return IndexSpec{kind: indexRange, start: start, stop: stop, step: step}
}

// IsAll reports whether the spec is the all-positions sentinel.
func (s IndexSpec) IsAll() bool { return s.kind == indexAll }

// Equal reports structural equality between two specs.
func (s IndexSpec) Equal(o IndexSpec) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case indexSingle:
		return s.pos == o.pos
	case indexGroup:
		if len(s.group) != len(o.group) {
			return false
		}
		for i := range s.group {
			if s.group[i] != o.group[i] {
				return false
			}
		}

		return true
	case indexRange:
		return s.start == o.start && s.stop == o.stop && s.step == o.step
	default: // indexAll
		return true
	}
}

// String renders the spec in its persisted form.
func (s IndexSpec) String() string {
	switch s.kind {
	case indexSingle:
		return fmt.Sprintf("%d", s.pos)
	case indexGroup:
		return fmt.Sprintf("%v", s.group)
	case indexRange:
		return fmt.Sprintf("%d:%d:%d", s.start, s.stop, s.step)
	default:
		return "all"
	}
}

// Resolve materializes the spec into an ordered sequence of non-negative
// positions, each < length. Negative positions resolve numpy-style
// (+length) before the bounds check; any position outside [0, length) after
// resolution errors with ErrIndexOutOfRange. A range with step <= 0 errors
// with ErrBadIndexRange; a spec selecting nothing errors with
// ErrEmptySelection.
func (s IndexSpec) Resolve(length int) ([]int, error) {
	switch s.kind {
	case indexAll:
		out := make([]int, length)
		for i := range out {
			out[i] = i
		}

		return out, nil

	case indexSingle:
		p, err := resolvePosition(s.pos, length)
		if err != nil {
			return nil, err
		}

		return []int{p}, nil

	case indexGroup:
		if len(s.group) == 0 {
			return nil, ErrEmptySelection
		}
		out := make([]int, len(s.group))
		for i, raw := range s.group {
			p, err := resolvePosition(raw, length)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}

		return out, nil

	case indexRange:
		if s.step <= 0 {
			return nil, fmt.Errorf("step %d: %w", s.step, ErrBadIndexRange)
		}
		start, stop := s.start, s.stop
		if start < 0 {
			start += length
		}
		if stop < 0 {
			stop += length
		}
		// Clamp bounds like a slice expression.
		if start < 0 {
			start = 0
		}
		if stop > length {
			stop = length
		}
		var out []int
		for p := start; p < stop; p += s.step {
			out = append(out, p)
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("range %d:%d:%d over length %d: %w", s.start, s.stop, s.step, length, ErrEmptySelection)
		}

		return out, nil

	default:
		return nil, ErrBadIndexSpec
	}
}

// resolvePosition normalizes one possibly-negative position and bounds-checks it.
func resolvePosition(pos, length int) (int, error) {
	p := pos
	if p < 0 {
		p += length
	}
	if p < 0 || p >= length {
		return 0, fmt.Errorf("position %d for length %d: %w", pos, length, ErrIndexOutOfRange)
	}

	return p, nil
}

// MarshalYAML renders the spec in the persisted form: "all", a bare int, a
// flow list of ints, or a "start:stop:step" range string.
func (s IndexSpec) MarshalYAML() (any, error) {
	switch s.kind {
	case indexSingle:
		return s.pos, nil
	case indexGroup:
		node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, p := range s.group {
			node.Content = append(node.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Value: fmt.Sprintf("%d", p),
			})
		}

		return node, nil
	case indexRange:
		return s.String(), nil
	default:
		return "all", nil
	}
}

// UnmarshalYAML parses the persisted forms accepted by MarshalYAML.
// Anything else errors with ErrBadIndexSpec.
func (s *IndexSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "all" || node.Value == "" {
			*s = IndexAll()

			return nil
		}
		var pos int
		if err := node.Decode(&pos); err == nil {
			*s = IndexAt(pos)

			return nil
		}
		var start, stop, step int
		switch n, _ := fmt.Sscanf(node.Value, "%d:%d:%d", &start, &stop, &step); n {
		case 3:
			*s = IndexRange(start, stop, step)

			return nil
		case 2:
			*s = IndexRange(start, stop, 1)

			return nil
		}

		return fmt.Errorf("%q: %w", node.Value, ErrBadIndexSpec)

	case yaml.SequenceNode:
		var group []int
		if err := node.Decode(&group); err != nil {
			return fmt.Errorf("%v: %w", err, ErrBadIndexSpec)
		}
		*s = IndexGroup(group...)

		return nil

	default:
		return fmt.Errorf("yaml kind %d: %w", node.Kind, ErrBadIndexSpec)
	}
}
