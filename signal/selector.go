package signal

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLabel is returned when a name selector does not occur in
	// the label list.
	ErrUnknownLabel = errors.New("signal: unknown label")
	// ErrOutOfRange is returned when an index selector falls outside the
	// label list.
	ErrOutOfRange = errors.New("signal: index out of range")
)

type selectorKind int

const (
	selAll selectorKind = iota
	selIndex
	selIndices
	selRange
	selNames
)

// Selector picks a subset of an ordered signal list. It is resolved to
// concrete indices by a Resolver; the numeric core never inspects label
// strings itself.
type Selector struct {
	kind        selectorKind
	index       int
	indices     []int
	start, stop int
	names       []string
}

// All selects every signal.
func All() Selector { return Selector{kind: selAll} }

// Index selects a single signal. Negative indices count from the end.
func Index(i int) Selector { return Selector{kind: selIndex, index: i} }

// Indices selects the listed signals in order.
func Indices(idx ...int) Selector {
	return Selector{kind: selIndices, indices: append([]int(nil), idx...)}
}

// Range selects the half-open index range [start, stop).
func Range(start, stop int) Selector {
	return Selector{kind: selRange, start: start, stop: stop}
}

// Names selects signals by their labels, in the order given.
func Names(names ...string) Selector {
	return Selector{kind: selNames, names: append([]string(nil), names...)}
}

// Resolver turns a selector into concrete indices into a label list,
// returning the indices together with the labels they select.
type Resolver interface {
	Resolve(sel Selector, labels []string) (indices []int, selected []string, err error)
}

// DefaultResolver resolves selectors positionally and names by exact
// label match.
type DefaultResolver struct{}

// Resolve implements Resolver.
func (DefaultResolver) Resolve(sel Selector, labels []string) ([]int, []string, error) {
	n := len(labels)
	var indices []int
	switch sel.kind {
	case selAll:
		indices = make([]int, n)
		for i := range indices {
			indices[i] = i
		}
	case selIndex:
		i, err := normalize(sel.index, n)
		if err != nil {
			return nil, nil, err
		}
		indices = []int{i}
	case selIndices:
		indices = make([]int, 0, len(sel.indices))
		for _, raw := range sel.indices {
			i, err := normalize(raw, n)
			if err != nil {
				return nil, nil, err
			}
			indices = append(indices, i)
		}
	case selRange:
		if sel.start < 0 || sel.stop > n || sel.start > sel.stop {
			return nil, nil, fmt.Errorf("%w: [%d, %d) of %d signals",
				ErrOutOfRange, sel.start, sel.stop, n)
		}
		indices = make([]int, 0, sel.stop-sel.start)
		for i := sel.start; i < sel.stop; i++ {
			indices = append(indices, i)
		}
	case selNames:
		indices = make([]int, 0, len(sel.names))
		for _, name := range sel.names {
			found := -1
			for i, label := range labels {
				if label == name {
					found = i
					break
				}
			}
			if found < 0 {
				return nil, nil, fmt.Errorf("%w: %q", ErrUnknownLabel, name)
			}
			indices = append(indices, found)
		}
	}

	selected := make([]string, len(indices))
	for i, idx := range indices {
		selected[i] = labels[idx]
	}
	return indices, selected, nil
}

// normalize maps a possibly negative index onto [0, n).
func normalize(i, n int) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d of %d signals", ErrOutOfRange, i, n)
	}
	return i, nil
}
