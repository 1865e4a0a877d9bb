package repack

import (
	"errors"

	"github.com/glyphstack/tablepack/pkg/graph"
)

// ErrNegativeOffset is returned by [CheckOverflow] when a link points
// backward in the layout. A correct sort can never produce this; it is an
// internal invariant violation and must be surfaced distinctly from an
// ordinary too-large offset.
var ErrNegativeOffset = errors.New("negative offset: layout is not topological")

// Limits holds the maximum encodable offset value per field width. The
// zero value is not usable - use DefaultLimits, or construct small
// synthetic limits in tests to exercise overflow handling without
// megabyte-scale graphs.
type Limits struct {
	Short uint64 // maximum offset for a 16-bit field
	Wide  uint64 // maximum offset for a 32-bit field
}

// DefaultLimits returns the real-world field maxima: 2^16-1 for 16-bit
// offsets and 2^32-1 for 32-bit extension offsets.
func DefaultLimits() Limits {
	return Limits{Short: 1<<16 - 1, Wide: 1<<32 - 1}
}

// Max returns the maximum encodable offset for the given width.
func (l Limits) Max(w graph.Width) uint64 {
	if w == graph.Width32 {
		return l.Wide
	}
	return l.Short
}

// Overflow describes one link whose offset cannot be encoded in its field.
type Overflow struct {
	Parent graph.NodeID
	Child  graph.NodeID
	Field  int         // index of the offset field within the parent
	Width  graph.Width // width of the offset field
	Offset int64       // the offset the layout would require
}

// CheckOverflow reports every link whose offset exceeds its field's limit
// under the given layout. The offset of a link is position(child) -
// position(parent). Overflows are reported in deterministic order: by
// parent position in the layout, then by field index.
//
// A negative offset aborts the check with ErrNegativeOffset. The graph is
// never mutated; the check is a single linear pass over all links using
// the layout's precomputed positions.
func CheckOverflow(g *graph.Graph, l *graph.Layout, limits Limits) ([]Overflow, error) {
	var out []Overflow
	for _, parent := range l.Order {
		for field, link := range g.Links(parent) {
			offset := int64(l.Pos(link.Target)) - int64(l.Pos(parent))
			if offset < 0 {
				return nil, ErrNegativeOffset
			}
			if uint64(offset) > limits.Max(link.Width) {
				out = append(out, Overflow{
					Parent: parent,
					Child:  link.Target,
					Field:  field,
					Width:  link.Width,
					Offset: offset,
				})
			}
		}
	}
	return out, nil
}
