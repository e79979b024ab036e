package layer

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape is an ordered list of non-negative dimensions.
type Shape []int

// String renders the shape as "1x3x224x224". A nil shape renders as "?".
func (s Shape) String() string {
	if s == nil {
		return "?"
	}
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Count is the number of elements a tensor of this shape holds.
func (s Shape) Count() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// ShapeError reports that a layer could not infer its output shapes.
type ShapeError struct {
	Layer  string
	Type   Type
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("layer %q (%s): %s", e.Layer, e.Type, e.Reason)
}

func shapeErrorf(b *base, format string, args ...any) error {
	return &ShapeError{Layer: b.name, Type: b.typ, Reason: fmt.Sprintf(format, args...)}
}

// canonicalAxis resolves a possibly negative axis against a rank.
func canonicalAxis(axis, rank int) (int, bool) {
	if axis < 0 {
		axis += rank
	}
	return axis, axis >= 0 && axis < rank
}
