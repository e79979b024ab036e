package layer

import (
	"fmt"

	"github.com/vk/nnc/internal/config"
)

type concat struct {
	base
	p config.ConcatParams
}

func newConcat(b base, p *config.ConcatParams) *concat {
	l := &concat{base: b, p: config.ConcatParams{Axis: config.DefaultAxis}}
	if p != nil {
		l.p = *p
	}
	return l
}

func (l *concat) OutputShapes(in []Shape) ([]Shape, error) {
	if err := l.requireInputs(in, 1); err != nil {
		return nil, err
	}
	first := in[0]
	axis, ok := canonicalAxis(l.p.Axis, len(first))
	if !ok {
		return nil, shapeErrorf(&l.base, "axis %d out of range for input %s", l.p.Axis, first)
	}
	out := first.Clone()
	for i, s := range in[1:] {
		if len(s) != len(first) {
			return nil, shapeErrorf(&l.base, "input %d has rank %d, want %d", i+1, len(s), len(first))
		}
		for d := range s {
			if d != axis && s[d] != first[d] {
				return nil, shapeErrorf(&l.base, "input %d shape %s does not match %s outside axis %d", i+1, s, first, axis)
			}
		}
		out[axis] += s[axis]
	}
	return l.repeat(out), nil
}

func (l *concat) Describe() string {
	return fmt.Sprintf("\n[Concat] axis=%d", l.p.Axis)
}
