package layer

import (
	"fmt"

	"github.com/vk/nnc/internal/config"
)

type innerProduct struct {
	base
	p config.InnerProductParams
}

func newInnerProduct(b base, p *config.InnerProductParams) *innerProduct {
	l := &innerProduct{base: b, p: config.InnerProductParams{Axis: config.DefaultAxis}}
	if p != nil {
		l.p = *p
	}
	return l
}

// OutputShapes keeps the leading dimensions up to axis and flattens the rest
// into num_output.
func (l *innerProduct) OutputShapes(in []Shape) ([]Shape, error) {
	if err := l.requireInputs(in, 1); err != nil {
		return nil, err
	}
	if l.p.NumOutput <= 0 {
		return nil, shapeErrorf(&l.base, "num_output must be positive, got %d", l.p.NumOutput)
	}
	s := in[0]
	axis, ok := canonicalAxis(l.p.Axis, len(s))
	if !ok {
		return nil, shapeErrorf(&l.base, "axis %d out of range for input %s", l.p.Axis, s)
	}
	out := append(s[:axis:axis], l.p.NumOutput)
	return l.repeat(out), nil
}

func (l *innerProduct) Describe() string {
	return fmt.Sprintf("\n[InnerProduct] n=%d", l.p.NumOutput)
}
