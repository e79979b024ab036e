package layer

import "github.com/vk/nnc/internal/config"

type input struct {
	base
	shapes []Shape
}

func newInput(b base, p *config.InputParams) *input {
	l := &input{base: b}
	if p != nil {
		for _, s := range p.Shapes {
			l.shapes = append(l.shapes, Shape(s).Clone())
		}
	}
	return l
}

// OutputShapes ignores in: an Input layer produces the shapes it declares.
func (l *input) OutputShapes(in []Shape) ([]Shape, error) {
	switch len(l.shapes) {
	case 0:
		return nil, shapeErrorf(&l.base, "no shape declared")
	case 1:
		return l.repeat(l.shapes[0]), nil
	case l.nTop:
		out := make([]Shape, len(l.shapes))
		for i, s := range l.shapes {
			out[i] = s.Clone()
		}
		return out, nil
	}
	return nil, shapeErrorf(&l.base, "%d shapes declared for %d outputs", len(l.shapes), l.nTop)
}

func (l *input) Describe() string {
	return "\n[Input]"
}
