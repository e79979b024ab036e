package layer

import "github.com/vk/nnc/internal/config"

// Layer is implemented by every layer variant.
type Layer interface {
	Name() string
	Type() Type
	// OutputShapes infers one shape per output from the shapes of the inputs,
	// given in bottom order.
	OutputShapes(in []Shape) ([]Shape, error)
	// Describe returns the type-specific label suffix used when rendering.
	// It starts with a newline so it can be appended to the layer name.
	Describe() string

	sealed()
}

type base struct {
	name string
	typ  Type
	nTop int
}

func (b *base) Name() string { return b.name }
func (b *base) Type() Type   { return b.typ }
func (b *base) sealed()      {}

// requireInputs checks the bottom count is at least min.
func (b *base) requireInputs(in []Shape, min int) error {
	if len(in) < min {
		return shapeErrorf(b, "expected at least %d input(s), got %d", min, len(in))
	}
	for i, s := range in {
		if s == nil {
			return shapeErrorf(b, "input %d has no shape", i)
		}
	}
	return nil
}

// repeat returns nTop copies of s.
func (b *base) repeat(s Shape) []Shape {
	out := make([]Shape, b.nTop)
	for i := range out {
		out[i] = s.Clone()
	}
	return out
}

// New creates the variant for t. nTop is the number of outputs the layer
// declares. Parameters that do not belong to t are ignored; a missing
// parameter block falls back to the variant's defaults.
func New(name string, t Type, p config.Params, nTop int) Layer {
	b := base{name: name, typ: t, nTop: nTop}
	switch t {
	case Convolution:
		return newConvolution(b, p.Convolution)
	case Pooling:
		return newPooling(b, p.Pooling)
	case InnerProduct:
		return newInnerProduct(b, p.InnerProduct)
	case Concat:
		return newConcat(b, p.Concat)
	case Softmax:
		return newSoftmax(b, p.Softmax)
	case ReLU:
		return newReLU(b, p.ReLU)
	case BatchNorm:
		return newBatchNorm(b, p.BatchNorm)
	case Scale:
		return newScale(b, p.Scale)
	case Dropout:
		return newDropout(b, p.Dropout)
	case Input:
		return newInput(b, p.Input)
	}
	panic("layer: unhandled type " + t.String())
}
