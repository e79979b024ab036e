package layer

import (
	"fmt"
	"strconv"

	"github.com/vk/nnc/internal/config"
)

// passthrough is shared by the variants whose outputs take the shape of
// their first input.
func (b *base) passthrough(in []Shape) ([]Shape, error) {
	if err := b.requireInputs(in, 1); err != nil {
		return nil, err
	}
	return b.repeat(in[0]), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

type relu struct {
	base
	p config.ReLUParams
}

func newReLU(b base, p *config.ReLUParams) *relu {
	l := &relu{base: b}
	if p != nil {
		l.p = *p
	}
	return l
}

func (l *relu) OutputShapes(in []Shape) ([]Shape, error) { return l.passthrough(in) }

func (l *relu) Describe() string {
	if l.p.NegativeSlope != 0 {
		return "\n[ReLU] slope=" + formatFloat(l.p.NegativeSlope)
	}
	return "\n[ReLU]"
}

type softmax struct {
	base
	p config.SoftmaxParams
}

func newSoftmax(b base, p *config.SoftmaxParams) *softmax {
	l := &softmax{base: b, p: config.SoftmaxParams{Axis: config.DefaultAxis}}
	if p != nil {
		l.p = *p
	}
	return l
}

func (l *softmax) OutputShapes(in []Shape) ([]Shape, error) {
	out, err := l.passthrough(in)
	if err != nil {
		return nil, err
	}
	if _, ok := canonicalAxis(l.p.Axis, len(in[0])); !ok {
		return nil, shapeErrorf(&l.base, "axis %d out of range for input %s", l.p.Axis, in[0])
	}
	return out, nil
}

func (l *softmax) Describe() string {
	return fmt.Sprintf("\n[Softmax] axis=%d", l.p.Axis)
}

type batchNorm struct {
	base
	p config.BatchNormParams
}

func newBatchNorm(b base, p *config.BatchNormParams) *batchNorm {
	l := &batchNorm{base: b, p: config.BatchNormParams{Eps: config.DefaultBatchNormEps}}
	if p != nil {
		l.p = *p
	}
	return l
}

func (l *batchNorm) OutputShapes(in []Shape) ([]Shape, error) { return l.passthrough(in) }

func (l *batchNorm) Describe() string {
	s := "\n[BatchNorm] eps=" + formatFloat(l.p.Eps)
	if l.p.UseGlobalStats {
		s += " global"
	}
	return s
}

type scale struct {
	base
	p config.ScaleParams
}

func newScale(b base, p *config.ScaleParams) *scale {
	l := &scale{base: b, p: config.ScaleParams{Axis: config.DefaultAxis}}
	if p != nil {
		l.p = *p
	}
	return l
}

func (l *scale) OutputShapes(in []Shape) ([]Shape, error) { return l.passthrough(in) }

func (l *scale) Describe() string {
	if l.p.BiasTerm {
		return "\n[Scale] bias"
	}
	return "\n[Scale]"
}

type dropout struct {
	base
	p config.DropoutParams
}

func newDropout(b base, p *config.DropoutParams) *dropout {
	l := &dropout{base: b, p: config.DropoutParams{Ratio: config.DefaultDropoutRatio}}
	if p != nil {
		l.p = *p
	}
	return l
}

func (l *dropout) OutputShapes(in []Shape) ([]Shape, error) { return l.passthrough(in) }

func (l *dropout) Describe() string {
	return "\n[Dropout] ratio=" + formatFloat(l.p.Ratio)
}
