package layer

import (
	"fmt"

	"github.com/vk/nnc/internal/config"
)

type convolution struct {
	base
	p config.ConvolutionParams
}

func newConvolution(b base, p *config.ConvolutionParams) *convolution {
	l := &convolution{base: b}
	if p != nil {
		l.p = *p
	}
	l.p.StrideH = atLeastOne(l.p.StrideH)
	l.p.StrideW = atLeastOne(l.p.StrideW)
	l.p.Dilation = atLeastOne(l.p.Dilation)
	l.p.Group = atLeastOne(l.p.Group)
	return l
}

func (l *convolution) OutputShapes(in []Shape) ([]Shape, error) {
	if err := l.requireInputs(in, 1); err != nil {
		return nil, err
	}
	p := l.p
	if p.NumOutput <= 0 {
		return nil, shapeErrorf(&l.base, "num_output must be positive, got %d", p.NumOutput)
	}
	if p.KernelH <= 0 || p.KernelW <= 0 {
		return nil, shapeErrorf(&l.base, "kernel size must be positive, got %dx%d", p.KernelH, p.KernelW)
	}
	if p.NumOutput%p.Group != 0 {
		return nil, shapeErrorf(&l.base, "num_output %d is not divisible by group %d", p.NumOutput, p.Group)
	}

	out := make([]Shape, 0, len(in))
	for i, s := range in {
		if len(s) != 4 {
			return nil, shapeErrorf(&l.base, "input %d must be 4-D (NxCxHxW), got %s", i, s)
		}
		if s[1]%p.Group != 0 {
			return nil, shapeErrorf(&l.base, "input channels %d are not divisible by group %d", s[1], p.Group)
		}
		h := convExtent(s[2], p.KernelH, p.StrideH, p.PadH, p.Dilation)
		w := convExtent(s[3], p.KernelW, p.StrideW, p.PadW, p.Dilation)
		if h <= 0 || w <= 0 {
			return nil, shapeErrorf(&l.base, "kernel does not fit input %s", s)
		}
		out = append(out, Shape{s[0], p.NumOutput, h, w})
	}
	// Bottom i maps to top i.
	if len(out) != l.nTop {
		return nil, shapeErrorf(&l.base, "%d input(s) but %d output(s)", len(out), l.nTop)
	}
	return out, nil
}

func convExtent(size, kernel, stride, pad, dilation int) int {
	effective := dilation*(kernel-1) + 1
	return (size+2*pad-effective)/stride + 1
}

func (l *convolution) Describe() string {
	p := l.p
	s := fmt.Sprintf("\n[Convolution] k=%dx%d s=%s p=%s n=%d",
		p.KernelH, p.KernelW, pair(p.StrideH, p.StrideW), pair(p.PadH, p.PadW), p.NumOutput)
	if p.Dilation > 1 {
		s += fmt.Sprintf(" d=%d", p.Dilation)
	}
	if p.Group > 1 {
		s += fmt.Sprintf(" g=%d", p.Group)
	}
	return s
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// pair prints h once when both dimensions agree.
func pair(h, w int) string {
	if h == w {
		return fmt.Sprint(h)
	}
	return fmt.Sprintf("%dx%d", h, w)
}
