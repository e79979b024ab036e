package layer

import (
	"fmt"

	"github.com/vk/nnc/internal/config"
)

type pooling struct {
	base
	p config.PoolingParams
}

func newPooling(b base, p *config.PoolingParams) *pooling {
	l := &pooling{base: b}
	if p != nil {
		l.p = *p
	}
	if l.p.Method == "" {
		l.p.Method = config.PoolMax
	}
	l.p.StrideH = atLeastOne(l.p.StrideH)
	l.p.StrideW = atLeastOne(l.p.StrideW)
	return l
}

func (l *pooling) OutputShapes(in []Shape) ([]Shape, error) {
	if err := l.requireInputs(in, 1); err != nil {
		return nil, err
	}
	s := in[0]
	if len(s) != 4 {
		return nil, shapeErrorf(&l.base, "input must be 4-D (NxCxHxW), got %s", s)
	}
	p := l.p
	if p.Global {
		return l.repeat(Shape{s[0], s[1], 1, 1}), nil
	}
	if p.KernelH <= 0 || p.KernelW <= 0 {
		return nil, shapeErrorf(&l.base, "kernel size must be positive, got %dx%d", p.KernelH, p.KernelW)
	}
	if p.PadH >= p.KernelH || p.PadW >= p.KernelW {
		return nil, shapeErrorf(&l.base, "pad must be smaller than kernel")
	}
	h, okH := poolExtent(s[2], p.KernelH, p.StrideH, p.PadH)
	w, okW := poolExtent(s[3], p.KernelW, p.StrideW, p.PadW)
	if !okH || !okW {
		return nil, shapeErrorf(&l.base, "kernel does not fit input %s", s)
	}
	return l.repeat(Shape{s[0], s[1], h, w}), nil
}

// poolExtent uses ceiling division and clips the last window so it starts
// inside the padded image.
func poolExtent(size, kernel, stride, pad int) (int, bool) {
	span := size + 2*pad - kernel
	if span < 0 {
		return 0, false
	}
	out := (span+stride-1)/stride + 1
	if pad > 0 && (out-1)*stride >= size+pad {
		out--
	}
	return out, true
}

func (l *pooling) Describe() string {
	p := l.p
	if p.Global {
		return fmt.Sprintf("\n[Pooling] %s global", p.Method)
	}
	s := fmt.Sprintf("\n[Pooling] %s k=%dx%d s=%s", p.Method, p.KernelH, p.KernelW, pair(p.StrideH, p.StrideW))
	if p.PadH != 0 || p.PadW != 0 {
		s += " p=" + pair(p.PadH, p.PadW)
	}
	return s
}
