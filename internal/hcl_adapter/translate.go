// This file translates the decoded HCL blocks into the format-agnostic
// descriptor model of the config package, applying parameter defaults.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/vk/nnc/internal/config"
	"github.com/vk/nnc/internal/ctxlog"
)

// translateNet converts a decoded file into a config.Net. Legacy `inputs`
// come first, followed by the `input` blocks in file order.
func (l *Loader) translateNet(ctx context.Context, root *fileRoot) (*config.Net, error) {
	net := &config.Net{Name: root.Name}

	net.Inputs = append(net.Inputs, root.Inputs...)
	for i, s := range root.InputShapes {
		shape, err := decodeShape(s.Dim, "dim")
		if err != nil {
			return nil, fmt.Errorf("input_shape %d: %w", i, err)
		}
		net.InputShapes = append(net.InputShapes, shape)
	}
	for _, in := range root.InputBlocks {
		shape, err := decodeShape(in.Shape, "shape")
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", in.Name, err)
		}
		net.Inputs = append(net.Inputs, in.Name)
		net.InputShapes = append(net.InputShapes, shape)
	}

	for _, lb := range root.Layers {
		layer, err := l.translateLayer(ctx, lb)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", lb.Name, err)
		}
		net.Layers = append(net.Layers, layer)
	}
	return net, nil
}

// translateLayer converts one layer block. Every parameter block present is
// carried over; the builder only reads the one matching the type tag.
func (l *Loader) translateLayer(ctx context.Context, lb *LayerBlock) (*config.Layer, error) {
	logger := ctxlog.FromContext(ctx).With("layer", lb.Name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL layer to internal config model.", "type", lb.Type)

	bottom, err := decodeNames(ctx, lb.Bottom, "bottom")
	if err != nil {
		return nil, err
	}
	top, err := decodeNames(ctx, lb.Top, "top")
	if err != nil {
		return nil, err
	}

	out := &config.Layer{Name: lb.Name, Type: lb.Type, Bottom: bottom, Top: top}
	p := &out.Params

	if b := lb.Convolution; b != nil {
		if p.Convolution, err = translateConvolution(b); err != nil {
			return nil, fmt.Errorf("convolution: %w", err)
		}
	}
	if b := lb.Pooling; b != nil {
		if p.Pooling, err = translatePooling(b); err != nil {
			return nil, fmt.Errorf("pooling: %w", err)
		}
	}
	if b := lb.InnerProduct; b != nil {
		p.InnerProduct = &config.InnerProductParams{
			NumOutput: b.NumOutput,
			Axis:      orInt(b.Axis, config.DefaultAxis),
			BiasTerm:  orBool(b.BiasTerm, true),
		}
	}
	if b := lb.Concat; b != nil {
		p.Concat = &config.ConcatParams{Axis: orInt(b.Axis, config.DefaultAxis)}
	}
	if b := lb.Softmax; b != nil {
		p.Softmax = &config.SoftmaxParams{Axis: orInt(b.Axis, config.DefaultAxis)}
	}
	if b := lb.ReLU; b != nil {
		p.ReLU = &config.ReLUParams{NegativeSlope: orFloat(b.NegativeSlope, 0)}
	}
	if b := lb.BatchNorm; b != nil {
		p.BatchNorm = &config.BatchNormParams{
			UseGlobalStats: orBool(b.UseGlobalStats, false),
			Eps:            orFloat(b.Eps, config.DefaultBatchNormEps),
		}
	}
	if b := lb.Scale; b != nil {
		p.Scale = &config.ScaleParams{
			Axis:     orInt(b.Axis, config.DefaultAxis),
			BiasTerm: orBool(b.BiasTerm, false),
		}
	}
	if b := lb.Dropout; b != nil {
		ratio := orFloat(b.DropoutRatio, config.DefaultDropoutRatio)
		if ratio < 0 || ratio >= 1 {
			return nil, fmt.Errorf("dropout: dropout_ratio must be in [0, 1), got %g", ratio)
		}
		p.Dropout = &config.DropoutParams{Ratio: ratio}
	}
	if b := lb.InputParam; b != nil {
		shapes, err := decodeShapes(b.Shape, "shape")
		if err != nil {
			return nil, fmt.Errorf("input_param: %w", err)
		}
		p.Input = &config.InputParams{Shapes: shapes}
	}
	return out, nil
}

func translateConvolution(b *ConvolutionBlock) (*config.ConvolutionParams, error) {
	w := b.window()
	kh, kw, err := w.kernelSize()
	if err != nil {
		return nil, err
	}
	sh, sw, err := w.strides()
	if err != nil {
		return nil, err
	}
	ph, pw, err := w.pads()
	if err != nil {
		return nil, err
	}
	return &config.ConvolutionParams{
		NumOutput: b.NumOutput,
		KernelH:   kh,
		KernelW:   kw,
		StrideH:   sh,
		StrideW:   sw,
		PadH:      ph,
		PadW:      pw,
		Dilation:  orInt(b.Dilation, config.DefaultDilation),
		Group:     orInt(b.Group, config.DefaultGroup),
		BiasTerm:  orBool(b.BiasTerm, true),
	}, nil
}

func translatePooling(b *PoolingBlock) (*config.PoolingParams, error) {
	method := config.PoolMax
	if b.Pool != nil {
		method = config.PoolMethod(*b.Pool)
	}
	switch method {
	case config.PoolMax, config.PoolAverage, config.PoolStochastic:
	default:
		return nil, fmt.Errorf("unknown pool method %q", method)
	}

	global := orBool(b.GlobalPooling, false)
	w := b.window()
	kh, kw, err := w.kernelSize()
	if err != nil {
		return nil, err
	}
	if global && (kh != 0 || kw != 0) {
		return nil, fmt.Errorf("global_pooling cannot be combined with a kernel size")
	}
	sh, sw, err := w.strides()
	if err != nil {
		return nil, err
	}
	ph, pw, err := w.pads()
	if err != nil {
		return nil, err
	}
	return &config.PoolingParams{
		Method:  method,
		KernelH: kh,
		KernelW: kw,
		StrideH: sh,
		StrideW: sw,
		PadH:    ph,
		PadW:    pw,
		Global:  global,
	}, nil
}

func (s spatial) kernelSize() (int, int, error) {
	return resolvePair("kernel_size", "kernel", s.kernel, s.kernelH, s.kernelW, 0)
}

func (s spatial) strides() (int, int, error) {
	return resolvePair("stride", "stride", s.stride, s.strideH, s.strideW, config.DefaultStride)
}

func (s spatial) pads() (int, int, error) {
	return resolvePair("pad", "pad", s.pad, s.padH, s.padW, 0)
}

// resolvePair returns (h, w) from either the square form or the per-axis
// pair. Giving both forms is an error, as is giving only one axis.
func resolvePair(name, prefix string, square, h, w *int, def int) (int, int, error) {
	if square != nil {
		if h != nil || w != nil {
			return 0, 0, fmt.Errorf("%s cannot be combined with %s_h/%s_w", name, prefix, prefix)
		}
		if *square < 0 {
			return 0, 0, fmt.Errorf("%s must not be negative", name)
		}
		return *square, *square, nil
	}
	if (h == nil) != (w == nil) {
		return 0, 0, fmt.Errorf("%s_h and %s_w must be given together", prefix, prefix)
	}
	if h == nil {
		return def, def, nil
	}
	if *h < 0 || *w < 0 {
		return 0, 0, fmt.Errorf("%s_h/%s_w must not be negative", prefix, prefix)
	}
	return *h, *w, nil
}

func orInt(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func orBool(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func orFloat(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
