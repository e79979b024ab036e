package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top level of a descriptor file.
type fileRoot struct {
	Name        string        `hcl:"name,optional"`
	Inputs      []string      `hcl:"inputs,optional"`
	InputShapes []*InputShape `hcl:"input_shape,block"`
	InputBlocks []*InputBlock `hcl:"input,block"`
	Layers      []*LayerBlock `hcl:"layer,block"`
}

// InputBlock declares one network input together with its shape.
type InputBlock struct {
	Name  string         `hcl:"name,label"`
	Shape hcl.Expression `hcl:"shape"`
}

// InputShape is a legacy shape entry paired by position with `inputs`.
type InputShape struct {
	Dim hcl.Expression `hcl:"dim"`
}

// LayerBlock is a `layer "<name>" { ... }` block.
type LayerBlock struct {
	Name string `hcl:"name,label"`
	Type string `hcl:"type,optional"`
	// Bottom and Top accept a single string or a list of strings.
	Bottom hcl.Expression `hcl:"bottom,optional"`
	Top    hcl.Expression `hcl:"top,optional"`

	Convolution  *ConvolutionBlock  `hcl:"convolution,block"`
	Pooling      *PoolingBlock      `hcl:"pooling,block"`
	InnerProduct *InnerProductBlock `hcl:"inner_product,block"`
	Concat       *AxisBlock         `hcl:"concat,block"`
	Softmax      *AxisBlock         `hcl:"softmax,block"`
	ReLU         *ReLUBlock         `hcl:"relu,block"`
	BatchNorm    *BatchNormBlock    `hcl:"batch_norm,block"`
	Scale        *ScaleBlock        `hcl:"scale,block"`
	Dropout      *DropoutBlock      `hcl:"dropout,block"`
	InputParam   *InputParamBlock   `hcl:"input_param,block"`
}

// spatial holds the window settings shared by convolution and pooling.
// The square form (kernel_size) and the per-axis form (kernel_h, kernel_w)
// are mutually exclusive.
type spatial struct {
	kernel, kernelH, kernelW *int
	stride, strideH, strideW *int
	pad, padH, padW          *int
}

type ConvolutionBlock struct {
	NumOutput int   `hcl:"num_output"`
	Dilation  *int  `hcl:"dilation,optional"`
	Group     *int  `hcl:"group,optional"`
	BiasTerm  *bool `hcl:"bias_term,optional"`

	KernelSize *int `hcl:"kernel_size,optional"`
	KernelH    *int `hcl:"kernel_h,optional"`
	KernelW    *int `hcl:"kernel_w,optional"`
	Stride     *int `hcl:"stride,optional"`
	StrideH    *int `hcl:"stride_h,optional"`
	StrideW    *int `hcl:"stride_w,optional"`
	Pad        *int `hcl:"pad,optional"`
	PadH       *int `hcl:"pad_h,optional"`
	PadW       *int `hcl:"pad_w,optional"`
}

type PoolingBlock struct {
	Pool          *string `hcl:"pool,optional"`
	GlobalPooling *bool   `hcl:"global_pooling,optional"`

	KernelSize *int `hcl:"kernel_size,optional"`
	KernelH    *int `hcl:"kernel_h,optional"`
	KernelW    *int `hcl:"kernel_w,optional"`
	Stride     *int `hcl:"stride,optional"`
	StrideH    *int `hcl:"stride_h,optional"`
	StrideW    *int `hcl:"stride_w,optional"`
	Pad        *int `hcl:"pad,optional"`
	PadH       *int `hcl:"pad_h,optional"`
	PadW       *int `hcl:"pad_w,optional"`
}

func (b *ConvolutionBlock) window() spatial {
	return spatial{b.KernelSize, b.KernelH, b.KernelW, b.Stride, b.StrideH, b.StrideW, b.Pad, b.PadH, b.PadW}
}

func (b *PoolingBlock) window() spatial {
	return spatial{b.KernelSize, b.KernelH, b.KernelW, b.Stride, b.StrideH, b.StrideW, b.Pad, b.PadH, b.PadW}
}

type InnerProductBlock struct {
	NumOutput int   `hcl:"num_output"`
	Axis      *int  `hcl:"axis,optional"`
	BiasTerm  *bool `hcl:"bias_term,optional"`
}

// AxisBlock serves every parameter block whose only field is an axis.
type AxisBlock struct {
	Axis *int `hcl:"axis,optional"`
}

type ReLUBlock struct {
	NegativeSlope *float64 `hcl:"negative_slope,optional"`
}

type BatchNormBlock struct {
	UseGlobalStats *bool    `hcl:"use_global_stats,optional"`
	Eps            *float64 `hcl:"eps,optional"`
}

type ScaleBlock struct {
	Axis     *int  `hcl:"axis,optional"`
	BiasTerm *bool `hcl:"bias_term,optional"`
}

type DropoutBlock struct {
	DropoutRatio *float64 `hcl:"dropout_ratio,optional"`
}

type InputParamBlock struct {
	Shape hcl.Expression `hcl:"shape"`
}
