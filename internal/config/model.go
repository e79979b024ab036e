package config

// Net is the unified, format-agnostic representation of a network descriptor.
type Net struct {
	// Name is the network name. Empty means the descriptor did not set one.
	Name string
	// Inputs and InputShapes are kept as two parallel lists because descriptors
	// may declare them independently; the builder rejects a length mismatch.
	Inputs      []string
	InputShapes [][]int
	Layers      []*Layer
}

// Layer is the format-agnostic representation of a single layer record.
type Layer struct {
	Name string
	// Type is the layer type tag. An empty string means the tag is absent.
	Type   string
	Bottom []string
	Top    []string
	Params Params
}

// Params carries the type-specific parameter payload of a layer. At most one
// field is expected to be set, matching the layer's type tag; unset fields are nil.
type Params struct {
	Convolution  *ConvolutionParams
	Pooling      *PoolingParams
	InnerProduct *InnerProductParams
	Concat       *ConcatParams
	Softmax      *SoftmaxParams
	ReLU         *ReLUParams
	BatchNorm    *BatchNormParams
	Scale        *ScaleParams
	Dropout      *DropoutParams
	Input        *InputParams
}

// ConvolutionParams configures a Convolution layer.
type ConvolutionParams struct {
	NumOutput int
	KernelH   int
	KernelW   int
	StrideH   int
	StrideW   int
	PadH      int
	PadW      int
	Dilation  int
	Group     int
	BiasTerm  bool
}

// PoolMethod selects the pooling reduction.
type PoolMethod string

const (
	PoolMax        PoolMethod = "MAX"
	PoolAverage    PoolMethod = "AVE"
	PoolStochastic PoolMethod = "STOCHASTIC"
)

// PoolingParams configures a Pooling layer.
type PoolingParams struct {
	Method  PoolMethod
	KernelH int
	KernelW int
	StrideH int
	StrideW int
	PadH    int
	PadW    int
	Global  bool
}

type InnerProductParams struct {
	NumOutput int
	Axis      int
	BiasTerm  bool
}

type ConcatParams struct {
	Axis int
}

type SoftmaxParams struct {
	Axis int
}

type ReLUParams struct {
	NegativeSlope float64
}

type BatchNormParams struct {
	UseGlobalStats bool
	Eps            float64
}

type ScaleParams struct {
	Axis     int
	BiasTerm bool
}

type DropoutParams struct {
	Ratio float64
}

// InputParams lists the shapes an Input layer produces: either one shape shared
// by all tops, or one shape per top.
type InputParams struct {
	Shapes [][]int
}

// Defaults mirrored by every loader so that a parameter block that omits a
// field behaves the same regardless of the source format.
const (
	DefaultStride       = 1
	DefaultDilation     = 1
	DefaultGroup        = 1
	DefaultAxis         = 1
	DefaultDropoutRatio = 0.5
	DefaultBatchNormEps = 1e-5
)
