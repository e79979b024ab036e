package layer

// Type is the layer type tag.
type Type int

const (
	Convolution Type = iota
	ReLU
	Pooling
	InnerProduct
	Concat
	Softmax
	Input
	BatchNorm
	Scale
	Dropout
)

var typeNames = [...]string{
	Convolution:  "Convolution",
	ReLU:         "ReLU",
	Pooling:      "Pooling",
	InnerProduct: "InnerProduct",
	Concat:       "Concat",
	Softmax:      "Softmax",
	Input:        "Input",
	BatchNorm:    "BatchNorm",
	Scale:        "Scale",
	Dropout:      "Dropout",
}

// String returns the descriptor spelling of the type tag.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Unknown"
	}
	return typeNames[t]
}

// ParseType maps a descriptor type tag to its Type. Matching is exact and
// case-sensitive, as in the descriptor format.
func ParseType(s string) (Type, bool) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), true
		}
	}
	return 0, false
}

// Types returns every supported type in declaration order.
func Types() []Type {
	out := make([]Type, len(typeNames))
	for i := range typeNames {
		out[i] = Type(i)
	}
	return out
}
