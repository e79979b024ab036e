package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is the kind of every *ConfigError.
	ErrConfig = errors.New("invalid network configuration")
	// ErrUnsupportedLayer is the kind of every *UnsupportedLayerError.
	ErrUnsupportedLayer = errors.New("unsupported layer type")
	// ErrReference is the kind of every *ReferenceError.
	ErrReference = errors.New("unresolved blob reference")
)

// ConfigError reports a structurally invalid descriptor: mismatched input
// counts, a missing type tag, or a duplicated name.
type ConfigError struct {
	// Layer is the offending layer, empty for network-level problems.
	Layer string
	Msg   string
}

func (e *ConfigError) Error() string {
	if e.Layer != "" {
		return fmt.Sprintf("%s: layer %q: %s", ErrConfig, e.Layer, e.Msg)
	}
	return fmt.Sprintf("%s: %s", ErrConfig, e.Msg)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

func configErrorf(layer, format string, args ...any) error {
	return &ConfigError{Layer: layer, Msg: fmt.Sprintf(format, args...)}
}

// UnsupportedLayerError reports a type tag outside the supported set.
type UnsupportedLayerError struct {
	Layer string
	Type  string
}

func (e *UnsupportedLayerError) Error() string {
	return fmt.Sprintf("%s %q in layer %q", ErrUnsupportedLayer, e.Type, e.Layer)
}

func (e *UnsupportedLayerError) Unwrap() error { return ErrUnsupportedLayer }

// ReferenceError reports a bottom that names no known data node.
type ReferenceError struct {
	Layer string
	Blob  string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: layer %q reads %q", ErrReference, e.Layer, e.Blob)
}

func (e *ReferenceError) Unwrap() error { return ErrReference }
