package error_handling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nnc/internal/builder"
	"github.com/vk/nnc/internal/executor"
	"github.com/vk/nnc/internal/layer"
	"github.com/vk/nnc/internal/testutil"
)

func TestErrorHandling_RejectedDescriptors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		descriptor string
		checkFn    func(t *testing.T, err error)
	}{
		{
			name:       "invalid HCL is rejected",
			descriptor: `layer "conv1" {`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "failed to load network descriptor")
			},
		},
		{
			name: "missing type parameter",
			descriptor: `
input "data" { shape = [1] }
layer "anon" {
  bottom = "data"
  top    = "out"
}`,
			checkFn: func(t *testing.T, err error) {
				var cfgErr *builder.ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, "anon", cfgErr.Layer)
			},
		},
		{
			name: "unsupported layer type",
			descriptor: `
input "data" { shape = [1] }
layer "rnn" {
  type   = "LSTM"
  bottom = "data"
  top    = "h"
}`,
			checkFn: func(t *testing.T, err error) {
				var unsupported *builder.UnsupportedLayerError
				require.ErrorAs(t, err, &unsupported)
				assert.Equal(t, "LSTM", unsupported.Type)
			},
		},
		{
			name: "input and shape counts differ",
			descriptor: `
inputs = ["data", "label"]
input_shape { dim = [1, 3, 8, 8] }`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, builder.ErrConfig)
			},
		},
		{
			name: "bottom names nothing",
			descriptor: `
input "data" { shape = [1] }
layer "r" {
  type   = "ReLU"
  bottom = "ghost"
  top    = "r"
}`,
			checkFn: func(t *testing.T, err error) {
				var refErr *builder.ReferenceError
				require.ErrorAs(t, err, &refErr)
				assert.Equal(t, "ghost", refErr.Blob)
			},
		},
		{
			name: "kernel larger than input",
			descriptor: `
input "data" { shape = [1, 1, 2, 2] }
layer "conv" {
  type   = "Convolution"
  bottom = "data"
  top    = "conv"
  convolution {
    num_output  = 1
    kernel_size = 5
  }
}`,
			checkFn: func(t *testing.T, err error) {
				var shapeErr *layer.ShapeError
				require.ErrorAs(t, err, &shapeErr)
				assert.Equal(t, "conv", shapeErr.Layer)
			},
		},
		{
			name: "input layer without a shape",
			descriptor: `
layer "data" {
  type = "Input"
  top  = "data"
}`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "no shape declared")
				assert.NotErrorIs(t, err, executor.ErrShapeUnknown)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := testutil.RunIntegrationTest(t, tc.descriptor)
			require.Error(t, result.Err)
			assert.Empty(t, result.DOT, "nothing is rendered for a rejected descriptor")
			tc.checkFn(t, result.Err)
		})
	}
}
