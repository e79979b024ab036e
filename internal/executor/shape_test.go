package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nnc/internal/builder"
	"github.com/vk/nnc/internal/config"
	"github.com/vk/nnc/internal/graph"
	"github.com/vk/nnc/internal/layer"
	"github.com/vk/nnc/internal/scheduler"
)

func lenet() *config.Net {
	return &config.Net{
		Name:        "LeNet",
		Inputs:      []string{"data"},
		InputShapes: [][]int{{1, 1, 28, 28}},
		Layers: []*config.Layer{
			{
				Name: "conv1", Type: "Convolution", Bottom: []string{"data"}, Top: []string{"conv1"},
				Params: config.Params{Convolution: &config.ConvolutionParams{NumOutput: 20, KernelH: 5, KernelW: 5}},
			},
			{
				Name: "pool1", Type: "Pooling", Bottom: []string{"conv1"}, Top: []string{"pool1"},
				Params: config.Params{Pooling: &config.PoolingParams{Method: config.PoolMax, KernelH: 2, KernelW: 2, StrideH: 2, StrideW: 2}},
			},
			{
				Name: "ip1", Type: "InnerProduct", Bottom: []string{"pool1"}, Top: []string{"ip1"},
				Params: config.Params{InnerProduct: &config.InnerProductParams{NumOutput: 500, Axis: 1}},
			},
			{Name: "relu1", Type: "ReLU", Bottom: []string{"ip1"}, Top: []string{"ip1"}},
			{
				Name: "ip2", Type: "InnerProduct", Bottom: []string{"ip1"}, Top: []string{"ip2"},
				Params: config.Params{InnerProduct: &config.InnerProductParams{NumOutput: 10, Axis: 1}},
			},
			{Name: "prob", Type: "Softmax", Bottom: []string{"ip2"}, Top: []string{"prob"}},
		},
	}
}

func build(t *testing.T, net *config.Net) *graph.Graph {
	t.Helper()
	g, err := builder.Build(context.Background(), net)
	require.NoError(t, err)
	return g
}

func TestShapeInference_LeNet(t *testing.T) {
	t.Parallel()

	g := build(t, lenet())
	err := New(g, scheduler.Schedule(g)).Execute(context.Background())
	require.NoError(t, err)

	want := map[string]layer.Shape{
		"data":  {1, 1, 28, 28},
		"conv1": {1, 20, 24, 24},
		"pool1": {1, 20, 12, 12},
		"ip1":   {1, 500},
		"ip1_0": {1, 500},
		"ip2":   {1, 10},
		"prob":  {1, 10},
	}
	for name, shape := range want {
		n, ok := g.DataByName(name)
		require.True(t, ok, name)
		got, ok := n.Shape()
		require.True(t, ok, "shape of %q not computed", name)
		assert.Equal(t, shape, got, name)
	}
}

func TestShapeInference_InputLayer(t *testing.T) {
	t.Parallel()

	g := build(t, &config.Net{
		Layers: []*config.Layer{
			{
				Name: "data", Type: "Input", Top: []string{"data", "label"},
				Params: config.Params{Input: &config.InputParams{Shapes: [][]int{{8, 3, 4, 4}, {8}}}},
			},
			{Name: "drop", Type: "Dropout", Bottom: []string{"data"}, Top: []string{"data"}},
		},
	})
	require.NoError(t, New(g, scheduler.Schedule(g)).Execute(context.Background()))

	label, _ := g.DataByName("label")
	s, ok := label.Shape()
	require.True(t, ok)
	assert.Equal(t, layer.Shape{8}, s)

	dropped, _ := g.DataByName("data_0")
	s, ok = dropped.Shape()
	require.True(t, ok)
	assert.Equal(t, layer.Shape{8, 3, 4, 4}, s)
}

func TestShapeInference_Errors(t *testing.T) {
	t.Parallel()

	t.Run("layer rejects its input", func(t *testing.T) {
		t.Parallel()
		net := lenet()
		net.Layers[0].Params.Convolution.KernelH = 0
		g := build(t, net)

		err := New(g, scheduler.Schedule(g)).Execute(context.Background())
		var shapeErr *layer.ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, "conv1", shapeErr.Layer)
		assert.Equal(t, layer.Convolution, shapeErr.Type)
	})

	t.Run("input shape not yet computed", func(t *testing.T) {
		t.Parallel()
		g := build(t, lenet())
		order := scheduler.Schedule(g)
		reversed := make([]graph.ID, len(order))
		for i, id := range order {
			reversed[len(order)-1-i] = id
		}

		err := New(g, reversed).Execute(context.Background())
		assert.ErrorIs(t, err, ErrShapeUnknown)
		assert.ErrorContains(t, err, `layer "prob"`)
	})

	t.Run("shapes are written once", func(t *testing.T) {
		t.Parallel()
		g := build(t, lenet())
		exec := New(g, scheduler.Schedule(g))
		require.NoError(t, exec.Execute(context.Background()))

		err := exec.Execute(context.Background())
		assert.ErrorIs(t, err, graph.ErrShapeAssigned)
	})

	t.Run("data node in the schedule", func(t *testing.T) {
		t.Parallel()
		g := build(t, lenet())
		entry := g.Entries()[0]

		err := New(g, []graph.ID{entry}).Execute(context.Background())
		assert.ErrorContains(t, err, "is not a layer")
	})
}
