package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nnc/internal/config"
	"github.com/vk/nnc/internal/layer"
)

func reluLayer(name string) layer.Layer {
	return layer.New(name, layer.ReLU, config.Params{}, 1)
}

// chain builds data -> relu1 -> out.
func chain(t *testing.T) (*Graph, ID, ID, ID) {
	t.Helper()
	g := New("test")
	in, err := g.AddData("data")
	require.NoError(t, err)
	l, err := g.AddComputation(reluLayer("relu1"))
	require.NoError(t, err)
	out, err := g.AddData("out")
	require.NoError(t, err)
	require.NoError(t, g.Connect(in, l))
	require.NoError(t, g.Connect(l, out))
	return g, in, l, out
}

func TestNew(t *testing.T) {
	g := New("net")
	require.NotNil(t, g)
	assert.Equal(t, "net", g.Name)
	assert.Zero(t, g.Len())
	assert.False(t, g.Sealed())
	assert.Empty(t, g.Entries())
	assert.Empty(t, g.Exits())
}

func TestAdjacency(t *testing.T) {
	g, in, l, out := chain(t)

	dataNode := g.Node(in)
	assert.Equal(t, "data", dataNode.Name())
	assert.Equal(t, Data, dataNode.Kind())
	assert.Equal(t, 0, dataNode.Indegree())
	assert.Equal(t, 1, dataNode.Outdegree())
	assert.Equal(t, []ID{l}, dataNode.Successors())
	assert.Equal(t, l, dataNode.Successor(0))
	assert.Equal(t, []ID{l}, dataNode.Consumers())
	_, hasProducer := dataNode.Producer()
	assert.False(t, hasProducer)

	layerNode := g.Node(l)
	assert.Equal(t, Computation, layerNode.Kind())
	assert.Equal(t, []ID{in}, layerNode.Inputs())
	assert.Equal(t, []ID{out}, layerNode.Outputs())
	assert.Equal(t, in, layerNode.Predecessor(0))
	assert.Equal(t, layer.ReLU, layerNode.Layer().Type())
	assert.Nil(t, layerNode.Consumers())

	outNode := g.Node(out)
	producer, ok := outNode.Producer()
	require.True(t, ok)
	assert.Equal(t, l, producer)
	assert.Nil(t, outNode.Inputs())
}

func TestAdjacency_ReturnsCopies(t *testing.T) {
	g, in, _, _ := chain(t)
	succs := g.Node(in).Successors()
	succs[0] = 99
	assert.NotEqual(t, ID(99), g.Node(in).Successor(0))
}

func TestConnect_Errors(t *testing.T) {
	t.Run("same kind", func(t *testing.T) {
		g := New("")
		a, _ := g.AddData("a")
		b, _ := g.AddData("b")
		assert.ErrorIs(t, g.Connect(a, b), ErrKindMismatch)
	})

	t.Run("second producer", func(t *testing.T) {
		g, _, _, out := chain(t)
		other, err := g.AddComputation(reluLayer("relu2"))
		require.NoError(t, err)
		assert.ErrorIs(t, g.Connect(other, out), ErrMultipleProducers)
	})

	t.Run("unknown node", func(t *testing.T) {
		g, in, _, _ := chain(t)
		assert.ErrorIs(t, g.Connect(in, 42), ErrUnknownNode)
		assert.ErrorIs(t, g.Connect(NoID, in), ErrUnknownNode)
	})

	t.Run("duplicate names", func(t *testing.T) {
		g, _, _, _ := chain(t)
		_, err := g.AddData("data")
		assert.ErrorIs(t, err, ErrDuplicateName)
		_, err = g.AddComputation(reluLayer("relu1"))
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("data and layer may share a name", func(t *testing.T) {
		g := New("")
		_, err := g.AddData("conv1")
		require.NoError(t, err)
		_, err = g.AddComputation(reluLayer("conv1"))
		assert.NoError(t, err)
	})
}

func TestSeal(t *testing.T) {
	g, in, l, out := chain(t)
	lonely, err := g.AddData("lonely")
	require.NoError(t, err)

	g.Seal()
	assert.True(t, g.Sealed())
	assert.Equal(t, []ID{in, lonely}, g.Entries())
	assert.Equal(t, []ID{out, lonely}, g.Exits())

	_, err = g.AddData("late")
	assert.ErrorIs(t, err, ErrSealed)
	_, err = g.AddComputation(reluLayer("late"))
	assert.ErrorIs(t, err, ErrSealed)
	assert.ErrorIs(t, g.Connect(in, l), ErrSealed)

	g.Seal()
	assert.Len(t, g.Entries(), 2, "sealing twice must not duplicate entries")
}

func TestSetShape(t *testing.T) {
	g, in, l, _ := chain(t)

	_, ok := g.Node(in).Shape()
	assert.False(t, ok)

	require.NoError(t, g.SetShape(in, layer.Shape{1, 3, 8, 8}))
	s, ok := g.Node(in).Shape()
	require.True(t, ok)
	assert.Equal(t, layer.Shape{1, 3, 8, 8}, s)

	assert.ErrorIs(t, g.SetShape(in, layer.Shape{1}), ErrShapeAssigned)
	assert.ErrorIs(t, g.SetShape(l, layer.Shape{1}), ErrNotData)
	assert.ErrorIs(t, g.SetShape(77, layer.Shape{1}), ErrUnknownNode)
}

func TestLookups(t *testing.T) {
	g, in, l, out := chain(t)

	n, ok := g.DataByName("out")
	require.True(t, ok)
	assert.Equal(t, out, n.ID())

	n, ok = g.LayerByName("relu1")
	require.True(t, ok)
	assert.Equal(t, l, n.ID())

	_, ok = g.LayerByName("data")
	assert.False(t, ok, "layer and data namespaces are separate")

	assert.Equal(t, []ID{l}, g.Layers())
	assert.Equal(t, 3, g.Len())
	assert.Len(t, g.Nodes(), 3)
	assert.Nil(t, g.Node(in+100))
}

func TestComponents(t *testing.T) {
	g, in, l, out := chain(t)
	a, _ := g.AddData("a")
	r, _ := g.AddComputation(reluLayer("r"))
	b, _ := g.AddData("b")
	require.NoError(t, g.Connect(a, r))
	require.NoError(t, g.Connect(r, b))
	g.Seal()

	assert.Equal(t, [][]ID{{in, l, out}, {a, r, b}}, g.Components())
}

func TestCheckAcyclic(t *testing.T) {
	g, _, _, _ := chain(t)
	assert.NoError(t, g.CheckAcyclic())

	// A layer feeding its own input can only be built by hand.
	g = New("")
	x, _ := g.AddData("x")
	r, _ := g.AddComputation(reluLayer("r"))
	y, _ := g.AddData("y")
	s, _ := g.AddComputation(reluLayer("s"))
	require.NoError(t, g.Connect(x, r))
	require.NoError(t, g.Connect(r, y))
	require.NoError(t, g.Connect(y, s))
	require.NoError(t, g.Connect(s, x))

	err := g.CheckAcyclic()
	require.Error(t, err)
	assert.ErrorContains(t, err, "cycle detected")
}
