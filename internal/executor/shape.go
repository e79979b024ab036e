package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/nnc/internal/ctxlog"
	"github.com/vk/nnc/internal/graph"
	"github.com/vk/nnc/internal/layer"
)

// ErrShapeUnknown is returned when a layer is reached before one of its
// input shapes has been computed.
var ErrShapeUnknown = errors.New("input shape not yet known")

// ShapeInference computes the shape of every data node reachable through
// the schedule it is given.
type ShapeInference struct {
	graph *graph.Graph
	order []graph.ID
}

var _ Executor = (*ShapeInference)(nil)

// New creates a shape inference pass over g that visits layers in order.
// The order is normally the result of scheduler.Schedule.
func New(g *graph.Graph, order []graph.ID) *ShapeInference {
	return &ShapeInference{graph: g, order: order}
}

// Execute visits each scheduled layer once, gathers its input shapes and
// records the shapes of its outputs. It stops at the first failure.
func (e *ShapeInference) Execute(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executor: Starting shape inference.", "layers", len(e.order))

	for _, id := range e.order {
		n := e.graph.Node(id)
		if n == nil || n.Kind() != graph.Computation {
			return fmt.Errorf("scheduled node %d is not a layer", id)
		}
		if err := e.infer(n); err != nil {
			return err
		}
		logger.Debug("Shapes inferred.", "layer", n.Name(), "type", n.Layer().Type().String())
	}

	logger.Debug("Executor: Shape inference complete.")
	return nil
}

func (e *ShapeInference) infer(n *graph.Node) error {
	inputs := n.Inputs()
	in := make([]layer.Shape, len(inputs))
	for i, id := range inputs {
		data := e.graph.Node(id)
		s, ok := data.Shape()
		if !ok {
			return fmt.Errorf("layer %q reads %q: %w", n.Name(), data.Name(), ErrShapeUnknown)
		}
		in[i] = s
	}

	out, err := n.Layer().OutputShapes(in)
	if err != nil {
		return fmt.Errorf("inferring shapes of layer %q: %w", n.Name(), err)
	}

	outputs := n.Outputs()
	if len(out) != len(outputs) {
		return fmt.Errorf("layer %q produced %d shapes for %d outputs", n.Name(), len(out), len(outputs))
	}
	for i, id := range outputs {
		if err := e.graph.SetShape(id, out[i]); err != nil {
			return fmt.Errorf("recording output of layer %q: %w", n.Name(), err)
		}
	}
	return nil
}
