package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/nnc/internal/config"
	"github.com/vk/nnc/internal/ctxlog"
	"github.com/vk/nnc/internal/graph"
	"github.com/vk/nnc/internal/layer"
)

// UnnamedNetwork is the graph name used when the descriptor has none.
const UnnamedNetwork = "unknown"

// Build constructs a sealed computation graph from a network descriptor.
func Build(ctx context.Context, net *config.Net) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.")

	if net == nil {
		return nil, configErrorf("", "no network descriptor")
	}
	if len(net.Inputs) != len(net.InputShapes) {
		return nil, configErrorf("", "%d inputs declared but %d input shapes", len(net.Inputs), len(net.InputShapes))
	}
	types, err := resolveTypes(net.Layers)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Descriptor validated.", "inputs", len(net.Inputs), "layers", len(net.Layers))

	name := net.Name
	if name == "" {
		name = UnnamedNetwork
	}
	b := &state{
		g:       graph.New(name),
		aliases: newAliases(net),
	}

	if err := b.addInputs(net); err != nil {
		return nil, err
	}
	for i, lp := range net.Layers {
		logger.Debug("Processing layer.", "layer", lp.Name, "type", types[i].String())
		if err := b.addLayer(lp, types[i]); err != nil {
			return nil, err
		}
	}

	b.g.Seal()
	if err := b.g.CheckAcyclic(); err != nil {
		return nil, fmt.Errorf("error validating computation graph: %w", err)
	}

	logger.Info("Build: Graph construction successful.",
		"network", name,
		"nodes", b.g.Len(),
		"entries", len(b.g.Entries()),
		"exits", len(b.g.Exits()),
	)
	return b.g, nil
}

// resolveTypes maps every type tag before anything is built, so that a bad
// tag anywhere in the list aborts construction up front.
func resolveTypes(layers []*config.Layer) ([]layer.Type, error) {
	types := make([]layer.Type, len(layers))
	for i, lp := range layers {
		if lp == nil {
			return nil, configErrorf("", "layer %d is empty", i)
		}
		if lp.Name == "" {
			return nil, configErrorf("", "layer %d has no name", i)
		}
		if lp.Type == "" {
			return nil, configErrorf(lp.Name, "missing type parameter")
		}
		t, ok := layer.ParseType(lp.Type)
		if !ok {
			return nil, &UnsupportedLayerError{Layer: lp.Name, Type: lp.Type}
		}
		types[i] = t
	}
	return types, nil
}

// state is the mutable context of a single Build call.
type state struct {
	g       *graph.Graph
	aliases *aliases
}

func (b *state) addInputs(net *config.Net) error {
	for i, name := range net.Inputs {
		if name == "" {
			return configErrorf("", "input %d has no name", i)
		}
		id, err := b.g.AddData(name)
		if errors.Is(err, graph.ErrDuplicateName) {
			return configErrorf("", "input %q declared twice", name)
		} else if err != nil {
			return err
		}
		if err := b.g.SetShape(id, layer.Shape(net.InputShapes[i])); err != nil {
			return configErrorf("", "input %q: %v", name, err)
		}
	}
	return nil
}

func (b *state) addLayer(lp *config.Layer, t layer.Type) error {
	l := layer.New(lp.Name, t, lp.Params, len(lp.Top))
	id, err := b.g.AddComputation(l)
	if errors.Is(err, graph.ErrDuplicateName) {
		return configErrorf(lp.Name, "layer name declared twice")
	} else if err != nil {
		return err
	}

	for _, bottom := range lp.Bottom {
		src, ok := b.g.DataByName(b.aliases.resolve(bottom))
		if !ok {
			return &ReferenceError{Layer: lp.Name, Blob: bottom}
		}
		if err := b.g.Connect(src.ID(), id); err != nil {
			return fmt.Errorf("wiring bottom %q of layer %q: %w", bottom, lp.Name, err)
		}
	}

	for _, top := range lp.Top {
		if top == "" {
			return configErrorf(lp.Name, "empty top name")
		}
		name := top
		if _, live := b.g.DataByName(top); live {
			name = b.aliases.rename(top)
		}
		dst, err := b.g.AddData(name)
		if err != nil {
			return fmt.Errorf("creating top %q of layer %q: %w", name, lp.Name, err)
		}
		if err := b.g.Connect(id, dst); err != nil {
			return fmt.Errorf("wiring top %q of layer %q: %w", name, lp.Name, err)
		}
	}
	return nil
}
