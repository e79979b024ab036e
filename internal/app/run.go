package app

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/vk/nnc/internal/builder"
	"github.com/vk/nnc/internal/ctxlog"
	"github.com/vk/nnc/internal/executor"
	"github.com/vk/nnc/internal/graph"
	"github.com/vk/nnc/internal/render"
	"github.com/vk/nnc/internal/scheduler"
)

// Run loads the descriptor, builds and schedules its graph, infers every
// data shape and writes the rendered graph to the configured output path.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx = ctxlog.WithRunID(ctx, uuid.NewString())
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "graph", a.config.GraphPath)

	seed, err := render.ParseSeed(a.config.RenderSeed)
	if err != nil {
		return err
	}

	net, err := a.loader.Load(ctx, a.config.GraphPath)
	if err != nil {
		return fmt.Errorf("failed to load network descriptor: %w", err)
	}

	g, err := builder.Build(ctx, net)
	if err != nil {
		return fmt.Errorf("failed to build computation graph: %w", err)
	}

	order := scheduler.Schedule(g)
	logSchedule(ctx, g, order)

	if err := executor.New(g, order).Execute(ctx); err != nil {
		return fmt.Errorf("shape inference failed: %w", err)
	}

	plan := render.Walk(g, seed)
	if seed == render.SeedFirst {
		components := g.Components()
		if len(components) > 1 || !plan.Complete(g) {
			logger.Warn("Rendering from the first entry only leaves part of the graph out.",
				"visited", plan.Visited,
				"nodes", g.Len(),
				"components", len(components),
			)
		}
	}

	if err := a.writeDOT(g, plan); err != nil {
		return err
	}
	logger.Info("Graph rendered.", "network", g.Name, "output", a.config.OutputPath, "layers", len(order))

	logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) writeDOT(g *graph.Graph, plan *render.Plan) (err error) {
	f, err := os.Create(a.config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := render.WriteDOT(f, g, plan); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// logSchedule emits the processing order at debug level.
func logSchedule(ctx context.Context, g *graph.Graph, order []graph.ID) {
	logger := ctxlog.FromContext(ctx)
	for i, id := range order {
		n := g.Node(id)
		logger.Debug("Scheduled layer.", "position", i, "layer", n.Name(), "type", n.Layer().Type().String())
	}
}
