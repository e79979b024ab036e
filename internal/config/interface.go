package config

import "context"

// Loader is the interface for a format-specific network descriptor loader.
type Loader interface {
	// Load reads the descriptor at path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Net, error)
}
