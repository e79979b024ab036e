// Package testutil provides the harness used by the integration tests: it
// writes a descriptor to disk, runs the full application on it and collects
// the logs and the rendered graph.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/nnc/internal/app"
	"github.com/vk/nnc/internal/hcl_adapter"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	// DOT is the rendered graph, empty when the run failed before writing it.
	DOT string
}

// RunIntegrationTest runs descriptor through the application with default
// settings.
func RunIntegrationTest(t *testing.T, descriptor string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithConfig(t, descriptor, app.Config{})
}

// RunIntegrationTestWithConfig runs descriptor with cfg. The graph and output
// paths and the log settings are always filled in by the harness.
func RunIntegrationTestWithConfig(t *testing.T, descriptor string, cfg app.Config) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	cfg.GraphPath = filepath.Join(dir, "net.hcl")
	cfg.OutputPath = filepath.Join(dir, "net.dot")
	cfg.LogFormat = "text"
	cfg.LogLevel = "debug"
	require.NoError(t, os.WriteFile(cfg.GraphPath, []byte(descriptor), 0o644))

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	runErr := app.NewApp(logBuffer, appConfig, hcl_adapter.NewLoader()).Run(context.Background())

	t.Cleanup(func() {
		if os.Getenv("NNC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	result := &HarnessResult{LogOutput: logBuffer.String(), Err: runErr}
	if dot, err := os.ReadFile(cfg.OutputPath); err == nil {
		result.DOT = string(dot)
	}
	return result
}
