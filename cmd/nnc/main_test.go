package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/nnc/internal/builder"
)

func TestRun_WritesGraph(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	descriptor := filepath.Join(dir, "net.hcl")
	output := filepath.Join(dir, "net.dot")
	err := os.WriteFile(descriptor, []byte(`
input "data" {
  shape = [1, 10]
}

layer "fc" {
  type   = "InnerProduct"
  bottom = "data"
  top    = "fc"
  inner_product { num_output = 2 }
}
`), 0o600)
	require.NoError(t, err, "failed to set up test file")
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, []string{"-g", descriptor, "-o", output, "--log-format", "text"})

	// --- Assert ---
	require.NoError(t, runErr)
	dot, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(dot), "digraph unknown{")
	require.Contains(t, string(dot), `"fc_B" [fontsize=10, label="fc\n1x2"]`)
	require.Contains(t, out.String(), "Graph rendered.")
}

func TestRun_LoadError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A descriptor with a syntax error fails while loading.
	dir := t.TempDir()
	filePath := filepath.Join(dir, "broken.hcl")
	err := os.WriteFile(filePath, []byte(`layer "conv1" {`), 0o600)
	require.NoError(t, err, "failed to set up test file")
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, []string{"-o", filepath.Join(dir, "out.dot"), filePath})

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "failed to load network descriptor")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_BuildError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	filePath := filepath.Join(dir, "net.hcl")
	err := os.WriteFile(filePath, []byte(`
layer "mystery" {
  top = "x"
}
`), 0o600)
	require.NoError(t, err, "failed to set up test file")

	// --- Act ---
	runErr := run(&bytes.Buffer{}, []string{"-o", filepath.Join(dir, "out.dot"), filePath})

	// --- Assert ---
	require.ErrorIs(t, runErr, builder.ErrConfig)
	require.Contains(t, runErr.Error(), "missing type parameter")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
