package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nnc/internal/app"
)

func TestParse_Success(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want app.Config
	}{
		{
			name: "positional path with defaults",
			args: []string{"lenet.hcl"},
			want: app.Config{GraphPath: "lenet.hcl", OutputPath: "output.dot", LogFormat: "json", LogLevel: "info", RenderSeed: "all"},
		},
		{
			name: "shorthand flags",
			args: []string{"-g", "net.hcl", "-o", "net.dot"},
			want: app.Config{GraphPath: "net.hcl", OutputPath: "net.dot", LogFormat: "json", LogLevel: "info", RenderSeed: "all"},
		},
		{
			name: "long flags win over shorthand",
			args: []string{"--graph", "long.hcl", "-g", "short.hcl", "--output", "long.dot", "-o", "short.dot"},
			want: app.Config{GraphPath: "long.hcl", OutputPath: "long.dot", LogFormat: "json", LogLevel: "info", RenderSeed: "all"},
		},
		{
			name: "flag wins over positional",
			args: []string{"-g", "flag.hcl", "positional.hcl"},
			want: app.Config{GraphPath: "flag.hcl", OutputPath: "output.dot", LogFormat: "json", LogLevel: "info", RenderSeed: "all"},
		},
		{
			name: "logging and seed options are case insensitive",
			args: []string{"--log-format", "TEXT", "--log-level", "Debug", "--render-seed", "FIRST", "net.hcl"},
			want: app.Config{GraphPath: "net.hcl", OutputPath: "output.dot", LogFormat: "text", LogLevel: "debug", RenderSeed: "first"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)
			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, &tc.want, cfg)
		})
	}
}

func TestParse_ExitCleanly(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"-h"}, {}} {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse(args, &out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args    []string
		wantMsg string
	}{
		"unknown flag":       {[]string{"--nope"}, "flag provided but not defined"},
		"invalid log format": {[]string{"--log-format", "xml", "n.hcl"}, "invalid log-format"},
		"invalid log level":  {[]string{"--log-level", "trace", "n.hcl"}, "invalid log-level"},
		"invalid seed":       {[]string{"--render-seed", "last", "n.hcl"}, "invalid render-seed"},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
