package testutil

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	edgeRegex  = regexp.MustCompile(`^\t"(.+)" -> "(.+)";$`)
	labelRegex = regexp.MustCompile(`^\t"(.+?)" \[.*label="(.*)"\]$`)
)

// Edges returns the edges of a rendered graph as (from, to) DOT ids, in
// file order.
func Edges(dot string) [][2]string {
	var edges [][2]string
	for _, line := range strings.Split(dot, "\n") {
		if m := edgeRegex.FindStringSubmatch(line); m != nil {
			edges = append(edges, [2]string{m[1], m[2]})
		}
	}
	return edges
}

// Label returns the last label rendered for the DOT id, with line breaks
// unescaped.
func Label(dot, id string) (string, bool) {
	var label string
	found := false
	for _, line := range strings.Split(dot, "\n") {
		if m := labelRegex.FindStringSubmatch(line); m != nil && m[1] == id {
			label, found = strings.ReplaceAll(m[2], `\n`, "\n"), true
		}
	}
	return label, found
}

// AssertEdge checks that the rendered graph contains from -> to.
func AssertEdge(t *testing.T, result *HarnessResult, from, to string) {
	t.Helper()
	for _, e := range Edges(result.DOT) {
		if e == [2]string{from, to} {
			return
		}
	}
	require.Failf(t, "edge not rendered", "expected %q -> %q in:\n%s", from, to, result.DOT)
}

// AssertBlobShape checks the rendered shape of the data node named blob.
func AssertBlobShape(t *testing.T, result *HarnessResult, blob, shape string) {
	t.Helper()
	label, ok := Label(result.DOT, blob+"_B")
	require.True(t, ok, "data node %q was not rendered", blob)
	require.Equal(t, blob+"\n"+shape, label, "shape of %q", blob)
}
