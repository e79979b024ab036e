package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/vk/nnc/internal/graph"
)

const (
	layerSuffix = "_L"
	blobSuffix  = "_B"
	layerStyle  = `shape=box,style=filled,fillcolor=".7 .3 1.0"`
	blobStyle   = `fontsize=10`
)

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// WriteDOT writes plan as a Graphviz digraph named after g.
func WriteDOT(w io.Writer, g *graph.Graph, plan *Plan) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "digraph %s{\n", graphName(g.Name))
	fmt.Fprint(bw, "\trankdir = UD;\n")
	fmt.Fprint(bw, "\tnode [shape=oval]\n")

	for _, r := range plan.Records {
		from, to := g.Node(r.From), g.Node(r.To)
		writeNode(bw, from)
		fmt.Fprintf(bw, "\t%s -> %s;\n", quote(dotID(from)), quote(dotID(to)))
	}
	for _, id := range plan.Terminals {
		writeNode(bw, g.Node(id))
	}

	fmt.Fprint(bw, "}\n")
	return bw.Flush()
}

func writeNode(w io.Writer, n *graph.Node) {
	fmt.Fprintf(w, "\t%s [%s, label=%s]\n", quote(dotID(n)), style(n), quote(label(n)))
}

func dotID(n *graph.Node) string {
	if n.Kind() == graph.Computation {
		return n.Name() + layerSuffix
	}
	return n.Name() + blobSuffix
}

func style(n *graph.Node) string {
	if n.Kind() == graph.Computation {
		return layerStyle
	}
	return blobStyle
}

// label is the layer name plus its description, or the blob name and shape
// on two lines. Line breaks become DOT escapes when quoted.
func label(n *graph.Node) string {
	if n.Kind() == graph.Computation {
		return n.Name() + n.Layer().Describe()
	}
	s, _ := n.Shape()
	return n.Name() + "\n" + s.String()
}

// graphName returns name bare when it is a DOT identifier and quoted
// otherwise.
func graphName(name string) string {
	if name == "" {
		return `""`
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return quote(name)
	}
	return name
}

func quote(s string) string {
	return `"` + labelEscaper.Replace(s) + `"`
}
