package render

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/dfarun/internal/dfa"
)

// DOT returns the Graphviz source for d.
func DOT[S, C comparable](d *dfa.DFA[S, C]) string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("rankdir=\"LR\"\n")
	sb.WriteString("node [shape=circle]\n")

	for _, s := range d.States() {
		n := EscapeLabel(name(s))
		if d.IsFinal(s) {
			sb.WriteString(fmt.Sprintf("\"%s\" [label=\"%s\", shape=doublecircle];\n", n, n))
		} else {
			sb.WriteString(fmt.Sprintf("\"%s\" [label=\"%s\"];\n", n, n))
		}
	}

	sb.WriteString(" init [label=\"\", shape=point];\n")
	sb.WriteString(fmt.Sprintf(" init -> \"%s\" [style=\"solid\"];\n", EscapeLabel(name(d.StartState()))))

	for _, e := range edges(d) {
		sb.WriteString(fmt.Sprintf("\"%s\" -> \"%s\" [style=\"solid\", label=\"%s\"];\n",
			EscapeLabel(name(e.from)), EscapeLabel(name(e.to)), EscapeLabel(e.label())))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// EscapeLabel escapes special characters in a DOT label.
func EscapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	label = strings.ReplaceAll(label, "\"", "\\\"")
	return label
}
