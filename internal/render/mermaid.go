package render

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/dfarun/internal/dfa"
)

// Mermaid returns a Mermaid stateDiagram-v2 for d. States get positional ids
// (s0, s1, ...) aliased to their names, so any state name is safe to draw.
// Accepting states point to the diagram's final marker.
func Mermaid[S, C comparable](d *dfa.DFA[S, C]) string {
	ids := make(map[S]string)
	id := func(s S) string {
		if v, ok := ids[s]; ok {
			return v
		}
		v := fmt.Sprintf("s%d", len(ids))
		ids[s] = v
		return v
	}

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString("\tdirection LR\n")

	for _, s := range d.States() {
		sb.WriteString(fmt.Sprintf("\tstate \"%s\" as %s\n", escapeMermaid(name(s)), id(s)))
	}

	sb.WriteString(fmt.Sprintf("\t[*] --> %s\n", id(d.StartState())))

	for _, e := range edges(d) {
		sb.WriteString(fmt.Sprintf("\t%s --> %s : %s\n", id(e.from), id(e.to), escapeMermaid(e.label())))
	}

	for _, s := range d.FinalStates() {
		sb.WriteString(fmt.Sprintf("\t%s --> [*]\n", id(s)))
	}

	return sb.String()
}

// escapeMermaid replaces characters that end a Mermaid name or label.
func escapeMermaid(s string) string {
	s = strings.ReplaceAll(s, "\"", "#quot;")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
