package render

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/dfarun/internal/dfa"
)

// edge is every transition between one ordered pair of states.
type edge[S comparable] struct {
	from, to S
	symbols  []string
}

func (e edge[S]) label() string {
	return strings.Join(e.symbols, ", ")
}

type pair[S comparable] struct{ from, to S }

// edges merges parallel transitions, keeping the order in which each pair
// first appears.
func edges[S, C comparable](d *dfa.DFA[S, C]) []edge[S] {
	var out []edge[S]
	index := make(map[pair[S]]int)
	for _, t := range d.Transitions() {
		p := pair[S]{t.From, t.To}
		i, ok := index[p]
		if !ok {
			i = len(out)
			index[p] = i
			out = append(out, edge[S]{from: t.From, to: t.To})
		}
		out[i].symbols = append(out[i].symbols, fmt.Sprint(t.Symbol))
	}
	return out
}

func name[S comparable](s S) string {
	return fmt.Sprint(s)
}
