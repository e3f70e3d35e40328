// Package regexgen enumerates strings matched by a regular expression. It is
// used to produce large sets of inputs a DFA is expected to accept from the
// regex that describes the DFA's language.
//
// Unbounded repetition is cut off at Options.MaxRepeat and the total output
// at Options.Limit. Results are deduplicated and ordered shortest first.
// Anchors and word boundaries match the empty string; `.` expands to the
// symbols of Options.Alphabet.
package regexgen

import (
	"fmt"
	"regexp/syntax"
	"sort"
	"unicode/utf8"
)

const (
	DefaultLimit     = 10000
	DefaultMaxRepeat = 3
)

// Options bounds the enumeration.
type Options struct {
	Limit     int
	MaxRepeat int
	// Alphabet is what `.` stands for.
	Alphabet []string
}

// Generate returns up to opts.Limit distinct strings matched by pattern.
func Generate(pattern string, opts Options) ([]string, error) {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.MaxRepeat <= 0 {
		opts.MaxRepeat = DefaultMaxRepeat
	}

	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", pattern, err)
	}

	g := &generator{opts: opts}
	out, err := g.gen(re.Simplify())
	if err != nil {
		return nil, fmt.Errorf("regex %q: %w", pattern, err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i]) < utf8.RuneCountInString(out[j])
	})
	return out, nil
}

type generator struct {
	opts Options
}

func (g *generator) gen(re *syntax.Regexp) ([]string, error) {
	switch re.Op {
	case syntax.OpNoMatch:
		return nil, nil

	case syntax.OpEmptyMatch, syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText, syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return []string{""}, nil

	case syntax.OpLiteral:
		return []string{string(re.Rune)}, nil

	case syntax.OpCharClass:
		c := g.collector()
		for i := 0; i+1 < len(re.Rune); i += 2 {
			for r := re.Rune[i]; r <= re.Rune[i+1]; r++ {
				if !c.add(string(r)) {
					return c.out, nil
				}
			}
		}
		return c.out, nil

	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		if len(g.opts.Alphabet) == 0 {
			return nil, fmt.Errorf("`.` needs an alphabet to expand to")
		}
		c := g.collector()
		for _, symbol := range g.opts.Alphabet {
			c.add(symbol)
		}
		return c.out, nil

	case syntax.OpCapture:
		return g.gen(re.Sub[0])

	case syntax.OpStar:
		return g.repeat(re.Sub[0], 0, g.opts.MaxRepeat)
	case syntax.OpPlus:
		return g.repeat(re.Sub[0], 1, g.opts.MaxRepeat)
	case syntax.OpQuest:
		return g.repeat(re.Sub[0], 0, 1)
	case syntax.OpRepeat:
		maxRepeat := re.Max
		if maxRepeat < 0 {
			maxRepeat = re.Min + g.opts.MaxRepeat
		}
		return g.repeat(re.Sub[0], re.Min, maxRepeat)

	case syntax.OpConcat:
		out := []string{""}
		for _, sub := range re.Sub {
			items, err := g.gen(sub)
			if err != nil {
				return nil, err
			}
			out = g.product(out, items)
			if len(out) == 0 {
				return nil, nil
			}
		}
		return out, nil

	case syntax.OpAlternate:
		c := g.collector()
		for _, sub := range re.Sub {
			items, err := g.gen(sub)
			if err != nil {
				return nil, err
			}
			for _, item := range items {
				if !c.add(item) {
					return c.out, nil
				}
			}
		}
		return c.out, nil
	}

	return nil, fmt.Errorf("unsupported regex construct %v", re.Op)
}

// repeat returns the strings of sub repeated between lo and hi times.
func (g *generator) repeat(sub *syntax.Regexp, lo, hi int) ([]string, error) {
	items, err := g.gen(sub)
	if err != nil {
		return nil, err
	}

	c := g.collector()
	current := []string{""}
	for k := 0; k <= hi; k++ {
		if k > 0 {
			current = g.product(current, items)
		}
		if len(current) == 0 {
			break
		}
		if k < lo {
			continue
		}
		for _, s := range current {
			if !c.add(s) {
				return c.out, nil
			}
		}
	}
	return c.out, nil
}

// product concatenates every string of a with every string of b.
func (g *generator) product(a, b []string) []string {
	c := g.collector()
	for _, x := range a {
		for _, y := range b {
			if !c.add(x + y) {
				return c.out
			}
		}
	}
	return c.out
}

func (g *generator) collector() *collector {
	return &collector{limit: g.opts.Limit, seen: make(map[string]struct{})}
}

// collector accumulates distinct strings up to a limit.
type collector struct {
	limit int
	seen  map[string]struct{}
	out   []string
}

// add records s and reports whether there is room for more.
func (c *collector) add(s string) bool {
	if len(c.out) >= c.limit {
		return false
	}
	if _, ok := c.seen[s]; !ok {
		c.seen[s] = struct{}{}
		c.out = append(c.out, s)
	}
	return len(c.out) < c.limit
}
