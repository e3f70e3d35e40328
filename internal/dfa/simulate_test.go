package dfa

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccepts_OddAs(t *testing.T) {
	t.Parallel()
	d := oddAs(t)
	require.NoError(t, d.Validate())

	testCases := []struct {
		input string
		want  bool
	}{
		{input: "abbaa", want: true},
		{input: "abba", want: false},
		{input: "a", want: true},
		{input: "b", want: false},
		{input: "bbbab", want: true},
		{input: "ababaQ", want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := d.Accepts(symbols(tc.input))

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTrace_Path(t *testing.T) {
	t.Parallel()
	d := oddAs(t)

	run, err := d.Trace(symbols("abbaa"))

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 2, 1, 2}, run.Path)
	assert.Equal(t, 5, run.Consumed)
	assert.Equal(t, 2, run.State())
	assert.False(t, run.Unknown)
	assert.True(t, run.Accepted)
}

func TestTrace_StopsOnUnknownSymbol(t *testing.T) {
	t.Parallel()
	d := oddAs(t)

	// Everything after Q is never looked at, including a second unknown symbol.
	run, err := d.Trace(symbols("aQaZ"))

	require.NoError(t, err)
	assert.True(t, run.Unknown)
	assert.Equal(t, "Q", run.Symbol)
	assert.Equal(t, 1, run.Consumed)
	assert.Equal(t, []int{1, 2}, run.Path)
	assert.False(t, run.Accepted, "the walk is rejected even though state 2 is accepting")
}

func TestAccepts_EmptyInput(t *testing.T) {
	t.Parallel()

	rejecting := oddAs(t)
	accepting, err := New(
		[]int{1, 2},
		[]string{"a", "b"},
		rejecting.Transitions(),
		1,
		[]int{1},
	)
	require.NoError(t, err)

	for _, d := range []*DFA[int, string]{rejecting, accepting} {
		got, err := d.Accepts(nil)
		require.NoError(t, err)
		assert.Equal(t, d.IsFinal(d.StartState()), got)

		got, err = d.Accepts([]string{})
		require.NoError(t, err)
		assert.Equal(t, d.IsFinal(d.StartState()), got)
	}
}

func TestAccepts_UndefinedTransition(t *testing.T) {
	t.Parallel()

	// Intentionally not validated: (1, "b") is missing.
	d, err := New(
		[]int{1, 2},
		[]string{"a", "b"},
		[]Transition[int, string]{
			{From: 1, Symbol: "a", To: 2},
			{From: 2, Symbol: "a", To: 1},
			{From: 2, Symbol: "b", To: 2},
		},
		1,
		[]int{2},
	)
	require.NoError(t, err)

	ok, err := d.Accepts(symbols("bbbbb"))

	assert.False(t, ok)
	var target *UndefinedTransitionError[int, string]
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 1, target.State)
	assert.Equal(t, "b", target.Symbol)
	assert.True(t, errors.Is(err, ErrUndefinedTransition))
	assert.False(t, errors.Is(err, ErrInvalidDFA))
	assert.Contains(t, err.Error(), "something went wrong when attempting transition from state '1' on input 'b'")

	// The same DFA still rejects out-of-alphabet input without an error.
	ok, err = d.Accepts(symbols("Qb"))
	require.NoError(t, err)
	assert.False(t, ok)
}

// words returns every sequence over alphabet of length at most n.
func words(alphabet []string, n int) [][]string {
	out := [][]string{nil}
	frontier := [][]string{nil}
	for i := 0; i < n; i++ {
		var next [][]string
		for _, w := range frontier {
			for _, c := range alphabet {
				word := append(append([]string(nil), w...), c)
				next = append(next, word)
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func TestAccepts_ValidatedNeverUndefined(t *testing.T) {
	t.Parallel()
	d := oddAs(t)
	require.NoError(t, d.Validate())

	for _, w := range words(d.Alphabet(), 8) {
		got, err := d.Accepts(w)
		require.NoError(t, err, "input %q", strings.Join(w, ""))
		assert.Equal(t, strings.Count(strings.Join(w, ""), "a")%2 == 1, got, "input %q", strings.Join(w, ""))
	}
}

func TestAccepts_OutOfAlphabetAlwaysRejects(t *testing.T) {
	t.Parallel()
	d := oddAs(t)
	require.NoError(t, d.Validate())

	for _, w := range words(d.Alphabet(), 5) {
		for pos := 0; pos <= len(w); pos++ {
			input := append(append(append([]string(nil), w[:pos]...), "Q"), w[pos:]...)

			got, err := d.Accepts(input)

			require.NoError(t, err)
			assert.False(t, got, "input %q", strings.Join(input, ""))
		}
	}
}

func TestAccepts_ConcurrentCallers(t *testing.T) {
	t.Parallel()
	d := oddAs(t)
	inputs := words(d.Alphabet(), 6)

	done := make(chan error, 8)
	for g := 0; g < 8; g++ {
		go func() {
			for _, w := range inputs {
				if _, err := d.Accepts(w); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for g := 0; g < 8; g++ {
		require.NoError(t, <-done)
	}
}
