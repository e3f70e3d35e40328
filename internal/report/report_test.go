package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/goccy/go-json"
	"github.com/specialistvlad/dfarun/internal/check"
	"github.com/specialistvlad/dfarun/internal/dfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary() *CheckSummary {
	return &CheckSummary{Results: []*check.Result{
		{Source: "a.yaml", Checked: 12, Generated: 2},
		{
			Source:  "b.hcl",
			Checked: 3,
			Failures: []check.Failure{
				{Input: "aa", Expected: check.ExpectAccept, Origin: check.OriginProvided},
				{Input: "ab", Expected: check.ExpectAccept, Origin: check.OriginGenerated, Err: errors.New("boom")},
			},
		},
		{Source: "c.json", Err: errors.New("c.json: missing required field \"alphabet\"")},
	}}
}

func TestFormats(t *testing.T) {
	assert.Subset(t, Formats(), []string{"json", "text"})
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := Write("xml", io.Discard, &Verdict{})

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown report format "xml"`)
}

func TestWrite_UnsupportedPayload(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"text", "json"} {
		err := Write(format, io.Discard, 42)
		require.Error(t, err, format)
		assert.Contains(t, err.Error(), "unsupported payload int")
	}
}

func TestText_Verdict(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer
	unknown := "Q"
	v := &Verdict{
		Source:  "odd_as.yaml",
		Name:    "odd number of a's",
		Input:   "ababaQ",
		Path:    []string{"1", "2", "2", "1", "1", "2"},
		Unknown: &unknown,
	}

	// --- Act ---
	require.NoError(t, Write("text", &buf, v))

	// --- Assert ---
	assert.Equal(t, "Loaded DFA: odd number of a's\n"+
		"Input string: ababaQ\n"+
		"Path: 1 -> 2 -> 2 -> 1 -> 1 -> 2\n"+
		"Stopped on symbol 'Q' outside the alphabet\n"+
		"DFA rejects string 'ababaQ'\n", buf.String())
}

func TestText_VerdictAccepted(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer

	// --- Act ---
	require.NoError(t, Write("text", &buf, &Verdict{Name: "n", Input: "a", Path: []string{"1", "2"}, Accepted: true}))

	// --- Assert ---
	assert.Contains(t, buf.String(), "DFA accepts string 'a'\n")
	assert.NotContains(t, buf.String(), "Stopped")
}

func TestText_CheckSummary(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer

	// --- Act ---
	require.NoError(t, Write("text", &buf, summary()))

	// --- Assert ---
	assert.Equal(t, "PASS a.yaml (12 strings, 2 generated)\n"+
		"FAIL b.hcl (3 strings, 0 generated)\n"+
		"  - rejected provided string \"aa\"\n"+
		"  - generated string \"ab\": boom\n"+
		"FAIL c.json (0 strings, 0 generated)\n"+
		"  - error: c.json: missing required field \"alphabet\"\n"+
		"3 documents, 2 failed\n", buf.String())
}

func TestText_Invalid(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer
	err := fmt.Errorf("x.yaml: %w", &dfa.StartStateNotInStatesError[string]{State: "9"})

	// --- Act ---
	require.NoError(t, Write("text", &buf, NewInvalid("x.yaml", err)))

	// --- Assert ---
	assert.Equal(t, "Invalid DFA x.yaml: "+err.Error()+"\n", buf.String())
}

func TestNewInvalid_Kind(t *testing.T) {
	t.Parallel()

	inv := NewInvalid("x", &dfa.StartStateNotInStatesError[string]{State: "9"})
	assert.Equal(t, dfa.KindStartStateNotInStates.String(), inv.Kind)

	inv = NewInvalid("x", errors.New("parse error"))
	assert.Empty(t, inv.Kind)
	assert.Equal(t, "parse error", inv.Error)
}

func TestJSON_CheckSummary(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer

	// --- Act ---
	require.NoError(t, Write("json", &buf, summary()))

	// --- Assert ---
	var got summaryView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got.Documents)
	assert.Equal(t, 2, got.Failed)
	require.Len(t, got.Results, 3)

	assert.True(t, got.Results[0].OK)
	assert.Empty(t, got.Results[0].Failures)

	assert.False(t, got.Results[1].OK)
	assert.Equal(t, []failureView{
		{Input: "aa", Expected: check.ExpectAccept, Origin: check.OriginProvided},
		{Input: "ab", Expected: check.ExpectAccept, Origin: check.OriginGenerated, Error: "boom"},
	}, got.Results[1].Failures)

	assert.Equal(t, `c.json: missing required field "alphabet"`, got.Results[2].Error)
}

func TestJSON_Verdict(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer
	v := &Verdict{Source: "s", Name: "n", Input: "ab", Accepted: true, Path: []string{"1", "2", "2"}, Consumed: 2}

	// --- Act ---
	require.NoError(t, Write("json", &buf, v))

	// --- Assert ---
	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, true, got["accepted"])
	assert.Equal(t, float64(2), got["consumed"])
	assert.Equal(t, []any{"1", "2", "2"}, got["path"])
	assert.NotContains(t, got, "unknown_symbol")
}
