package app

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/specialistvlad/dfarun/internal/dfa"
	"github.com/specialistvlad/dfarun/internal/hcl"
	"github.com/specialistvlad/dfarun/internal/loader"
	"github.com/specialistvlad/dfarun/internal/testutil"
	"github.com/specialistvlad/dfarun/internal/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oddAs = `
description: odd number of a's
regex: "b*a(b*ab*a)*b*"
states: [1, 2]
alphabet: [a, b]
start_state: 1
final_states: [2]
transitions:
  1: {a: 2, b: 1}
  2: {a: 1, b: 2}
accept_strings: [a, abbaa]
reject_strings: ["", abba]
`

const missingFinal = `
states: [1, 2]
alphabet: [a, b]
start_state: 1
final_states: [5]
transitions:
  1: {a: 2, b: 1}
  2: {a: 1, b: 2}
`

const wrongExamples = `
states       = [1, 2]
alphabet     = ["a", "b"]
start_state  = 1
final_states = [2]
transitions = {
  "1" = { a = 2, b = 1 }
  "2" = { a = 1, b = 2 }
}
accept_strings = ["aa"]
`

func newLoader() *loader.Loader {
	return loader.New(
		loader.Format{Name: "hcl", Extensions: hcl.Extensions, Loader: hcl.NewLoader()},
		loader.Format{Name: "yaml", Extensions: yaml.Extensions, Loader: yaml.NewLoader()},
	)
}

// setup runs an App over files and returns its report output, log output and
// error.
func setup(t *testing.T, files map[string]string, cfg Config) (string, string, error) {
	t.Helper()
	dir := testutil.WriteFiles(t, files)
	cfg.DFAPath = filepath.Join(dir, cfg.DFAPath)
	if cfg.Workers == 0 {
		cfg.Workers = 2
	}
	cfg.LogLevel = "debug"

	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	err = NewApp(out, logs, validated, newLoader()).Run(context.Background())
	return out.String(), logs.String(), err
}

func TestRun_SimulateAccepts(t *testing.T) {
	t.Parallel()

	// --- Act ---
	out, logs, err := setup(t, map[string]string{"odd.yaml": oddAs}, Config{DFAPath: "odd.yaml", Input: "abbaa"})

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded DFA: odd number of a's\n")
	assert.Contains(t, out, "Path: 1 -> 2 -> 2 -> 2 -> 1 -> 2\n")
	assert.Contains(t, out, "DFA accepts string 'abbaa'\n")
	assert.Contains(t, logs, "Simulation finished.")
}

func TestRun_SimulateRejectsWithoutError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	out, _, err := setup(t, map[string]string{"odd.yaml": oddAs}, Config{DFAPath: "odd.yaml", Input: "ababaQ"})

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out, "Stopped on symbol 'Q' outside the alphabet\n")
	assert.Contains(t, out, "DFA rejects string 'ababaQ'\n")
}

func TestRun_SimulateSeparatorAndJSON(t *testing.T) {
	t.Parallel()

	// --- Act ---
	out, _, err := setup(t, map[string]string{"odd.yaml": oddAs},
		Config{DFAPath: "odd.yaml", Input: "a,b,b", Separator: ",", Output: "json"})

	// --- Assert ---
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, true, got["accepted"])
	assert.Equal(t, float64(3), got["consumed"])
	assert.Equal(t, "a,b,b", got["input"])
}

func TestRun_SimulateInvalidDFA(t *testing.T) {
	t.Parallel()

	// --- Act ---
	out, _, err := setup(t, map[string]string{"bad.yaml": missingFinal}, Config{DFAPath: "bad.yaml", Input: "a"})

	// --- Assert ---
	require.Error(t, err)
	assert.ErrorIs(t, err, dfa.ErrInvalidDFA)
	assert.Contains(t, out, "Invalid DFA ")
	assert.Contains(t, out, "accepting states should be in the list of states: {'5'}")
	assert.NotContains(t, out, "DFA rejects")
}

func TestRun_SimulateLoadError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	out, _, err := setup(t, map[string]string{"bad.yaml": "states: [1"}, Config{DFAPath: "bad.yaml", Output: "json"})

	// --- Assert ---
	require.Error(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got["error"])
	assert.NotContains(t, got, "kind")
}

func TestRun_CheckDirectory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"a/odd.yaml":   oddAs,
		"b/wrong.hcl":  wrongExamples,
		"c/bad.yaml":   missingFinal,
		"d/notes.txt":  "ignored",
		"e/broken.yml": "states: [1",
	}

	// --- Act ---
	out, logs, err := setup(t, files, Config{DFAPath: ".", Check: true, Generate: 50})

	// --- Assert ---
	require.ErrorIs(t, err, ErrChecksFailed)
	assert.Regexp(t, `PASS .*odd\.yaml`, out)
	assert.Regexp(t, `FAIL .*wrong\.hcl \(1 strings, 0 generated\)\n  - rejected provided string "aa"`, out)
	assert.Regexp(t, `FAIL .*bad\.yaml .*\n  - error: .*accepting states should be in the list of states`, out)
	assert.Regexp(t, `FAIL .*broken\.yml`, out)
	assert.NotContains(t, out, "notes.txt")
	assert.Contains(t, out, "4 documents, 3 failed\n")
	assert.Contains(t, logs, "Failed to load DFA document.")
}

func TestRun_CheckPasses(t *testing.T) {
	t.Parallel()

	// --- Act ---
	out, _, err := setup(t, map[string]string{"odd.yaml": oddAs}, Config{DFAPath: "odd.yaml", Check: true})

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out, "1 documents, 0 failed\n")
}

func TestRun_Graph(t *testing.T) {
	t.Parallel()

	// --- Act ---
	dot, _, err := setup(t, map[string]string{"odd.yaml": oddAs}, Config{DFAPath: "odd.yaml", Graph: GraphDOT})
	require.NoError(t, err)
	mermaid, _, err := setup(t, map[string]string{"odd.yaml": oddAs}, Config{DFAPath: "odd.yaml", Graph: GraphMermaid})
	require.NoError(t, err)

	// --- Assert ---
	assert.Contains(t, dot, `"2" [label="2", shape=doublecircle];`)
	assert.Contains(t, mermaid, "stateDiagram-v2\n")
}

func TestRun_GraphInvalidStillRenders(t *testing.T) {
	t.Parallel()

	// --- Act ---
	out, logs, err := setup(t, map[string]string{"bad.yaml": missingFinal}, Config{DFAPath: "bad.yaml", Graph: GraphDOT})

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out, "digraph {")
	assert.Contains(t, logs, "Rendering an invalid DFA.")
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "missing path", cfg: Config{Workers: 1}, wantErr: "DFAPath is a required"},
		{name: "check and graph", cfg: Config{DFAPath: "x", Workers: 1, Check: true, Graph: "dot"}, wantErr: "cannot be combined"},
		{name: "bad graph", cfg: Config{DFAPath: "x", Workers: 1, Graph: "png"}, wantErr: `invalid graph format "png"`},
		{name: "bad output", cfg: Config{DFAPath: "x", Workers: 1, Output: "xml"}, wantErr: `invalid output format "xml"`},
		{name: "no workers", cfg: Config{DFAPath: "x"}, wantErr: "workers must be at least 1"},
		{name: "negative repeat", cfg: Config{DFAPath: "x", Workers: 1, MaxRepeat: -1}, wantErr: "max-repeat cannot be negative"},
		{name: "valid", cfg: Config{DFAPath: "x", Workers: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "text", cfg.Output)
		})
	}
}
