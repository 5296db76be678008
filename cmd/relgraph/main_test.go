// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relgraph/config"
	"github.com/katalvlaran/relgraph/core"
)

const people = `
        Daffy   Ernie   Ivan    Jason
Daffy   -3      -3      -4      4
Ernie   3       -1      0       6
Ivan    0       -2      2       -5
Jason   1       6       3       -5
`

func TestRun_RenderFromStdin(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(),
		[]string{"render", "-out", out, "-format", "dot", "-log-format", "json", "-log-level", "info"},
		strings.NewReader(people), &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, filepath.Join(out, "graph_000.dot")+"\t#000 - triangle", lines[0])
	assert.Equal(t, filepath.Join(out, "graph_001.dot")+"\t#001 - auto", lines[1])

	b, err := os.ReadFile(filepath.Join(out, "graph_000.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `pos="0,0!"`)
	assert.Contains(t, stderr.String(), `"message":"variation written"`)
}

func TestRun_RenderFileJSONWithEntities(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "table.txt")
	require.NoError(t, os.WriteFile(input, []byte(people), 0o600))
	out := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(),
		[]string{"render", "-out", out, "-format", "json", "-entities", "Ernie,Jason", input},
		nil, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	b, err := os.ReadFile(filepath.Join(out, "graph_000.json"))
	require.NoError(t, err)
	var d core.Description
	require.NoError(t, json.Unmarshal(b, &d))
	require.Len(t, d.Vertices, 2)
	assert.Equal(t, "Ernie", d.Vertices[0].ID)
	assert.Equal(t, "Jason", d.Vertices[1].ID)
	assert.Equal(t, "#000 - triangle", d.Title)
}

func TestRun_RenderVariationsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "table.txt")
	require.NoError(t, os.WriteFile(input, []byte(people), 0o600))
	presets := filepath.Join(dir, "presets.hcl")
	require.NoError(t, os.WriteFile(presets, []byte(`
variation "only" {
  title = "#000 - Large Triangle (r=3.0)"
  layout {
    mode   = "fixed"
    pinned = "Jason"
  }
}
`), 0o600))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(),
		[]string{"render", "-out", dir, "-variations", presets, input},
		nil, &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	assert.Equal(t, filepath.Join(dir, "graph_000.dot")+"\t#000 - Large Triangle (r=3.0)\n", stdout.String())
}

func TestRun_RenderDOTAttributes(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(),
		[]string{"render", "-out", out, "-node-attr", "shape=box,fillcolor=khaki", "-max-width", "800"},
		strings.NewReader(people), &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	b, err := os.ReadFile(filepath.Join(out, "graph_001.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `shape="box"`)
	assert.Contains(t, string(b), `fillcolor="khaki"`)
	assert.NotContains(t, string(b), `fillcolor="lightblue"`)

	e, _, err := setup("render", []string{"-max-width", "800"}, &stderr)
	require.NoError(t, err)
	require.NotNil(t, e.runner.Captioner)
	assert.Equal(t, 800, e.runner.Captioner.MaxWidth)
}

func TestRun_Score(t *testing.T) {
	t.Parallel()

	predictions := strings.Join([]string{
		"domain\ttext\tcreated\tauthor\tdue\tivan\tjason\tdaffy\ternie\tresult",
		"tech\tA ships\t\t\t2022-01-01\t90\t50\t50\t10\tt",
		"\tB happens\t\t\t2022-01-01\t20\t40\t80\t60\tf",
		"\tC later\t\t\t2023-01-01\t20\t40\t80\t60\tf",
	}, "\n")
	out := t.TempDir()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(),
		[]string{"score", "-out", out, "-due", "2022-01-01", "-methods", "straight,diff"},
		strings.NewReader(predictions), &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	assert.Equal(t, strings.Join([]string{
		"brier\tivan\t0.0500\t2",
		"brier\tjason\t0.4100\t2",
		"brier\tdaffy\t0.8900\t2",
		"brier\ternie\t1.1700\t2",
		filepath.Join(out, "graph_000.dot") + "\t#000 - straight",
		filepath.Join(out, "graph_001.dot") + "\t#001 - diff",
	}, "\n")+"\n", stdout.String())

	b, err := os.ReadFile(filepath.Join(out, "graph_000.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `label="ivan\n0.050"`)
	assert.Contains(t, string(b), `headlabel="+6"`)
	assert.Contains(t, string(b), `pos="0,0!"`, "last user pinned at the centre")

	err = run(context.Background(), []string{"score", "-methods", "log-odds"},
		strings.NewReader(predictions), &stdout, &stderr)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cases := []struct {
		name  string
		args  []string
		stdin string
		usage bool
	}{
		{"NoCommand", nil, "", true},
		{"UnknownCommand", []string{"draw"}, "", true},
		{"BadFlag", []string{"render", "-nope"}, "", true},
		{"WatchStdin", []string{"watch", "-"}, "", true},
		{"BadFormat", []string{"render", "-format", "gif"}, people, false},
		{"BadNodeAttr", []string{"render", "-node-attr", "shape"}, people, false},
		{"EmptyTable", []string{"render", "-out", os.TempDir()}, "\n", false},
		{"MissingFile", []string{"render", filepath.Join(os.TempDir(), "relgraph-missing.txt")}, "", false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			err := run(ctx, tc.args, strings.NewReader(tc.stdin), &stdout, &stderr)
			require.Error(t, err)
			assert.Equal(t, tc.usage, isUsage(err), err.Error())
		})
	}
}

func TestRun_VersionAndHelp(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"version"}, nil, &stdout, &stdout))
	assert.Equal(t, "relgraph version "+version+"\n", stdout.String())

	stdout.Reset()
	require.NoError(t, run(context.Background(), []string{"help"}, nil, &stdout, &stdout))
	assert.Contains(t, stdout.String(), "Usage:")

	stdout.Reset()
	require.NoError(t, run(context.Background(), []string{"render", "-h"}, nil, &stdout, &stdout))
	assert.Contains(t, stdout.String(), "-format")
}

func isUsage(err error) bool { return errors.Is(err, errUsage) }
