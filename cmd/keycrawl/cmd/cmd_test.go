package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keycrawler/cmd/keycrawl/cmd"
	"github.com/katalvlaran/keycrawler/internal/config"
)

const pagesJSON = `[
  {"title": "Intro", "content": "hi"},
  {"title": "Main", "content": "", "children": [
    {"content": "A"},
    {"title": "Usage", "content": "B"}
  ]}
]`

// writePages stores the page fixture in a temp file and returns its path.
func writePages(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pages.json")
	require.NoError(t, os.WriteFile(path, []byte(pagesJSON), 0o600))

	return path
}

// run executes keycrawl with args and decodes its JSON output into out.
func run(t *testing.T, out any, args ...string) {
	t.Helper()
	var stdout bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.Execute())
	require.NoError(t, json.Unmarshal(stdout.Bytes(), out), stdout.String())
}

func TestTraverse(t *testing.T) {
	var got []struct {
		File   string `json:"file"`
		Visits []struct {
			Path  string `json:"path"`
			Value any    `json:"value"`
		} `json:"visits"`
	}
	run(t, &got, "traverse", writePages(t))

	require.Len(t, got, 1)
	values := make(map[string]any)
	for _, v := range got[0].Visits {
		values[v.Path] = v.Value
	}
	assert.Equal(t, "B", values["1.children.1.content"])
	assert.Equal(t, "Intro", values["0.title"])
}

func TestTraverse_IndexedPages(t *testing.T) {
	var got []struct {
		Visits []struct {
			Path string `json:"path"`
		} `json:"visits"`
	}
	run(t, &got, "traverse", "--pages", "indexed", writePages(t))

	require.Len(t, got, 1)
	var paths []string
	for _, v := range got[0].Visits {
		paths = append(paths, v.Path)
	}
	assert.Equal(t, []string{"", "0", "1", "1.0", "1.1"}, paths)
}

func TestSearch(t *testing.T) {
	var got []struct {
		Path  string `json:"path"`
		Value any    `json:"value"`
	}
	run(t, &got, "search", "-t", "title=Usage", "-t", "content", writePages(t))

	require.Len(t, got, 1)
	assert.Equal(t, "1.children.1.content", got[0].Path)
	assert.Equal(t, "B", got[0].Value)
}

func TestSearch_RequiresTerm(t *testing.T) {
	root := cmd.NewRootCmd()
	root.SetArgs([]string{"search", writePages(t)})
	root.SetOut(&bytes.Buffer{})

	assert.Error(t, root.Execute())
}

func TestRoute(t *testing.T) {
	var got struct {
		Path  string `json:"path"`
		Found bool   `json:"found"`
		Value any    `json:"value"`
	}
	run(t, &got, "route", writePages(t), "1.children.0.content")

	assert.True(t, got.Found)
	assert.Equal(t, "A", got.Value)

	run(t, &got, "route", writePages(t), "1.missing.0")
	assert.False(t, got.Found)
	assert.Equal(t, "1.missing", got.Path)
}

func TestTOC(t *testing.T) {
	type link struct {
		Text string `json:"text"`
		Href string `json:"href"`
	}
	type entry struct {
		Link     link    `json:"link"`
		Children []entry `json:"children"`
	}
	var got []entry
	run(t, &got, "toc", writePages(t))

	want := []entry{
		{Link: link{Text: "Intro", Href: "0"}, Children: []entry{}},
		{Link: link{Text: "Main", Href: "1"}, Children: []entry{
			{Link: link{Text: "Section 1", Href: "1.0"}, Children: []entry{}},
			{Link: link{Text: "Usage", Href: "1.1"}, Children: []entry{}},
		}},
	}
	assert.Equal(t, want, got)
}

func TestNav(t *testing.T) {
	type crumb struct {
		Text string `json:"text"`
		Href string `json:"href"`
	}
	var got struct {
		Path        string  `json:"path"`
		Found       bool    `json:"found"`
		Breadcrumbs []crumb `json:"breadcrumbs"`
	}
	file := writePages(t)

	run(t, &got, "nav", file, "1.0")
	assert.True(t, got.Found)
	assert.Equal(t, "1.1", got.Path)
	assert.Equal(t, []crumb{{"Main", "1"}, {"Usage", "1.1"}}, got.Breadcrumbs)

	run(t, &got, "nav", file, "1", "--dir", "prev")
	assert.Equal(t, "0", got.Path)

	run(t, &got, "nav", file)
	assert.Equal(t, "0", got.Path)

	run(t, &got, "nav", "--dir", "prev", file)
	assert.Equal(t, "1.1", got.Path)
}

func TestNav_UnknownDirection(t *testing.T) {
	root := cmd.NewRootCmd()
	root.SetArgs([]string{"nav", "--dir", "up", writePages(t)})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown direction")
}

func TestInvalidConfig(t *testing.T) {
	root := cmd.NewRootCmd()
	root.SetArgs([]string{"traverse", "--strategy", "sideways", writePages(t)})
	root.SetOut(&bytes.Buffer{})

	assert.ErrorIs(t, root.Execute(), config.ErrInvalidConfig)
}

func TestStdin(t *testing.T) {
	var stdout bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetArgs([]string{"route", "-", "0.title"})
	root.SetIn(strings.NewReader(pagesJSON))
	root.SetOut(&stdout)
	require.NoError(t, root.Execute())

	assert.Contains(t, stdout.String(), `"Intro"`)
}

func TestYAMLOutput(t *testing.T) {
	var stdout bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetArgs([]string{"route", "-o", "yaml", writePages(t), "0.title"})
	root.SetOut(&stdout)
	require.NoError(t, root.Execute())

	assert.Contains(t, stdout.String(), "value: Intro")
}

func TestTableOutput(t *testing.T) {
	var stdout bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetArgs([]string{"search", "-o", "table", "-t", "title=Usage", "-t", "content", writePages(t)})
	root.SetOut(&stdout)
	require.NoError(t, root.Execute())

	assert.Contains(t, stdout.String(), "1.children.1.content")
	assert.Contains(t, stdout.String(), "B")
}

func TestTraverse_MaxDepthPrunesForBothStrategies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": {"b": 1}, "c": 2}`), 0o600))

	for _, strategy := range []string{"dfs", "bfs"} {
		t.Run(strategy, func(t *testing.T) {
			var got []struct {
				Visits []struct {
					Path string `json:"path"`
				} `json:"visits"`
				Error string `json:"error"`
			}
			run(t, &got, "traverse", "--strategy", strategy, "--max-depth", "1", path)

			require.Len(t, got, 1)
			var paths []string
			for _, v := range got[0].Visits {
				paths = append(paths, v.Path)
			}
			assert.Equal(t, []string{"", "a", "c"}, paths)
			assert.Empty(t, got[0].Error)
		})
	}
}
