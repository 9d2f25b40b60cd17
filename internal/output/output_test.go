package output_test

import (
	"bytes"
	"strings"
	"testing"

	goyaml "github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/katalvlaran/keycrawler/internal/output"
)

func TestWrite_JSONKeepsOrder(t *testing.T) {
	v := goyaml.MapSlice{{Key: "z", Value: 1}, {Key: "a", Value: []any{goyaml.MapSlice{{Key: "k", Value: "v"}}}}}
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, "json", v))
	assert.JSONEq(t, `{"z": 1, "a": [{"k": "v"}]}`, buf.String())
	assert.Less(t, strings.Index(buf.String(), `"z"`), strings.Index(buf.String(), `"a"`))
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, "yaml", goyaml.MapSlice{{Key: "b", Value: 2}, {Key: "a", Value: 1}}))
	assert.Equal(t, "b: 2\na: 1\n", buf.String())
}

func TestWrite_Unsupported(t *testing.T) {
	assert.Error(t, output.Write(&bytes.Buffer{}, "csv", 1))
}

func TestNormalize_Nodes(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<p>hi</p>"))
	require.NoError(t, err)
	body := doc.FirstChild.LastChild
	assert.Equal(t, "<body><p>hi</p></body>", output.Normalize(body, true))

	var node yamlv3.Node
	require.NoError(t, yamlv3.Unmarshal([]byte("a: 1\n"), &node))
	assert.Equal(t, map[string]any{"a": 1}, output.Normalize(&node, true))
}

type rows [][]string

func (r rows) TableHeader() []string  { return []string{"path", "value"} }
func (r rows) TableRows() [][]string { return r }

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, "table", rows{{"0.title", "Intro"}, {"1.title", "Main"}}))

	out := buf.String()
	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "0.title")
	assert.Less(t, strings.Index(out, "Intro"), strings.Index(out, "Main"))

	assert.Error(t, output.Write(&buf, "table", map[string]any{"a": 1}))
}

func TestCell(t *testing.T) {
	assert.Equal(t, "", output.Cell(nil))
	assert.Equal(t, "text", output.Cell("text"))
	assert.Equal(t, "true", output.Cell(true))
	assert.Equal(t, "2.5", output.Cell(2.5))
	assert.Equal(t, `{"b":1,"a":[2]}`, output.Cell(goyaml.MapSlice{{Key: "b", Value: 1}, {Key: "a", Value: []any{2}}}))
}
