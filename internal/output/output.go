// Package output prints command results as JSON, YAML or text tables.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	goyaml "github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	yamlv3 "gopkg.in/yaml.v3"
)

// Write encodes v to w in format: "json", "yaml", or "table" for values
// implementing Tabular.
func Write(w io.Writer, format string, v any) error {
	switch format {
	case "table":
		t, ok := v.(Tabular)
		if !ok {
			return errors.Errorf("output table is not available for %T", v)
		}
		writeTable(w, t)
		return nil
	case "yaml":
		data, err := goyaml.Marshal(Normalize(v, false))
		if err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		_, err = w.Write(data)
		return err
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(Normalize(v, true)), "encode json")
	default:
		return errors.Errorf("unsupported output %q", format)
	}
}

// Normalize turns decoded documents into plain encodable values: HTML
// nodes become their markup, YAML nodes their decoded content. With
// forJSON set, ordered mappings become JSON objects keeping their order.
func Normalize(v any, forJSON bool) any {
	switch t := v.(type) {
	case goyaml.MapSlice:
		items := make(goyaml.MapSlice, len(t))
		for i, item := range t {
			items[i] = goyaml.MapItem{Key: item.Key, Value: Normalize(item.Value, forJSON)}
		}
		if forJSON {
			return orderedObject(items)
		}
		return items
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = Normalize(item, forJSON)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Normalize(item, forJSON)
		}
		return out
	case *html.Node:
		return renderHTML(t)
	case *yamlv3.Node:
		var decoded any
		if err := t.Decode(&decoded); err != nil {
			return t.Value
		}
		return Normalize(decoded, forJSON)
	default:
		return v
	}
}

func renderHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return n.Data
	}

	return sb.String()
}

// orderedObject is a mapping that keeps its key order in JSON.
type orderedObject goyaml.MapSlice

// MarshalJSON writes the items as one JSON object.
func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fmt.Sprint(item.Key))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(item.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
