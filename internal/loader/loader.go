// Package loader decodes the documents keycrawl operates on.
package loader

import (
	"bytes"
	"io"
	"os"

	goyaml "github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	yamlv3 "gopkg.in/yaml.v3"
)

// Stdin is the path that reads standard input.
const Stdin = "-"

// Document is one decoded input.
type Document struct {
	Path  string
	Value any
}

// Loader decodes inputs of one format.
type Loader struct {
	// Format is "json", "yaml", "yaml-node" or "html".
	Format string
	// Plain decodes JSON and YAML objects into map[string]any instead of
	// key-ordered goyaml.MapSlice values.
	Plain bool
	// Stdin replaces os.Stdin when set.
	Stdin io.Reader
}

// LoadAll decodes every path. All failures are reported together; the
// documents that did decode are returned alongside.
func (l Loader) LoadAll(paths []string) ([]Document, error) {
	var docs []Document
	var result *multierror.Error
	for _, path := range paths {
		value, err := l.Load(path)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		docs = append(docs, Document{Path: path, Value: value})
	}

	return docs, result.ErrorOrNil()
}

// Load decodes the file at path.
func (l Loader) Load(path string) (any, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	value, err := l.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s as %s", path, l.Format)
	}

	return value, nil
}

func (l Loader) read(path string) ([]byte, error) {
	if path != Stdin {
		return os.ReadFile(path)
	}
	in := l.Stdin
	if in == nil {
		in = os.Stdin
	}

	return io.ReadAll(in)
}

// Decode converts data according to the loader format.
func (l Loader) Decode(data []byte) (any, error) {
	switch l.Format {
	case "json", "yaml", "":
		var value any
		var opts []goyaml.DecodeOption
		if !l.Plain {
			opts = append(opts, goyaml.UseOrderedMap())
		}
		if err := goyaml.UnmarshalWithOptions(data, &value, opts...); err != nil {
			return nil, err
		}
		return value, nil
	case "yaml-node":
		var node yamlv3.Node
		if err := yamlv3.Unmarshal(data, &node); err != nil {
			return nil, err
		}
		return &node, nil
	case "html":
		return html.Parse(bytes.NewReader(data))
	default:
		return nil, errors.Errorf("unsupported format %q", l.Format)
	}
}
