package links

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/keycrawler/vertex"
)

// TextParser converts values to text and back.
type TextParser[T any] interface {
	Parse(source string) T
	Stringify(value T) string
}

// DelimitedPathParser splits text on a delimiter.
type DelimitedPathParser struct {
	Delimiter string
}

// Parse splits source into steps.
func (p DelimitedPathParser) Parse(source string) []string {
	return strings.Split(source, p.Delimiter)
}

// Stringify joins steps with the delimiter.
func (p DelimitedPathParser) Stringify(steps []string) string {
	return strings.Join(steps, p.Delimiter)
}

// EncodedDelimiter names the path step a delimiter stands for.
type EncodedDelimiter struct {
	Key       string
	Delimiter string
}

// DelimiterEncodedPathParser reads each delimiter as an implied step, so
// with "/" for "children" and "." for "content", "0/1.0" becomes
// [0 children 1 content 0]. Delimiters are applied in order.
type DelimiterEncodedPathParser struct {
	Delimiters []EncodedDelimiter
}

// Parse expands source into steps.
func (p DelimiterEncodedPathParser) Parse(source string) []string {
	path := []string{source}
	for _, d := range p.Delimiters {
		parsed := make([]string, 0, len(path))
		for _, step := range path {
			terms := strings.Split(step, d.Delimiter)
			parsed = append(parsed, terms[0])
			for _, term := range terms[1:] {
				parsed = append(parsed, d.Key, term)
			}
		}
		path = parsed
	}

	return path
}

// Stringify replaces implied steps, found at odd positions, with their
// delimiters.
func (p DelimiterEncodedPathParser) Stringify(steps []string) string {
	var sb strings.Builder
	for i, step := range steps {
		if i%2 == 1 {
			if d, ok := p.delimiterFor(step); ok {
				sb.WriteString(d)
				continue
			}
		}
		sb.WriteString(step)
	}

	return sb.String()
}

func (p DelimiterEncodedPathParser) delimiterFor(key string) (string, bool) {
	for _, d := range p.Delimiters {
		if d.Key == key {
			return d.Delimiter, true
		}
	}
	return "", false
}

// EnclosedTextParser extracts the text between a prefix and a suffix.
type EnclosedTextParser struct {
	Prefix string
	Suffix string
}

// Parse returns the text after the first prefix and before the following
// suffix. A missing suffix takes the rest of the text; a missing prefix
// returns source unchanged.
func (p EnclosedTextParser) Parse(source string) string {
	start := 0
	if p.Prefix != "" {
		start = strings.Index(source, p.Prefix)
		if start < 0 {
			return source
		}
	}
	text := source[start+len(p.Prefix):]
	if p.Suffix != "" {
		if end := strings.Index(text, p.Suffix); end >= 0 {
			return text[:end]
		}
	}

	return text
}

// Stringify wraps text in the prefix and suffix.
func (p EnclosedTextParser) Stringify(text string) string {
	return p.Prefix + text + p.Suffix
}

// NumericTextParser reads numeric text as numbers: ints where possible,
// finite floats otherwise. Anything else stays a string.
type NumericTextParser struct{}

// Parse converts source to an int, a float64 or leaves it a string.
func (NumericTextParser) Parse(source string) vertex.Key {
	if i, err := strconv.Atoi(source); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(source, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}

	return source
}

// Stringify prints key.
func (NumericTextParser) Stringify(key vertex.Key) string {
	return fmt.Sprint(key)
}

// PhasedPathParser converts paths in three phases: Text extracts the
// path text from its surroundings, Splitter splits it into steps and
// Step converts each step to a key. Text and Step are optional; without
// a Splitter steps are separated by ".".
type PhasedPathParser struct {
	Text     TextParser[string]
	Splitter TextParser[[]string]
	Step     TextParser[vertex.Key]
}

// DefaultPathParser reads dotted paths with numeric steps, e.g. "0.children.2".
func DefaultPathParser() *PhasedPathParser {
	return &PhasedPathParser{
		Splitter: DelimitedPathParser{Delimiter: "."},
		Step:     NumericTextParser{},
	}
}

func (p *PhasedPathParser) splitter() TextParser[[]string] {
	if p.Splitter == nil {
		return DelimitedPathParser{Delimiter: "."}
	}
	return p.Splitter
}

// Parse converts source to a path.
func (p *PhasedPathParser) Parse(source string) []vertex.Key {
	if p.Text != nil {
		source = p.Text.Parse(source)
	}
	steps := p.splitter().Parse(source)
	path := make([]vertex.Key, len(steps))
	for i, step := range steps {
		if p.Step != nil {
			path[i] = p.Step.Parse(step)
		} else {
			path[i] = step
		}
	}

	return path
}

// Stringify converts path to text.
func (p *PhasedPathParser) Stringify(path []vertex.Key) string {
	steps := make([]string, len(path))
	for i, key := range path {
		if p.Step != nil {
			steps[i] = p.Step.Stringify(key)
		} else {
			steps[i] = fmt.Sprint(key)
		}
	}
	text := p.splitter().Stringify(steps)
	if p.Text != nil {
		text = p.Text.Stringify(text)
	}

	return text
}

// PathText renders path with DefaultPathParser.
func PathText(path []vertex.Key) string {
	return DefaultPathParser().Stringify(path)
}

// ParsePathText reads text written by PathText. Empty text is the empty
// path.
func ParsePathText(text string) []vertex.Key {
	if text == "" {
		return []vertex.Key{}
	}
	return DefaultPathParser().Parse(text)
}

// KeyedSegmentsParser names the segments of delimited text.
type KeyedSegmentsParser struct {
	Keys      []string
	Delimiter string
}

func (p KeyedSegmentsParser) delimiter() string {
	if p.Delimiter == "" {
		return "."
	}
	return p.Delimiter
}

// Parse maps each key to its segment. Keys past the last segment are
// left out.
func (p KeyedSegmentsParser) Parse(source string) map[string]string {
	values := make(map[string]string, len(p.Keys))
	steps := strings.Split(source, p.delimiter())
	for i, key := range p.Keys {
		if i >= len(steps) {
			break
		}
		values[key] = steps[i]
	}

	return values
}

// Stringify joins the values of all keys, leaving missing ones empty.
func (p KeyedSegmentsParser) Stringify(values map[string]string) string {
	steps := make([]string, len(p.Keys))
	for i, key := range p.Keys {
		steps[i] = values[key]
	}

	return strings.Join(steps, p.delimiter())
}
