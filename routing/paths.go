package routing

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keycrawler/links"
	"github.com/katalvlaran/keycrawler/search"
	"github.com/katalvlaran/keycrawler/vertex"
)

// Value names used by PageContentPathParser when reading keyed URL values.
const (
	PagePathValue    = "pagePath"
	ContentPathValue = "contentPath"
)

// KeyedPropertySearchParser converts between plain text and a property
// match on Key.
type KeyedPropertySearchParser struct {
	Key string
}

// Parse returns a match of Key against source.
func (p KeyedPropertySearchParser) Parse(source string) search.KeyValuePair {
	return search.KeyValuePair{Key: p.Key, Value: source}
}

// Stringify returns the matched value as text.
func (p KeyedPropertySearchParser) Stringify(pair search.KeyValuePair) string {
	return fmt.Sprint(pair.Value)
}

// NamedPagePathParser reads page paths such as "~main.~terms.0.2": the
// first "~" segment names a page id, later ones page local names, and
// numbers are child positions.
type NamedPagePathParser struct{}

const namePrefix = "~"

var (
	idParser        = KeyedPropertySearchParser{Key: "id"}
	localNameParser = KeyedPropertySearchParser{Key: "localName"}
)

// Parse converts source to search terms. Empty text has no terms.
func (NamedPagePathParser) Parse(source string) []search.Term {
	if source == "" {
		return []search.Term{}
	}
	segments := strings.Split(source, ".")
	terms := make([]search.Term, 0, len(segments))
	for i, segment := range segments {
		name, named := strings.CutPrefix(segment, namePrefix)
		switch {
		case named && i == 0:
			terms = append(terms, idParser.Parse(name))
		case named:
			terms = append(terms, localNameParser.Parse(name))
		default:
			terms = append(terms, links.NumericTextParser{}.Parse(segment))
		}
	}

	return terms
}

// Stringify converts terms back to text. Property matches other than id
// and localName cannot be written and are dropped.
func (NamedPagePathParser) Stringify(terms []search.Term) string {
	segments := make([]string, 0, len(terms))
	for _, term := range terms {
		if pair, ok := search.AsKeyValuePair(term); ok {
			if pair.Key == "id" || pair.Key == "localName" {
				segments = append(segments, namePrefix+fmt.Sprint(pair.Value))
			}
			continue
		}
		segments = append(segments, fmt.Sprint(term))
	}

	return strings.Join(segments, ".")
}

// PageContentPathParser reads paths to a page and into its content, such
// as "~main.~terms.0/body.text". Child positions expand to "children"
// steps and the content part follows a "content" step:
//
//	[{id main} {localName terms} children 0 content body text]
//
// With Values set, the page and content parts are read from the values it
// extracts, named PagePathValue and ContentPathValue, instead of being
// joined by "/".
type PageContentPathParser struct {
	Values links.TextParser[map[string]string]
}

// Parse converts source to search terms.
func (p PageContentPathParser) Parse(source string) []search.Term {
	var pagePath, contentPath string
	if p.Values != nil {
		values := p.Values.Parse(source)
		pagePath, contentPath = values[PagePathValue], values[ContentPathValue]
	} else {
		pagePath, contentPath, _ = strings.Cut(source, "/")
	}

	var terms []search.Term
	for _, term := range (NamedPagePathParser{}).Parse(pagePath) {
		if _, isPair := search.AsKeyValuePair(term); !isPair && len(terms) > 0 {
			terms = append(terms, "children")
		}
		terms = append(terms, term)
	}
	if contentPath != "" {
		terms = append(terms, "content")
		for _, key := range links.ParsePathText(contentPath) {
			terms = append(terms, key)
		}
	}

	return terms
}

// Stringify converts search terms back to text.
func (p PageContentPathParser) Stringify(terms []search.Term) string {
	var page []search.Term
	var contentPath []vertex.Key
	inContent := false
	for _, term := range terms {
		switch {
		case inContent:
			contentPath = append(contentPath, term)
		case term == "content":
			inContent = true
		case term == "children":
		default:
			page = append(page, term)
		}
	}
	pagePath := (NamedPagePathParser{}).Stringify(page)
	contentText := links.PathText(contentPath)

	if p.Values != nil {
		values := map[string]string{PagePathValue: pagePath}
		if contentText != "" {
			values[ContentPathValue] = contentText
		}
		return p.Values.Stringify(values)
	}
	if contentText == "" {
		return pagePath
	}

	return pagePath + "/" + contentText
}
