package content

import (
	"fmt"

	"github.com/katalvlaran/keycrawler/vertex"
)

// PageTreeNode is one page of a page tree. Content holds the page body in
// whatever shape the document uses.
type PageTreeNode struct {
	ID        string          `json:"id,omitempty" yaml:"id,omitempty"`
	Title     string          `json:"title,omitempty" yaml:"title,omitempty"`
	LocalName string          `json:"localName,omitempty" yaml:"localName,omitempty"`
	Content   any             `json:"content" yaml:"content"`
	Children  []*PageTreeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// StyleRuleDescription is a CSS-like rule: a selector and its property values.
type StyleRuleDescription struct {
	Selector string            `json:"selector" yaml:"selector"`
	Values   map[string]string `json:"values" yaml:"values"`
}

// PageTreeDocument is a titled collection of page trees.
type PageTreeDocument struct {
	ID    string                 `json:"id,omitempty" yaml:"id,omitempty"`
	Title string                 `json:"title,omitempty" yaml:"title,omitempty"`
	Style []StyleRuleDescription `json:"style,omitempty" yaml:"style,omitempty"`
	Pages []*PageTreeNode        `json:"pages" yaml:"pages"`
}

// PropertyText returns property key of an object target as text. Missing,
// nil and empty values report false, so unset struct fields read the same
// as absent map entries.
func PropertyText(target any, key string) (string, bool) {
	if !vertex.IsComposite(target) || vertex.IsList(target) {
		return "", false
	}
	value, ok := vertex.LookupProperty(target, key)
	if !ok || value == nil {
		return "", false
	}
	text := fmt.Sprint(value)

	return text, text != ""
}
