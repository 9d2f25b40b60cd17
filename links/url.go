package links

import (
	"net/url"
	"strings"
)

const defaultBaseURL = "https://some.site"

// PathToken is one segment of a URL path template: a literal segment, or
// a named value with an optional placeholder used when the value is
// missing.
type PathToken struct {
	Literal     string
	Key         string
	Placeholder string
}

// QueryParam is one query parameter of a URL template: either a named
// value or a literal.
type QueryParam struct {
	Name    string
	Key     string
	Literal string
}

// URLTemplate describes where named values live in a URL. Origin is
// prepended as is; leave it empty for site-relative URLs. The fragment
// holds the value named HashKey, or the literal Hash.
type URLTemplate struct {
	Origin  string
	Path    []PathToken
	HashKey string
	Hash    string
	Query   []QueryParam
}

// KeyedURLValuesParser converts between URLs and the named values their
// template marks.
type KeyedURLValuesParser struct {
	Template URLTemplate
	// BaseURL resolves relative input URLs. Empty means a placeholder site.
	BaseURL string
}

// Parse extracts the named values of source. Path segments equal to their
// placeholder are skipped; unparsable URLs yield no values.
func (p KeyedURLValuesParser) Parse(source string) map[string]string {
	values := make(map[string]string)
	base := p.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return values
	}
	ref, err := url.Parse(source)
	if err != nil {
		return values
	}
	u := baseURL.ResolveReference(ref)

	steps := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	for i, token := range p.Template.Path {
		if i >= len(steps) {
			break
		}
		if token.Key != "" && steps[i] != token.Placeholder {
			values[token.Key] = steps[i]
		}
	}
	if p.Template.HashKey != "" && u.Fragment != "" {
		values[p.Template.HashKey] = u.Fragment
	}
	query := u.Query()
	for _, param := range p.Template.Query {
		if param.Key == "" || !query.Has(param.Name) {
			continue
		}
		values[param.Key] = query.Get(param.Name)
	}

	return values
}

// Stringify builds the URL for values. Missing path values fall back to
// their placeholder; missing query values are left out.
func (p KeyedURLValuesParser) Stringify(values map[string]string) string {
	var sb strings.Builder
	sb.WriteString(p.Template.Origin)
	for _, token := range p.Template.Path {
		segment := token.Literal
		if token.Key != "" {
			segment = token.Placeholder
			if v, ok := values[token.Key]; ok {
				segment = v
			}
		}
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(segment))
	}
	if len(p.Template.Path) == 0 {
		sb.WriteByte('/')
	}

	separator := byte('?')
	for _, param := range p.Template.Query {
		value := param.Literal
		if param.Key != "" {
			v, ok := values[param.Key]
			if !ok {
				continue
			}
			value = v
		}
		sb.WriteByte(separator)
		separator = '&'
		sb.WriteString(url.QueryEscape(param.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(value))
	}

	fragment := p.Template.Hash
	if p.Template.HashKey != "" {
		fragment = values[p.Template.HashKey]
	}
	if fragment != "" {
		sb.WriteByte('#')
		sb.WriteString((&url.URL{Fragment: fragment}).EscapedFragment())
	}

	return sb.String()
}
