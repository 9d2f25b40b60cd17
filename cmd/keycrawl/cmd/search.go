package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/keycrawler/internal/output"
	"github.com/katalvlaran/keycrawler/links"
	"github.com/katalvlaran/keycrawler/search"
	"github.com/katalvlaran/keycrawler/vertex"
)

var exampleForSearchCmd = `keycrawl search -t id=intro pages.json
keycrawl search -t id=main -t children -t 0 pages.yaml
keycrawl search -t '$..[?@.title=="Usage"]' -t content pages.json
keycrawl search --item-in children -t id=main -t -1 pages.json`

// match is one search result.
type match struct {
	File  string `json:"file" yaml:"file"`
	Path  string `json:"path" yaml:"path"`
	Value any    `json:"value" yaml:"value"`
}

type matches []match

func (m matches) TableHeader() []string { return []string{"file", "path", "value"} }

func (m matches) TableRows() [][]string {
	rows := make([][]string, 0, len(m))
	for _, r := range m {
		rows = append(rows, []string{r.File, r.Path, output.Cell(r.Value)})
	}

	return rows
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		rawTerms []string
		itemIn   []string
		shallow  bool
		pages    string
	)
	searchCmd := &cobra.Command{
		Use:   "search FILE...",
		Short: "resolve a path of search terms in each document",
		Long: `Each --term is resolved from the matches of the previous one.

  key=value   objects whose property key equals value
  $...        objects selected by a JSONPath expression
  anything    a literal key; numbers are list positions`,
		Example: exampleForSearchCmd,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rawTerms) == 0 {
				return errors.New("at least one --term is required")
			}
			terms, usesJSONPath, err := parseTerms(rawTerms)
			if err != nil {
				return err
			}
			rules, err := pageRule(pages)
			if err != nil {
				return err
			}
			// JSONPath expressions only see plain maps
			docs, err := a.load(cmd, args, usesJSONPath)
			if err != nil {
				return err
			}

			f := search.NewPropertySearchFactory(vertex.NewFactory(append(a.formatRules(), rules...)...))
			callbacks := []search.TermCallback{f.PropertySearch(shallow), f.JSONPathSearch(shallow)}
			if len(itemIn) > 0 {
				callbacks = append(callbacks, f.PropertyItemAtCallback(itemIn))
			}
			callbacks = append(callbacks, f.KeyCallback())
			resolver := search.NewResolver(callbacks, search.WithLogger(a.log))

			found := matches{}
			for _, doc := range docs {
				response := resolver.Resolve(doc.Value, terms, a.cfg.MaxResults)
				if response.State.Err != nil {
					return errors.Wrapf(response.State.Err, "search %s", doc.Path)
				}
				for _, route := range response.Results {
					found = append(found, match{
						File:  doc.Path,
						Path:  links.PathText(route.Path),
						Value: route.Target,
					})
				}
				a.log.Debug("document searched", zap.String("file", doc.Path), zap.Int("results", len(response.Results)))
			}

			return a.write(cmd, found)
		},
	}
	flags := searchCmd.Flags()
	flags.StringArrayVarP(&rawTerms, "term", "t", nil, "search term, repeatable")
	flags.StringSliceVar(&itemIn, "item-in", nil, "list properties that numeric terms index into")
	flags.BoolVar(&shallow, "shallow", false, "do not search inside matched objects")
	flags.StringVar(&pages, "pages", "", "read page trees through the content or indexed view")

	return searchCmd
}

// parseTerms converts command-line terms and reports whether any of them
// is a JSONPath expression.
func parseTerms(raw []string) ([]search.Term, bool, error) {
	terms := make([]search.Term, 0, len(raw))
	usesJSONPath := false
	for _, text := range raw {
		if strings.HasPrefix(text, "$") {
			term, err := search.ParseJSONPath(text)
			if err != nil {
				return nil, false, err
			}
			terms = append(terms, term)
			usesJSONPath = true
			continue
		}
		if key, value, ok := strings.Cut(text, "="); ok && key != "" {
			terms = append(terms, search.KeyValuePair{Key: key, Value: links.NumericTextParser{}.Parse(value)})
			continue
		}
		terms = append(terms, links.NumericTextParser{}.Parse(text))
	}

	return terms, usesJSONPath, nil
}
