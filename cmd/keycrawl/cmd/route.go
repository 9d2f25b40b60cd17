package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/keycrawler/content"
	"github.com/katalvlaran/keycrawler/internal/output"
	"github.com/katalvlaran/keycrawler/links"
	"github.com/katalvlaran/keycrawler/routing"
	"github.com/katalvlaran/keycrawler/search"
)

var exampleForRouteCmd = `keycrawl route site.json pages.0.title
keycrawl route --named pages.json '~main.~terms.0/body.text'`

// routeResult describes where a path led.
type routeResult struct {
	Path  string `json:"path" yaml:"path"`
	Named string `json:"named,omitempty" yaml:"named,omitempty"`
	Found bool   `json:"found" yaml:"found"`
	Value any    `json:"value" yaml:"value"`
}

func (r routeResult) TableHeader() []string { return []string{"path", "found", "value"} }

func (r routeResult) TableRows() [][]string {
	return [][]string{{r.Path, output.Cell(r.Found), output.Cell(r.Value)}}
}

func newRouteCmd(a *app) *cobra.Command {
	var named bool
	routeCmd := &cobra.Command{
		Use:   "route FILE PATH",
		Short: "follow a dotted path into a document",
		Long: `Follows PATH as far as it leads and prints the value reached.

With --named the document is read as a page tree and PATH as a named
page path: "~id.~localName.2/content.path".`,
		Example: exampleForRouteCmd,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.load(cmd, args[:1], false)
			if err != nil {
				return err
			}
			doc := docs[0].Value

			if named {
				parser := routing.NewNamedPageRouteParser(nil, pageList(doc))
				parser.Resolver = content.NewPageTreeSearchResolver(search.WithLogger(a.log))
				route := parser.Parse(args[1])
				return a.write(cmd, routeResult{
					Path:  links.PathText(route.Path),
					Named: parser.Stringify(route),
					Found: route.Len() > 0,
					Value: route.Target,
				})
			}

			c, err := a.newCrawler(cmd.Context())
			if err != nil {
				return err
			}
			path := links.ParsePathText(args[1])
			route := c.CreateRouteFrom(doc, path)

			return a.write(cmd, routeResult{
				Path:  links.PathText(route.Path),
				Found: route.Len() == len(path) && route.Target != nil,
				Value: route.Target,
			})
		},
	}
	routeCmd.Flags().BoolVar(&named, "named", false, "read PATH as a named page path")

	return routeCmd
}
