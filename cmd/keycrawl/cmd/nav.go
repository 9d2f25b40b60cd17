package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/keycrawler/breadcrumbs"
	"github.com/katalvlaran/keycrawler/content"
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/crawler"
	"github.com/katalvlaran/keycrawler/links"
	"github.com/katalvlaran/keycrawler/navigation"
)

// navResult is the page reached by a navigation step.
type navResult struct {
	Path        string                   `json:"path" yaml:"path"`
	Found       bool                     `json:"found" yaml:"found"`
	Breadcrumbs []links.HyperlinkSummary `json:"breadcrumbs" yaml:"breadcrumbs"`
}

func newNavCmd(a *app) *cobra.Command {
	var direction string
	navCmd := &cobra.Command{
		Use:   "nav FILE [POSITION]",
		Short: "step to the next or previous page in reading order",
		Long: `Moves from the page at POSITION, a dotted list of child positions such
as "1.0", to the next or previous page in reading order and prints the
breadcrumbs leading there. Without POSITION, --dir next starts at the
first page and --dir prev at the last one.`,
		Example: `keycrawl nav guide.json 1.0
keycrawl nav guide.json 2 --dir prev`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if direction != "next" && direction != "prev" {
				return errors.Errorf("unknown direction %q, want next or prev", direction)
			}
			docs, err := a.load(cmd, args[:1], false)
			if err != nil {
				return err
			}
			pages := pageList(docs[0].Value)
			nav := navigation.NewLinearTreeNavigator(content.NewIndexedContentTreeCrawler(crawler.WithLogger(a.log)))

			var route *core.Route
			switch {
			case len(args) == 1 && direction == "next":
				route = nav.FirstNodeRoute(pages)
			case len(args) == 1:
				route = nav.LastNodeRoute(pages)
			case direction == "next":
				route = nav.NextNodeRoute(nav.Crawler().CreateRouteFrom(pages, links.ParsePathText(args[1])))
			default:
				route = nav.PreviousNodeRoute(nav.Crawler().CreateRouteFrom(pages, links.ParsePathText(args[1])))
			}

			crumbs := breadcrumbs.NewFactory(links.NewPageLinkFactory(links.PathHref, links.SectionTitle, ""))
			result := navResult{
				Path:        links.PathText(route.Path),
				Found:       route.Target != nil && route.Len() > 0,
				Breadcrumbs: crumbs.RouteLinks(route),
			}
			if result.Breadcrumbs == nil {
				result.Breadcrumbs = []links.HyperlinkSummary{}
			}

			return a.write(cmd, result)
		},
	}
	navCmd.Flags().StringVar(&direction, "dir", "next", "direction: next or prev")

	return navCmd
}
