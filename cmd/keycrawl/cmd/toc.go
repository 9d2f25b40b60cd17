package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/keycrawler/crawler"
	"github.com/katalvlaran/keycrawler/links"
	"github.com/katalvlaran/keycrawler/toc"
)

func newTOCCmd(a *app) *cobra.Command {
	var untitled string
	tocCmd := &cobra.Command{
		Use:   "toc FILE",
		Short: "print the table of contents of a page tree",
		Long: `Prints one entry per page, nested like the pages. FILE holds a list of
pages or a document with a "pages" list. Entries link to dotted page
positions; untitled pages are numbered.`,
		Example: `keycrawl toc guide.yaml -o yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.load(cmd, args, false)
			if err != nil {
				return err
			}
			titleFor := links.SectionTitle
			if untitled == "key" {
				titleFor = nil
			}
			factory := toc.NewFactory(
				links.NewPageLinkFactory(links.PathHref, titleFor, ""),
				crawler.WithLogger(a.log),
			)

			return a.write(cmd, factory.MapContentNodes(pageList(docs[0].Value)))
		},
	}
	tocCmd.Flags().StringVar(&untitled, "untitled", "section", `text for untitled pages: "section" numbers them, "key" uses their position`)

	return tocCmd
}
