package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/internal/output"
	"github.com/katalvlaran/keycrawler/links"
	"github.com/katalvlaran/keycrawler/vertex"
)

var exampleForTraverseCmd = `keycrawl traverse site.json
keycrawl traverse --strategy bfs --max-depth 2 -o yaml site.yaml
keycrawl traverse --pages indexed pages.json
cat page.html | keycrawl traverse -f html -`

// visit is one reached position.
type visit struct {
	Path  string `json:"path" yaml:"path"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// traversal lists the positions reached in one document.
type traversal struct {
	File   string  `json:"file" yaml:"file"`
	Visits []visit `json:"visits" yaml:"visits"`
	Error  string  `json:"error,omitempty" yaml:"error,omitempty"`
}

type traversals []traversal

func (t traversals) TableHeader() []string { return []string{"file", "path", "value"} }

func (t traversals) TableRows() [][]string {
	var rows [][]string
	for _, doc := range t {
		for _, v := range doc.Visits {
			rows = append(rows, []string{doc.File, v.Path, output.Cell(v.Value)})
		}
	}

	return rows
}

func newTraverseCmd(a *app) *cobra.Command {
	var pages string
	traverseCmd := &cobra.Command{
		Use:     "traverse FILE...",
		Short:   "list every position of each document in traversal order",
		Example: exampleForTraverseCmd,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := pageRule(pages)
			if err != nil {
				return err
			}
			c, err := a.newCrawler(cmd.Context(), rules...)
			if err != nil {
				return err
			}
			docs, err := a.load(cmd, args, false)
			if err != nil {
				return err
			}

			results := make(traversals, 0, len(docs))
			for _, doc := range docs {
				t := traversal{File: doc.Path, Visits: []visit{}}
				state := c.Traverse(doc.Value, func(state *core.State) {
					v := visit{Path: links.PathText(state.Route.Path)}
					if !vertex.IsComposite(state.Route.Target) {
						v.Value = state.Route.Target
					}
					t.Visits = append(t.Visits, v)
				})
				if state.Err != nil {
					a.log.Warn("traversal stopped early", zap.String("file", doc.Path), zap.Error(state.Err))
					t.Error = state.Err.Error()
				}
				results = append(results, t)
			}

			return a.write(cmd, results)
		},
	}
	traverseCmd.Flags().StringVar(&pages, "pages", "", "read page trees through the content or indexed view")

	return traverseCmd
}
