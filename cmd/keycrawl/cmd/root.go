// Package cmd implements the keycrawl commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/keycrawler/content"
	"github.com/katalvlaran/keycrawler/crawler"
	"github.com/katalvlaran/keycrawler/internal/config"
	"github.com/katalvlaran/keycrawler/internal/loader"
	"github.com/katalvlaran/keycrawler/internal/logging"
	"github.com/katalvlaran/keycrawler/internal/output"
	"github.com/katalvlaran/keycrawler/vertex"
)

var longRootDescription = `keycrawl walks decoded documents key by key.

Documents are read as JSON or YAML (object keys keep their file order),
as raw YAML nodes, or as HTML. Paths are written with dots, numbers
standing for list positions: "pages.0.children.2".`

// app carries the state shared by all commands of one run.
type app struct {
	v       *viper.Viper
	cfgFile string
	dev     bool
	cfg     config.Config
	log     *zap.Logger
	runID   string
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "keycrawl:", err)
		stop()
		os.Exit(1)
	}
}

// NewRootCmd returns the keycrawl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: zap.NewNop()}
	d := config.Default()

	rootCmd := &cobra.Command{
		Use:           "keycrawl",
		Short:         "Traverse, search and navigate structured documents",
		Long:          longRootDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.BoolVar(&a.dev, "dev", false, "human readable log output")
	flags.String(config.KeyStrategy, d.Strategy, "traversal strategy: dfs or bfs")
	flags.String(config.KeyOrder, d.Order, "depth-first order: pre or post")
	flags.Int(config.KeyMaxDepth, d.MaxDepth, "visit routes up to this length and skip deeper values, 0 for no limit")
	flags.Int(config.KeyMaxResults, d.MaxResults, "stop searching after this many results, 0 for no limit")
	flags.StringP(config.KeyFormat, "f", d.Format, "input format: json, yaml, yaml-node or html")
	flags.StringP(config.KeyOutput, "o", d.Output, "output format: json, yaml or table")
	flags.String(config.KeyLogLevel, d.LogLevel, "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newTraverseCmd(a),
		newSearchCmd(a),
		newRouteCmd(a),
		newTOCCmd(a),
		newNavCmd(a),
	)

	return rootCmd
}

// init resolves settings and the logger once flags are parsed.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	log, err := logging.New(cfg.LogLevel, a.dev)
	if err != nil {
		return err
	}
	a.log, a.runID = logging.WithRunID(log.With(zap.String("cmd", cmd.Name())))
	a.log.Debug("settings resolved", zap.Any("config", cfg))

	return nil
}

// load decodes paths in the configured format. Plain loads decode objects
// into maps rather than ordered mappings.
func (a *app) load(cmd *cobra.Command, paths []string, plain bool) ([]loader.Document, error) {
	l := loader.Loader{Format: a.cfg.Format, Plain: plain, Stdin: cmd.InOrStdin()}
	docs, err := l.LoadAll(paths)
	if err != nil {
		return nil, err
	}
	a.log.Debug("documents loaded", zap.Int("count", len(docs)))

	return docs, nil
}

// formatRules returns the vertex rules the input format needs.
func (a *app) formatRules() []vertex.Rule {
	switch a.cfg.Format {
	case "html":
		return []vertex.Rule{vertex.DOMNodeRule}
	case "yaml-node":
		return []vertex.Rule{vertex.YAMLNodeRule}
	default:
		return nil
	}
}

// newCrawler builds a crawler with the configured strategy, the format
// rules and extra.
func (a *app) newCrawler(ctx context.Context, extra ...vertex.Rule) (*crawler.KeyCrawler, error) {
	strategy, err := a.cfg.NewStrategy(ctx)
	if err != nil {
		return nil, err
	}

	return crawler.New(
		crawler.WithStrategy(strategy),
		crawler.WithRules(append(a.formatRules(), extra...)...),
		crawler.WithLogger(a.log),
	), nil
}

// pageRule picks the page vertex for the pages flag: "content" or
// "indexed", or none when empty.
func pageRule(mode string) ([]vertex.Rule, error) {
	switch mode {
	case "":
		return nil, nil
	case "content":
		return []vertex.Rule{content.ContentNodeRule}, nil
	case "indexed":
		return []vertex.Rule{content.IndexedNodeRule}, nil
	default:
		return nil, errors.Errorf("unknown pages view %q, want content or indexed", mode)
	}
}

// write prints v in the configured output format.
func (a *app) write(cmd *cobra.Command, v any) error {
	return output.Write(cmd.OutOrStdout(), a.cfg.Output, v)
}

// pageList returns the page list of doc: doc itself, or its "pages"
// property for whole documents.
func pageList(doc any) any {
	if !vertex.IsList(doc) {
		if pages, ok := vertex.LookupProperty(doc, "pages"); ok {
			return pages
		}
	}

	return doc
}
