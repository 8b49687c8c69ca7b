// Command webcomp analyzes a web-component package and emits the JSON
// summary of its elements, mixins, behaviors, classes and namespaces.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/viant/webcomp/analysis"
	"github.com/viant/webcomp/config"
	"github.com/viant/webcomp/loader"
	"github.com/viant/webcomp/summary"
	"github.com/viant/webcomp/watch"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "webcomp",
		Short:         "Static analyzer for web-component packages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newAnalyzeCmd())
	return cmd
}

type analyzeOptions struct {
	root       string
	configFile string
	out        string
	watchMode  bool
	verbose    bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze [urls...]",
		Short: "Analyze entry documents and emit a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.root, "root", ".", "package root directory")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "configuration file (defaults to <root>/webcomp.yaml)")
	cmd.Flags().StringVar(&opts.out, "out", "", "write the summary to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.watchMode, "watch", false, "stay alive and re-analyze on file changes")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	return cmd
}

func runAnalyze(ctx context.Context, opts *analyzeOptions, args []string) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	root, err := filepath.Abs(opts.root)
	if err != nil {
		return err
	}
	cfg := &config.Config{}
	configFile := opts.configFile
	if configFile == "" {
		candidate := filepath.Join(root, config.DefaultFile)
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
		}
	}
	if configFile != "" {
		if cfg, err = config.Load(configFile); err != nil {
			return err
		}
	}
	if cfg.Root != "" {
		root = cfg.Root
	}
	urls := args
	if len(urls) == 0 {
		urls = cfg.Entrypoints
	}
	if len(urls) == 0 {
		return fmt.Errorf("no entrypoints: pass urls or configure entrypoints in %v", config.DefaultFile)
	}

	analyzer := analysis.NewAnalyzer(analysis.Options{
		Resolver:  loader.NewPackageResolver(root),
		LazyEdges: cfg.LazyEdges,
		Logger:    logger,
	})
	if err := analyzeOnce(ctx, analyzer, urls, root, opts.out, logger); err != nil {
		return err
	}
	if !opts.watchMode {
		return nil
	}
	watcher := watch.New(analyzer, root, logger)
	watcher.OnChange = func(*analysis.Context) {
		if err := analyzeOnce(ctx, analyzer, urls, root, opts.out, logger); err != nil {
			logger.Error("re-analysis failed", slog.Any("error", err))
		}
	}
	logger.Info("watching", slog.String("root", root))
	return watcher.Run(ctx)
}

func analyzeOnce(ctx context.Context, analyzer *analysis.Analyzer, urls []string, root, out string, logger *slog.Logger) error {
	snapshot, err := analyzer.Analyze(ctx, urls)
	if err != nil {
		return err
	}
	var docs []*analysis.Document
	for _, url := range urls {
		doc, err := snapshot.GetDocument(url)
		if err != nil {
			logger.Warn("document failed", slog.String("url", url), slog.Any("error", err))
			continue
		}
		for _, w := range doc.Warnings {
			logger.Warn("analysis warning", slog.String("warning", w.String()))
		}
		docs = append(docs, doc)
	}
	payload, err := summary.Emit(docs, root)
	if err != nil {
		return err
	}
	if out == "" {
		_, err = os.Stdout.Write(append(payload, '\n'))
		return err
	}
	return os.WriteFile(out, payload, 0o644)
}
