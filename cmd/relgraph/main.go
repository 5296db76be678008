// SPDX-License-Identifier: MIT
// Command relgraph renders relationship tables as directed graphs.
//
// Usage:
//
//	relgraph render  [flags] [table-file|-]
//	relgraph watch   [flags] table-file
//	relgraph serve   [flags]
//	relgraph score   [flags] [predictions.tsv|-]
//	relgraph version
//
// Every flag can also be set in relgraph.yaml or as a RELGRAPH_* environment
// variable (e.g. RELGRAPH_OUTPUT_FORMAT=png); flags win.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/relgraph/betting"
	"github.com/katalvlaran/relgraph/config"
	"github.com/katalvlaran/relgraph/matrix"
	"github.com/katalvlaran/relgraph/pipeline"
	"github.com/katalvlaran/relgraph/raster"
	"github.com/katalvlaran/relgraph/render"
	"github.com/katalvlaran/relgraph/server"
	"github.com/katalvlaran/relgraph/table"
	"github.com/katalvlaran/relgraph/watch"
)

const version = "0.1.0"

const usage = "Usage: relgraph [render|watch|serve|score|version] [flags]"

// errUsage marks command-line mistakes; main exits 2 for them.
var errUsage = errors.New(usage)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run dispatches one subcommand. It is main without the process exits.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "render":
		return cmdRender(ctx, args[1:], stdin, stdout, stderr)
	case "watch":
		return cmdWatch(ctx, args[1:], stdout, stderr)
	case "serve":
		return cmdServe(ctx, args[1:], stderr)
	case "score":
		return cmdScore(ctx, args[1:], stdin, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "relgraph version %s\n", version)
		return nil
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

// flagKeys maps command-line flags onto viper keys.
var flagKeys = map[string]string{
	"config":      config.KeyConfigFile,
	"out":         config.KeyOutputDir,
	"format":      config.KeyFormat,
	"caption":     config.KeyCaption,
	"max-width":   config.KeyMaxWidth,
	"graph-attr":  config.KeyDOTGraph,
	"node-attr":   config.KeyDOTNode,
	"edge-attr":   config.KeyDOTEdge,
	"graphviz":    config.KeyGraphviz,
	"entities":    config.KeyEntities,
	"variations":  config.KeyVariations,
	"concurrency": config.KeyConcurrency,
	"debounce":    config.KeyDebounce,
	"listen":      config.KeyListen,
	"log-level":   config.KeyLogLevel,
	"log-format":  config.KeyLogFormat,
	"users":       config.KeyScoreUsers,
	"due":         config.KeyScoreDue,
	"methods":     config.KeyScoreMethods,
}

// env is everything a subcommand needs after flags and config are merged.
type env struct {
	cfg        config.Config
	log        zerolog.Logger
	runner     *pipeline.Runner
	variations []render.Variation // nil: DefaultVariations of each matrix
}

// setup parses flags into a fresh viper, loads config and builds the runner.
func setup(name string, args []string, stderr io.Writer) (*env, *flag.FlagSet, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("config", "", "config file (default ./relgraph.yaml if present)")
	fs.String("out", "", "output directory")
	fs.String("format", "", "output format: dot, json, png, svg, pdf")
	fs.Bool("caption", true, "draw the title in a banner on png output")
	fs.Int("max-width", 0, "downsample captioned png output wider than this")
	fs.String("graph-attr", "", "extra DOT graph attributes, key=value,...")
	fs.String("node-attr", "", "extra DOT node attributes, key=value,...")
	fs.String("edge-attr", "", "extra DOT edge attributes, key=value,...")
	fs.String("graphviz", "", "graphviz binary")
	fs.String("entities", "", "comma-separated recognized entities")
	fs.String("variations", "", "variations file (.yaml, .yml, .hcl)")
	fs.Int("concurrency", 0, "variations rendered in parallel")
	fs.Duration("debounce", 0, "watch: quiet period before re-rendering")
	fs.String("listen", "", "serve: listen address")
	fs.String("log-level", "", "debug, info, warn, error")
	fs.String("log-format", "", "console or json")
	fs.String("users", "", "score: comma-separated estimate columns")
	fs.String("due", "", "score: only predicates due on this date")
	fs.String("methods", "", "score: payout methods (straight, diff, full-contract, multiplicative)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, flag.ErrHelp
		}
		return nil, nil, fmt.Errorf("%v: %w", err, errUsage)
	}

	v := config.NewViper()
	bindSetFlags(fs, v)
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, err
	}
	log, err := config.NewLogger(cfg.Log, stderr)
	if err != nil {
		return nil, nil, err
	}

	runner := &pipeline.Runner{
		Drawer:      raster.NewGraphviz(cfg.Graphviz, log),
		Concurrency: cfg.Concurrency,
		DOTOptions:  cfg.DOT.Options(),
		Logger:      log,
	}
	if cfg.Caption {
		c := raster.DefaultCaptioner()
		c.MaxWidth = cfg.MaxWidth
		runner.Captioner = &c
	}

	e := &env{cfg: cfg, log: log, runner: runner}
	if cfg.VariationsFile != "" {
		if e.variations, err = config.LoadVariations(cfg.VariationsFile); err != nil {
			return nil, nil, err
		}
	}

	return e, fs, nil
}

// bindSetFlags copies only explicitly set flags into v, so that unset flags
// do not mask config file and environment values.
func bindSetFlags(fs *flag.FlagSet, v *viper.Viper) {
	fs.Visit(func(f *flag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if g, ok := f.Value.(flag.Getter); ok {
			v.Set(key, g.Get())
			return
		}
		v.Set(key, f.Value.String())
	})
}

// read returns the contents of path, or of r for "-".
func read(path string, r io.Reader) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(r)
	}

	return os.ReadFile(path)
}

// parse reads the table at path ("-" for r) and logs every warning.
func (e *env) parse(path string, r io.Reader) (*matrix.Matrix, error) {
	raw, err := read(path, r)
	if err != nil {
		return nil, err
	}

	opts := []table.Option{table.WithLogger(e.log)}
	if len(e.cfg.Entities) > 0 {
		opts = append(opts, table.WithRecognized(e.cfg.Entities...))
	}

	return table.Parse(string(raw), opts...)
}

func (e *env) variationsFor(m *matrix.Matrix) []render.Variation {
	if e.variations != nil {
		return e.variations
	}

	return config.DefaultVariations(m.Entities())
}

// renderOnce parses input and writes every variation, listing the results.
func (e *env) renderOnce(ctx context.Context, input string, stdin io.Reader, stdout io.Writer) error {
	m, err := e.parse(input, stdin)
	if err != nil {
		return err
	}
	res, err := e.runner.Run(ctx, m, e.variationsFor(m), e.cfg.OutputDir, e.cfg.Format)
	if err != nil {
		return err
	}
	printResults(stdout, res)

	return nil
}

func printResults(w io.Writer, res []pipeline.Result) {
	for _, r := range res {
		fmt.Fprintf(w, "%s\t%s\n", r.Path, r.Title)
	}
}

func cmdRender(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	e, fs, err := setup("render", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	input := e.cfg.Input
	if fs.NArg() > 0 {
		input = fs.Arg(0)
	}

	return e.renderOnce(ctx, input, stdin, stdout)
}

func cmdWatch(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	e, fs, err := setup("watch", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	input := e.cfg.Input
	if fs.NArg() > 0 {
		input = fs.Arg(0)
	}
	if input == "-" || input == "" {
		return fmt.Errorf("watch needs a table file: %w", errUsage)
	}

	if err = e.renderOnce(ctx, input, nil, stdout); err != nil {
		e.log.Error().Err(err).Msg("initial render failed")
	}

	paths := []string{input}
	if e.cfg.VariationsFile != "" {
		paths = append(paths, e.cfg.VariationsFile)
	}
	w, err := watch.New(paths, func(ctx context.Context, path string) {
		if e.cfg.VariationsFile != "" {
			vs, err := config.LoadVariations(e.cfg.VariationsFile)
			if err != nil {
				e.log.Error().Err(err).Msg("reload variations")
				return
			}
			e.variations = vs
		}
		if err := e.renderOnce(ctx, input, nil, stdout); err != nil {
			e.log.Error().Err(err).Str("path", path).Msg("render failed")
		}
	}, watch.Config{Debounce: e.cfg.Debounce, Logger: e.log})
	if err != nil {
		return err
	}
	e.log.Info().Strs("paths", paths).Msg("watching")

	return w.Run(ctx)
}

func cmdServe(ctx context.Context, args []string, stderr io.Writer) error {
	e, _, err := setup("serve", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	opts := []server.Option{
		server.WithLogger(e.log),
		server.WithRecognized(e.cfg.Entities...),
	}
	vs := e.variations
	if vs == nil {
		vs = config.DefaultVariations(e.cfg.Entities)
		opts = append(opts, server.WithPresets(config.DefaultVariations))
	}
	s := server.New(e.runner, vs, opts...)

	return s.Start(ctx, e.cfg.Listen)
}

// cmdScore prints each user's Brier score and renders one payout graph per
// method, vertices labelled with the score.
func cmdScore(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	e, fs, err := setup("score", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	input := e.cfg.Input
	if fs.NArg() > 0 {
		input = fs.Arg(0)
	}
	raw, err := read(input, stdin)
	if err != nil {
		return err
	}
	book, err := betting.Parse(string(raw),
		betting.WithUsers(e.cfg.Score.Users...),
		betting.WithDue(e.cfg.Score.Due),
		betting.WithLogger(e.log),
	)
	if err != nil {
		return err
	}

	labels := make(map[string]string, len(book.Users))
	for _, s := range book.Brier() {
		fmt.Fprintf(stdout, "brier\t%s\t%.4f\t%d\n", s.User, s.Score, s.Count)
		labels[s.User] = fmt.Sprintf("%s\n%.3f", s.User, s.Score)
	}

	layout := config.DefaultVariations(book.Users)[0].Layout
	jobs := make([]pipeline.Job, 0, len(e.cfg.Score.Methods))
	for i, method := range e.cfg.Score.Methods {
		m, err := betting.PayoutMatrix(book, method)
		if err != nil {
			return err
		}
		jobs = append(jobs, pipeline.Job{Matrix: m, Variation: render.Variation{
			Name:         method.String(),
			Title:        config.DefaultTitle(i, method.String()),
			Layout:       layout,
			Style:        render.DefaultStyle(),
			VertexLabels: labels,
		}})
	}
	res, err := e.runner.RunJobs(ctx, jobs, e.cfg.OutputDir, e.cfg.Format)
	if err != nil {
		return err
	}
	printResults(stdout, res)

	return nil
}
