// Command primstep computes a minimum spanning tree with Prim's algorithm and
// shows how the frontier evolves, step by step.
//
// Usage:
//
//	primstep [-graph file | -gen kind] [-start v] [-history] [-replay]
//
// Without -graph or -gen the built-in 5-vertex sample graph is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/primstep/builder"
	"github.com/katalvlaran/primstep/graphfile"
	"github.com/katalvlaran/primstep/internal/config"
	"github.com/katalvlaran/primstep/internal/logging"
	"github.com/katalvlaran/primstep/prim_kruskal"
	"github.com/katalvlaran/primstep/replay"
)

// generatedWeights is the weight range used for -gen graphs.
const (
	generatedMinWeight = 1
	generatedMaxWeight = 9
)

// sampleDocument is the graph used when no input is given.
func sampleDocument() *graphfile.Document {
	return &graphfile.Document{
		Start: 0,
		Weights: [][]float64{
			{0, 2, 0, 6, 0},
			{2, 0, 3, 8, 5},
			{0, 3, 0, 0, 7},
			{6, 8, 0, 0, 9},
			{0, 5, 7, 9, 0},
		},
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, runReplay))
}

// replayFunc drives an interactive replay and reports whether the user quit.
type replayFunc func(ctrl *replay.Controller, out io.Writer) (quit bool, err error)

// run is main without the process exit, so it can be tested.
func run(args []string, stdout, stderr io.Writer, replayer replayFunc) int {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(stderr, "primstep: %v\n", err)
		return 2
	}
	fs := flag.NewFlagSet("primstep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "primstep: %v\n", err)
		return 2
	}

	doc, err := loadDocument(cfg)
	if err != nil {
		logger.Error("load graph", "err", err)
		return 1
	}
	g, err := doc.Graph()
	if err != nil {
		logger.Error("invalid graph", "err", err)
		return 1
	}

	if cfg.WriteFile != "" {
		if err := writeDocument(cfg.WriteFile, doc); err != nil {
			logger.Error("write graph", "path", cfg.WriteFile, "err", err)
			return 1
		}
		logger.Debug("graph written", "path", cfg.WriteFile)
	}

	start := doc.Start
	if cfg.StartSet {
		start = cfg.Start
	}

	var opts []prim_kruskal.Option
	if cfg.History || cfg.Replay {
		opts = append(opts, prim_kruskal.WithHistory())
	}
	res, err := prim_kruskal.Prim(g, start, opts...)
	if err != nil {
		logger.Error("prim", "start", start, "err", err)
		return 1
	}
	logger.Info("mst computed",
		slog.Int("vertices", g.Order()),
		slog.Int("start", start),
		slog.Float64("total", res.Total),
		slog.Int("edges", len(res.Edges)),
		slog.Int("extractions", res.Stats.Extractions),
		slog.Int("stale", res.Stats.Stale))

	if cfg.History {
		for i, st := range res.Steps {
			fmt.Fprintf(stdout, "%s\n\n", replay.Describe(st, i, len(res.Steps)))
		}
	}

	if cfg.Replay {
		quit, err := replayer(replay.New(res.Steps), stdout)
		if err != nil {
			logger.Error("replay", "err", err)
			return 1
		}
		if quit {
			fmt.Fprintln(stdout, "replay interrupted by user")
		}
	}

	printSummary(stdout, doc, res)
	if err := res.RequireSpanning(g.Order()); err != nil {
		logger.Warn("partial tree", "start", start, "err", err)
		fmt.Fprintf(stdout, "warning: tree spans %d of %d vertices\n", len(res.Edges)+1, g.Order())
	}

	return 0
}

// loadDocument resolves the graph source: file, generator, or the sample.
func loadDocument(cfg *config.Config) (*graphfile.Document, error) {
	switch {
	case cfg.GraphFile != "":
		return graphfile.Load(cfg.GraphFile)
	case cfg.Generate != "":
		con, err := builder.ParseKind(cfg.Generate)
		if err != nil {
			return nil, err
		}
		rows, err := builder.Rows(con,
			builder.WithSeed(cfg.Seed),
			builder.WithWeightFn(builder.UniformIntWeightFn(generatedMinWeight, generatedMaxWeight)))
		if err != nil {
			return nil, err
		}
		return &graphfile.Document{Weights: rows}, nil
	default:
		return sampleDocument(), nil
	}
}

// writeDocument saves doc in the format implied by path.
func writeDocument(path string, doc *graphfile.Document) error {
	format, err := graphfile.FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graphfile.Encode(f, doc, format); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// printSummary prints the total cost and the accepted edges using labels.
func printSummary(w io.Writer, doc *graphfile.Document, res *prim_kruskal.Result) {
	fmt.Fprintf(w, "MST total cost: %g\n", res.Total)
	fmt.Fprintln(w, "MST edges:")
	for _, e := range res.Edges {
		fmt.Fprintf(w, "  %s - %s (weight %g)\n", doc.Label(e.From), doc.Label(e.To), e.Weight)
	}
}
