// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relgraph/converters"
	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/matrix"
	"github.com/katalvlaran/relgraph/raster"
	"github.com/katalvlaran/relgraph/render"
)

// Formats produced without a Graphviz binary.
const (
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// IsFormat reports whether Encode accepts f.
func IsFormat(f string) bool {
	return f == FormatDOT || f == FormatJSON || raster.IsFormat(f)
}

// FileName is the output name of the variation at index: graph_000.png.
func FileName(index int, format string) string {
	return fmt.Sprintf("graph_%03d.%s", index, format)
}

// Result describes one written output.
type Result struct {
	Index  int
	Name   string
	Title  string
	Path   string
	Format string
	Size   int
}

// Runner renders and encodes variations.
type Runner struct {
	// Drawer draws png/svg/pdf; it may be nil for dot and json output.
	Drawer raster.Drawer
	// Captioner, when non-nil, puts the variation title in a banner on png
	// output instead of inside the DOT graph label.
	Captioner *raster.Captioner
	// Concurrency bounds parallel variations; values < 1 mean 1.
	Concurrency int
	// DOTOptions are passed to every converters.MarshalDOT call.
	DOTOptions []converters.Option

	Logger zerolog.Logger
}

// Encode renders m under v and encodes the result as format.
//
// Implementation:
//   - Stage 1: render.RenderVariation.
//   - Stage 2: json marshals the description; every other format goes
//     through DOT.
//   - Stage 3: Graphviz formats are drawn by the Drawer; png is captioned
//     when a Captioner is set.
func (r *Runner) Encode(ctx context.Context, m *matrix.Matrix, v render.Variation, format string) ([]byte, *core.Graph, error) {
	if !IsFormat(format) {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	g, err := render.RenderVariation(m, v, render.WithLogger(r.Logger))
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline: variation %q: %w", v.Name, err)
	}

	if format == FormatJSON {
		b, err := json.MarshalIndent(g.Describe(), "", "  ")
		if err != nil {
			return nil, nil, fmt.Errorf("pipeline: variation %q: %w", v.Name, err)
		}

		return append(b, '\n'), g, nil
	}

	caption := format == raster.FormatPNG && r.Captioner != nil
	opts := r.DOTOptions
	if caption {
		opts = append(append([]converters.Option(nil), opts...), converters.WithoutTitle())
	}
	dot, err := converters.MarshalDOT(g, opts...)
	if err != nil {
		return nil, nil, err
	}
	if format == FormatDOT {
		return dot, g, nil
	}

	if r.Drawer == nil {
		return nil, nil, ErrNoDrawer
	}
	out, err := r.Drawer.Draw(ctx, dot, g.Engine(), format)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline: variation %q: %w", v.Name, err)
	}
	if caption {
		if out, err = r.Captioner.CaptionPNG(out, g.Title()); err != nil {
			return nil, nil, fmt.Errorf("pipeline: variation %q: %w", v.Name, err)
		}
	}

	return out, g, nil
}

// Job is one matrix rendered under one variation.
type Job struct {
	Matrix    *matrix.Matrix
	Variation render.Variation
}

// Run encodes every variation of m and writes it to dir as FileName(i, format).
// Results are returned in variation order. The first error cancels the
// remaining work; files already written are left in place.
func (r *Runner) Run(ctx context.Context, m *matrix.Matrix, variations []render.Variation, dir, format string) ([]Result, error) {
	jobs := make([]Job, len(variations))
	for i, v := range variations {
		jobs[i] = Job{Matrix: m, Variation: v}
	}

	return r.RunJobs(ctx, jobs, dir, format)
}

// RunJobs is Run for jobs that do not share a matrix, e.g. one payout matrix
// per settlement method. Job i is written as FileName(i, format).
func (r *Runner) RunJobs(ctx context.Context, jobs []Job, dir, format string) ([]Result, error) {
	if len(jobs) == 0 {
		return nil, ErrNoVariations
	}
	if !IsFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	limit := r.Concurrency
	if limit < 1 {
		limit = 1
	}
	results := make([]Result, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, job := range jobs {
		v := job.Variation
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, g, err := r.Encode(ctx, job.Matrix, v, format)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, FileName(i, format))
			if err = os.WriteFile(path, b, 0o644); err != nil {
				return fmt.Errorf("pipeline: %w", err)
			}
			results[i] = Result{
				Index:  i,
				Name:   v.Name,
				Title:  g.Title(),
				Path:   path,
				Format: format,
				Size:   len(b),
			}
			r.Logger.Info().
				Str("variation", v.Name).
				Str("path", path).
				Int("bytes", len(b)).
				Msg("variation written")

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
