// SPDX-License-Identifier: MIT

package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/relgraph/core"
)

// Output formats a Graphviz binary is asked for.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

// Formats lists the output formats Graphviz.Draw accepts.
var Formats = []string{FormatPNG, FormatSVG, FormatPDF}

// IsFormat reports whether f is one of Formats.
func IsFormat(f string) bool {
	for _, s := range Formats {
		if s == f {
			return true
		}
	}

	return false
}

// Drawer lays out and draws a DOT document.
type Drawer interface {
	Draw(ctx context.Context, dot []byte, engine core.Engine, format string) ([]byte, error)
}

// DefaultBinary is the Graphviz entry point; -K selects the engine.
const DefaultBinary = "dot"

// Graphviz draws by running the Graphviz command line.
type Graphviz struct {
	// Binary is the executable name or path; empty means DefaultBinary.
	Binary string
	// Args are appended after the -K/-T flags (e.g. "-Gdpi=400").
	Args []string

	Logger zerolog.Logger
}

var _ Drawer = (*Graphviz)(nil)

// NewGraphviz returns a Graphviz drawer using binary (DefaultBinary if empty).
func NewGraphviz(binary string, log zerolog.Logger) *Graphviz {
	return &Graphviz{Binary: binary, Logger: log.With().Str("component", "raster").Logger()}
}

// Draw pipes dot into `<binary> -K<engine> -T<format> [Args...]` and returns
// the process's standard output.
//
// Errors:
//   - ErrEmptyDOT, ErrUnsupportedFormat on bad input.
//   - ErrBinaryNotFound if the binary cannot be resolved.
//   - ErrDraw (with captured stderr) on a non-zero exit.
//   - ctx.Err() when the context ends first.
func (g *Graphviz) Draw(ctx context.Context, dot []byte, engine core.Engine, format string) ([]byte, error) {
	if len(bytes.TrimSpace(dot)) == 0 {
		return nil, ErrEmptyDOT
	}
	if !IsFormat(format) {
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	bin := g.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", bin, ErrBinaryNotFound)
	}
	if engine == "" {
		engine = core.EngineNeato
	}

	args := append([]string{"-K" + string(engine), "-T" + format}, g.Args...)
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader(dot)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	g.Logger.Debug().Str("binary", path).Strs("args", args).Msg("running graphviz")
	if err = cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: exit %d: %s", ErrDraw, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}

		return nil, fmt.Errorf("%w: %v", ErrDraw, err)
	}

	return stdout.Bytes(), nil
}
