// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/katalvlaran/relgraph/pipeline"
	"github.com/katalvlaran/relgraph/raster"
	"github.com/katalvlaran/relgraph/render"
	"github.com/katalvlaran/relgraph/table"
)

// WarningsHeader carries the number of parse warnings of a render.
const WarningsHeader = "X-Relgraph-Warnings"

type variationView struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Layout string `json:"layout"`
	Engine string `json:"engine"`
}

func (s *Server) listVariations(c echo.Context) error {
	out := make([]variationView, 0, len(s.variations))
	for i, v := range s.variations {
		engine := v.Layout.Engine
		if engine == "" {
			engine = render.DefaultEngine
		}
		out = append(out, variationView{
			Index:  i,
			Name:   v.Name,
			Title:  v.Title,
			Layout: v.Layout.Mode.String(),
			Engine: string(engine),
		})
	}

	return c.JSON(http.StatusOK, out)
}

type renderParams struct {
	Variation string `query:"variation"`
	Format    string `query:"format" validate:"omitempty,oneof=dot json png svg pdf"`
	Entities  string `query:"entities"`
}

var contentTypes = map[string]string{
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatJSON: echo.MIMEApplicationJSONCharsetUTF8,
	raster.FormatPNG:    "image/png",
	raster.FormatSVG:    "image/svg+xml",
	raster.FormatPDF:    "application/pdf",
}

func (s *Server) render(c echo.Context) error {
	params := new(renderParams)
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	format := params.Format
	if format == "" {
		format = pipeline.FormatDOT
	}

	v, ok := s.variation(params.Variation)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown variation " + strconv.Quote(params.Variation)})
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unreadable body"})
	}

	var warnings table.Recorder
	opts := []table.Option{table.WithSink(&warnings), table.WithLogger(s.log)}
	if names := s.entities(params.Entities); len(names) > 0 {
		opts = append(opts, table.WithRecognized(names...))
	}
	m, err := table.Parse(string(body), opts...)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	if s.presets != nil {
		if pv, ok := lookup(s.presets(m.Entities()), v.Name); ok {
			v = pv
		}
	}

	out, _, err := s.runner.Encode(c.Request().Context(), m, v, format)
	switch {
	case err == nil:
	case errors.Is(err, render.ErrMissingLayoutPosition):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.Is(err, pipeline.ErrNoDrawer):
		return c.JSON(http.StatusNotImplemented, map[string]string{"error": "Format " + format + " needs graphviz"})
	default:
		s.log.Error().Err(err).Str("variation", v.Name).Msg("render failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	c.Response().Header().Set(WarningsHeader, strconv.Itoa(warnings.Len()))

	return c.Blob(http.StatusOK, contentTypes[format], out)
}

// variation returns the named variation, or the first one for "".
func (s *Server) variation(name string) (render.Variation, bool) {
	if name == "" {
		return s.variations[0], true
	}

	return lookup(s.variations, name)
}

func lookup(vs []render.Variation, name string) (render.Variation, bool) {
	for _, v := range vs {
		if v.Name == name {
			return v, true
		}
	}

	return render.Variation{}, false
}

func (s *Server) entities(param string) []string {
	if param == "" {
		return s.recognized
	}
	var names []string
	for _, n := range strings.Split(param, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}

	return names
}
