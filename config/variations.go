// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/render"
)

// VariationsFile is the on-disk form of a set of variations.
//
// YAML:
//
//	variations:
//	  - name: triangle
//	    layout: {mode: fixed, pinned: Jason, radius: 3.0}
//
// HCL:
//
//	variation "triangle" {
//	  layout {
//	    mode   = "fixed"
//	    pinned = "Jason"
//	  }
//	}
type VariationsFile struct {
	Variations []VariationSpec `yaml:"variations" hcl:"variation,block"`
}

// VariationSpec declares one variation. Nil fields fall back to the
// render defaults.
type VariationSpec struct {
	Name   string      `yaml:"name" hcl:"name,label"`
	Title  *string     `yaml:"title" hcl:"title,optional"`
	Layout *LayoutSpec `yaml:"layout" hcl:"layout,block"`
	Style  *StyleSpec  `yaml:"style" hcl:"style,block"`
}

// LayoutSpec mirrors render.LayoutPolicy.
type LayoutSpec struct {
	Mode       *string              `yaml:"mode" hcl:"mode,optional"`
	Engine     *string              `yaml:"engine" hcl:"engine,optional"`
	Radius     *float64             `yaml:"radius" hcl:"radius,optional"`
	StartAngle *float64             `yaml:"start_angle" hcl:"start_angle,optional"`
	Pinned     *string              `yaml:"pinned" hcl:"pinned,optional"`
	Ring       []string             `yaml:"ring" hcl:"ring,optional"`
	Positions  map[string][]float64 `yaml:"positions" hcl:"positions,optional"`
}

// StyleSpec mirrors render.StylePolicy.
type StyleSpec struct {
	SelfLoopLabelDistance  *float64 `yaml:"self_loop_label_distance" hcl:"self_loop_label_distance,optional"`
	InterEdgeLabelDistance *float64 `yaml:"inter_edge_label_distance" hcl:"inter_edge_label_distance,optional"`
	SelfLoopTailPort       *string  `yaml:"self_loop_tail_port" hcl:"self_loop_tail_port,optional"`
	SelfLoopHeadPort       *string  `yaml:"self_loop_head_port" hcl:"self_loop_head_port,optional"`
	NegativeColor          *string  `yaml:"negative_color" hcl:"negative_color,optional"`
	ZeroColor              *string  `yaml:"zero_color" hcl:"zero_color,optional"`
	PositiveColor          *string  `yaml:"positive_color" hcl:"positive_color,optional"`
	DrawZeroEdges          *bool    `yaml:"draw_zero_edges" hcl:"draw_zero_edges,optional"`
}

// DefaultTitle is the caption given to the variation at index when the
// preset names none: "#000 - triangle".
func DefaultTitle(index int, name string) string {
	return fmt.Sprintf("#%03d - %s", index, name)
}

// DefaultVariations returns the built-in presets for entities:
//
//	triangle  fixed layout, last entity pinned at the origin, the others on
//	          a circle of radius 3.0, zero weights drawn grey
//	auto      neato places every node, zero weights skipped
func DefaultVariations(entities []string) []render.Variation {
	pinned := ""
	if len(entities) > 0 {
		pinned = entities[len(entities)-1]
	}
	auto := render.DefaultStyle()
	auto.DrawZeroEdges = false

	return []render.Variation{
		{
			Name:   "triangle",
			Title:  DefaultTitle(0, "triangle"),
			Layout: render.FixedLayout(pinned),
			Style:  render.DefaultStyle(),
		},
		{
			Name:   "auto",
			Title:  DefaultTitle(1, "auto"),
			Layout: render.AutoLayout(),
			Style:  auto,
		},
	}
}

// LoadVariations reads and resolves a variations file, picking the decoder
// by extension (.yaml/.yml or .hcl).
func LoadVariations(path string) ([]render.Variation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read variations: %w", err)
	}

	var file VariationsFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		file, err = DecodeYAML(data)
	case ".hcl":
		file, err = DecodeHCL(data, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}
	if err != nil {
		return nil, err
	}

	return file.Resolve()
}

// DecodeYAML decodes a YAML variations document. Unknown keys are errors;
// an empty document decodes to no variations.
func DecodeYAML(data []byte) (VariationsFile, error) {
	var f VariationsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return VariationsFile{}, fmt.Errorf("config: decode yaml: %w", err)
	}

	return f, nil
}

// DecodeHCL decodes an HCL variations document; filename is used in
// diagnostics only.
func DecodeHCL(data []byte, filename string) (VariationsFile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return VariationsFile{}, fmt.Errorf("config: parse hcl %s: %w", filename, diags)
	}

	var f VariationsFile
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return VariationsFile{}, fmt.Errorf("config: decode hcl %s: %w", filename, diags)
	}

	return f, nil
}

// Resolve turns every spec into render policies, in declaration order.
//
// Errors: ErrNoVariations, ErrDuplicateVariation, ErrInvalidVariation.
func (f VariationsFile) Resolve() ([]render.Variation, error) {
	if len(f.Variations) == 0 {
		return nil, ErrNoVariations
	}
	seen := make(map[string]struct{}, len(f.Variations))
	out := make([]render.Variation, 0, len(f.Variations))
	for i, s := range f.Variations {
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariation, s.Name)
		}
		seen[s.Name] = struct{}{}

		v, err := s.Resolve(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// Resolve applies s over the render defaults. index feeds DefaultTitle.
func (s VariationSpec) Resolve(index int) (render.Variation, error) {
	if strings.TrimSpace(s.Name) == "" {
		return render.Variation{}, fmt.Errorf("%w: #%d has no name", ErrInvalidVariation, index)
	}
	v := render.Variation{
		Name:   s.Name,
		Title:  DefaultTitle(index, s.Name),
		Layout: render.AutoLayout(),
		Style:  render.DefaultStyle(),
	}
	if s.Title != nil {
		v.Title = *s.Title
	}
	if s.Layout != nil {
		if err := s.Layout.apply(&v.Layout); err != nil {
			return render.Variation{}, fmt.Errorf("%w: %q: %v", ErrInvalidVariation, s.Name, err)
		}
	}
	if s.Style != nil {
		s.Style.apply(&v.Style)
	}
	if err := v.Style.Validate(); err != nil {
		return render.Variation{}, fmt.Errorf("%w: %q: %v", ErrInvalidVariation, s.Name, err)
	}
	if err := v.Layout.Validate(); err != nil {
		return render.Variation{}, fmt.Errorf("%w: %q: %v", ErrInvalidVariation, s.Name, err)
	}

	return v, nil
}

func (l *LayoutSpec) apply(p *render.LayoutPolicy) error {
	if l.Mode != nil {
		mode, err := render.ParseLayoutMode(*l.Mode)
		if err != nil {
			return err
		}
		p.Mode = mode
	}
	if l.Engine != nil {
		p.Engine = core.Engine(*l.Engine)
	}
	if l.Radius != nil {
		p.Radius = *l.Radius
	}
	if l.StartAngle != nil {
		p.StartAngle = *l.StartAngle
	}
	if l.Pinned != nil {
		p.Pinned = *l.Pinned
	}
	if len(l.Ring) > 0 {
		p.Ring = append([]string(nil), l.Ring...)
	}
	if len(l.Positions) > 0 {
		p.Positions = make(map[string]core.Position, len(l.Positions))
		for id, xy := range l.Positions {
			if len(xy) != 2 {
				return fmt.Errorf("position of %q needs [x, y], got %d values", id, len(xy))
			}
			p.Positions[id] = core.Position{X: xy[0], Y: xy[1]}
		}
	}

	return nil
}

func (s *StyleSpec) apply(p *render.StylePolicy) {
	setFloat(&p.SelfLoopLabelDistance, s.SelfLoopLabelDistance)
	setFloat(&p.InterEdgeLabelDistance, s.InterEdgeLabelDistance)
	if s.SelfLoopTailPort != nil {
		p.SelfLoopTailPort = core.Port(*s.SelfLoopTailPort)
	}
	if s.SelfLoopHeadPort != nil {
		p.SelfLoopHeadPort = core.Port(*s.SelfLoopHeadPort)
	}
	setString(&p.NegativeColor, s.NegativeColor)
	setString(&p.ZeroColor, s.ZeroColor)
	setString(&p.PositiveColor, s.PositiveColor)
	if s.DrawZeroEdges != nil {
		p.DrawZeroEdges = *s.DrawZeroEdges
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
