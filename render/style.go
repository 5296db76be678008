// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/matrix"
)

// Class is the three-way sign classification of a weight.
type Class uint8

const (
	// ClassNegative marks w < 0 (drawn in the "warning" color).
	ClassNegative Class = iota
	// ClassZero marks w == 0 (drawn in the "neutral" color).
	ClassZero
	// ClassPositive marks w > 0 (drawn in the "positive" color).
	ClassPositive
)

func (c Class) String() string {
	switch c {
	case ClassNegative:
		return "warning"
	case ClassZero:
		return "neutral"
	case ClassPositive:
		return "positive"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// Classify maps w to its Class.
func Classify(w matrix.Weight) Class {
	switch w.Sign() {
	case -1:
		return ClassNegative
	case 0:
		return ClassZero
	default:
		return ClassPositive
	}
}

// FormatLabel renders the sign-explicit edge label: "+4", "-3", "0".
func FormatLabel(w matrix.Weight) string { return w.Signed() }

// Default style values.
const (
	DefaultSelfLoopLabelDistance  = 2.0
	DefaultInterEdgeLabelDistance = 1.2

	DefaultNegativeColor = "#FF9999" // light red
	DefaultZeroColor     = "#808080" // grey
	DefaultPositiveColor = "#90EE90" // light green

	DefaultSelfLoopTailPort = core.PortNorth
	DefaultSelfLoopHeadPort = core.PortSouth

	DefaultDrawZeroEdges = true
)

// StylePolicy maps a weight and its endpoints to label color and placement.
type StylePolicy struct {
	// SelfLoopLabelDistance is the label distance for src == dst edges.
	SelfLoopLabelDistance float64
	// InterEdgeLabelDistance is the label distance for every other edge.
	InterEdgeLabelDistance float64

	// SelfLoopTailPort/SelfLoopHeadPort anchor self-loops so the label
	// clears the node glyph. Inter-entity edges use core.PortAuto.
	SelfLoopTailPort core.Port
	SelfLoopHeadPort core.Port

	NegativeColor string
	ZeroColor     string
	PositiveColor string

	// DrawZeroEdges keeps explicit zero weights as (neutral) edges; when
	// false they produce no edge at all.
	DrawZeroEdges bool
}

// DefaultStyle returns the documented defaults.
func DefaultStyle() StylePolicy {
	return StylePolicy{
		SelfLoopLabelDistance:  DefaultSelfLoopLabelDistance,
		InterEdgeLabelDistance: DefaultInterEdgeLabelDistance,
		SelfLoopTailPort:       DefaultSelfLoopTailPort,
		SelfLoopHeadPort:       DefaultSelfLoopHeadPort,
		NegativeColor:          DefaultNegativeColor,
		ZeroColor:              DefaultZeroColor,
		PositiveColor:          DefaultPositiveColor,
		DrawZeroEdges:          DefaultDrawZeroEdges,
	}
}

// ColorFor returns the configured color of c.
func (s StylePolicy) ColorFor(c Class) string {
	switch c {
	case ClassNegative:
		return s.NegativeColor
	case ClassZero:
		return s.ZeroColor
	default:
		return s.PositiveColor
	}
}

// PlacementFor returns the placement hint for an edge from→to.
func (s StylePolicy) PlacementFor(from, to string) core.Placement {
	if from == to {
		return core.Placement{
			LabelDistance: s.SelfLoopLabelDistance,
			TailPort:      s.SelfLoopTailPort,
			HeadPort:      s.SelfLoopHeadPort,
			SelfLoop:      true,
		}
	}

	return core.Placement{LabelDistance: s.InterEdgeLabelDistance}
}

// Validate checks distances are finite and non-negative, colors are set and
// ports are valid compass points. Self-loops must stay distinguishable from
// inter-entity edges: without an anchoring port the self-loop distance must
// exceed the inter-edge distance.
func (s StylePolicy) Validate() error {
	distances := []struct {
		name string
		d    float64
	}{
		{"self-loop label distance", s.SelfLoopLabelDistance},
		{"inter-edge label distance", s.InterEdgeLabelDistance},
	}
	for _, c := range distances {
		if c.d < 0 || math.IsNaN(c.d) || math.IsInf(c.d, 0) {
			return fmt.Errorf("%s %v: %w", c.name, c.d, ErrInvalidStyle)
		}
	}
	if s.NegativeColor == "" || s.ZeroColor == "" || s.PositiveColor == "" {
		return fmt.Errorf("empty color: %w", ErrInvalidStyle)
	}
	if !s.SelfLoopTailPort.Valid() || !s.SelfLoopHeadPort.Valid() {
		return fmt.Errorf("self-loop ports %q/%q: %w", s.SelfLoopTailPort, s.SelfLoopHeadPort, ErrInvalidStyle)
	}
	unanchored := s.SelfLoopTailPort == core.PortAuto && s.SelfLoopHeadPort == core.PortAuto
	if unanchored && s.SelfLoopLabelDistance <= s.InterEdgeLabelDistance {
		return fmt.Errorf("self-loop label distance %v <= inter-edge %v without ports: %w",
			s.SelfLoopLabelDistance, s.InterEdgeLabelDistance, ErrInvalidStyle)
	}

	return nil
}
