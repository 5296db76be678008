// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"

	"github.com/katalvlaran/relgraph/core"
)

// LayoutMode selects how node coordinates are decided. It is always chosen
// explicitly, never inferred from the number of entities.
type LayoutMode uint8

const (
	// LayoutAuto leaves every coordinate to the backend's layout engine.
	LayoutAuto LayoutMode = iota
	// LayoutFixed assigns every coordinate from the policy's position table.
	LayoutFixed
)

func (m LayoutMode) String() string {
	if m == LayoutFixed {
		return "fixed"
	}

	return "auto"
}

// ParseLayoutMode accepts "auto" or "fixed".
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch s {
	case "auto":
		return LayoutAuto, nil
	case "fixed":
		return LayoutFixed, nil
	}

	return LayoutAuto, fmt.Errorf("layout mode %q: %w", s, ErrInvalidLayout)
}

// Default layout values.
const (
	DefaultRadius = 3.0
	DefaultEngine = core.EngineNeato
)

// LayoutPolicy decides node placement.
//
// Fixed mode builds a position table from, in priority order:
//  1. Positions (explicit coordinates);
//  2. Pinned, placed at the origin;
//  3. Ring, placed evenly on a circle of Radius starting at StartAngle
//     degrees. An empty Ring means "every remaining entity, in matrix order".
type LayoutPolicy struct {
	Mode   LayoutMode
	Engine core.Engine

	Radius     float64
	StartAngle float64 // degrees, counter-clockwise from +X
	Pinned     string
	Ring       []string
	Positions  map[string]core.Position
}

// AutoLayout returns a force-directed policy on the default engine.
func AutoLayout() LayoutPolicy {
	return LayoutPolicy{Mode: LayoutAuto, Engine: DefaultEngine, Radius: DefaultRadius}
}

// FixedLayout returns a fixed policy pinning pinned at the origin and placing
// the other entities on a circle of DefaultRadius: the triangle+center
// arrangement for four entities.
func FixedLayout(pinned string) LayoutPolicy {
	return LayoutPolicy{Mode: LayoutFixed, Engine: DefaultEngine, Radius: DefaultRadius, Pinned: pinned}
}

// Validate checks the mode, the radius, the start angle and that every
// explicit position is finite.
func (l LayoutPolicy) Validate() error {
	if l.Mode != LayoutAuto && l.Mode != LayoutFixed {
		return fmt.Errorf("mode %d: %w", l.Mode, ErrInvalidLayout)
	}
	if l.Mode == LayoutAuto {
		return nil
	}
	if l.Radius <= 0 || !isFinite(l.Radius) {
		return fmt.Errorf("radius %v: %w", l.Radius, ErrInvalidLayout)
	}
	if !isFinite(l.StartAngle) {
		return fmt.Errorf("start angle %v: %w", l.StartAngle, ErrInvalidLayout)
	}
	for id, p := range l.Positions {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("position of %q (%v, %v): %w", id, p.X, p.Y, ErrInvalidLayout)
		}
	}

	return nil
}

// positions computes the position table for entities under a fixed policy.
// It returns nil under LayoutAuto.
//
// Implementation:
//   - Stage 1: copy explicit Positions.
//   - Stage 2: pin Pinned at (0,0) unless explicitly placed.
//   - Stage 3: distribute the ring (Ring, or remaining entities) over 360°.
//     Ring members that already have a coordinate take no slot, so the
//     spacing stays even.
//   - Stage 4: every entity must now have a coordinate.
//
// Complexity: O(V).
func (l LayoutPolicy) positions(entities []string) (map[string]core.Position, error) {
	if l.Mode == LayoutAuto {
		return nil, nil
	}

	table := make(map[string]core.Position, len(entities))
	for id, p := range l.Positions {
		table[id] = p
	}
	if l.Pinned != "" {
		if _, explicit := table[l.Pinned]; !explicit {
			table[l.Pinned] = core.Position{}
		}
	}

	candidates := l.Ring
	if len(candidates) == 0 {
		candidates = entities
	}
	var ring []string
	for _, id := range candidates {
		if _, placed := table[id]; !placed {
			table[id] = core.Position{} // reserve; overwritten below
			ring = append(ring, id)
		}
	}
	step := 360.0 / float64(max(len(ring), 1))
	for i, id := range ring {
		table[id] = onCircle(l.Radius, l.StartAngle+float64(i)*step)
	}

	for _, e := range entities {
		if _, ok := table[e]; !ok {
			return nil, &MissingLayoutPositionError{Entity: e}
		}
	}

	return table, nil
}

// onCircle returns the point at angle degrees on a circle of radius r,
// rounded to 1e-9 so that cos(90°) prints as 0.
func onCircle(r, deg float64) core.Position {
	rad := deg * math.Pi / 180

	return core.Position{X: round9(r * math.Cos(rad)), Y: round9(r * math.Sin(rad))}
}

func round9(v float64) float64 {
	r := math.Round(v*1e9) / 1e9
	if r == 0 {
		return 0 // drop negative zero
	}

	return r
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
