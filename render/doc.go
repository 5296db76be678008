// Package render turns a relationship matrix into a styled directed graph
// description (core.Graph).
//
// Every stored pair becomes an edge labeled with its sign-explicit weight
// ("+4", "-3", "0") and colored by sign class: warning for negative, neutral
// for zero, positive for positive. Self-loops get their own label distance
// and compass ports so the label clears the node.
//
// Two policies parameterize a render:
//
//	StylePolicy   label distances, self-loop ports, the three colors and
//	              whether zero weights are drawn at all
//	LayoutPolicy  LayoutAuto (engine places nodes) or LayoutFixed (one
//	              entity pinned at the origin, the rest evenly on a circle)
//
// Render never fails on a valid matrix except when a fixed layout cannot
// place an entity (*MissingLayoutPositionError).
package render
