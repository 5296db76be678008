// Package converters adapts core.Graph to gonum/graph and encodes it as
// Graphviz DOT.
//
// ToGonum produces a gonum multi.DirectedGraph whose nodes and lines carry
// the DOT attributes of the description:
//
//	node  label, pos ("x,y!" when the vertex is pinned)
//	edge  headlabel, fontcolor, color, labeldistance, plus compass ports
//	      for self-loops
//	graph layout (engine), label and labelloc when a title is set
//
// MarshalDOT runs gonum's dot.MarshalMulti over that graph, so
// the output is ordered by vertex insertion order and then edge insertion
// order. Encoding the same description twice yields identical bytes.
package converters
