// Package pipeline renders one matrix under several variations and writes
// one output per variation.
//
// Output files are named graph_000.<ext>, graph_001.<ext>, ... in variation
// order. Formats:
//
//	dot   Graphviz source, no external binary needed
//	json  the core.Description snapshot
//	png, svg, pdf
//	      drawn by a raster.Drawer; png gets a caption banner when a
//	      Captioner is configured
//
// Variations are rendered concurrently with a bounded errgroup; the first
// failure cancels the rest.
package pipeline
