// Package raster turns DOT into images and decorates them.
//
// Graphviz runs the external layout engine binary (neato, dot, ...) with the
// DOT on stdin and returns whatever output format was requested. Captioner
// composites a text banner onto a decoded image with the Go Regular font, so
// a title can be drawn apart from the node-and-edge body.
package raster
