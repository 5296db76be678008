// Package relgraph turns relationship tables into styled directed graphs.
//
// A relationship table is plain text: a header row of column entities and
// one row per source entity, each cell a signed number saying how the row
// entity relates to the column entity. relgraph parses such a table into a
// sparse matrix, lays the entities out and emits a directed graph whose
// edges carry the weights as colored labels.
//
// What is inside:
//
//	matrix/     - immutable sparse relationship matrix + Builder
//	table/      - tolerant text-table parser and formatter, warning sinks
//	core/       - in-memory directed graph with self-loops, positions and ports
//	render/     - matrix to graph: layout, label and color policies
//	converters/ - core.Graph to gonum multigraph and Graphviz DOT
//	raster/     - graphviz drawing, PNG caption banners
//	config/     - viper configuration, zerolog setup, YAML/HCL variations
//	pipeline/   - concurrent rendering of every variation to files
//	watch/      - fsnotify re-render on table changes
//	server/     - echo HTTP API for posted tables
//	betting/    - prediction scoring: Brier scores, pairwise payouts as a matrix
//	cmd/relgraph/ - the command-line tool
//
// Quick example:
//
//	        Daffy  Ernie
//	Daffy   -3     -3
//	Ernie    3     -1
//
// yields two vertices, two self-loops and two opposite edges, each edge
// labelled "+3"/"-3" and colored green or red by sign.
//
//	go install github.com/katalvlaran/relgraph/cmd/relgraph@latest
package relgraph
