// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding/dot"

	"github.com/katalvlaran/relgraph/core"
)

// MarshalDOT encodes g as a Graphviz digraph.
//
// The same description always produces the same bytes: nodes are emitted in
// vertex insertion order, edges in edge insertion order, attributes sorted.
func MarshalDOT(g *core.Graph, opts ...Option) ([]byte, error) {
	gg, err := ToGonum(g, opts...)
	if err != nil {
		return nil, err
	}
	b, err := dot.MarshalMulti(gg, quote(gg.Name()), "", "\t")
	if err != nil {
		return nil, fmt.Errorf("converters: marshal %q: %w", gg.Name(), err)
	}

	return append(b, '\n'), nil
}
