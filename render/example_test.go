package render_test

import (
	"fmt"

	"github.com/katalvlaran/relgraph/render"
	"github.com/katalvlaran/relgraph/table"
)

// ExampleRender pins A at the origin and styles every edge by sign.
func ExampleRender() {
	m, _ := table.Parse("A B\nA 1 -2\nB 0 3")

	g, err := render.Render(m, render.FixedLayout("A"), render.DefaultStyle())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, v := range g.Vertices() {
		fmt.Println(v.ID, *v.Position)
	}
	for _, e := range g.Edges() {
		fmt.Println(e.From, "->", e.To, e.Label, e.Color, e.Placement.LabelDistance)
	}

	// Output:
	// A {0 0}
	// B {3 0}
	// A -> A +1 #90EE90 2
	// A -> B -2 #FF9999 1.2
	// B -> A 0 #808080 1.2
	// B -> B +3 #90EE90 2
}
