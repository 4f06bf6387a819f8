package scene

import (
	"fmt"

	"github.com/go-theft-auto/clay"
)

// Visit records what the core saw for one element during a declaration.
type Visit struct {
	Path      string // slash-separated child indices, e.g. "/0/2"
	Depth     int
	Node      *Node
	ID        clay.ElementID
	Lookahead bool // NextHovered() just before the element was declared
	Hovered   bool // Hovered() while the element was open
}

// Mismatch reports whether the lookahead disagreed with the real hover
// state. This happens for elements with an explicit id.
func (v Visit) Mismatch() bool {
	return v.Lookahead != v.Hovered
}

// Declare runs one declaration pass of s into ctx. visit, if non-nil, is
// called for every element in declaration order.
func (s *Scene) Declare(ctx *clay.Context, visit func(Visit)) {
	ctx.BeginLayout()
	s.declareNodes(ctx, "", 1, s.Elements, visit)
	ctx.EndLayout()
}

func (s *Scene) declareNodes(ctx *clay.Context, path string, depth int, nodes []Node, visit func(Visit)) {
	for i := range nodes {
		n := &nodes[i]
		v := Visit{Path: fmt.Sprintf("%s/%d", path, i), Depth: depth, Node: n}

		v.Lookahead = ctx.NextHovered()

		var id clay.ElementID
		switch {
		case n.ID != "":
			id = clay.IDI(n.ID, n.Index)
		case n.Local != "":
			id = ctx.ElementIDLocalWithIndex(n.Local, n.Index)
		}
		// Validated on load.
		col, _ := ParseColor(n.Color)

		ctx.OpenElement()
		ctx.ConfigureOpenElement(clay.ElementDeclaration{
			ID: id,
			Box: clay.BoundingBox{
				X: float32(n.X), Y: float32(n.Y),
				Width: float32(n.Width), Height: float32(n.Height),
			},
			BackgroundColor: col,
		})
		v.ID = ctx.OpenElementID()
		v.ID.StringID = id.StringID
		v.Hovered = ctx.Hovered()
		if visit != nil {
			visit(v)
		}

		s.declareNodes(ctx, v.Path, depth+1, n.Children, visit)
		ctx.CloseElement()
	}
}

// Replay declares s once, applies the pointer, and declares it again,
// returning the visits of the second pass. After Replay the pointer-over set
// and Frame of ctx describe the scene.
func (s *Scene) Replay(ctx *clay.Context) []Visit {
	ctx.SetLayoutDimensions(s.Dimensions())
	s.Declare(ctx, nil)
	ctx.SetPointerState(clay.Vector2{X: float32(s.Pointer.X), Y: float32(s.Pointer.Y)}, s.Pointer.Down)

	var visits []Visit
	s.Declare(ctx, func(v Visit) { visits = append(visits, v) })
	return visits
}
