package opengl

import (
	"testing"
	"unsafe"

	"github.com/go-theft-auto/clay"
)

func TestVertexLayout(t *testing.T) {
	// Color is read by GL as 4 normalized bytes right after the position.
	if off := unsafe.Offsetof(Vertex{}.Color); off != 8 {
		t.Errorf("color offset = %d, want 8", off)
	}
	if size := unsafe.Sizeof(Vertex{}); size != 12 {
		t.Errorf("vertex size = %d, want 12", size)
	}
}

func TestBuildQuads(t *testing.T) {
	r := &Renderer{HoverAmount: 1}
	red := clay.Color{R: 255, A: 255}
	frame := []clay.FrameElement{
		{Box: clay.BoundingBox{Width: 800, Height: 600}}, // transparent root
		{Box: clay.BoundingBox{X: 10, Y: 20, Width: 30, Height: 40}, BackgroundColor: red},
		{Box: clay.BoundingBox{X: 50, Y: 50, Width: 10, Height: 10}, BackgroundColor: red, Hovered: true},
	}

	r.buildQuads(frame)

	if len(r.vertices) != 8 || len(r.indices) != 12 {
		t.Fatalf("got %d vertices, %d indices", len(r.vertices), len(r.indices))
	}
	if r.vertices[2].Pos != [2]float32{40, 60} {
		t.Errorf("bottom-right corner = %v", r.vertices[2].Pos)
	}
	if r.vertices[0].Color != red {
		t.Errorf("plain color = %+v", r.vertices[0].Color)
	}
	if r.vertices[4].Color != HoverTint {
		t.Errorf("hovered color = %+v, want tint", r.vertices[4].Color)
	}
	if r.indices[6] != 4 {
		t.Errorf("second quad indices start at %d, want 4", r.indices[6])
	}
}

func TestCursorToLayout(t *testing.T) {
	got := cursorToLayout(10, 20, 2)
	if got != (clay.Vector2{X: 20, Y: 40}) {
		t.Errorf("cursorToLayout = %+v", got)
	}
}
