package clay

// Vector2 represents a 2D point, typically the pointer position.
type Vector2 struct {
	X, Y float32
}

// Dimensions is the size of the layout area.
type Dimensions struct {
	Width, Height float32
}

// BoundingBox is an element's resolved rectangle in layout coordinates.
type BoundingBox struct {
	X, Y          float32 // Top-left position
	Width, Height float32
}

// Contains reports whether p lies inside the box. Edges are inclusive.
func (b BoundingBox) Contains(p Vector2) bool {
	return p.X >= b.X && p.X <= b.X+b.Width && p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// ElementID names an element within its parent's scope for one pass.
// ID 0 is the null id; every hash result is offset by one to keep it free.
type ElementID struct {
	ID       uint32 // Hash of the full identifier
	Offset   uint32 // Offset mixed into the hash (index or child slot)
	BaseID   uint32 // Hash before the offset was applied
	StringID string // Source string, or DefaultStringID for numeric ids
}

// DefaultStringID is the canonical "no source string" sentinel.
const DefaultStringID = ""

// IsZero reports whether id is the null id.
func (id ElementID) IsZero() bool {
	return id.ID == 0
}

// ElementDeclaration configures the currently open element.
// Box is already resolved by the caller; the core does not size elements.
type ElementDeclaration struct {
	ID              ElementID // Zero for an anonymous element
	Box             BoundingBox
	BackgroundColor Color
}

// FrameElement is one element of the last finalized pass.
type FrameElement struct {
	ID              ElementID
	Box             BoundingBox
	BackgroundColor Color
	Depth           int // 0 for the root container
	Hovered         bool
}
