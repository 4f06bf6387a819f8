package clay

import (
	"log/slog"
)

// rootContainerID names the element BeginLayout opens for every pass.
var rootContainerID = ID("Clay__RootContainer")

// layoutElement is one declared element. Children are indices into the
// element slice of the same pass.
type layoutElement struct {
	id         ElementID
	configured bool
	box        BoundingBox
	color      Color
	children   []int32
	onHover    func(ElementID, PointerData)
}

// childCount is the number of children already closed under e.
func (e *layoutElement) childCount() uint32 {
	return uint32(len(e.children))
}

// Context holds all layout state for one UI.
// This is NOT context.Context - it's a dedicated layout context type.
//
// A Context is not safe for concurrent use. Open/close calls, pointer
// updates and the identity helpers must all run on the goroutine that
// drives the declaration pass.
type Context struct {
	dimensions      Dimensions
	maxElementCount int

	// Current pass
	elements         []layoutElement
	openStack        []int32
	declared         map[uint32]struct{}
	skipped          int // open elements dropped after capacity ran out
	capacityExceeded bool
	inPass           bool

	// Last finalized pass, read by pointer updates and Frame
	finished   []layoutElement
	elementMap map[uint32]BoundingBox
	generation uint64

	// Pointer
	pointer        PointerData
	pointerOverIDs []ElementID

	errorHandler ErrorHandler
	logger       *slog.Logger
}

// NewContext creates a layout context for an area of the given size.
func NewContext(dimensions Dimensions, opts ...Option) *Context {
	c := &Context{
		dimensions:      dimensions,
		maxElementCount: DefaultMaxElementCount,
		elements:        make([]layoutElement, 0, 64),
		openStack:       make([]int32, 0, 16),
		declared:        make(map[uint32]struct{}, 64),
		elementMap:      make(map[uint32]BoundingBox),
		pointer:         PointerData{Position: Vector2{X: -1, Y: -1}, State: PointerReleased},
		logger:          defaultLogger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetLayoutDimensions changes the size of the layout area. It takes effect
// at the next BeginLayout.
func (c *Context) SetLayoutDimensions(d Dimensions) {
	c.dimensions = d
}

// LayoutDimensions returns the size of the layout area.
func (c *Context) LayoutDimensions() Dimensions {
	return c.dimensions
}

// Generation counts completed passes.
func (c *Context) Generation() uint64 {
	return c.generation
}

func (c *Context) report(t ErrorType, text string) {
	e := ErrorData{Type: t, Text: text}
	if c.errorHandler != nil {
		c.errorHandler(e)
		return
	}
	c.logger.Error("layout error", "type", t.String(), "text", text)
}

// openElement returns the element on top of the open stack. Outside a pass
// the stack is empty; the access is reported as an internal error and a
// zero-value element (id 0, no children) stands in for it.
func (c *Context) openElement() *layoutElement {
	if len(c.openStack) == 0 {
		c.report(ErrorTypeInternal, "out of bounds open element access: no element is open")
		return &layoutElement{}
	}
	return &c.elements[c.openStack[len(c.openStack)-1]]
}

// ElementData returns the bounding box an element had in the last finalized
// pass.
func (c *Context) ElementData(id ElementID) (BoundingBox, bool) {
	box, ok := c.elementMap[id.ID]
	return box, ok
}

// Frame returns the elements of the last finalized pass in declaration
// order, parents before their children.
func (c *Context) Frame() []FrameElement {
	if len(c.finished) == 0 {
		return nil
	}
	out := make([]FrameElement, 0, len(c.finished))
	c.walkFinished(func(e *layoutElement, depth int) {
		out = append(out, FrameElement{
			ID:              e.id,
			Box:             e.box,
			BackgroundColor: e.color,
			Depth:           depth,
			Hovered:         c.PointerOver(e.id),
		})
	})
	return out
}

// walkFinished visits the finished tree depth-first in pre-order.
func (c *Context) walkFinished(visit func(e *layoutElement, depth int)) {
	if len(c.finished) == 0 {
		return
	}
	type frame struct {
		index int32
		depth int
	}
	stack := []frame{{index: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := &c.finished[top.index]
		visit(e, top.depth)
		for i := len(e.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{index: e.children[i], depth: top.depth + 1})
		}
	}
}
