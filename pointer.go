package clay

// PointerState is the press state of the primary pointer button.
type PointerState int

const (
	PointerPressedThisFrame  PointerState = iota // Went down since the last update
	PointerPressed                               // Held down
	PointerReleasedThisFrame                     // Went up since the last update
	PointerReleased                              // Up
)

func (s PointerState) String() string {
	switch s {
	case PointerPressedThisFrame:
		return "pressed this frame"
	case PointerPressed:
		return "pressed"
	case PointerReleasedThisFrame:
		return "released this frame"
	case PointerReleased:
		return "released"
	default:
		return "unknown"
	}
}

// PointerData is the pointer position and button state of the last update.
type PointerData struct {
	Position Vector2
	State    PointerState
}

// SetPointerState updates the pointer and recomputes the pointer-over set
// against the last finalized pass. Call it between EndLayout and the next
// BeginLayout, once per frame.
//
// Every element whose box contains the position is added, parents before
// children, and its hover callback (see OnHover) is invoked.
func (c *Context) SetPointerState(position Vector2, down bool) {
	c.pointer.Position = position
	c.pointer.State = nextPointerState(c.pointer.State, down)

	c.pointerOverIDs = c.pointerOverIDs[:0]
	c.walkFinished(func(e *layoutElement, _ int) {
		if !e.box.Contains(position) {
			return
		}
		c.pointerOverIDs = append(c.pointerOverIDs, e.id)
		if e.onHover != nil {
			e.onHover(e.id, c.pointer)
		}
	})

	if len(c.pointerOverIDs) > 0 {
		c.logger.Debug("pointer over", "x", position.X, "y", position.Y, "count", len(c.pointerOverIDs))
	}
}

func nextPointerState(s PointerState, down bool) PointerState {
	if down {
		switch s {
		case PointerPressedThisFrame:
			return PointerPressed
		case PointerPressed:
			return PointerPressed
		default:
			return PointerPressedThisFrame
		}
	}
	switch s {
	case PointerReleasedThisFrame:
		return PointerReleased
	case PointerReleased:
		return PointerReleased
	default:
		return PointerReleasedThisFrame
	}
}

// Pointer returns the pointer data of the last SetPointerState call.
func (c *Context) Pointer() PointerData {
	return c.pointer
}

// PointerOverIDs returns a copy of the current pointer-over sequence.
func (c *Context) PointerOverIDs() []ElementID {
	out := make([]ElementID, len(c.pointerOverIDs))
	copy(out, c.pointerOverIDs)
	return out
}

// PointerOver reports whether id is in the current pointer-over set.
func (c *Context) PointerOver(id ElementID) bool {
	return c.pointerOverContains(id.ID)
}

func (c *Context) pointerOverContains(id uint32) bool {
	for i := range c.pointerOverIDs {
		if c.pointerOverIDs[i].ID == id {
			return true
		}
	}
	return false
}

// Hovered reports whether the open element is under the pointer. The open
// element must already be configured so that its id is known.
func (c *Context) Hovered() bool {
	return c.pointerOverContains(c.openElement().id.ID)
}

// OnHover registers fn on the open element. fn runs during the next
// SetPointerState if the element is under the pointer.
func (c *Context) OnHover(fn func(id ElementID, pointer PointerData)) {
	if c.skipped > 0 {
		return
	}
	c.openElement().onHover = fn
}
