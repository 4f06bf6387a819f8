package clay

// NextHovered reports whether the next child of the open element, which has
// not been declared yet, is under the pointer this frame. It lets callers
// pick a style before declaring the element.
//
// The lookahead assumes the child will be anonymous and get
// HashNumber(child count, parent id). If the child is given an explicit id
// instead, the real id differs and NextHovered silently reports false even
// when the element ends up hovered.
//
// TODO: cache the computed id and, in ConfigureOpenElement, report an error
// if a different id is supplied for that slot; reset the cache afterwards.
func (c *Context) NextHovered() bool {
	parent := c.openElement()
	next := HashNumber(parent.childCount(), parent.id.ID)

	for i := range c.pointerOverIDs {
		if c.pointerOverIDs[i].ID == next.ID {
			return true
		}
	}
	return false
}
