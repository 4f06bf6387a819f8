package clay

import "fmt"

// BeginLayout starts a declaration pass and opens the root container, which
// covers the whole layout area. Every element declared before EndLayout is a
// descendant of the root.
func (c *Context) BeginLayout() {
	if c.inPass {
		c.report(ErrorTypeUnbalancedElements, "BeginLayout called while a pass is already in progress")
	}

	c.elements = c.elements[:0]
	c.openStack = c.openStack[:0]
	clear(c.declared)
	c.skipped = 0
	c.capacityExceeded = false
	c.inPass = true

	c.OpenElement()
	c.ConfigureOpenElement(ElementDeclaration{
		ID:  rootContainerID,
		Box: BoundingBox{Width: c.dimensions.Width, Height: c.dimensions.Height},
	})

	c.logger.Debug("begin layout", "generation", c.generation, "width", c.dimensions.Width, "height", c.dimensions.Height)
}

// OpenElement pushes a new element. It stays unconfigured until
// ConfigureOpenElement or CloseElement is called for it.
func (c *Context) OpenElement() {
	if c.skipped > 0 || len(c.elements) >= c.maxElementCount {
		if !c.capacityExceeded {
			c.capacityExceeded = true
			c.report(ErrorTypeElementsCapacityExceeded,
				fmt.Sprintf("more than %d elements declared in one pass; raise the limit with WithMaxElementCount", c.maxElementCount))
		}
		c.skipped++
		return
	}

	c.elements = append(c.elements, layoutElement{})
	c.openStack = append(c.openStack, int32(len(c.elements)-1))
}

// ConfigureOpenElement applies decl to the open element. An element with a
// zero decl.ID gets HashNumber(parent child count, parent id).
func (c *Context) ConfigureOpenElement(decl ElementDeclaration) {
	if c.skipped > 0 {
		return
	}
	if len(c.openStack) == 0 {
		c.report(ErrorTypeInternal, "ConfigureOpenElement called with no open element")
		return
	}

	e := &c.elements[c.openStack[len(c.openStack)-1]]
	if e.configured {
		c.report(ErrorTypeInternal, fmt.Sprintf("element %d configured twice", e.id.ID))
		return
	}

	if decl.ID.IsZero() {
		e.id = c.anonymousID()
	} else {
		e.id = decl.ID
		if _, dup := c.declared[e.id.ID]; dup {
			c.report(ErrorTypeDuplicateID,
				fmt.Sprintf("an element with id %q (%d) was already declared during this pass", e.id.StringID, e.id.ID))
		}
	}
	c.declared[e.id.ID] = struct{}{}
	e.box = decl.Box
	e.color = decl.BackgroundColor
	e.configured = true
}

// anonymousID is the id the core assigns to the open element when none was
// given. The parent is the element below it on the open stack.
func (c *Context) anonymousID() ElementID {
	if len(c.openStack) < 2 {
		return HashNumber(0, 0)
	}
	parent := &c.elements[c.openStack[len(c.openStack)-2]]
	return HashNumber(parent.childCount(), parent.id.ID)
}

// CloseElement pops the open element and appends it to its parent's
// children. The root container cannot be closed this way.
func (c *Context) CloseElement() {
	if c.skipped > 0 {
		c.skipped--
		return
	}
	if len(c.openStack) < 2 {
		c.report(ErrorTypeUnbalancedElements, "CloseElement called without a matching OpenElement")
		return
	}
	c.closeTop()
}

func (c *Context) closeTop() {
	n := len(c.openStack)
	index := c.openStack[n-1]
	if !c.elements[index].configured {
		c.ConfigureOpenElement(ElementDeclaration{})
	}
	c.openStack = c.openStack[:n-1]
	if n > 1 {
		parent := &c.elements[c.openStack[n-2]]
		parent.children = append(parent.children, index)
	}
}

// Element declares a child of the open element and runs children inside it.
//
// Example:
//
//	ctx.Element(clay.ElementDeclaration{ID: clay.ID("Sidebar"), Box: box}, func() {
//	    for i, item := range items {
//	        ctx.Element(clay.ElementDeclaration{ID: clay.IDI("Item", uint32(i)), Box: item.Box}, nil)
//	    }
//	})
func (c *Context) Element(decl ElementDeclaration, children func()) {
	c.OpenElement()
	c.ConfigureOpenElement(decl)
	if children != nil {
		children()
	}
	c.CloseElement()
}

// EndLayout closes the root container and publishes the pass: bounding
// boxes become visible to ElementData, and the tree becomes the target of
// the next SetPointerState.
func (c *Context) EndLayout() {
	if !c.inPass {
		c.report(ErrorTypeUnbalancedElements, "EndLayout called without BeginLayout")
		return
	}

	if c.skipped > 0 {
		c.report(ErrorTypeUnbalancedElements, fmt.Sprintf("%d elements beyond capacity still open at EndLayout", c.skipped))
		c.skipped = 0
	}
	if open := len(c.openStack) - 1; open > 0 {
		c.report(ErrorTypeUnbalancedElements, fmt.Sprintf("%d elements still open at EndLayout", open))
	}
	for len(c.openStack) > 0 {
		c.closeTop()
	}
	c.inPass = false

	c.finished, c.elements = c.elements, c.finished[:0]
	clear(c.elementMap)
	for i := range c.finished {
		e := &c.finished[i]
		c.elementMap[e.id.ID] = e.box
	}
	c.generation++

	c.logger.Debug("end layout", "generation", c.generation, "elements", len(c.finished))
}
