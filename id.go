package clay

// ID returns the global id for label. Global ids do not depend on the
// element they are declared under.
func ID(label string) ElementID {
	return HashString(label, 0, 0)
}

// IDI returns the global id for label with an explicit index, for elements
// declared in a loop.
func IDI(label string, index uint32) ElementID {
	return HashString(label, index, 0)
}

// ElementIDLocalWithIndex returns an id for a child about to be declared
// under the open element. The id is scoped to the open element and offset
// by its current child count plus one plus index, so explicitly indexed
// ids never land on slot 0 of the automatic scheme.
//
// It only reads the open element; nothing is registered. The foreign
// export Clay_GetElementIdLocalWithIndex delegates here.
func (c *Context) ElementIDLocalWithIndex(idString string, index uint32) ElementID {
	parent := c.openElement()
	return HashString(idString, parent.childCount()+1+index, parent.id.ID)
}

// LocalID is ElementIDLocalWithIndex with index 0.
func (c *Context) LocalID(idString string) ElementID {
	return c.ElementIDLocalWithIndex(idString, 0)
}

// OpenElementID returns the id of the open element with the default string
// id, since no source string is known at this point.
func (c *Context) OpenElementID() ElementID {
	return ElementID{ID: c.openElement().id.ID, StringID: DefaultStringID}
}
