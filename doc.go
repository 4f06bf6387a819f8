/*
Package clay provides an immediate-mode layout core with a small identity
and hover shim, designed as idiomatic Go with a dedicated Context type.

# Overview

Each frame the UI is declared from scratch inside a declaration pass.
Elements are opened, configured and closed in order; the Context keeps the
stack of open elements explicitly instead of in global state. After the
pass, SetPointerState hit-tests the finalized tree and records which
elements are under the pointer.

# Quick Start

	ctx := clay.NewContext(clay.Dimensions{Width: 1280, Height: 720})

	for running {
	    ctx.SetPointerState(clay.Vector2{X: mx, Y: my}, mouseDown)

	    ctx.BeginLayout()
	    ctx.Element(clay.ElementDeclaration{ID: clay.ID("Toolbar"), Box: toolbar}, func() {
	        for i, b := range buttons {
	            col := idle
	            if ctx.NextHovered() {
	                col = hot
	            }
	            ctx.Element(clay.ElementDeclaration{Box: b, BackgroundColor: col}, nil)
	        }
	    })
	    ctx.EndLayout()

	    renderer.Render(ctx)
	}

# Element IDs

Every element gets a 32-bit id. Explicit ids come from ID and IDI (global)
or ElementIDLocalWithIndex and LocalID (scoped to the open element).
Anonymous elements get HashNumber(parent child count, parent id).

Local ids use the offset child count + 1 + index, so they never collide
with the anonymous id of the same slot.

# Hover Lookahead

NextHovered answers "will the next child be hovered?" before the child
exists, by computing the anonymous id it would receive. It cannot know
about an explicit id the caller is about to assign, so for explicitly named
elements use Hovered from inside the element instead.

# Colors

Color is four bytes in r, g, b, a order, checked at compile time to match
image/color.RGBA, so it converts to host color types without copying
fields.

# Errors

Misuse such as duplicate ids, unbalanced open/close calls or exceeding the
element capacity is reported through the ErrorHandler (see
WithErrorHandler) and never aborts the pass. The default handler logs with
log/slog.
*/
package clay
