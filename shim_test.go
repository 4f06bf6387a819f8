package clay

import (
	"errors"
	"testing"
)

// recorder collects errors reported by a Context.
type recorder struct {
	errs []ErrorData
}

func (r *recorder) handle(e ErrorData) { r.errs = append(r.errs, e) }

func newTestContext(t *testing.T) (*Context, *recorder) {
	t.Helper()
	rec := &recorder{}
	ctx := NewContext(Dimensions{Width: 800, Height: 600}, WithErrorHandler(rec.handle))
	return ctx, rec
}

func box(x, y, w, h float32) BoundingBox {
	return BoundingBox{X: x, Y: y, Width: w, Height: h}
}

func TestElementIDLocalWithIndexDeterministic(t *testing.T) {
	ctx, rec := newTestContext(t)
	ctx.BeginLayout()
	ctx.Element(ElementDeclaration{ID: ID("Panel"), Box: box(0, 0, 100, 100)}, func() {
		ctx.Element(ElementDeclaration{Box: box(0, 0, 10, 10)}, nil)

		first := ctx.ElementIDLocalWithIndex("Item", 3)
		second := ctx.ElementIDLocalWithIndex("Item", 3)
		if first != second {
			t.Errorf("repeated calls differ: %+v vs %+v", first, second)
		}
		if first.StringID != "Item" {
			t.Errorf("string id = %q, want %q", first.StringID, "Item")
		}
	})
	ctx.EndLayout()

	if len(rec.errs) != 0 {
		t.Errorf("unexpected errors: %v", rec.errs)
	}
}

func TestElementIDLocalWithIndexOffsets(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.BeginLayout()
	ctx.Element(ElementDeclaration{ID: ID("List"), Box: box(0, 0, 100, 100)}, func() {
		// Two children already declared.
		ctx.Element(ElementDeclaration{}, nil)
		ctx.Element(ElementDeclaration{}, nil)

		parent := ID("List").ID
		got0 := ctx.ElementIDLocalWithIndex("Row", 0)
		got1 := ctx.ElementIDLocalWithIndex("Row", 1)

		if want := HashString("Row", 3, parent); got0 != want {
			t.Errorf("index 0 = %+v, want %+v", got0, want)
		}
		if want := HashString("Row", 4, parent); got1 != want {
			t.Errorf("index 1 = %+v, want %+v", got1, want)
		}
		if got0.Offset >= got1.Offset {
			t.Errorf("offsets not increasing: %d, %d", got0.Offset, got1.Offset)
		}
		if got0.ID == got1.ID {
			t.Error("index 0 and 1 collided")
		}
		if ctx.LocalID("Row") != got0 {
			t.Error("LocalID should equal index 0")
		}
	})
	ctx.EndLayout()
}

func TestElementIDLocalWithIndexDoesNotRegister(t *testing.T) {
	ctx, rec := newTestContext(t)
	ctx.BeginLayout()
	id := ctx.ElementIDLocalWithIndex("Child", 0)
	// Declaring the same id afterwards must not be a duplicate.
	ctx.Element(ElementDeclaration{ID: id, Box: box(0, 0, 1, 1)}, nil)
	ctx.EndLayout()

	if len(rec.errs) != 0 {
		t.Errorf("computing an id should not register it: %v", rec.errs)
	}
	if len(ctx.Frame()) != 2 {
		t.Errorf("frame has %d elements, want 2", len(ctx.Frame()))
	}
}

func TestOpenElementID(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.BeginLayout()

	root := ctx.OpenElementID()
	if root.ID != rootContainerID.ID {
		t.Errorf("root id = %d, want %d", root.ID, rootContainerID.ID)
	}

	panel := ID("Panel")
	ctx.Element(ElementDeclaration{ID: panel, Box: box(0, 0, 10, 10)}, func() {
		got := ctx.OpenElementID()
		if got.ID != panel.ID {
			t.Errorf("open id = %d, want %d", got.ID, panel.ID)
		}
		if got.StringID != DefaultStringID {
			t.Errorf("string id = %q, want default sentinel", got.StringID)
		}
	})

	ctx.Element(ElementDeclaration{Box: box(0, 0, 10, 10)}, func() {
		want := HashNumber(1, rootContainerID.ID)
		if got := ctx.OpenElementID(); got.ID != want.ID {
			t.Errorf("anonymous open id = %d, want %d", got.ID, want.ID)
		}
	})
	ctx.EndLayout()
}

func TestNoOpenElement(t *testing.T) {
	ctx, rec := newTestContext(t)

	if got := ctx.OpenElementID(); got.ID != 0 || got.StringID != DefaultStringID {
		t.Errorf("OpenElementID outside a pass = %+v, want zero", got)
	}
	if got, want := ctx.ElementIDLocalWithIndex("X", 2), HashString("X", 3, 0); got != want {
		t.Errorf("local id outside a pass = %+v, want %+v", got, want)
	}
	if ctx.NextHovered() {
		t.Error("NextHovered outside a pass should be false with an empty pointer-over set")
	}

	if len(rec.errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(rec.errs), rec.errs)
	}
	for _, e := range rec.errs {
		if !errors.Is(e, ErrInternal) {
			t.Errorf("error %v is not ErrInternal", e)
		}
	}
}
