package clay

import (
	"errors"
	"testing"
)

func TestFrameOrderAndDepth(t *testing.T) {
	ctx, rec := newTestContext(t)
	ctx.BeginLayout()
	ctx.Element(ElementDeclaration{ID: ID("A"), Box: box(0, 0, 100, 100)}, func() {
		ctx.Element(ElementDeclaration{ID: ID("A1"), Box: box(0, 0, 50, 50)}, nil)
		ctx.Element(ElementDeclaration{ID: ID("A2"), Box: box(50, 0, 50, 50)}, nil)
	})
	ctx.Element(ElementDeclaration{ID: ID("B"), Box: box(100, 0, 100, 100)}, nil)
	ctx.EndLayout()

	if len(rec.errs) != 0 {
		t.Fatalf("unexpected errors: %v", rec.errs)
	}

	frame := ctx.Frame()
	want := []struct {
		id    string
		depth int
	}{
		{"Clay__RootContainer", 0},
		{"A", 1},
		{"A1", 2},
		{"A2", 2},
		{"B", 1},
	}
	if len(frame) != len(want) {
		t.Fatalf("frame has %d elements, want %d", len(frame), len(want))
	}
	for i, w := range want {
		if frame[i].ID.StringID != w.id || frame[i].Depth != w.depth {
			t.Errorf("frame[%d] = %q depth %d, want %q depth %d",
				i, frame[i].ID.StringID, frame[i].Depth, w.id, w.depth)
		}
	}
	if frame[0].Box.Width != 800 || frame[0].Box.Height != 600 {
		t.Errorf("root box = %+v, want layout dimensions", frame[0].Box)
	}
}

func TestElementData(t *testing.T) {
	ctx, _ := newTestContext(t)
	if _, ok := ctx.ElementData(ID("A")); ok {
		t.Error("no element should be found before the first pass")
	}

	ctx.BeginLayout()
	ctx.Element(ElementDeclaration{ID: ID("A"), Box: box(10, 20, 30, 40)}, nil)
	// Not visible until EndLayout.
	if _, ok := ctx.ElementData(ID("A")); ok {
		t.Error("element data should not be published mid-pass")
	}
	ctx.EndLayout()

	got, ok := ctx.ElementData(ID("A"))
	if !ok || got != box(10, 20, 30, 40) {
		t.Errorf("ElementData = %+v, %v", got, ok)
	}

	// Dropped in the next pass.
	ctx.BeginLayout()
	ctx.EndLayout()
	if _, ok := ctx.ElementData(ID("A")); ok {
		t.Error("element not redeclared should be gone")
	}
	if ctx.Generation() != 2 {
		t.Errorf("generation = %d, want 2", ctx.Generation())
	}
}

func TestDuplicateID(t *testing.T) {
	ctx, rec := newTestContext(t)
	ctx.BeginLayout()
	ctx.Element(ElementDeclaration{ID: ID("Same")}, nil)
	ctx.Element(ElementDeclaration{ID: ID("Same")}, nil)
	ctx.EndLayout()

	if len(rec.errs) != 1 || !errors.Is(rec.errs[0], ErrDuplicateID) {
		t.Fatalf("errors = %v, want one duplicate id", rec.errs)
	}
	// Both elements are still declared.
	if len(ctx.Frame()) != 3 {
		t.Errorf("frame has %d elements, want 3", len(ctx.Frame()))
	}
}

func TestUnbalancedClose(t *testing.T) {
	ctx, rec := newTestContext(t)
	ctx.BeginLayout()
	ctx.CloseElement()
	ctx.EndLayout()

	if len(rec.errs) != 1 || !errors.Is(rec.errs[0], ErrUnbalancedElements) {
		t.Fatalf("errors = %v, want one unbalanced", rec.errs)
	}
}

func TestEndLayoutClosesOpenElements(t *testing.T) {
	ctx, rec := newTestContext(t)
	ctx.BeginLayout()
	ctx.OpenElement()
	ctx.OpenElement()
	ctx.EndLayout()

	if len(rec.errs) != 1 || !errors.Is(rec.errs[0], ErrUnbalancedElements) {
		t.Fatalf("errors = %v, want one unbalanced", rec.errs)
	}
	frame := ctx.Frame()
	if len(frame) != 3 || frame[2].Depth != 2 {
		t.Fatalf("frame = %+v", frame)
	}
	// Unconfigured elements are anonymous.
	if frame[1].ID != HashNumber(0, rootContainerID.ID) {
		t.Errorf("anonymous id = %+v", frame[1].ID)
	}
}

func TestCapacityExceeded(t *testing.T) {
	rec := &recorder{}
	ctx := NewContext(Dimensions{Width: 100, Height: 100}, WithMaxElementCount(3), WithErrorHandler(rec.handle))

	ctx.BeginLayout()
	for i := 0; i < 5; i++ {
		ctx.Element(ElementDeclaration{ID: IDI("Item", uint32(i))}, func() {
			ctx.Element(ElementDeclaration{}, nil)
		})
	}
	ctx.EndLayout()

	if len(rec.errs) != 1 || !errors.Is(rec.errs[0], ErrElementsCapacityExceeded) {
		t.Fatalf("errors = %v, want one capacity error", rec.errs)
	}
	if got := len(ctx.Frame()); got != 3 {
		t.Errorf("frame has %d elements, want 3", got)
	}

	// The flag resets each pass.
	ctx.BeginLayout()
	ctx.EndLayout()
	if len(rec.errs) != 1 {
		t.Errorf("capacity error repeated on an empty pass: %v", rec.errs)
	}
}

func TestConfigureTwice(t *testing.T) {
	ctx, rec := newTestContext(t)
	ctx.BeginLayout()
	ctx.OpenElement()
	ctx.ConfigureOpenElement(ElementDeclaration{ID: ID("First")})
	ctx.ConfigureOpenElement(ElementDeclaration{ID: ID("Second")})
	ctx.CloseElement()
	ctx.EndLayout()

	if len(rec.errs) != 1 || !errors.Is(rec.errs[0], ErrInternal) {
		t.Fatalf("errors = %v, want one internal", rec.errs)
	}
	if _, ok := ctx.ElementData(ID("First")); !ok {
		t.Error("first configuration should stick")
	}
}

func TestErrorDataMessage(t *testing.T) {
	err := ErrorData{Type: ErrorTypeDuplicateID, Text: "x"}
	if got := err.Error(); got != "clay: duplicate id: x" {
		t.Errorf("Error() = %q", got)
	}
	if errors.Is(err, ErrInternal) {
		t.Error("duplicate id should not match ErrInternal")
	}
}
