// Package wasmabi adapts a clay.Context to a flat calling convention for
// sandboxed hosts: strings arrive as (pointer, length) pairs into guest
// memory and ids leave as bare uint32 values.
//
// The functions here are plain Go so they can be tested natively;
// cmd/claywasm binds them to exported wasm symbols.
package wasmabi

import (
	"github.com/go-theft-auto/clay"
)

// Session is the state behind the exported symbols: one layout context and
// the guest memory strings are read from.
type Session struct {
	ctx *clay.Context
	mem []byte
}

// NewSession wraps ctx. mem is the guest memory view; it may be replaced
// later with SetMemory when the memory grows.
func NewSession(ctx *clay.Context, mem []byte) *Session {
	return &Session{ctx: ctx, mem: mem}
}

// SetMemory replaces the memory view.
func (s *Session) SetMemory(mem []byte) {
	s.mem = mem
}

// Context returns the wrapped layout context.
func (s *Session) Context() *clay.Context {
	return s.ctx
}

// str reads a string out of guest memory. ok is false when the range falls
// outside the memory view.
func (s *Session) str(ptr, length uint32) (string, bool) {
	end := uint64(ptr) + uint64(length)
	if end > uint64(len(s.mem)) {
		return "", false
	}
	return string(s.mem[ptr:end]), true
}

// GetElementIDLocalWithIndex backs Clay_GetElementIdLocalWithIndex.
// It returns the numeric id, or 0 (the null id) when the string range is
// out of bounds.
func (s *Session) GetElementIDLocalWithIndex(ptr, length, index uint32) uint32 {
	key, ok := s.str(ptr, length)
	if !ok {
		return 0
	}
	return s.ctx.ElementIDLocalWithIndex(key, index).ID
}

// GetOpenElementID returns the numeric id of the open element.
func (s *Session) GetOpenElementID() uint32 {
	return s.ctx.OpenElementID().ID
}

// NextHovered backs Clay__NextHovered.
func (s *Session) NextHovered() bool {
	return s.ctx.NextHovered()
}

// Hovered reports whether the open element is under the pointer.
func (s *Session) Hovered() bool {
	return s.ctx.Hovered()
}

// SetLayoutDimensions resizes the layout area.
func (s *Session) SetLayoutDimensions(width, height float32) {
	s.ctx.SetLayoutDimensions(clay.Dimensions{Width: width, Height: height})
}

// SetPointerState updates the pointer.
func (s *Session) SetPointerState(x, y float32, down bool) {
	s.ctx.SetPointerState(clay.Vector2{X: x, Y: y}, down)
}

// BeginLayout starts a declaration pass.
func (s *Session) BeginLayout() {
	s.ctx.BeginLayout()
}

// EndLayout finishes the pass.
func (s *Session) EndLayout() {
	s.ctx.EndLayout()
}

// OpenElement opens and configures an element. id is the numeric id to use,
// or 0 for an anonymous element; the string id is not transported.
// The color is packed as 0xRRGGBBAA.
func (s *Session) OpenElement(id uint32, x, y, width, height float32, rgba uint32) {
	s.ctx.OpenElement()
	s.ctx.ConfigureOpenElement(clay.ElementDeclaration{
		ID:              clay.ElementID{ID: id},
		Box:             clay.BoundingBox{X: x, Y: y, Width: width, Height: height},
		BackgroundColor: UnpackColor(rgba),
	})
}

// CloseElement closes the open element.
func (s *Session) CloseElement() {
	s.ctx.CloseElement()
}

// HashString hashes a guest string with the core's string hash.
func (s *Session) HashString(ptr, length, offset, seed uint32) uint32 {
	key, ok := s.str(ptr, length)
	if !ok {
		return 0
	}
	return clay.HashString(key, offset, seed).ID
}

// UnpackColor decodes 0xRRGGBBAA.
func UnpackColor(rgba uint32) clay.Color {
	return clay.Color{
		R: uint8(rgba >> 24),
		G: uint8(rgba >> 16),
		B: uint8(rgba >> 8),
		A: uint8(rgba),
	}
}
