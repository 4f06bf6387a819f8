//go:build wasip1

// Command claywasm exposes the layout core to a wasm host.
//
// Build as a reactor module:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o clay.wasm ./cmd/claywasm
//
// Strings are passed through a scratch buffer: the host writes bytes at
// Clay_ScratchBuffer() and passes (offset, length) pairs relative to it.
package main

import (
	"unsafe"

	"github.com/go-theft-auto/clay"
	"github.com/go-theft-auto/clay/internal/wasmabi"
)

const scratchSize = 4096

var (
	scratch [scratchSize]byte
	session = wasmabi.NewSession(clay.NewContext(clay.Dimensions{}), scratch[:])
)

func main() {}

func boolResult(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

//go:wasmexport Clay_ScratchBuffer
func scratchBuffer() unsafe.Pointer {
	return unsafe.Pointer(&scratch[0])
}

//go:wasmexport Clay_ScratchSize
func scratchBufferSize() uint32 {
	return scratchSize
}

//go:wasmexport Clay_GetElementIdLocalWithIndex
func getElementIDLocalWithIndex(offset, length, index uint32) uint32 {
	return session.GetElementIDLocalWithIndex(offset, length, index)
}

//go:wasmexport Clay__GetOpenLayoutElementId
func getOpenLayoutElementID() uint32 {
	return session.GetOpenElementID()
}

//go:wasmexport Clay__NextHovered
func nextHovered() int32 {
	return boolResult(session.NextHovered())
}

//go:wasmexport Clay_Hovered
func hovered() int32 {
	return boolResult(session.Hovered())
}

//go:wasmexport Clay_SetLayoutDimensions
func setLayoutDimensions(width, height float32) {
	session.SetLayoutDimensions(width, height)
}

//go:wasmexport Clay_SetPointerState
func setPointerState(x, y float32, down int32) {
	session.SetPointerState(x, y, down != 0)
}

//go:wasmexport Clay_BeginLayout
func beginLayout() {
	session.BeginLayout()
}

//go:wasmexport Clay_EndLayout
func endLayout() {
	session.EndLayout()
}

//go:wasmexport Clay__OpenElement
func openElement(id uint32, x, y, width, height float32, rgba uint32) {
	session.OpenElement(id, x, y, width, height, rgba)
}

//go:wasmexport Clay__CloseElement
func closeElement() {
	session.CloseElement()
}

//go:wasmexport Clay__HashString
func hashString(offset, length, hashOffset, seed uint32) uint32 {
	return session.HashString(offset, length, hashOffset, seed)
}
