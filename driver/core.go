// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package driver

// Context is the main interface to an underlying driver
// implementation.
// It is used to create buffer resources and to query what
// the underlying graphics context supports.
// A Context is obtained from a call to Driver.Open.
//
// Unless stated otherwise, methods of a Context and of the
// resources it creates must be called from the thread on
// which the underlying graphics context is current.
// Callers are expected to lock the goroutine that owns the
// Context to an OS thread and keep both there.
type Context interface {
	Capabilities

	// Driver returns the Driver that owns the Context.
	Driver() Driver

	// NewBuffer creates a new buffer.
	NewBuffer(size int64, usg Usage) (Buffer, error)

	// Limits returns the implementation limits.
	// They are immutable for the lifetime of the Context.
	Limits() Limits
}

// Destroyer is the interface that wraps the Destroy method.
// Types that implement this interface may allocate external
// memory that is not managed by GC, so Destroy must be
// called explicitly to ensure such memory is deallocated.
type Destroyer interface {
	Destroy()
}

// Usage is a mask indicating valid uses for a buffer.
type Usage int

// Usage flags for Buffer.
const (
	// The buffer can provide index data for draw calls.
	UIndex Usage = 1 << iota
	// The buffer can provide indirect draw commands.
	UIndirect
	// The buffer can receive pixel transfer results.
	UPixelPack
	// The buffer can be the source of copy operations.
	UCopySrc
	// The buffer can be the destination of copy operations.
	UCopyDst
	// The buffer can be used for any purpose.
	UGeneric Usage = 1<<iota - 1
)

// Buffer is the interface that defines a GPU buffer.
// The size of the buffer is fixed. When a larger buffer
// is necessary, a new one must be created and the data
// must be copied explicitly.
type Buffer interface {
	Destroyer

	// ID returns the identifier of the buffer in the
	// underlying API, such as an OpenGL buffer object
	// name.
	// This value is immutable.
	ID() uint32

	// Cap returns the capacity of the buffer in bytes,
	// which may be greater than the size requested during
	// buffer creation.
	// This value is immutable.
	Cap() int64

	// Write stores len(data) bytes in the buffer, starting
	// at the given offset.
	// It panics if the range is out of bounds.
	Write(off int64, data []byte) error

	// ReadBack copies size bytes, starting at the given
	// offset, from buffer memory into a new host slice.
	// The second result is false when the underlying
	// context cannot read this buffer back. Absence of
	// the capability is expected on certain contexts and
	// must not panic nor be treated as failure.
	// It panics if the range is out of bounds.
	ReadBack(off, size int64) ([]byte, bool)
}

// Range is a view into a subrange of a Buffer.
// It does not own the memory it refers to; the Buffer
// must outlive every Range derived from it.
type Range struct {
	Buffer Buffer
	Off    int64
	Size   int64
}

// Slice returns a Range referring to a subrange of buf.
// It panics if buf is nil or the range is out of bounds.
func Slice(buf Buffer, off, size int64) Range {
	switch {
	case buf == nil:
		panic("driver: nil buffer")
	case off < 0, size < 0, off+size > buf.Cap():
		panic("driver: buffer range out of bounds")
	}
	return Range{buf, off, size}
}

// End returns the offset one past the last byte of the
// range.
func (r Range) End() int64 { return r.Off + r.Size }

// Limits describes implementation limits.
// These may vary across drivers and devices.
type Limits struct {
	// Maximum number of control points in a patch
	// primitive.
	MaxPatchVertices int
	// Maximum index value usable for indexed drawing,
	// regardless of index type.
	MaxIndexValue uint32
	// Maximum number of commands in a single multi-draw.
	MaxDrawCount int
}
