// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package index

import (
	"unsafe"

	"gviegas/gldraw/driver"
)

// Buffer is a GPU buffer holding index data of type T,
// alongside the topology that draws using it will
// assemble.
type Buffer[T Index] struct {
	buf driver.Buffer
	top Topology
	n   int
}

// NewBuffer creates a buffer containing the given index
// data.
// It does not check that T is supported by ctx; callers
// targeting contexts where U32 may be missing are
// expected to gate on Supported themselves.
func NewBuffer[T Index](ctx driver.Context, t Topology, data []T) (*Buffer[T], error) {
	b, err := NewEmptyBuffer[T](ctx, t, len(data))
	if err != nil {
		return nil, err
	}
	if err := b.Set(0, data); err != nil {
		b.Destroy()
		return nil, err
	}
	return b, nil
}

// NewEmptyBuffer creates a buffer with room for n indices
// of type T, without storing any data.
// The initial contents of the buffer are indeterminate.
func NewEmptyBuffer[T Index](ctx driver.Context, t Topology, n int) (*Buffer[T], error) {
	if n < 0 {
		panic("index.NewEmptyBuffer: n < 0")
	}
	buf, err := ctx.NewBuffer(int64(n)*int64(TypeOf[T]().Size()), driver.UIndex|driver.UCopyDst)
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{buf: buf, top: t, n: n}, nil
}

// Len returns the number of indices in the buffer.
func (b *Buffer[T]) Len() int { return b.n }

// Type returns the Type of the buffer's elements.
// It is equivalent to TypeOf[T].
func (b *Buffer[T]) Type() Type { return TypeOf[T]() }

// Primitives returns the topology that draws using this
// buffer will assemble.
func (b *Buffer[T]) Primitives() Topology { return b.top }

// ID returns the identifier of the underlying buffer in
// the graphics API.
func (b *Buffer[T]) ID() uint32 { return b.buf.ID() }

// Set stores the given indices in the buffer, starting at
// element position i.
// It panics if the range is out of bounds.
func (b *Buffer[T]) Set(i int, data []T) error {
	if i < 0 || i+len(data) > b.n {
		panic(prefix + "buffer range out of bounds")
	}
	if len(data) == 0 {
		return nil
	}
	return b.buf.Write(int64(i)*int64(TypeOf[T]().Size()), asBytes(data))
}

// Source returns a BufferSource that fetches every index
// in the buffer.
func (b *Buffer[T]) Source() Source {
	sz := int64(TypeOf[T]().Size())
	return BufferSource{
		Buffer:   driver.Slice(b.buf, 0, int64(b.n)*sz),
		Type:     TypeOf[T](),
		Topology: b.top,
	}
}

// Slice returns a BufferSource that fetches the indices
// in positions [i:j].
// It returns false if the range is out of bounds.
func (b *Buffer[T]) Slice(i, j int) (Source, bool) {
	if i < 0 || j < i || j > b.n {
		return nil, false
	}
	sz := int64(TypeOf[T]().Size())
	return BufferSource{
		Buffer:   driver.Slice(b.buf, int64(i)*sz, int64(j-i)*sz),
		Type:     TypeOf[T](),
		Topology: b.top,
	}, true
}

// Multidraw returns a MultidrawElementSource that issues
// every record of cmds, fetching indices from b.
func (b *Buffer[T]) Multidraw(cmds *IndexedCommandBuffer) Source {
	sz := int64(TypeOf[T]().Size())
	return MultidrawElementSource{
		Commands: cmds.Range(),
		Indices:  driver.Slice(b.buf, 0, int64(b.n)*sz),
		Type:     TypeOf[T](),
		Topology: b.top,
	}
}

// Destroy invalidates b and destroys the underlying
// buffer.
func (b *Buffer[T]) Destroy() {
	if b == nil {
		return
	}
	if b.buf != nil {
		b.buf.Destroy()
	}
	*b = Buffer[T]{}
}

// asBytes reinterprets index data as raw bytes, in the
// byte order of the host.
func asBytes[T Index](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*TypeOf[T]().Size())
}
