// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package index

import (
	"unsafe"

	"gviegas/gldraw/driver"
)

// DrawCommand is one record of a multi-draw that does not
// fetch index data.
// Its memory layout matches the backend's indirect draw
// command, so buffers of records are consumed by the GPU
// as-is.
type DrawCommand struct {
	// Number of vertices to draw.
	Count uint32
	// Number of instances to draw.
	InstanceCount uint32
	// Position of the first vertex.
	First uint32
	// Instance ID of the first instance.
	BaseInstance uint32
}

// DrawIndexedCommand is one record of a multi-draw that
// fetches index data.
// Its memory layout matches the backend's indexed
// indirect draw command.
type DrawIndexedCommand struct {
	// Number of indices to fetch.
	Count uint32
	// Number of instances to draw.
	InstanceCount uint32
	// Position of the first index to fetch.
	FirstIndex uint32
	// Value added to every fetched index.
	BaseVertex uint32
	// Instance ID of the first instance.
	BaseInstance uint32
}

// Record sizes in bytes.
const (
	drawCmdSize        = int64(unsafe.Sizeof(DrawCommand{}))
	drawIndexedCmdSize = int64(unsafe.Sizeof(DrawIndexedCommand{}))
)

// cmdBytes reinterprets records as raw bytes, in the byte
// order of the host.
func cmdBytes(cmds []DrawCommand) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&cmds[0])), len(cmds)*int(drawCmdSize))
}

// indexedCmdBytes reinterprets records as raw bytes, in
// the byte order of the host.
func indexedCmdBytes(cmds []DrawIndexedCommand) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&cmds[0])), len(cmds)*int(drawIndexedCmdSize))
}

// CommandBuffer is a GPU buffer holding DrawCommand
// records.
type CommandBuffer struct {
	buf driver.Buffer
	n   int
}

// NewCommandBuffer creates a command buffer with room for
// n records.
// The initial contents of the records are indeterminate.
func NewCommandBuffer(ctx driver.Context, n int) (*CommandBuffer, error) {
	if n < 1 {
		panic("index.NewCommandBuffer: n < 1")
	}
	buf, err := ctx.NewBuffer(int64(n)*drawCmdSize, driver.UIndirect|driver.UCopyDst)
	if err != nil {
		return nil, err
	}
	return &CommandBuffer{buf, n}, nil
}

// Len returns the number of records in the buffer.
func (b *CommandBuffer) Len() int { return b.n }

// ID returns the identifier of the underlying buffer in
// the graphics API.
func (b *CommandBuffer) ID() uint32 { return b.buf.ID() }

// Set stores the given records in the buffer, starting at
// record position i.
// It panics if the range is out of bounds.
func (b *CommandBuffer) Set(i int, cmds []DrawCommand) error {
	if i < 0 || i+len(cmds) > b.n {
		panic(prefix + "command range out of bounds")
	}
	if len(cmds) == 0 {
		return nil
	}
	return b.buf.Write(int64(i)*drawCmdSize, cmdBytes(cmds))
}

// Range returns the buffer range spanning every record.
func (b *CommandBuffer) Range() driver.Range {
	return driver.Slice(b.buf, 0, int64(b.n)*drawCmdSize)
}

// Source returns a MultidrawArraySource that issues every
// record in the buffer with the given topology.
func (b *CommandBuffer) Source(t Topology) Source {
	return MultidrawArraySource{Commands: b.Range(), Topology: t}
}

// Destroy invalidates b and destroys the underlying
// buffer.
func (b *CommandBuffer) Destroy() {
	if b == nil {
		return
	}
	if b.buf != nil {
		b.buf.Destroy()
	}
	*b = CommandBuffer{}
}

// IndexedCommandBuffer is a GPU buffer holding
// DrawIndexedCommand records.
// Buffer.Multidraw binds one to the index data it will
// fetch from.
type IndexedCommandBuffer struct {
	buf driver.Buffer
	n   int
}

// NewIndexedCommandBuffer creates an indexed command
// buffer with room for n records.
// The initial contents of the records are indeterminate.
func NewIndexedCommandBuffer(ctx driver.Context, n int) (*IndexedCommandBuffer, error) {
	if n < 1 {
		panic("index.NewIndexedCommandBuffer: n < 1")
	}
	buf, err := ctx.NewBuffer(int64(n)*drawIndexedCmdSize, driver.UIndirect|driver.UCopyDst)
	if err != nil {
		return nil, err
	}
	return &IndexedCommandBuffer{buf, n}, nil
}

// Len returns the number of records in the buffer.
func (b *IndexedCommandBuffer) Len() int { return b.n }

// ID returns the identifier of the underlying buffer in
// the graphics API.
func (b *IndexedCommandBuffer) ID() uint32 { return b.buf.ID() }

// Set stores the given records in the buffer, starting at
// record position i.
// It panics if the range is out of bounds.
func (b *IndexedCommandBuffer) Set(i int, cmds []DrawIndexedCommand) error {
	if i < 0 || i+len(cmds) > b.n {
		panic(prefix + "command range out of bounds")
	}
	if len(cmds) == 0 {
		return nil
	}
	return b.buf.Write(int64(i)*drawIndexedCmdSize, indexedCmdBytes(cmds))
}

// Range returns the buffer range spanning every record.
func (b *IndexedCommandBuffer) Range() driver.Range {
	return driver.Slice(b.buf, 0, int64(b.n)*drawIndexedCmdSize)
}

// Destroy invalidates b and destroys the underlying
// buffer.
func (b *IndexedCommandBuffer) Destroy() {
	if b == nil {
		return
	}
	if b.buf != nil {
		b.buf.Destroy()
	}
	*b = IndexedCommandBuffer{}
}
