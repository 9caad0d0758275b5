// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"gviegas/gldraw/driver"
)

// buffer implements driver.Buffer.
type buffer struct {
	c    *context
	id   uint32
	cap  int64
	targ uint32
}

// NewBuffer creates a new buffer object.
func (c *context) NewBuffer(size int64, usg driver.Usage) (driver.Buffer, error) {
	if size < 0 {
		panic("gl: negative buffer size")
	}
	targ := convUsage(usg)
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(targ, id)
	gl.BufferData(targ, int(size), nil, gl.DYNAMIC_DRAW)
	if err := checkError(); err != nil {
		gl.DeleteBuffers(1, &id)
		return nil, err
	}
	return &buffer{c, id, size, targ}, nil
}

// ID returns the buffer object's name.
func (b *buffer) ID() uint32 { return b.id }

// Cap returns the capacity of the buffer in bytes.
func (b *buffer) Cap() int64 { return b.cap }

// Write stores data in buffer memory.
func (b *buffer) Write(off int64, data []byte) error {
	if off < 0 || off+int64(len(data)) > b.cap {
		panic("gl: buffer range out of bounds")
	}
	if len(data) == 0 {
		return nil
	}
	gl.BindBuffer(b.targ, b.id)
	gl.BufferSubData(b.targ, int(off), len(data), gl.Ptr(data))
	return checkError()
}

// ReadBack copies buffer memory into a new host slice.
// It reports absence of the capability on contexts that
// cannot source such copies.
func (b *buffer) ReadBack(off, size int64) ([]byte, bool) {
	if off < 0 || size < 0 || off+size > b.cap {
		panic("gl: buffer range out of bounds")
	}
	if !b.c.canReadBack() {
		return nil, false
	}
	data := make([]byte, size)
	if size == 0 {
		return data, true
	}
	gl.BindBuffer(b.targ, b.id)
	gl.GetBufferSubData(b.targ, int(off), int(size), gl.Ptr(data))
	if checkError() != nil {
		return nil, false
	}
	return data, true
}

// Destroy destroys the buffer object.
func (b *buffer) Destroy() {
	if b == nil {
		return
	}
	if b.c != nil {
		gl.DeleteBuffers(1, &b.id)
	}
	*b = buffer{}
}
