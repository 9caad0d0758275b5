// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package pixel defines the staging object used to move
// two-dimensional pixel data between host and device
// memory.
// Unlike textures, staged pixel data keeps a client-chosen
// layout; the format tag travels with the bytes and is not
// interpreted here.
package pixel

import (
	"errors"

	"gviegas/gldraw/driver"
)

const prefix = "pixel: "

// Format describes the client layout of staged pixel data.
type Format int

// Client formats.
const (
	// 8-bit channels.
	R8 Format = iota
	RG8
	RGB8
	RGBA8
	BGRA8
	// 16-bit channels.
	R16
	RGBA16
	// 32-bit float channels.
	R32F
	RGBA32F
)

// Size returns the number of bytes per pixel.
// It returns 0 if f is not a valid format.
func (f Format) Size() int {
	switch f {
	case R8:
		return 1
	case RG8, R16:
		return 2
	case RGB8:
		return 3
	case RGBA8, BGRA8, R32F:
		return 4
	case RGBA16:
		return 8
	case RGBA32F:
		return 16
	}
	return 0
}

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case R8:
		return "R8"
	case RG8:
		return "RG8"
	case RGB8:
		return "RGB8"
	case RGBA8:
		return "RGBA8"
	case BGRA8:
		return "BGRA8"
	case R16:
		return "R16"
	case RGBA16:
		return "RGBA16"
	case R32F:
		return "R32F"
	case RGBA32F:
		return "RGBA32F"
	}
	return "[!] invalid Format value"
}

// RawImage is pixel data as read back from a buffer,
// alongside the shape it was staged with.
type RawImage struct {
	Data   []byte
	Width  int
	Height int
	Format Format
}

// Sink receives the result of a buffer read.
// Implementations convert the raw data into whatever
// representation the caller needs.
type Sink interface {
	SetRaw(img RawImage)
}

// Buffer is a staging buffer holding two-dimensional
// pixel data.
//
// A Buffer starts out with unknown shape. The transfer
// operation that writes pixel bytes into it records the
// dimensions and format by calling StoreInfos, and reads
// are only valid after that happens. The buffer owns its
// device memory exclusively; its shape changes only
// through StoreInfos.
type Buffer struct {
	buf driver.Buffer
	// Set in full by StoreInfos, or nil.
	// Reads must not tear the three fields apart.
	infos *bufInfos
}

type bufInfos struct {
	width  int
	height int
	format Format
}

// NewEmpty creates a buffer with uninitialized contents
// and room for capacity bytes.
// The dimensions and format of the data it will hold are
// not known yet; a transfer operation records them later.
func NewEmpty(ctx driver.Context, capacity int64) (*Buffer, error) {
	if capacity < 0 {
		panic(prefix + "negative capacity")
	}
	buf, err := ctx.NewBuffer(capacity, driver.UPixelPack|driver.UCopyDst)
	if err != nil {
		return nil, err
	}
	return &Buffer{buf: buf}, nil
}

// Size returns the capacity of the buffer in bytes.
// It does not change when data is staged or read.
func (b *Buffer) Size() int64 { return b.buf.Cap() }

// ID returns the identifier of the underlying buffer in
// the graphics API.
func (b *Buffer) ID() uint32 { return b.buf.ID() }

// StoreInfos records the dimensions and format of the
// pixel data that was just written into the buffer.
// It is meant to be called by transfer operations, exactly
// once per staged image, right after the bytes land.
// It panics if the shape is invalid or if it was already
// recorded.
func (b *Buffer) StoreInfos(width, height int, f Format) {
	switch {
	case b.infos != nil:
		panic(prefix + "infos stored twice")
	case width < 1 || height < 1:
		panic(prefix + "non-positive dimensions")
	case f.Size() == 0:
		panic(prefix + "invalid format")
	}
	b.infos = &bufInfos{width, height, f}
}

// clearInfos forgets the recorded shape so a transfer
// operation can stage a new image in the same buffer.
func (b *Buffer) clearInfos() { b.infos = nil }

// ReadInto copies the content of the buffer back to host
// memory and hands it to s with the recorded shape.
// It returns false, leaving s untouched, when the backend
// cannot read buffers back. This operation is slow and
// should be done outside of the rendering loop.
//
// It panics if StoreInfos was never called, whether or not
// the backend could have performed the read: an unshaped
// read is a misuse, not a missing capability.
func (b *Buffer) ReadInto(s Sink) bool {
	if b.infos == nil {
		panic(prefix + "empty pixel buffer")
	}
	data, ok := b.buf.ReadBack(0, b.buf.Cap())
	if !ok {
		return false
	}
	s.SetRaw(RawImage{
		Data:   data,
		Width:  b.infos.width,
		Height: b.infos.height,
		Format: b.infos.format,
	})
	return true
}

// Read is like ReadInto, for backends known to support
// reading buffers back.
// It panics if the backend cannot perform the read;
// callers that do not gate on such knowledge should use
// ReadInto instead.
func (b *Buffer) Read(s Sink) {
	if !b.ReadInto(s) {
		panic(prefix + "buffer readback not supported")
	}
}

// Destroy invalidates b and destroys the underlying
// buffer.
func (b *Buffer) Destroy() {
	if b == nil {
		return
	}
	if b.buf != nil {
		b.buf.Destroy()
	}
	*b = Buffer{}
}

// Download copies the pixel data in src into a new staging
// buffer and records the given shape on it.
// The resulting buffer is ready to be read.
// It fails when src does not hold enough bytes for the
// shape or when the backend cannot read buffers back.
func Download(ctx driver.Context, src driver.Range, width, height int, f Format) (*Buffer, error) {
	switch {
	case width < 1 || height < 1:
		panic(prefix + "non-positive dimensions")
	case f.Size() == 0:
		panic(prefix + "invalid format")
	}
	n := int64(width) * int64(height) * int64(f.Size())
	if n > src.Size {
		return nil, errors.New(prefix + "not enough source data for the given shape")
	}
	data, ok := src.Buffer.ReadBack(src.Off, n)
	if !ok {
		return nil, errors.New(prefix + "buffer readback not supported")
	}
	b, err := NewEmpty(ctx, n)
	if err != nil {
		return nil, err
	}
	if err := b.buf.Write(0, data); err != nil {
		b.Destroy()
		return nil, err
	}
	b.StoreInfos(width, height, f)
	return b, nil
}
