// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package null provides a driver whose every operation is
// implemented in host memory.
// It is meant for testing code that consumes the driver
// interfaces, including on machines with no GPU at all.
package null

import (
	"gviegas/gldraw/driver"
)

// Register the zero-value driver.
func init() { driver.Register(&drv) }

var drv Driver

// Driver implements driver.Driver in host memory.
//
// The zero value claims desktop OpenGL 4.1 with no
// extensions and supports every operation. The exported
// fields customize what the opened context claims;
// changing them after Open has no effect.
type Driver struct {
	// Caps reported by the context.
	// If nil, the context reports desktop OpenGL 4.1
	// with no extensions.
	Caps *driver.Caps

	// Lim reported by the context.
	// If nil, the context reports defaultLimits.
	Lim *driver.Limits

	// NoReadBack makes every buffer of the context
	// report that reading it back is unsupported.
	NoReadBack bool

	ctx *context
}

var defaultCaps = driver.Caps{
	Ver: driver.Version{API: driver.GL, Major: 4, Minor: 1},
}

var defaultLimits = driver.Limits{
	MaxPatchVertices: 32,
	MaxIndexValue:    ^uint32(0),
	MaxDrawCount:     1 << 20,
}

// Open initializes the driver.
func (d *Driver) Open() (driver.Context, error) {
	if d.ctx != nil {
		return d.ctx, nil
	}
	caps := defaultCaps
	if d.Caps != nil {
		caps = *d.Caps
	}
	lim := defaultLimits
	if d.Lim != nil {
		lim = *d.Lim
	}
	d.ctx = &context{
		d:    d,
		caps: caps,
		lim:  lim,
		noRB: d.NoReadBack,
	}
	return d.ctx, nil
}

// Name returns the name of the driver.
func (d *Driver) Name() string { return "null" }

// Close deinitializes the driver.
func (d *Driver) Close() { d.ctx = nil }

// context implements driver.Context.
type context struct {
	d      *Driver
	caps   driver.Caps
	lim    driver.Limits
	noRB   bool
	lastID uint32
}

// Version returns the version that the context claims.
func (c *context) Version() driver.Version { return c.caps.Ver }

// Extensions returns the extensions that the context
// claims.
func (c *context) Extensions() driver.Extensions { return c.caps.Exts }

// Driver returns the Driver that owns the context.
func (c *context) Driver() driver.Driver { return c.d }

// Limits returns the limits that the context claims.
func (c *context) Limits() driver.Limits { return c.lim }

// NewBuffer creates a new buffer backed by a host slice.
func (c *context) NewBuffer(size int64, usg driver.Usage) (driver.Buffer, error) {
	if size < 0 {
		panic("null: negative buffer size")
	}
	c.lastID++
	return &buffer{
		c:  c,
		s:  make([]byte, size),
		id: c.lastID,
	}, nil
}

// buffer implements driver.Buffer over a host slice.
type buffer struct {
	c  *context
	s  []byte
	id uint32
}

// Destroy invalidates b.
func (b *buffer) Destroy() {
	if b == nil {
		return
	}
	*b = buffer{}
}

// ID returns the buffer's identifier.
func (b *buffer) ID() uint32 { return b.id }

// Cap returns the buffer's capacity in bytes.
func (b *buffer) Cap() int64 { return int64(len(b.s)) }

// Write stores data in the buffer.
func (b *buffer) Write(off int64, data []byte) error {
	if off < 0 || off+int64(len(data)) > b.Cap() {
		panic("null: buffer range out of bounds")
	}
	copy(b.s[off:], data)
	return nil
}

// ReadBack copies buffer contents into a new host slice.
// It reports absence of the capability when the driver
// was opened with NoReadBack set.
func (b *buffer) ReadBack(off, size int64) ([]byte, bool) {
	if off < 0 || size < 0 || off+size > b.Cap() {
		panic("null: buffer range out of bounds")
	}
	if b.c.noRB {
		return nil, false
	}
	data := make([]byte, size)
	copy(data, b.s[off:])
	return data, true
}
