// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package index defines the index data formats and
// primitive topologies that draw calls consume, and the
// sources that bind them to GPU buffers.
package index

import (
	"unsafe"

	"gviegas/gldraw/driver"
)

const prefix = "index: "

// Type identifies the width of the unsigned integers that
// make up index data.
// The value of each constant is its size in bytes.
// The zero value is not a valid Type.
type Type int

// Index types.
const (
	U8  Type = 1
	U16 Type = 2
	U32 Type = 4
)

// Size returns the size in bytes of each index of type t.
// It returns 0 if t is not a valid Type.
func (t Type) Size() int {
	switch t {
	case U8, U16, U32:
		return int(t)
	default:
		return 0
	}
}

// IsSupported returns whether index data of type t can be
// used for drawing on a context with the given
// capabilities.
// U8 and U16 index data is supported everywhere. U32
// requires desktop OpenGL or OpenGL ES 3.0.
func (t Type) IsSupported(c driver.Capabilities) bool {
	switch t {
	case U8, U16:
		return true
	case U32:
		return c.Version().AtLeast(driver.GL, 1, 0) ||
			c.Version().AtLeast(driver.GLES, 3, 0)
	default:
		return false
	}
}

// String returns a descriptive string for t.
func (t Type) String() string {
	switch t {
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	default:
		return "[!] invalid Type value"
	}
}

// Index constrains the element types of index data.
// It is satisfied by the three unsigned integer widths
// that index fetch understands, and by nothing else;
// defined types are excluded on purpose.
type Index interface {
	uint8 | uint16 | uint32
}

// TypeOf returns the Type whose elements are of type T.
func TypeOf[T Index]() Type { return Type(unsafe.Sizeof(T(0))) }

// Supported returns whether index data with elements of
// type T can be used for drawing on a context with the
// given capabilities.
func Supported[T Index](c driver.Capabilities) bool {
	return TypeOf[T]().IsSupported(c)
}
