// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"gviegas/gldraw/driver"
	"gviegas/gldraw/index"
	"gviegas/gldraw/pixel"
)

// convTopology converts an index.Topology to a GL
// primitive mode.
func convTopology(t index.Topology) uint32 {
	if t.IsPatches() {
		return gl.PATCHES
	}
	switch t {
	case index.Points:
		return gl.POINTS
	case index.Lines:
		return gl.LINES
	case index.LinesAdjacency:
		return gl.LINES_ADJACENCY
	case index.LineStrip:
		return gl.LINE_STRIP
	case index.LineStripAdjacency:
		return gl.LINE_STRIP_ADJACENCY
	case index.LineLoop:
		return gl.LINE_LOOP
	case index.Triangles:
		return gl.TRIANGLES
	case index.TrianglesAdjacency:
		return gl.TRIANGLES_ADJACENCY
	case index.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case index.TriangleStripAdjacency:
		return gl.TRIANGLE_STRIP_ADJACENCY
	case index.TriangleFan:
		return gl.TRIANGLE_FAN
	}

	// Expected to be unreachable.
	return ^uint32(0)
}

// convType converts an index.Type to a GL index type.
func convType(t index.Type) uint32 {
	switch t {
	case index.U8:
		return gl.UNSIGNED_BYTE
	case index.U16:
		return gl.UNSIGNED_SHORT
	case index.U32:
		return gl.UNSIGNED_INT
	}

	// Expected to be unreachable.
	return ^uint32(0)
}

// convFormat converts a pixel.Format to a GL pixel format
// and type pair.
func convFormat(f pixel.Format) (format, xtype uint32) {
	switch f {
	case pixel.R8:
		return gl.RED, gl.UNSIGNED_BYTE
	case pixel.RG8:
		return gl.RG, gl.UNSIGNED_BYTE
	case pixel.RGB8:
		return gl.RGB, gl.UNSIGNED_BYTE
	case pixel.RGBA8:
		return gl.RGBA, gl.UNSIGNED_BYTE
	case pixel.BGRA8:
		return gl.BGRA, gl.UNSIGNED_BYTE
	case pixel.R16:
		return gl.RED, gl.UNSIGNED_SHORT
	case pixel.RGBA16:
		return gl.RGBA, gl.UNSIGNED_SHORT
	case pixel.R32F:
		return gl.RED, gl.FLOAT
	case pixel.RGBA32F:
		return gl.RGBA, gl.FLOAT
	}

	// Expected to be unreachable.
	return ^uint32(0), ^uint32(0)
}

// convUsage selects the bind target under which a buffer
// with the given usage is manipulated.
func convUsage(usg driver.Usage) uint32 {
	switch {
	case usg&driver.UIndex != 0:
		return gl.ELEMENT_ARRAY_BUFFER
	case usg&driver.UIndirect != 0:
		return gl.DRAW_INDIRECT_BUFFER
	case usg&driver.UPixelPack != 0:
		return gl.PIXEL_PACK_BUFFER
	}
	return gl.COPY_WRITE_BUFFER
}
