// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"

	"gviegas/gldraw/driver"
	"gviegas/gldraw/index"
	"gviegas/gldraw/pixel"
)

func TestConvTopology(t *testing.T) {
	for _, x := range [...]struct {
		top  index.Topology
		want uint32
	}{
		{index.Points, gl.POINTS},
		{index.Lines, gl.LINES},
		{index.LinesAdjacency, gl.LINES_ADJACENCY},
		{index.LineStrip, gl.LINE_STRIP},
		{index.LineStripAdjacency, gl.LINE_STRIP_ADJACENCY},
		{index.LineLoop, gl.LINE_LOOP},
		{index.Triangles, gl.TRIANGLES},
		{index.TrianglesAdjacency, gl.TRIANGLES_ADJACENCY},
		{index.TriangleStrip, gl.TRIANGLE_STRIP},
		{index.TriangleStripAdjacency, gl.TRIANGLE_STRIP_ADJACENCY},
		{index.TriangleFan, gl.TRIANGLE_FAN},
		{index.Patches(0), gl.PATCHES},
		{index.Patches(3), gl.PATCHES},
		{index.Patches(16), gl.PATCHES},
		{index.Patches(65535), gl.PATCHES},
		{index.Topology(100), ^uint32(0)},
	} {
		if m := convTopology(x.top); m != x.want {
			t.Fatalf("convTopology(%v):\nhave 0x%x\nwant 0x%x", x.top, m, x.want)
		}
	}
}

func TestConvType(t *testing.T) {
	for _, x := range [...]struct {
		typ  index.Type
		want uint32
	}{
		{index.U8, gl.UNSIGNED_BYTE},
		{index.U16, gl.UNSIGNED_SHORT},
		{index.U32, gl.UNSIGNED_INT},
		{index.Type(0), ^uint32(0)},
		{index.Type(3), ^uint32(0)},
	} {
		if v := convType(x.typ); v != x.want {
			t.Fatalf("convType(%v):\nhave 0x%x\nwant 0x%x", x.typ, v, x.want)
		}
	}
}

func TestConvFormat(t *testing.T) {
	for _, x := range [...]struct {
		f          pixel.Format
		wantFormat uint32
		wantType   uint32
	}{
		{pixel.R8, gl.RED, gl.UNSIGNED_BYTE},
		{pixel.RG8, gl.RG, gl.UNSIGNED_BYTE},
		{pixel.RGB8, gl.RGB, gl.UNSIGNED_BYTE},
		{pixel.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE},
		{pixel.BGRA8, gl.BGRA, gl.UNSIGNED_BYTE},
		{pixel.R16, gl.RED, gl.UNSIGNED_SHORT},
		{pixel.RGBA16, gl.RGBA, gl.UNSIGNED_SHORT},
		{pixel.R32F, gl.RED, gl.FLOAT},
		{pixel.RGBA32F, gl.RGBA, gl.FLOAT},
		{pixel.Format(100), ^uint32(0), ^uint32(0)},
	} {
		format, xtype := convFormat(x.f)
		if format != x.wantFormat || xtype != x.wantType {
			t.Fatalf("convFormat(%v):\nhave 0x%x, 0x%x\nwant 0x%x, 0x%x",
				x.f, format, xtype, x.wantFormat, x.wantType)
		}
	}
}

func TestConvUsage(t *testing.T) {
	for _, x := range [...]struct {
		usg  driver.Usage
		want uint32
	}{
		{driver.UIndex, gl.ELEMENT_ARRAY_BUFFER},
		{driver.UIndex | driver.UCopyDst, gl.ELEMENT_ARRAY_BUFFER},
		{driver.UIndirect, gl.DRAW_INDIRECT_BUFFER},
		{driver.UIndirect | driver.UCopyDst, gl.DRAW_INDIRECT_BUFFER},
		{driver.UPixelPack, gl.PIXEL_PACK_BUFFER},
		{driver.UPixelPack | driver.UCopySrc | driver.UCopyDst, gl.PIXEL_PACK_BUFFER},
		{driver.UGeneric, gl.ELEMENT_ARRAY_BUFFER},
		{driver.UCopySrc, gl.COPY_WRITE_BUFFER},
		{driver.UCopyDst, gl.COPY_WRITE_BUFFER},
		{0, gl.COPY_WRITE_BUFFER},
	} {
		if targ := convUsage(x.usg); targ != x.want {
			t.Fatalf("convUsage(%d):\nhave 0x%x\nwant 0x%x", x.usg, targ, x.want)
		}
	}
}
