// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"gviegas/gldraw/driver"
	"gviegas/gldraw/index"
)

// Draw issues the draw call described by src using ctx.
// ctx must have been opened by this package's driver, and
// the vertex fetch state must already be bound; vertices
// gives the number of vertices to draw when src carries no
// index data of its own.
// It fails when the context does not support the source's
// topology or index type, or when an indexed source
// carries an invalid index type.
func Draw(ctx driver.Context, src index.Source, vertices int) error {
	c, ok := ctx.(*context)
	if !ok {
		return errors.New("gl: context not owned by this driver")
	}
	top := src.Primitives()
	if !top.IsSupported(c) {
		return errors.New("gl: " + top.String() + " topology not supported")
	}
	var typ index.Type
	var indexed bool
	switch s := src.(type) {
	case index.BufferSource:
		typ = s.Type
		indexed = true
	case index.MultidrawElementSource:
		typ = s.Type
		indexed = true
	}
	if indexed {
		if typ.Size() == 0 {
			return errors.New("gl: invalid index type in source")
		}
		if !typ.IsSupported(c) {
			return errors.New("gl: " + typ.String() + " index type not supported")
		}
	}
	drawSource(src, vertices)
	return checkError()
}

// drawSource dispatches on the source variant.
// Each variant has its own backend entry point and buffer
// bindings; resolving the branch here keeps the decision
// out of state setup.
func drawSource(src index.Source, vertices int) {
	switch s := src.(type) {
	case index.BufferSource:
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.Buffer.Buffer.ID())
		setPatchSize(s.Topology)
		count := int32(s.Buffer.Size / int64(s.Type.Size()))
		gl.DrawElements(convTopology(s.Topology), count, convType(s.Type), gl.PtrOffset(int(s.Buffer.Off)))
	case index.MultidrawArraySource:
		gl.BindBuffer(gl.DRAW_INDIRECT_BUFFER, s.Commands.Buffer.ID())
		setPatchSize(s.Topology)
		mode := convTopology(s.Topology)
		sz := int64(unsafe.Sizeof(index.DrawCommand{}))
		for off := s.Commands.Off; off < s.Commands.End(); off += sz {
			gl.DrawArraysIndirect(mode, gl.PtrOffset(int(off)))
		}
	case index.MultidrawElementSource:
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.Indices.Buffer.ID())
		gl.BindBuffer(gl.DRAW_INDIRECT_BUFFER, s.Commands.Buffer.ID())
		setPatchSize(s.Topology)
		mode := convTopology(s.Topology)
		xtype := convType(s.Type)
		sz := int64(unsafe.Sizeof(index.DrawIndexedCommand{}))
		for off := s.Commands.Off; off < s.Commands.End(); off += sz {
			gl.DrawElementsIndirect(mode, xtype, gl.PtrOffset(int(off)))
		}
	case index.NoIndicesSource:
		setPatchSize(s.Topology)
		gl.DrawArrays(convTopology(s.Topology), 0, int32(vertices))
	}
}

// setPatchSize updates the patch control-point count when
// drawing patch primitives.
func setPatchSize(t index.Topology) {
	if n := t.PatchSize(); n > 0 {
		gl.PatchParameteri(gl.PATCH_VERTICES, int32(n))
	}
}
