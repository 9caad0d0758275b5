// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"gviegas/gldraw/driver"
	"gviegas/gldraw/index"
)

// Topology returns the index.Topology that assembles
// primitives of p.
// glTF restricts primitives to the seven baseline
// topologies; a Mode value outside this set is an error.
func (p *Primitive) Topology() (index.Topology, error) {
	mode := int64(TRIANGLES)
	if p.Mode != nil {
		mode = *p.Mode
	}
	switch mode {
	case POINTS:
		return index.Points, nil
	case LINES:
		return index.Lines, nil
	case LINE_LOOP:
		return index.LineLoop, nil
	case LINE_STRIP:
		return index.LineStrip, nil
	case TRIANGLES:
		return index.Triangles, nil
	case TRIANGLE_STRIP:
		return index.TriangleStrip, nil
	case TRIANGLE_FAN:
		return index.TriangleFan, nil
	}
	return 0, newErr("invalid Primitive.Mode value")
}

// IndexType returns the index.Type of data described by a.
// Accessors that primitives refer to through Indices must
// use one of the unsigned integer component types; any
// other ComponentType value is an error here.
func (a *Accessor) IndexType() (index.Type, error) {
	switch a.ComponentType {
	case UNSIGNED_BYTE:
		return index.U8, nil
	case UNSIGNED_SHORT:
		return index.U16, nil
	case UNSIGNED_INT:
		return index.U32, nil
	}
	return 0, newErr("invalid Accessor.ComponentType for index use")
}

// IndexData returns the index data of prim as a subslice
// of bin, alongside its index type and topology.
// bin must hold the contents of gltf.Buffers[0], which is
// where the BIN chunk of a GLB blob lands (see DecodeGLB).
// Primitives whose index data lives in another buffer are
// not resolved here.
func IndexData(gltf *GLTF, bin []byte, prim *Primitive) (typ index.Type, top index.Topology, data []byte, err error) {
	top, err = prim.Topology()
	if err != nil {
		return
	}
	if prim.Indices == nil {
		err = newErr("non-indexed primitive")
		return
	}
	if i := *prim.Indices; i < 0 || i >= int64(len(gltf.Accessors)) {
		err = newErr("invalid Primitive.Indices index")
		return
	}
	acc := &gltf.Accessors[*prim.Indices]
	typ, err = acc.IndexType()
	if err != nil {
		return
	}
	var reason string
	switch {
	case acc.Type != SCALAR:
		reason = "index accessor is not SCALAR"
	case acc.Count < 1:
		reason = "invalid Accessor.Count value"
	case acc.Sparse != nil:
		reason = "sparse index accessor"
	case acc.BufferView == nil:
		reason = "index accessor has no buffer view"
	case *acc.BufferView < 0, *acc.BufferView >= int64(len(gltf.BufferViews)):
		reason = "invalid Accessor.BufferView index"
	default:
		goto validAccessor
	}
	err = newErr(reason)
	return
validAccessor:
	view := &gltf.BufferViews[*acc.BufferView]
	n := acc.Count * int64(typ.Size())
	switch {
	case view.Buffer != 0:
		reason = "index data stored outside the binary buffer"
	case view.ByteStride != 0:
		reason = "strided index buffer view"
	case view.ByteOffset < 0, view.ByteLength < 1,
		view.ByteOffset+view.ByteLength > int64(len(bin)):
		reason = "buffer view out of bounds"
	case acc.ByteOffset < 0, acc.ByteOffset+n > view.ByteLength:
		reason = "accessor range exceeds buffer view"
	default:
		goto validView
	}
	err = newErr(reason)
	return
validView:
	off := view.ByteOffset + acc.ByteOffset
	data = bin[off : off+n]
	return
}

// IndexSource uploads the index data of prim to a new
// buffer of ctx and returns an index.Source that fetches
// from it.
// The returned driver.Buffer backs the source; the caller
// is responsible for destroying it after the source is no
// longer in use. Non-indexed primitives yield a
// NoIndicesSource and a nil buffer.
func IndexSource(ctx driver.Context, gltf *GLTF, bin []byte, prim *Primitive) (index.Source, driver.Buffer, error) {
	if prim.Indices == nil {
		top, err := prim.Topology()
		if err != nil {
			return nil, nil, err
		}
		return index.NoIndices{Topology: top}.Source(), nil, nil
	}
	typ, top, data, err := IndexData(gltf, bin, prim)
	if err != nil {
		return nil, nil, err
	}
	buf, err := ctx.NewBuffer(int64(len(data)), driver.UIndex|driver.UCopyDst)
	if err != nil {
		return nil, nil, err
	}
	if err := buf.Write(0, data); err != nil {
		buf.Destroy()
		return nil, nil, err
	}
	src := index.BufferSource{
		Buffer:   driver.Slice(buf, 0, int64(len(data))),
		Type:     typ,
		Topology: top,
	}
	return src, buf, nil
}
