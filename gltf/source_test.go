// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gviegas/gldraw/driver/null"
	"gviegas/gldraw/index"
)

func TestPrimitiveTopology(t *testing.T) {
	mode := func(m int64) *Primitive { return &Primitive{Mode: &m} }

	for _, tc := range []struct {
		prim *Primitive
		want index.Topology
	}{
		{&Primitive{}, index.Triangles},
		{mode(POINTS), index.Points},
		{mode(LINES), index.Lines},
		{mode(LINE_LOOP), index.LineLoop},
		{mode(LINE_STRIP), index.LineStrip},
		{mode(TRIANGLES), index.Triangles},
		{mode(TRIANGLE_STRIP), index.TriangleStrip},
		{mode(TRIANGLE_FAN), index.TriangleFan},
	} {
		top, err := tc.prim.Topology()
		require.NoError(t, err)
		assert.Equal(t, tc.want, top)
	}

	for _, m := range []int64{-1, 7, 14} {
		_, err := mode(m).Topology()
		assert.Error(t, err, "mode %d", m)
	}
}

func TestAccessorIndexType(t *testing.T) {
	for _, tc := range []struct {
		componentType int64
		want          index.Type
	}{
		{UNSIGNED_BYTE, index.U8},
		{UNSIGNED_SHORT, index.U16},
		{UNSIGNED_INT, index.U32},
	} {
		acc := Accessor{ComponentType: tc.componentType}
		typ, err := acc.IndexType()
		require.NoError(t, err)
		assert.Equal(t, tc.want, typ)
	}

	for _, ct := range []int64{BYTE, SHORT, FLOAT, 0} {
		acc := Accessor{ComponentType: ct}
		_, err := acc.IndexType()
		assert.Error(t, err, "componentType %d", ct)
	}
}

func TestIndexData(t *testing.T) {
	gltf := quadDoc(t)
	bin := quadBin()

	typ, top, data, err := IndexData(gltf, bin, &gltf.Meshes[0].Primitives[0])
	require.NoError(t, err)
	assert.Equal(t, index.U16, typ)
	assert.Equal(t, index.Triangles, top)
	assert.Equal(t, bin[32:44], data)

	for _, tc := range []struct {
		name string
		mut  func(*GLTF)
	}{
		{"bad mode", func(f *GLTF) { m := int64(8); f.Meshes[0].Primitives[0].Mode = &m }},
		{"non-indexed", func(f *GLTF) { f.Meshes[0].Primitives[0].Indices = nil }},
		{"bad indices", func(f *GLTF) { *f.Meshes[0].Primitives[0].Indices = 9 }},
		{"float indices", func(f *GLTF) { f.Accessors[1].ComponentType = FLOAT }},
		{"signed indices", func(f *GLTF) { f.Accessors[1].ComponentType = SHORT }},
		{"non-scalar", func(f *GLTF) { f.Accessors[1].Type = VEC2 }},
		{"bad count", func(f *GLTF) { f.Accessors[1].Count = 0 }},
		{"sparse", func(f *GLTF) { f.Accessors[1].Sparse = new(Sparse) }},
		{"no view", func(f *GLTF) { f.Accessors[1].BufferView = nil }},
		{"bad view", func(f *GLTF) { *f.Accessors[1].BufferView = 5 }},
		{"wrong buffer", func(f *GLTF) { f.BufferViews[1].Buffer = 1 }},
		{"strided view", func(f *GLTF) { f.BufferViews[1].ByteStride = 4 }},
		{"view past bin", func(f *GLTF) { f.BufferViews[1].ByteLength = 16 }},
		{"accessor past view", func(f *GLTF) { f.Accessors[1].Count = 8 }},
		{"accessor offset past view", func(f *GLTF) { f.Accessors[1].ByteOffset = 4 }},
	} {
		gltf := quadDoc(t)
		tc.mut(gltf)
		_, _, _, err := IndexData(gltf, bin, &gltf.Meshes[0].Primitives[0])
		assert.Error(t, err, tc.name)
	}

	// Short binary buffer.
	_, _, _, err = IndexData(gltf, bin[:40], &gltf.Meshes[0].Primitives[0])
	assert.Error(t, err)
}

func TestIndexSource(t *testing.T) {
	var d null.Driver
	ctx, err := d.Open()
	require.NoError(t, err)
	defer d.Close()

	gltf := quadDoc(t)
	bin := quadBin()

	src, buf, err := IndexSource(ctx, gltf, bin, &gltf.Meshes[0].Primitives[0])
	require.NoError(t, err)
	require.NotNil(t, buf)
	defer buf.Destroy()
	require.IsType(t, index.BufferSource{}, src)

	bs := src.(index.BufferSource)
	assert.Equal(t, index.U16, bs.Type)
	assert.Equal(t, index.Triangles, bs.Topology)
	assert.Equal(t, index.Triangles, src.Primitives())
	assert.Equal(t, buf, bs.Buffer.Buffer)
	assert.Equal(t, int64(0), bs.Buffer.Off)
	assert.Equal(t, int64(12), bs.Buffer.Size)

	data, ok := buf.ReadBack(0, buf.Cap())
	require.True(t, ok)
	assert.Equal(t, bin[32:44], data)

	src, buf, err = IndexSource(ctx, gltf, bin, &gltf.Meshes[0].Primitives[1])
	require.NoError(t, err)
	assert.Nil(t, buf)
	require.IsType(t, index.NoIndicesSource{}, src)
	assert.Equal(t, index.TriangleStrip, src.Primitives())

	f := quadDoc(t)
	f.Accessors[1].ComponentType = FLOAT
	src, buf, err = IndexSource(ctx, f, bin, &f.Meshes[0].Primitives[0])
	assert.Error(t, err)
	assert.Nil(t, src)
	assert.Nil(t, buf)

	m := int64(9)
	f.Meshes[0].Primitives[1].Mode = &m
	f.Meshes[0].Primitives[1].Indices = nil
	_, _, err = IndexSource(ctx, f, bin, &f.Meshes[0].Primitives[1])
	assert.Error(t, err)
}
