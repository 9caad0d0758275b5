// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// quadJSON describes two triangles covering a unit quad.
// The first primitive indexes four corner positions; the
// second draws the positions directly as a strip.
const quadJSON = `{
	"asset": {"version": "2.0", "generator": "gldraw test suite"},
	"buffers": [{"byteLength": 44}],
	"bufferViews": [
		{"buffer": 0, "byteOffset": 0, "byteLength": 32, "target": 34962},
		{"buffer": 0, "byteOffset": 32, "byteLength": 12, "target": 34963}
	],
	"accessors": [
		{"bufferView": 0, "componentType": 5126, "count": 4, "type": "VEC2"},
		{"bufferView": 1, "componentType": 5123, "count": 6, "type": "SCALAR"}
	],
	"meshes": [{
		"primitives": [
			{"attributes": {"POSITION": 0}, "indices": 1},
			{"attributes": {"POSITION": 0}, "mode": 5}
		]
	}]
}`

// quadIndices is the index data that quadBin stores at
// byte offset 32.
var quadIndices = [6]uint16{0, 1, 2, 2, 1, 3}

// quadBin lays out the binary buffer that quadJSON's
// buffer views refer to.
func quadBin() []byte {
	bin := make([]byte, 44)
	pos := [...]float32{0, 0, 1, 0, 0, 1, 1, 1}
	for i, p := range pos {
		binary.LittleEndian.PutUint32(bin[i*4:], math.Float32bits(p))
	}
	for i, x := range quadIndices {
		binary.LittleEndian.PutUint16(bin[32+i*2:], x)
	}
	return bin
}

// quadDoc decodes quadJSON into a fresh document.
func quadDoc(t *testing.T) *GLTF {
	t.Helper()
	gltf, err := Decode(strings.NewReader(quadJSON))
	require.NoError(t, err)
	return gltf
}

// glbBlob assembles a GLB blob holding the given JSON
// document and binary buffer. A nil bin means no BIN
// chunk at all.
func glbBlob(t *testing.T, doc string, bin []byte) []byte {
	t.Helper()
	js := []byte(doc)
	for len(js)%4 != 0 {
		js = append(js, ' ')
	}
	var pad []byte
	pad = append(pad, bin...)
	for len(pad)%4 != 0 {
		pad = append(pad, 0)
	}
	n := 12 + 8 + len(js)
	if bin != nil {
		n += 8 + len(pad)
	}
	var b bytes.Buffer
	put := func(x uint32) {
		require.NoError(t, binary.Write(&b, binary.LittleEndian, x))
	}
	put(magic)
	put(2)
	put(uint32(n))
	put(uint32(len(js)))
	put(typeJSON)
	b.Write(js)
	if bin != nil {
		put(uint32(len(pad)))
		put(typeBIN)
		b.Write(pad)
	}
	return b.Bytes()
}
