// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package index

import (
	"strconv"

	"gviegas/gldraw/driver"
)

// Topology describes how consecutive vertices are
// assembled into primitives.
// The zero value is Points.
type Topology int32

// Topologies that assemble a fixed number of vertices per
// primitive. Patch topologies are created by the Patches
// function instead.
const (
	Points Topology = iota
	Lines
	LinesAdjacency
	LineStrip
	LineStripAdjacency
	LineLoop
	Triangles
	TrianglesAdjacency
	TriangleStrip
	TriangleStripAdjacency
	TriangleFan
	tPatches
)

// Patch topologies store the control-point count in the
// bits above patchShift.
const patchShift = 16

// Patches returns the topology of patch primitives with
// the given number of control points per patch.
// How patches are assembled is defined by the tessellation
// stages. The count is not validated here; backend limits
// on it are exposed by driver.Limits.
func Patches(controlPoints uint16) Topology {
	return tPatches | Topology(controlPoints)<<patchShift
}

// kind strips the control-point bits off t.
func (t Topology) kind() Topology { return t & (1<<patchShift - 1) }

// PatchSize returns the number of control points per
// patch, or 0 if t is not a patch topology.
func (t Topology) PatchSize() uint16 {
	if t.kind() == tPatches {
		return uint16(t >> patchShift)
	}
	return 0
}

// IsPatches returns whether t is a patch topology.
// Unlike PatchSize, it distinguishes Patches(0) from the
// non-patch topologies.
func (t Topology) IsPatches() bool { return t.kind() == tPatches }

// IsSupported returns whether primitives of topology t can
// be drawn on a context with the given capabilities.
// Point, line and triangle topologies without adjacency
// are supported everywhere. Adjacency topologies require
// desktop OpenGL 3.0 or a geometry shader extension.
// Patch topologies require desktop OpenGL 4.0 or the
// tessellation shader extension; the number of control
// points does not affect the result.
func (t Topology) IsSupported(c driver.Capabilities) bool {
	switch t.kind() {
	case Points, Lines, LineStrip, LineLoop, Triangles, TriangleStrip, TriangleFan:
		return true
	case LinesAdjacency, LineStripAdjacency, TrianglesAdjacency, TriangleStripAdjacency:
		return c.Version().AtLeast(driver.GL, 3, 0) ||
			c.Extensions().ARBGeometryShader4 ||
			c.Extensions().EXTGeometryShader4 ||
			c.Extensions().EXTGeometryShader
	case tPatches:
		return c.Version().AtLeast(driver.GL, 4, 0) ||
			c.Extensions().ARBTessellationShader
	default:
		return false
	}
}

// String returns a descriptive string for t.
func (t Topology) String() string {
	switch t.kind() {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LinesAdjacency:
		return "LinesAdjacency"
	case LineStrip:
		return "LineStrip"
	case LineStripAdjacency:
		return "LineStripAdjacency"
	case LineLoop:
		return "LineLoop"
	case Triangles:
		return "Triangles"
	case TrianglesAdjacency:
		return "TrianglesAdjacency"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleStripAdjacency:
		return "TriangleStripAdjacency"
	case TriangleFan:
		return "TriangleFan"
	case tPatches:
		return "Patches(" + strconv.Itoa(int(t.PatchSize())) + ")"
	default:
		return "[!] invalid Topology value"
	}
}
