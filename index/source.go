// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package index

import "gviegas/gldraw/driver"

// Source describes where the indices used to assemble
// primitives come from, if anywhere.
// It is a closed interface; the only implementations are
// BufferSource, MultidrawArraySource,
// MultidrawElementSource and NoIndicesSource.
// Sources refer to buffer memory through driver.Range
// views and never own it.
type Source interface {
	// Primitives returns the topology that primitive
	// assembly will use.
	Primitives() Topology

	source()
}

// BufferSource is a Source that fetches indices from a
// buffer range.
type BufferSource struct {
	// Buffer is the range holding index data.
	Buffer driver.Range
	// Type is the width of each index.
	Type Type
	// Topology of the assembled primitives.
	Topology Topology
}

// Primitives returns s.Topology.
func (s BufferSource) Primitives() Topology { return s.Topology }

func (BufferSource) source() {}

// MultidrawArraySource is a Source that issues a
// multi-draw of non-indexed commands stored in a buffer
// range.
type MultidrawArraySource struct {
	// Commands is the range holding DrawCommand records.
	Commands driver.Range
	// Topology of the assembled primitives.
	Topology Topology
}

// Primitives returns s.Topology.
func (s MultidrawArraySource) Primitives() Topology { return s.Topology }

func (MultidrawArraySource) source() {}

// MultidrawElementSource is a Source that issues a
// multi-draw of indexed commands stored in a buffer
// range, fetching indices from another range.
type MultidrawElementSource struct {
	// Commands is the range holding DrawIndexedCommand
	// records.
	Commands driver.Range
	// Indices is the range holding index data.
	Indices driver.Range
	// Type is the width of each index.
	Type Type
	// Topology of the assembled primitives.
	Topology Topology
}

// Primitives returns s.Topology.
func (s MultidrawElementSource) Primitives() Topology { return s.Topology }

func (MultidrawElementSource) source() {}

// NoIndicesSource is a Source that uses no index data.
// Primitives are assembled from vertices in the order in
// which they appear in the vertex sources.
type NoIndicesSource struct {
	// Topology of the assembled primitives.
	Topology Topology
}

// Primitives returns s.Topology.
func (s NoIndicesSource) Primitives() Topology { return s.Topology }

func (NoIndicesSource) source() {}

// NoIndices marks a draw as not using index data.
// It exists so that call sites can state the topology
// where an index buffer would otherwise go.
type NoIndices struct {
	Topology Topology
}

// Source returns the NoIndicesSource equivalent of n.
func (n NoIndices) Source() Source {
	return NoIndicesSource{Topology: n.Topology}
}
