// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"errors"
)

func newErr(reason string) error {
	return errors.New("gltf: " + reason)
}

// componentSize returns the size in bytes of a
// componentType value, or 0 if the value is invalid.
func componentSize(componentType int64) int64 {
	switch componentType {
	case BYTE, UNSIGNED_BYTE:
		return 1
	case SHORT, UNSIGNED_SHORT:
		return 2
	case UNSIGNED_INT, FLOAT:
		return 4
	default:
		return 0
	}
}

// typeCount returns the number of components of a type
// value, or 0 if the value is invalid.
func typeCount(typ string) int64 {
	switch typ {
	case SCALAR:
		return 1
	case VEC2:
		return 2
	case VEC3:
		return 3
	case VEC4:
		return 4
	case MAT2:
		return 4
	case MAT3:
		return 9
	case MAT4:
		return 16
	default:
		return 0
	}
}

// Check checks that f is valid glTF.
// Only the decoded subset is considered.
func (f *GLTF) Check() error {
	for i := range f.BufferViews {
		if err := f.BufferViews[i].Check(f); err != nil {
			return err
		}
	}
	for i := range f.Accessors {
		if err := f.Accessors[i].Check(f); err != nil {
			return err
		}
	}
	for i := range f.Meshes {
		prims := f.Meshes[i].Primitives
		if len(prims) < 1 {
			return newErr("invalid Mesh.Primitives length")
		}
		for j := range prims {
			if err := prims[j].Check(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Check checks that v is valid glTF.bufferViews' element.
func (v *BufferView) Check(gltf *GLTF) error {
	if v.Buffer < 0 || v.Buffer >= int64(len(gltf.Buffers)) {
		return newErr("invalid BufferView.Buffer index")
	}
	if v.ByteOffset < 0 {
		return newErr("invalid BufferView.ByteOffset value")
	}
	if v.ByteLength < 1 {
		return newErr("invalid BufferView.ByteLength value")
	}
	if n := gltf.Buffers[v.Buffer].ByteLength; v.ByteOffset+v.ByteLength > n {
		return newErr("BufferView range exceeds Buffer.ByteLength")
	}
	if s := v.ByteStride; s != 0 && (s < 4 || s > 252 || s%4 != 0) {
		return newErr("invalid BufferView.ByteStride value")
	}
	return nil
}

// Check checks that a is valid glTF.accessors' element.
func (a *Accessor) Check(gltf *GLTF) error {
	if a.ByteOffset < 0 {
		return newErr("invalid Accessor.ByteOffset value")
	}
	if componentSize(a.ComponentType) == 0 {
		return newErr("invalid Accessor.ComponentType value")
	}
	if a.Count < 1 {
		return newErr("invalid Accessor.Count value")
	}
	if typeCount(a.Type) == 0 {
		return newErr("invalid Accessor.Type value")
	}
	if a.BufferView != nil {
		idx := *a.BufferView
		if idx < 0 || idx >= int64(len(gltf.BufferViews)) {
			return newErr("invalid Accessor.BufferView index")
		}
		view := &gltf.BufferViews[idx]
		size := componentSize(a.ComponentType) * typeCount(a.Type)
		stride := view.ByteStride
		if stride == 0 {
			stride = size
		}
		if a.ByteOffset+stride*(a.Count-1)+size > view.ByteLength {
			return newErr("Accessor range exceeds BufferView.ByteLength")
		}
	}

	if s := a.Sparse; s != nil {
		if s.Count < 1 || s.Count > a.Count {
			return newErr("invalid Accessor.Sparse.Count value")
		}

		if s.Indices.BufferView < 0 || s.Indices.BufferView >= int64(len(gltf.BufferViews)) {
			return newErr("invalid Accessor.Sparse.Indices.BufferView index")
		}
		if s.Indices.ByteOffset < 0 {
			return newErr("invalid Accessor.Sparse.Indices.ByteOffset value")
		}
		switch s.Indices.ComponentType {
		case UNSIGNED_BYTE, UNSIGNED_SHORT, UNSIGNED_INT:
		default:
			return newErr("invalid Accessor.Sparse.Indices.ComponentType value")
		}

		if s.Values.BufferView < 0 || s.Values.BufferView >= int64(len(gltf.BufferViews)) {
			return newErr("invalid Accessor.Sparse.Values.BufferView index")
		}
		if s.Values.ByteOffset < 0 {
			return newErr("invalid Accessor.Sparse.Values.ByteOffset value")
		}
	}
	return nil
}

// Check checks that p is valid glTF.meshes[].primitives'
// element.
func (p *Primitive) Check(gltf *GLTF) error {
	if len(p.Attributes) < 1 {
		return newErr("invalid Primitive.Attributes length")
	}
	for _, idx := range p.Attributes {
		if idx < 0 || idx >= int64(len(gltf.Accessors)) {
			return newErr("invalid Primitive.Attributes index")
		}
	}
	if i := p.Indices; i != nil && (*i < 0 || *i >= int64(len(gltf.Accessors))) {
		return newErr("invalid Primitive.Indices index")
	}
	if m := p.Mode; m != nil && (*m < POINTS || *m > TRIANGLE_FAN) {
		return newErr("invalid Primitive.Mode value")
	}
	return nil
}
