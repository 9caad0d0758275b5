// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package driver

import "strconv"

// API identifies the flavor of the graphics API that a
// context implements.
type API int

// API flavors.
const (
	// Desktop OpenGL.
	GL API = iota
	// OpenGL ES.
	GLES
)

// String returns a descriptive string for a.
func (a API) String() string {
	switch a {
	case GL:
		return "OpenGL"
	case GLES:
		return "OpenGL ES"
	default:
		return "[!] invalid API value"
	}
}

// Version identifies the version of a graphics context,
// qualified by the API flavor it belongs to.
// Versions of different flavors are unordered relative to
// each other.
type Version struct {
	API   API
	Major int
	Minor int
}

// AtLeast returns whether v identifies the given API
// flavor at the given version or a later one.
// It returns false whenever v.API differs from api,
// regardless of the numeric components.
func (v Version) AtLeast(api API, major, minor int) bool {
	if v.API != api {
		return false
	}
	return v.Major > major || v.Major == major && v.Minor >= minor
}

// String returns a descriptive string for v.
func (v Version) String() string {
	return v.API.String() + " " + strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Extensions describes which of the extensions that this
// module cares about are exposed by a context.
// Each field corresponds to an entry in the context's
// extension list.
type Extensions struct {
	ARBGeometryShader4    bool
	EXTGeometryShader4    bool
	EXTGeometryShader     bool
	ARBTessellationShader bool
	ARBPixelBufferObject  bool
	NVPixelBufferObject   bool
	OESElementIndexUint   bool
}

// ParseExtensions creates an Extensions value from a list
// of extension names, as reported by a context.
// Names that do not correspond to an Extensions field are
// ignored.
func ParseExtensions(names []string) (e Extensions) {
	for _, s := range names {
		switch s {
		case "GL_ARB_geometry_shader4":
			e.ARBGeometryShader4 = true
		case "GL_EXT_geometry_shader4":
			e.EXTGeometryShader4 = true
		case "GL_EXT_geometry_shader":
			e.EXTGeometryShader = true
		case "GL_ARB_tessellation_shader":
			e.ARBTessellationShader = true
		case "GL_ARB_pixel_buffer_object":
			e.ARBPixelBufferObject = true
		case "GL_NV_pixel_buffer_object":
			e.NVPixelBufferObject = true
		case "GL_OES_element_index_uint":
			e.OESElementIndexUint = true
		}
	}
	return
}

// Capabilities is the interface that exposes what an
// underlying graphics context is capable of.
// Support predicates take a Capabilities parameter so
// that they can be evaluated without a live context.
type Capabilities interface {
	// Version returns the context's version.
	// It is immutable for the lifetime of the context.
	Version() Version

	// Extensions returns the extensions that the context
	// exposes.
	// It is immutable for the lifetime of the context.
	Extensions() Extensions
}

// Caps is a plain Capabilities value.
// Backends whose capabilities are fixed at open time can
// embed it; tests use it to describe arbitrary contexts.
type Caps struct {
	Ver  Version
	Exts Extensions
}

// Version returns c.Ver.
func (c Caps) Version() Version { return c.Ver }

// Extensions returns c.Exts.
func (c Caps) Extensions() Extensions { return c.Exts }
