// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package gl implements driver interfaces using the
// OpenGL API.
package gl

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"gviegas/gldraw/driver"
)

const driverName = "opengl"

// Driver implements driver.Driver.
//
// The driver does not create OpenGL contexts; the embedder
// makes one current before calling Open and keeps it
// current on the same locked thread for every call into
// the Context and the resources it creates.
type Driver struct {
	ctx *context
}

func init() {
	driver.Register(&Driver{})
}

// Open initializes the driver.
// An OpenGL context must be current on the calling
// thread.
func (d *Driver) Open() (driver.Context, error) {
	if d.ctx != nil {
		return d.ctx, nil
	}
	if err := gl.Init(); err != nil {
		return nil, err
	}
	ver, err := parseVersion(gl.GoStr(gl.GetString(gl.VERSION)))
	if err != nil {
		return nil, err
	}
	d.ctx = &context{
		d: d,
		caps: driver.Caps{
			Ver:  ver,
			Exts: driver.ParseExtensions(queryExtensions(ver)),
		},
		lim: queryLimits(ver),
	}
	return d.ctx, nil
}

// Name returns the driver name.
func (d *Driver) Name() string { return driverName }

// Close deinitializes the driver.
// The OpenGL context itself belongs to the embedder and
// is left as is.
func (d *Driver) Close() {
	if d == nil {
		return
	}
	*d = Driver{}
}

// context implements driver.Context.
type context struct {
	d    *Driver
	caps driver.Caps
	lim  driver.Limits
}

// Version returns the version of the current context.
func (c *context) Version() driver.Version { return c.caps.Ver }

// Extensions returns the extensions that the current
// context advertises.
func (c *context) Extensions() driver.Extensions { return c.caps.Exts }

// Driver returns the Driver that owns the context.
func (c *context) Driver() driver.Driver { return c.d }

// Limits returns the implementation limits.
func (c *context) Limits() driver.Limits { return c.lim }

// canReadBack reports whether the context can copy buffer
// memory back to the host.
// Embedded profiles lack glGetBufferSubData.
func (c *context) canReadBack() bool { return c.caps.Ver.API == driver.GL }

// parseVersion extracts the API and version from a
// GL_VERSION string.
// Desktop strings start with "major.minor"; embedded ones
// prefix it with "OpenGL ES " ("OpenGL ES-CM " on 1.x).
func parseVersion(s string) (driver.Version, error) {
	api := driver.GL
	if rest, ok := strings.CutPrefix(s, "OpenGL ES-CM "); ok {
		api = driver.GLES
		s = rest
	} else if rest, ok := strings.CutPrefix(s, "OpenGL ES "); ok {
		api = driver.GLES
		s = rest
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return driver.Version{}, errors.New("gl: malformed version string: " + s)
	}
	major, err := strconv.Atoi(s[:dot])
	if err != nil {
		return driver.Version{}, errors.New("gl: malformed version string: " + s)
	}
	s = s[dot+1:]
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	minor, err := strconv.Atoi(s[:end])
	if err != nil {
		return driver.Version{}, errors.New("gl: malformed version string")
	}
	return driver.Version{API: api, Major: major, Minor: minor}, nil
}

// queryExtensions lists the extension names that the
// current context advertises.
func queryExtensions(ver driver.Version) []string {
	if ver.AtLeast(driver.GL, 3, 0) || ver.AtLeast(driver.GLES, 3, 0) {
		var n int32
		gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
		names := make([]string, 0, n)
		for i := int32(0); i < n; i++ {
			names = append(names, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
		}
		return names
	}
	// Older contexts advertise a single space-separated
	// string instead.
	return strings.Fields(gl.GoStr(gl.GetString(gl.EXTENSIONS)))
}

// queryLimits fetches the implementation limits of the
// current context.
func queryLimits(ver driver.Version) driver.Limits {
	lim := driver.Limits{
		// Index fetch accepts the whole type range.
		MaxIndexValue: ^uint32(0),
		// Multi-draws dispatch one command at a time,
		// so no backend limit applies.
		MaxDrawCount: 1 << 20,
	}
	if ver.AtLeast(driver.GL, 4, 0) {
		var n int32
		gl.GetIntegerv(gl.MAX_PATCH_VERTICES, &n)
		lim.MaxPatchVertices = int(n)
	}
	return lim
}

// checkError converts the error state of the current
// context into a driver error.
func checkError() error {
	switch e := gl.GetError(); e {
	case gl.NO_ERROR:
		return nil
	case gl.OUT_OF_MEMORY:
		return driver.ErrNoDeviceMemory
	default:
		return errors.New("gl: error 0x" + strconv.FormatUint(uint64(e), 16))
	}
}
