// Package shader compiles shaders and looks up vertex attribute locations
// through a graphics.Driver.
package shader

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/richinsley/glshader/graphics"
)

// CompileShader creates a shader object of the given kind, uploads source and
// compiles it. On success the handle is returned and the caller owns it.
//
// On failure with a non-empty info log the shader object is deleted and a
// *CompileError holding the log is returned. When the driver reports an empty
// log, ErrNoInfoLog is returned and the object is left alone, since without a
// valid context it may not exist at all.
//
// CompileShader panics if the driver returns an info log that is not UTF-8.
// The driver sees source only up to its first NUL byte.
func CompileShader(d graphics.Driver, kind Kind, source string) (uint32, error) {
	handle := d.CreateShader(uint32(kind))
	d.ShaderSource(handle, source)
	d.CompileShader(handle)

	if d.ShaderCompileStatus(handle) {
		return handle, nil
	}

	logLength := d.ShaderInfoLogLength(handle)
	if logLength <= 0 {
		return 0, ErrNoInfoLog
	}

	buf := d.ShaderInfoLog(handle, logLength)
	// drop the trailing NUL
	if n := int(logLength) - 1; n < len(buf) {
		buf = buf[:n]
	}
	d.DeleteShader(handle)

	if !utf8.Valid(buf) {
		panic(fmt.Sprintf("shader info log for %v shader %d is not valid utf8", kind, handle))
	}
	return 0, &CompileError{Kind: kind, Log: string(buf)}
}

// AttributeLocation returns the location of the named attribute in a linked
// program. ok is false if the attribute does not exist or the driver raised
// any error during the query; the two cases are not distinguished.
//
// The driver error flag is read and therefore cleared. Do not call this while
// an unrelated driver error may still be pending; use LookupAttribute instead.
//
// A name containing a NUL byte cannot name an attribute and is reported
// absent without querying the driver.
func AttributeLocation(d graphics.Driver, program uint32, name string) (loc uint32, ok bool) {
	if strings.IndexByte(name, 0) >= 0 {
		return 0, false
	}
	id := d.AttribLocation(program, name)
	if d.GetError() != 0 {
		return 0, false
	}
	if id < 0 {
		return 0, false
	}
	return uint32(id), true
}

// LookupAttribute is AttributeLocation with the failure cases separated. A
// driver error already pending before the query is returned as a
// *DriverError with Pending set and the query is not issued. An error raised
// by the query itself is a *DriverError, and a missing attribute wraps
// ErrAttributeNotFound, as does a name containing a NUL byte.
func LookupAttribute(d graphics.Driver, program uint32, name string) (uint32, error) {
	if strings.IndexByte(name, 0) >= 0 {
		return 0, fmt.Errorf("%q: %w", name, ErrAttributeNotFound)
	}
	if code := d.GetError(); code != 0 {
		return 0, &DriverError{Code: code, Pending: true}
	}

	id := d.AttribLocation(program, name)
	if code := d.GetError(); code != 0 {
		return 0, &DriverError{Code: code}
	}
	if id < 0 {
		return 0, fmt.Errorf("%q: %w", name, ErrAttributeNotFound)
	}
	return uint32(id), nil
}
