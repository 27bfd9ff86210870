// Package gldriver implements graphics.Driver on top of the go-gl OpenGL 4.1
// core bindings. It is the only package that issues raw GL calls.
package gldriver

import (
	"fmt"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/glshader/graphics"
)

var glInitOnce sync.Once
var glInitErr error

// Driver issues calls against whatever context is current on the calling
// thread.
type Driver struct{}

var _ graphics.Driver = (*Driver)(nil)

// New loads the OpenGL function pointers. A context must be current on the
// calling thread the first time New is called in a process.
func New() (*Driver, error) {
	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", glInitErr)
	}
	return &Driver{}, nil
}

func (d *Driver) CreateShader(kind uint32) uint32 {
	return gl.CreateShader(kind)
}

// ShaderSource uploads source as a C string, so anything after an embedded
// NUL is not seen by the driver.
func (d *Driver) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
}

func (d *Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *Driver) ShaderCompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (d *Driver) ShaderInfoLogLength(shader uint32) int32 {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	return logLength
}

func (d *Driver) ShaderInfoLog(shader uint32, length int32) []byte {
	if length <= 0 {
		return nil
	}
	buf := make([]byte, length)
	gl.GetShaderInfoLog(shader, length, nil, &buf[0])
	return buf
}

func (d *Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// AttribLocation passes name as a C string; callers in package shader reject
// names with embedded NULs before reaching it.
func (d *Driver) AttribLocation(program uint32, name string) int32 {
	cnames, free := gl.Strs(name + "\x00")
	defer free()
	return gl.GetAttribLocation(program, *cnames)
}

func (d *Driver) GetError() uint32 {
	return gl.GetError()
}

// Version returns the GL_VERSION string of the current context.
func (d *Driver) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
