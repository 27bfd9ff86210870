package graphics

// Driver is the slice of the OpenGL call surface used to compile shaders and
// query attribute locations. Implementations must be called on the thread
// that owns the current context.
type Driver interface {
	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompileStatus(shader uint32) bool
	// ShaderInfoLogLength reports the info log size including the trailing NUL.
	ShaderInfoLogLength(shader uint32) int32
	// ShaderInfoLog returns length bytes of the info log as written by the driver.
	ShaderInfoLog(shader uint32, length int32) []byte
	DeleteShader(shader uint32)
	AttribLocation(program uint32, name string) int32
	// GetError returns and clears the driver error flag. Zero means no error.
	GetError() uint32
}
