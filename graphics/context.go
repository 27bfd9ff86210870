package graphics

// Context defines the interface for an OpenGL context.
type Context interface {
	// MakeCurrent binds the context to the calling OS thread.
	MakeCurrent()
	// DetachCurrent makes no context current on the calling thread.
	DetachCurrent()
	IsGLES() bool
	Shutdown()
}
