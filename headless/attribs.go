package headless

// EGL enumerants used to build attribute lists. They are fixed by the EGL
// registry, so the lists can be assembled and checked without cgo.
const (
	eglNone                 = 0x3038
	eglAlphaSize            = 0x3021
	eglBlueSize             = 0x3022
	eglGreenSize            = 0x3023
	eglRedSize              = 0x3024
	eglDepthSize            = 0x3025
	eglSurfaceType          = 0x3033
	eglRenderableType       = 0x3040
	eglHeight               = 0x3056
	eglWidth                = 0x3057
	eglContextClientVersion = 0x3098

	eglPbufferBit   = 0x0001
	eglOpenGLES3Bit = 0x0040
)

// configAttribs selects an RGBA8 + depth24 pbuffer config usable with ES 3.
func configAttribs() []int32 {
	return []int32{
		eglSurfaceType, eglPbufferBit,
		eglRedSize, 8,
		eglGreenSize, 8,
		eglBlueSize, 8,
		eglAlphaSize, 8,
		eglDepthSize, 24,
		eglRenderableType, eglOpenGLES3Bit,
		eglNone,
	}
}

// pbufferAttribs sizes the pbuffer surface. Zero or negative sizes are
// raised to 1, the surface only exists so the context can be made current.
func pbufferAttribs(width, height int) []int32 {
	return []int32{
		eglWidth, int32(max(width, 1)),
		eglHeight, int32(max(height, 1)),
		eglNone,
	}
}

func contextAttribs() []int32 {
	return []int32{
		eglContextClientVersion, 3,
		eglNone,
	}
}
