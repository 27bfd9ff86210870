package headless

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttribListsAreTerminated(t *testing.T) {
	for name, attrs := range map[string][]int32{
		"config":  configAttribs(),
		"pbuffer": pbufferAttribs(64, 64),
		"context": contextAttribs(),
	} {
		assert.Equal(t, int32(eglNone), attrs[len(attrs)-1], name)
		assert.Equal(t, 1, len(attrs)%2, "%s: key/value pairs plus EGL_NONE", name)
	}
}

func TestPbufferAttribsClampSize(t *testing.T) {
	assert.Equal(t, []int32{eglWidth, 1, eglHeight, 1, eglNone}, pbufferAttribs(0, -5))
	assert.Equal(t, []int32{eglWidth, 320, eglHeight, 240, eglNone}, pbufferAttribs(320, 240))
}

func TestConfigAttribsRequestES3Pbuffer(t *testing.T) {
	attrs := configAttribs()
	values := make(map[int32]int32)
	for i := 0; i+1 < len(attrs); i += 2 {
		values[attrs[i]] = attrs[i+1]
	}
	assert.Equal(t, int32(eglPbufferBit), values[eglSurfaceType])
	assert.Equal(t, int32(eglOpenGLES3Bit), values[eglRenderableType])
	assert.Equal(t, int32(3), contextAttribs()[1])
}
