//go:build linux

package headless

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/richinsley/glshader/graphics"
)

/*
#cgo LDFLAGS: -lEGL -lGLESv2
#include <EGL/egl.h>
#include <EGL/eglext.h>

// Go doesn't have a great way to call function pointers from C,
// so we'll create simple wrappers for the extension functions.
static PFNEGLQUERYDEVICESEXTPROC eglQueryDevicesEXT_ptr = NULL;
static PFNEGLGETPLATFORMDISPLAYEXTPROC eglGetPlatformDisplayEXT_ptr = NULL;

static void initialize_egl_extension_pointers() {
    eglQueryDevicesEXT_ptr = (PFNEGLQUERYDEVICESEXTPROC) eglGetProcAddress("eglQueryDevicesEXT");
    eglGetPlatformDisplayEXT_ptr = (PFNEGLGETPLATFORMDISPLAYEXTPROC) eglGetProcAddress("eglGetPlatformDisplayEXT");
}

static EGLDisplay get_platform_display(EGLenum platform, void *native_display, const EGLint *attrib_list) {
    if (eglGetPlatformDisplayEXT_ptr) {
        return eglGetPlatformDisplayEXT_ptr(platform, native_display, attrib_list);
    }
    return EGL_NO_DISPLAY;
}

static EGLBoolean query_devices(EGLint max_devices, EGLDeviceEXT *devices, EGLint *num_devices) {
    if (eglQueryDevicesEXT_ptr) {
        return eglQueryDevicesEXT_ptr(max_devices, devices, num_devices);
    }
    return EGL_FALSE;
}
*/
import "C"

// Headless is an OpenGL ES 3 context bound to a pbuffer surface. It needs no
// window system, which makes it usable in CI containers.
type Headless struct {
	display C.EGLDisplay
	context C.EGLContext
	surface C.EGLSurface
	cleanup releaser
}

var _ graphics.Context = (*Headless)(nil)

func defaultDisplay() (C.EGLDisplay, error) {
	display := C.eglGetDisplay(C.EGLNativeDisplayType(C.EGL_DEFAULT_DISPLAY))
	if display == C.EGLDisplay(C.EGL_NO_DISPLAY) {
		return display, fmt.Errorf("eglGetDisplay(EGL_DEFAULT_DISPLAY) failed")
	}
	return display, nil
}

// getEGLDisplay prefers a display on an enumerated device, which works without
// an X or Wayland server (GPU containers), and falls back to the default
// display when EGL_EXT_device_query is missing.
func getEGLDisplay() (C.EGLDisplay, error) {
	C.initialize_egl_extension_pointers()

	var numDevices C.EGLint
	if C.query_devices(0, nil, &numDevices) == C.EGL_FALSE || numDevices == 0 {
		log.Println("EGL device enumeration unavailable, using EGL_DEFAULT_DISPLAY")
		return defaultDisplay()
	}

	devices := make([]C.EGLDeviceEXT, numDevices)
	if C.query_devices(numDevices, &devices[0], &numDevices) == C.EGL_FALSE {
		return C.EGLDisplay(C.EGL_NO_DISPLAY), fmt.Errorf("failed to query %d EGL devices", len(devices))
	}

	for i, dev := range devices[:numDevices] {
		display := C.get_platform_display(C.EGL_PLATFORM_DEVICE_EXT, unsafe.Pointer(dev), nil)
		if display != C.EGLDisplay(C.EGL_NO_DISPLAY) {
			log.Printf("Using EGL device %d of %d", i, numDevices)
			return display, nil
		}
	}
	return C.EGLDisplay(C.EGL_NO_DISPLAY), fmt.Errorf("none of %d EGL devices has a usable display", numDevices)
}

func eglAttribs(attrs []int32) []C.EGLint {
	out := make([]C.EGLint, len(attrs))
	for i, a := range attrs {
		out[i] = C.EGLint(a)
	}
	return out
}

// NewHeadless creates the context and makes it current on the calling thread.
// Anything acquired before a failing step is released before returning.
func NewHeadless(width, height int) (*Headless, error) {
	h := &Headless{}
	if err := h.init(width, height); err != nil {
		h.cleanup.release()
		return nil, err
	}
	return h, nil
}

func (h *Headless) init(width, height int) error {
	display, err := getEGLDisplay()
	if err != nil {
		return fmt.Errorf("failed to get EGL display: %w", err)
	}

	var major, minor C.EGLint
	if C.eglInitialize(display, &major, &minor) == C.EGL_FALSE {
		return fmt.Errorf("failed to initialize EGL")
	}
	h.display = display
	h.cleanup.push(func() { C.eglTerminate(display) })
	log.Printf("EGL Initialized. Version: %d.%d", major, minor)

	if C.eglBindAPI(C.EGL_OPENGL_ES_API) == C.EGL_FALSE {
		return fmt.Errorf("failed to bind the OpenGL ES API")
	}

	cfgAttribs := eglAttribs(configAttribs())
	var config C.EGLConfig
	var numConfig C.EGLint
	if C.eglChooseConfig(display, &cfgAttribs[0], &config, 1, &numConfig) == C.EGL_FALSE || numConfig == 0 {
		return fmt.Errorf("failed to choose EGL config")
	}

	pbAttribs := eglAttribs(pbufferAttribs(width, height))
	surface := C.eglCreatePbufferSurface(display, config, &pbAttribs[0])
	if surface == C.EGLSurface(C.EGL_NO_SURFACE) {
		return fmt.Errorf("failed to create Pbuffer surface")
	}
	h.surface = surface
	h.cleanup.push(func() { C.eglDestroySurface(display, surface) })

	ctxAttribs := eglAttribs(contextAttribs())
	context := C.eglCreateContext(display, config, C.EGLContext(C.EGL_NO_CONTEXT), &ctxAttribs[0])
	if context == C.EGLContext(C.EGL_NO_CONTEXT) {
		return fmt.Errorf("failed to create EGL context")
	}
	h.context = context
	h.cleanup.push(func() { C.eglDestroyContext(display, context) })

	if C.eglMakeCurrent(display, surface, surface, context) == C.EGL_FALSE {
		return fmt.Errorf("failed to make EGL context current")
	}
	h.cleanup.push(h.DetachCurrent)
	return nil
}

// MakeCurrent makes the context current for the calling goroutine.
func (h *Headless) MakeCurrent() {
	C.eglMakeCurrent(h.display, h.surface, h.surface, h.context)
}

// DetachCurrent makes no context current on the calling thread.
func (h *Headless) DetachCurrent() {
	C.eglMakeCurrent(h.display, C.EGLSurface(C.EGL_NO_SURFACE), C.EGLSurface(C.EGL_NO_SURFACE), C.EGLContext(C.EGL_NO_CONTEXT))
}

// IsGLES always reports true: the API is bound to OpenGL ES before the
// context is created.
func (h *Headless) IsGLES() bool {
	return true
}

// Shutdown detaches the context, destroys it along with its surface and
// terminates the display connection.
func (h *Headless) Shutdown() {
	h.cleanup.release()
}
