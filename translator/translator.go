// Package translator rewrites WebGL2 GLSL into the dialect accepted by the
// current context before it is handed to the driver.
package translator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"

	"github.com/richinsley/glshader/shader"
)

// ErrUnsupportedStage is returned for shader kinds WebGL2 has no notion of.
var ErrUnsupportedStage = errors.New("only vertex and fragment shaders can be translated")

var (
	translatorOnce sync.Once
	translator     *gst.ShaderTranslator
	translatorErr  error
)

// Get returns the process-wide translator, creating it on first use.
func Get() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

func stageName(kind shader.Kind) (string, error) {
	switch kind {
	case shader.Vertex:
		return "vertex", nil
	case shader.Fragment:
		return "fragment", nil
	}
	return "", fmt.Errorf("%v: %w", kind, ErrUnsupportedStage)
}

// Translate converts WebGL2 source for the given kind into ESSL when gles is
// set, or GLSL 4.10 otherwise.
func Translate(source string, kind shader.Kind, gles bool) (string, error) {
	stage, err := stageName(kind)
	if err != nil {
		return "", err
	}

	t, err := Get()
	if err != nil {
		return "", fmt.Errorf("failed to create shader translator: %w", err)
	}

	outputFormat := gst.OutputFormatGLSL410
	if gles {
		outputFormat = gst.OutputFormatESSL
	}
	translated, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, outputFormat)
	if err != nil {
		return "", fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	return translated.Code, nil
}
