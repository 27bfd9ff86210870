package main

import (
	"fmt"
	"os"

	"github.com/richinsley/glshader/graphics"
	options "github.com/richinsley/glshader/options"
	"github.com/richinsley/glshader/shader"
	xlate "github.com/richinsley/glshader/translator"
)

// translate is swapped out in tests.
var translate = xlate.Translate

func resolveKind(path string, opts *options.CheckOptions) (shader.Kind, error) {
	if opts.Kind != nil && *opts.Kind != "" {
		return shader.ParseKind(*opts.Kind)
	}
	kind, ok := shader.KindFromExt(path)
	if !ok {
		return 0, fmt.Errorf("cannot infer shader kind from %q, use -kind", path)
	}
	return kind, nil
}

// checkFile compiles a single shader file and releases the resulting shader
// object. The returned error is the driver's diagnostic when compilation
// fails.
func checkFile(d graphics.Driver, path string, opts *options.CheckOptions, gles bool) error {
	kind, err := resolveKind(path, opts)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read shader: %w", err)
	}
	source := string(src)

	if opts.WebGL != nil && *opts.WebGL {
		source, err = translate(source, kind, gles)
		if err != nil {
			return err
		}
	}

	handle, err := shader.CompileShader(d, kind, source)
	if err != nil {
		return fmt.Errorf("%v compile failed:\n%w", kind, err)
	}
	d.DeleteShader(handle)
	return nil
}
