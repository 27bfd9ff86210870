package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/richinsley/glshader/gldriver"
	"github.com/richinsley/glshader/glfwcontext"
	"github.com/richinsley/glshader/graphics"
	"github.com/richinsley/glshader/headless"
	options "github.com/richinsley/glshader/options"
)

func init() {
	runtime.LockOSThread()
}

func openContext(opts *options.CheckOptions) (graphics.Context, func(), error) {
	if *opts.Headless {
		h, err := headless.NewHeadless(*opts.Width, *opts.Height)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create headless context: %w", err)
		}
		return h, h.Shutdown, nil
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	c, err := glfwcontext.New(opts)
	if err != nil {
		glfwcontext.TerminateGraphics()
		return nil, nil, fmt.Errorf("failed to create window: %w", err)
	}
	c.MakeCurrent()
	return c, func() {
		c.Shutdown()
		glfwcontext.TerminateGraphics()
	}, nil
}

func main() {
	opts := &options.CheckOptions{
		Kind:     flag.String("kind", "", "Shader kind (vertex, fragment, geometry, tess_control, tess_evaluation, compute); inferred from the file extension if empty"),
		WebGL:    flag.Bool("webgl", false, "Treat sources as WebGL2 GLSL and translate them before compiling"),
		Headless: flag.Bool("headless", os.Getenv("GLSLCHECK_HEADLESS") == "1", "Use an EGL pbuffer context instead of a hidden GLFW window"),
		Width:    flag.Int("width", 64, "Width of the backing surface"),
		Height:   flag.Int("height", 64, "Height of the backing surface"),
		Help:     flag.Bool("help", false, "Show help message"),
		Verbose:  flag.Bool("v", false, "Log the OpenGL version of the context"),
	}
	flag.Parse()

	if *opts.Help || flag.NArg() == 0 {
		fmt.Println("Usage: glslcheck [flags] file...")
		flag.PrintDefaults()
		return
	}

	ctx, closeContext, err := openContext(opts)
	if err != nil {
		log.Fatalf("Error creating OpenGL context: %v", err)
	}

	d, err := gldriver.New()
	if err != nil {
		closeContext()
		log.Fatalf("Error loading OpenGL: %v", err)
	}
	if *opts.Verbose {
		log.Printf("OpenGL version: %s", d.Version())
	}

	failed := 0
	for _, path := range flag.Args() {
		if err := checkFile(d, path, opts, ctx.IsGLES()); err != nil {
			fmt.Printf("%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("%s: OK\n", path)
	}
	closeContext()

	if failed > 0 {
		log.Printf("%d of %d shaders failed to compile", failed, flag.NArg())
		os.Exit(1)
	}
}
