package options

type CheckOptions struct {
	Kind     *string // shader kind override; empty means infer from the file extension
	WebGL    *bool   // translate WebGL2 GLSL to the context's dialect before compiling
	Headless *bool   // use an EGL pbuffer context instead of a hidden GLFW window
	Width    *int
	Height   *int
	Help     *bool
	Verbose  *bool
}

// Defaults returns options with every field set, for callers that do not
// parse flags.
func Defaults() *CheckOptions {
	kind := ""
	webgl := false
	headless := false
	width, height := 64, 64
	help := false
	verbose := false
	return &CheckOptions{
		Kind:     &kind,
		WebGL:    &webgl,
		Headless: &headless,
		Width:    &width,
		Height:   &height,
		Help:     &help,
		Verbose:  &verbose,
	}
}
