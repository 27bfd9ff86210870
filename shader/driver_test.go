package shader_test

// fakeDriver is a graphics.Driver that records calls and replays canned
// driver behavior.
type fakeDriver struct {
	nextHandle uint32
	compiled   bool
	infoLog    []byte // includes the trailing NUL
	logLength  int32

	attribs map[string]int32
	errors  []uint32 // consumed front to back by GetError

	created  []uint32
	sources  map[uint32]string
	deleted  []uint32
	getError int
	queried  []string
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		nextHandle: 7,
		sources:    make(map[uint32]string),
		attribs:    make(map[string]int32),
	}
}

// failWith makes the next compile fail with the given log text.
func (f *fakeDriver) failWith(log string) {
	f.compiled = false
	f.infoLog = append([]byte(log), 0)
	f.logLength = int32(len(f.infoLog))
}

func (f *fakeDriver) CreateShader(kind uint32) uint32 {
	h := f.nextHandle
	f.nextHandle++
	f.created = append(f.created, kind)
	return h
}

func (f *fakeDriver) ShaderSource(shader uint32, source string) {
	f.sources[shader] = source
}

func (f *fakeDriver) CompileShader(shader uint32) {}

func (f *fakeDriver) ShaderCompileStatus(shader uint32) bool {
	return f.compiled
}

func (f *fakeDriver) ShaderInfoLogLength(shader uint32) int32 {
	return f.logLength
}

func (f *fakeDriver) ShaderInfoLog(shader uint32, length int32) []byte {
	buf := make([]byte, length)
	copy(buf, f.infoLog)
	return buf
}

func (f *fakeDriver) DeleteShader(shader uint32) {
	f.deleted = append(f.deleted, shader)
}

func (f *fakeDriver) AttribLocation(program uint32, name string) int32 {
	f.queried = append(f.queried, name)
	if loc, ok := f.attribs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeDriver) GetError() uint32 {
	f.getError++
	if len(f.errors) == 0 {
		return 0
	}
	code := f.errors[0]
	f.errors = f.errors[1:]
	return code
}
