package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	options "github.com/richinsley/glshader/options"
	"github.com/richinsley/glshader/shader"
)

// stubDriver compiles everything unless failLog is set.
type stubDriver struct {
	failLog string
	kinds   []uint32
	sources []string
	deleted []uint32
}

func (s *stubDriver) CreateShader(kind uint32) uint32 {
	s.kinds = append(s.kinds, kind)
	return uint32(len(s.kinds))
}
func (s *stubDriver) ShaderSource(shader uint32, source string) {
	s.sources = append(s.sources, source)
}
func (s *stubDriver) CompileShader(shader uint32) {}
func (s *stubDriver) ShaderCompileStatus(shader uint32) bool {
	return s.failLog == ""
}
func (s *stubDriver) ShaderInfoLogLength(shader uint32) int32 {
	return int32(len(s.failLog) + 1)
}
func (s *stubDriver) ShaderInfoLog(shader uint32, length int32) []byte {
	return append([]byte(s.failLog), 0)
}
func (s *stubDriver) DeleteShader(shader uint32) {
	s.deleted = append(s.deleted, shader)
}
func (s *stubDriver) AttribLocation(program uint32, name string) int32 {
	return -1
}
func (s *stubDriver) GetError() uint32 {
	return 0
}

func writeShader(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestResolveKind(t *testing.T) {
	opts := options.Defaults()

	kind, err := resolveKind("a.frag", opts)
	require.NoError(t, err)
	assert.Equal(t, shader.Fragment, kind)

	_, err = resolveKind("a.glsl", opts)
	assert.Error(t, err)

	*opts.Kind = "compute"
	kind, err = resolveKind("a.glsl", opts)
	require.NoError(t, err)
	assert.Equal(t, shader.Compute, kind)
}

func TestCheckFileOK(t *testing.T) {
	d := &stubDriver{}
	path := writeShader(t, "blit.vert", "void main() {}")

	require.NoError(t, checkFile(d, path, options.Defaults(), false))
	assert.Equal(t, []uint32{uint32(shader.Vertex)}, d.kinds)
	assert.Equal(t, []uint32{1}, d.deleted, "compiled shader should be released")
}

func TestCheckFileCompileError(t *testing.T) {
	d := &stubDriver{failLog: "0:1(1): error: syntax error"}
	path := writeShader(t, "bad.frag", "void main() {")

	err := checkFile(d, path, options.Defaults(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fragment compile failed")
	assert.Contains(t, err.Error(), "0:1(1): error: syntax error")

	var ce *shader.CompileError
	assert.True(t, errors.As(err, &ce))
}

func TestCheckFileMissing(t *testing.T) {
	err := checkFile(&stubDriver{}, filepath.Join(t.TempDir(), "none.vert"), options.Defaults(), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckFileTranslates(t *testing.T) {
	orig := translate
	defer func() { translate = orig }()

	var gotGLES bool
	translate = func(source string, kind shader.Kind, gles bool) (string, error) {
		gotGLES = gles
		return "#version 300 es\n" + source, nil
	}

	d := &stubDriver{}
	opts := options.Defaults()
	*opts.WebGL = true
	path := writeShader(t, "image.frag", "void main() {}")

	require.NoError(t, checkFile(d, path, opts, true))
	assert.True(t, gotGLES)
	assert.Equal(t, []string{"#version 300 es\nvoid main() {}"}, d.sources)
}
