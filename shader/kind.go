package shader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind selects the pipeline stage a shader is compiled for. Values are the
// OpenGL enumerants and are handed to the driver unchanged.
type Kind uint32

const (
	Vertex         Kind = 0x8B31
	Fragment       Kind = 0x8B30
	Geometry       Kind = 0x8DD9
	TessControl    Kind = 0x8E88
	TessEvaluation Kind = 0x8E87
	Compute        Kind = 0x91B9
)

var kindNames = map[Kind]string{
	Vertex:         "vertex",
	Fragment:       "fragment",
	Geometry:       "geometry",
	TessControl:    "tess_control",
	TessEvaluation: "tess_evaluation",
	Compute:        "compute",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(0x%X)", uint32(k))
}

// ParseKind accepts the names printed by Kind.String.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown shader kind %q", name)
}

var extKinds = map[string]Kind{
	".vert": Vertex,
	".frag": Fragment,
	".geom": Geometry,
	".tesc": TessControl,
	".tese": TessEvaluation,
	".comp": Compute,
}

// KindFromExt maps a file name to a Kind using the glslang extension
// convention (.vert, .frag, .geom, .tesc, .tese, .comp).
func KindFromExt(path string) (Kind, bool) {
	k, ok := extKinds[strings.ToLower(filepath.Ext(path))]
	return k, ok
}
