package emit

import (
	"io"

	"github.com/krotik/oslc/ast"
)

func init() {
	typeTable[GLSL] = map[string]string{
		"void": "void", "bool": "bool", "int": "int", "uint": "uint",
		"float": "float", "double": "double",
		"vec2": "vec2", "vec3": "vec3", "vec4": "vec4",
		"mat3": "mat3", "mat4": "mat4",
	}
	// GLSL has no in-source semantic annotation syntax comparable to
	// HLSL/Metal; field semantics are conveyed by binding layout, which
	// is out of scope for this emitter.
	semanticTable[GLSL] = map[ast.Semantic]string{}
}

/*
EmitGLSL writes root to w as GLSL shader source.
*/
func EmitGLSL(w io.Writer, root *ast.Node) error {
	return Emit(w, GLSL, root)
}
