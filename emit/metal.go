package emit

import (
	"io"

	"github.com/krotik/oslc/ast"
)

func init() {
	typeTable[Metal] = map[string]string{
		"void": "void", "bool": "bool", "int": "int", "uint": "uint",
		"float": "float", "double": "double",
		"vec2": "float2", "vec3": "float3", "vec4": "float4",
		"mat3": "float3x3", "mat4": "float4x4",
	}
	semanticTable[Metal] = map[ast.Semantic]string{
		ast.SemanticPosition: "position",
		ast.SemanticColor:    "color",
	}
}

/*
EmitMetal writes root to w as Metal shader source.
*/
func EmitMetal(w io.Writer, root *ast.Node) error {
	return Emit(w, Metal, root)
}
