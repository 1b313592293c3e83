package emit

import (
	"io"

	"github.com/krotik/oslc/ast"
)

func init() {
	typeTable[HLSL] = map[string]string{
		"void": "void", "bool": "bool", "int": "int", "uint": "uint",
		"float": "float", "double": "double",
		"vec2": "float2", "vec3": "float3", "vec4": "float4",
		"mat3": "float3x3", "mat4": "float4x4",
	}
	semanticTable[HLSL] = map[ast.Semantic]string{
		ast.SemanticBinormal:            "BINORMAL",
		ast.SemanticBlendIndices:        "BLENDINDICES",
		ast.SemanticBlendWeight:         "BLENDWEIGHT",
		ast.SemanticColor:               "COLOR",
		ast.SemanticNormal:              "NORMAL",
		ast.SemanticPosition:            "POSITION",
		ast.SemanticPositionTransformed: "POSITIONT",
		ast.SemanticPointSize:           "PSIZE",
		ast.SemanticTangent:             "TANGENT",
		ast.SemanticTextureCoordinates:  "TEXCOORD",
	}
}

/*
EmitHLSL writes root to w as HLSL shader source.
*/
func EmitHLSL(w io.Writer, root *ast.Node) error {
	return Emit(w, HLSL, root)
}
