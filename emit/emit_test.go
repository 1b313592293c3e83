package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/oslc/lexer"
	"github.com/krotik/oslc/parser"
)

func TestEmitHLSLStruct(t *testing.T) {
	tokens, err := lexer.TokenizeToSlice("t", `struct Vertex {
		var [semantic=position] pos : vec3;
	};`)
	require.NoError(t, err)
	root, err := parser.Parse("t", tokens)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, EmitHLSL(&buf, root))

	out := buf.String()
	assert.True(t, strings.Contains(out, "struct Vertex {"))
	assert.True(t, strings.Contains(out, "float3 pos : POSITION;"))
}

func TestEmitGLSLFunction(t *testing.T) {
	tokens, err := lexer.TokenizeToSlice("t", `function add(a: int, b: int): int {
		return a + b;
	}`)
	require.NoError(t, err)
	root, err := parser.Parse("t", tokens)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, EmitGLSL(&buf, root))

	out := buf.String()
	assert.True(t, strings.Contains(out, "int add(int a, int b) {"))
	assert.True(t, strings.Contains(out, "return a + b;"))
}

func TestEmitMetalTypeNames(t *testing.T) {
	tokens, err := lexer.TokenizeToSlice("t", "var x: vec4 = x;")
	require.NoError(t, err)
	root, err := parser.Parse("t", tokens)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, EmitMetal(&buf, root))

	assert.True(t, strings.Contains(buf.String(), "float4 x"))
}
