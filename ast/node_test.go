package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "DeclarationStruct", DeclarationStruct.String())
	assert.Equal(t, "Unknown", Kind(999).String())
}

func TestSemanticFromName(t *testing.T) {
	s, ok := SemanticFromName("Position")
	assert.True(t, ok)
	assert.Equal(t, SemanticPosition, s)

	_, ok = SemanticFromName("not-a-semantic")
	assert.False(t, ok)
}

func TestNodeStringAndReference(t *testing.T) {
	decl := New(DeclarationVariable, 1, 1)
	decl.Name = "x"
	decl.TypeName = "int"

	ref := New(ExpressionDeclarationReference, 2, 1)
	ref.Name = "x"
	ref.SetReference(decl)

	assert.Nil(t, decl.Reference())
	assert.Same(t, decl, ref.Reference())
	assert.True(t, strings.Contains(ref.String(), "-> DeclarationVariable"))
}

func TestLevelString(t *testing.T) {
	root := New(TranslationUnit, 1, 1)
	child := New(DeclarationEmpty, 1, 1)
	root.AddChild(child)

	out := root.LevelString(0, "  ")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if assert.Len(t, lines, 2) {
		assert.Equal(t, "TranslationUnit", lines[0])
		assert.Equal(t, "  DeclarationEmpty", lines[1])
	}
}
