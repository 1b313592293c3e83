package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/oslc/ast"
	"github.com/krotik/oslc/lexer"
)

func mustParse(t *testing.T, source string) *ast.Node {
	t.Helper()
	tokens, err := lexer.TokenizeToSlice("t", source)
	require.NoError(t, err)
	root, err := Parse("t", tokens)
	require.NoError(t, err)
	return root
}

func TestParseEmptyDecl(t *testing.T) {
	root := mustParse(t, ";")
	require.Len(t, root.Children, 1)
	assert.Equal(t, ast.DeclarationEmpty, root.Children[0].Kind)
}

func TestParseStructDecl(t *testing.T) {
	root := mustParse(t, `struct Vertex {
		var [semantic=position] pos : vec3;
		var color : vec4;
	};`)

	// the trailing ';' after '}' is its own DeclarationEmpty
	require.Len(t, root.Children, 2)
	s := root.Children[0]
	assert.Equal(t, ast.DeclarationStruct, s.Kind)
	assert.Equal(t, "Vertex", s.Name)
	require.Len(t, s.Children, 2)

	pos := s.Children[0]
	assert.Equal(t, "pos", pos.Name)
	assert.Equal(t, "vec3", pos.TypeName)
	assert.Equal(t, ast.SemanticPosition, pos.Semantic)

	color := s.Children[1]
	assert.Equal(t, "color", color.Name)
	assert.Equal(t, ast.SemanticNone, color.Semantic)
}

func TestParseStructForwardDecl(t *testing.T) {
	root := mustParse(t, "struct Vertex;")
	require.Len(t, root.Children, 1)
	s := root.Children[0]
	assert.Equal(t, ast.DeclarationStruct, s.Kind)
	assert.Empty(t, s.Children)
}

func TestParseEmptyStructError(t *testing.T) {
	_, err := parseErr(t, "struct Vertex {};")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyStruct))
}

func TestParseInvalidSemantic(t *testing.T) {
	_, err := parseErr(t, "struct S { var [semantic=bogus] x : int; };")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSemantic))
}

func TestParseInvalidAttribute(t *testing.T) {
	_, err := parseErr(t, "struct S { var [foo=bar] x : int; };")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAttribute))
}

func parseErr(t *testing.T, source string) (*ast.Node, error) {
	t.Helper()
	tokens, err := lexer.TokenizeToSlice("t", source)
	require.NoError(t, err)
	return Parse("t", tokens)
}

func TestParseFunctionDecl(t *testing.T) {
	root := mustParse(t, `function add(a: int, b: int): int {
		return a + b;
	}`)

	require.Len(t, root.Children, 1)
	fn := root.Children[0]
	assert.Equal(t, ast.DeclarationFunction, fn.Kind)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "int", fn.TypeName)

	require.Len(t, fn.Children, 3)
	assert.Equal(t, ast.DeclarationParameter, fn.Children[0].Kind)
	assert.Equal(t, "a", fn.Children[0].Name)
	assert.Equal(t, ast.DeclarationParameter, fn.Children[1].Kind)
	body := fn.Children[2]
	assert.Equal(t, ast.StatementCompound, body.Kind)
	require.Len(t, body.Children, 1)
	assert.Equal(t, ast.StatementReturn, body.Children[0].Kind)
}

func TestParseFunctionForwardDecl(t *testing.T) {
	root := mustParse(t, "function add(a: int, b: int): int;")
	fn := root.Children[0]
	assert.Equal(t, ast.DeclarationFunction, fn.Kind)
	require.Len(t, fn.Children, 2)
}

func TestParseVariableDecl(t *testing.T) {
	root := mustParse(t, "static const x: int = 1;")
	decl := root.Children[0]
	assert.Equal(t, ast.DeclarationVariable, decl.Kind)
	assert.True(t, decl.IsStatic)
	assert.True(t, decl.IsConst)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, "int", decl.TypeName)
	require.Len(t, decl.Children, 1)
	assert.Equal(t, ast.ExpressionLiteral, decl.Children[0].Kind)
}

func TestParseVariableDeclParenInitializer(t *testing.T) {
	root := mustParse(t, "var x: int(1);")
	decl := root.Children[0]
	require.Len(t, decl.Children, 1)
	assert.Equal(t, ast.ExpressionLiteral, decl.Children[0].Kind)
}

func TestParseTypedefDecl(t *testing.T) {
	root := mustParse(t, "typedef float myfloat;")
	decl := root.Children[0]
	assert.Equal(t, ast.DeclarationTypedef, decl.Kind)
	assert.Equal(t, "float", decl.TypeName)
	assert.Equal(t, "myfloat", decl.Name)
}

func TestParseIfElse(t *testing.T) {
	root := mustParse(t, `function f(): int {
		if (true) {
			return 1;
		} else {
			return 2;
		}
	}`)
	body := root.Children[0].Children[0]
	ifStmt := body.Children[0]
	assert.Equal(t, ast.StatementIf, ifStmt.Kind)
	require.Len(t, ifStmt.Children, 3)
}

func TestParseIfWithoutElse(t *testing.T) {
	root := mustParse(t, `function f(): int {
		if (true) {
			return 1;
		}
	}`)
	ifStmt := root.Children[0].Children[0].Children[0]
	require.Len(t, ifStmt.Children, 2)
}

func TestParseDoWhile(t *testing.T) {
	root := mustParse(t, `function f(): int {
		do {
			;
		} while (true);
	}`)
	doStmt := root.Children[0].Children[0].Children[0]
	assert.Equal(t, ast.StatementDo, doStmt.Kind)
	require.Len(t, doStmt.Children, 2)
	assert.Equal(t, ast.StatementCompound, doStmt.Children[0].Kind)
	assert.Equal(t, ast.ExpressionLiteral, doStmt.Children[1].Kind)
}

func TestParseForLoop(t *testing.T) {
	root := mustParse(t, `function f(): int {
		for (var i: int = 0; i; i = i) {
			break;
		}
	}`)
	forStmt := root.Children[0].Children[0].Children[0]
	assert.Equal(t, ast.StatementFor, forStmt.Kind)
	require.Len(t, forStmt.Children, 4)
	assert.Equal(t, ast.DeclarationVariable, forStmt.Children[0].Kind)
}

func TestParseForLoopEmptySlots(t *testing.T) {
	root := mustParse(t, `function f(): int {
		for (;;) {
			break;
		}
	}`)
	forStmt := root.Children[0].Children[0].Children[0]
	assert.Equal(t, ast.None, forStmt.Children[0].Kind)
	assert.Equal(t, ast.None, forStmt.Children[1].Kind)
	assert.Equal(t, ast.None, forStmt.Children[2].Kind)
}

func TestParseSwitchCase(t *testing.T) {
	root := mustParse(t, `function f(): int {
		switch (1) {
			case 1:
				break;
		}
	}`)
	switchStmt := root.Children[0].Children[0].Children[0]
	assert.Equal(t, ast.StatementSwitch, switchStmt.Kind)
	body := switchStmt.Children[1]
	caseStmt := body.Children[0]
	assert.Equal(t, ast.StatementCase, caseStmt.Kind)
	assert.Equal(t, "1", caseStmt.Value)
}

func TestAssignmentIsLeftAssociative(t *testing.T) {
	root := mustParse(t, "function f(): int { a = b = c; }")
	exprStmt := root.Children[0].Children[0].Children[0]
	assign := exprStmt.Children[0]
	assert.Equal(t, ast.OperatorBinary, assign.Kind)
	// left-associative: outer node's left child is itself the (a = b) node
	left := assign.Children[0]
	assert.Equal(t, ast.OperatorBinary, left.Kind)
}

func TestExpressionPrecedence(t *testing.T) {
	root := mustParse(t, "function f(): int { return 1 + 2 * 3; }")
	ret := root.Children[0].Children[0].Children[0]
	add := ret.Children[0]
	assert.Equal(t, ast.OperatorBinary, add.Kind)
	assert.Equal(t, "+", add.Value)
	assert.Equal(t, ast.ExpressionLiteral, add.Children[0].Kind)
	mul := add.Children[1]
	assert.Equal(t, ast.OperatorBinary, mul.Kind)
	assert.Equal(t, "*", mul.Value)
}

func TestExpressionCallAndSubscript(t *testing.T) {
	root := mustParse(t, "function f(): int { return g(1, 2); }")
	call := root.Children[0].Children[0].Children[0].Children[0]
	assert.Equal(t, ast.ExpressionCall, call.Kind)
	assert.Equal(t, "g", call.Name)
	require.Len(t, call.Children, 2)

	root = mustParse(t, "function f(): int { return arr[0]; }")
	sub := root.Children[0].Children[0].Children[0].Children[0]
	assert.Equal(t, ast.ExpressionArraySubscript, sub.Kind)
	assert.Equal(t, "arr", sub.Name)
}

func TestDeclarationReferenceResolution(t *testing.T) {
	root := mustParse(t, "var i:int=1; var j:int=i;")
	jDecl := root.Children[1]
	ref := jDecl.Children[0]
	assert.Equal(t, ast.ExpressionDeclarationReference, ref.Kind)
	require.NotNil(t, ref.Reference())
	assert.Same(t, root.Children[0], ref.Reference())
}

func TestUndeclaredReferenceStillParses(t *testing.T) {
	root := mustParse(t, "var j:int=undeclared;")
	ref := root.Children[0].Children[0]
	assert.Nil(t, ref.Reference())
}

func TestBuiltinCallResolution(t *testing.T) {
	root := mustParse(t, "var x:int=int(1);")
	call := root.Children[0].Children[0]
	require.NotNil(t, call.Reference())
	assert.Equal(t, "int", call.Reference().TypeName)
}

func TestUnexpectedTokenError(t *testing.T) {
	_, err := parseErr(t, "123;")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "t", perr.Source)
}
