/*
 * OSLC
 *
 * OSL front-end compiler.
 */

// Package emit implements stateless AST-to-text visitors, one per
// target shading dialect. Each emitter consumes only the public
// ast.Node surface and performs direct textual substitution — no type
// checking, no overload resolution.
package emit

import (
	"fmt"
	"io"

	"github.com/krotik/oslc/ast"
)

/*
Dialect names a target shading language.
*/
type Dialect int

const (
	HLSL Dialect = iota
	GLSL
	Metal
)

/*
typeTable maps OSL builtin type names to their dialect-specific
spelling. Populated by each dialect's own file (hlsl.go, glsl.go,
metal.go) via init.
*/
var typeTable = map[Dialect]map[string]string{}

/*
semanticTable maps a field's ast.Semantic to its dialect-specific
annotation, appended after the field declaration. Populated the same
way as typeTable.
*/
var semanticTable = map[Dialect]map[ast.Semantic]string{}

func typeName(d Dialect, oslType string) string {
	if n, ok := typeTable[d][oslType]; ok {
		return n
	}
	return oslType
}

/*
Emit writes a complete translation unit to w in the given dialect.
Returns the first error writing to w produces.
*/
func Emit(w io.Writer, d Dialect, root *ast.Node) error {
	e := &emitter{w: w, dialect: d}
	return e.emitTranslationUnit(root)
}

type emitter struct {
	w       io.Writer
	dialect Dialect
	err     error
}

func (e *emitter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *emitter) emitTranslationUnit(root *ast.Node) error {
	if root == nil {
		return nil
	}
	for _, decl := range root.Children {
		e.emitDecl(decl)
	}
	return e.err
}

func (e *emitter) emitDecl(n *ast.Node) {
	switch n.Kind {
	case ast.DeclarationStruct:
		e.emitStruct(n)
	case ast.DeclarationFunction:
		e.emitFunction(n)
	case ast.DeclarationVariable:
		e.emitGlobalVariable(n)
	case ast.DeclarationTypedef:
		e.printf("typedef %s %s;\n\n", typeName(e.dialect, n.TypeName), n.Name)
	case ast.DeclarationEmpty:
		// nothing to print
	}
}

func (e *emitter) emitStruct(n *ast.Node) {
	e.printf("struct %s {\n", n.Name)
	for _, field := range n.Children {
		e.printf("    %s %s", typeName(e.dialect, field.TypeName), field.Name)
		if sem, ok := semanticTable[e.dialect][field.Semantic]; ok {
			switch e.dialect {
			case HLSL:
				e.printf(" : %s", sem)
			case Metal:
				e.printf(" [[%s]]", sem)
			}
		}
		e.printf(";\n")
	}
	e.printf("};\n\n")
}

func (e *emitter) emitFunction(n *ast.Node) {
	var params []*ast.Node
	var body *ast.Node
	for _, c := range n.Children {
		if c.Kind == ast.DeclarationParameter {
			params = append(params, c)
		} else {
			body = c
		}
	}

	e.printf("%s %s(", typeName(e.dialect, n.TypeName), n.Name)
	for i, p := range params {
		if i > 0 {
			e.printf(", ")
		}
		e.printf("%s %s", typeName(e.dialect, p.TypeName), p.Name)
	}
	e.printf(")")

	if body == nil {
		e.printf(";\n\n")
		return
	}
	e.printf(" {\n")
	e.emitStatement(body, 1)
	e.printf("}\n\n")
}

func (e *emitter) emitGlobalVariable(n *ast.Node) {
	if n.IsStatic {
		e.printf("static ")
	}
	if n.IsConst {
		e.printf("const ")
	}
	e.printf("%s %s", typeName(e.dialect, n.TypeName), n.Name)
	if len(n.Children) > 0 {
		e.printf(" = ")
		e.emitExpr(n.Children[0])
	}
	e.printf(";\n\n")
}

func (e *emitter) indent(level int) {
	for i := 0; i < level; i++ {
		e.printf("    ")
	}
}

func (e *emitter) emitStatement(n *ast.Node, level int) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.StatementCompound:
		for _, c := range n.Children {
			e.emitStatement(c, level)
		}
	case ast.StatementDeclaration:
		e.indent(level)
		e.emitLocalDecl(n.Children[0])
	case ast.StatementExpression:
		e.indent(level)
		e.emitExpr(n.Children[0])
		e.printf(";\n")
	case ast.StatementIf:
		e.indent(level)
		e.printf("if (")
		e.emitExpr(n.Children[0])
		e.printf(") {\n")
		e.emitStatement(n.Children[1], level+1)
		e.indent(level)
		e.printf("}\n")
		if len(n.Children) > 2 {
			e.indent(level)
			e.printf("else {\n")
			e.emitStatement(n.Children[2], level+1)
			e.indent(level)
			e.printf("}\n")
		}
	case ast.StatementWhile:
		e.indent(level)
		e.printf("while (")
		e.emitExpr(n.Children[0])
		e.printf(") {\n")
		e.emitStatement(n.Children[1], level+1)
		e.indent(level)
		e.printf("}\n")
	case ast.StatementDo:
		e.indent(level)
		e.printf("do {\n")
		e.emitStatement(n.Children[0], level+1)
		e.indent(level)
		e.printf("} while (")
		e.emitExpr(n.Children[1])
		e.printf(");\n")
	case ast.StatementFor:
		e.indent(level)
		e.printf("for (")
		e.emitForSlot(n.Children[0])
		e.printf("; ")
		e.emitForSlot(n.Children[1])
		e.printf("; ")
		e.emitForSlot(n.Children[2])
		e.printf(") {\n")
		e.emitStatement(n.Children[3], level+1)
		e.indent(level)
		e.printf("}\n")
	case ast.StatementSwitch:
		e.indent(level)
		e.printf("switch (")
		e.emitExpr(n.Children[0])
		e.printf(") {\n")
		e.emitStatement(n.Children[1], level+1)
		e.indent(level)
		e.printf("}\n")
	case ast.StatementCase:
		e.indent(level)
		e.printf("case %s:\n", n.Value)
		e.emitStatement(n.Children[0], level+1)
	case ast.StatementBreak:
		e.indent(level)
		e.printf("break;\n")
	case ast.StatementContinue:
		e.indent(level)
		e.printf("continue;\n")
	case ast.StatementReturn:
		e.indent(level)
		e.printf("return ")
		e.emitExpr(n.Children[0])
		e.printf(";\n")
	}
}

func (e *emitter) emitForSlot(n *ast.Node) {
	if n == nil || n.Kind == ast.None {
		return
	}
	if n.Kind == ast.DeclarationVariable {
		e.emitLocalDeclInline(n)
		return
	}
	e.emitExpr(n)
}

func (e *emitter) emitLocalDecl(n *ast.Node) {
	e.emitLocalDeclInline(n)
	e.printf(";\n")
}

func (e *emitter) emitLocalDeclInline(n *ast.Node) {
	if n.IsConst {
		e.printf("const ")
	}
	e.printf("%s %s", typeName(e.dialect, n.TypeName), n.Name)
	if len(n.Children) > 0 {
		e.printf(" = ")
		e.emitExpr(n.Children[0])
	}
}

func (e *emitter) emitExpr(n *ast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.ExpressionLiteral:
		if n.TypeName == "string" {
			e.printf("%q", n.Value)
		} else {
			e.printf("%s", n.Value)
		}
	case ast.ExpressionDeclarationReference:
		e.printf("%s", n.Name)
	case ast.ExpressionParen:
		e.printf("(")
		e.emitExpr(n.Children[0])
		e.printf(")")
	case ast.ExpressionMember:
		e.emitExpr(n.Children[0])
		e.printf(".")
		e.emitExpr(n.Children[1])
	case ast.ExpressionCall:
		e.printf("%s(", n.Name)
		for i, arg := range n.Children {
			if i > 0 {
				e.printf(", ")
			}
			e.emitExpr(arg)
		}
		e.printf(")")
	case ast.ExpressionArraySubscript:
		e.printf("%s[", n.Name)
		e.emitExpr(n.Children[0])
		e.printf("]")
	case ast.OperatorUnary:
		e.printf("%s", n.Value)
		e.emitExpr(n.Children[0])
	case ast.OperatorBinary:
		e.emitExpr(n.Children[0])
		e.printf(" %s ", n.Value)
		e.emitExpr(n.Children[1])
	case ast.OperatorTernary:
		e.emitExpr(n.Children[0])
		e.printf(" ? ")
		e.emitExpr(n.Children[1])
		e.printf(" : ")
		e.emitExpr(n.Children[2])
	}
}
