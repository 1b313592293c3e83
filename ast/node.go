/*
 * OSLC
 *
 * OSL front-end compiler. Adapted from the ECAL parser/AST package.
 */

// Package ast defines the abstract syntax tree produced by the parser.
package ast

import (
	"fmt"
	"strings"

	"devt.de/krotik/common/stringutil"
)

/*
Kind discriminates the variant of an AST node.
*/
type Kind int

/*
Node kinds. One tagged struct carries every kind, mirroring the shape
the rest of this codebase uses for its own syntax trees.
*/
const (
	None Kind = iota
	TranslationUnit
	DeclarationEmpty
	DeclarationStruct
	DeclarationField
	DeclarationFunction
	DeclarationVariable
	DeclarationParameter
	DeclarationTypedef
	ExpressionCall
	ExpressionLiteral
	ExpressionDeclarationReference
	ExpressionParen
	ExpressionMember
	ExpressionArraySubscript
	StatementDeclaration
	StatementCompound
	StatementIf
	StatementFor
	StatementSwitch
	StatementCase
	StatementWhile
	StatementDo
	StatementBreak
	StatementContinue
	StatementReturn
	StatementExpression
	OperatorUnary
	OperatorBinary
	OperatorTernary
)

var kindNames = map[Kind]string{
	None:                            "None",
	TranslationUnit:                 "TranslationUnit",
	DeclarationEmpty:                "DeclarationEmpty",
	DeclarationStruct:               "DeclarationStruct",
	DeclarationField:                "DeclarationField",
	DeclarationFunction:             "DeclarationFunction",
	DeclarationVariable:             "DeclarationVariable",
	DeclarationParameter:            "DeclarationParameter",
	DeclarationTypedef:              "DeclarationTypedef",
	ExpressionCall:                  "ExpressionCall",
	ExpressionLiteral:               "ExpressionLiteral",
	ExpressionDeclarationReference:  "ExpressionDeclarationReference",
	ExpressionParen:                 "ExpressionParen",
	ExpressionMember:                "ExpressionMember",
	ExpressionArraySubscript:        "ExpressionArraySubscript",
	StatementDeclaration:            "StatementDeclaration",
	StatementCompound:               "StatementCompound",
	StatementIf:                     "StatementIf",
	StatementFor:                    "StatementFor",
	StatementSwitch:                 "StatementSwitch",
	StatementCase:                   "StatementCase",
	StatementWhile:                  "StatementWhile",
	StatementDo:                     "StatementDo",
	StatementBreak:                  "StatementBreak",
	StatementContinue:               "StatementContinue",
	StatementReturn:                 "StatementReturn",
	StatementExpression:             "StatementExpression",
	OperatorUnary:                   "OperatorUnary",
	OperatorBinary:                  "OperatorBinary",
	OperatorTernary:                 "OperatorTernary",
}

/*
String returns the name of a node kind.
*/
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Unknown"
}

/*
Semantic is a vertex-attribute tag attached to a struct field.
*/
type Semantic int

/*
Recognized semantic values.
*/
const (
	SemanticNone Semantic = iota
	SemanticBinormal
	SemanticBlendIndices
	SemanticBlendWeight
	SemanticColor
	SemanticNormal
	SemanticPosition
	SemanticPositionTransformed
	SemanticPointSize
	SemanticTangent
	SemanticTextureCoordinates
)

var semanticNames = map[Semantic]string{
	SemanticNone:                "None",
	SemanticBinormal:            "Binormal",
	SemanticBlendIndices:        "BlendIndices",
	SemanticBlendWeight:         "BlendWeight",
	SemanticColor:               "Color",
	SemanticNormal:              "Normal",
	SemanticPosition:            "Position",
	SemanticPositionTransformed: "PositionTransformed",
	SemanticPointSize:           "PointSize",
	SemanticTangent:             "Tangent",
	SemanticTextureCoordinates:  "TextureCoordinates",
}

/*
SemanticFromName looks up a Semantic by its CamelCase name. Returns false
if name is neither one of the ten recognized semantics nor "None", which
yields SemanticNone.
*/
func SemanticFromName(name string) (Semantic, bool) {
	for s, n := range semanticNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

func (s Semantic) String() string {
	if n, ok := semanticNames[s]; ok {
		return n
	}
	return "Unknown"
}

/*
Node is a single tagged AST node. Every node kind shares this struct;
Kind decides which fields are meaningful (see the child-position and
field contracts documented on the parser package).
*/
type Node struct {
	Kind     Kind
	Name     string
	TypeName string
	Value    string
	Semantic Semantic
	IsStatic bool
	IsConst  bool
	Line     int
	Column   int

	Children []*Node

	// reference is a non-owning back-edge to the declaration this node
	// names, populated by name binding. Never traversed by anything that
	// frees or copies the tree.
	reference *Node
}

/*
New creates a bare node of the given kind at the given source position.
*/
func New(kind Kind, line, column int) *Node {
	return &Node{Kind: kind, Line: line, Column: column}
}

/*
AddChild appends a child node, taking ownership of it.
*/
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

/*
Reference returns the declaration this node resolves to, or nil if
unresolved.
*/
func (n *Node) Reference() *Node {
	return n.reference
}

/*
SetReference records the declaration this node resolves to. The pointer
is a back-edge only: the referenced node's lifetime is controlled
exclusively by its own parent in the tree.
*/
func (n *Node) SetReference(decl *Node) {
	n.reference = decl
}

/*
String renders a single-line summary of this node (no children).
*/
func (n *Node) String() string {
	parts := []string{n.Kind.String()}
	if n.Name != "" {
		parts = append(parts, fmt.Sprintf("name=%s", n.Name))
	}
	if n.TypeName != "" {
		parts = append(parts, fmt.Sprintf("type=%s", n.TypeName))
	}
	if n.Value != "" {
		parts = append(parts, fmt.Sprintf("value=%q", n.Value))
	}
	if n.Semantic != SemanticNone {
		parts = append(parts, fmt.Sprintf("semantic=%s", n.Semantic))
	}
	if n.IsStatic {
		parts = append(parts, "static")
	}
	if n.IsConst {
		parts = append(parts, "const")
	}
	if n.reference != nil {
		parts = append(parts, fmt.Sprintf("-> %s", n.reference.Kind))
	}
	return strings.Join(parts, " ")
}

/*
LevelString renders this node and its subtree, indenting each level with
level extra copies of indent.
*/
func (n *Node) LevelString(level int, indent string) string {
	var buf strings.Builder
	buf.WriteString(stringutil.GenerateRollingString(indent, level*len(indent)))
	buf.WriteString(n.String())
	buf.WriteString("\n")
	for _, c := range n.Children {
		buf.WriteString(c.LevelString(level+1, indent))
	}
	return buf.String()
}
