/*
 * OSLC
 *
 * OSL front-end compiler.
 */

// Package parser implements the hand-written recursive-descent parser
// that builds OSL's AST and maintains the scoped declaration table.
package parser

import (
	"github.com/krotik/oslc/ast"
	"github.com/krotik/oslc/lexer"
	"github.com/krotik/oslc/scope"
)

/*
parser holds the running state of a single parse: the token cursor and
the declaration table being built up as scopes are entered and left.
*/
type parser struct {
	source string
	tokens []lexer.Token
	pos    int
	table  *scope.Table
}

/*
Parse consumes a token sequence (as produced by lexer.TokenizeToSlice,
trailing EOF token included or not, either is accepted) and returns the
TranslationUnit root, or the first syntax error encountered.
*/
func Parse(source string, tokens []lexer.Token) (*ast.Node, error) {
	var filtered []lexer.Token
	for _, t := range tokens {
		if t.Type != lexer.EOF {
			filtered = append(filtered, t)
		}
	}

	p := &parser{source: source, tokens: filtered, table: scope.NewTable()}
	return p.parseTranslationUnit()
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() (lexer.Token, bool) {
	if p.atEnd() {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) previous() lexer.Token {
	return p.tokens[p.pos-1]
}

/*
check peeks the current token and, on a type match, consumes it.
*/
func (p *parser) check(t lexer.Type) bool {
	tok, ok := p.peek()
	if !ok || tok.Type != t {
		return false
	}
	p.pos++
	return true
}

/*
checkAny is the multi-type variant of check.
*/
func (p *parser) checkAny(types ...lexer.Type) bool {
	tok, ok := p.peek()
	if !ok {
		return false
	}
	for _, t := range types {
		if tok.Type == t {
			p.pos++
			return true
		}
	}
	return false
}

func (p *parser) errorf(kind error, detail string) error {
	line, col := 0, 0
	if tok, ok := p.peek(); ok {
		line, col = tok.Line, tok.Column
	} else if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		line, col = last.Line, last.Column
	}
	return &Error{Source: p.source, Kind: kind, Detail: detail, Line: line, Column: col}
}

func (p *parser) expect(t lexer.Type, detail string) error {
	if !p.check(t) {
		return p.errorf(ErrUnexpectedToken, detail)
	}
	return nil
}

/*
TranslationUnit := (Decl | ';')*
*/
func (p *parser) parseTranslationUnit() (*ast.Node, error) {
	root := ast.New(ast.TranslationUnit, 1, 1)

	for !p.atEnd() {
		decl, err := p.parseTopLevelDecl()
		if err != nil {
			return nil, err
		}
		root.AddChild(decl)
	}

	return root, nil
}

func (p *parser) parseTopLevelDecl() (*ast.Node, error) {
	switch {
	case p.check(lexer.KeywordStruct):
		return p.parseStructDecl()
	case p.check(lexer.KeywordTypedef):
		return p.parseTypedefDecl()
	case p.check(lexer.KeywordFunction):
		return p.parseFunctionDecl()
	case p.checkAny(lexer.KeywordStatic, lexer.KeywordConst, lexer.KeywordVar):
		return p.parseVariableDecl()
	case p.check(lexer.Semicolon):
		tok := p.previous()
		return ast.New(ast.DeclarationEmpty, tok.Line, tok.Column), nil
	}
	return nil, p.errorf(ErrUnexpectedToken, "Expected a keyword")
}

/*
Decl (struct form) := 'struct' Ident ('{' Field+ '}' | ';')
*/
func (p *parser) parseStructDecl() (*ast.Node, error) {
	tok := p.previous()

	if !p.check(lexer.Identifier) {
		return nil, p.errorf(ErrUnexpectedToken, "Expected an identifier")
	}
	name := p.previous().Value

	result := ast.New(ast.DeclarationStruct, tok.Line, tok.Column)
	result.Name = name

	switch {
	case p.check(lexer.LeftBrace):
		for {
			if p.check(lexer.RightBrace) {
				if len(result.Children) == 0 {
					return nil, p.errorf(ErrEmptyStruct, "Structure must have at least one member")
				}
				break
			}

			field, err := p.parseFieldDecl()
			if err != nil {
				return nil, err
			}
			result.AddChild(field)
		}
	case p.check(lexer.Semicolon):
		// forward declaration: no children
	default:
		return nil, p.errorf(ErrUnexpectedToken, "Expected a left brace or a semicolon")
	}

	p.table.Declare(result)
	return result, nil
}

/*
Field := 'var' ('[' Attr (',' Attr)* ']')? Ident ':' Ident ';'
*/
func (p *parser) parseFieldDecl() (*ast.Node, error) {
	if !p.check(lexer.KeywordVar) {
		return nil, p.errorf(ErrUnexpectedToken, "Expected an attribute")
	}
	tok := p.previous()
	field := ast.New(ast.DeclarationField, tok.Line, tok.Column)

	if p.check(lexer.LeftBracket) {
		first := true
		for {
			if p.check(lexer.RightBracket) {
				break
			}

			if !((first || p.check(lexer.Comma)) && p.check(lexer.Identifier)) {
				return nil, p.errorf(ErrUnexpectedToken, "Expected an identifier")
			}
			first = false

			attribute := p.previous().Value

			if !p.check(lexer.OperatorAssignment) {
				return nil, p.errorf(ErrUnexpectedToken, "Expected an equality sign")
			}
			if !p.check(lexer.Identifier) {
				return nil, p.errorf(ErrUnexpectedToken, "Expected an identifier")
			}
			value := p.previous().Value

			if attribute != "semantic" {
				return nil, p.errorf(ErrInvalidAttribute, "Invalid attribute")
			}

			sem, ok := ast.SemanticFromName(toSemanticName(value))
			if !ok {
				return nil, p.errorf(ErrInvalidSemantic, "Invalid semantic")
			}
			field.Semantic = sem
		}
	}

	if !p.check(lexer.Identifier) {
		return nil, p.errorf(ErrUnexpectedToken, "Expected an identifier")
	}
	field.Name = p.previous().Value

	if err := p.expect(lexer.Colon, "Expected a colon"); err != nil {
		return nil, err
	}

	if !p.check(lexer.Identifier) {
		return nil, p.errorf(ErrUnexpectedToken, "Expected a type name")
	}
	field.TypeName = p.previous().Value

	if err := p.expect(lexer.Semicolon, "Expected a semicolon"); err != nil {
		return nil, err
	}

	return field, nil
}

/*
toSemanticName maps the snake_case source spelling of a semantic
attribute value onto the CamelCase spelling used by ast.Semantic.
*/
func toSemanticName(value string) string {
	switch value {
	case "binormal":
		return "Binormal"
	case "blend_indices":
		return "BlendIndices"
	case "blend_weight":
		return "BlendWeight"
	case "color":
		return "Color"
	case "normal":
		return "Normal"
	case "position":
		return "Position"
	case "position_transformed":
		return "PositionTransformed"
	case "point_size":
		return "PointSize"
	case "tangent":
		return "Tangent"
	case "texture_coordinates":
		return "TextureCoordinates"
	}
	return ""
}

/*
Decl (typedef form) := 'typedef' Ident Ident ';'

TypeName names the aliased type, Name the alias being introduced.
*/
func (p *parser) parseTypedefDecl() (*ast.Node, error) {
	tok := p.previous()

	if !p.check(lexer.Identifier) {
		return nil, p.errorf(ErrUnexpectedToken, "Expected a type name")
	}
	result := ast.New(ast.DeclarationTypedef, tok.Line, tok.Column)
	result.TypeName = p.previous().Value

	if !p.check(lexer.Identifier) {
		return nil, p.errorf(ErrUnexpectedToken, "Expected an identifier")
	}
	result.Name = p.previous().Value

	if err := p.expect(lexer.Semicolon, "Expected a semicolon"); err != nil {
		return nil, err
	}

	p.table.Declare(result)
	return result, nil
}

/*
Decl (function form) := 'function' Ident '(' ParamList? ')' ':' Ident (CompoundStmt | ';')
*/
func (p *parser) parseFunctionDecl() (*ast.Node, error) {
	tok := p.previous()

	if !p.check(lexer.Identifier) {
		return nil, p.errorf(ErrUnexpectedToken, "Expected a function name")
	}
	result := ast.New(ast.DeclarationFunction, tok.Line, tok.Column)
	result.Name = p.previous().Value

	if err := p.expect(lexer.LeftParenthesis, "Unexpected end of function declaration"); err != nil {
		return nil, err
	}

	first := true
	for {
		if p.check(lexer.RightParenthesis) {
			break
		}
		if !((first || p.check(lexer.Comma)) && p.check(lexer.Identifier)) {
			return nil, p.errorf(ErrUnexpectedToken, "Expected a comma, keyword or a right parenthesis")
		}
		first = false

		paramTok := p.previous()
		param := ast.New(ast.DeclarationParameter, paramTok.Line, paramTok.Column)
		param.Name = paramTok.Value

		if err := p.expect(lexer.Colon, "Expected a colon"); err != nil {
			return nil, err
		}
		if !p.check(lexer.Identifier) {
			return nil, p.errorf(ErrUnexpectedToken, "Expected a type name")
		}
		param.TypeName = p.previous().Value

		result.AddChild(param)
	}

	if err := p.expect(lexer.Colon, "Expected a colon"); err != nil {
		return nil, err
	}
	if !p.check(lexer.Identifier) {
		return nil, p.errorf(ErrUnexpectedToken, "Expected a type name")
	}
	result.TypeName = p.previous().Value

	switch {
	case p.check(lexer.LeftBrace):
		p.table.Declare(result)

		body, err := p.parseCompoundStatementBody()
		if err != nil {
			return nil, err
		}
		result.AddChild(body)
	case p.check(lexer.Semicolon):
		p.table.Declare(result)
	default:
		return nil, p.errorf(ErrUnexpectedToken, "Expected a left brace or a semicolon")
	}

	return result, nil
}

/*
Decl (variable form) := ('static')? ('const' | 'var') Ident ':' Ident ('=' Expr | '(' Expr ')')? ';'

The leading static/const/var token has already been consumed by the
caller; p.previous() names it. parseVariableDecl always terminates on a
semicolon; parseVariableDeclIn is the for-loop-slot variant that
terminates on an arbitrary token, since a for-loop's post slot is
terminated by ')' rather than ';'.
*/
func (p *parser) parseVariableDecl() (*ast.Node, error) {
	return p.parseVariableDeclIn(lexer.Semicolon)
}

func (p *parser) parseVariableDeclIn(terminator lexer.Type) (*ast.Node, error) {
	lead := p.previous()
	result := ast.New(ast.DeclarationVariable, lead.Line, lead.Column)

	if lead.Type == lexer.KeywordStatic {
		result.IsStatic = true
	} else {
		p.pos--
	}

	switch {
	case p.check(lexer.KeywordConst):
		result.IsConst = true
	case p.check(lexer.KeywordVar):
		result.IsConst = false
	default:
		return nil, p.errorf(ErrUnexpectedToken, "Expected const or var")
	}

	if !p.check(lexer.Identifier) {
		return nil, p.errorf(ErrUnexpectedToken, "Unexpected end of variable declaration")
	}
	result.Name = p.previous().Value

	if err := p.expect(lexer.Colon, "Expected a colon"); err != nil {
		return nil, err
	}
	if !p.check(lexer.Identifier) {
		return nil, p.errorf(ErrUnexpectedToken, "Expected a type name")
	}
	result.TypeName = p.previous().Value

	switch {
	case p.check(lexer.OperatorAssignment):
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		result.AddChild(expr)
	case p.check(lexer.LeftParenthesis):
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RightParenthesis, "Expected a right parenthesis"); err != nil {
			return nil, err
		}
		result.AddChild(expr)
	}

	if err := p.expect(terminator, "Expected a terminator"); err != nil {
		return nil, err
	}

	p.table.Declare(result)
	return result, nil
}
