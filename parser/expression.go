package parser

import (
	"github.com/krotik/oslc/ast"
	"github.com/krotik/oslc/lexer"
)

/*
Expr := Assignment
*/
func (p *parser) parseExpression() (*ast.Node, error) {
	return p.parseAssignment()
}

/*
Assignment := Equality ('=' Equality)*

Left-associative: each iteration folds the previous accumulated
expression in as the left operand of a new binary node.
*/
func (p *parser) parseAssignment() (*ast.Node, error) {
	result, err := p.parseEquality()
	if err != nil {
		return nil, err
	}

	for p.check(lexer.OperatorAssignment) {
		tok := p.previous()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		node := ast.New(ast.OperatorBinary, tok.Line, tok.Column)
		node.Value = tok.Value
		node.AddChild(result)
		node.AddChild(right)
		result = node
	}

	return result, nil
}

/*
Equality := Comparison (('==' | '!=') Comparison)*
*/
func (p *parser) parseEquality() (*ast.Node, error) {
	result, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.checkAny(lexer.OperatorEqual, lexer.OperatorNotEqual) {
		tok := p.previous()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		node := ast.New(ast.OperatorBinary, tok.Line, tok.Column)
		node.Value = tok.Value
		node.AddChild(result)
		node.AddChild(right)
		result = node
	}

	return result, nil
}

/*
Comparison := Addition (('>' | '>=' | '<' | '<=') Addition)*
*/
func (p *parser) parseComparison() (*ast.Node, error) {
	result, err := p.parseAddition()
	if err != nil {
		return nil, err
	}

	for p.checkAny(lexer.OperatorGreaterThan, lexer.OperatorGreaterThanEqual,
		lexer.OperatorLessThan, lexer.OperatorLessThanEqual) {
		tok := p.previous()
		right, err := p.parseAddition()
		if err != nil {
			return nil, err
		}
		node := ast.New(ast.OperatorBinary, tok.Line, tok.Column)
		node.Value = tok.Value
		node.AddChild(result)
		node.AddChild(right)
		result = node
	}

	return result, nil
}

/*
Addition := Multiplication (('+' | '-') Multiplication)*
*/
func (p *parser) parseAddition() (*ast.Node, error) {
	result, err := p.parseMultiplication()
	if err != nil {
		return nil, err
	}

	for p.checkAny(lexer.OperatorPlus, lexer.OperatorMinus) {
		tok := p.previous()
		right, err := p.parseMultiplication()
		if err != nil {
			return nil, err
		}
		node := ast.New(ast.OperatorBinary, tok.Line, tok.Column)
		node.Value = tok.Value
		node.AddChild(result)
		node.AddChild(right)
		result = node
	}

	return result, nil
}

/*
Multiplication := Member (('*' | '/') Member)*
*/
func (p *parser) parseMultiplication() (*ast.Node, error) {
	result, err := p.parseMember()
	if err != nil {
		return nil, err
	}

	for p.checkAny(lexer.OperatorMultiply, lexer.OperatorDivide) {
		tok := p.previous()
		right, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		node := ast.New(ast.OperatorBinary, tok.Line, tok.Column)
		node.Value = tok.Value
		node.AddChild(result)
		node.AddChild(right)
		result = node
	}

	return result, nil
}

/*
Member := Unary ('.' Unary)*
*/
func (p *parser) parseMember() (*ast.Node, error) {
	result, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.check(lexer.OperatorDot) {
		tok := p.previous()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node := ast.New(ast.ExpressionMember, tok.Line, tok.Column)
		node.AddChild(result)
		node.AddChild(right)
		result = node
	}

	return result, nil
}

/*
Unary := ('+' | '-' | '!') Unary | Primary
*/
func (p *parser) parseUnary() (*ast.Node, error) {
	if p.checkAny(lexer.OperatorPlus, lexer.OperatorMinus, lexer.OperatorNot) {
		tok := p.previous()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node := ast.New(ast.OperatorUnary, tok.Line, tok.Column)
		node.Value = tok.Value
		node.AddChild(operand)
		return node, nil
	}
	return p.parsePrimary()
}

/*
Primary covers literals, calls, subscripts, declaration references and
parenthesized expressions.
*/
func (p *parser) parsePrimary() (*ast.Node, error) {
	switch {
	case p.check(lexer.LiteralInt):
		return p.literalNode("int"), nil
	case p.check(lexer.LiteralFloat):
		return p.literalNode("float"), nil
	case p.check(lexer.LiteralString):
		return p.literalNode("string"), nil
	case p.check(lexer.LiteralChar):
		return p.literalNode("char"), nil
	case p.check(lexer.KeywordTrue):
		return p.boolLiteralNode("true"), nil
	case p.check(lexer.KeywordFalse):
		return p.boolLiteralNode("false"), nil
	case p.check(lexer.Identifier):
		return p.parseIdentifierPrimary()
	case p.check(lexer.LeftParenthesis):
		tok := p.previous()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RightParenthesis, "Expected a right parenthesis"); err != nil {
			return nil, err
		}
		node := ast.New(ast.ExpressionParen, tok.Line, tok.Column)
		node.AddChild(inner)
		return node, nil
	}
	return nil, p.errorf(ErrUnexpectedToken, "Expected an expression")
}

func (p *parser) literalNode(typeName string) *ast.Node {
	tok := p.previous()
	node := ast.New(ast.ExpressionLiteral, tok.Line, tok.Column)
	node.TypeName = typeName
	node.Value = tok.Value
	return node
}

func (p *parser) boolLiteralNode(value string) *ast.Node {
	tok := p.previous()
	node := ast.New(ast.ExpressionLiteral, tok.Line, tok.Column)
	node.TypeName = "bool"
	node.Value = value
	return node
}

/*
parseIdentifierPrimary handles the three identifier-led primary forms:
a call (Ident immediately followed by '('), a subscript (Ident
immediately followed by '['), or a bare declaration reference, which is
resolved against the declaration table at parse time.
*/
func (p *parser) parseIdentifierPrimary() (*ast.Node, error) {
	tok := p.previous()
	name := tok.Value

	switch {
	case p.check(lexer.LeftParenthesis):
		node := ast.New(ast.ExpressionCall, tok.Line, tok.Column)
		node.Name = name

		first := true
		for {
			if p.check(lexer.RightParenthesis) {
				break
			}
			if !first {
				if err := p.expect(lexer.Comma, "Expected a comma or a right parenthesis"); err != nil {
					return nil, err
				}
			}
			first = false

			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			node.AddChild(arg)
		}

		if decl, ok := p.table.Lookup(name); ok {
			node.SetReference(decl)
		}
		return node, nil

	case p.check(lexer.LeftBracket):
		node := ast.New(ast.ExpressionArraySubscript, tok.Line, tok.Column)
		node.Name = name

		index, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.AddChild(index)

		if err := p.expect(lexer.RightBracket, "Expected a right bracket"); err != nil {
			return nil, err
		}

		if decl, ok := p.table.Lookup(name); ok {
			node.SetReference(decl)
		}
		return node, nil

	default:
		node := ast.New(ast.ExpressionDeclarationReference, tok.Line, tok.Column)
		node.Name = name
		if decl, ok := p.table.Lookup(name); ok {
			node.SetReference(decl)
		}
		return node, nil
	}
}
