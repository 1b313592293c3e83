package parser

import (
	"github.com/krotik/oslc/ast"
	"github.com/krotik/oslc/lexer"
)

/*
parseCompoundStatementBody parses the Stmt* sequence between an already
consumed '{' and its closing '}', pushing and popping a scope around it.
Used both for CompoundStmt and directly for a function body, matching
the scope lifetime of the original grammar.
*/
func (p *parser) parseCompoundStatementBody() (*ast.Node, error) {
	tok := p.previous()
	result := ast.New(ast.StatementCompound, tok.Line, tok.Column)

	p.table.Push("block")
	defer p.table.Pop()

	for !p.check(lexer.RightBrace) {
		if p.atEnd() {
			return nil, p.errorf(ErrUnexpectedToken, "Expected a right brace")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		result.AddChild(stmt)
	}

	return result, nil
}

/*
parseStatement dispatches on the leading token of a single statement.
*/
func (p *parser) parseStatement() (*ast.Node, error) {
	switch {
	case p.check(lexer.LeftBrace):
		return p.parseCompoundStatementBody()
	case p.check(lexer.KeywordIf):
		return p.parseIfStatement()
	case p.check(lexer.KeywordFor):
		return p.parseForStatement()
	case p.check(lexer.KeywordSwitch):
		return p.parseSwitchStatement()
	case p.check(lexer.KeywordCase):
		return p.parseCaseStatement()
	case p.check(lexer.KeywordWhile):
		return p.parseWhileStatement()
	case p.check(lexer.KeywordDo):
		return p.parseDoStatement()
	case p.check(lexer.KeywordBreak):
		return p.parseBreakStatement()
	case p.check(lexer.KeywordContinue):
		return p.parseContinueStatement()
	case p.check(lexer.KeywordReturn):
		return p.parseReturnStatement()
	case p.checkAny(lexer.KeywordStatic, lexer.KeywordConst, lexer.KeywordVar):
		return p.parseVariableDeclStatement()
	case p.check(lexer.Semicolon):
		tok := p.previous()
		return ast.New(ast.DeclarationEmpty, tok.Line, tok.Column), nil
	}
	return p.parseExpressionStatement()
}

/*
varDeclOrExpr parses the VarDecl-or-Expr alternative used inside the
parenthesized head of if/switch/while. For-loop slots use forSlot.
*/
func (p *parser) varDeclOrExpr() (*ast.Node, error) {
	if p.checkAny(lexer.KeywordStatic, lexer.KeywordConst, lexer.KeywordVar) {
		return p.parseVariableDecl()
	}
	return p.parseExpression()
}

/*
StatementIf := 'if' '(' (VarDecl | Expr) ')' Stmt ('else' Stmt)?

Children are [condition, then] or [condition, then, else].
*/
func (p *parser) parseIfStatement() (*ast.Node, error) {
	tok := p.previous()
	result := ast.New(ast.StatementIf, tok.Line, tok.Column)

	if err := p.expect(lexer.LeftParenthesis, "Expected a left parenthesis"); err != nil {
		return nil, err
	}
	cond, err := p.varDeclOrExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RightParenthesis, "Expected a right parenthesis"); err != nil {
		return nil, err
	}
	result.AddChild(cond)

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	result.AddChild(then)

	if p.check(lexer.KeywordElse) {
		els, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		result.AddChild(els)
	}

	return result, nil
}

/*
forSlot parses one of the three semicolon/paren-delimited for-loop
slots: a var declaration (consumes its own trailing terminator), an
expression (likewise), or - if the terminator appears immediately - a
placeholder None node standing in for the omitted slot.
*/
func (p *parser) forSlot(terminator lexer.Type) (*ast.Node, error) {
	if p.check(terminator) {
		tok := p.previous()
		return ast.New(ast.None, tok.Line, tok.Column), nil
	}

	if p.checkAny(lexer.KeywordStatic, lexer.KeywordConst, lexer.KeywordVar) {
		decl, err := p.parseVariableDeclIn(terminator)
		if err != nil {
			return nil, err
		}
		return decl, nil
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(terminator, "Expected a terminator"); err != nil {
		return nil, err
	}
	return expr, nil
}

/*
StatementFor := 'for' '(' ForInit ';' ForCond ';' ForPost ')' Stmt

Children are [init, condition, post, body]; an omitted slot is a None
placeholder node.
*/
func (p *parser) parseForStatement() (*ast.Node, error) {
	tok := p.previous()
	result := ast.New(ast.StatementFor, tok.Line, tok.Column)

	if err := p.expect(lexer.LeftParenthesis, "Expected a left parenthesis"); err != nil {
		return nil, err
	}

	init, err := p.forSlot(lexer.Semicolon)
	if err != nil {
		return nil, err
	}
	cond, err := p.forSlot(lexer.Semicolon)
	if err != nil {
		return nil, err
	}
	post, err := p.forSlot(lexer.RightParenthesis)
	if err != nil {
		return nil, err
	}

	result.AddChild(init)
	result.AddChild(cond)
	result.AddChild(post)

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	result.AddChild(body)

	return result, nil
}

/*
StatementSwitch := 'switch' '(' (VarDecl | Expr) ')' Stmt
*/
func (p *parser) parseSwitchStatement() (*ast.Node, error) {
	tok := p.previous()
	result := ast.New(ast.StatementSwitch, tok.Line, tok.Column)

	if err := p.expect(lexer.LeftParenthesis, "Expected a left parenthesis"); err != nil {
		return nil, err
	}
	cond, err := p.varDeclOrExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RightParenthesis, "Expected a right parenthesis"); err != nil {
		return nil, err
	}
	result.AddChild(cond)

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	result.AddChild(body)

	return result, nil
}

/*
StatementCase := 'case' LITERAL_INT ':' Stmt
*/
func (p *parser) parseCaseStatement() (*ast.Node, error) {
	tok := p.previous()
	result := ast.New(ast.StatementCase, tok.Line, tok.Column)

	if !p.check(lexer.LiteralInt) {
		return nil, p.errorf(ErrUnexpectedToken, "Expected an integer literal")
	}
	result.Value = p.previous().Value

	if err := p.expect(lexer.Colon, "Expected a colon"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	result.AddChild(body)

	return result, nil
}

/*
StatementWhile := 'while' '(' (VarDecl | Expr) ')' Stmt
*/
func (p *parser) parseWhileStatement() (*ast.Node, error) {
	tok := p.previous()
	result := ast.New(ast.StatementWhile, tok.Line, tok.Column)

	if err := p.expect(lexer.LeftParenthesis, "Expected a left parenthesis"); err != nil {
		return nil, err
	}
	cond, err := p.varDeclOrExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RightParenthesis, "Expected a right parenthesis"); err != nil {
		return nil, err
	}
	result.AddChild(cond)

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	result.AddChild(body)

	return result, nil
}

/*
StatementDo := 'do' Stmt 'while' '(' Expr ')' ';'

Children are [body, condition].
*/
func (p *parser) parseDoStatement() (*ast.Node, error) {
	tok := p.previous()
	result := ast.New(ast.StatementDo, tok.Line, tok.Column)

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	result.AddChild(body)

	if err := p.expect(lexer.KeywordWhile, "Expected while"); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LeftParenthesis, "Expected a left parenthesis"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RightParenthesis, "Expected a right parenthesis"); err != nil {
		return nil, err
	}
	result.AddChild(cond)

	if err := p.expect(lexer.Semicolon, "Expected a semicolon"); err != nil {
		return nil, err
	}

	return result, nil
}

func (p *parser) parseBreakStatement() (*ast.Node, error) {
	tok := p.previous()
	if err := p.expect(lexer.Semicolon, "Expected a semicolon"); err != nil {
		return nil, err
	}
	return ast.New(ast.StatementBreak, tok.Line, tok.Column), nil
}

func (p *parser) parseContinueStatement() (*ast.Node, error) {
	tok := p.previous()
	if err := p.expect(lexer.Semicolon, "Expected a semicolon"); err != nil {
		return nil, err
	}
	return ast.New(ast.StatementContinue, tok.Line, tok.Column), nil
}

/*
StatementReturn := 'return' Expr ';'
*/
func (p *parser) parseReturnStatement() (*ast.Node, error) {
	tok := p.previous()
	result := ast.New(ast.StatementReturn, tok.Line, tok.Column)

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	result.AddChild(expr)

	if err := p.expect(lexer.Semicolon, "Expected a semicolon"); err != nil {
		return nil, err
	}

	return result, nil
}

/*
StatementDeclaration wraps a leading static/const/var variable
declaration used as a statement.
*/
func (p *parser) parseVariableDeclStatement() (*ast.Node, error) {
	tok := p.previous()
	decl, err := p.parseVariableDecl() // consumes its own trailing semicolon
	if err != nil {
		return nil, err
	}

	result := ast.New(ast.StatementDeclaration, tok.Line, tok.Column)
	result.AddChild(decl)
	return result, nil
}

/*
StatementExpression := Expr ';'
*/
func (p *parser) parseExpressionStatement() (*ast.Node, error) {
	startPos := p.pos
	var tok lexer.Token
	if t, ok := p.peek(); ok {
		tok = t
	} else if startPos > 0 {
		tok = p.tokens[startPos-1]
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.Semicolon, "Expected a semicolon"); err != nil {
		return nil, err
	}

	result := ast.New(ast.StatementExpression, tok.Line, tok.Column)
	result.AddChild(expr)
	return result, nil
}
