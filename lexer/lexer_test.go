package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typesOf(t *testing.T, tokens []Token) []Type {
	t.Helper()
	var out []Type
	for _, tok := range tokens {
		out = append(out, tok.Type)
	}
	return out
}

func TestLexPunctuatorsAndKeywords(t *testing.T) {
	tokens, err := TokenizeToSlice("t", "struct Foo { var x : int ; }")
	require.NoError(t, err)

	assert.Equal(t, []Type{
		KeywordStruct, Identifier, LeftBrace, KeywordVar, Identifier,
		Colon, Identifier, Semicolon, RightBrace, EOF,
	}, typesOf(t, tokens))
}

func TestLexNumbers(t *testing.T) {
	tokens, err := TokenizeToSlice("t", "1 1.5 1e+5 1.2e-3")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	assert.Equal(t, LiteralInt, tokens[0].Type)
	assert.Equal(t, "1", tokens[0].Value)
	assert.Equal(t, LiteralFloat, tokens[1].Type)
	assert.Equal(t, "1.5", tokens[1].Value)
	// an exponent alone does not make a float: only a '.' does
	assert.Equal(t, LiteralInt, tokens[2].Type)
	assert.Equal(t, "1e+5", tokens[2].Value)
	assert.Equal(t, LiteralFloat, tokens[3].Type)
	assert.Equal(t, "1.2e-3", tokens[3].Value)
}

func TestLexInvalidExponent(t *testing.T) {
	_, err := TokenizeToSlice("t", "1e5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidExponent))

	_, err = TokenizeToSlice("t", "1e+")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidExponent))
}

func TestLexStringEscape(t *testing.T) {
	tokens, err := TokenizeToSlice("t", `"a\nb\"c"`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, LiteralString, tokens[0].Type)
	assert.Equal(t, "a\nb\"c", tokens[0].Value)
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := TokenizeToSlice("t", `"abc`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnterminatedString))
}

func TestLexChar(t *testing.T) {
	tokens, err := TokenizeToSlice("t", `'a' '\n' '\''`)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, "a", tokens[0].Value)
	assert.Equal(t, "\n", tokens[1].Value)
	assert.Equal(t, "'", tokens[2].Value)
}

func TestLexInvalidCharLiteral(t *testing.T) {
	_, err := TokenizeToSlice("t", "'ab'")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCharLiteral))
}

func TestLexComments(t *testing.T) {
	tokens, err := TokenizeToSlice("t", "var // comment\nx /* block\ncomment */ : int;")
	require.NoError(t, err)
	assert.Equal(t, []Type{
		KeywordVar, Identifier, Colon, Identifier, Semicolon, EOF,
	}, typesOf(t, tokens))
}

func TestLexUnterminatedBlockComment(t *testing.T) {
	_, err := TokenizeToSlice("t", "var x /* unterminated")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnterminatedBlockComment))
}

func TestLexMaximalMunchOperators(t *testing.T) {
	tokens, err := TokenizeToSlice("t", "<<= >>= += -> ++ -- == != <= >= && || .")
	require.NoError(t, err)
	assert.Equal(t, []Type{
		OperatorShiftLeftAssignment, OperatorShiftRightAssignment,
		OperatorPlusAssignment, OperatorArrow, OperatorIncrement,
		OperatorDecrement, OperatorEqual, OperatorNotEqual,
		OperatorLessThanEqual, OperatorGreaterThanEqual,
		OperatorAnd, OperatorOr, OperatorDot, EOF,
	}, typesOf(t, tokens))
}

func TestLexWordOperators(t *testing.T) {
	tokens, err := TokenizeToSlice("t", "and or not and_eq bitand")
	require.NoError(t, err)
	assert.Equal(t, []Type{
		OperatorAnd, OperatorOr, OperatorNot,
		OperatorBitwiseAndAssignment, OperatorBitwiseAnd, EOF,
	}, typesOf(t, tokens))
}

func TestLexUnknownCharacter(t *testing.T) {
	_, err := TokenizeToSlice("t", "$")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCharacter))
}

func TestLexPositionTracking(t *testing.T) {
	tokens, err := TokenizeToSlice("t", "var x\nvar y")
	require.NoError(t, err)
	require.True(t, len(tokens) >= 5)

	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)
	assert.Equal(t, 2, tokens[2].Line)
	assert.Equal(t, 1, tokens[2].Column)
}
