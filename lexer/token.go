/*
 * OSLC
 *
 * OSL front-end compiler.
 */

// Package lexer turns OSL source bytes into a token stream.
package lexer

import "fmt"

/*
Kind is the coarse classification of a token.
*/
type Kind int

const (
	KindLiteral Kind = iota
	KindKeyword
	KindPunctuator
	KindOperator
	KindIdentifier
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindKeyword:
		return "Keyword"
	case KindPunctuator:
		return "Punctuator"
	case KindOperator:
		return "Operator"
	case KindIdentifier:
		return "Identifier"
	}
	return "Unknown"
}

/*
Type is the fine-grained discriminator for every recognized token.
*/
type Type int

const (
	EOF Type = iota

	// Literals
	LiteralInt
	LiteralFloat
	LiteralString
	LiteralChar

	// Punctuators
	LeftParenthesis
	RightParenthesis
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Comma
	Semicolon
	Colon

	Identifier

	// Keywords
	KeywordIf
	KeywordElse
	KeywordReturn
	KeywordFor
	KeywordWhile
	KeywordDo
	KeywordBreak
	KeywordContinue
	KeywordTrue
	KeywordFalse
	KeywordInline
	KeywordGoto
	KeywordSwitch
	KeywordCase
	KeywordDefault
	KeywordStatic
	KeywordConst
	KeywordExtern
	KeywordMutable
	KeywordAuto
	KeywordTypedef
	KeywordUnion
	KeywordEnum
	KeywordTemplate
	KeywordStruct
	KeywordClass
	KeywordPublic
	KeywordProtected
	KeywordPrivate
	KeywordNew
	KeywordDelete
	KeywordThis
	KeywordSizeof
	KeywordNamespace
	KeywordUsing
	KeywordTry
	KeywordCatch
	KeywordThrow
	KeywordNoexcept
	KeywordVar
	KeywordFunction

	// Operators
	OperatorPlus
	OperatorPlusAssignment
	OperatorIncrement
	OperatorMinus
	OperatorMinusAssignment
	OperatorDecrement
	OperatorArrow
	OperatorMultiply
	OperatorMultiplyAssignment
	OperatorDivide
	OperatorDivideAssignment
	OperatorModulo
	OperatorModuloAssignment
	OperatorAssignment
	OperatorEqual
	OperatorBitwiseAnd
	OperatorBitwiseAndAssignment
	OperatorAnd
	OperatorBitwiseNot
	OperatorBitwiseNotAssignment
	OperatorBitwiseXor
	OperatorBitwiseXorAssignment
	OperatorBitwiseOr
	OperatorBitwiseOrAssignment
	OperatorOr
	OperatorLessThan
	OperatorLessThanEqual
	OperatorShiftLeft
	OperatorShiftLeftAssignment
	OperatorGreaterThan
	OperatorGreaterThanEqual
	OperatorShiftRight
	OperatorShiftRightAssignment
	OperatorNot
	OperatorNotEqual
	OperatorConditional
	OperatorDot
)

var typeNames = map[Type]string{
	EOF:                           "EOF",
	LiteralInt:                    "LITERAL_INT",
	LiteralFloat:                  "LITERAL_FLOAT",
	LiteralString:                 "LITERAL_STRING",
	LiteralChar:                   "LITERAL_CHAR",
	LeftParenthesis:               "LEFT_PARENTHESIS",
	RightParenthesis:              "RIGHT_PARENTHESIS",
	LeftBrace:                     "LEFT_BRACE",
	RightBrace:                    "RIGHT_BRACE",
	LeftBracket:                   "LEFT_BRACKET",
	RightBracket:                  "RIGHT_BRACKET",
	Comma:                         "COMMA",
	Semicolon:                     "SEMICOLON",
	Colon:                         "COLON",
	Identifier:                    "IDENTIFIER",
	OperatorPlus:                  "OPERATOR_PLUS",
	OperatorPlusAssignment:        "OPERATOR_PLUS_ASSIGNMENT",
	OperatorIncrement:             "OPERATOR_INCREMENT",
	OperatorMinus:                 "OPERATOR_MINUS",
	OperatorMinusAssignment:       "OPERATOR_MINUS_ASSIGNMENT",
	OperatorDecrement:             "OPERATOR_DECREMENT",
	OperatorArrow:                 "OPERATOR_ARROW",
	OperatorMultiply:              "OPERATOR_MULTIPLY",
	OperatorMultiplyAssignment:    "OPERATOR_MULTIPLY_ASSIGNMENT",
	OperatorDivide:                "OPERATOR_DIVIDE",
	OperatorDivideAssignment:      "OPERATOR_DIVIDE_ASSIGNMENT",
	OperatorModulo:                "OPERATOR_MODULO",
	OperatorModuloAssignment:      "OPERATOR_MODULO_ASSIGNMENT",
	OperatorAssignment:            "OPERATOR_ASSIGNMENT",
	OperatorEqual:                 "OPERATOR_EQUAL",
	OperatorBitwiseAnd:            "OPERATOR_BITWISE_AND",
	OperatorBitwiseAndAssignment:  "OPERATOR_BITWISE_AND_ASSIGNMENT",
	OperatorAnd:                   "OPERATOR_AND",
	OperatorBitwiseNot:            "OPERATOR_BITWISE_NOT",
	OperatorBitwiseNotAssignment:  "OPERATOR_BITWISE_NOT_ASSIGNMENT",
	OperatorBitwiseXor:            "OPERATOR_BITWISE_XOR",
	OperatorBitwiseXorAssignment:  "OPERATOR_BITWISE_XOR_ASSIGNMENT",
	OperatorBitwiseOr:             "OPERATOR_BITWISE_OR",
	OperatorBitwiseOrAssignment:   "OPERATOR_BITWISE_OR_ASSIGNMENT",
	OperatorOr:                    "OPERATOR_OR",
	OperatorLessThan:              "OPERATOR_LESS_THAN",
	OperatorLessThanEqual:         "OPERATOR_LESS_THAN_EQUAL",
	OperatorShiftLeft:             "OPERATOR_SHIFT_LEFT",
	OperatorShiftLeftAssignment:   "OPERATOR_SHIFT_LEFT_ASSIGNMENT",
	OperatorGreaterThan:           "OPERATOR_GREATER_THAN",
	OperatorGreaterThanEqual:      "OPERATOR_GREATER_THAN_EQUAL",
	OperatorShiftRight:            "OPERATOR_SHIFT_RIGHT",
	OperatorShiftRightAssignment:  "OPERATOR_SHIFT_RIGHT_ASSIGNMENT",
	OperatorNot:                   "OPERATOR_NOT",
	OperatorNotEqual:              "OPERATOR_NOT_EQUAL",
	OperatorConditional:           "OPERATOR_CONDITIONAL",
	OperatorDot:                   "OPERATOR_DOT",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("keyword(%d)", int(t))
}

/*
KeywordMap maps every recognized keyword spelling to its token type.
*/
var KeywordMap = map[string]Type{
	"if":        KeywordIf,
	"else":      KeywordElse,
	"return":    KeywordReturn,
	"for":       KeywordFor,
	"while":     KeywordWhile,
	"do":        KeywordDo,
	"break":     KeywordBreak,
	"continue":  KeywordContinue,
	"true":      KeywordTrue,
	"false":     KeywordFalse,
	"inline":    KeywordInline,
	"goto":      KeywordGoto,
	"switch":    KeywordSwitch,
	"case":      KeywordCase,
	"default":   KeywordDefault,
	"static":    KeywordStatic,
	"const":     KeywordConst,
	"extern":    KeywordExtern,
	"mutable":   KeywordMutable,
	"auto":      KeywordAuto,
	"typedef":   KeywordTypedef,
	"union":     KeywordUnion,
	"enum":      KeywordEnum,
	"template":  KeywordTemplate,
	"struct":    KeywordStruct,
	"class":     KeywordClass,
	"public":    KeywordPublic,
	"protected": KeywordProtected,
	"private":   KeywordPrivate,
	"new":       KeywordNew,
	"delete":    KeywordDelete,
	"this":      KeywordThis,
	"sizeof":    KeywordSizeof,
	"namespace": KeywordNamespace,
	"using":     KeywordUsing,
	"try":       KeywordTry,
	"catch":     KeywordCatch,
	"throw":     KeywordThrow,
	"noexcept":  KeywordNoexcept,
	"var":       KeywordVar,
	"function":  KeywordFunction,
}

/*
WordOperatorMap maps the eleven word-spelled operators to their token type,
shared with the symbolic spelling they are synonymous with.
*/
var WordOperatorMap = map[string]Type{
	"and_eq":  OperatorBitwiseAndAssignment,
	"or_eq":   OperatorBitwiseOrAssignment,
	"xor_eq":  OperatorBitwiseXorAssignment,
	"compl":   OperatorBitwiseNot,
	"bitand":  OperatorBitwiseAnd,
	"bitor":   OperatorBitwiseOr,
	"xor":     OperatorBitwiseXor,
	"not_eq":  OperatorNotEqual,
	"and":     OperatorAnd,
	"or":      OperatorOr,
	"not":     OperatorNot,
}

/*
Token is a single lexed unit of source text.
*/
type Token struct {
	Kind   Kind
	Type   Type
	Value  string
	Line   int
	Column int
}

func (t Token) String() string {
	if t.Value != "" {
		return fmt.Sprintf("%s(%q)", t.Type, t.Value)
	}
	return t.Type.String()
}
