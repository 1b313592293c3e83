package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/oslc/lexer"
	"github.com/krotik/oslc/parser"
)

func TestNewDiagnosticFromLexError(t *testing.T) {
	_, err := lexer.TokenizeToSlice("t", "1e5;")
	require.Error(t, err)

	d, ok := NewDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, "lexical", d.Stage)
	assert.Equal(t, "t", d.Source)
	assert.Equal(t, 1, d.Line)
}

func TestNewDiagnosticFromParseError(t *testing.T) {
	tokens, err := lexer.TokenizeToSlice("t", "123;")
	require.NoError(t, err)

	_, err = parser.Parse("t", tokens)
	require.Error(t, err)

	d, ok := NewDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, "syntax", d.Stage)
	assert.Equal(t, "t", d.Source)
}

func TestNewDiagnosticRejectsOtherErrors(t *testing.T) {
	_, ok := NewDiagnostic(errors.New("boom"))
	assert.False(t, ok)
}

func TestLogCompileErrorUsesDiagnosticForm(t *testing.T) {
	tokens, err := lexer.TokenizeToSlice("t", "123;")
	require.NoError(t, err)
	_, err = parser.Parse("t", tokens)
	require.Error(t, err)

	ml := NewMemoryLogger(4)
	LogCompileError(ml, err)

	lines := ml.Slice()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "syntax error")
}

func TestLogCompileErrorFallsBackForPlainErrors(t *testing.T) {
	ml := NewMemoryLogger(4)
	LogCompileError(ml, errors.New("boom"))

	lines := ml.Slice()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "boom")
}

func TestLevelLoggerFiltering(t *testing.T) {
	ml := NewMemoryLogger(8)
	ll := NewLevelLoggerAt(ml, Info)

	ll.LogDebug("hidden")
	ll.LogInfo("shown")
	ll.LogError("always shown")

	lines := ml.Slice()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "shown")
	assert.Contains(t, lines[1], "error: always shown")
}

func TestNewLevelLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLevelLogger(NewNullLogger(), "bogus")
	assert.Error(t, err)
}
