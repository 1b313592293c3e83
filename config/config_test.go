package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krotik/oslc/logging"
)

func TestStrReadsDefaults(t *testing.T) {
	assert.Equal(t, "  ", Str(DumpIndent))
	assert.Equal(t, "info", Str(LogLevel))
}

func TestIntParsesStoredValue(t *testing.T) {
	Config[EmitIndent] = 4
	defer func() { Config[EmitIndent] = DefaultConfig[EmitIndent] }()

	assert.Equal(t, 4, Int(EmitIndent))
}

func TestBoolParsesStoredValue(t *testing.T) {
	Config["flag"] = true
	defer delete(Config, "flag")

	assert.True(t, Bool("flag"))
}

func TestIndentAcceptsWhitespace(t *testing.T) {
	assert.Equal(t, "  ", Indent(DumpIndent))
	assert.Equal(t, "    ", Indent(EmitIndent))
}

func TestIndentRejectsNonWhitespace(t *testing.T) {
	Config[DumpIndent] = "x "
	defer func() { Config[DumpIndent] = DefaultConfig[DumpIndent] }()

	assert.Panics(t, func() { Indent(DumpIndent) })
}

func TestLevelReadsDefault(t *testing.T) {
	assert.Equal(t, logging.Info, Level())
}

func TestLevelRejectsUnknownValue(t *testing.T) {
	Config[LogLevel] = "bogus"
	defer func() { Config[LogLevel] = DefaultConfig[LogLevel] }()

	assert.Panics(t, func() { Level() })
}
