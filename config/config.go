/*
 * OSLC
 *
 * OSL front-end compiler. Adapted from the ECAL config package.
 */

// Package config holds the compiler's global settings: its version
// string and the tunables read by the CLI driver and AST dumper.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"devt.de/krotik/common/errorutil"

	"github.com/krotik/oslc/logging"
)

/*
ProductVersion is the current version of the compiler.
*/
const ProductVersion = "1.0.0"

/*
Known configuration keys.
*/
const (
	DumpIndent = "DumpIndent"
	EmitIndent = "EmitIndent"
	LogLevel   = "LogLevel"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	DumpIndent: "  ",
	EmitIndent: "    ",
	LogLevel:   "info",
}

/*
Config is the actual configuration in use.
*/
var Config map[string]interface{}

func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}
	Config = data
}

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}

/*
Indent reads DumpIndent or EmitIndent and asserts the result holds only
whitespace. The driver splices DumpIndent in front of AST-dump lines,
where a non-whitespace indent would corrupt output. EmitIndent is not
read by the emit package, which always indents with four spaces.
*/
func Indent(key string) string {
	v := Str(key)

	errorutil.AssertTrue(strings.TrimSpace(v) == "",
		fmt.Sprintf("Config key %v must hold only whitespace, got %q", key, v))

	return v
}

/*
Level reads LogLevel as a logging.Level, asserting it names one of the
three levels the logging package recognizes.
*/
func Level() logging.Level {
	l := logging.Level(strings.ToLower(Str(LogLevel)))

	errorutil.AssertTrue(l == logging.Debug || l == logging.Info || l == logging.Error,
		fmt.Sprintf("Invalid log level in config: %v", Str(LogLevel)))

	return l
}
