/*
 * OSLC
 *
 * OSL front-end compiler. Adapted from the ECAL command-line driver.
 */

// Command oslc is the one-shot OSL compile driver: it lexes and parses
// an input file and, optionally, dumps the token stream, dumps the
// AST, or emits a target-dialect shader file.
package main

import (
	"flag"
	"fmt"
	"os"

	"devt.de/krotik/common/fileutil"

	"github.com/krotik/oslc/astdump"
	"github.com/krotik/oslc/config"
	"github.com/krotik/oslc/emit"
	"github.com/krotik/oslc/lexer"
	"github.com/krotik/oslc/logging"
	"github.com/krotik/oslc/parser"
)

var log logging.Logger = logging.NewLevelLoggerAt(logging.NewStdOutLogger(), config.Level())

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("oslc", flag.ContinueOnError)

	input := fs.String("input", "", "source file path (required)")
	printTokens := fs.Bool("print-tokens", false, "dump the token stream to stdout")
	printAST := fs.Bool("print-ast", false, "dump the AST to stdout")
	format := fs.String("format", "", "target dialect: hlsl, glsl or metal")
	output := fs.String("output", "", "output file path (required if --format is given)")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "oslc %v - OSL front-end compiler\n\n", config.ProductVersion)
		fmt.Fprintln(fs.Output(), "Usage: oslc --input PATH [--print-tokens] [--print-ast] [--format {hlsl|glsl|metal} --output PATH]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if err := execute(*input, *printTokens, *printAST, *format, *output); err != nil {
		logging.LogCompileError(log, err)
		return 1
	}
	return 0
}

func execute(input string, printTokens, printAST bool, format, output string) error {
	if input == "" {
		return fmt.Errorf("--input is required")
	}

	if ok, _ := fileutil.PathExists(input); !ok {
		return fmt.Errorf("input file does not exist: %s", input)
	}

	if format != "" && output == "" {
		return fmt.Errorf("--output is required when --format is given")
	}

	source, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", input, err)
	}

	log.LogInfo("lexing ", input)
	tokens, err := lexer.TokenizeToSlice(input, string(source))
	if err != nil {
		return err
	}

	if printTokens {
		fmt.Print(astdump.Tokens(tokens))
	}

	log.LogInfo("parsing ", input)
	root, err := parser.Parse(input, tokens)
	if err != nil {
		return err
	}

	if printAST {
		fmt.Print(astdump.Tree(root, config.Indent(config.DumpIndent)))
	}

	if format == "" {
		return nil
	}

	dialect, err := dialectFor(format)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", output, err)
	}
	defer out.Close()

	log.LogInfo("emitting ", format, " to ", output)
	if err := emit.Emit(out, dialect, root); err != nil {
		return fmt.Errorf("could not emit %s: %w", format, err)
	}

	return nil
}

func dialectFor(format string) (emit.Dialect, error) {
	switch format {
	case "hlsl":
		return emit.HLSL, nil
	case "glsl":
		return emit.GLSL, nil
	case "metal":
		return emit.Metal, nil
	}
	return 0, fmt.Errorf("unknown format: %s", format)
}
