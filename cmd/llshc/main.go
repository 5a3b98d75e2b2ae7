// Command llshc checks llshader source files.
//
// Usage:
//
//	llshc [options] <input>
//	llshc -i
//
// Examples:
//
//	llshc shader.llsl            # Parse and check
//	llshc -tokens shader.llsl    # Print the token stream
//	llshc -recover shader.llsl   # Report every syntax error
//	llshc -i                     # Interactive session
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/llshader"
	"github.com/gogpu/llshader/llsl"
)

const llshcVersion = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := loadConfig()

	fs := flag.NewFlagSet("llshc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tokens := fs.Bool("tokens", false, "print the token stream and exit")
	recoverFlag := fs.Bool("recover", cfg.recover, "keep parsing after a syntax error")
	color := fs.Bool("color", cfg.color, "color diagnostics")
	interactive := fs.Bool("i", false, "start an interactive session")
	version := fs.Bool("version", false, "print version")
	fs.Usage = func() { usage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg.recover = *recoverFlag
	cfg.color = *color

	if *version {
		fmt.Fprintf(stdout, "llshc version %s\n", llshcVersion)
		return 0
	}

	if *interactive {
		return runREPL(cfg, stdout, stderr)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Error: no input file specified")
		fs.Usage()
		return 1
	}

	inputPath := fs.Arg(0)
	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file: %v\n", err)
		return 1
	}

	if *tokens {
		return dumpTokens(string(source), stdout)
	}

	opts := llshader.DefaultOptions()
	opts.BufferName = inputPath
	opts.Recover = cfg.recover
	prog, err := llshader.FrontendWithOptions(string(source), opts)
	if err != nil {
		printError(stderr, err, cfg.color)
		return 1
	}

	fmt.Fprintf(stdout, "%s: ok (%d statements, %d bindings)\n",
		inputPath, len(prog.Statements), prog.Info.Bindings)
	return 0
}

func dumpTokens(source string, w io.Writer) int {
	lexer := llsl.NewLexer(source)
	for {
		tok := lexer.Next()
		fmt.Fprintf(w, "%d:%d\t%-14s %q\n", tok.Line, tok.Column, tok.Kind, tok.Lexeme)
		if tok.Kind == llsl.TokenEOF {
			return 0
		}
	}
}

// printError prints source errors with context, other errors plainly.
func printError(w io.Writer, err error, color bool) {
	var list llsl.SourceErrors
	msg := err.Error()
	if errors.As(err, &list) {
		msg = list.FormatAll()
	}
	if color {
		msg = red(msg)
	}
	fmt.Fprintln(w, msg)
}

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: llshc [options] <input>\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  llshc shader.llsl            Parse and check\n")
	fmt.Fprintf(w, "  llshc -tokens shader.llsl    Print the token stream\n")
	fmt.Fprintf(w, "  llshc -i                     Interactive session\n")
}
