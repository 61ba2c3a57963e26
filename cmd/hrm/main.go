// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/hrm/interpreter"
	"github.com/ezrec/hrm/level"
	"github.com/ezrec/hrm/lexer"
)

const (
	EXIT_OK    = 0  // Program ran to completion.
	EXIT_ERROR = 1  // Program failed, or did not pass its level.
	EXIT_USAGE = 64 // Bad command line.
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %v [options] SCRIPT\n", os.Args[0])
	fmt.Fprintf(out, "Runs a hand/floor machine program read from SCRIPT.\n\n")
	flag.PrintDefaults()
}

// fatal logs the error and exits.
func fatal(code int, format string, args ...any) {
	log.Printf(format, args...)
	atexit.Exit(code)
}

// lex reads and lexes the program text.
func lex(script string, strict bool) (prog lexer.Program) {
	text, err := os.ReadFile(script)
	if err != nil {
		fatal(EXIT_ERROR, "%v: %v", script, err)
	}

	if !strict {
		return lexer.Lex(string(text))
	}

	prog, errs := lexer.LexStrict(string(text))
	for _, err := range errs {
		log.Printf("%v:%v", script, err)
	}
	if len(errs) != 0 {
		fatal(EXIT_ERROR, "%v: %d problems", script, len(errs))
	}

	return
}

// check runs the program against a level file.
func check(script string, prog lexer.Program, path string, verbose bool) {
	inf, err := os.Open(path)
	if err != nil {
		fatal(EXIT_ERROR, "%v: %v", path, err)
	}
	defer inf.Close()

	lvl, err := level.Load(inf)
	if err != nil {
		fatal(EXIT_ERROR, "%v: %v", path, err)
	}
	lvl.Verbose = verbose

	result, err := lvl.Check(prog)
	if err != nil {
		fatal(EXIT_ERROR, "%v:%v", script, err)
	}

	if !result.Passed {
		fatal(EXIT_ERROR, "%v: %v: expected %v, got %v", script, lvl.Name, lvl.Outbox, result.Output)
	}

	fmt.Printf("%v: passed in %d steps\n", lvl.Name, result.Steps)
}

// run executes the program with an optional inbox file.
func run(script string, prog lexer.Program, input string, output string, verbose bool) {
	ip := interpreter.NewInterpreter()
	ip.Verbose = verbose

	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			fatal(EXIT_ERROR, "%v: %v", output, err)
		}
		atexit.Register(func() { ouf.Close() })
		ip.Outbox.Output = ouf
	}

	var in io.Reader
	switch input {
	case "":
		// No inbox.
	case "-":
		in = os.Stdin
	default:
		inf, err := os.Open(input)
		if err != nil {
			fatal(EXIT_ERROR, "%v: %v", input, err)
		}
		defer inf.Close()
		in = inf
	}

	err := ip.Run(prog, in)

	if verbose {
		log.Printf("%v: %d steps\n%v", script, ip.Steps, ip)
	}

	if err != nil {
		fatal(EXIT_ERROR, "%v:%v", script, err)
	}
}

func main() {
	var input string
	var output string
	var levelPath string
	var strict bool
	var verbose bool

	flag.StringVar(&input, "i", "", "Inbox input file, '-' for stdin (default no inbox)")
	flag.StringVar(&output, "o", "-", "Outbox output file")
	flag.StringVar(&levelPath, "l", "", "Level .yaml file to check the program against")
	flag.BoolVar(&strict, "strict", false, "Refuse programs with unrecognized words")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = usage

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		atexit.Exit(EXIT_USAGE)
	}

	script := flag.Arg(0)
	prog := lex(script, strict)

	if len(levelPath) != 0 {
		check(script, prog, levelPath, verbose)
	} else {
		run(script, prog, input, output, verbose)
	}

	atexit.Exit(EXIT_OK)
}
