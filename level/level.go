// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package level checks programs against level files.
//
// A level is a YAML document giving the inbox a program is run with and the
// outbox it is expected to produce:
//
//	name: Mail Room
//	program: |
//	  inbox
//	  outbox
//	inbox: [3, -2, 7]
//	generate: "[x * 2 for x in range(3)]"
//	outbox: [3, -2, 7, 0, 2, 4]
//
// The inbox is the literal values followed by those of the optional
// Starlark generate expression, which must evaluate to an iterable of
// integers.
package level

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"log"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/hrm/internal"
	"github.com/ezrec/hrm/interpreter"
	"github.com/ezrec/hrm/lexer"
	"github.com/ezrec/hrm/tape"
	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	ErrGenerateType = errors.New(f("generate must be an iterable of integers"))
)

// ErrGenerate reports a failed generate expression.
type ErrGenerate struct {
	Expr string
	Err  error
}

func (err *ErrGenerate) Error() string {
	return f("generate '%v' %v", err.Expr, err.Err)
}

func (err *ErrGenerate) Unwrap() error {
	return err.Err
}

// Level is a program challenge.
type Level struct {
	Verbose bool `yaml:"-"` // If set, logs the execution of Check.

	Name     string       `yaml:"name"`
	Program  string       `yaml:"program"`  // Reference solution, optional.
	Inbox    []tape.Value `yaml:"inbox"`    // Literal input values.
	Generate string       `yaml:"generate"` // Starlark expression for more input values.
	Outbox   []tape.Value `yaml:"outbox"`   // Expected output.
}

// Result of checking a program against a level.
type Result struct {
	Output []tape.Value // Values the program sent to the outbox.
	Steps  int          // Instructions executed.
	Passed bool         // Set if Output matched the level outbox.
}

// Load decodes a level. Unknown fields are rejected.
func Load(input io.Reader) (lvl *Level, err error) {
	decoder := yaml.NewDecoder(input)
	decoder.KnownFields(true)

	lvl = &Level{}
	err = decoder.Decode(lvl)
	if err != nil {
		lvl = nil
		return
	}

	return
}

// Lex returns the level's own program.
func (lvl *Level) Lex() lexer.Program {
	return lexer.Lex(lvl.Program)
}

// generate evaluates the generate expression.
func (lvl *Level) generate() (values iter.Seq[tape.Value], err error) {
	if len(lvl.Generate) == 0 {
		return
	}

	defer func() {
		if err != nil {
			err = &ErrGenerate{Expr: lvl.Generate, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "generate"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"CELL_COUNT": starlark.MakeInt(interpreter.CELL_COUNT),
	}
	dict, err := starlark.ExecFileOptions(&opts, &thread, "generate", "rc=("+lvl.Generate+")\n", pred)
	if err != nil {
		return
	}

	st_iter := starlark.Iterate(dict["rc"])
	if st_iter == nil {
		err = ErrGenerateType
		return
	}
	defer st_iter.Done()

	var list []tape.Value
	var st_value starlark.Value
	for st_iter.Next(&st_value) {
		st_int, ok := st_value.(starlark.Int)
		if !ok {
			err = ErrGenerateType
			return
		}
		st_int64, ok := st_int.Int64()
		if !ok || st_int64 != int64(tape.Value(st_int64)) {
			err = tape.ErrParseValue(st_int.String())
			return
		}
		list = append(list, tape.Value(st_int64))
	}

	values = internal.IterSeqOf(list...)
	return
}

// InboxValues returns the complete inbox of the level.
func (lvl *Level) InboxValues() (values []tape.Value, err error) {
	generated, err := lvl.generate()
	if err != nil {
		return
	}

	values = slices.Collect(internal.IterSeqConcat(internal.IterSeqOf(lvl.Inbox...), generated))
	return
}

// Check runs the program on the level inbox and compares the outbox.
//
// A program that fails at runtime returns the error along with the output
// it produced before failing.
func (lvl *Level) Check(prog lexer.Program) (result *Result, err error) {
	values, err := lvl.InboxValues()
	if err != nil {
		return
	}

	ip := interpreter.NewInterpreter()
	ip.Verbose = lvl.Verbose
	output := &bytes.Buffer{}
	ip.Outbox.Output = output
	ip.Inbox = tape.NewInbox(values...)

	err = ip.Load(prog)
	if err != nil {
		return
	}

	run_err := ip.RunLoaded()

	sent, err := tape.ParseInbox(output)
	if err != nil {
		return
	}

	result = &Result{
		Output: sent.Values,
		Steps:  ip.Steps,
		Passed: run_err == nil && slices.Equal(sent.Values, lvl.Outbox),
	}

	if lvl.Verbose {
		log.Printf("level %v: %v steps, passed %v", lvl.Name, result.Steps, result.Passed)
	}

	err = run_err
	return
}
