// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lexer

import (
	"math"
	"strconv"
	"strings"
)

// chunk is a whitespace delimited word of the program text.
type chunk = Located[string]

// isSpace matches the ASCII whitespace set (no vertical tab).
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// split breaks the text into words, each located at its first character.
func split(text string) (chunks []chunk) {
	line, column := 1, 1
	start := -1
	var loc Location

	for n, r := range text {
		if isSpace(r) {
			if start >= 0 {
				chunks = append(chunks, At(text[start:n], loc))
				start = -1
			}
			if r == '\n' {
				line++
				column = 1
				continue
			}
		} else if start < 0 {
			start = n
			loc = Location{Line: line, Column: column}
		}
		column++
	}

	// Text may or may not end with a newline.
	if start >= 0 {
		chunks = append(chunks, At(text[start:], loc))
	}

	return
}

// parseCell parses a base-10 non-negative cell index, with an optional
// leading '+'. Any 64 bit index is accepted; one that does not fit an int
// is clamped to math.MaxInt, which is still out of range for the floor.
func parseCell(word string) (cell int, ok bool) {
	v, err := strconv.ParseUint(strings.TrimPrefix(word, "+"), 10, 64)
	if err != nil {
		return
	}
	if v > math.MaxInt {
		return math.MaxInt, true
	}
	return int(v), true
}

// lex scans the words into instructions, calling report for each word
// that was dropped.
func lex(text string, report func(err ErrSyntax)) (prog Program) {
	chunks := split(text)
	prog = Program{}

	for i := 0; i < len(chunks); {
		word := chunks[i]

		op, ok := LookupOpcode(word.Value)
		if !ok {
			report(ErrSyntax{Location: word.Location, Word: word.Value, Err: ErrOpcodeUnknown})
			i++
			continue
		}

		arg := op.Arg()
		if arg == ARG_NONE {
			prog = append(prog, At(Operation{Opcode: op}, word.Location))
			i++
			continue
		}

		if i+1 >= len(chunks) {
			report(ErrSyntax{Location: word.Location, Word: word.Value, Err: ErrArgumentMissing})
			i++
			continue
		}

		next := chunks[i+1]
		operation := Operation{Opcode: op}
		switch arg {
		case ARG_CELL:
			operation.Cell, ok = parseCell(next.Value)
		case ARG_LABEL:
			operation.Label = next.Value
		}
		if !ok {
			// Only the opcode is consumed; the argument is scanned
			// again as a word of its own.
			report(ErrSyntax{Location: next.Location, Word: next.Value, Err: ErrArgumentInvalid})
			i++
			continue
		}

		prog = append(prog, At(operation, next.Location))
		i += 2
	}

	return
}

// Lex converts program text into a Program.
//
// Lex never fails: unknown words, and opcodes whose argument is missing or
// malformed, are silently dropped. An instruction with an argument is
// located at the argument, otherwise at the opcode.
func Lex(text string) Program {
	return lex(text, func(ErrSyntax) {})
}

// LexStrict lexes exactly like Lex, and also returns an ErrSyntax for each
// dropped word and for each repeated jump target label.
func LexStrict(text string) (prog Program, errs []error) {
	prog = lex(text, func(err ErrSyntax) {
		errs = append(errs, err)
	})

	targets := map[string]bool{}
	for _, ins := range prog {
		if ins.Value.Opcode != OP_JUMP_TARGET {
			continue
		}
		label := ins.Value.Label
		if targets[label] {
			errs = append(errs, ErrSyntax{Location: ins.Location, Word: label, Err: ErrLabelDuplicate})
		}
		targets[label] = true
	}

	return
}
