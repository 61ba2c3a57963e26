// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package interpreter executes lexed programs on the hand/floor machine.
//
// The machine has a single register (the hand), CELL_COUNT floor cells, an
// optional inbox and an outbox. The hand and every cell start empty; reading
// an empty one is an error. Running a program is two phases: Load resolves
// every jump label to an instruction index, then Step executes one
// instruction at a time until the cursor passes the end of the program.
//
// Taking from an exhausted inbox is the normal way for a program to end, and
// is not reported as an error.
package interpreter

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/ezrec/hrm/lexer"
	"github.com/ezrec/hrm/tape"
)

const (
	CELL_COUNT = 6 // Number of floor cells.
)

// TraceFunc observes an instruction just before it executes.
type TraceFunc func(step int, cursor int, ins lexer.Instruction)

// Interpreter is the machine state for running a single program.
type Interpreter struct {
	Verbose bool      // Set to log every executed instruction.
	Trace   TraceFunc // If set, called before every instruction.

	Hand   Slot             // The hand register.
	Cells  [CELL_COUNT]Slot // The floor.
	Cursor int              // Index of the next instruction.
	Steps  int              // Instructions executed since Load.

	Inbox  *tape.Inbox // Input queue; nil when no input is configured.
	Outbox tape.Outbox // Output sink.

	Program   lexer.Program // Program being executed.
	Exhausted bool          // Set when the program ended on an empty inbox.

	jumpTable map[int]int // Jump instruction index to target index.
}

// NewInterpreter creates an interpreter that prints to stdout.
func NewInterpreter() (ip *Interpreter) {
	ip = &Interpreter{}
	ip.Outbox.Output = os.Stdout

	return
}

// Reset clears the hand, floor, cursor and loaded program.
// The inbox and outbox are left alone.
func (ip *Interpreter) Reset() {
	ip.Hand.Clear()
	clear(ip.Cells[:])
	ip.Cursor = 0
	ip.Steps = 0
	ip.Exhausted = false
	ip.Program = nil
	ip.jumpTable = nil
}

// Load resets the machine and resolves the jump labels of the program.
//
// When a label is used by more than one jump target, the last one wins.
// If any jump refers to a label with no jump target, the load fails at that
// jump and the program cannot be stepped.
func (ip *Interpreter) Load(prog lexer.Program) (err error) {
	ip.Reset()

	targets := make(map[string]int)
	for n, ins := range prog {
		if ins.Value.Opcode != lexer.OP_JUMP_TARGET {
			continue
		}
		label := ins.Value.Label
		if prior, ok := targets[label]; ok && ip.Verbose {
			log.Printf("%v: jump target '%v' replaces %v", ins.Location, label, prog[prior].Location)
		}
		targets[label] = n
	}

	table := make(map[int]int)
	for n, ins := range prog {
		if !ins.Value.Opcode.IsJump() {
			continue
		}
		target, ok := targets[ins.Value.Label]
		if !ok {
			err = locate(ErrLabelMissing(ins.Value.Label), ins)
			return
		}
		table[n] = target
	}

	ip.Program = prog
	ip.jumpTable = table

	return
}

// SetInput replaces the inbox with the values of an input stream.
// A nil input removes the inbox.
func (ip *Interpreter) SetInput(input io.Reader) (err error) {
	if input == nil {
		ip.Inbox = nil
		return
	}

	ip.Inbox, err = tape.ParseInbox(input)
	return
}

// Run loads the program, sets the inbox from input (which may be nil), and
// executes until the program halts or fails.
func (ip *Interpreter) Run(prog lexer.Program, input io.Reader) (err error) {
	err = ip.Load(prog)
	if err != nil {
		return
	}

	err = ip.SetInput(input)
	if err != nil {
		return
	}

	return ip.RunLoaded()
}

// RunLoaded executes the loaded program until it halts or fails.
func (ip *Interpreter) RunLoaded() (err error) {
	var done bool
	for !done {
		done, err = ip.Step()
	}

	return
}

// Step executes the instruction at the cursor.
//
// done is set once the program has halted, either by running past its last
// instruction, by taking from an exhausted inbox, or because of err.
func (ip *Interpreter) Step() (done bool, err error) {
	if ip.jumpTable == nil {
		done = true
		err = ErrProgramNotLoaded
		return
	}

	if ip.Cursor >= len(ip.Program) {
		done = true
		return
	}

	ins := ip.Program[ip.Cursor]

	if ip.Trace != nil {
		ip.Trace(ip.Steps, ip.Cursor, ins)
	}

	if ip.Verbose {
		log.Printf("%03d: %v", ip.Cursor, ins)
	}

	err = ip.Execute(ins.Value)
	if errors.Is(err, ErrEmptyInBox) {
		if ip.Verbose {
			log.Printf("%v: inbox exhausted, halting", ins.Location)
		}
		ip.Exhausted = true
		done = true
		err = nil
		return
	}
	if err != nil {
		done = true
		err = locate(err, ins)
		return
	}

	ip.Steps++
	done = ip.Cursor >= len(ip.Program)

	return
}

// cell returns the floor cell at index.
func (ip *Interpreter) cell(index int) (slot *Slot, err error) {
	if index < 0 || index >= len(ip.Cells) {
		err = ErrCell{Cell: index, Err: ErrCellIndexOutOfRange}
		return
	}

	slot = &ip.Cells[index]
	return
}

// floor returns the value of the floor cell at index.
func (ip *Interpreter) floor(index int) (slot *Slot, value tape.Value, err error) {
	slot, err = ip.cell(index)
	if err != nil {
		return
	}

	value, ok := slot.Get()
	if !ok {
		err = ErrCell{Cell: index, Err: ErrEmptyFloorValue}
	}
	return
}

// hand returns the value in the hand.
func (ip *Interpreter) hand() (value tape.Value, err error) {
	value, ok := ip.Hand.Get()
	if !ok {
		err = ErrEmptyHandValue
	}
	return
}

// target returns the resolved destination of the jump at the cursor.
func (ip *Interpreter) target(label string) (next int, err error) {
	next, ok := ip.jumpTable[ip.Cursor]
	if !ok {
		err = ErrLabelMissing(label)
	}
	return
}

// Execute executes a single operation as if it were at the cursor, and
// moves the cursor on. On error the machine is left as it was.
func (ip *Interpreter) Execute(op lexer.Operation) (err error) {
	next := ip.Cursor + 1

	switch op.Opcode {
	case lexer.OP_INBOX:
		if ip.Inbox == nil {
			return ErrUndefinedInputBox
		}
		value, ok := ip.Inbox.Pop()
		if !ok {
			return ErrEmptyInBox
		}
		ip.Hand.Set(value)
	case lexer.OP_OUTBOX:
		var value tape.Value
		value, err = ip.hand()
		if err != nil {
			return
		}
		err = ip.Outbox.Send(value)
		if err != nil {
			return
		}
		ip.Hand.Clear()
	case lexer.OP_COPYFROM:
		var value tape.Value
		_, value, err = ip.floor(op.Cell)
		if err != nil {
			return
		}
		ip.Hand.Set(value)
	case lexer.OP_COPYTO:
		var slot *Slot
		slot, err = ip.cell(op.Cell)
		if err != nil {
			return
		}
		var value tape.Value
		value, err = ip.hand()
		if err != nil {
			return
		}
		slot.Set(value)
	case lexer.OP_ADD, lexer.OP_SUB:
		var floor, hand tape.Value
		_, floor, err = ip.floor(op.Cell)
		if err != nil {
			return
		}
		hand, err = ip.hand()
		if err != nil {
			return
		}
		if op.Opcode == lexer.OP_ADD {
			ip.Hand.Set(hand + floor)
		} else {
			ip.Hand.Set(hand - floor)
		}
	case lexer.OP_BUMP_PLUS, lexer.OP_BUMP_MINUS:
		var slot *Slot
		var value tape.Value
		slot, value, err = ip.floor(op.Cell)
		if err != nil {
			return
		}
		if op.Opcode == lexer.OP_BUMP_PLUS {
			value++
		} else {
			value--
		}
		slot.Set(value)
		ip.Hand.Set(value)
	case lexer.OP_JUMP:
		next, err = ip.target(op.Label)
	case lexer.OP_JUMP_IF_ZERO:
		if value, ok := ip.Hand.Get(); ok && value == 0 {
			next, err = ip.target(op.Label)
		}
	case lexer.OP_JUMP_IF_NEG:
		if value, ok := ip.Hand.Get(); ok && value < 0 {
			next, err = ip.target(op.Label)
		}
	case lexer.OP_JUMP_TARGET:
		// no-op
	default:
		err = ErrOpcodeInvalid
	}

	if err != nil {
		return
	}

	ip.Cursor = next

	return
}
