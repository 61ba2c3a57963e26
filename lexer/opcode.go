package lexer

import (
	"fmt"
	"strings"
)

// Opcode is an instruction type.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode

const (
	OP_INBOX        = Opcode(0)  // inbox
	OP_OUTBOX       = Opcode(1)  // outbox
	OP_COPYFROM     = Opcode(2)  // copyfrom
	OP_COPYTO       = Opcode(3)  // copyto
	OP_ADD          = Opcode(4)  // add
	OP_SUB          = Opcode(5)  // sub
	OP_BUMP_PLUS    = Opcode(6)  // bump_plus
	OP_BUMP_MINUS   = Opcode(7)  // bump_minus
	OP_JUMP         = Opcode(8)  // jump
	OP_JUMP_IF_ZERO = Opcode(9)  // jump_if_zero
	OP_JUMP_IF_NEG  = Opcode(10) // jump_if_neg
	OP_JUMP_TARGET  = Opcode(11) // jump_target
)

// ArgClass is the kind of argument an opcode takes.
type ArgClass int

const (
	ARG_NONE  = ArgClass(0) // No argument.
	ARG_CELL  = ArgClass(1) // Non-negative floor cell index.
	ARG_LABEL = ArgClass(2) // Jump label.
)

var opcodeArg = [...]ArgClass{
	OP_INBOX:        ARG_NONE,
	OP_OUTBOX:       ARG_NONE,
	OP_COPYFROM:     ARG_CELL,
	OP_COPYTO:       ARG_CELL,
	OP_ADD:          ARG_CELL,
	OP_SUB:          ARG_CELL,
	OP_BUMP_PLUS:    ARG_CELL,
	OP_BUMP_MINUS:   ARG_CELL,
	OP_JUMP:         ARG_LABEL,
	OP_JUMP_IF_ZERO: ARG_LABEL,
	OP_JUMP_IF_NEG:  ARG_LABEL,
	OP_JUMP_TARGET:  ARG_LABEL,
}

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodeArg))
	for op := range Opcode(len(opcodeArg)) {
		m[op.String()] = op
	}
	return m
}()

// LookupOpcode finds the opcode for a mnemonic.
func LookupOpcode(name string) (op Opcode, ok bool) {
	op, ok = opcodeMap[name]
	return
}

func (op Opcode) valid() bool {
	return op >= 0 && int(op) < len(opcodeArg)
}

// Arg returns the argument class of the opcode.
func (op Opcode) Arg() ArgClass {
	if !op.valid() {
		return ARG_NONE
	}
	return opcodeArg[op]
}

// IsJump is true for the opcodes that transfer control to a jump target.
func (op Opcode) IsJump() bool {
	switch op {
	case OP_JUMP, OP_JUMP_IF_ZERO, OP_JUMP_IF_NEG:
		return true
	}
	return false
}

// Operation is a decoded instruction. Cell is only meaningful for
// ARG_CELL opcodes, Label only for ARG_LABEL opcodes.
type Operation struct {
	Opcode Opcode
	Cell   int
	Label  string
}

// Inbox takes the next inbox value into the hand.
func Inbox() Operation { return Operation{Opcode: OP_INBOX} }

// Outbox sends the hand to the outbox.
func Outbox() Operation { return Operation{Opcode: OP_OUTBOX} }

// CopyFrom copies a floor cell into the hand.
func CopyFrom(cell int) Operation { return Operation{Opcode: OP_COPYFROM, Cell: cell} }

// CopyTo copies the hand into a floor cell.
func CopyTo(cell int) Operation { return Operation{Opcode: OP_COPYTO, Cell: cell} }

// Add adds a floor cell to the hand.
func Add(cell int) Operation { return Operation{Opcode: OP_ADD, Cell: cell} }

// Sub subtracts a floor cell from the hand.
func Sub(cell int) Operation { return Operation{Opcode: OP_SUB, Cell: cell} }

// BumpPlus increments a floor cell, and copies it into the hand.
func BumpPlus(cell int) Operation { return Operation{Opcode: OP_BUMP_PLUS, Cell: cell} }

// BumpMinus decrements a floor cell, and copies it into the hand.
func BumpMinus(cell int) Operation { return Operation{Opcode: OP_BUMP_MINUS, Cell: cell} }

// Jump always jumps to label.
func Jump(label string) Operation { return Operation{Opcode: OP_JUMP, Label: label} }

// JumpIfZero jumps to label when the hand is zero.
func JumpIfZero(label string) Operation { return Operation{Opcode: OP_JUMP_IF_ZERO, Label: label} }

// JumpIfNeg jumps to label when the hand is negative.
func JumpIfNeg(label string) Operation { return Operation{Opcode: OP_JUMP_IF_NEG, Label: label} }

// JumpTarget marks label as a jump destination.
func JumpTarget(label string) Operation { return Operation{Opcode: OP_JUMP_TARGET, Label: label} }

// String returns the operation in source form.
func (op Operation) String() string {
	switch op.Opcode.Arg() {
	case ARG_CELL:
		return fmt.Sprintf("%v %d", op.Opcode, op.Cell)
	case ARG_LABEL:
		return fmt.Sprintf("%v %v", op.Opcode, op.Label)
	}
	return op.Opcode.String()
}

// Instruction is an operation with the location of its source text.
type Instruction = Located[Operation]

// Program is an ordered list of instructions.
type Program []Instruction

// String returns the program listing, one instruction per line.
func (prog Program) String() string {
	var sb strings.Builder
	for _, ins := range prog {
		sb.WriteString(ins.Value.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
