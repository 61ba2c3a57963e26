package interpreter

import (
	"errors"

	"github.com/ezrec/hrm/lexer"
	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	// Load and execution errors
	ErrUnexistedJumpTarget = errors.New(f("unexisted jump target"))
	ErrUndefinedInputBox   = errors.New(f("undefined input box"))
	ErrEmptyInBox          = errors.New(f("empty inbox"))
	ErrEmptyFloorValue     = errors.New(f("empty floor value"))
	ErrEmptyHandValue      = errors.New(f("empty hand value"))
	ErrCellIndexOutOfRange = errors.New(f("cell index out of range"))

	// Misuse of the interpreter
	ErrOpcodeInvalid    = errors.New(f("opcode invalid"))
	ErrProgramNotLoaded = errors.New(f("program not loaded"))
)

// ErrLabelMissing is an ErrUnexistedJumpTarget naming the label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("jump target '%v' missing", string(el))
}

func (el ErrLabelMissing) Unwrap() error {
	return ErrUnexistedJumpTarget
}

// ErrCell is an error about a specific floor cell.
type ErrCell struct {
	Cell int
	Err  error
}

func (err ErrCell) Error() string {
	return f("cell %d %v", err.Cell, err.Err)
}

func (err ErrCell) Unwrap() error {
	return err.Err
}

// ErrLocated is an error raised by the instruction at Location.
type ErrLocated struct {
	lexer.Located[error]
}

func (err *ErrLocated) Error() string {
	return f("%v: %v", err.Location.String(), err.Value)
}

func (err *ErrLocated) Unwrap() error {
	return err.Value
}

// locate attaches the location of an instruction to an error.
func locate(err error, ins lexer.Instruction) *ErrLocated {
	return &ErrLocated{Located: lexer.At(err, ins.Location)}
}
