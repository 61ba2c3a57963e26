package lexer

import (
	"errors"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	ErrOpcodeUnknown   = errors.New(f("unknown opcode"))
	ErrArgumentMissing = errors.New(f("argument missing"))
	ErrArgumentInvalid = errors.New(f("argument invalid"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
)

// ErrSyntax reports a word the lexer dropped or flagged.
type ErrSyntax struct {
	Location Location
	Word     string
	Err      error
}

func (err ErrSyntax) Error() string {
	return f("%v '%v' %v", err.Location, err.Word, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
