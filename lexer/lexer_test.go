package lexer

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLex_Empty(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, len(Lex("")))
	assert.Equal(0, len(Lex(" \n\t\r\n")))
}

func TestLex_AllOpcodes(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"inbox",
		"outbox",
		"copyfrom 0",
		"copyto 1",
		"add 2",
		"sub 3",
		"bump_plus 4",
		"bump_minus 5",
		"jump a",
		"jump_if_zero b",
		"jump_if_neg c",
		"jump_target a",
	}

	prog := Lex(strings.Join(program, "\n"))

	expected := Program{
		{Inbox(), Location{1, 1}},
		{Outbox(), Location{2, 1}},
		{CopyFrom(0), Location{3, 10}},
		{CopyTo(1), Location{4, 8}},
		{Add(2), Location{5, 5}},
		{Sub(3), Location{6, 5}},
		{BumpPlus(4), Location{7, 11}},
		{BumpMinus(5), Location{8, 12}},
		{Jump("a"), Location{9, 6}},
		{JumpIfZero("b"), Location{10, 14}},
		{JumpIfNeg("c"), Location{11, 13}},
		{JumpTarget("a"), Location{12, 13}},
	}

	assert.Equal(expected, prog)
	assert.Equal(strings.Join(program, "\n")+"\n", prog.String())
}

func TestLex_TrailingNewline(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Lex("inbox\noutbox"), Lex("inbox\noutbox\n"))
}

func TestLex_Columns(t *testing.T) {
	assert := assert.New(t)

	prog := Lex("  inbox\t\tcopyto   3\n\n   jump_target  x")
	expected := Program{
		{Inbox(), Location{1, 3}},
		{CopyTo(3), Location{1, 19}},
		{JumpTarget("x"), Location{3, 17}},
	}
	assert.Equal(expected, prog)
}

func TestLex_ColumnsCountCharacters(t *testing.T) {
	assert := assert.New(t)

	prog := Lex("héllo inbox")
	assert.Equal(Program{{Inbox(), Location{1, 7}}}, prog)
}

func TestLex_UnknownWordsDropped(t *testing.T) {
	assert := assert.New(t)

	prog := Lex("-- comment\ninbox\nfoo bar\noutbox")
	expected := Program{
		{Inbox(), Location{2, 1}},
		{Outbox(), Location{4, 1}},
	}
	assert.Equal(expected, prog)
}

func TestLex_BadArgumentConsumesOpcodeOnly(t *testing.T) {
	assert := assert.New(t)

	// "copyfrom inbox": the argument is not a number, so "inbox" is
	// lexed as an instruction of its own.
	prog := Lex("copyfrom inbox")
	assert.Equal(Program{{Inbox(), Location{1, 10}}}, prog)

	prog = Lex("copyto -1\nadd x\nsub ++2\noutbox")
	assert.Equal(Program{{Outbox(), Location{4, 1}}}, prog)
}

func TestLex_UnknownWordConsumesOne(t *testing.T) {
	assert := assert.New(t)

	prog := Lex("foo inbox bar outbox")
	expected := Program{
		{Inbox(), Location{1, 5}},
		{Outbox(), Location{1, 15}},
	}
	assert.Equal(expected, prog)
}

func TestLex_CellIndexPlusSign(t *testing.T) {
	assert := assert.New(t)

	prog := Lex("sub +2\ncopyto +0")
	expected := Program{
		{Sub(2), Location{1, 5}},
		{CopyTo(0), Location{2, 8}},
	}
	assert.Equal(expected, prog)

	assert.Equal(0, len(Lex("add +")))
	assert.Equal(0, len(Lex("add -0")))
}

func TestLex_MissingArgument(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, len(Lex("copyfrom")))
	assert.Equal(0, len(Lex("jump\n")))
	assert.Equal(Program{{Inbox(), Location{1, 1}}}, Lex("inbox bump_plus"))
}

func TestLex_LabelArgumentIsAnyWord(t *testing.T) {
	assert := assert.New(t)

	prog := Lex("jump inbox\njump_target 12")
	expected := Program{
		{Jump("inbox"), Location{1, 6}},
		{JumpTarget("12"), Location{2, 13}},
	}
	assert.Equal(expected, prog)
}

func TestLex_LargeCellIndex(t *testing.T) {
	assert := assert.New(t)

	prog := Lex("copyfrom 1000")
	assert.Equal(Program{{CopyFrom(1000), Location{1, 10}}}, prog)

	// Indexes past the int range are kept, clamped to MaxInt.
	prog = Lex("copyfrom 10000000000000000000")
	assert.Equal(Program{{CopyFrom(math.MaxInt), Location{1, 10}}}, prog)

	prog = Lex("copyfrom 18446744073709551615")
	assert.Equal(Program{{CopyFrom(math.MaxInt), Location{1, 10}}}, prog)

	// Past 64 bits is not a cell index at all.
	prog = Lex("copyfrom 18446744073709551616")
	assert.Equal(0, len(prog))
}

func TestLexStrict(t *testing.T) {
	assert := assert.New(t)

	text := "foo\ninbox\ncopyfrom x\njump\n"
	prog, errs := LexStrict(text)

	assert.Equal(Lex(text), prog)
	if assert.Equal(4, len(errs)) {
		assert.Equal(ErrSyntax{Location{1, 1}, "foo", ErrOpcodeUnknown}, errs[0])
		assert.Equal(ErrSyntax{Location{3, 10}, "x", ErrArgumentInvalid}, errs[1])
		assert.Equal(ErrSyntax{Location{3, 10}, "x", ErrOpcodeUnknown}, errs[2])
		assert.Equal(ErrSyntax{Location{4, 1}, "jump", ErrArgumentMissing}, errs[3])
	}

	assert.True(errors.Is(errs[0], ErrOpcodeUnknown))
	assert.Contains(errs[0].Error(), "1:1")
}

func TestLexStrict_DuplicateLabel(t *testing.T) {
	assert := assert.New(t)

	prog, errs := LexStrict("jump_target a\njump_target b\njump_target a\n")
	assert.Equal(3, len(prog))
	if assert.Equal(1, len(errs)) {
		assert.ErrorIs(errs[0], ErrLabelDuplicate)
		assert.Equal(Location{3, 13}, errs[0].(ErrSyntax).Location)
	}
}

func TestLexStrict_Clean(t *testing.T) {
	assert := assert.New(t)

	_, errs := LexStrict("inbox\noutbox\n")
	assert.Nil(errs)
}

func FuzzLex(f *testing.F) {
	f.Add("inbox\noutbox\n")
	f.Add("copyfrom 0 jump_target a jump a")
	f.Add("bump_plus\n\n\t7 héllo")

	f.Fuzz(func(t *testing.T, text string) {
		assert := assert.New(t)

		prog, errs := LexStrict(text)
		assert.Equal(Lex(text), prog)

		lines := strings.Count(text, "\n") + 1
		for _, ins := range prog {
			assert.GreaterOrEqual(ins.Location.Line, 1)
			assert.LessOrEqual(ins.Location.Line, lines)
			assert.GreaterOrEqual(ins.Location.Column, 1)
			assert.True(ins.Value.Opcode.valid())
			if ins.Value.Opcode.Arg() == ARG_CELL {
				assert.GreaterOrEqual(ins.Value.Cell, 0)
			}
		}
		for _, err := range errs {
			assert.IsType(ErrSyntax{}, err)
		}
	})
}
