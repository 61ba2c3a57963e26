// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package tape provides the machine's input queue and output sink.
//
// Values are 16-bit signed integers. Arithmetic on them wraps around
// using two's complement, as Go integer arithmetic does.
package tape

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strconv"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	ErrOutbox = errors.New(f("outbox write"))
)

// ErrParseValue reports an input number that does not fit in a Value.
type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a valid value", string(err))
}

// Value is the machine word.
type Value int16

// Inbox is a FIFO queue of input values.
type Inbox struct {
	Values []Value
}

// NewInbox creates an inbox holding the given values.
func NewInbox(values ...Value) *Inbox {
	return &Inbox{Values: values}
}

// Push appends a value to the back of the queue.
func (in *Inbox) Push(value Value) {
	in.Values = append(in.Values, value)
}

// Pop removes the value at the front of the queue.
func (in *Inbox) Pop() (value Value, ok bool) {
	if in.Empty() {
		return
	}
	value = in.Values[0]
	in.Values = in.Values[1:]
	return value, true
}

// Empty is true when every value has been consumed.
func (in *Inbox) Empty() bool {
	return len(in.Values) == 0
}

// Len returns the number of values left.
func (in *Inbox) Len() int {
	return len(in.Values)
}

// All iterates over the remaining values without consuming them.
func (in *Inbox) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, value := range in.Values {
			if !yield(value) {
				return
			}
		}
	}
}

// Receive returns an iterator that yields the values of an input stream.
//
// A value is a maximal run of ASCII digits, negated when the character
// just before it is '-'. Every other character separates values.
// Iteration stops at the end of the stream or on the first error.
func Receive(input io.Reader) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		rd := bufio.NewReader(input)
		var digits []byte
		negative := false
		prior := byte(0)

		flush := func() bool {
			if len(digits) == 0 {
				return true
			}
			text := string(digits)
			if negative {
				text = "-" + text
			}
			digits = digits[:0]
			negative = false
			v, err := strconv.ParseInt(text, 10, 16)
			if err != nil {
				yield(0, ErrParseValue(text))
				return false
			}
			return yield(Value(v), nil)
		}

		for {
			c, err := rd.ReadByte()
			if err == io.EOF {
				flush()
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			if c >= '0' && c <= '9' {
				if len(digits) == 0 {
					negative = prior == '-'
				}
				digits = append(digits, c)
			} else if !flush() {
				return
			}
			prior = c
		}
	}
}

// ParseInbox reads an entire input stream into an inbox.
func ParseInbox(input io.Reader) (in *Inbox, err error) {
	in = &Inbox{}
	for value, err := range Receive(input) {
		if err != nil {
			return nil, err
		}
		in.Push(value)
	}
	return
}

// Outbox writes each value sent as a decimal line.
type Outbox struct {
	Output io.Writer

	Sent int // Number of values written.
}

// Send writes the value, followed by a newline, to the output.
func (out *Outbox) Send(value Value) (err error) {
	line := strconv.AppendInt(nil, int64(value), 10)
	line = append(line, '\n')
	_, err = out.Output.Write(line)
	if err != nil {
		err = errors.Join(ErrOutbox, err)
		return
	}
	out.Sent++
	return
}
