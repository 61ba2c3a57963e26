package interpreter_test

import (
	"bytes"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/hrm/interpreter"
	"github.com/ezrec/hrm/lexer"
)

var _ = Describe("Interpreter", func() {
	var (
		ip     *interpreter.Interpreter
		output *bytes.Buffer
	)

	BeforeEach(func() {
		output = &bytes.Buffer{}
		ip = interpreter.NewInterpreter()
		ip.Outbox.Output = output
	})

	run := func(program string, input io.Reader) error {
		return ip.Run(lexer.Lex(program), input)
	}

	Context("when the inbox runs dry", func() {
		It("should end the run successfully", func() {
			err := run("inbox\noutbox\ninbox\n", strings.NewReader("5"))

			Expect(err).NotTo(HaveOccurred())
			Expect(output.String()).To(Equal("5\n"))
			Expect(ip.Exhausted).To(BeTrue())
			Expect(ip.Cursor).To(Equal(2))
		})

		It("should end a loop successfully", func() {
			err := run("jump_target a\ninbox\noutbox\njump a\n", strings.NewReader("5"))

			Expect(err).NotTo(HaveOccurred())
			Expect(output.String()).To(Equal("5\n"))
		})
	})

	Context("when a cell was never written", func() {
		It("should fail at the instruction", func() {
			err := run("copyfrom 0\n", nil)

			Expect(err).To(MatchError(interpreter.ErrEmptyFloorValue))
			var located *interpreter.ErrLocated
			Expect(err).To(BeAssignableToTypeOf(located))
			located = err.(*interpreter.ErrLocated)
			Expect(located.Location).To(Equal(lexer.Location{Line: 1, Column: 10}))
			Expect(output.Len()).To(BeZero())
		})
	})

	Context("when a jump target is missing", func() {
		It("should fail to load and execute nothing", func() {
			var traced int
			ip.Trace = func(int, int, lexer.Instruction) { traced++ }

			err := run("inbox\noutbox\njump missing\n", strings.NewReader("1"))

			Expect(err).To(MatchError(interpreter.ErrUnexistedJumpTarget))
			Expect(err.Error()).To(HavePrefix("3:6:"))
			Expect(traced).To(BeZero())
			Expect(output.Len()).To(BeZero())
		})
	})

	Context("when no input is configured", func() {
		It("should fail on inbox", func() {
			err := run("inbox\n", nil)
			Expect(err).To(MatchError(interpreter.ErrUndefinedInputBox))
		})
	})

	Context("when output follows a failure", func() {
		It("should print nothing after the failing instruction", func() {
			err := run("inbox\noutbox\noutbox\ninbox\noutbox\n", strings.NewReader("1 2"))

			Expect(err).To(MatchError(interpreter.ErrEmptyHandValue))
			Expect(output.String()).To(Equal("1\n"))
		})
	})

	Context("with a countdown program", func() {
		It("should print every value down to zero", func() {
			program := `
				inbox
				copyto 0
				jump_target loop
				copyfrom 0
				outbox
				copyfrom 0
				jump_if_zero done
				bump_minus 0
				jump loop
				jump_target done
			`
			err := run(program, strings.NewReader("3"))

			Expect(err).NotTo(HaveOccurred())
			Expect(output.String()).To(Equal("3\n2\n1\n0\n"))
			Expect(ip.Exhausted).To(BeFalse())
		})
	})

	Context("with a lenient program text", func() {
		It("should skip what it does not understand", func() {
			err := run("-- echo --\ninbox\ncopyto x\noutbox\n", strings.NewReader("-8"))

			Expect(err).NotTo(HaveOccurred())
			Expect(output.String()).To(Equal("-8\n"))
		})
	})
})
