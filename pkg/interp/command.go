package interp

import (
	"errors"

	"github.com/demigunkan/longint/internal/types"
	"github.com/demigunkan/longint/pkg/registers"
)

// MaxLine is the number of non-blank characters kept from an input line.
const MaxLine = 999

var (
	ErrInvalidLHS   = errors.New("invalid LHS variable")
	ErrNoOperator   = errors.New("no operator supplied")
	ErrUnknownOp    = errors.New("unknown operator")
	ErrNoOperand    = errors.New("no RHS supplied")
	ErrInvalidRHS   = errors.New("RHS argument is invalid")
	ErrTerminated   = errors.New("interpreter terminated")
	errEmptyLine    = errors.New("empty line")
	errNotRegister  = errors.New("not a register")
	errInvalidDigit = errors.New("invalid digit")
)

var commandErrors = []error{
	ErrInvalidLHS,
	ErrNoOperator,
	ErrUnknownOp,
	ErrNoOperand,
	ErrInvalidRHS,
	ErrTerminated,
}

// IsCommandError reports whether err rejects a single line without ending
// the session.
func IsCommandError(err error) bool {
	for _, e := range commandErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CommandError returns the command error whose text is msg, or a new error
// carrying msg if there is none.
func CommandError(msg string) error {
	for _, e := range commandErrors {
		if e.Error() == msg {
			return e
		}
	}
	return errors.New(msg)
}

// Command is one compacted input line: a target register, an operator and,
// for everything but print, an operand that is either a literal or the name
// of another register.
type Command struct {
	Target  byte
	Op      types.Op
	Operand string
}

// Literal reports whether the operand is a decimal literal.
func (c Command) Literal() bool {
	return len(c.Operand) > 0 && isDigit(c.Operand[0])
}

// Compact drops every blank character from line and keeps at most MaxLine
// of the rest.
func Compact(line string) string {
	b := make([]byte, 0, min(len(line), MaxLine))
	for i := 0; i < len(line) && len(b) < MaxLine; i++ {
		if !isSpace(line[i]) {
			b = append(b, line[i])
		}
	}
	return string(b)
}

// ParseCommand parses a compacted line.
func ParseCommand(line string) (Command, error) {
	if len(line) == 0 {
		return Command{}, errEmptyLine
	}
	if !registers.Valid(line[0]) {
		return Command{}, ErrInvalidLHS
	}
	if len(line) < 2 {
		return Command{}, ErrNoOperator
	}
	op, ok := types.ParseOp(line[1])
	if !ok {
		return Command{}, ErrUnknownOp
	}

	cmd := Command{Target: line[0], Op: op}
	if !op.HasOperand() {
		return cmd, nil
	}
	if len(line) < 3 {
		return Command{}, ErrNoOperand
	}

	cmd.Operand = line[2:]
	if err := validOperand(cmd.Operand); err != nil {
		return Command{}, ErrInvalidRHS
	}
	return cmd, nil
}

func validOperand(s string) error {
	if isDigit(s[0]) {
		for i := 1; i < len(s); i++ {
			if !isDigit(s[i]) {
				return errInvalidDigit
			}
		}
		return nil
	}
	if len(s) != 1 || !registers.Valid(s[0]) {
		return errNotRegister
	}
	return nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
