// Package interp runs register commands such as "a=123", "a*b" or "a?"
// against a register store.
package interp

import (
	"errors"
	"fmt"

	"github.com/demigunkan/longint/internal/interfaces"
	"github.com/demigunkan/longint/internal/types"
	"github.com/demigunkan/longint/pkg/longint"
	"github.com/ethereum/go-ethereum/log"
)

// FatalError is an arithmetic failure that ends the interpreter: a value
// outgrew longint.Capacity or a division by zero was attempted.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	if errors.Is(e.Err, longint.ErrDivisionByZero) {
		return "zero division error, program terminated"
	}
	return "integer overflow, program terminated"
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

var operators = map[types.Op]func(z, y *longint.Int) *longint.Int{
	types.Op__ASSIGN: (*longint.Int).Set,
	types.Op__ADD:    (*longint.Int).Add,
	types.Op__MUL:    (*longint.Int).Mul,
	types.Op__POW:    (*longint.Int).Pow,
	types.Op__DIV:    (*longint.Int).Div,
}

type Interpreter struct {
	store interfaces.Store
	fatal *FatalError
	log   log.Logger
}

func New(store interfaces.Store) *Interpreter {
	return &Interpreter{
		store: store,
		log:   log.New("component", "interp"),
	}
}

// Store returns the registers the interpreter works on.
func (i *Interpreter) Store() interfaces.Store {
	return i.store
}

// Exec runs one input line and returns what it prints, if anything.
//
// Malformed lines are rejected with one of the Err* command errors and leave
// the interpreter usable. Arithmetic failures return a *FatalError, after
// which every call fails with ErrTerminated.
func (i *Interpreter) Exec(line string) (out string, err error) {
	if i.fatal != nil {
		return "", ErrTerminated
	}

	line = Compact(line)
	if len(line) == 0 {
		return "", nil
	}
	cmd, err := ParseCommand(line)
	if err != nil {
		i.log.Debug("Rejected command", "line", line, "err", err)
		return "", err
	}
	i.log.Trace("Executing command", "target", string(cmd.Target), "op", cmd.Op, "operand", cmd.Operand)

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !isFatal(e) {
				panic(r)
			}
			out, err = "", i.abort(cmd, e)
		}
	}()
	return i.exec(cmd)
}

func (i *Interpreter) exec(cmd Command) (string, error) {
	if cmd.Op == types.Op__PRINT {
		v, err := i.store.Get(cmd.Target)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("register %c: %s", cmd.Target, v.Grouped()), nil
	}

	rhs, err := i.operand(cmd)
	if err != nil {
		if isFatal(err) {
			return "", i.abort(cmd, err)
		}
		return "", err
	}

	fn := operators[cmd.Op]
	return "", i.store.Apply(cmd.Target, func(v *longint.Int) {
		fn(v, rhs)
	})
}

// operand resolves the right hand side of cmd to a value.
func (i *Interpreter) operand(cmd Command) (*longint.Int, error) {
	if cmd.Literal() {
		return longint.Parse(cmd.Operand)
	}
	return i.store.Get(cmd.Operand[0])
}

func (i *Interpreter) abort(cmd Command, err error) error {
	i.fatal = &FatalError{Err: err}
	i.log.Debug("Aborting", "target", string(cmd.Target), "op", cmd.Op, "err", err)
	return i.fatal
}

func isFatal(err error) bool {
	return errors.Is(err, longint.ErrOverflow) || errors.Is(err, longint.ErrDivisionByZero)
}
