package interp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

const (
	Prompt = "> "
	Banner = "ta daa!!!"
)

// Terminal routes interpreter output. The prompt only makes sense when a
// person is typing, and input lines are echoed whenever either side is a
// file so the transcript records what was run.
type Terminal struct {
	Stdout    io.Writer
	Stderr    io.Writer
	StdinTTY  bool
	StdoutTTY bool
}

func (t *Terminal) Prompt() {
	if t.StdinTTY {
		fmt.Fprint(t.Stderr, Prompt)
	}
}

func (t *Terminal) Echo(line string) {
	if !t.StdinTTY || !t.StdoutTTY {
		fmt.Fprintf(t.Stdout, "%s%s\n", Prompt, line)
	}
}

func (t *Terminal) Error(msg string) {
	if t.StdinTTY || t.StdoutTTY {
		fmt.Fprintln(t.Stderr, msg)
	}
	if !t.StdoutTTY {
		fmt.Fprintln(t.Stdout, msg)
	}
}

func (t *Terminal) Result(out string) {
	fmt.Fprintln(t.Stdout, out)
}

func (t *Terminal) Done() {
	if t.StdinTTY && t.StdoutTTY {
		fmt.Fprintln(t.Stdout)
	}
	fmt.Fprintln(t.Stdout, Banner)
	if t.StdinTTY && !t.StdoutTTY {
		fmt.Fprintln(t.Stderr)
	}
}

// Executor runs single input lines; Interpreter is the local one.
type Executor interface {
	Exec(line string) (string, error)
}

// Run executes the lines of r on the interpreter. See Run.
func (i *Interpreter) Run(ctx context.Context, r io.Reader, t *Terminal) error {
	return Run(ctx, i, r, t)
}

// Run executes the lines of r until it is exhausted, ctx is done or a
// command fails fatally. Command errors are reported on t and the loop goes
// on; a *FatalError is reported and returned, as is any other error from ex.
// The closing banner is only written when the input ran out.
func Run(ctx context.Context, ex Executor, r io.Reader, t *Terminal) error {
	br := bufio.NewReader(r)

	t.Prompt()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		line := Compact(raw)
		t.Echo(line)
		if len(line) == 0 && err != nil {
			break
		}

		if len(line) > 0 {
			out, execErr := ex.Exec(line)
			var fatal *FatalError
			switch {
			case errors.As(execErr, &fatal):
				t.Error(fatal.Error())
				return fatal
			case IsCommandError(execErr):
				t.Error(execErr.Error())
			case execErr != nil:
				return execErr
			case out != "":
				t.Result(out)
			}
		}
		t.Prompt()
	}

	t.Done()
	return nil
}
