package interp

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/demigunkan/longint/internal/types"
	"github.com/demigunkan/longint/pkg/longint"
	"github.com/demigunkan/longint/pkg/registers"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		line, want string
	}{
		{"", ""},
		{"   ", ""},
		{"a = 123", "a=123"},
		{" a\t*\tb \r\n", "a*b"},
		{"a=1 000 000", "a=1000000"},
		{strings.Repeat("1", MaxLine+10), strings.Repeat("1", MaxLine)},
	}
	for _, tt := range tests {
		if got := Compact(tt.line); got != tt.want {
			t.Errorf("Compact(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestParseCommand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			line string
			want Command
		}{
			{"a?", Command{Target: 'a', Op: types.Op__PRINT}},
			{"z?junk", Command{Target: 'z', Op: types.Op__PRINT}},
			{"a=123", Command{Target: 'a', Op: types.Op__ASSIGN, Operand: "123"}},
			{"b+c", Command{Target: 'b', Op: types.Op__ADD, Operand: "c"}},
			{"c*0", Command{Target: 'c', Op: types.Op__MUL, Operand: "0"}},
			{"d^10", Command{Target: 'd', Op: types.Op__POW, Operand: "10"}},
			{"e/e", Command{Target: 'e', Op: types.Op__DIV, Operand: "e"}},
		}
		for _, tt := range tests {
			got, err := ParseCommand(tt.line)
			if err != nil {
				t.Errorf("ParseCommand(%q) failed: %v", tt.line, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			line string
			want error
		}{
			{"A=1", ErrInvalidLHS},
			{"1=1", ErrInvalidLHS},
			{"a", ErrNoOperator},
			{"a-1", ErrUnknownOp},
			{"a%b", ErrUnknownOp},
			{"a=", ErrNoOperand},
			{"a=12x", ErrInvalidRHS},
			{"a=bc", ErrInvalidRHS},
			{"a=B", ErrInvalidRHS},
			{"a+-1", ErrInvalidRHS},
		}
		for _, tt := range tests {
			_, err := ParseCommand(tt.line)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseCommand(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		}
	})
}

func exec(t *testing.T, in *Interpreter, lines ...string) string {
	t.Helper()
	var out string
	for _, line := range lines {
		got, err := in.Exec(line)
		if err != nil {
			t.Fatalf("Exec(%q) failed: %v", line, err)
		}
		out = got
	}
	return out
}

func TestInterpreter_Exec(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"add", []string{"a=123", "b=456", "a+b", "a?"}, "register a: 579"},
		{"square", []string{"a=999", "a*a", "a?"}, "register a: 998,001"},
		{"power", []string{"a=2", "b=10", "a^b", "a?"}, "register a: 1,024"},
		{"divide", []string{"a=100", "b=7", "a/b", "a?"}, "register a: 14"},
		{"zero", []string{"a=0", "a?"}, "register a: 0"},
		{"million", []string{"a=1000000", "a?"}, "register a: 1,000,000"},
		{"untouched", []string{"q?"}, "register q: 0"},
		{"leading zeros", []string{"a=000042", "a?"}, "register a: 42"},
		{"register operand", []string{"b=5", "a=b", "b+1", "a?"}, "register a: 5"},
		{"blanks", []string{" a = 1 2 3 ", " a ? "}, "register a: 123"},
		{"power zero", []string{"a=5", "a^0", "a?"}, "register a: 1"},
		{"small quotient", []string{"a=5", "a/100", "a?"}, "register a: 0"},
		{"empty line", []string{"a=1", "", "a?"}, "register a: 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New(registers.New())
			if got := exec(t, in, tt.lines...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInterpreter_ExecCommandError(t *testing.T) {
	in := New(registers.New())
	exec(t, in, "a=7")

	for _, line := range []string{"7", "a", "a!1", "a=", "a=x1"} {
		if _, err := in.Exec(line); err == nil {
			t.Errorf("Exec(%q) did not fail", line)
		}
	}

	// command errors leave the registers alone
	if got := exec(t, in, "a?"); got != "register a: 7" {
		t.Errorf("got %q after rejected commands", got)
	}
}

func TestInterpreter_ExecFatal(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  error
		msg   string
	}{
		{
			name:  "zero division",
			lines: []string{"a=5", "a/b"},
			want:  longint.ErrDivisionByZero,
			msg:   "zero division error, program terminated",
		},
		{
			name:  "sum overflow",
			lines: []string{"a=" + strings.Repeat("9", longint.Capacity), "a+1"},
			want:  longint.ErrOverflow,
			msg:   "integer overflow, program terminated",
		},
		{
			name:  "literal overflow",
			lines: []string{"a=" + strings.Repeat("1", longint.Capacity+1)},
			want:  longint.ErrOverflow,
			msg:   "integer overflow, program terminated",
		},
		{
			name:  "exponent overflow",
			lines: []string{"a=2", "a^1661"},
			want:  longint.ErrOverflow,
			msg:   "integer overflow, program terminated",
		},
		{
			name:  "product overflow",
			lines: []string{"a=1" + strings.Repeat("0", 300), "a*a"},
			want:  longint.ErrOverflow,
			msg:   "integer overflow, program terminated",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New(registers.New())
			last := len(tt.lines) - 1
			exec(t, in, tt.lines[:last]...)

			_, err := in.Exec(tt.lines[last])
			var fatal *FatalError
			if !errors.As(err, &fatal) {
				t.Fatalf("Exec(%q) error = %v, want *FatalError", tt.lines[last], err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if fatal.Error() != tt.msg {
				t.Errorf("message = %q, want %q", fatal.Error(), tt.msg)
			}

			if _, err := in.Exec("a?"); !errors.Is(err, ErrTerminated) {
				t.Errorf("Exec after fatal error = %v, want %v", err, ErrTerminated)
			}
		})
	}
}

func TestInterpreter_Run(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		stdinTTY   bool
		stdoutTTY  bool
		wantStdout string
		wantStderr string
		wantErr    error
	}{
		{
			name:       "piped",
			input:      "a=123\nb=456\na+b\na?\n",
			wantStdout: "> a=123\n> b=456\n> a+b\n> a?\nregister a: 579\n> \nta daa!!!\n",
		},
		{
			name:       "piped without final newline",
			input:      "a = 1000000\na ?",
			wantStdout: "> a=1000000\n> a?\nregister a: 1,000,000\n> \nta daa!!!\n",
		},
		{
			name:       "piped error",
			input:      "a\n\nb?\n",
			wantStdout: "> a\nno operator supplied\n> \n> b?\nregister b: 0\n> \nta daa!!!\n",
		},
		{
			name:       "interactive",
			input:      "a=2\na?\nx\n",
			stdinTTY:   true,
			stdoutTTY:  true,
			wantStdout: "register a: 2\n\nta daa!!!\n",
			wantStderr: "> > > no operator supplied\n> ",
		},
		{
			name:       "interactive input, redirected output",
			input:      "a=2\nx\n",
			stdinTTY:   true,
			wantStdout: "> a=2\n> x\nno operator supplied\n> \nta daa!!!\n",
			wantStderr: "> > no operator supplied\n> \n",
		},
		{
			name:       "fatal",
			input:      "a=5\na/b\na?\n",
			wantStdout: "> a=5\n> a/b\nzero division error, program terminated\n",
			wantErr:    longint.ErrDivisionByZero,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			term := &Terminal{
				Stdout:    &stdout,
				Stderr:    &stderr,
				StdinTTY:  tt.stdinTTY,
				StdoutTTY: tt.stdoutTTY,
			}

			err := New(registers.New()).Run(context.Background(), strings.NewReader(tt.input), term)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run error = %v, want %v", err, tt.wantErr)
			}
			if got := stdout.String(); got != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", got, tt.wantStdout)
			}
			if got := stderr.String(); got != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", got, tt.wantStderr)
			}
		})
	}
}

func TestInterpreter_RunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	err := New(registers.New()).Run(ctx, strings.NewReader("a=1\n"), &Terminal{Stdout: &stdout, Stderr: &stdout})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want %v", err, context.Canceled)
	}
}

type brokenExecutor struct{ err error }

func (b brokenExecutor) Exec(line string) (string, error) {
	return "", b.err
}

func TestRun_ExecutorError(t *testing.T) {
	errBroken := errors.New("connection reset")

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), brokenExecutor{errBroken}, strings.NewReader("a=1\nb=2\n"), &Terminal{Stdout: &stdout, Stderr: &stderr})
	if !errors.Is(err, errBroken) {
		t.Fatalf("Run error = %v, want %v", err, errBroken)
	}
	if strings.Contains(stdout.String(), Banner) {
		t.Errorf("banner written after a failed executor: %q", stdout.String())
	}
}

func TestCommandError(t *testing.T) {
	for _, want := range []error{ErrInvalidLHS, ErrNoOperator, ErrUnknownOp, ErrNoOperand, ErrInvalidRHS} {
		got := CommandError(want.Error())
		if got != want {
			t.Errorf("CommandError(%q) = %v, want the sentinel", want.Error(), got)
		}
		if !IsCommandError(got) {
			t.Errorf("IsCommandError(%v) = false", got)
		}
	}

	if err := CommandError("something else"); IsCommandError(err) {
		t.Errorf("IsCommandError(%v) = true", err)
	}
	if IsCommandError(&FatalError{Err: longint.ErrOverflow}) {
		t.Error("a fatal error was taken for a command error")
	}
}
