package calc

import (
	"errors"

	"github.com/demigunkan/longint/pkg/interp"
	"github.com/demigunkan/longint/pkg/longint"
	"github.com/demigunkan/longint/pkg/registers"
	"github.com/goccy/go-json"
)

type Response[T any] struct {
	Id    int    `json:"id,omitempty"`
	Op    Op     `json:"op,omitempty"`
	Data  T      `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type Request[T any] struct {
	Id   int `json:"id,omitempty"`
	Op   Op  `json:"op"`
	Data T   `json:"data,omitempty"`
}

func (r *Request[T]) Pack() []byte {
	b, _ := json.Marshal(r)
	return b
}

func (r *Response[T]) Pack() []byte {
	b, _ := json.Marshal(r)
	return b
}

// ExecResult is the outcome of one command line.
type ExecResult struct {
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
	Fatal  Fatal  `json:"fatal,omitempty"`
}

// NewExecResult records what interp.Interpreter.Exec returned.
func NewExecResult(out string, err error) *ExecResult {
	res := &ExecResult{Output: out}
	if err == nil {
		return res
	}

	res.Error = err.Error()
	var fatal *interp.FatalError
	if errors.As(err, &fatal) {
		res.Fatal = FatalOverflow
		if errors.Is(fatal, longint.ErrDivisionByZero) {
			res.Fatal = FatalZeroDivision
		}
	}
	return res
}

// Err rebuilds the error recorded in r: a *interp.FatalError for fatal
// results, the matching command error otherwise.
func (r *ExecResult) Err() error {
	switch {
	case r.Fatal == FatalZeroDivision:
		return &interp.FatalError{Err: longint.ErrDivisionByZero}
	case r.Fatal != "":
		return &interp.FatalError{Err: longint.ErrOverflow}
	case r.Error != "":
		return interp.CommandError(r.Error)
	}
	return nil
}

type EvalRequest struct {
	Lines []string `json:"lines"`
}

// EvalResponse holds one result per executed line; evaluation stops after
// the first fatal result.
type EvalResponse struct {
	Results   []*ExecResult    `json:"results"`
	Registers *registers.Store `json:"registers"`
}
