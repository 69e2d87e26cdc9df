package calc

import (
	"context"
	nethttp "net/http"

	"github.com/demigunkan/longint/pkg/http"
)

// Eval runs lines on a fresh register set on the server.
func (c *Calc) Eval(ctx context.Context, lines []string) (*EvalResponse, error) {
	res := &EvalResponse{}
	if _, err := http.New(c.http).Request(ctx, nethttp.MethodPost, PathEval, &EvalRequest{Lines: lines}, res); err != nil {
		return nil, err
	}
	return res, nil
}
