package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/demigunkan/longint/pkg/interp"
	"github.com/demigunkan/longint/sdk/calc"
	"github.com/ethereum/go-ethereum/log"
	"github.com/goccy/go-json"
	"github.com/lxzan/gws"
)

var errClosed = errors.New("session closed by server")

// runRemote runs the lines of r in a websocket session on a longintd server.
func runRemote(ctx context.Context, c *calc.Calc, r io.Reader, term *interp.Terminal) error {
	ws := &WebSocket{
		output: make(chan *calc.Response[*calc.ExecResult], 1),
		closed: make(chan struct{}),
	}

	socket, _, err := gws.NewClient(ws, &gws.ClientOption{
		Addr: c.WS(),
		PermessageDeflate: gws.PermessageDeflate{
			Enabled:               true,
			ServerContextTakeover: true,
			ClientContextTakeover: true,
		},
	})
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.WS(), err)
	}
	go socket.ReadLoop()
	defer socket.WriteClose(1000, nil)

	ws.socket = socket
	if err := ws.Ping(); err != nil {
		return fmt.Errorf("ping %s: %w", c.WS(), err)
	}
	return interp.Run(ctx, ws, r, term)
}

// runEval sends all lines of r to a longintd server in one request and
// replays the results as if the lines had been run locally.
func runEval(ctx context.Context, c *calc.Calc, r io.Reader, term *interp.Terminal) error {
	input, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var lines []string
	for _, raw := range bytes.Split(input, []byte("\n")) {
		if line := interp.Compact(string(raw)); line != "" {
			lines = append(lines, line)
		}
	}

	res, err := c.Eval(ctx, lines)
	if err != nil {
		return err
	}
	return interp.Run(ctx, &batch{results: res.Results}, bytes.NewReader(input), term)
}

// batch hands out the results of an evaluated batch in order.
type batch struct {
	results []*calc.ExecResult
}

func (b *batch) Exec(line string) (string, error) {
	if len(b.results) == 0 {
		return "", interp.ErrTerminated
	}
	res := b.results[0]
	b.results = b.results[1:]
	return res.Output, res.Err()
}

// WebSocket is a session on the server; each Exec is one request/response
// round trip.
type WebSocket struct {
	socket *gws.Conn
	output chan *calc.Response[*calc.ExecResult]
	closed chan struct{}
	id     int
}

func (c *WebSocket) Exec(line string) (string, error) {
	c.id++
	return c.roundTrip(calc.ExecRequest(c.id, line))
}

// Ping checks that the server answers before any command is sent.
func (c *WebSocket) Ping() error {
	c.id++
	_, err := c.roundTrip(calc.PingRequest(c.id))
	return err
}

func (c *WebSocket) roundTrip(req *calc.Request[string]) (string, error) {
	if err := c.socket.WriteMessage(gws.OpcodeText, req.Pack()); err != nil {
		return "", err
	}

	select {
	case response := <-c.output:
		return result(response)
	case <-c.closed:
		// the server answers a fatal command before closing
		select {
		case response := <-c.output:
			return result(response)
		default:
			return "", errClosed
		}
	}
}

func result(response *calc.Response[*calc.ExecResult]) (string, error) {
	if response.Error != "" {
		return "", errors.New(response.Error)
	}
	if response.Data == nil {
		return "", nil
	}
	return response.Data.Output, response.Data.Err()
}

func (c *WebSocket) OnClose(socket *gws.Conn, err error) {
	log.Debug("Session closed", "err", err)
	close(c.closed)
}

func (c *WebSocket) OnPong(socket *gws.Conn, payload []byte) {
}

func (c *WebSocket) OnOpen(socket *gws.Conn) {
}

func (c *WebSocket) OnPing(socket *gws.Conn, payload []byte) {
	_ = socket.WritePong(payload)
}

func (c *WebSocket) OnMessage(socket *gws.Conn, message *gws.Message) {
	defer message.Close()

	response := &calc.Response[*calc.ExecResult]{}
	if err := json.Unmarshal(message.Bytes(), response); err != nil {
		log.Warn("Bad response", "err", err)
		return
	}
	c.output <- response
}
