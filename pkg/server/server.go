// Package server serves register sessions over websocket and batch
// evaluation over HTTP. Every session owns its registers.
package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/demigunkan/longint/pkg/interp"
	"github.com/demigunkan/longint/pkg/registers"
	"github.com/demigunkan/longint/sdk/calc"
	"github.com/ethereum/go-ethereum/log"
	"github.com/goccy/go-json"
	"github.com/lxzan/gws"
)

const sessionKey = "interp"

const (
	// MaxEvalBytes bounds the body of an evaluation request.
	MaxEvalBytes = 1 << 20
	// MaxEvalLines bounds the number of lines of an evaluation request.
	MaxEvalLines = 10000
)

var _ gws.Event = &Server{}

type Server struct {
	upgrader *gws.Upgrader
	log      log.Logger
}

func New() *Server {
	s := &Server{
		log: log.New("component", "server"),
	}
	s.upgrader = gws.NewUpgrader(s, &gws.ServerOption{
		PermessageDeflate: gws.PermessageDeflate{
			Enabled:               true,
			ServerContextTakeover: true,
			ClientContextTakeover: true,
		},
	})
	return s
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(calc.PathWS, s.serveWS)
	mux.HandleFunc(calc.PathEval, s.serveEval)
	mux.HandleFunc(calc.PathHealth, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	socket, err := s.upgrader.Upgrade(w, r)
	if err != nil {
		s.log.Warn("Upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	go socket.ReadLoop()
}

func (s *Server) serveEval(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxEvalBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("body exceeds %d bytes", MaxEvalBytes), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, fmt.Sprintf("bad request: %v", err), http.StatusBadRequest)
		return
	}

	req := &calc.EvalRequest{}
	if err := json.Unmarshal(body, req); err != nil {
		http.Error(w, fmt.Sprintf("bad request: %v", err), http.StatusBadRequest)
		return
	}
	if len(req.Lines) > MaxEvalLines {
		http.Error(w, fmt.Sprintf("more than %d lines", MaxEvalLines), http.StatusRequestEntityTooLarge)
		return
	}

	res := Eval(req.Lines)
	s.log.Debug("Evaluated batch", "lines", len(req.Lines), "results", len(res.Results))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.log.Warn("Write failed", "remote", r.RemoteAddr, "err", err)
	}
}

// Eval runs lines on fresh registers, stopping after the first fatal error.
func Eval(lines []string) *calc.EvalResponse {
	store := registers.New()
	in := interp.New(store)

	res := &calc.EvalResponse{Registers: store}
	for _, line := range lines {
		out, err := in.Exec(line)
		res.Results = append(res.Results, calc.NewExecResult(out, err))

		var fatal *interp.FatalError
		if errors.As(err, &fatal) {
			break
		}
	}
	return res
}

// Handle answers one request of a session. The second result reports
// whether the session has ended.
func Handle(in *interp.Interpreter, req *calc.Request[string]) (*calc.Response[any], bool) {
	res := &calc.Response[any]{Id: req.Id, Op: req.Op}

	switch req.Op {
	case calc.OpPing:
	case calc.OpExec:
		out, err := in.Exec(req.Data)
		res.Data = calc.NewExecResult(out, err)

		var fatal *interp.FatalError
		return res, errors.As(err, &fatal)
	case calc.OpDump:
		res.Data = in.Store()
	case calc.OpReset:
		in.Store().Reset()
	default:
		res.Error = fmt.Sprintf("unknown op %q", req.Op)
	}
	return res, false
}

//////////////// WEBSOCKET

func (s *Server) OnOpen(socket *gws.Conn) {
	socket.Session().Store(sessionKey, interp.New(registers.New()))
	s.log.Info("Session opened", "remote", socket.RemoteAddr())
}

func (s *Server) OnClose(socket *gws.Conn, err error) {
	s.log.Info("Session closed", "remote", socket.RemoteAddr(), "err", err)
}

func (s *Server) OnPing(socket *gws.Conn, payload []byte) {
	_ = socket.WritePong(payload)
}

func (s *Server) OnPong(socket *gws.Conn, payload []byte) {
}

func (s *Server) OnMessage(socket *gws.Conn, message *gws.Message) {
	defer message.Close()

	v, ok := socket.Session().Load(sessionKey)
	if !ok {
		return
	}
	in := v.(*interp.Interpreter)

	req := &calc.Request[string]{}
	if err := json.Unmarshal(message.Bytes(), req); err != nil {
		s.write(socket, &calc.Response[any]{Error: err.Error()})
		return
	}

	res, done := Handle(in, req)
	s.write(socket, res)
	if done {
		s.log.Debug("Session terminated", "remote", socket.RemoteAddr())
		socket.WriteClose(1000, []byte("terminated"))
	}
}

func (s *Server) write(socket *gws.Conn, res *calc.Response[any]) {
	if err := socket.WriteMessage(gws.OpcodeText, res.Pack()); err != nil {
		s.log.Warn("Write failed", "remote", socket.RemoteAddr(), "err", err)
	}
}
