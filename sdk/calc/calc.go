// Package calc is the client side of the longintd protocol: JSON envelopes
// exchanged over a websocket session, and batch evaluation over HTTP.
package calc

import "strings"

type Calc struct {
	http string
	ws   string
}

func New(env env) *Calc {
	return &Calc{
		http: envs[env].http,
		ws:   envs[env].ws,
	}
}

// NewWithAddr returns a Calc for a server listening on host:port.
func NewWithAddr(addr string) *Calc {
	addr = strings.TrimPrefix(addr, "http://")
	addr = strings.TrimPrefix(addr, "ws://")
	addr = strings.TrimSuffix(addr, "/")
	return &Calc{
		http: "http://" + addr,
		ws:   "ws://" + addr + PathWS,
	}
}

// Lookup returns the Calc of the environment called name ("local" or
// "docker"), or one for the server at host:port otherwise.
func Lookup(name string) *Calc {
	for e, cfg := range envs {
		if cfg.name == name {
			return New(e)
		}
	}
	return NewWithAddr(name)
}

func (c *Calc) WS() string {
	return c.ws
}

func (c *Calc) HTTP() string {
	return c.http
}

func ExecRequest(id int, line string) *Request[string] {
	return &Request[string]{
		Id:   id,
		Op:   OpExec,
		Data: line,
	}
}

func DumpRequest(id int) *Request[string] {
	return &Request[string]{Id: id, Op: OpDump}
}

func ResetRequest(id int) *Request[string] {
	return &Request[string]{Id: id, Op: OpReset}
}

func PingRequest(id int) *Request[string] {
	return &Request[string]{Id: id, Op: OpPing}
}
