package calc

type env uint

const (
	Local env = iota
	Docker
)

type envConfig struct {
	name string
	http string
	ws   string
}

var envs = map[env]envConfig{
	Local: {
		name: "local",
		http: "http://127.0.0.1:8645",
		ws:   "ws://127.0.0.1:8645" + PathWS,
	},
	Docker: {
		name: "docker",
		http: "http://longintd:8645",
		ws:   "ws://longintd:8645" + PathWS,
	},
}
