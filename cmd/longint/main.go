package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/demigunkan/longint/pkg/interp"
	"github.com/demigunkan/longint/sdk/calc"
	"github.com/ethereum/go-ethereum/log"
)

func main() {
	var (
		state  = flag.String("state", os.Getenv("LONGINT_STATE"), "load registers from and save them to this file")
		remote = flag.String("remote", os.Getenv("LONGINT_REMOTE"), "run commands in a session on the longintd server at host:port, or \"local\" or \"docker\"")
		eval   = flag.String("eval", "", "send the whole input as one batch to the longintd server at host:port, or \"local\" or \"docker\"")
		debug  = flag.Bool("debug", false, "log debug messages to stderr")
	)
	flag.Parse()

	level := log.LevelWarn
	if *debug {
		level = log.LevelDebug
	}
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, level, false)))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	term := &interp.Terminal{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		StdinTTY:  isTerminal(os.Stdin),
		StdoutTTY: isTerminal(os.Stdout),
	}

	var err error
	switch {
	case *remote != "":
		err = runRemote(ctx, calc.Lookup(*remote), os.Stdin, term)
	case *eval != "":
		err = runEval(ctx, calc.Lookup(*eval), os.Stdin, term)
	default:
		err = runLocal(ctx, *state, os.Stdin, term)
	}

	if err != nil {
		// fatal arithmetic errors have already been reported on the terminal
		var fatal *interp.FatalError
		if !errors.As(err, &fatal) {
			log.Error("Stopped", "err", err)
		}
		cancel()
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
