package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/demigunkan/longint/pkg/server"
	"github.com/ethereum/go-ethereum/log"
)

func main() {
	addr := flag.String("addr", envOr("LONGINT_ADDR", ":8645"), "listen address")
	debug := flag.Bool("debug", false, "log debug messages")
	flag.Parse()

	level := log.LevelInfo
	if *debug {
		level = log.LevelDebug
	}
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, level, false)))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:    *addr,
		Handler: server.New().Handler(),
	}
	go func() {
		<-ctx.Done()
		log.Info("Shutting down")
		srv.Shutdown(context.Background())
	}()

	log.Info("Listening", "addr", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
