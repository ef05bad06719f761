package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/html-web/wise-mvp/internal/config"
	"github.com/html-web/wise-mvp/internal/server"
)

func main() {

	// .env is optional; the process environment wins
	config.Load()
	cfg := config.FromEnv()

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Error initializing server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = srv.ListenAndServe(ctx, cfg.Addr(), func(addr net.Addr) {
		server.Announce(os.Stdout, addr)
	})
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
