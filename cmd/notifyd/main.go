package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"placement-match/internal/ws"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// notifyd subscribes to the match event channel and relays every event to
// connected students over websockets.
func main() {
	listen := flag.String("listen", ":8081", "websocket listen address")
	flag.Parse()

	_ = godotenv.Load()

	host := strings.TrimSpace(os.Getenv("REDIS_HOST"))
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(os.Getenv("REDIS_PORT"))
	if port == "" {
		port = "6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
		DB:       0,
	})

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("redis unavailable: %v", err)
	}

	logger := log.Default()
	hub := ws.NewHub(logger)
	go hub.Run()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := ws.NewSubscriber(client, hub, logger)
	subErr := make(chan error, 1)
	go func() {
		subErr <- sub.Run(ctx)
	}()

	mux := http.NewServeMux()
	mux.Handle("/ws/matches", ws.NewHandler(hub, logger))
	server := &http.Server{Addr: *listen, Handler: mux}

	srvErr := make(chan error, 1)
	go func() {
		logger.Printf("notifyd listening addr=%s", *listen)
		srvErr <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	case err := <-subErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("subscriber error: %v", err)
		}
	case <-sigCh:
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Printf("shutdown error: %v", err)
		}
	}

	_ = client.Close()
}
