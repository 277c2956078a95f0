// SPDX-License-Identifier: EPL-2.0

// Command audcutd serves the audcut edit pipeline over HTTP and websockets.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/audcut/internal/server"
)

var (
	addr      = flag.String("addr", server.DefaultAddr, "HTTP listen address")
	maxUpload = flag.Int64("max-upload", server.DefaultMaxUploadBytes, "maximum upload size in bytes")
	debug     = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	log.SetPrefix("audcutd: ")

	log.Printf("Starting audcut server on %s", *addr)
	if *debug {
		log.Printf("Debug logging enabled")
	}
	log.Printf("Press Ctrl-C to stop")

	srv := server.New(server.Config{
		Addr:           *addr,
		MaxUploadBytes: *maxUpload,
		Debug:          *debug,
	})

	// Handle shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Received %v signal, shutting down gracefully...", sig)
		srv.Stop()
	}()

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Printf("Server stopped")
}
