package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"numlookup/internal/config"
	"numlookup/internal/jobs"
	"numlookup/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Overlay optional file config for upstream endpoints
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	yamlCfg.Apply(cfg)

	srv := server.New(cfg)
	srv.RegisterRoutes()

	// Background upstream reachability probes
	if cfg.ProbeInterval > 0 {
		checker := jobs.NewUpstreamChecker(cfg, cfg.ProbeInterval)
		go checker.Start(ctx)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
