package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"houndfall/internal/config"
	"houndfall/internal/host"
	"houndfall/internal/progression"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables only")
	}

	configPath := flag.String("config", "", "path to a host config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sim := config.DescribeSimConstants()
	log.Println("🐺 ================================")
	log.Println("🐺  HOUNDFALL SIMULATION CORE")
	log.Println("🐺 ================================")
	log.Printf("🎮 listening on %s, tick rate %d", cfg.ListenAddr, cfg.TickRate)
	log.Printf("🔒 determinism-locked: minDT=%.4f maxDT=%.4f maxConcurrentAttackers=%d",
		sim.MinDT, sim.MaxDT, sim.MaxConcurrentAttackers)

	srv := host.NewServer(cfg, progression.NoopHook{})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	log.Println("✅ server ready")
	select {
	case <-ctx.Done():
		log.Println("🛑 shutting down...")
	case err := <-errCh:
		if err != nil {
			log.Printf("⚠️ server exited with error: %v", err)
			os.Exit(1)
		}
	}

	if err := <-errCh; err != nil {
		log.Printf("⚠️ shutdown error: %v", err)
		os.Exit(1)
	}
	log.Println("👋 goodbye")
}
