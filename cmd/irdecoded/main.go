package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/irdecode/internal/config"
	"github.com/danmuck/irdecode/internal/observability"
	"github.com/danmuck/irdecode/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "service config path (defaults apply when empty)")
	flag.Parse()

	cfg := config.DefaultServiceConfig()
	if *configPath != "" {
		loaded, err := config.LoadServiceConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "irdecoded: %v\n", err)
			os.Exit(2)
		}
		cfg = loaded
	}

	logger := observability.InitLogger(cfg.Name)
	zerolog.SetGlobalLevel(cfg.LogLevel())
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, logger).Run(ctx); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
