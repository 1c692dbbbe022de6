package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pr-poehali-dev/lordhost-game-server/internal/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			LordHost Orders API
//	@version		1.0
//	@description	Game server hosting order intake

// @host		localhost:8080
// @BasePath	/
func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, stop)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("lordhost stopped")
	}
}

// run serves until ctx is cancelled or a component fails. Until app.Start
// has built the zap logger only zerolog is available.
func run(ctx context.Context, cancel context.CancelFunc) error {
	a := app.New()
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer zap.L().Sync() //nolint:errcheck

	if err := a.Wait(ctx, cancel); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	zap.L().Info("orders api stopped cleanly")
	return nil
}
