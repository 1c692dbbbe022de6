// Command lordhost-invoke serves one invocation event read from stdin and
// prints the response object to stdout.
//
//	echo '{"httpMethod":"GET","queryStringParameters":{"email":"a@x.com"}}' | lordhost-invoke
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/pr-poehali-dev/lordhost-game-server/internal/app"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/config"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/dto"
	"github.com/pr-poehali-dev/lordhost-game-server/pkg/logger"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.New()
	if err := logger.InitLogger(cfg); err != nil {
		log.Fatal().Err(err).Msg("Can't init logger")
	}

	var req dto.Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		log.Fatal().Err(err).Msg("Can't decode invocation event")
	}

	a := app.New()
	a.Init(cfg)
	defer func() {
		if err := a.Close(); err != nil {
			zap.L().Warn("can't close publisher", zap.Error(err))
		}
	}()

	resp := a.Invoke(ctx, req)
	if err := json.NewEncoder(os.Stdout).Encode(resp); err != nil {
		zap.L().Error("can't write response", zap.Error(err))
	}
}
