package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/pr-poehali-dev/lordhost-game-server/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "lordhost-orders"

// InitLogger replaces the global zap logger. Everything below the app layer
// logs through zap.L(). LOG_LVL accepts debug, info, warn and error.
func InitLogger(conf *config.Config) error {
	lvl, err := zapcore.ParseLevel(conf.LogLvl)
	if err != nil || lvl > zapcore.ErrorLevel {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	zap.ReplaceGlobals(New(lvl, zapcore.Lock(os.Stderr)))
	return nil
}

// New builds a console logger writing to w. Records at error level and above
// carry a stack trace.
func New(lvl zapcore.Level, w zapcore.WriteSyncer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout(time.DateTime)
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeDuration = zapcore.MillisDurationEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), w, zap.NewAtomicLevelAt(lvl))
	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service", serviceName)),
	)
}
