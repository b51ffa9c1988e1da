package logger_test

import (
	"context"
	"launchpad/pkg/logger"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestSetup_LevelByEnvironment(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()))

	logger.Setup(logger.ProductionEnvironment)
	require.False(t, logger.IsDebug(context.Background()))
}

func TestGet_PrefersContextLogger(t *testing.T) {
	ctx, logs := observed(zapcore.DebugLevel)

	logger.Info(ctx, "inquiry received")
	require.Equal(t, 1, logs.FilterMessage("inquiry received").Len())

	require.NotSame(t, logger.Get(ctx), logger.Get(context.Background()))
}

func TestWithFields_CarriedToDeliveryLogs(t *testing.T) {
	ctx, logs := observed(zapcore.DebugLevel)

	ctx = logger.WithFields(ctx, zap.String("RequestID", "abc-123"))
	ctx = logger.WithFields(ctx, zap.String("channel", "whatsapp"))
	logger.Warn(ctx, "inquiry delivery failed", zap.Int("status", 429))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, map[string]any{
		"RequestID": "abc-123",
		"channel":   "whatsapp",
		"status":    int64(429),
	}, entries[0].ContextMap())
}

func TestLevels(t *testing.T) {
	ctx, logs := observed(zapcore.InfoLevel)
	require.False(t, logger.IsDebug(ctx))

	logger.Debug(ctx, "rendering landing page")
	logger.Info(ctx, "inquiry emailed")
	logger.Warn(ctx, "notifier slow")
	logger.Error(ctx, "inquiry delivery failed")

	var got []zapcore.Level
	for _, e := range logs.All() {
		got = append(got, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, got)

	debugCtx, _ := observed(zapcore.DebugLevel)
	require.True(t, logger.IsDebug(debugCtx))
}

func TestSetup_BridgesSlog(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	logger.Setup(logger.ProductionEnvironment)
	require.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	require.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
}
