package logger_test

import (
	"testing"

	"github.com/aws/smithy-go/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zestagio/queue-composer/internal/logger"
)

func TestInit(t *testing.T) {
	err := logger.Init(logger.NewOptions("error", logger.WithProductionMode(true)))
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, logger.Level.Level())

	zap.L().Named("settings-repo").Error("inconsistent state", zap.String("queue_url", "http://localhost:4566/000000000000/q"))
	// {"level":"ERROR","T":"2024-06-09T13:56:47.626+0300","component":"settings-repo","msg":"inconsistent state",...}
}

func TestInit_InvalidOptions(t *testing.T) {
	err := logger.Init(logger.NewOptions("trace"))
	require.Error(t, err)

	err = logger.Init(logger.NewOptions("info", logger.WithSentryEnv("local")))
	require.Error(t, err)

	err = logger.Init(logger.NewOptions("info", logger.WithSentryDsn("not a dsn")))
	require.Error(t, err)
}

func TestLevel_ChangedAtRuntime(t *testing.T) {
	require.NoError(t, logger.Init(logger.NewOptions("info")))
	assert.False(t, zap.L().Core().Enabled(zapcore.DebugLevel))

	logger.Level.SetLevel(zapcore.DebugLevel)
	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))
}

func TestAdapters(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	logger.KafkaLogger("msg-producer").Printf("written %d", 1)
	logger.KafkaErrorLogger("msg-producer").Printf("broker %s unavailable", "localhost:9092")
	logger.SmithyLogger("sqs").Logf(logging.Debug, "request %s", "SendMessage")
	logger.SmithyLogger("sqs").Logf(logging.Warn, "retrying")

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, "msg-producer", entries[0].LoggerName)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "written 1", entries[0].Message)

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "broker localhost:9092 unavailable", entries[1].Message)

	assert.Equal(t, "sqs", entries[2].LoggerName)
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[3].Level)
}
