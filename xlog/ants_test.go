package xlog

import (
	"testing"
	"time"

	antsv2 "github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestAntsXLogger_ParentLogLevelChanged(t *testing.T) {
	var (
		parentLogger XLogger      = nil
		logger       *AntsXLogger = nil
	)
	logger.Printf("test %d", 123)
	require.Nil(t, NewAntsXLogger(nil).logger)

	w := &testMemOutWriter{}
	parentLogger = newTestXLogger(t, w)
	logger = NewAntsXLogger(parentLogger)
	parentLogger.IncreaseLogLevel(zapcore.InfoLevel)
	logger.Printf("test %d", 123)
	parentLogger.IncreaseLogLevel(zapcore.FatalLevel)
	logger.Printf("test %d", 456)
	_ = parentLogger.Sync()

	lines := w.lines()
	require.Len(t, lines, 1)
	require.Equal(t, "Ants", lines[0]["component"])
	require.Equal(t, "test 123", lines[0]["msg"])
}

func TestAntsXLogger_AntsPool(t *testing.T) {
	w := &testMemOutWriter{}
	parentLogger := newTestXLogger(t, w)
	logger := NewAntsXLogger(parentLogger)

	p, err := antsv2.NewPool(10, antsv2.WithLogger(logger))
	require.NoError(t, err)
	defer p.Release()
	err = p.Submit(func() {
		panic("xlogger panic in ants pool")
	})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return len(w.lines()) > 0
	}, time.Second, 10*time.Millisecond)
	require.Equal(t, "Ants", w.lines()[0]["component"])
}
