package demo

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xlinked/xlog"
)

type syncBuffer struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Sync() error { return nil }

func (b *syncBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.String()
}

func newTestLogger(w zapcore.WriteSyncer) xlog.XLogger {
	return xlog.NewXLogger(
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
		xlog.WithXLoggerEncoder(xlog.JSON),
		xlog.WithXLoggerWriteSyncer(w),
		xlog.WithXLoggerContextFieldExtract(scenarioCtxKey, xlog.ContextKeyMapToOmitempty),
	)
}

func runScenarios(t *testing.T, scenarios []Scenario) {
	t.Helper()
	logger := newTestLogger(&syncBuffer{})
	for _, s := range scenarios {
		require.NoError(t, s.Run(withScenario(context.Background(), s.Name), logger), s.Name)
	}
}

func TestMultiplePassScenarios(t *testing.T) {
	scenarios := MultiplePassScenarios([]int{0, 1, 2, 5, 6, 10})
	require.Len(t, scenarios, 6)
	require.Equal(t, "multiple-pass/middle/len-0", scenarios[0].Name)
	runScenarios(t, scenarios)
}

func TestSlowFastScenarios(t *testing.T) {
	scenarios := SlowFastScenarios(5, []int{-1, 0, 1, 4, 5})
	require.Len(t, scenarios, 6)
	runScenarios(t, scenarios)

	runScenarios(t, SlowFastScenarios(0, []int{0}))
	runScenarios(t, SlowFastScenarios(1, []int{0}))
}

func TestTemporaryHeadScenarios(t *testing.T) {
	runScenarios(t, TemporaryHeadScenarios())
}

func TestAllScenarios(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	scenarios := AllScenarios(cfg)
	require.Len(t, scenarios, len(cfg.Sizes)+len(cfg.CyclePositions)+1+len(TemporaryHeadScenarios()))
	runScenarios(t, scenarios)
}

func TestScenarioLogsContext(t *testing.T) {
	w := &syncBuffer{}
	logger := newTestLogger(w)
	s := TemporaryHeadScenarios()[2]
	require.NoError(t, s.Run(withScenario(context.Background(), s.Name), logger))
	require.Contains(t, w.String(), `"scenario":"temporary-head/reverse"`)
	require.Contains(t, w.String(), `"reversed":"5 -> 4 -> 3 -> 2 -> 1 -> nil"`)
}

func TestExpectEqual(t *testing.T) {
	require.NoError(t, expectEqual("same", 1, 1))
	err := expectEqual("middle", 3, 4)
	require.EqualError(t, err, "middle: want 3, got 4")
}
