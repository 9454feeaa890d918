package demo

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xlinked/xlog"
)

func newTestRunner(t *testing.T, w *syncBuffer) *Runner {
	t.Helper()
	runner, err := NewRunner(&Config{Workers: 2}, newTestLogger(w))
	require.NoError(t, err)
	t.Cleanup(runner.Release)
	return runner
}

func TestNewRunner_Invalid(t *testing.T) {
	_, err := NewRunner(nil, nil)
	require.Error(t, err)
	_, err = NewRunner(&Config{Workers: 1}, nil)
	require.Error(t, err)

	var r *Runner
	r.Release()
}

func TestRunner_RunAll(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	w := &syncBuffer{}
	runner := newTestRunner(t, w)

	scenarios := AllScenarios(cfg)
	report, err := runner.Run(context.Background(), scenarios)
	require.NoError(t, err)
	require.Equal(t, Report{Passed: len(scenarios)}, report)
	require.Contains(t, w.String(), "scenarios finished")
	require.NotContains(t, w.String(), "scenarios failed")
}

func TestRunner_Failures(t *testing.T) {
	w := &syncBuffer{}
	runner := newTestRunner(t, w)

	var executed atomic.Int32
	scenarios := []Scenario{
		{Name: "ok", Run: func(ctx context.Context, logger xlog.XLogger) error {
			executed.Add(1)
			return nil
		}},
		{Name: "broken", Run: func(ctx context.Context, logger xlog.XLogger) error {
			executed.Add(1)
			return errors.New("broken")
		}},
		{Name: "panic", Run: func(ctx context.Context, logger xlog.XLogger) error {
			executed.Add(1)
			panic("boom")
		}},
	}
	report, err := runner.Run(context.Background(), scenarios)
	require.Error(t, err)
	require.Equal(t, int32(3), executed.Load())
	require.Equal(t, Report{Passed: 1, Failed: 2}, report)
	require.Contains(t, err.Error(), "scenario broken failed")
	require.Contains(t, err.Error(), "panic: boom")

	es, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	require.Len(t, es.Unwrap(), 4)
	require.True(t, strings.Contains(w.String(), "scenarios failed"))
}

func TestRunner_Cancelled(t *testing.T) {
	runner := newTestRunner(t, &syncBuffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := runner.Run(ctx, TemporaryHeadScenarios())
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, Report{Failed: len(TemporaryHeadScenarios())}, report)
}
