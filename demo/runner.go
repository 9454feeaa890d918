package demo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/benz9527/xlinked/lib/infra"
	"github.com/benz9527/xlinked/xlog"
)

type Report struct {
	Passed int
	Failed int
}

// Runner runs the scenarios on a goroutine pool.
// Every scenario owns its lists, the lists are never shared between workers.
type Runner struct {
	logger xlog.XLogger
	pool   *ants.Pool
}

func NewRunner(cfg *Config, logger xlog.XLogger) (*Runner, error) {
	if cfg == nil || logger == nil {
		return nil, infra.NewErrorStack("[demo] runner with nil config or nil logger")
	}
	pool, err := ants.NewPool(
		cfg.Workers,
		ants.WithPreAlloc(true),
		ants.WithLogger(xlog.NewAntsXLogger(logger)),
	)
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[demo] unable to create the worker pool")
	}
	return &Runner{
		logger: logger,
		pool:   pool,
	}, nil
}

// Run submits the scenarios until ctx is done and waits for the submitted ones.
// The returned error is the collection of all the scenario failures.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (Report, error) {
	var (
		report Report
		merr   error
		lock   sync.Mutex
		wg     sync.WaitGroup
		begin  = time.Now()
	)
	record := func(name string, err error) {
		lock.Lock()
		defer lock.Unlock()
		if err != nil {
			report.Failed++
			merr = infra.AppendErrorStack(merr, infra.WrapErrorStackWithMessage(err, "[demo] scenario "+name+" failed"))
			return
		}
		report.Passed++
	}

	for _, s := range scenarios {
		s := s
		if err := ctx.Err(); err != nil {
			record(s.Name, err)
			continue
		}
		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					record(s.Name, infra.NewErrorStack(fmt.Sprintf("panic: %v", p)))
				}
			}()
			sctx := withScenario(ctx, s.Name)
			r.logger.DebugContext(sctx, "scenario begin")
			err := s.Run(sctx, r.logger)
			record(s.Name, err)
		})
		if err != nil {
			wg.Done()
			record(s.Name, err)
		}
	}
	wg.Wait()

	r.logger.Info("scenarios finished",
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
		zap.Duration("cost", time.Since(begin)),
	)
	if merr != nil {
		r.logger.ErrorStack(merr, "scenarios failed")
	}
	return report, merr
}

func (r *Runner) Release() {
	if r == nil || r.pool == nil {
		return
	}
	r.pool.Release()
}
