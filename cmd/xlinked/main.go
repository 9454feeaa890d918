package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/benz9527/xlinked/demo"
	"github.com/benz9527/xlinked/xlog"
)

func main() {
	var (
		configPath string
		usage      bool
	)
	flag.StringVar(&configPath, "config", "", "optional yaml config file, the environment variables override it")
	flag.BoolVar(&usage, "usage", false, "print the supported environment variables")
	flag.Parse()

	if usage {
		fmt.Println(demo.Usage())
		return
	}

	cfg, err := demo.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(run(cfg))
}

func run(cfg *demo.Config) int {
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(demo.NewLogger),
		fx.WithLogger(func(logger xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Provide(demo.NewRunner),
		fx.Invoke(registerRunner),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	sig := <-app.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return sig.ExitCode
}

func registerRunner(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	cfg *demo.Config,
	runner *demo.Runner,
	logger xlog.XLogger,
) {
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Banner(demo.Banner{})
			go func() {
				defer close(done)
				code := 0
				if _, err := runner.Run(runCtx, demo.AllScenarios(cfg)); err != nil {
					code = 1
				}
				_ = sd.Shutdown(fx.ExitCode(code))
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
			}
			runner.Release()
			return logger.Close()
		},
	})
}
