package demo

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/benz9527/xlinked/lib/infra"
	"github.com/benz9527/xlinked/lib/list"
	"github.com/benz9527/xlinked/xlog"
)

const scenarioCtxKey = "scenario"

// Scenario runs one technique against its own lists and
// returns an error if the observed result is not the expected one.
type Scenario struct {
	Name string
	Run  func(ctx context.Context, logger xlog.XLogger) error
}

func withScenario(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, xlog.ContextKey(scenarioCtxKey), name)
}

// newIntList builds 1 -> 2 -> ... -> n.
func newIntList(n int) list.SinglyLinkedList[int] {
	l := list.NewSinglyLinkedList[int]()
	l.AppendValue(lo.RangeFrom(1, n)...)
	return l
}

func expectEqual[T comparable](what string, want, got T) error {
	if want != got {
		return infra.NewErrorStack(fmt.Sprintf("%s: want %v, got %v", what, want, got))
	}
	return nil
}

// MultiplePassScenarios finds the middle element of 1..n for every n.
func MultiplePassScenarios(sizes []int) []Scenario {
	scenarios := make([]Scenario, 0, len(sizes))
	for _, n := range sizes {
		n := n
		scenarios = append(scenarios, Scenario{
			Name: fmt.Sprintf("multiple-pass/middle/len-%d", n),
			Run: func(ctx context.Context, logger xlog.XLogger) error {
				l := newIntList(n)
				middle, ok := l.FindMiddle()
				logger.InfoContext(ctx, "find middle",
					zap.Stringer("list", l),
					zap.Int64("len", l.Len()),
					zap.Int("middle", middle),
					zap.Bool("found", ok),
				)
				if n == 0 {
					return expectEqual("middle found", false, ok)
				}
				return infra.AppendErrorStack(
					expectEqual("middle found", true, ok),
					expectEqual("middle", n/2+1, middle),
				)
			},
		})
	}
	return scenarios
}

// SlowFastScenarios links the tail of 1..size back to every position.
func SlowFastScenarios(size int, positions []int) []Scenario {
	scenarios := make([]Scenario, 0, len(positions)+1)
	scenarios = append(scenarios, Scenario{
		Name: fmt.Sprintf("slow-fast/acyclic/len-%d", size),
		Run: func(ctx context.Context, logger xlog.XLogger) error {
			l := newIntList(size)
			start, ok := l.FindCycleStart()
			logger.InfoContext(ctx, "find cycle start", zap.Stringer("list", l), zap.Bool("found", ok))
			return infra.AppendErrorStack(
				expectEqual("cycle found", false, ok),
				expectEqual("cycle start", 0, start),
			)
		},
	})
	for _, pos := range positions {
		pos := pos
		scenarios = append(scenarios, Scenario{
			Name: fmt.Sprintf("slow-fast/cycle/len-%d/pos-%d", size, pos),
			Run: func(ctx context.Context, logger xlog.XLogger) error {
				l := newIntList(size)
				rendered := l.String()
				// The list must not be rendered after the injection.
				injected := l.InjectCycle(pos)
				start, ok := l.FindCycleStart()
				logger.InfoContext(ctx, "find cycle start",
					zap.String("list", rendered),
					zap.Int("pos", pos),
					zap.Bool("injected", injected),
					zap.Int("start", start),
					zap.Bool("found", ok),
				)
				if pos < 0 || pos >= size {
					return infra.AppendErrorStack(
						expectEqual("cycle injected", false, injected),
						expectEqual("cycle found", false, ok),
					)
				}
				return infra.AppendErrorStack(
					expectEqual("cycle injected", true, injected),
					expectEqual("cycle found", true, ok),
					expectEqual("cycle start", pos+1, start),
					expectEqual("has cycle", true, l.HasCycle()),
				)
			},
		})
	}
	return scenarios
}

// TemporaryHeadScenarios deletes and reverses through the sentinel head.
func TemporaryHeadScenarios() []Scenario {
	return []Scenario{
		{
			Name: "temporary-head/delete",
			Run: func(ctx context.Context, logger xlog.XLogger) error {
				l := newIntList(5)
				steps := []struct {
					value   int
					deleted bool
					want    string
				}{
					{3, true, "1 -> 2 -> 4 -> 5 -> nil"},
					{1, true, "2 -> 4 -> 5 -> nil"},
					{99, false, "2 -> 4 -> 5 -> nil"},
				}
				var merr error
				for _, step := range steps {
					deleted := l.DeleteByValue(step.value)
					logger.InfoContext(ctx, "delete by value",
						zap.Int("value", step.value),
						zap.Bool("deleted", deleted),
						zap.Stringer("list", l),
					)
					merr = infra.AppendErrorStack(merr,
						expectEqual(fmt.Sprintf("delete %d", step.value), step.deleted, deleted),
						expectEqual(fmt.Sprintf("list after delete %d", step.value), step.want, l.String()),
					)
				}
				return merr
			},
		},
		{
			Name: "temporary-head/delete-sole",
			Run: func(ctx context.Context, logger xlog.XLogger) error {
				l := newIntList(1)
				deleted := l.DeleteByValue(1)
				logger.InfoContext(ctx, "delete sole element", zap.Bool("deleted", deleted), zap.Stringer("list", l))
				return infra.AppendErrorStack(
					expectEqual("deleted", true, deleted),
					expectEqual("len", int64(0), l.Len()),
				)
			},
		},
		{
			Name: "temporary-head/reverse",
			Run: func(ctx context.Context, logger xlog.XLogger) error {
				l := newIntList(5)
				l.Reverse()
				reversed := l.String()
				l.Reverse()
				logger.InfoContext(ctx, "reverse twice", zap.String("reversed", reversed), zap.Stringer("restored", l))
				return infra.AppendErrorStack(
					expectEqual("reversed", "5 -> 4 -> 3 -> 2 -> 1 -> nil", reversed),
					expectEqual("restored", "1 -> 2 -> 3 -> 4 -> 5 -> nil", l.String()),
				)
			},
		},
		{
			Name: "temporary-head/reverse-empty",
			Run: func(ctx context.Context, logger xlog.XLogger) error {
				l := newIntList(0)
				l.Reverse()
				logger.InfoContext(ctx, "reverse empty", zap.Stringer("list", l))
				return expectEqual("empty", "nil", l.String())
			},
		},
	}
}

// AllScenarios composes the three techniques from cfg.
func AllScenarios(cfg *Config) []Scenario {
	scenarios := MultiplePassScenarios(cfg.Sizes)
	scenarios = append(scenarios, SlowFastScenarios(cfg.CycleListSize, cfg.CyclePositions)...)
	scenarios = append(scenarios, TemporaryHeadScenarios()...)
	return scenarios
}
