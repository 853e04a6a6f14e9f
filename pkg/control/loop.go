// Package control runs the fixed-frequency planning loop. Each cycle it
// reads the latest sensor and goal state, derives the policy input, queries
// the inference engine and publishes the resulting velocity command.
package control

import (
	"context"
	"fmt"
	"time"

	"github.com/IhabMohamed/deep-motion-planning/pkg/geometry"
	"github.com/IhabMohamed/deep-motion-planning/pkg/goal"
	"github.com/IhabMohamed/deep-motion-planning/pkg/inference"
	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
	"github.com/IhabMohamed/deep-motion-planning/pkg/scan"
	"github.com/IhabMohamed/deep-motion-planning/pkg/target"
)

// CommandPublisher emits velocity commands to the robot base.
type CommandPublisher interface {
	PublishCommand(cmd geometry.Twist) error
}

// ToleranceSource supplies the goal tolerances for the current cycle.
// Implementations may change the values between cycles.
type ToleranceSource interface {
	Tolerances() (position, orientation float64)
}

// Config holds the loop's timing and scan shape.
type Config struct {
	// Period is the fixed control period (1 / control frequency).
	Period time.Duration
	// ScanStride is the decimation stride applied to raw scans.
	ScanStride int
	// ScanLength is the fixed policy input length for the scan portion;
	// the full input vector is ScanLength + 3.
	ScanLength int
}

// Deps are the collaborators the loop drives each cycle.
type Deps struct {
	Scans      *scan.Latest
	Goals      *goal.Lifecycle
	Targets    *target.Computer
	Provider   inference.Provider
	Commands   CommandPublisher
	Tolerances ToleranceSource
	Logger     log.Logger
}

// Loop is the periodic planner. Producers feed Scans and Goals from their
// own goroutines; the loop is the only consumer and the only caller of the
// inference engine.
type Loop struct {
	period  time.Duration
	stride  int
	scanLen int

	scans      *scan.Latest
	goals      *goal.Lifecycle
	targets    *target.Computer
	provider   inference.Provider
	commands   CommandPublisher
	tolerances ToleranceSource

	stats  Stats
	logger log.Logger
}

// NewLoop assembles a loop from validated configuration. Config values are
// assumed validated at startup.
func NewLoop(cfg Config, deps Deps) *Loop {
	return &Loop{
		period:     cfg.Period,
		stride:     cfg.ScanStride,
		scanLen:    cfg.ScanLength,
		scans:      deps.Scans,
		goals:      deps.Goals,
		targets:    deps.Targets,
		provider:   deps.Provider,
		commands:   deps.Commands,
		tolerances: deps.Tolerances,
		logger:     deps.Logger,
	}
}

// Run executes the loop until ctx is cancelled and returns nil on a clean
// shutdown. The inference engine is opened before the first cycle and
// released when Run returns, whichever way it exits. Shutdown does not touch
// the goal state; a caller that wants the active goal aborted must preempt
// it explicitly.
func (l *Loop) Run(ctx context.Context) error {
	engine, err := l.provider.Open()
	if err != nil {
		return fmt.Errorf("failed to open inference engine: %w", err)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			l.logger.Errorf("failed to close inference engine: %v", err)
		}
	}()

	l.logger.Infof("control loop started: period=%s stride=%d input=%d+3",
		l.period, l.stride, l.scanLen)

	timer := time.NewTimer(l.period)
	defer timer.Stop()

	// Deadline accumulator: each cycle's deadline is derived from the
	// previous one, not from when the body finished, so slow cycles do not
	// accumulate drift.
	next := time.Now()
	for {
		next = next.Add(l.period)

		wait := time.Until(next)
		if wait < 0 {
			l.stats.mu.Lock()
			l.stats.MissedDeadlines++
			l.stats.mu.Unlock()
			l.logger.Warnf("control cycle missed its deadline by %s", -wait)
			wait = 0
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			l.logger.Infof("control loop stopped")
			l.logStats()
			return nil
		case <-timer.C:
		}

		l.tick(engine)
	}
}

// tick runs one cycle body. Every failure path skips the cycle without a
// command; nothing a tick does can terminate the loop.
func (l *Loop) tick(engine inference.Engine) {
	l.stats.mu.Lock()
	l.stats.Ticks++
	l.stats.mu.Unlock()

	current, ok := l.goals.Current()
	if !ok {
		return
	}

	frame, ok := l.scans.Load()
	if !ok {
		l.logger.Debugf("no scan received yet, skipping cycle")
		l.skipped()
		return
	}

	rel, ok := l.targets.Compute(current.Pose)
	if !ok {
		l.skipped()
		return
	}

	ranges, err := scan.Preprocess(frame.Ranges, l.stride, l.scanLen)
	if err != nil {
		l.logger.Warnf("scan preprocessing failed: %v", err)
		l.skipped()
		return
	}

	input := make([]float64, 0, len(ranges)+3)
	input = append(input, ranges...)
	input = append(input, rel.DX, rel.DY, rel.DYaw)

	linear, angular, err := engine.Infer(input)
	if err != nil {
		l.logger.Warnf("inference failed, no command this cycle: %v", err)
		l.stats.mu.Lock()
		l.stats.InferenceErrors++
		l.stats.SkippedTicks++
		l.stats.mu.Unlock()
		return
	}

	if err := l.commands.PublishCommand(geometry.Command(linear, angular)); err != nil {
		l.logger.Errorf("failed to publish command: %v", err)
	} else {
		l.stats.mu.Lock()
		l.stats.CommandsSent++
		l.stats.LastCommandTime = time.Now().UnixNano()
		l.stats.mu.Unlock()
	}

	posTol, orientTol := l.tolerances.Tolerances()
	l.goals.CheckReached(rel, posTol, orientTol)
}

func (l *Loop) skipped() {
	l.stats.mu.Lock()
	l.stats.SkippedTicks++
	l.stats.mu.Unlock()
}

func (l *Loop) logStats() {
	s := l.Stats()
	l.logger.Infof("control loop metrics: ticks=%d commands=%d skipped=%d missed_deadlines=%d inference_errors=%d",
		s.Ticks, s.CommandsSent, s.SkippedTicks, s.MissedDeadlines, s.InferenceErrors)
}
