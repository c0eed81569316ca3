package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/AccelByte/extend-step-companion/pkg/action"
	"github.com/AccelByte/extend-step-companion/pkg/companion"
	"github.com/AccelByte/extend-step-companion/pkg/lifecycle"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
	"github.com/AccelByte/extend-step-companion/pkg/signal"
)

// DefaultQueueSize is the signal buffer used when NewManager gets a non-positive size.
const DefaultQueueSize = 64

// ErrStopped is returned by Submit once Run has returned.
var ErrStopped = errors.New("pipeline manager stopped")

// Manager orchestrates the companion pipeline:
// Signal → Lifecycle (rules) → Actions
//
// It is the only goroutine that touches the lifecycle engine. Producers
// hand it signals through Submit; readers use Snapshot.
type Manager struct {
	engine   *lifecycle.Engine
	executor *action.Executor
	pipeline *Pipeline
	logger   *slog.Logger

	signals  chan signal.Signal
	done     chan struct{}
	snapshot atomic.Pointer[companion.Snapshot]

	signalsProcessed atomic.Int64
	transitions      atomic.Int64
	actionsSucceeded atomic.Int64
	actionsFailed    atomic.Int64
}

// NewManager creates a new pipeline manager and installs it as the engine's
// transition handler.
func NewManager(engine *lifecycle.Engine, executor *action.Executor, pipeline *Pipeline, logger *slog.Logger, queueSize int) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if pipeline == nil {
		pipeline = NewPipeline("default")
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	m := &Manager{
		engine:   engine,
		executor: executor,
		pipeline: pipeline,
		logger:   logger,
		signals:  make(chan signal.Signal, queueSize),
		done:     make(chan struct{}),
	}
	engine.SetTransitionHandler(m)
	m.publish()

	return m
}

// Submit queues sig for the manager goroutine. It blocks while the queue is
// full, until ctx is done or the manager stops.
func (m *Manager) Submit(ctx context.Context, sig signal.Signal) error {
	select {
	case <-m.done:
		return ErrStopped
	default:
	}

	select {
	case m.signals <- sig:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-m.done:
		return ErrStopped
	}
}

// Run processes queued signals until ctx is done. It must be called once.
func (m *Manager) Run(ctx context.Context) error {
	defer close(m.done)

	m.publish()
	m.logger.Info("pipeline manager started", slog.String("pipeline", m.pipeline.Name))

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("pipeline manager stopping",
				slog.Int("pending_signals", len(m.signals)))
			return ctx.Err()
		case sig := <-m.signals:
			m.Process(ctx, sig)
		}
	}
}

// Process applies sig to the engine and publishes the resulting snapshot.
// It must not be called concurrently with Run.
func (m *Manager) Process(ctx context.Context, sig signal.Signal) {
	if sig == nil {
		return
	}

	switch s := sig.(type) {
	case *signal.TickSignal:
		m.engine.OnTick(ctx, s.Timestamp())
	case *signal.StepSignal:
		delta := m.engine.OnStepEvent(ctx, s.Timestamp(), s.Cumulative)
		m.logger.Debug("step sample applied",
			slog.Int("cumulative", s.Cumulative),
			slog.Int("delta", delta))
	case *signal.TapSignal:
		m.engine.Cry(ctx)
	default:
		m.logger.Warn("ignoring unknown signal", slog.String("signal_type", sig.Type()))
		return
	}

	m.signalsProcessed.Add(1)
	m.publish()
}

// HandleTransition executes the actions mapped to the trigger's rule.
// It runs on the manager goroutine, inside Process.
func (m *Manager) HandleTransition(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
	m.transitions.Add(1)

	actionIDs := m.pipeline.GetActions(trigger.RuleID)
	if len(actionIDs) == 0 {
		m.logger.Info("trigger has no actions configured",
			slog.String("rule_id", trigger.RuleID))
		return nil
	}

	m.logger.Info("executing actions for transition",
		slog.String("rule_id", trigger.RuleID),
		slog.String("kind", trigger.Transition.Kind),
		slog.String("species", snap.SpeciesID),
		slog.Int("action_count", len(actionIDs)))

	results, err := m.executor.ExecuteMultiple(ctx, actionIDs, trigger, snap, true)

	successCount := 0
	failureCount := 0
	for _, result := range results {
		if result.Error != nil {
			failureCount++
			m.logger.Error("action execution failed",
				slog.String("action_id", result.ActionID),
				slog.String("rule_id", trigger.RuleID),
				slog.String("error", result.Error.Error()))
		} else {
			successCount++
		}
	}
	m.actionsSucceeded.Add(int64(successCount))
	m.actionsFailed.Add(int64(failureCount))

	if failureCount > 0 && successCount > 0 {
		m.logger.Warn("partial action execution failure",
			slog.String("rule_id", trigger.RuleID),
			slog.Int("success", successCount),
			slog.Int("failed", failureCount))
	}

	return err
}

// Snapshot returns the companion as of the last processed signal.
func (m *Manager) Snapshot() companion.Snapshot {
	return *m.snapshot.Load()
}

func (m *Manager) publish() {
	snap := m.engine.Snapshot()
	m.snapshot.Store(&snap)
}

// Stats contains pipeline counters (for observability).
type Stats struct {
	SignalsProcessed int64 `json:"signals_processed"`
	PendingSignals   int   `json:"pending_signals"`
	Transitions      int64 `json:"transitions"`
	ActionsSucceeded int64 `json:"actions_succeeded"`
	ActionsFailed    int64 `json:"actions_failed"`
}

// GetStats returns current pipeline statistics.
func (m *Manager) GetStats() Stats {
	return Stats{
		SignalsProcessed: m.signalsProcessed.Load(),
		PendingSignals:   len(m.signals),
		Transitions:      m.transitions.Load(),
		ActionsSucceeded: m.actionsSucceeded.Load(),
		ActionsFailed:    m.actionsFailed.Load(),
	}
}
