package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/AccelByte/extend-step-companion/pkg/action"
	"github.com/AccelByte/extend-step-companion/pkg/companion"
	"github.com/AccelByte/extend-step-companion/pkg/lifecycle"
	"github.com/AccelByte/extend-step-companion/pkg/pipeline"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
	ruleBuiltin "github.com/AccelByte/extend-step-companion/pkg/rule/builtin"
	"github.com/AccelByte/extend-step-companion/pkg/service"
	"github.com/AccelByte/extend-step-companion/pkg/service/mock"
	"github.com/AccelByte/extend-step-companion/pkg/signal"
	"github.com/AccelByte/extend-step-companion/pkg/species"
	"github.com/AccelByte/extend-step-companion/pkg/state"
)

var day1 = time.Date(2026, time.June, 1, 10, 0, 0, 0, time.Local)

// fixedRand never rolls a variant and always draws the first species.
type fixedRand struct{}

func (fixedRand) IntN(n int) int {
	if n > 2 {
		return n - 1
	}
	return 0
}

// mockAction records the triggers it executes.
type mockAction struct {
	id  string
	err error

	mu       sync.Mutex
	triggers []*rule.Trigger
	rolled   int
}

func (m *mockAction) ID() string {
	return m.id
}

func (m *mockAction) Name() string {
	return "Mock Action"
}

func (m *mockAction) Execute(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.triggers = append(m.triggers, trigger)
	return m.err
}

func (m *mockAction) Rollback(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rolled++
	return nil
}

func (m *mockAction) Config() action.ActionConfig {
	return action.ActionConfig{ID: m.id, Type: "mock", Enabled: true}
}

func (m *mockAction) executed() []*rule.Trigger {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]*rule.Trigger(nil), m.triggers...)
}

type testManager struct {
	manager *pipeline.Manager
	engine  *lifecycle.Engine
	audio   *mock.AudioPlayer
}

func testCatalog() *species.Catalog {
	return species.NewCatalog([]species.Species{
		{ID: "004", Name: "Charmander", EvolvesTo: "005", EvolutionLevel: 16, HasEgg: true},
		{ID: "005", Name: "Charmeleon", EvolutionLevel: species.NoEvolution, HasEgg: true},
	})
}

// setupManager builds a manager over a started engine whose companion is
// a Charmander egg with no steps walked.
func setupManager(t *testing.T, p *pipeline.Pipeline, actions ...action.Action) *testManager {
	t.Helper()

	catalog := testCatalog()
	store := state.NewMemoryStore()
	store.Set(context.Background(), state.TodayKey(state.PrefixSpecies, day1), 4)

	rules := rule.NewRegistry()
	rules.Register(ruleBuiltin.NewHatchRule(rule.RuleConfig{ID: "hatch", Enabled: true, Priority: 20}, catalog))
	rules.Register(ruleBuiltin.NewLevelEvolutionRule(rule.RuleConfig{ID: "evolve", Enabled: true, Priority: 10}, catalog))

	audio := mock.NewAudioPlayer()
	engine, err := lifecycle.New(lifecycle.Config{
		Store:   store,
		Catalog: catalog,
		Rules:   rule.NewEngine(rules),
		Rand:    fixedRand{},
		Audio:   audio,
	})
	if err != nil {
		t.Fatalf("lifecycle.New() error = %v", err)
	}
	if err := engine.Start(context.Background(), day1); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	registry := action.NewRegistry()
	for _, a := range actions {
		registry.Register(a)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := pipeline.NewManager(engine, action.NewExecutor(registry), p, logger, 8)

	return &testManager{manager: manager, engine: engine, audio: audio}
}

// walk reports a counter of 1000 then 1000+steps.
func (tm *testManager) walk(ctx context.Context, steps int) {
	tm.manager.Process(ctx, signal.NewStepSignal(day1, 1000))
	tm.manager.Process(ctx, signal.NewStepSignal(day1.Add(time.Second), 1000+steps))
}

func TestNewManager(t *testing.T) {
	tm := setupManager(t, nil)

	snap := tm.manager.Snapshot()
	if snap.SpeciesID != "004" || !snap.IsEgg {
		t.Errorf("expected snapshot of the Charmander egg, got %+v", snap)
	}

	stats := tm.manager.GetStats()
	if stats.SignalsProcessed != 0 || stats.Transitions != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestProcess_StepUpdatesSnapshot(t *testing.T) {
	tm := setupManager(t, nil)
	tm.walk(context.Background(), 250)

	snap := tm.manager.Snapshot()
	if snap.Experience != 250 || snap.Level != 2 {
		t.Errorf("expected experience 250 level 2, got %d level %d", snap.Experience, snap.Level)
	}
	if got := tm.manager.GetStats().SignalsProcessed; got != 2 {
		t.Errorf("expected 2 signals processed, got %d", got)
	}
}

func TestProcess_TickWithoutTransition(t *testing.T) {
	sound := &mockAction{id: "sound"}
	p := pipeline.NewPipeline("test").AddRule("hatch").AddActions("hatch", "sound")
	tm := setupManager(t, p, sound)

	tm.walk(context.Background(), 499)
	tm.manager.Process(context.Background(), signal.NewTickSignal(day1.Add(time.Minute)))

	if len(sound.executed()) != 0 {
		t.Error("expected no actions below the hatch level")
	}
	if !tm.manager.Snapshot().IsEgg {
		t.Error("expected companion to remain an egg")
	}
}

func TestProcess_HatchExecutesMappedActions(t *testing.T) {
	sound := &mockAction{id: "sound"}
	record := &mockAction{id: "record"}
	p := pipeline.NewPipeline("test").
		AddRule("hatch").AddActions("hatch", "sound", "record").
		AddRule("evolve").AddActions("evolve", "record")
	tm := setupManager(t, p, sound, record)

	ctx := context.Background()
	tm.walk(ctx, 500)
	tm.manager.Process(ctx, signal.NewTickSignal(day1.Add(time.Minute)))

	if tm.manager.Snapshot().IsEgg {
		t.Fatal("expected egg to hatch at level 5")
	}

	executed := sound.executed()
	if len(executed) != 1 {
		t.Fatalf("expected sound executed once, got %d", len(executed))
	}
	if executed[0].RuleID != "hatch" || executed[0].Transition.Kind != rule.TransitionHatch {
		t.Errorf("unexpected trigger: %+v", executed[0])
	}
	if len(record.executed()) != 1 {
		t.Errorf("expected record executed once, got %d", len(record.executed()))
	}

	// The manager handles the transition, so the engine plays no cue itself.
	if len(tm.audio.Cues()) != 0 {
		t.Errorf("expected no direct cues, got %v", tm.audio.Cues())
	}

	stats := tm.manager.GetStats()
	if stats.Transitions != 1 || stats.ActionsSucceeded != 2 || stats.ActionsFailed != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestProcess_EvolutionAfterHatch(t *testing.T) {
	record := &mockAction{id: "record"}
	p := pipeline.NewPipeline("test").
		AddRule("hatch").AddActions("hatch", "record").
		AddRule("evolve").AddActions("evolve", "record")
	tm := setupManager(t, p, record)

	ctx := context.Background()
	tm.walk(ctx, 1600)

	// One transition per tick: hatch first, then evolve.
	tm.manager.Process(ctx, signal.NewTickSignal(day1.Add(time.Minute)))
	if snap := tm.manager.Snapshot(); snap.IsEgg || snap.SpeciesID != "004" {
		t.Fatalf("expected hatched Charmander after first tick, got %+v", snap)
	}

	tm.manager.Process(ctx, signal.NewTickSignal(day1.Add(2*time.Minute)))
	if snap := tm.manager.Snapshot(); snap.SpeciesID != "005" || snap.Name != "Charmeleon" {
		t.Fatalf("expected Charmeleon after second tick, got %+v", snap)
	}

	executed := record.executed()
	if len(executed) != 2 {
		t.Fatalf("expected 2 transitions recorded, got %d", len(executed))
	}
	if executed[1].Transition.From != "004" || executed[1].Transition.To != "005" {
		t.Errorf("unexpected evolution: %+v", executed[1].Transition)
	}

	tm.manager.Process(ctx, signal.NewTickSignal(day1.Add(3*time.Minute)))
	if len(record.executed()) != 2 {
		t.Error("expected no further transitions for a terminal species")
	}
}

func TestProcess_ActionFailureRollsBack(t *testing.T) {
	first := &mockAction{id: "first"}
	failing := &mockAction{id: "failing", err: errors.New("speaker offline")}
	p := pipeline.NewPipeline("test").AddRule("hatch").AddActions("hatch", "first", "failing")
	tm := setupManager(t, p, first, failing)

	ctx := context.Background()
	tm.walk(ctx, 500)
	tm.manager.Process(ctx, signal.NewTickSignal(day1.Add(time.Minute)))

	// The transition stands even though its side effects failed.
	if tm.manager.Snapshot().IsEgg {
		t.Error("expected hatch to be applied despite action failure")
	}
	if first.rolled != 1 {
		t.Errorf("expected first action rolled back once, got %d", first.rolled)
	}

	stats := tm.manager.GetStats()
	if stats.ActionsSucceeded != 1 || stats.ActionsFailed != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestProcess_TransitionWithoutActions(t *testing.T) {
	tm := setupManager(t, pipeline.NewPipeline("empty"))

	ctx := context.Background()
	tm.walk(ctx, 500)
	tm.manager.Process(ctx, signal.NewTickSignal(day1.Add(time.Minute)))

	if tm.manager.Snapshot().IsEgg {
		t.Error("expected hatch to be applied")
	}
	if got := tm.manager.GetStats().Transitions; got != 1 {
		t.Errorf("expected 1 transition, got %d", got)
	}
}

func TestProcess_TapPlaysCry(t *testing.T) {
	tm := setupManager(t, nil)
	ctx := context.Background()

	// Eggs are silent.
	tm.manager.Process(ctx, signal.NewTapSignal(day1))
	if len(tm.audio.Cues()) != 0 {
		t.Fatalf("expected no cry from an egg, got %v", tm.audio.Cues())
	}

	tm.walk(ctx, 500)
	tm.manager.Process(ctx, signal.NewTickSignal(day1.Add(time.Minute)))
	tm.manager.Process(ctx, signal.NewTapSignal(day1.Add(2*time.Minute)))

	cues := tm.audio.Cues()
	if len(cues) != 1 || cues[0].Kind != service.CueCry || cues[0].Asset != companion.CryAsset("Charmander") {
		t.Errorf("expected Charmander cry, got %v", cues)
	}
}

func TestProcess_NilSignalIgnored(t *testing.T) {
	tm := setupManager(t, nil)
	tm.manager.Process(context.Background(), nil)

	if got := tm.manager.GetStats().SignalsProcessed; got != 0 {
		t.Errorf("expected nil signal to be ignored, got %d processed", got)
	}
}

func TestRun_ProcessesSubmittedSignals(t *testing.T) {
	tm := setupManager(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tm.manager.Run(ctx)
	}()

	if err := tm.manager.Submit(ctx, signal.NewStepSignal(day1, 1000)); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if err := tm.manager.Submit(ctx, signal.NewStepSignal(day1.Add(time.Second), 1120)); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	deadline := time.After(2 * time.Second)
	for tm.manager.Snapshot().Experience != 120 {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for steps, snapshot %+v", tm.manager.Snapshot())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}

	if err := tm.manager.Submit(context.Background(), signal.NewTapSignal(day1)); !errors.Is(err, pipeline.ErrStopped) {
		t.Errorf("Submit() after stop error = %v, expected ErrStopped", err)
	}
}

func TestSubmit_ContextCanceledWhenQueueFull(t *testing.T) {
	tm := setupManager(t, nil)

	ctx := context.Background()
	for i := 0; i < 8; i++ {
		if err := tm.manager.Submit(ctx, signal.NewTickSignal(day1)); err != nil {
			t.Fatalf("Submit() %d error = %v", i, err)
		}
	}
	if got := tm.manager.GetStats().PendingSignals; got != 8 {
		t.Errorf("expected 8 pending signals, got %d", got)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := tm.manager.Submit(cancelled, signal.NewTickSignal(day1)); !errors.Is(err, context.Canceled) {
		t.Errorf("Submit() on full queue error = %v, expected context.Canceled", err)
	}
}
