// Package lifecycle owns the companion state machine: daily respawn,
// experience from steps, hatching and evolution.
//
// An Engine is not safe for concurrent use. It is driven by a single
// goroutine (the pipeline manager); other goroutines read the snapshots
// that goroutine publishes.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/companion"
	"github.com/AccelByte/extend-step-companion/pkg/ledger"
	"github.com/AccelByte/extend-step-companion/pkg/metrics"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
	"github.com/AccelByte/extend-step-companion/pkg/service"
	"github.com/AccelByte/extend-step-companion/pkg/species"
	"github.com/AccelByte/extend-step-companion/pkg/state"
)

// Default variant odds: one in N creatures is drawn in the rare form.
const (
	DefaultSpawnVariantOdds    = 1000
	DefaultRolloverVariantOdds = 100
)

// TransitionHandler receives every applied hatch or evolution.
type TransitionHandler interface {
	HandleTransition(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error
}

// Config wires an Engine to its collaborators.
type Config struct {
	Store   state.Store
	Catalog *species.Catalog
	Rules   *rule.Engine
	Rand    species.Rand

	// Audio receives cries, and evolution cues when no TransitionHandler is set.
	Audio service.AudioPlayer

	// SpawnVariantOdds applies when a session starts, RolloverVariantOdds
	// at each daily respawn. Zero selects the default, negative disables.
	SpawnVariantOdds    int
	RolloverVariantOdds int
}

// Engine applies rollover and evolution rules to the companion.
type Engine struct {
	raw     state.Store
	store   state.Store
	ledger  *ledger.Ledger
	catalog *species.Catalog
	rules   *rule.Engine
	rng     species.Rand
	audio   service.AudioPlayer
	handler TransitionHandler

	spawnOdds    int
	rolloverOdds int

	state companion.State
}

// New creates an engine. Store, Catalog, Rules and Rand are required.
func New(cfg Config) (*Engine, error) {
	if cfg.Store == nil {
		return nil, errors.New("lifecycle: store is required")
	}
	if cfg.Catalog == nil {
		return nil, errors.New("lifecycle: catalog is required")
	}
	if cfg.Rules == nil {
		return nil, errors.New("lifecycle: rule engine is required")
	}
	if cfg.Rand == nil {
		return nil, errors.New("lifecycle: random source is required")
	}

	soft := state.NewFailSoft(cfg.Store)

	return &Engine{
		raw:          cfg.Store,
		store:        soft,
		ledger:       ledger.New(soft),
		catalog:      cfg.Catalog,
		rules:        cfg.Rules,
		rng:          cfg.Rand,
		audio:        cfg.Audio,
		spawnOdds:    oddsOrDefault(cfg.SpawnVariantOdds, DefaultSpawnVariantOdds),
		rolloverOdds: oddsOrDefault(cfg.RolloverVariantOdds, DefaultRolloverVariantOdds),
	}, nil
}

func oddsOrDefault(odds, def int) int {
	if odds == 0 {
		return def
	}
	return odds
}

// SetTransitionHandler installs the receiver of applied transitions.
func (e *Engine) SetTransitionHandler(h TransitionHandler) {
	e.handler = h
}

// Start restores the session for the day containing now: today's species
// if one was already drawn, and experience equal to the steps already
// walked today. Unlike later operations, Start reports store failures.
func (e *Engine) Start(ctx context.Context, now time.Time) error {
	today := companion.DayOf(now)

	id, err := e.todaySpecies(ctx, e.raw, today)
	if err != nil {
		return fmt.Errorf("failed to restore species: %w", err)
	}

	daily, err := ledger.New(e.raw).DailySteps(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to restore experience: %w", err)
	}

	e.state = companion.State{
		SpeciesID:  id,
		IsEgg:      e.catalog.HasEggForm(id),
		IsVariant:  e.rollVariant(e.spawnOdds),
		Experience: daily,
		CurrentDay: today,
	}
	e.publish()

	logrus.Infof("companion session started: species=%s egg=%v variant=%v experience=%d",
		id, e.state.IsEgg, e.state.IsVariant, e.state.Experience)
	return nil
}

// OnTick advances the lifecycle to now: it respawns the companion on a new
// calendar day, then applies at most one due transition. It returns the
// applied trigger, or nil. Repeating a tick at the same instant is a no-op
// once its transition is applied.
func (e *Engine) OnTick(ctx context.Context, now time.Time) *rule.Trigger {
	e.checkRollover(ctx, now)
	return e.evolve(ctx, now)
}

// OnStepEvent credits a cumulative step counter sample as experience and
// returns the increment. A sample from a new day respawns the companion first.
// A late sample stamped before the current day is recorded in that day's
// ledger but not credited to today's companion.
func (e *Engine) OnStepEvent(ctx context.Context, now time.Time, cumulative int) int {
	e.checkRollover(ctx, now)

	delta, err := e.ledger.RecordSample(ctx, now, cumulative)
	if err != nil {
		logrus.Warnf("step sample dropped: %v", err)
		return 0
	}

	if day := companion.DayOf(now); day.Before(e.state.CurrentDay) {
		logrus.Debugf("late step sample for %s not credited to %s", day, e.state.CurrentDay)
		return delta
	}

	e.state.Experience += delta
	if delta > 0 {
		metrics.StepsTotal.Add(float64(delta))
	}
	e.publish()

	return delta
}

// Cry asks the audio player for the companion's cry. Eggs are silent.
func (e *Engine) Cry(ctx context.Context) {
	if e.audio == nil {
		return
	}

	snap := e.Snapshot()
	if snap.CryAsset == "" {
		return
	}

	if err := e.audio.Play(ctx, service.Cue{Kind: service.CueCry, Asset: snap.CryAsset}); err != nil {
		logrus.Warnf("failed to play cry %s: %v", snap.CryAsset, err)
	}
}

// State returns a copy of the current companion state.
func (e *Engine) State() companion.State {
	return e.state
}

// Snapshot resolves the current state for rendering.
func (e *Engine) Snapshot() companion.Snapshot {
	return companion.Resolve(e.state, e.catalog)
}

// checkRollover respawns the companion when now falls on a different
// calendar day and reports whether it did. Days only move forward: an
// instant from an earlier day leaves the companion untouched.
func (e *Engine) checkRollover(ctx context.Context, now time.Time) bool {
	today := companion.DayOf(now)
	if today == e.state.CurrentDay || today.Before(e.state.CurrentDay) {
		return false
	}

	// The fail-soft store never returns an error.
	id, _ := e.todaySpecies(ctx, e.store, today)

	previous := e.state
	e.state = companion.State{
		SpeciesID:  id,
		IsEgg:      e.catalog.HasEggForm(id),
		IsVariant:  e.rollVariant(e.rolloverOdds),
		Experience: 0,
		CurrentDay: today,
	}
	metrics.RolloversTotal.Inc()
	e.publish()

	logrus.Infof("new day %s: companion %s replaced by %s (egg=%v variant=%v)",
		today, previous.SpeciesID, id, e.state.IsEgg, e.state.IsVariant)
	return true
}

// todaySpecies returns the species persisted for day, drawing and
// persisting a new one if none was recorded.
func (e *Engine) todaySpecies(ctx context.Context, store state.Store, day companion.Day) (string, error) {
	key := state.DayKey(state.PrefixSpecies, day)

	stored, err := store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if stored > 0 {
		return species.FormatID(stored), nil
	}

	id := e.catalog.RandomID(e.rng)
	n, err := species.ParseID(id)
	if err != nil {
		return id, nil
	}
	if err := store.Set(ctx, key, n); err != nil {
		return "", err
	}
	return id, nil
}

func (e *Engine) rollVariant(odds int) bool {
	if odds <= 0 {
		return false
	}
	return e.rng.IntN(odds) == 0
}

func (e *Engine) evolve(ctx context.Context, now time.Time) *rule.Trigger {
	triggers, err := e.rules.Evaluate(ctx, e.state)
	if err != nil {
		logrus.Errorf("evolution check failed: %v", err)
		return nil
	}
	if len(triggers) == 0 {
		return nil
	}

	trigger := triggers[0]
	trigger.Timestamp = now

	switch trigger.Transition.Kind {
	case rule.TransitionHatch:
		e.state.IsEgg = false
	case rule.TransitionEvolve:
		e.state.SpeciesID = trigger.Transition.To
	default:
		logrus.Warnf("rule %s emitted unknown transition %q", trigger.RuleID, trigger.Transition.Kind)
		return nil
	}
	e.publish()

	snap := e.Snapshot()
	logrus.Infof("companion %s: %s -> %s at level %d",
		trigger.Transition.Kind, trigger.Transition.From, trigger.Transition.To, snap.Level)

	if e.handler != nil {
		if err := e.handler.HandleTransition(ctx, trigger, snap); err != nil {
			logrus.Warnf("transition side effects failed: %v", err)
		}
	} else if e.audio != nil {
		cue := service.Cue{Kind: service.CueEvolution, Asset: service.EvolutionAsset}
		if err := e.audio.Play(ctx, cue); err != nil {
			logrus.Warnf("failed to play evolution cue: %v", err)
		}
	}

	return trigger
}

func (e *Engine) publish() {
	metrics.Experience.Set(float64(e.state.Experience))
	metrics.Level.Set(float64(e.state.Level()))
}
