package builtin

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-step-companion/pkg/action"
	"github.com/AccelByte/extend-step-companion/pkg/companion"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
	"github.com/AccelByte/extend-step-companion/pkg/service"
)

// PlayCueActionID is the action type that plays an audio cue
const PlayCueActionID = "play_cue"

// PlayCueAction sends an audio cue to the player when a transition is applied.
//
// Parameters:
//   - cue: "evolution" (default) plays the evolution sound, "cry" plays the
//     new form's cry
type PlayCueAction struct {
	config action.ActionConfig
	player service.AudioPlayer
	cue    string
}

// NewPlayCueAction creates a new play cue action.
func NewPlayCueAction(config action.ActionConfig, player service.AudioPlayer) (*PlayCueAction, error) {
	cue := config.GetParameterString("cue", service.CueEvolution)
	if cue != service.CueEvolution && cue != service.CueCry {
		return nil, fmt.Errorf("%w: unknown cue %q", action.ErrInvalidConfig, cue)
	}
	if player == nil {
		return nil, fmt.Errorf("%w: play_cue requires an audio player", action.ErrInvalidConfig)
	}

	return &PlayCueAction{
		config: config,
		player: player,
		cue:    cue,
	}, nil
}

func (a *PlayCueAction) ID() string {
	return a.config.ID
}

func (a *PlayCueAction) Name() string {
	return "Play Audio Cue"
}

func (a *PlayCueAction) Config() action.ActionConfig {
	return a.config
}

// Execute plays the configured cue. A cry cue for a form without a cry is skipped.
func (a *PlayCueAction) Execute(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
	cue := service.Cue{Kind: a.cue, Asset: service.EvolutionAsset}
	if a.cue == service.CueCry {
		if snap.CryAsset == "" {
			return nil
		}
		cue.Asset = snap.CryAsset
	}

	if err := a.player.Play(ctx, cue); err != nil {
		return fmt.Errorf("failed to play %s cue: %w", a.cue, err)
	}
	return nil
}

// Rollback is not supported: a sound cannot be unplayed.
func (a *PlayCueAction) Rollback(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
	return action.ErrRollbackNotSupported
}
