package service

import (
	"context"
)

// Service interfaces for the external collaborators actions and the
// lifecycle engine talk to. Playback itself happens outside this process.

// AudioPlayer delivers one-shot audio cues. Play is fire-and-forget: callers
// do not wait for playback and a failure never alters companion state.
type AudioPlayer interface {
	Play(ctx context.Context, cue Cue) error
}
