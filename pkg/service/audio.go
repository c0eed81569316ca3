package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/metrics"
)

// Cue kinds.
const (
	CueCry       = "cry"
	CueEvolution = "evolution"
)

// EvolutionAsset is the sound resource played for hatches and evolutions.
const EvolutionAsset = "level_up"

// Cue is a single audio request.
type Cue struct {
	Kind  string // CueCry or CueEvolution
	Asset string // sound resource name, e.g. "cry_mr_mime"
}

// LoggingAudioPlayer records cues in the log and metrics. It stands in for a
// device speaker when the service runs headless.
type LoggingAudioPlayer struct{}

// NewLoggingAudioPlayer creates a new logging audio player.
func NewLoggingAudioPlayer() *LoggingAudioPlayer {
	return &LoggingAudioPlayer{}
}

func (p *LoggingAudioPlayer) Play(ctx context.Context, cue Cue) error {
	metrics.CuesTotal.WithLabelValues(cue.Kind).Inc()
	logrus.WithContext(ctx).Infof("playing %s cue %s", cue.Kind, cue.Asset)
	return nil
}
