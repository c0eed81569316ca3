package mock

import (
	"context"
	"sync"

	"github.com/AccelByte/extend-step-companion/pkg/service"
)

// AudioPlayer records every cue it receives. Set Err to make Play fail.
type AudioPlayer struct {
	mu   sync.Mutex
	cues []service.Cue
	Err  error
}

func NewAudioPlayer() *AudioPlayer {
	return &AudioPlayer{}
}

func (p *AudioPlayer) Play(ctx context.Context, cue service.Cue) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Err != nil {
		return p.Err
	}
	p.cues = append(p.cues, cue)
	return nil
}

// Cues returns a copy of the cues played so far.
func (p *AudioPlayer) Cues() []service.Cue {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]service.Cue, len(p.cues))
	copy(out, p.cues)
	return out
}
