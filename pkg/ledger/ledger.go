// Package ledger converts the platform's cumulative step counter into
// per-sample increments and a running daily total.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/state"
)

// Ledger tracks the per-day step baseline and daily total in a Store.
type Ledger struct {
	store state.Store
}

// New creates a ledger backed by store.
func New(store state.Store) *Ledger {
	return &Ledger{store: store}
}

// RecordSample ingests a cumulative step count observed at now and returns
// the increment since the previous sample of the same day.
//
// The first sample of a day only establishes the baseline and yields 0.
// A counter that went backwards (device reboot) yields a negative
// increment, which is returned and added to the daily total as-is.
func (l *Ledger) RecordSample(ctx context.Context, now time.Time, cumulative int) (int, error) {
	stepKey := state.TodayKey(state.PrefixStepBaseline, now)

	baseline, err := l.store.Get(ctx, stepKey)
	if err != nil {
		return 0, fmt.Errorf("failed to read step baseline: %w", err)
	}

	if baseline == 0 {
		if err := l.store.Set(ctx, stepKey, cumulative); err != nil {
			return 0, fmt.Errorf("failed to store step baseline: %w", err)
		}
		logrus.Debugf("step baseline for %s set to %d", stepKey, cumulative)
		return 0, nil
	}

	delta := cumulative - baseline

	dailyKey := state.TodayKey(state.PrefixDailySteps, now)
	daily, err := l.store.Get(ctx, dailyKey)
	if err != nil {
		return 0, fmt.Errorf("failed to read daily steps: %w", err)
	}

	if err := l.store.Set(ctx, stepKey, cumulative); err != nil {
		return 0, fmt.Errorf("failed to store step baseline: %w", err)
	}
	if err := l.store.Set(ctx, dailyKey, daily+delta); err != nil {
		return 0, fmt.Errorf("failed to store daily steps: %w", err)
	}

	if delta < 0 {
		logrus.Warnf("step counter went backwards (%d -> %d), crediting %d", baseline, cumulative, delta)
	}

	return delta, nil
}

// DailySteps returns the step total credited for the day containing now.
func (l *Ledger) DailySteps(ctx context.Context, now time.Time) (int, error) {
	daily, err := l.store.Get(ctx, state.TodayKey(state.PrefixDailySteps, now))
	if err != nil {
		return 0, fmt.Errorf("failed to read daily steps: %w", err)
	}
	return daily, nil
}
