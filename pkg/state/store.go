package state

import (
	"context"
	"time"

	"github.com/AccelByte/extend-step-companion/pkg/companion"
)

// Key prefixes for the day-scoped records.
const (
	PrefixStepBaseline = "step"
	PrefixDailySteps   = "daily_step"
	PrefixSpecies      = "pokemon"
)

// Store is a durable string-to-int key/value store. Missing keys read as 0.
type Store interface {
	Get(ctx context.Context, key string) (int, error)
	Set(ctx context.Context, key string, value int) error
}

// DayKey builds a day-scoped key of the form {prefix}_{yyyymmdd}.
func DayKey(prefix string, day companion.Day) string {
	return prefix + "_" + day.String()
}

// TodayKey builds the day-scoped key for the calendar day containing now.
func TodayKey(prefix string, now time.Time) string {
	return DayKey(prefix, companion.DayOf(now))
}
