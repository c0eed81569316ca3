package companion

import (
	"fmt"
	"time"
)

// ExperiencePerLevel is the amount of experience (one step each) per level.
const ExperiencePerLevel = 100

// Day is a calendar day in the process's local time zone.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day containing t.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// IsZero reports whether the day was never set.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Before reports whether d is an earlier calendar day than other.
func (d Day) Before(other Day) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String renders the day as yyyymmdd, the form used in persistence keys.
func (d Day) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// State is the mutable companion owned by a single lifecycle engine.
type State struct {
	SpeciesID  string
	IsEgg      bool
	IsVariant  bool
	Experience int
	CurrentDay Day
}

// Level is derived from experience and never stored.
func (s State) Level() int {
	return Level(s.Experience)
}

// Level converts experience to a level using integer division.
func Level(experience int) int {
	return experience / ExperiencePerLevel
}

// ExpProgress returns how far the companion is into its current level,
// in the range [0, 1).
func (s State) ExpProgress() float64 {
	if s.Experience <= 0 {
		return 0
	}
	return float64(s.Experience)/ExperiencePerLevel - float64(s.Level())
}
