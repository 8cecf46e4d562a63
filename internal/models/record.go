package models

import (
	"fmt"
	"math"
	"time"
)

// Record is one trackable practice item with its metadata. The JSON tags
// match the persisted file layout exactly; records written by earlier
// versions may omit the two boolean fields, which decode to false.
type Record struct {
	Name          string `json:"name"`
	PracticeCount int    `json:"practice_count"`
	LastPracticed *Date  `json:"last_practiced"`
	IsSong        bool   `json:"isSong"`
	WasPerformed  bool   `json:"was_performed"`
}

// Group is a display grouping hint derived from the classification flags.
// It is never persisted.
type Group int

const (
	GroupSong Group = iota
	GroupPerformedSong
	GroupNonSong
)

// Group classifies the record for display: non-songs get one treatment,
// performed songs another, remaining songs the default.
func (r *Record) Group() Group {
	switch {
	case !r.IsSong:
		return GroupNonSong
	case r.WasPerformed:
		return GroupPerformedSong
	default:
		return GroupSong
	}
}

// NeverPracticedDays is the sort key for records with no last-practiced
// date. It sorts past every real date, at the oldest end.
const NeverPracticedDays = math.MaxInt32

// DaysSince returns the whole days elapsed from d to now's calendar date,
// with NeverPracticedDays as the sentinel for an absent date.
func DaysSince(d *Date, now time.Time) int {
	if d == nil {
		return NeverPracticedDays
	}
	return d.DaysUntil(now)
}

// LastPracticedLabel derives the display text for a last-practiced date:
// "Never" when absent, "Today" for the current calendar day, otherwise an
// elapsed day count.
func LastPracticedLabel(d *Date, now time.Time) string {
	if d == nil {
		return "Never"
	}
	days := d.DaysUntil(now)
	if days == 0 {
		return "Today"
	}
	return fmt.Sprintf("%d day(s) ago", days)
}
