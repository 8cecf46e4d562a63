package models

import (
	"sort"
	"strings"
	"time"
)

// SortColumn selects the table column a sort is keyed on.
type SortColumn int

const (
	SortByName SortColumn = iota
	SortByPracticeCount
	SortByLastPracticed
	SortByWasPerformed
	SortByIsSong
)

type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// SortRecords orders records in place for display. Names compare
// case-insensitively, the last-practiced column compares by elapsed days
// with absent dates carrying the NeverPracticedDays sentinel, and the
// boolean columns order false before true when ascending. The sort is
// stable so equal keys keep their relative order across re-sorts.
func SortRecords(records []*Record, column SortColumn, direction SortDirection, now time.Time) {
	less := lessFunc(column, now)
	if direction == Descending {
		asc := less
		less = func(a, b *Record) bool { return asc(b, a) }
	}
	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j])
	})
}

func lessFunc(column SortColumn, now time.Time) func(a, b *Record) bool {
	switch column {
	case SortByPracticeCount:
		return func(a, b *Record) bool {
			return a.PracticeCount < b.PracticeCount
		}
	case SortByLastPracticed:
		return func(a, b *Record) bool {
			return DaysSince(a.LastPracticed, now) < DaysSince(b.LastPracticed, now)
		}
	case SortByWasPerformed:
		return func(a, b *Record) bool {
			return !a.WasPerformed && b.WasPerformed
		}
	case SortByIsSong:
		return func(a, b *Record) bool {
			return !a.IsSong && b.IsSong
		}
	default:
		return func(a, b *Record) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}
