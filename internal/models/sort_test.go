package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sortNames(records []*Record) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	records := []*Record{
		{Name: "etude in C"},
		{Name: "Арпеджио"},
		{Name: "Blackbird"},
		{Name: "autumn Leaves"},
	}
	now := time.Now()

	SortRecords(records, SortByName, Ascending, now)
	assert.Equal(t, []string{"autumn Leaves", "Blackbird", "etude in C", "Арпеджио"}, sortNames(records))

	SortRecords(records, SortByName, Descending, now)
	assert.Equal(t, []string{"Арпеджио", "etude in C", "Blackbird", "autumn Leaves"}, sortNames(records))
}

func TestSortByPracticeCount(t *testing.T) {
	records := []*Record{
		{Name: "a", PracticeCount: 10},
		{Name: "b", PracticeCount: 2},
		{Name: "c", PracticeCount: 7},
	}

	SortRecords(records, SortByPracticeCount, Ascending, time.Now())
	assert.Equal(t, []string{"b", "c", "a"}, sortNames(records))
}

func TestSortByLastPracticedNeverAtOldestEnd(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.Local)
	today := Date{Year: 2026, Month: time.August, Day: 28}
	lastWeek := Date{Year: 2026, Month: time.August, Day: 21}

	records := []*Record{
		{Name: "never"},
		{Name: "today", LastPracticed: &today},
		{Name: "last week", LastPracticed: &lastWeek},
	}

	// Ascending orders by elapsed days: most recent first, never last.
	SortRecords(records, SortByLastPracticed, Ascending, now)
	assert.Equal(t, []string{"today", "last week", "never"}, sortNames(records))

	// Descending is the exact reverse; the sentinel stays at the oldest end.
	SortRecords(records, SortByLastPracticed, Descending, now)
	assert.Equal(t, []string{"never", "last week", "today"}, sortNames(records))
}

func TestSortByFlags(t *testing.T) {
	records := []*Record{
		{Name: "song", IsSong: true},
		{Name: "exercise"},
		{Name: "performed", IsSong: true, WasPerformed: true},
	}
	now := time.Now()

	SortRecords(records, SortByIsSong, Ascending, now)
	assert.Equal(t, "exercise", records[0].Name)

	SortRecords(records, SortByWasPerformed, Descending, now)
	assert.Equal(t, "performed", records[0].Name)
}

func TestSortIsStable(t *testing.T) {
	records := []*Record{
		{Name: "b", PracticeCount: 1},
		{Name: "a", PracticeCount: 1},
		{Name: "c", PracticeCount: 1},
	}

	SortRecords(records, SortByPracticeCount, Ascending, time.Now())
	assert.Equal(t, []string{"b", "a", "c"}, sortNames(records))
}
