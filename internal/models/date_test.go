package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.August, Day: 28}, d)

	_, err = ParseDate("28/08/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateString(t *testing.T) {
	d := Date{Year: 2026, Month: time.March, Day: 5}
	assert.Equal(t, "2026-03-05", d.String())
}

func TestDateDaysUntil(t *testing.T) {
	d := Date{Year: 2026, Month: time.August, Day: 23}

	now := time.Date(2026, time.August, 28, 14, 30, 0, 0, time.Local)
	assert.Equal(t, 5, d.DaysUntil(now))

	sameDay := time.Date(2026, time.August, 23, 23, 59, 0, 0, time.Local)
	assert.Equal(t, 0, d.DaysUntil(sameDay))
}

func TestDateJSON(t *testing.T) {
	d := Date{Year: 2026, Month: time.January, Day: 2}

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-01-02"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, d.Equal(decoded))

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestNilDateJSON(t *testing.T) {
	record := &Record{Name: "Arpeggios"}

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"last_practiced":null`)

	var decoded Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded.LastPracticed)
}
