package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 0, Percent(5, 0)) // guarded division
	assert.Equal(t, 0, Percent(0, 4))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3)) // round half up from 66.67
	assert.Equal(t, 50, Percent(2, 4))
	assert.Equal(t, 100, Percent(3, 3))
	assert.Equal(t, 17, Percent(1, 6)) // 16.67 rounds up
	assert.Equal(t, 13, Percent(1, 8)) // 12.5 rounds half up
}

func TestCurrentStreakTodayAndYesterday(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	activity := []time.Time{
		now.Add(-2 * time.Hour),       // today
		now.AddDate(0, 0, -1),         // yesterday
		now.AddDate(0, 0, -1).Add(-3 * time.Hour),
	}

	assert.Equal(t, 2, CurrentStreak(activity, now))
}

func TestCurrentStreakAnchoredOnYesterday(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// No activity today; yesterday and the two days before
	activity := []time.Time{
		now.AddDate(0, 0, -1),
		now.AddDate(0, 0, -2),
		now.AddDate(0, 0, -3),
	}

	assert.Equal(t, 3, CurrentStreak(activity, now))
}

func TestCurrentStreakBrokenByGap(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// Most recent activity two days ago: streak is dead
	activity := []time.Time{
		now.AddDate(0, 0, -2),
		now.AddDate(0, 0, -3),
	}

	assert.Equal(t, 0, CurrentStreak(activity, now))
}

func TestCurrentStreakStopsAtGap(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// Today, yesterday, then a hole, then older activity
	activity := []time.Time{
		now,
		now.AddDate(0, 0, -1),
		now.AddDate(0, 0, -4),
		now.AddDate(0, 0, -5),
	}

	assert.Equal(t, 2, CurrentStreak(activity, now))
}

func TestCurrentStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil, time.Now()))
}

func TestCurrentStreakMultipleSameDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

	// Several records on the same day count once
	activity := []time.Time{
		now,
		now.Add(-1 * time.Hour),
		now.Add(-5 * time.Hour),
	}

	assert.Equal(t, 1, CurrentStreak(activity, now))
}

func TestActivityTime(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	completed := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, started, ActivityTime(started, nil))
	assert.Equal(t, completed, ActivityTime(started, &completed))
}
