package utils

import (
	"math"
	"sort"
	"time"
)

// Percent returns the completion percentage rounded half-up.
// A zero denominator yields 0, never a division error.
func Percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// DayOf truncates a timestamp to its calendar date in UTC.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CurrentStreak counts consecutive calendar days with activity, walking
// backward from today (or yesterday, if today has none yet). Activity older
// than yesterday anchors nothing: the streak is broken and returns 0.
func CurrentStreak(activity []time.Time, now time.Time) int {
	if len(activity) == 0 {
		return 0
	}

	// Collapse to distinct days, newest first
	seen := make(map[time.Time]bool)
	days := make([]time.Time, 0, len(activity))
	for _, t := range activity {
		day := DayOf(t)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := DayOf(now)
	yesterday := today.AddDate(0, 0, -1)

	anchor := days[0]
	if !anchor.Equal(today) && !anchor.Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}

// ActivityTime returns the timestamp that orders a progress record in
// activity feeds: completion time when present, else start time.
func ActivityTime(startedAt time.Time, completedAt *time.Time) time.Time {
	if completedAt != nil {
		return *completedAt
	}
	return startedAt
}
