package grammar

import (
	"strings"
	"time"
)

// DateRange resolves a date function such as LAST_7_DAYS to its first and
// last day, both inclusive, relative to now and in now's location. The
// name is matched case-insensitively; ok is false for unknown names.
func DateRange(name string, now time.Time) (start, end time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)
	month := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	switch strings.ToUpper(name) {
	case "TODAY":
		return today, today, true
	case "YESTERDAY":
		return yesterday, yesterday, true
	case "LAST_7_DAYS":
		return today.AddDate(0, 0, -7), yesterday, true
	case "LAST_14_DAYS":
		return today.AddDate(0, 0, -14), yesterday, true
	case "LAST_30_DAYS":
		return today.AddDate(0, 0, -30), yesterday, true
	case "THIS_MONTH":
		return month, today, true
	case "LAST_MONTH":
		return month.AddDate(0, -1, 0), month.AddDate(0, 0, -1), true
	case "THIS_WEEK_MON_TODAY":
		return weekStart(today, time.Monday), today, true
	case "THIS_WEEK_SUN_TODAY":
		return weekStart(today, time.Sunday), today, true
	case "LAST_WEEK_MON_SUN":
		s := weekStart(today, time.Monday).AddDate(0, 0, -7)
		return s, s.AddDate(0, 0, 6), true
	case "LAST_WEEK_SUN_SAT":
		s := weekStart(today, time.Sunday).AddDate(0, 0, -7)
		return s, s.AddDate(0, 0, 6), true
	case "LAST_BUSINESS_WEEK":
		s := weekStart(today, time.Monday).AddDate(0, 0, -7)
		return s, s.AddDate(0, 0, 4), true
	}
	return time.Time{}, time.Time{}, false
}

// weekStart returns the most recent day on or before day that falls on first.
func weekStart(day time.Time, first time.Weekday) time.Time {
	offset := (int(day.Weekday()) - int(first) + 7) % 7
	return day.AddDate(0, 0, -offset)
}
