package services

import "time"

// TimeWindow is a half-open time range [Start, End). Half-open windows keep
// boundary instants from being counted twice by adjacent buckets.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Days returns the number of calendar days the window spans, at least 1.
func (w TimeWindow) Days() int {
	d := int(w.End.Sub(w.Start).Hours() / 24)
	if d < 1 {
		return 1
	}
	return d
}

// MonthBucket pairs a month window with its chart label.
type MonthBucket struct {
	Label  string
	Window TimeWindow
}

var monthLabels = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// MonthLabel returns the Spanish three-letter label for t's calendar month.
func MonthLabel(t time.Time) string {
	return monthLabels[int(t.Month())-1]
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// CurrentMonthWindow covers now's calendar month.
func CurrentMonthWindow(now time.Time) TimeWindow {
	start := startOfMonth(now)
	return TimeWindow{Start: start, End: start.AddDate(0, 1, 0)}
}

// PreviousMonthWindow covers the calendar month before now's. Calendar
// arithmetic handles year rollover and month lengths; a month is never
// assumed to be 30 days.
func PreviousMonthWindow(now time.Time) TimeWindow {
	start := startOfMonth(now).AddDate(0, -1, 0)
	return TimeWindow{Start: start, End: start.AddDate(0, 1, 0)}
}

// LastNDaysWindow covers the n calendar days ending today: from midnight n-1
// days before now's date until midnight of the following day.
func LastNDaysWindow(now time.Time, n int) TimeWindow {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return TimeWindow{Start: day.AddDate(0, 0, -(n - 1)), End: day.AddDate(0, 0, 1)}
}

// LastKMonthsWindow covers the k calendar months ending with the current one.
func LastKMonthsWindow(now time.Time, k int) TimeWindow {
	start := startOfMonth(now).AddDate(0, -(k - 1), 0)
	return TimeWindow{Start: start, End: startOfMonth(now).AddDate(0, 1, 0)}
}

// MonthWindows returns the k chronological month buckets ending with the
// current month. Every monthly series pre-seeds from this list so all months
// appear even with no data.
func MonthWindows(now time.Time, k int) []MonthBucket {
	buckets := make([]MonthBucket, 0, k)
	for i := k - 1; i >= 0; i-- {
		start := startOfMonth(now).AddDate(0, -i, 0)
		buckets = append(buckets, MonthBucket{
			Label:  MonthLabel(start),
			Window: TimeWindow{Start: start, End: start.AddDate(0, 1, 0)},
		})
	}
	return buckets
}
