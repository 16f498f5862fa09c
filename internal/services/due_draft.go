package services

import "time"

// DueDraft collects a due time from two separate pickers. Changing the
// date keeps the chosen time of day and changing the time keeps the date.
type DueDraft struct {
	at time.Time
}

func NewDueDraft(now time.Time) *DueDraft {
	return &DueDraft{at: now}
}

func (d *DueDraft) SetDate(year int, month time.Month, day int) {
	d.at = time.Date(year, month, day,
		d.at.Hour(), d.at.Minute(), d.at.Second(), d.at.Nanosecond(), d.at.Location())
}

// SetTimeOfDay drops any seconds carried over from the initial "now".
func (d *DueDraft) SetTimeOfDay(hour, minute int) {
	d.at = time.Date(d.at.Year(), d.at.Month(), d.at.Day(),
		hour, minute, 0, 0, d.at.Location())
}

func (d *DueDraft) Time() time.Time {
	return d.at
}
