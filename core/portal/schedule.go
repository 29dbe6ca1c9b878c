package portal

import (
	"strconv"
	"strings"
	"time"
)

const (
	FirstWeek = 1
	LastWeek  = 4

	freeSlot = "Free"
)

// ClampWeek keeps a week index within the navigable range.
func ClampWeek(week int) int {
	if week < FirstWeek {
		return FirstWeek
	}
	if week > LastWeek {
		return LastWeek
	}
	return week
}

// Subject returns the class held in this slot on the given weekday ("" on weekends).
func (slot ScheduleSlot) Subject(day time.Weekday) string {
	switch day {
	case time.Monday:
		return strings.TrimSpace(slot.Monday)
	case time.Tuesday:
		return strings.TrimSpace(slot.Tuesday)
	case time.Wednesday:
		return strings.TrimSpace(slot.Wednesday)
	case time.Thursday:
		return strings.TrimSpace(slot.Thursday)
	case time.Friday:
		return strings.TrimSpace(slot.Friday)
	}
	return ""
}

// Bounds parses "8:00 - 9:30" into offsets from midnight.
// Hours before 7 are afternoon hours ("1:30" is 13:30).
func (slot ScheduleSlot) Bounds() (start, end time.Duration, ok bool) {
	parts := strings.Split(slot.Time, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	if start, ok = parseClock(parts[0]); !ok {
		return 0, 0, false
	}
	if end, ok = parseClock(parts[1]); !ok {
		return 0, 0, false
	}
	return start, end, true
}

func parseClock(s string) (time.Duration, bool) {
	hm := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(hm) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, false
	}
	if h < 7 {
		h += 12
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, true
}

// ClassSession is one scheduled class on a given date.
type ClassSession struct {
	Date    string `json:"date"`
	Day     string `json:"day"`
	Time    string `json:"time"`
	Subject string `json:"subject"`
}

func sinceMidnight(t time.Time) time.Duration {
	y, m, d := t.Date()
	return t.Sub(time.Date(y, m, d, 0, 0, 0, 0, t.Location()))
}

// CurrentClass returns the class in progress at `now`, if any.
func CurrentClass(slots []ScheduleSlot, now time.Time) (ClassSession, bool) {
	clock := sinceMidnight(now)
	for _, slot := range slots {
		start, end, ok := slot.Bounds()
		if !ok || clock < start || clock >= end {
			continue
		}
		if subj := slot.Subject(now.Weekday()); subj != "" && subj != freeSlot {
			return ClassSession{Date: now.Format("2006-01-02"), Day: now.Weekday().String(), Time: slot.Time, Subject: subj}, true
		}
	}
	return ClassSession{}, false
}

// UpcomingClasses returns up to n classes starting after `now`, looking one week ahead.
func UpcomingClasses(slots []ScheduleSlot, now time.Time, n int) []ClassSession {
	sessions := make([]ClassSession, 0, n)
	clock := sinceMidnight(now)
	for offset := 0; offset < 7 && len(sessions) < n; offset++ {
		day := now.AddDate(0, 0, offset)
		for _, slot := range slots {
			if len(sessions) >= n {
				break
			}
			start, _, ok := slot.Bounds()
			if !ok || (offset == 0 && start <= clock) {
				continue
			}
			subj := slot.Subject(day.Weekday())
			if subj == "" || subj == freeSlot {
				continue
			}
			sessions = append(sessions, ClassSession{
				Date:    day.Format("2006-01-02"),
				Day:     day.Weekday().String(),
				Time:    slot.Time,
				Subject: subj,
			})
		}
	}
	return sessions
}
