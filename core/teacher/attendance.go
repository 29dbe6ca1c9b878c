package teacher

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
)

// RecordAttendance saves a student's status for a day (today when no date is given),
// replacing any earlier status of that day.
func (svc *Service) RecordAttendance(ctx context.Context, na NewAttendance) (portal.AttendanceRecord, error) {
	svc.store.Lock()
	defer svc.store.Unlock()

	if portal.FindStudent(svc.store.Students(ctx), na.StudentID) < 0 {
		return portal.AttendanceRecord{}, portal.ErrStudentNotFound
	}
	rec := portal.AttendanceRecord{StudentID: na.StudentID, Date: na.Date, Status: na.Status}
	if rec.Date == "" {
		rec.Date = core.Today()
	}

	book := svc.store.Attendance(ctx)
	records := book[rec.StudentID]
	replaced := false
	for i := range records {
		if records[i].Date == rec.Date {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}
	book[rec.StudentID] = records

	if err := svc.store.SaveAttendance(ctx, book); err != nil {
		return portal.AttendanceRecord{}, errors.Wrap(err, "saving attendance")
	}
	return rec, nil
}

// AttendanceStats counts statuses on the given date, or over all dates when empty.
func (svc *Service) AttendanceStats(ctx context.Context, date string) AttendanceStats {
	var stats AttendanceStats
	for _, records := range svc.store.Attendance(ctx) {
		for _, r := range records {
			if date != "" && r.Date != date {
				continue
			}
			switch r.Status {
			case portal.AttendancePresent:
				stats.Present++
			case portal.AttendanceAbsent:
				stats.Absent++
			case portal.AttendanceLate:
				stats.Late++
			}
		}
	}
	return stats
}
