package portal

import (
	"context"

	"github.com/pkg/errors"
)

func seedStudents() []Student {
	return []Student{
		{ID: "S2023001", Name: "John Vhincent Mark Reyes", Email: "john.doe@student.edu", Course: "Computer Science", Year: "3rd Year", Status: StatusActive},
		{ID: "S2023002", Name: "Jane Smith", Email: "jane.smith@student.edu", Course: "Business Administration", Year: "2nd Year", Status: StatusActive},
		{ID: "S2023003", Name: "Michael Johnson", Email: "michael.johnson@student.edu", Course: "Engineering", Year: "4th Year", Status: StatusActive},
		{ID: "S2023004", Name: "Emily Davis", Email: "emily.davis@student.edu", Course: "Psychology", Year: "1st Year", Status: StatusActive},
	}
}

func seedGrades() GradeBook {
	return GradeBook{
		"S2023001": {
			{Subject: "PRACTICUM 1", Units: 3, Grade: 1.75, Trend: TrendUp},
			{Subject: "PRACTICUM 2", Units: 3, Grade: 1.50, Trend: TrendStable},
			{Subject: "Database Systems", Units: 3, Grade: 1.25, Trend: TrendUp},
			{Subject: "SA101", Units: 3, Grade: 1.00, Trend: TrendUp},
			{Subject: "IPT2", Units: 3, Grade: 1.50, Trend: TrendDown},
		},
		"S2023002": {
			{Subject: "Accounting", Units: 3, Grade: 2.00, Trend: TrendStable},
			{Subject: "Marketing", Units: 3, Grade: 1.75, Trend: TrendUp},
			{Subject: "Management", Units: 3, Grade: 2.25, Trend: TrendDown},
			{Subject: "Economics", Units: 3, Grade: 1.50, Trend: TrendUp},
		},
	}
}

func seedSchedule() []ScheduleSlot {
	return []ScheduleSlot{
		{Time: "8:00 - 9:30", Monday: "PRACTICUM 1 ", Tuesday: "PRACTICUM 2", Wednesday: "Mathematics", Thursday: "Programming", Friday: "Algorithms"},
		{Time: "9:30 - 11:00", Monday: "Web Development", Tuesday: "Database Systems", Wednesday: "Web Development", Thursday: "Database Systems", Friday: "Free"},
		{Time: "11:00 - 12:30", Monday: "Free", Tuesday: "Algorithms", Wednesday: "Free", Thursday: "Algorithms", Friday: "Mathematics"},
		{Time: "1:30 - 3:00", Monday: "Database Systems", Tuesday: "Web Development", Wednesday: "Database Systems", Thursday: "Web Development", Friday: "Programming"},
		{Time: "3:00 - 4:30", Monday: "Algorithms", Tuesday: "Mathematics", Wednesday: "Algorithms", Thursday: "Mathematics", Friday: "Free"},
	}
}

func seedAnnouncements() []Announcement {
	return []Announcement{
		{ID: 1, Title: "Midterm Examination Schedule", Content: "The midterm examinations will be held from October 15 to October 20. Please check your schedule and prepare accordingly.", Date: "2023-10-01", Author: "Academic Office", Priority: PriorityHigh},
		{ID: 2, Title: "Library Closure", Content: "The main library will be closed for maintenance on October 12. We apologize for any inconvenience.", Date: "2023-10-05", Author: "Library Administration", Priority: PriorityNormal},
		{ID: 3, Title: "Scholarship Applications", Content: "Applications for the semester scholarship program are now open. Deadline is October 30.", Date: "2023-10-08", Author: "Financial Aid Office", Priority: PriorityHigh},
	}
}

func seedMessages() Inbox {
	return Inbox{
		"S2023001": {
			{ID: 1, Subject: "Regarding your assignment", Content: "Hello John, I wanted to discuss your recent assignment submission. Please see me during my office hours.", Sender: "Dr. Smith", Date: "2023-10-10", Read: false},
			{ID: 2, Subject: "Class cancellation", Content: "Class for tomorrow has been cancelled due to unforeseen circumstances. We will resume on Thursday.", Sender: "Prof. Johnson", Date: "2023-10-08", Read: true},
		},
	}
}

func seedResources() []Resource {
	return []Resource{
		{ID: 1, Title: "Programming Fundamentals", Type: ResourceTextbook, Course: "Computer Science", UploadDate: "2023-09-15"},
		{ID: 2, Title: "Database Design Slides", Type: ResourceSlides, Course: "Database Systems", UploadDate: "2023-09-20"},
		{ID: 3, Title: "Web Development Tutorial", Type: ResourceVideo, Course: "Web Development", UploadDate: "2023-09-25"},
	}
}

// SeedIfEmpty writes the sample collections once. The sentinel is written last,
// so an interrupted seed is redone on the next start.
func (s *Store) SeedIfEmpty(ctx context.Context) (bool, error) {
	s.Lock()
	defer s.Unlock()

	if s.Initialized(ctx) {
		return false, nil
	}

	steps := []struct {
		key   string
		value interface{}
	}{
		{KeyStudents, seedStudents()},
		{KeyGrades, seedGrades()},
		{KeySchedule, seedSchedule()},
		{KeyAnnouncements, seedAnnouncements()},
		{KeyMessages, seedMessages()},
		{KeyResources, seedResources()},
		{KeyInitialized, true},
	}
	for _, step := range steps {
		if err := write(ctx, s, step.key, step.value); err != nil {
			return false, errors.Wrap(err, "seeding")
		}
	}
	s.logger.Info("datastore seeded")
	return true, nil
}

// Reset wipes every collection (the theme preference survives) and seeds again.
func (s *Store) Reset(ctx context.Context) error {
	s.Lock()
	keys := []string{
		KeyInitialized, KeyStudents, KeyGrades, KeySchedule, KeyAnnouncements,
		KeyMessages, KeyResources, KeyAttendance, KeyReplies, KeySequences,
	}
	for _, key := range keys {
		if err := s.backend.Delete(ctx, key); err != nil && !errors.Is(err, ErrKeyNotFound) {
			s.Unlock()
			return errors.Wrapf(err, "deleting %s", key)
		}
	}
	s.Unlock()

	_, err := s.SeedIfEmpty(ctx)
	return err
}
