package teacher

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
)

// Service reads and mutates the datastore on behalf of the teacher, across all students.
type Service struct {
	store  *portal.Store
	logger core.Logger
}

func NewService(store *portal.Store, logger core.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ListStudents returns the roster narrowed by the filter.
// Search matches id, name, course or email, ignoring case; Course and Year match exactly.
func (svc *Service) ListStudents(ctx context.Context, filter StudentFilter) []portal.Student {
	students := svc.store.Students(ctx)
	if filter.IsEmpty() {
		return students
	}

	filtered := make([]portal.Student, 0, len(students))
	for _, st := range students {
		if !core.ContainsFold(filter.Search, st.ID, st.Name, st.Course, st.Email) {
			continue
		}
		if filter.Course != "" && st.Course != filter.Course {
			continue
		}
		if filter.Year != "" && st.Year != filter.Year {
			continue
		}
		filtered = append(filtered, st)
	}
	return filtered
}

// SearchStudents matches query against id, name, course or email.
func (svc *Service) SearchStudents(ctx context.Context, query string) []portal.Student {
	return svc.ListStudents(ctx, StudentFilter{Search: query})
}

// FilterStudents keeps students of the given course and year; empty values match all.
func (svc *Service) FilterStudents(ctx context.Context, course, year string) []portal.Student {
	return svc.ListStudents(ctx, StudentFilter{Course: course, Year: year})
}

// Filters returns the distinct courses and years of the roster, in roster order.
func (svc *Service) Filters(ctx context.Context) FilterOptions {
	opts := FilterOptions{Courses: []string{}, Years: []string{}}
	seenCourse := make(map[string]bool)
	seenYear := make(map[string]bool)
	for _, st := range svc.store.Students(ctx) {
		if !seenCourse[st.Course] {
			seenCourse[st.Course] = true
			opts.Courses = append(opts.Courses, st.Course)
		}
		if !seenYear[st.Year] {
			seenYear[st.Year] = true
			opts.Years = append(opts.Years, st.Year)
		}
	}
	return opts
}

func (svc *Service) GetStudent(ctx context.Context, id string) (portal.Student, error) {
	students := svc.store.Students(ctx)
	idx := portal.FindStudent(students, id)
	if idx < 0 {
		return portal.Student{}, portal.ErrStudentNotFound
	}
	return students[idx], nil
}

// AddStudent enrolls a student with empty grades and messages.
// A taken id fails with ErrDuplicateID and changes nothing.
func (svc *Service) AddStudent(ctx context.Context, ns NewStudent) (portal.Student, error) {
	svc.store.Lock()
	defer svc.store.Unlock()

	students := svc.store.Students(ctx)
	if portal.FindStudent(students, ns.ID) >= 0 {
		return portal.Student{}, portal.ErrDuplicateID
	}

	st := portal.Student{
		ID:     ns.ID,
		Name:   ns.Name,
		Email:  ns.Email,
		Course: ns.Course,
		Year:   ns.Year,
		Status: ns.Status,
	}
	if st.Status == "" {
		st.Status = portal.StatusActive
	}
	if err := svc.store.SaveStudents(ctx, append(students, st)); err != nil {
		return portal.Student{}, errors.Wrap(err, "saving students")
	}

	grades := svc.store.Grades(ctx)
	grades[st.ID] = []portal.GradeRecord{}
	if err := svc.store.SaveGrades(ctx, grades); err != nil {
		return portal.Student{}, errors.Wrap(err, "saving grades")
	}

	inbox := svc.store.Messages(ctx)
	inbox[st.ID] = []portal.Message{}
	if err := svc.store.SaveMessages(ctx, inbox); err != nil {
		return portal.Student{}, errors.Wrap(err, "saving messages")
	}

	svc.logger.Info("student added", map[string]interface{}{"student_id": st.ID})
	return st, nil
}

// UpdateStudent changes the non-empty fields of a student record.
func (svc *Service) UpdateStudent(ctx context.Context, id string, us UpdateStudent) (portal.Student, error) {
	svc.store.Lock()
	defer svc.store.Unlock()

	students := svc.store.Students(ctx)
	idx := portal.FindStudent(students, id)
	if idx < 0 {
		return portal.Student{}, portal.ErrStudentNotFound
	}
	st := &students[idx]
	for _, f := range []struct {
		dst *string
		val string
	}{
		{&st.Name, us.Name},
		{&st.Email, us.Email},
		{&st.Course, us.Course},
		{&st.Year, us.Year},
		{&st.Status, us.Status},
	} {
		if f.val != "" {
			*f.dst = f.val
		}
	}

	if err := svc.store.SaveStudents(ctx, students); err != nil {
		return portal.Student{}, errors.Wrap(err, "saving students")
	}
	svc.logger.Info("student updated", map[string]interface{}{"student_id": id})
	return *st, nil
}

// DeleteStudent removes the student and everything keyed by their id.
// Unknown ids are ignored. Each collection is written on its own.
func (svc *Service) DeleteStudent(ctx context.Context, id string) error {
	svc.store.Lock()
	defer svc.store.Unlock()

	students := svc.store.Students(ctx)
	idx := portal.FindStudent(students, id)
	if idx < 0 {
		return nil
	}
	students = append(students[:idx], students[idx+1:]...)
	if err := svc.store.SaveStudents(ctx, students); err != nil {
		return errors.Wrap(err, "saving students")
	}

	grades := svc.store.Grades(ctx)
	if _, ok := grades[id]; ok {
		delete(grades, id)
		if err := svc.store.SaveGrades(ctx, grades); err != nil {
			return errors.Wrap(err, "saving grades")
		}
	}

	inbox := svc.store.Messages(ctx)
	if _, ok := inbox[id]; ok {
		delete(inbox, id)
		if err := svc.store.SaveMessages(ctx, inbox); err != nil {
			return errors.Wrap(err, "saving messages")
		}
	}
	if err := svc.store.DropSequence(ctx, portal.MessageSequence(id)); err != nil {
		return errors.Wrap(err, "dropping message sequence")
	}

	book := svc.store.Attendance(ctx)
	if _, ok := book[id]; ok {
		delete(book, id)
		if err := svc.store.SaveAttendance(ctx, book); err != nil {
			return errors.Wrap(err, "saving attendance")
		}
	}

	replies := svc.store.Replies(ctx)
	kept := make([]portal.Reply, 0, len(replies))
	for _, r := range replies {
		if r.StudentID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) != len(replies) {
		if err := svc.store.SaveReplies(ctx, kept); err != nil {
			return errors.Wrap(err, "saving replies")
		}
	}

	svc.logger.Info("student deleted", map[string]interface{}{"student_id": id})
	return nil
}

func (svc *Service) QuickStats(ctx context.Context) QuickStats {
	students := svc.store.Students(ctx)
	courses := make(map[string]struct{})
	for _, st := range students {
		courses[st.Course] = struct{}{}
	}
	return QuickStats{
		Students:      len(students),
		Announcements: len(svc.store.Announcements(ctx)),
		Courses:       len(courses),
	}
}
