package teacher

import (
	"github.com/go-playground/validator/v10"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
)

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	ID     string `json:"id" validate:"required,alphanum_"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Course string `json:"course"`
	Year   string `json:"year"`
	Status string `json:"status"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.ID = core.CleanString(ns.ID)
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Course = core.CleanString(ns.Course)
	ns.Year = core.CleanString(ns.Year)
	ns.Status = core.CleanString(ns.Status)
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// Empty fields keep their current value.
type UpdateStudent struct {
	Name   string `json:"name"`
	Email  string `json:"email" validate:"omitempty,email"`
	Course string `json:"course"`
	Year   string `json:"year"`
	Status string `json:"status"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	us.Name = core.CleanString(us.Name)
	us.Email = core.CleanString(us.Email, true /* lower */)
	us.Course = core.CleanString(us.Course)
	us.Year = core.CleanString(us.Year)
	us.Status = core.CleanString(us.Status)
	return validate.Struct(us)
}

// StudentFilter narrows the roster; empty fields match everything.
type StudentFilter struct {
	Search string `query:"search"`
	Course string `query:"course"`
	Year   string `query:"year"`
}

func (sf *StudentFilter) IsEmpty() bool {
	return sf.Search == "" && sf.Course == "" && sf.Year == ""
}

func (sf *StudentFilter) Clean() {
	sf.Search = core.CleanString(sf.Search)
	sf.Course = core.CleanString(sf.Course)
	sf.Year = core.CleanString(sf.Year)
}

type GradeEntry struct {
	Subject string  `json:"subject" validate:"required"`
	Grade   float64 `json:"grade" validate:"gte=1,lte=4"`
}

// GradeSheet is the full list of grades set for a student.
type GradeSheet struct {
	Entries []GradeEntry `json:"entries" validate:"dive"`
}

func (gs *GradeSheet) Validate(validate *validator.Validate) error {
	for i := range gs.Entries {
		gs.Entries[i].Subject = core.CleanString(gs.Entries[i].Subject)
	}
	return validate.Struct(gs)
}

type NewAnnouncement struct {
	Title    string          `json:"title" validate:"required"`
	Content  string          `json:"content" validate:"required"`
	Priority portal.Priority `json:"priority" validate:"omitempty,oneof=high normal"`
	Author   string          `json:"author"`
}

func (na *NewAnnouncement) Validate(validate *validator.Validate) error {
	na.Title = portal.Sanitize(na.Title)
	na.Content = portal.Sanitize(na.Content)
	na.Priority = portal.Priority(core.CleanString(string(na.Priority), true /* lower */))
	na.Author = core.CleanString(na.Author)
	return validate.Struct(na)
}

type NewMessage struct {
	StudentID string `json:"student_id"`
	Subject   string `json:"subject" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Sender    string `json:"sender"`
}

func (nm *NewMessage) Validate(validate *validator.Validate) error {
	nm.StudentID = core.CleanString(nm.StudentID)
	nm.Subject = portal.Sanitize(nm.Subject)
	nm.Content = portal.Sanitize(nm.Content)
	nm.Sender = core.CleanString(nm.Sender)
	return validate.Struct(nm)
}

type NewAttendance struct {
	StudentID string                  `json:"student_id" validate:"required"`
	Date      string                  `json:"date" validate:"omitempty,isodate"`
	Status    portal.AttendanceStatus `json:"status" validate:"required,oneof=present absent late"`
}

func (na *NewAttendance) Validate(validate *validator.Validate) error {
	na.StudentID = core.CleanString(na.StudentID)
	na.Date = core.CleanString(na.Date)
	na.Status = portal.AttendanceStatus(core.CleanString(string(na.Status), true /* lower */))
	return validate.Struct(na)
}

type (
	FilterOptions struct {
		Courses []string `json:"courses"`
		Years   []string `json:"years"`
	}

	CourseAverage struct {
		Course   string  `json:"course"`
		Average  float64 `json:"average"`
		Students int     `json:"students"`
	}

	AttendanceStats struct {
		Present int `json:"present"`
		Absent  int `json:"absent"`
		Late    int `json:"late"`
	}

	QuickStats struct {
		Students      int `json:"students"`
		Announcements int `json:"announcements"`
		Courses       int `json:"courses"`
	}
)
