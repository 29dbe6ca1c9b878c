package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
)

// UpdateProfile holds the profile fields a student may change.
type UpdateProfile struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Course string `json:"course" validate:"required"`
	Year   string `json:"year" validate:"required"`
}

func (up *UpdateProfile) Validate(validate *validator.Validate) error {
	up.Name = core.CleanString(up.Name)
	up.Email = core.CleanString(up.Email, true /* lower */)
	up.Course = core.CleanString(up.Course)
	up.Year = core.CleanString(up.Year)
	return validate.Struct(up)
}

type (
	GradeLine struct {
		portal.GradeRecord
		Remark string `json:"remark"`
	}

	GradeReport struct {
		Records []GradeLine `json:"records"`
		GPA     float64     `json:"gpa"`
		Passed  bool        `json:"passed"`
	}

	Schedule struct {
		Week  int                   `json:"week"`
		Slots []portal.ScheduleSlot `json:"slots"`
	}

	ResourceView struct {
		portal.Resource
		Icon string `json:"icon"`
	}

	QuickStats struct {
		Subjects      int     `json:"subjects"`
		Unread        int     `json:"unread"`
		GPA           float64 `json:"gpa"`
		Announcements int     `json:"announcements"`
	}
)

// ReplyRequest is a student's answer to a message.
type ReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

func (rr *ReplyRequest) Validate(validate *validator.Validate) error {
	rr.Content = portal.Sanitize(rr.Content)
	return validate.Struct(rr)
}
