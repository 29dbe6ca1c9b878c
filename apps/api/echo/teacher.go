package echoapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
	"github.com/Hellothereeee2312/Portal/core/teacher"
)

type teacherApi struct {
	svc      *teacher.Service
	validate *validator.Validate
}

func registerTeacherAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *teacher.Service, validate *validator.Validate) {
	api := teacherApi{
		svc:      svc,
		validate: validate,
	}

	tg := g.Group("/teacher", jwt, teacherMiddleware)
	tg.GET("/subjects", api.subjects)
	tg.GET("/stats", api.stats)
	tg.POST("/attendance", api.recordAttendance)
	tg.GET("/replies", api.replies)

	sg := tg.Group("/students")
	sg.GET("", api.queryStudents)
	sg.POST("", api.createStudent)
	sg.GET("/filters", api.filters)
	sg.GET("/:id", api.retrieveStudent)
	sg.PUT("/:id", api.updateStudent)
	sg.DELETE("/:id", api.destroyStudent)
	sg.GET("/:id/grade-form", api.gradeForm)
	sg.PUT("/:id/grades", api.setGrades)

	ag := tg.Group("/announcements")
	ag.GET("", api.announcements)
	ag.POST("", api.postAnnouncement)
	ag.GET("/summary", api.announcementSummary)

	mg := tg.Group("/messages")
	mg.POST("", api.sendMessage)
	mg.POST("/broadcast", api.broadcastMessage)

	yg := tg.Group("/analytics")
	yg.GET("/distribution", api.distribution)
	yg.GET("/course-performance", api.coursePerformance)
	yg.GET("/attendance", api.attendanceStats)
	yg.GET("/export", api.exportAnalytics)
}

// Handlers

func (api *teacherApi) queryStudents(ctx echo.Context) error {
	filter := new(teacher.StudentFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []portal.Student{})
	}
	filter.Clean()
	return ctx.JSON(http.StatusOK, api.svc.ListStudents(ctx.Request().Context(), *filter))
}

func (api *teacherApi) createStudent(ctx echo.Context) error {
	var data teacher.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	st, err := api.svc.AddStudent(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "adding student")
	}
	return ctx.JSON(http.StatusCreated, st)
}

func (api *teacherApi) filters(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Filters(ctx.Request().Context()))
}

func (api *teacherApi) retrieveStudent(ctx echo.Context) error {
	st, err := api.svc.GetStudent(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting student")
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *teacherApi) updateStudent(ctx echo.Context) error {
	var data teacher.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	st, err := api.svc.UpdateStudent(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *teacherApi) destroyStudent(ctx echo.Context) error {
	if err := api.svc.DeleteStudent(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *teacherApi) gradeForm(ctx echo.Context) error {
	entries, err := api.svc.GradeForm(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "building grade form")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *teacherApi) setGrades(ctx echo.Context) error {
	var data teacher.GradeSheet
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GradeSheet")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	records, err := api.svc.SetGrades(ctx.Request().Context(), ctx.Param("id"), data.Entries)
	if err != nil {
		return errors.Wrap(err, "setting grades")
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *teacherApi) subjects(ctx echo.Context) error {
	course := core.CleanString(ctx.QueryParam("course"))
	resp := SubjectsResponse{Course: course, Subjects: teacher.DefaultSubjects(course)}
	if known, ok := teacher.SuggestCourse(course); ok && known != course {
		resp.Suggestion = known
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *teacherApi) announcements(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.ListAnnouncements(ctx.Request().Context()))
}

func (api *teacherApi) postAnnouncement(ctx echo.Context) error {
	var data teacher.NewAnnouncement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAnnouncement")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	if data.Author == "" {
		if claims, err := getContextClaims(ctx); err == nil {
			data.Author = claims.Name
		}
	}

	ann, err := api.svc.PostAnnouncement(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "posting announcement")
	}
	return ctx.JSON(http.StatusCreated, ann)
}

func (api *teacherApi) announcementSummary(ctx echo.Context) error {
	return ctx.String(http.StatusOK, api.svc.AnnouncementSummary(ctx.Request().Context()))
}

func (api *teacherApi) sendMessage(ctx echo.Context) error {
	var data teacher.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMessage")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	if data.Sender == "" {
		if claims, err := getContextClaims(ctx); err == nil {
			data.Sender = claims.Name
		}
	}

	msg, err := api.svc.SendMessage(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "sending message")
	}
	return ctx.JSON(http.StatusCreated, msg)
}

func (api *teacherApi) broadcastMessage(ctx echo.Context) error {
	var data teacher.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMessage")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	if data.Sender == "" {
		if claims, err := getContextClaims(ctx); err == nil {
			data.Sender = claims.Name
		}
	}

	n, err := api.svc.BroadcastMessage(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "broadcasting message")
	}
	return ctx.JSON(http.StatusCreated, BroadcastResponse{Recipients: n})
}

func (api *teacherApi) replies(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.ListReplies(ctx.Request().Context()))
}

func (api *teacherApi) distribution(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.GradeDistribution(ctx.Request().Context()))
}

func (api *teacherApi) coursePerformance(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.CoursePerformance(ctx.Request().Context()))
}

func (api *teacherApi) recordAttendance(ctx echo.Context) error {
	var data teacher.NewAttendance
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAttendance")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, err := api.svc.RecordAttendance(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "recording attendance")
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *teacherApi) attendanceStats(ctx echo.Context) error {
	date := core.CleanString(ctx.QueryParam("date"))
	return ctx.JSON(http.StatusOK, api.svc.AttendanceStats(ctx.Request().Context(), date))
}

func (api *teacherApi) exportAnalytics(ctx echo.Context) error {
	return writeCSV(ctx, "analytics.csv", func(c context.Context, resp *echo.Response) error {
		return api.svc.ExportAnalytics(c, resp)
	})
}

func (api *teacherApi) stats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.QuickStats(ctx.Request().Context()))
}

type (
	SubjectsResponse struct {
		Course     string   `json:"course"`
		Subjects   []string `json:"subjects"`
		Suggestion string   `json:"suggestion,omitempty"`
	}

	BroadcastResponse struct {
		Recipients int `json:"recipients"`
	}
)
