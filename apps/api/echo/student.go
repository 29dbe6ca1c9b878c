package echoapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
	"github.com/Hellothereeee2312/Portal/core/student"
)

type studentApi struct {
	svc      *student.Service
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *student.Service, validate *validator.Validate) {
	api := studentApi{
		svc:      svc,
		validate: validate,
	}

	sg := g.Group("/student", jwt, studentMiddleware)
	sg.GET("/profile", api.profile)
	sg.PUT("/profile", api.updateProfile)
	sg.GET("/grades", api.grades)
	sg.GET("/grades/export", api.exportGrades)
	sg.GET("/schedule", api.schedule)
	sg.GET("/schedule/upcoming", api.upcoming)
	sg.GET("/resources", api.resources)
	sg.GET("/announcements", api.announcements)
	sg.GET("/stats", api.stats)

	mg := sg.Group("/messages")
	mg.GET("", api.messages)
	mg.GET("/:id", api.openMessage)
	mg.DELETE("/:id", api.deleteMessage)
	mg.POST("/:id/reply", api.reply)
}

// ctxStudentID returns the id of the student the request is made for.
func ctxStudentID(ctx echo.Context) (string, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return "", errors.Wrap(err, "getting context claims")
	}
	return claims.Subject, nil
}

// Handlers

func (api *studentApi) profile(ctx echo.Context) error {
	id, err := ctxStudentID(ctx)
	if err != nil {
		return err
	}
	st, err := api.svc.GetProfile(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "getting profile")
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *studentApi) updateProfile(ctx echo.Context) error {
	id, err := ctxStudentID(ctx)
	if err != nil {
		return err
	}

	var data student.UpdateProfile
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProfile")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	st, err := api.svc.SaveProfile(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "saving profile")
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *studentApi) grades(ctx echo.Context) error {
	id, err := ctxStudentID(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.GetGrades(ctx.Request().Context(), id))
}

func (api *studentApi) exportGrades(ctx echo.Context) error {
	id, err := ctxStudentID(ctx)
	if err != nil {
		return err
	}
	return writeCSV(ctx, fmt.Sprintf("grades_%s.csv", id), func(c context.Context, resp *echo.Response) error {
		return api.svc.ExportGrades(c, id, resp)
	})
}

func (api *studentApi) schedule(ctx echo.Context) error {
	week := intQuery(ctx, "week", portal.FirstWeek)
	return ctx.JSON(http.StatusOK, api.svc.GetSchedule(ctx.Request().Context(), week))
}

func (api *studentApi) upcoming(ctx echo.Context) error {
	rctx := ctx.Request().Context()
	now := core.NowFunc()

	resp := UpcomingResponse{Upcoming: api.svc.UpcomingClasses(rctx, now)}
	if cur, ok := api.svc.CurrentClass(rctx, now); ok {
		resp.Current = &cur
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *studentApi) messages(ctx echo.Context) error {
	id, err := ctxStudentID(ctx)
	if err != nil {
		return err
	}
	query := core.CleanString(ctx.QueryParam("search"))
	return ctx.JSON(http.StatusOK, api.svc.ListMessages(ctx.Request().Context(), id, query))
}

func (api *studentApi) openMessage(ctx echo.Context) error {
	id, err := ctxStudentID(ctx)
	if err != nil {
		return err
	}
	msgID, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	msg, err := api.svc.OpenMessage(ctx.Request().Context(), id, msgID)
	if err != nil {
		return errors.Wrap(err, "opening message")
	}
	return ctx.JSON(http.StatusOK, msg)
}

func (api *studentApi) deleteMessage(ctx echo.Context) error {
	id, err := ctxStudentID(ctx)
	if err != nil {
		return err
	}
	msgID, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err = api.svc.DeleteMessage(ctx.Request().Context(), id, msgID); err != nil {
		return errors.Wrap(err, "deleting message")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentApi) reply(ctx echo.Context) error {
	id, err := ctxStudentID(ctx)
	if err != nil {
		return err
	}
	msgID, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	var data student.ReplyRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ReplyRequest")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	reply, err := api.svc.Reply(ctx.Request().Context(), id, msgID, data.Content)
	if err != nil {
		return errors.Wrap(err, "replying")
	}
	return ctx.JSON(http.StatusCreated, reply)
}

func (api *studentApi) resources(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.ListResources(ctx.Request().Context()))
}

func (api *studentApi) announcements(ctx echo.Context) error {
	rctx := ctx.Request().Context()
	if since := intQuery(ctx, "since", 0); since > 0 {
		return ctx.JSON(http.StatusOK, api.svc.AnnouncementsSince(rctx, since))
	}
	return ctx.JSON(http.StatusOK, api.svc.ListAnnouncements(rctx))
}

func (api *studentApi) stats(ctx echo.Context) error {
	id, err := ctxStudentID(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.QuickStats(ctx.Request().Context(), id))
}

// writeCSV streams a CSV attachment produced by write.
func writeCSV(ctx echo.Context, filename string, write func(context.Context, *echo.Response) error) error {
	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	resp.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	resp.WriteHeader(http.StatusOK)
	return errors.Wrap(write(ctx.Request().Context(), resp), "writing csv")
}

type UpcomingResponse struct {
	Current  *portal.ClassSession  `json:"current"`
	Upcoming []portal.ClassSession `json:"upcoming"`
}
