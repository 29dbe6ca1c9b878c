// Package app wires the portal datastore, session gate and view-models into one context.
package app

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
	"github.com/Hellothereeee2312/Portal/core/session"
	"github.com/Hellothereeee2312/Portal/core/student"
	"github.com/Hellothereeee2312/Portal/core/teacher"
)

// App is the portal as seen by its front ends (HTTP API, admin CLI).
type App struct {
	Conf     *core.Config
	Logger   core.Logger
	Store    *portal.Store
	Gate     *session.Gate
	Students *student.Service
	Teachers *teacher.Service
}

// New seeds the store on first use and registers one dashboard per role on the gate.
func New(ctx context.Context, conf *core.Config, logger core.Logger, backend portal.Backend) (*App, error) {
	store := portal.NewStore(backend, logger)
	seeded, err := store.SeedIfEmpty(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "seeding store")
	}
	if seeded {
		logger.Info("datastore seeded with sample data")
	}

	a := &App{
		Conf:     conf,
		Logger:   logger,
		Store:    store,
		Gate:     session.NewGate(store, logger),
		Students: student.NewService(store, logger),
		Teachers: teacher.NewService(store, logger),
	}
	a.Gate.Register(portal.RoleStudent, a.Students.DashboardFactory())
	a.Gate.Register(portal.RoleTeacher, a.Teachers.DashboardFactory())
	return a, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}
