package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
)

type (
	// Dashboard is the role specific view-model made active by a login.
	Dashboard interface {
		Role() portal.Role
	}

	// DashboardFactory binds a view-model to the account of a new login.
	DashboardFactory func(acc *Account) Dashboard

	// Gate tracks the single active session of a portal.
	Gate struct {
		mu         sync.RWMutex
		store      *portal.Store
		logger     core.Logger
		dashboards map[portal.Role]DashboardFactory
		current    *Account
		active     Dashboard
	}
)

func NewGate(store *portal.Store, logger core.Logger) *Gate {
	return &Gate{
		store:      store,
		logger:     logger,
		dashboards: make(map[portal.Role]DashboardFactory),
	}
}

// Register sets the dashboard built for role on login.
func (g *Gate) Register(role portal.Role, factory DashboardFactory) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dashboards[role] = factory
}

// Login authenticates and starts a session; a failed attempt leaves the session as it was.
func (g *Gate) Login(_ context.Context, role portal.Role, username, password string) (portal.CurrentUser, error) {
	usr, err := Authenticate(role, username, password)
	if err != nil {
		g.logger.Info("login failed", map[string]interface{}{"role": role, "username": username})
		return portal.CurrentUser{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.current = NewAccount(usr)
	g.active = nil
	if factory, ok := g.dashboards[role]; ok {
		g.active = factory(g.current)
	}
	g.logger.Info("login", usr)
	return usr, nil
}

// Logout ends the session. Calling it while logged out does nothing.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current != nil {
		g.logger.Info("logout", g.current.User())
	}
	g.current = nil
	g.active = nil
}

// Current returns the signed-in user, if any.
func (g *Gate) Current() (portal.CurrentUser, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.current == nil {
		return portal.CurrentUser{}, false
	}
	return g.current.User(), true
}

// Active returns the dashboard of the current session, nil when logged out.
func (g *Gate) Active() Dashboard {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.active
}

func (g *Gate) DarkMode(ctx context.Context) bool {
	return g.store.DarkMode(ctx)
}

// ToggleTheme flips and persists the dark mode preference. Works with or without a session.
func (g *Gate) ToggleTheme(ctx context.Context) (bool, error) {
	g.store.Lock()
	defer g.store.Unlock()

	enabled := !g.store.DarkMode(ctx)
	if err := g.store.SetDarkMode(ctx, enabled); err != nil {
		return !enabled, errors.Wrap(err, "saving theme")
	}
	return enabled, nil
}
