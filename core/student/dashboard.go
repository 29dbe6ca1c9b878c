package student

import (
	"context"

	"github.com/Hellothereeee2312/Portal/core/portal"
	"github.com/Hellothereeee2312/Portal/core/session"
)

// Dashboard is the student view-model bound to the signed-in student.
type Dashboard struct {
	*Service
	account *session.Account
}

var _ session.Dashboard = (*Dashboard)(nil)

// DashboardFactory returns the session.DashboardFactory for students.
func (svc *Service) DashboardFactory() session.DashboardFactory {
	return func(acc *session.Account) session.Dashboard {
		return &Dashboard{Service: svc, account: acc}
	}
}

func (d *Dashboard) Role() portal.Role { return portal.RoleStudent }

func (d *Dashboard) StudentID() string { return d.account.User().ID }

// SaveProfile saves the profile and renames the session user accordingly.
func (d *Dashboard) SaveProfile(ctx context.Context, up UpdateProfile) (portal.Student, error) {
	st, err := d.Service.SaveProfile(ctx, d.StudentID(), up)
	if err != nil {
		return portal.Student{}, err
	}
	d.account.Rename(st.Name)
	return st, nil
}

// Overview is the landing data of the student dashboard.
func (d *Dashboard) Overview(ctx context.Context) QuickStats {
	return d.QuickStats(ctx, d.StudentID())
}
