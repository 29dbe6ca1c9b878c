package teacher

import (
	"context"

	"github.com/Hellothereeee2312/Portal/core/portal"
	"github.com/Hellothereeee2312/Portal/core/session"
)

// Dashboard is the teacher view-model bound to the signed-in teacher.
type Dashboard struct {
	*Service
	account *session.Account
}

var _ session.Dashboard = (*Dashboard)(nil)

// DashboardFactory returns the session.DashboardFactory for teachers.
func (svc *Service) DashboardFactory() session.DashboardFactory {
	return func(acc *session.Account) session.Dashboard {
		return &Dashboard{Service: svc, account: acc}
	}
}

func (d *Dashboard) Role() portal.Role { return portal.RoleTeacher }

// PostAnnouncement signs the announcement with the teacher's name unless an author is given.
func (d *Dashboard) PostAnnouncement(ctx context.Context, na NewAnnouncement) (portal.Announcement, error) {
	if na.Author == "" {
		na.Author = d.account.User().Name
	}
	return d.Service.PostAnnouncement(ctx, na)
}

func (d *Dashboard) Overview(ctx context.Context) QuickStats {
	return d.QuickStats(ctx)
}
