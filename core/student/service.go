package student

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
)

var errEmptyReply = errors.New("please enter a message")

const upcomingClasses = 3

// Service reads and mutates the datastore on behalf of one student at a time.
type Service struct {
	store  *portal.Store
	logger core.Logger
}

func NewService(store *portal.Store, logger core.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (svc *Service) GetProfile(ctx context.Context, id string) (portal.Student, error) {
	students := svc.store.Students(ctx)
	idx := portal.FindStudent(students, id)
	if idx < 0 {
		return portal.Student{}, portal.ErrStudentNotFound
	}
	return students[idx], nil
}

// SaveProfile overwrites the mutable profile fields of the student.
func (svc *Service) SaveProfile(ctx context.Context, id string, up UpdateProfile) (portal.Student, error) {
	svc.store.Lock()
	defer svc.store.Unlock()

	students := svc.store.Students(ctx)
	idx := portal.FindStudent(students, id)
	if idx < 0 {
		return portal.Student{}, portal.ErrStudentNotFound
	}
	st := &students[idx]
	st.Name = up.Name
	st.Email = up.Email
	st.Course = up.Course
	st.Year = up.Year

	if err := svc.store.SaveStudents(ctx, students); err != nil {
		return portal.Student{}, errors.Wrap(err, "saving students")
	}
	svc.logger.Info("profile saved", map[string]interface{}{"student_id": id})
	return *st, nil
}

// GetGrades returns the student's records with remarks, GPA and verdict.
func (svc *Service) GetGrades(ctx context.Context, id string) GradeReport {
	records := svc.store.Grades(ctx)[id]
	lines := make([]GradeLine, 0, len(records))
	for _, r := range records {
		lines = append(lines, GradeLine{GradeRecord: r, Remark: portal.Remark(r.Grade)})
	}
	gpa := portal.GPA(records)
	return GradeReport{Records: lines, GPA: gpa, Passed: portal.Passed(gpa)}
}

// ExportGrades writes the student's grades as CSV.
func (svc *Service) ExportGrades(ctx context.Context, id string, w io.Writer) error {
	return errors.Wrap(portal.WriteGradesCSV(w, svc.store.Grades(ctx)[id]), "writing csv")
}

// GetSchedule returns the weekly timetable. The week only labels the view.
func (svc *Service) GetSchedule(ctx context.Context, week int) Schedule {
	return Schedule{Week: portal.ClampWeek(week), Slots: svc.store.Schedule(ctx)}
}

func (svc *Service) CurrentClass(ctx context.Context, now time.Time) (portal.ClassSession, bool) {
	return portal.CurrentClass(svc.store.Schedule(ctx), now)
}

func (svc *Service) UpcomingClasses(ctx context.Context, now time.Time) []portal.ClassSession {
	return portal.UpcomingClasses(svc.store.Schedule(ctx), now, upcomingClasses)
}

// ListMessages returns the student's messages matching query on subject, sender or content.
func (svc *Service) ListMessages(ctx context.Context, id, query string) []portal.Message {
	msgs := svc.store.Messages(ctx)[id]
	filtered := make([]portal.Message, 0, len(msgs))
	for _, m := range msgs {
		if core.ContainsFold(query, m.Subject, m.Sender, m.Content) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// OpenMessage returns the message and marks it read.
func (svc *Service) OpenMessage(ctx context.Context, id string, msgID int) (portal.Message, error) {
	svc.store.Lock()
	defer svc.store.Unlock()

	inbox := svc.store.Messages(ctx)
	msgs := inbox[id]
	for i := range msgs {
		if msgs[i].ID != msgID {
			continue
		}
		if !msgs[i].Read {
			msgs[i].Read = true
			if err := svc.store.SaveMessages(ctx, inbox); err != nil {
				return portal.Message{}, errors.Wrap(err, "saving messages")
			}
		}
		return msgs[i], nil
	}
	return portal.Message{}, portal.ErrMessageNotFound
}

// DeleteMessage removes the message; unknown ids are ignored.
func (svc *Service) DeleteMessage(ctx context.Context, id string, msgID int) error {
	svc.store.Lock()
	defer svc.store.Unlock()

	inbox := svc.store.Messages(ctx)
	msgs, ok := inbox[id]
	if !ok {
		return nil
	}
	kept := make([]portal.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.ID != msgID {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(msgs) {
		return nil
	}
	inbox[id] = kept
	if err := svc.store.SaveMessages(ctx, inbox); err != nil {
		return errors.Wrap(err, "saving messages")
	}
	svc.logger.Info("message deleted", map[string]interface{}{"student_id": id, "message_id": msgID})
	return nil
}

// Reply stores the student's answer to one of their messages.
func (svc *Service) Reply(ctx context.Context, id string, msgID int, content string) (portal.Reply, error) {
	content = portal.Sanitize(content)
	if content == "" {
		return portal.Reply{}, core.NewValidationError(errEmptyReply, core.FieldError{Field: "content", Error: errEmptyReply.Error()})
	}

	svc.store.Lock()
	defer svc.store.Unlock()

	var subject string
	found := false
	for _, m := range svc.store.Messages(ctx)[id] {
		if m.ID == msgID {
			subject, found = m.Subject, true
			break
		}
	}
	if !found {
		return portal.Reply{}, portal.ErrMessageNotFound
	}

	replies := svc.store.Replies(ctx)
	var floor int
	for _, r := range replies {
		if r.ID > floor {
			floor = r.ID
		}
	}
	replyID, err := svc.store.NextID(ctx, portal.SeqReplies, floor)
	if err != nil {
		return portal.Reply{}, errors.Wrap(err, "allocating reply id")
	}
	reply := portal.Reply{
		ID:        replyID,
		StudentID: id,
		MessageID: msgID,
		Subject:   "Re: " + subject,
		Content:   content,
		Date:      core.Today(),
	}
	if err = svc.store.SaveReplies(ctx, append(replies, reply)); err != nil {
		return portal.Reply{}, errors.Wrap(err, "saving replies")
	}
	svc.logger.Info("reply sent", map[string]interface{}{"student_id": id, "message_id": msgID})
	return reply, nil
}

// ListResources returns every resource; resources are not scoped to a student.
func (svc *Service) ListResources(ctx context.Context) []ResourceView {
	res := svc.store.Resources(ctx)
	views := make([]ResourceView, 0, len(res))
	for _, r := range res {
		views = append(views, ResourceView{Resource: r, Icon: r.Type.Icon()})
	}
	return views
}

func (svc *Service) ListAnnouncements(ctx context.Context) []portal.Announcement {
	return svc.store.Announcements(ctx)
}

// AnnouncementsSince returns the announcements posted after the one with id sinceID.
func (svc *Service) AnnouncementsSince(ctx context.Context, sinceID int) []portal.Announcement {
	anns := svc.store.Announcements(ctx)
	fresh := make([]portal.Announcement, 0)
	for _, a := range anns {
		if a.ID > sinceID {
			fresh = append(fresh, a)
		}
	}
	return fresh
}

func (svc *Service) QuickStats(ctx context.Context, id string) QuickStats {
	records := svc.store.Grades(ctx)[id]
	var unread int
	for _, m := range svc.store.Messages(ctx)[id] {
		if !m.Read {
			unread++
		}
	}
	return QuickStats{
		Subjects:      len(records),
		Unread:        unread,
		GPA:           portal.GPA(records),
		Announcements: len(svc.store.Announcements(ctx)),
	}
}
