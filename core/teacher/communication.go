package teacher

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
)

const defaultAuthor = "Mr. Chiong"

var errNoStudentSelected = errors.New("please select a student")

// PostAnnouncement puts a new announcement in front of the list, dated today.
func (svc *Service) PostAnnouncement(ctx context.Context, na NewAnnouncement) (portal.Announcement, error) {
	svc.store.Lock()
	defer svc.store.Unlock()

	anns := svc.store.Announcements(ctx)
	var floor int
	for _, a := range anns {
		if a.ID > floor {
			floor = a.ID
		}
	}
	id, err := svc.store.NextID(ctx, portal.SeqAnnouncements, floor)
	if err != nil {
		return portal.Announcement{}, errors.Wrap(err, "allocating announcement id")
	}

	ann := portal.Announcement{
		ID:       id,
		Title:    na.Title,
		Content:  na.Content,
		Date:     core.Today(),
		Author:   na.Author,
		Priority: na.Priority,
	}
	if ann.Author == "" {
		ann.Author = defaultAuthor
	}
	if ann.Priority == "" {
		ann.Priority = portal.PriorityNormal
	}

	if err = svc.store.SaveAnnouncements(ctx, append([]portal.Announcement{ann}, anns...)); err != nil {
		return portal.Announcement{}, errors.Wrap(err, "saving announcements")
	}
	svc.logger.Info("announcement posted", map[string]interface{}{"announcement_id": id})
	return ann, nil
}

func (svc *Service) ListAnnouncements(ctx context.Context) []portal.Announcement {
	return svc.store.Announcements(ctx)
}

// AnnouncementSummary renders every announcement as plain text.
func (svc *Service) AnnouncementSummary(ctx context.Context) string {
	anns := svc.store.Announcements(ctx)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total Announcements: %d\n\n", len(anns))
	for _, a := range anns {
		fmt.Fprintf(&sb, "%s (%s)\n", a.Title, a.Priority)
		fmt.Fprintf(&sb, "By %s on %s\n", a.Author, a.Date)
		fmt.Fprintf(&sb, "%s\n\n", a.Content)
	}
	return sb.String()
}

// SendMessage appends an unread message to the student's inbox.
func (svc *Service) SendMessage(ctx context.Context, nm NewMessage) (portal.Message, error) {
	if nm.StudentID == "" {
		return portal.Message{}, core.NewValidationError(errNoStudentSelected, core.FieldError{Field: "student_id", Error: errNoStudentSelected.Error()})
	}

	svc.store.Lock()
	defer svc.store.Unlock()

	if portal.FindStudent(svc.store.Students(ctx), nm.StudentID) < 0 {
		return portal.Message{}, portal.ErrStudentNotFound
	}
	inbox := svc.store.Messages(ctx)
	msg, err := svc.deliver(ctx, inbox, nm.StudentID, nm)
	if err != nil {
		return portal.Message{}, err
	}
	if err = svc.store.SaveMessages(ctx, inbox); err != nil {
		return portal.Message{}, errors.Wrap(err, "saving messages")
	}
	svc.logger.Info("message sent", map[string]interface{}{"student_id": nm.StudentID, "message_id": msg.ID})
	return msg, nil
}

// BroadcastMessage sends the same message to every student; StudentID is ignored.
func (svc *Service) BroadcastMessage(ctx context.Context, nm NewMessage) (int, error) {
	svc.store.Lock()
	defer svc.store.Unlock()

	students := svc.store.Students(ctx)
	inbox := svc.store.Messages(ctx)
	for _, st := range students {
		if _, err := svc.deliver(ctx, inbox, st.ID, nm); err != nil {
			return 0, err
		}
	}
	if err := svc.store.SaveMessages(ctx, inbox); err != nil {
		return 0, errors.Wrap(err, "saving messages")
	}
	svc.logger.Info("message broadcast", map[string]interface{}{"recipients": len(students)})
	return len(students), nil
}

// deliver appends nm to the inbox of studentID in memory. Caller holds the store lock.
func (svc *Service) deliver(ctx context.Context, inbox portal.Inbox, studentID string, nm NewMessage) (portal.Message, error) {
	msgs := inbox[studentID]
	var floor int
	for _, m := range msgs {
		if m.ID > floor {
			floor = m.ID
		}
	}
	id, err := svc.store.NextID(ctx, portal.MessageSequence(studentID), floor)
	if err != nil {
		return portal.Message{}, errors.Wrap(err, "allocating message id")
	}
	msg := portal.Message{
		ID:      id,
		Subject: nm.Subject,
		Content: nm.Content,
		Sender:  nm.Sender,
		Date:    core.Today(),
	}
	if msg.Sender == "" {
		msg.Sender = defaultAuthor
	}
	inbox[studentID] = append(msgs, msg)
	return msg, nil
}

// ListReplies returns the replies students sent, newest last.
func (svc *Service) ListReplies(ctx context.Context) []portal.Reply {
	return svc.store.Replies(ctx)
}
