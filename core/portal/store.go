package portal

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core"
)

// Storage keys
const (
	KeyStudents      = "students"
	KeyGrades        = "grades"
	KeySchedule      = "schedule"
	KeyAnnouncements = "announcements"
	KeyMessages      = "messages"
	KeyResources     = "resources"
	KeyAttendance    = "attendance"
	KeyReplies       = "replies"
	KeySequences     = "sequences"
	KeyDarkMode      = "darkMode"
	KeyInitialized   = "sis_initialized"
)

// Backend is a keyed blob storage. Get returns ErrKeyNotFound for absent keys.
// Put must replace the whole value in one step.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Store holds the portal collections on top of a Backend.
// Callers doing read-modify-write must hold the embedded mutex for the whole step.
type Store struct {
	sync.Mutex
	backend Backend
	logger  core.Logger
}

func NewStore(backend Backend, logger core.Logger) *Store {
	return &Store{backend: backend, logger: logger}
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// read decodes the blob under key into a T.
// Missing or undecodable blobs yield the zero T; the problem is logged, never returned.
func read[T any](ctx context.Context, s *Store, key string) T {
	var out T
	data, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.logger.Warn("reading "+key, err)
		}
		return out
	}
	if err = json.Unmarshal(data, &out); err != nil {
		s.logger.Warn("decoding "+key, err, map[string]interface{}{"size": len(data)})
		var zero T
		return zero
	}
	return out
}

func write(ctx context.Context, s *Store, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", key)
	}
	if err = s.backend.Put(ctx, key, data); err != nil {
		return errors.Wrapf(err, "writing %s", key)
	}
	return nil
}

func (s *Store) Students(ctx context.Context) []Student {
	if students := read[[]Student](ctx, s, KeyStudents); students != nil {
		return students
	}
	return []Student{}
}

func (s *Store) SaveStudents(ctx context.Context, students []Student) error {
	return write(ctx, s, KeyStudents, students)
}

// FindStudent returns the index of the student with the given id, or -1.
func FindStudent(students []Student, id string) int {
	for i, st := range students {
		if st.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Grades(ctx context.Context) GradeBook {
	if grades := read[GradeBook](ctx, s, KeyGrades); grades != nil {
		return grades
	}
	return GradeBook{}
}

func (s *Store) SaveGrades(ctx context.Context, grades GradeBook) error {
	return write(ctx, s, KeyGrades, grades)
}

func (s *Store) Schedule(ctx context.Context) []ScheduleSlot {
	if slots := read[[]ScheduleSlot](ctx, s, KeySchedule); slots != nil {
		return slots
	}
	return []ScheduleSlot{}
}

func (s *Store) SaveSchedule(ctx context.Context, slots []ScheduleSlot) error {
	return write(ctx, s, KeySchedule, slots)
}

func (s *Store) Announcements(ctx context.Context) []Announcement {
	if anns := read[[]Announcement](ctx, s, KeyAnnouncements); anns != nil {
		return anns
	}
	return []Announcement{}
}

func (s *Store) SaveAnnouncements(ctx context.Context, anns []Announcement) error {
	return write(ctx, s, KeyAnnouncements, anns)
}

func (s *Store) Messages(ctx context.Context) Inbox {
	if inbox := read[Inbox](ctx, s, KeyMessages); inbox != nil {
		return inbox
	}
	return Inbox{}
}

func (s *Store) SaveMessages(ctx context.Context, inbox Inbox) error {
	return write(ctx, s, KeyMessages, inbox)
}

func (s *Store) Resources(ctx context.Context) []Resource {
	if res := read[[]Resource](ctx, s, KeyResources); res != nil {
		return res
	}
	return []Resource{}
}

func (s *Store) SaveResources(ctx context.Context, res []Resource) error {
	return write(ctx, s, KeyResources, res)
}

func (s *Store) Attendance(ctx context.Context) AttendanceBook {
	if book := read[AttendanceBook](ctx, s, KeyAttendance); book != nil {
		return book
	}
	return AttendanceBook{}
}

func (s *Store) SaveAttendance(ctx context.Context, book AttendanceBook) error {
	return write(ctx, s, KeyAttendance, book)
}

func (s *Store) Replies(ctx context.Context) []Reply {
	if replies := read[[]Reply](ctx, s, KeyReplies); replies != nil {
		return replies
	}
	return []Reply{}
}

func (s *Store) SaveReplies(ctx context.Context, replies []Reply) error {
	return write(ctx, s, KeyReplies, replies)
}

func (s *Store) DarkMode(ctx context.Context) bool {
	return read[bool](ctx, s, KeyDarkMode)
}

func (s *Store) SetDarkMode(ctx context.Context, enabled bool) error {
	return write(ctx, s, KeyDarkMode, enabled)
}

func (s *Store) Initialized(ctx context.Context) bool {
	return read[bool](ctx, s, KeyInitialized)
}

// Sequence names
const (
	SeqAnnouncements = "announcements"
	SeqReplies       = "replies"
)

func MessageSequence(studentID string) string { return "messages:" + studentID }

// NextID advances the named sequence and returns its new value.
// The value is always greater than floor, the highest id already in use.
// Values are never handed out twice, even after deletes.
func (s *Store) NextID(ctx context.Context, seq string, floor int) (int, error) {
	seqs := read[map[string]int](ctx, s, KeySequences)
	if seqs == nil {
		seqs = make(map[string]int)
	}
	next := seqs[seq]
	if next < floor {
		next = floor
	}
	next++
	seqs[seq] = next
	if err := write(ctx, s, KeySequences, seqs); err != nil {
		return 0, err
	}
	return next, nil
}

// DropSequence forgets the named sequence.
func (s *Store) DropSequence(ctx context.Context, seq string) error {
	seqs := read[map[string]int](ctx, s, KeySequences)
	if _, ok := seqs[seq]; !ok {
		return nil
	}
	delete(seqs, seq)
	return write(ctx, s, KeySequences, seqs)
}
