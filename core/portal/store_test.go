package portal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hellothereeee2312/Portal/core/portal"
	inmemdb "github.com/Hellothereeee2312/Portal/storage/database/inmem"
	"github.com/Hellothereeee2312/Portal/tests"
)

var errBroken = errors.New("disk on fire")

// brokenBackend fails every write.
type brokenBackend struct {
	*inmemdb.DB
}

func (b brokenBackend) Put(context.Context, string, []byte) error { return errBroken }

func TestStore_degradedReads(t *testing.T) {
	ctx := context.Background()
	backend := testutil.NewBackend(t)
	store := portal.NewStore(backend, testutil.NopLogger())

	// missing keys
	assert.Equal(t, []portal.Student{}, store.Students(ctx))
	assert.Equal(t, portal.GradeBook{}, store.Grades(ctx))
	assert.Equal(t, portal.Inbox{}, store.Messages(ctx))
	assert.Equal(t, []portal.Announcement{}, store.Announcements(ctx))
	assert.Equal(t, []portal.Resource{}, store.Resources(ctx))
	assert.Equal(t, []portal.ScheduleSlot{}, store.Schedule(ctx))
	assert.Equal(t, portal.AttendanceBook{}, store.Attendance(ctx))
	assert.Equal(t, []portal.Reply{}, store.Replies(ctx))
	assert.False(t, store.DarkMode(ctx))
	assert.False(t, store.Initialized(ctx))

	// corrupt or mistyped blobs
	require.NoError(t, backend.Put(ctx, portal.KeyStudents, []byte("{not json")))
	require.NoError(t, backend.Put(ctx, portal.KeyGrades, []byte(`["a", "list"]`)))
	require.NoError(t, backend.Put(ctx, portal.KeyDarkMode, []byte(`"yes"`)))
	require.NoError(t, backend.Put(ctx, portal.KeyAnnouncements, []byte("null")))
	assert.Equal(t, []portal.Student{}, store.Students(ctx))
	assert.Equal(t, portal.GradeBook{}, store.Grades(ctx))
	assert.False(t, store.DarkMode(ctx))
	assert.Equal(t, []portal.Announcement{}, store.Announcements(ctx))
}

func TestStore_writeFailure(t *testing.T) {
	ctx := context.Background()
	store := portal.NewStore(brokenBackend{testutil.NewBackend(t)}, testutil.NopLogger())

	err := store.SaveStudents(ctx, []portal.Student{{ID: "S1"}})
	assert.True(t, errors.Is(err, errBroken), "SaveStudents() error = %v", err)

	seeded, err := store.SeedIfEmpty(ctx)
	assert.False(t, seeded)
	assert.True(t, errors.Is(err, errBroken), "SeedIfEmpty() error = %v", err)
	assert.False(t, store.Initialized(ctx))
}

func TestStore_roundTrip(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewEmptyStore(t)

	students := []portal.Student{{ID: "S1", Name: "A"}, {ID: "S2", Name: "B"}}
	require.NoError(t, store.SaveStudents(ctx, students))
	assert.Equal(t, students, store.Students(ctx))
	assert.Equal(t, 1, portal.FindStudent(students, "S2"))
	assert.Equal(t, -1, portal.FindStudent(students, "S3"))

	require.NoError(t, store.SetDarkMode(ctx, true))
	assert.True(t, store.DarkMode(ctx))
}

func TestStore_NextID(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewEmptyStore(t)

	next := func(seq string, floor int) int {
		id, err := store.NextID(ctx, seq, floor)
		require.NoError(t, err)
		return id
	}

	assert.Equal(t, 4, next(portal.SeqAnnouncements, 3))
	assert.Equal(t, 5, next(portal.SeqAnnouncements, 3))
	// ids are not reused once the newest item is gone
	assert.Equal(t, 6, next(portal.SeqAnnouncements, 0))
	assert.Equal(t, 11, next(portal.SeqAnnouncements, 10))

	// sequences are independent
	assert.Equal(t, 1, next(portal.MessageSequence("S1"), 0))
	assert.Equal(t, 3, next(portal.MessageSequence("S2"), 2))

	require.NoError(t, store.DropSequence(ctx, portal.MessageSequence("S1")))
	require.NoError(t, store.DropSequence(ctx, "unknown"))
	assert.Equal(t, 1, next(portal.MessageSequence("S1"), 0))
	assert.Equal(t, 12, next(portal.SeqAnnouncements, 0))
}

func TestStore_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewEmptyStore(t)

	seeded, err := store.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.True(t, store.Initialized(ctx))
	assert.Len(t, store.Students(ctx), 4)
	assert.Len(t, store.Grades(ctx), 2)
	assert.Len(t, store.Announcements(ctx), 3)
	assert.Len(t, store.Messages(ctx)["S2023001"], 2)
	assert.Len(t, store.Resources(ctx), 3)
	assert.Len(t, store.Schedule(ctx), 5)

	// a second run leaves user data alone
	require.NoError(t, store.SaveStudents(ctx, store.Students(ctx)[:1]))
	seeded, err = store.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, store.Students(ctx), 1)
}

func TestStore_Reset(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)

	require.NoError(t, store.SaveStudents(ctx, nil))
	require.NoError(t, store.SaveReplies(ctx, []portal.Reply{{ID: 1}}))
	require.NoError(t, store.SetDarkMode(ctx, true))
	_, err := store.NextID(ctx, portal.SeqAnnouncements, 10)
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx))
	assert.Len(t, store.Students(ctx), 4)
	assert.Empty(t, store.Replies(ctx))
	assert.True(t, store.DarkMode(ctx))

	id, err := store.NextID(ctx, portal.SeqAnnouncements, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, id)
}
