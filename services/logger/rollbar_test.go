package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
)

func TestRollbarLogger_prepare(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRollbarLogger(log.New(&buf, "", 0), &core.Config{Env: "TEST", Build: "test"})
	logger.Enable(false)

	errBoom := errors.New("boom")
	teacher := portal.CurrentUser{ID: "T001", Name: "Mr. Chiong", Role: portal.RoleTeacher}
	other := portal.CurrentUser{ID: "S2023001", Role: portal.RoleStudent}

	args := logger.prepare("grades updated", []interface{}{
		errBoom,
		map[string]interface{}{"student_id": "S2023001"},
		teacher,
		other,
		map[string]interface{}{"subjects": 4},
	})
	require.Len(t, args, 3)
	assert.Equal(t, "grades updated", args[0])
	assert.Equal(t, errBoom, args[1])
	assert.Equal(t, map[string]interface{}{
		"student_id": "S2023001",
		"subjects":   4,
		"user_role":  "teacher",
	}, args[2])

	args = logger.prepare("seeded", nil)
	assert.Equal(t, []interface{}{"seeded"}, args)

	logger.Info("login", teacher)
	assert.Contains(t, buf.String(), "login")
}
