package testutil

import (
	"context"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
	logsvc "github.com/Hellothereeee2312/Portal/services/logger"
	inmemdb "github.com/Hellothereeee2312/Portal/storage/database/inmem"
)

// Config returns a configuration fit for tests: in-memory storage, no request logs.
func Config() *core.Config {
	return &core.Config{
		Env:       "TEST",
		TestMode:  true,
		AppName:   "Portal",
		SecretKey: "test-secret",
		Server: core.ServerConfig{
			DisableReqLogs:            true,
			ShutdownTimeout:           time.Second,
			JWTExpirationDelta:        time.Hour,
			JWTRefreshExpirationDelta: 24 * time.Hour,
		},
		Database: core.DatabaseConfig{Engine: "memory"},
	}
}

func NopLogger() core.Logger {
	return logsvc.NewNopLogger()
}

func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	return validate, translator
}

// NewBackend returns an empty in-memory backend.
func NewBackend(t *testing.T) *inmemdb.DB {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// NewEmptyStore returns a store without any data.
func NewEmptyStore(t *testing.T) *portal.Store {
	return portal.NewStore(NewBackend(t), NopLogger())
}

// NewStore returns a store holding the sample data.
func NewStore(t *testing.T) *portal.Store {
	store := NewEmptyStore(t)
	if _, err := store.SeedIfEmpty(context.Background()); err != nil {
		t.Fatalf("SeedIfEmpty() failed: %v", err)
	}
	return store
}

// CreateStudent adds a student with the given grades straight into the store.
func CreateStudent(
	t *testing.T,
	store *portal.Store,
	id, name, course, year string,
	grades ...portal.GradeRecord,
) portal.Student {
	ctx := context.Background()
	st := portal.Student{
		ID:     id,
		Name:   name,
		Email:  id + "@student.edu",
		Course: course,
		Year:   year,
		Status: portal.StatusActive,
	}
	if err := store.SaveStudents(ctx, append(store.Students(ctx), st)); err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}

	book := store.Grades(ctx)
	book[id] = append([]portal.GradeRecord{}, grades...)
	if err := store.SaveGrades(ctx, book); err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}
	return st
}
