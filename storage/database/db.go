package database

import (
	"context"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/portal"
	boltdb "github.com/Hellothereeee2312/Portal/storage/database/bolt"
	inmemdb "github.com/Hellothereeee2312/Portal/storage/database/inmem"
	sqlxdb "github.com/Hellothereeee2312/Portal/storage/database/sqlx"
)

// Engines
const (
	EngineMemory   = "memory"
	EngineBolt     = "bolt"
	EnginePostgres = "postgres"
)

var errUnknownEngine = errors.New("unknown database engine")

// Open returns the datastore backend selected by conf.Database.Engine.
func Open(ctx context.Context, conf *core.Config) (portal.Backend, error) {
	switch conf.Database.Engine {
	case EngineMemory:
		return inmemdb.Open()
	case EngineBolt:
		return boltdb.Open(conf.Database.Path)
	case EnginePostgres:
		db, err := openPostgres(conf)
		if err != nil {
			return nil, errors.Wrap(err, "opening database")
		}
		if err = ping(ctx, db); err != nil {
			_ = db.Close()
			return nil, errors.Wrap(err, "pinging database")
		}
		return newSQLBackend(ctx, db)
	}
	return nil, errors.Wrap(errUnknownEngine, conf.Database.Engine)
}

// newSQLBackend takes ownership of db: it is closed when the backend cannot be set up.
func newSQLBackend(ctx context.Context, db *sqlx.DB) (portal.Backend, error) {
	backend, err := sqlxdb.New(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return backend, nil
}

func openPostgres(conf *core.Config) (*sqlx.DB, error) {
	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   EnginePostgres,
		User:     url.UserPassword(conf.Database.User, conf.Database.Password),
		Host:     conf.Database.Address(),
		Path:     conf.Database.Name,
		RawQuery: q.Encode(),
	}
	return sqlx.Open(EnginePostgres, u.String())
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}
