package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver

	"github.com/aiswo/librarydesk/tablestore"
	"github.com/aiswo/librarydesk/tablestore/fileengine"
	"github.com/aiswo/librarydesk/tablestore/postgresengine"
	"github.com/aiswo/librarydesk/tablestore/s3engine"
)

// ErrUnknownEngine is returned when settings name an engine OpenBackend cannot build.
var ErrUnknownEngine = errors.New("unknown storage engine")

// Observability bundles the optional collectors handed to the chosen engine. Nil fields are skipped.
type Observability struct {
	Logger           tablestore.Logger
	ContextualLogger tablestore.ContextualLogger
	Metrics          tablestore.MetricsCollector
	Tracing          tablestore.TracingCollector
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

var noopCloser = closerFunc(func() error { return nil })

// OpenBackend builds the engine named in settings. The returned Closer releases its connections.
func OpenBackend(ctx context.Context, settings StoreSettings, obs Observability) (tablestore.Backend, io.Closer, error) {
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	switch settings.Engine {
	case EngineFile:
		return openFileBackend(settings, obs)
	case EnginePostgres:
		return openPostgresBackend(ctx, settings, obs)
	case EngineS3:
		return openS3Backend(ctx, settings, obs)
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownEngine, settings.Engine)
	}
}

func openFileBackend(settings StoreSettings, obs Observability) (tablestore.Backend, io.Closer, error) {
	opts := []fileengine.Option{fileengine.WithDirectory(settings.DataDir)}

	if obs.Logger != nil {
		opts = append(opts, fileengine.WithLogger(obs.Logger))
	}

	if obs.ContextualLogger != nil {
		opts = append(opts, fileengine.WithContextualLogger(obs.ContextualLogger))
	}

	if obs.Metrics != nil {
		opts = append(opts, fileengine.WithMetrics(obs.Metrics))
	}

	if obs.Tracing != nil {
		opts = append(opts, fileengine.WithTracing(obs.Tracing))
	}

	backend, err := fileengine.NewBackend(opts...)
	if err != nil {
		return nil, nil, err
	}

	return backend, noopCloser, nil
}

func postgresOptions(settings StoreSettings, obs Observability) []postgresengine.Option {
	var opts []postgresengine.Option

	if settings.PostgresTable != "" {
		opts = append(opts, postgresengine.WithTableName(settings.PostgresTable))
	}

	if obs.Logger != nil {
		opts = append(opts, postgresengine.WithLogger(obs.Logger))
	}

	if obs.ContextualLogger != nil {
		opts = append(opts, postgresengine.WithContextualLogger(obs.ContextualLogger))
	}

	if obs.Metrics != nil {
		opts = append(opts, postgresengine.WithMetrics(obs.Metrics))
	}

	if obs.Tracing != nil {
		opts = append(opts, postgresengine.WithTracing(obs.Tracing))
	}

	return opts
}

func openPostgresBackend(ctx context.Context, settings StoreSettings, obs Observability) (tablestore.Backend, io.Closer, error) {
	var (
		backend postgresengine.Backend
		closer  io.Closer
		err     error
	)

	opts := postgresOptions(settings, obs)

	switch settings.PostgresDriver {
	case DriverSQL:
		db, openErr := sql.Open("postgres", settings.PostgresDSN)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", openErr)
		}

		closer = db
		backend, err = postgresengine.NewBackendFromSQLDB(db, opts...)

	case DriverSQLX:
		db, openErr := sqlx.ConnectContext(ctx, "postgres", settings.PostgresDSN)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", openErr)
		}

		closer = db
		backend, err = postgresengine.NewBackendFromSQLX(db, opts...)

	default:
		pool, openErr := pgxpool.New(ctx, settings.PostgresDSN)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", openErr)
		}

		closer = closerFunc(func() error {
			pool.Close()
			return nil
		})
		backend, err = postgresengine.NewBackendFromPGXPool(pool, opts...)
	}

	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	if err = backend.CreateTableIfNotExists(ctx); err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	return backend, closer, nil
}

func openS3Backend(ctx context.Context, settings StoreSettings, obs Observability) (tablestore.Backend, io.Closer, error) {
	var opts []s3engine.Option

	if settings.S3Prefix != "" {
		opts = append(opts, s3engine.WithPrefix(settings.S3Prefix))
	}

	if obs.Logger != nil {
		opts = append(opts, s3engine.WithLogger(obs.Logger))
	}

	if obs.ContextualLogger != nil {
		opts = append(opts, s3engine.WithContextualLogger(obs.ContextualLogger))
	}

	if obs.Metrics != nil {
		opts = append(opts, s3engine.WithMetrics(obs.Metrics))
	}

	if obs.Tracing != nil {
		opts = append(opts, s3engine.WithTracing(obs.Tracing))
	}

	backend, err := s3engine.NewBackendFromRegion(ctx, settings.S3Region, settings.S3Bucket, opts...)
	if err != nil {
		return nil, nil, err
	}

	return backend, noopCloser, nil
}
