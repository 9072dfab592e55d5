package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/campuskit/auth-service/internal/config"
	"github.com/campuskit/auth-service/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the shared *sql.DB handle together with the error classifier used
// to decide whether a failed write is worth retrying.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// NewConnectPostgres opens and verifies a PostgreSQL connection using the
// pgx stdlib driver. The DSN is cleaned of transport options the driver does
// not understand before the connection is established.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", CleanDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:              conn,
		logger:          log,
		errorClassifier: NewPostgresErrorClassifier(),
	}

	return db, nil
}

// CleanDSN strips the channel_binding parameter from a PostgreSQL connection
// string. Managed-hosting providers include it in their copy-paste DSNs, but
// the driver rejects it.
func CleanDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.RawQuery == "" {
		return dsn
	}

	query := u.Query()
	if !query.Has("channel_binding") {
		return dsn
	}
	query.Del("channel_binding")
	u.RawQuery = query.Encode()

	return strings.TrimSuffix(u.String(), "?")
}

// postgresError extracts the PostgreSQL error code from a driver error, or
// returns an empty string for non-driver errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
