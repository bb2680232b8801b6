package helper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzsearch/timezone-search-go/testutil/postgresprovider/config"
	"github.com/tzsearch/timezone-search-go/tzsearch/postgresprovider"
)

// Adapter type constants
const (
	typePGXPool = "pgx.pool"
	typeSQLDB   = "sql.db"
	typeSQLXDB  = "sqlx.db"
)

// Wrapper abstracts over the different database adapter types so provider
// integration tests can run against each of them.
type Wrapper interface {
	GetProvider() postgresprovider.Provider
	Exec(ctx context.Context, statement string) error
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing
type PGXPoolWrapper struct {
	pool     *pgxpool.Pool
	provider postgresprovider.Provider
}

func (w *PGXPoolWrapper) GetProvider() postgresprovider.Provider {
	return w.provider
}

func (w *PGXPoolWrapper) Exec(ctx context.Context, statement string) error {
	_, err := w.pool.Exec(ctx, statement)
	return err
}

func (w *PGXPoolWrapper) Close() {
	w.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing
type SQLDBWrapper struct {
	db       *sql.DB
	provider postgresprovider.Provider
}

func (w *SQLDBWrapper) GetProvider() postgresprovider.Provider {
	return w.provider
}

func (w *SQLDBWrapper) Exec(ctx context.Context, statement string) error {
	_, err := w.db.ExecContext(ctx, statement)
	return err
}

func (w *SQLDBWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx.DB-based testing
type SQLXWrapper struct {
	db       *sqlx.DB
	provider postgresprovider.Provider
}

func (w *SQLXWrapper) GetProvider() postgresprovider.Provider {
	return w.provider
}

func (w *SQLXWrapper) Exec(ctx context.Context, statement string) error {
	_, err := w.db.ExecContext(ctx, statement)
	return err
}

func (w *SQLXWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// CreateWrapperWithTestConfig creates the appropriate wrapper based on the
// ADAPTER_TYPE environment variable, defaulting to pgx.pool.
func CreateWrapperWithTestConfig(t testing.TB, options ...postgresprovider.Option) Wrapper {
	adapterTypeFromEnv := strings.ToLower(os.Getenv("ADAPTER_TYPE"))

	switch adapterTypeFromEnv {
	case typePGXPool, "":
		connPool, err := pgxpool.NewWithConfig(context.Background(), config.PostgresPGXPoolSingleConfig())
		assert.NoError(t, err, "error connecting to DB pool in test setup")

		provider, err := postgresprovider.NewFromPGXPool(connPool, options...)
		assert.NoError(t, err, "error creating rules provider")

		return &PGXPoolWrapper{pool: connPool, provider: provider}

	case typeSQLDB:
		db := config.PostgresSQLDBSingleConfig()

		provider, err := postgresprovider.NewFromSQLDB(db, options...)
		assert.NoError(t, err, "error creating rules provider")

		return &SQLDBWrapper{db: db, provider: provider}

	case typeSQLXDB:
		db := config.PostgresSQLXSingleConfig()

		provider, err := postgresprovider.NewFromSQLX(db, options...)
		assert.NoError(t, err, "error creating rules provider")

		return &SQLXWrapper{db: db, provider: provider}

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", adapterTypeFromEnv))
	}
}

// CreateRulesTables creates the transition and country tables used by the provider.
func CreateRulesTables(t testing.TB, wrapper Wrapper) {
	ctx := context.Background()

	err := wrapper.Exec(ctx, `CREATE TABLE IF NOT EXISTS zone_transitions (
		zone TEXT NOT NULL,
		transition_at TIMESTAMPTZ NOT NULL,
		offset_minutes INTEGER NOT NULL,
		abbrev TEXT NOT NULL,
		is_dst BOOLEAN NOT NULL,
		PRIMARY KEY (zone, transition_at)
	)`)
	require.NoError(t, err, "error creating the zone_transitions table")

	err = wrapper.Exec(ctx, `CREATE TABLE IF NOT EXISTS zone_countries (
		zone TEXT NOT NULL,
		country_code TEXT NOT NULL,
		PRIMARY KEY (zone, country_code)
	)`)
	require.NoError(t, err, "error creating the zone_countries table")
}

// SeedTransition inserts a single transition row.
func SeedTransition(t testing.TB, wrapper Wrapper, zone, transitionAt string, offsetMinutes int, abbrev string, isDST bool) {
	statement := fmt.Sprintf(
		`INSERT INTO zone_transitions (zone, transition_at, offset_minutes, abbrev, is_dst)
		 VALUES ('%s', '%s', %d, '%s', %t)`,
		zone, transitionAt, offsetMinutes, abbrev, isDST,
	)

	err := wrapper.Exec(context.Background(), statement)
	require.NoError(t, err, "error seeding a transition row")
}

// SeedCountry inserts a single country membership row.
func SeedCountry(t testing.TB, wrapper Wrapper, zone, countryCode string) {
	statement := fmt.Sprintf(
		`INSERT INTO zone_countries (zone, country_code) VALUES ('%s', '%s')`,
		zone, countryCode,
	)

	err := wrapper.Exec(context.Background(), statement)
	require.NoError(t, err, "error seeding a country row")
}

// CleanUp truncates the rules tables for the given wrapper.
func CleanUp(t testing.TB, wrapper Wrapper) {
	ctx := context.Background()

	err := wrapper.Exec(ctx, "TRUNCATE TABLE zone_transitions")
	assert.NoError(t, err, "error cleaning up the zone_transitions table")

	err = wrapper.Exec(ctx, "TRUNCATE TABLE zone_countries")
	assert.NoError(t, err, "error cleaning up the zone_countries table")
}
