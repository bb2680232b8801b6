// Package adapters provides database adapter implementations for the
// Postgres-backed rules provider.
//
// The rules provider is read-only, so the adapter surface is a single Query
// method. Adapters exist for pgxpool.Pool, sql.DB, and sqlx.DB, presenting a
// unified interface for query execution and row iteration regardless of which
// PostgreSQL library the caller connects with.
package adapters
