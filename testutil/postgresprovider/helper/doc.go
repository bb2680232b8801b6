// Package helper provides wrappers and seeding utilities for integration
// testing the PostgreSQL rules provider against a real database.
//
// The wrapper types abstract over the supported adapters (pgx.Pool, sql.DB,
// sqlx.DB) so the same test suite can run against each one, selected via the
// ADAPTER_TYPE environment variable.
package helper
