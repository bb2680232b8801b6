// Package postgresprovider provides a PostgreSQL-backed implementation of the
// tzsearch.RulesProvider interface.
//
// The rules data lives in two externally maintained tables: zone_transitions
// stores, per zone, the (offset, abbreviation, DST flag) regime starting at
// each transition instant; zone_countries maps zones to ISO country codes.
// The provider only reads them, supporting multiple database adapters
// (pgx, sql.DB, sqlx) behind one interface.
//
// Key features:
//   - Multiple database adapter support (PGX with optional read replica, SQL, SQLX)
//   - DST gap and overlap classification from the transition history
//   - Configurable table names and dual-logger support
//   - Optional metrics and tracing collectors
//
// Usage examples:
//
//	// Basic usage
//	db, _ := pgxpool.New(context.Background(), dsn)
//	provider, _ := postgresprovider.NewFromPGXPool(db)
//
//	// With custom tables and operational logging
//	provider, _ := postgresprovider.NewFromPGXPool(
//		db,
//		postgresprovider.WithTransitionsTableName("tz_transitions"),
//		postgresprovider.WithCountriesTableName("tz_countries"),
//		postgresprovider.WithLogger(logger),
//	)
//
//	pair, _ := provider.OffsetAt(ctx, "Europe/Berlin", local, tzsearch.DSTUnset)
package postgresprovider
