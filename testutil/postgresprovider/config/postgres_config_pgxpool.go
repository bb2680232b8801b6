package config

import (
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresPGXPoolSingleConfig creates a pgxpool.Config for the single test database.
func PostgresPGXPoolSingleConfig() *pgxpool.Config {
	return pgxPoolConfigFor(PostgresSingleDSN())
}

// PostgresPGXPoolPrimaryConfig creates a pgxpool.Config for the primary node of a replicated test database.
func PostgresPGXPoolPrimaryConfig() *pgxpool.Config {
	return pgxPoolConfigFor(PostgresPrimaryDSN())
}

// PostgresPGXPoolReplicaConfig creates a pgxpool.Config for the replica node of a replicated test database.
func PostgresPGXPoolReplicaConfig() *pgxpool.Config {
	return pgxPoolConfigFor(PostgresReplicaDSN())
}

func pgxPoolConfigFor(dsn string) *pgxpool.Config {
	const defaultMaxConnections = int32(20)
	const defaultMinConnections = int32(2)
	const defaultMaxConnLifetime = time.Hour
	const defaultMaxConnIdleTime = time.Minute * 5
	const defaultHealthCheckPeriod = time.Minute
	const defaultConnectTimeout = time.Second * 5

	dbConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal("Failed to create a config, error: ", err)
	}

	dbConfig.MaxConns = defaultMaxConnections
	dbConfig.MinConns = defaultMinConnections
	dbConfig.MaxConnLifetime = defaultMaxConnLifetime
	dbConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	dbConfig.HealthCheckPeriod = defaultHealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	return dbConfig
}
