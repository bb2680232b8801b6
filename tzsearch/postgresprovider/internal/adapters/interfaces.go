package adapters

import "context"

// DBAdapter defines the interface for database operations needed by the rules provider.
// Rules data is owned and maintained externally; the provider only reads it.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}
