// Package database loads generated CSVs into PostgreSQL, MySQL or SQLite
// through database/sql, building the batched inserts with squirrel.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// validIdentifier validates table/column names before they are interpolated
// into statements.
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type Adapter struct {
	db       *sql.DB
	qb       squirrel.StatementBuilderType
	provider string
}

// Open connects to the given provider and verifies the connection.
func Open(ctx context.Context, provider, url string) (*Adapter, error) {
	var driverName string
	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	switch provider {
	case "postgresql", "postgres":
		driverName = "pgx"
		qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	case "mysql":
		driverName = "mysql"
	case "sqlite", "sqlite3":
		driverName = "sqlite3"
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}

	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Adapter{db: db, qb: qb, provider: provider}, nil
}

func (a *Adapter) Close() error {
	return a.db.Close()
}

// InsertBatch inserts rows into table as one multi-row statement. Empty
// batches are a no-op. NULL cells are passed as nil arguments.
func (a *Adapter) InsertBatch(ctx context.Context, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	if !validIdentifier.MatchString(table) {
		return fmt.Errorf("invalid table name: %s", table)
	}
	for _, col := range columns {
		if !validIdentifier.MatchString(col) {
			return fmt.Errorf("invalid column name: %s", col)
		}
	}

	builder := a.qb.Insert(table).Columns(columns...)
	for _, row := range rows {
		builder = builder.Values(row...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", table, err)
	}
	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// Truncate empties a table before loading. MySQL and SQLite fall back to
// DELETE so foreign keys do not block the load.
func (a *Adapter) Truncate(ctx context.Context, table string) error {
	if !validIdentifier.MatchString(table) {
		return fmt.Errorf("invalid table name: %s", table)
	}

	var query string
	switch a.provider {
	case "postgresql", "postgres":
		query = fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
	default:
		query = fmt.Sprintf("DELETE FROM %s", table)
	}
	if _, err := a.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", table, err)
	}
	return nil
}
