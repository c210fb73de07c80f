package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"shopassist/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresRepository reads the product catalog from a PostgreSQL table.
// It implements catalog.Source.
type PostgresRepository struct {
	db    *sqlx.DB
	table string
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn, table string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return NewPostgresRepositoryFromDB(db, table), nil
}

// NewPostgresRepositoryFromDB wraps an existing connection
func NewPostgresRepositoryFromDB(db *sqlx.DB, table string) *PostgresRepository {
	return &PostgresRepository{db: db, table: table}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// Name implements catalog.Source
func (r *PostgresRepository) Name() string {
	return "postgres:" + r.table
}

// Load implements catalog.Source. Columns are passed through untouched;
// role detection happens in the catalog index.
func (r *PostgresRepository) Load(ctx context.Context) (*model.Table, error) {
	query := fmt.Sprintf("SELECT * FROM %s", pq.QuoteIdentifier(r.table))

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog columns: %w", err)
	}

	table := &model.Table{Columns: columns}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		table.Records = append(table.Records, StringifyRow(values))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog rows: %w", err)
	}

	return table, nil
}

// StringifyRow converts driver values to catalog cells; NULL becomes ""
func StringifyRow(values []interface{}) []string {
	record := make([]string, len(values))
	for i, v := range values {
		record[i] = stringifyValue(v)
	}
	return record
}

func stringifyValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
