package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/example/products-slider/internal/query"
)

// PostgresProductQuery runs descriptors against the shop database.
type PostgresProductQuery struct {
	db          *sql.DB
	tablePrefix string
}

func NewPostgresProductQuery(db *sql.DB, tablePrefix string) *PostgresProductQuery {
	if tablePrefix == "" {
		tablePrefix = DefaultTablePrefix
	}
	return &PostgresProductQuery{db: db, tablePrefix: tablePrefix}
}

// Execute returns the ids of the products matching d, in query order.
func (q *PostgresProductQuery) Execute(ctx context.Context, d *query.Descriptor) ([]int, error) {
	stmt, args := BuildSQL(d, q.tablePrefix)

	rows, err := q.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, int(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return ids, nil
}

// ConnectPostgres opens and pings a PostgreSQL connection pool.
func ConnectPostgres(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
