package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"customerstore/pkg/customer"
)

const schema = `CREATE TABLE IF NOT EXISTS customers (
	position   INT PRIMARY KEY,
	id         INT NOT NULL,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	age        INT NOT NULL
)`

// Snapshotter persists the customer list in PostgreSQL. Rows keep the list
// order in the position column.
type Snapshotter struct {
	db *sql.DB
}

// Open connects to the database at dsn and ensures the customers table exists.
func Open(ctx context.Context, dsn string) (*Snapshotter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	s, err := New(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New creates a PostgreSQL snapshotter on an open database.
func New(ctx context.Context, db *sql.DB) (*Snapshotter, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}
	return &Snapshotter{db: db}, nil
}

// Load fetches all customers in stored order.
func (s *Snapshotter) Load(ctx context.Context) ([]customer.Customer, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id,first_name,last_name,age FROM customers ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []customer.Customer{}
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Age); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Save replaces every stored row with customers in one transaction.
func (s *Snapshotter) Save(ctx context.Context, customers []customer.Customer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM customers"); err != nil {
		return fmt.Errorf("clear customers: %w", err)
	}
	for i, c := range customers {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO customers (position,id,first_name,last_name,age) VALUES ($1,$2,$3,$4,$5)",
			i, c.ID, c.FirstName, c.LastName, c.Age)
		if err != nil {
			return fmt.Errorf("insert customer %d: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

// Close closes the database.
func (s *Snapshotter) Close() error {
	return s.db.Close()
}
