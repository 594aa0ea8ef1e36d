package customer

import (
	"context"
	"strings"
)

// Customer represents a single customer record.
type Customer struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
}

// Repository defines behavior for storing customers.
type Repository interface {
	Append(ctx context.Context, batch []Customer) error
	List(ctx context.Context) ([]Customer, error)
}

// Snapshotter loads and saves the complete customer list.
type Snapshotter interface {
	Load(ctx context.Context) ([]Customer, error)
	Save(ctx context.Context, customers []Customer) error
}

// Less reports whether a sorts before b by last name, then first name,
// ignoring case.
func Less(a, b Customer) bool {
	al, bl := strings.ToLower(a.LastName), strings.ToLower(b.LastName)
	if al != bl {
		return al < bl
	}
	return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName)
}
