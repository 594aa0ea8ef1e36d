// Package store implements the in-memory, name-ordered customer list.
package store

import (
	"context"
	"slices"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"customerstore/pkg/customer"
	"customerstore/pkg/logger"
	"customerstore/pkg/otel"
)

// Store keeps customers sorted by last name, then first name, and writes the
// full list to its Snapshotter after each append.
type Store struct {
	mu        sync.RWMutex
	customers []customer.Customer
	ids       map[int]struct{}

	snap customer.Snapshotter
	log  *logger.Logger
}

var _ customer.Repository = (*Store)(nil)

// New creates a store seeded from snap. A failed load is logged and the store
// starts empty.
func New(ctx context.Context, snap customer.Snapshotter, log *logger.Logger) *Store {
	s := &Store{
		customers: []customer.Customer{},
		ids:       make(map[int]struct{}),
		snap:      snap,
		log:       log,
	}

	loaded, err := snap.Load(ctx)
	if err != nil {
		log.Error(ctx, "load customers", "error", err)
		return s
	}

	sort.SliceStable(loaded, func(i, j int) bool { return customer.Less(loaded[i], loaded[j]) })
	for _, c := range loaded {
		s.ids[c.ID] = struct{}{}
	}
	s.customers = append(s.customers, loaded...)
	log.Info(ctx, "customers loaded", "count", len(s.customers))

	return s
}

// Append validates and inserts batch. Records failing validation are skipped
// and reported together in a *customer.ValidationError; the remaining records
// are still inserted and saved.
func (s *Store) Append(ctx context.Context, batch []customer.Customer) error {
	if len(batch) == 0 {
		return customer.ErrInvalidRequest
	}

	ctx, span := otel.AddSpan(ctx, "store.Append", attribute.Int("batch.size", len(batch)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var verr customer.ValidationError
	inserted := 0
	for _, c := range batch {
		if err := customer.Validate(c, s.ids); err != nil {
			verr.Add(c.ID, err)
			continue
		}
		s.insert(c)
		inserted++
	}

	if inserted > 0 {
		if err := s.snap.Save(ctx, s.customers); err != nil {
			s.log.Error(ctx, "save customers", "error", err)
		}
	}
	s.log.Info(ctx, "customers appended", "inserted", inserted, "rejected", len(batch)-inserted)

	return verr.ErrorOrNil()
}

// List returns a copy of all customers in order.
func (s *Store) List(ctx context.Context) ([]customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.customers), nil
}

// insert places c before the first customer it sorts less than.
func (s *Store) insert(c customer.Customer) {
	i := sort.Search(len(s.customers), func(i int) bool {
		return customer.Less(c, s.customers[i])
	})
	s.customers = slices.Insert(s.customers, i, c)
	s.ids[c.ID] = struct{}{}
}
