// Package redis keeps the customer list as a single JSON document in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"customerstore/pkg/customer"
)

// DefaultKey is the key used when none is configured.
const DefaultKey = "customers"

// Snapshotter stores the customer list under one Redis key.
type Snapshotter struct {
	client *redis.Client
	key    string
}

// New creates a Redis snapshotter. An empty key selects DefaultKey.
func New(client *redis.Client, key string) *Snapshotter {
	if key == "" {
		key = DefaultKey
	}
	return &Snapshotter{client: client, key: key}
}

// Load reads the document. A missing key yields an empty list.
func (s *Snapshotter) Load(ctx context.Context) ([]customer.Customer, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []customer.Customer{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.key, err)
	}
	customers, err := customer.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.key, err)
	}
	return customers, nil
}

// Save overwrites the document with customers.
func (s *Snapshotter) Save(ctx context.Context, customers []customer.Customer) error {
	data, err := customer.Marshal(customers)
	if err != nil {
		return fmt.Errorf("encode customers: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", s.key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Snapshotter) Close() error {
	return s.client.Close()
}
