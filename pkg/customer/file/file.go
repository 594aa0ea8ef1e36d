// Package file persists the customer list as a JSON file.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"customerstore/pkg/customer"
)

// Snapshotter reads and writes the customer list to a single JSON file.
type Snapshotter struct {
	path string
}

// New returns a Snapshotter for the file at path. The file need not exist.
func New(path string) *Snapshotter {
	return &Snapshotter{path: path}
}

// Path returns the storage file location.
func (s *Snapshotter) Path() string { return s.path }

// Load reads the storage file. A missing file yields an empty list.
func (s *Snapshotter) Load(ctx context.Context) ([]customer.Customer, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []customer.Customer{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	customers, err := customer.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return customers, nil
}

// Save overwrites the storage file with customers. The data is written to a
// temporary file first and renamed into place.
func (s *Snapshotter) Save(ctx context.Context, customers []customer.Customer) error {
	data, err := customer.Marshal(customers)
	if err != nil {
		return fmt.Errorf("encode customers: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename to %s: %w", s.path, err)
	}
	return nil
}
