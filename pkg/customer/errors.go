package customer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidRequest indicates the batch carried no customers.
var ErrInvalidRequest = errors.New("request must contain at least one customer")

var (
	ErrEmptyName      = errors.New("first and last name must not be empty")
	ErrAgeNotPositive = errors.New("age must be positive")
	ErrAgeNotOver18   = errors.New("age must be over 18")
	ErrIDNotPositive  = errors.New("id must be positive")
	ErrDuplicateID    = errors.New("id already exists")
)

// RecordError is the reason a single customer of a batch was rejected.
type RecordError struct {
	ID  int
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("customer %d: %s", e.ID, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// ValidationError collects the rejected records of one batch.
type ValidationError struct {
	errs *multierror.Error
}

// Add records a rejected customer.
func (e *ValidationError) Add(id int, err error) {
	e.errs = multierror.Append(e.errs, &RecordError{ID: id, Err: err})
	e.errs.ErrorFormat = joinLines
}

// ErrorOrNil returns nil when no record was rejected.
func (e *ValidationError) ErrorOrNil() error {
	if e == nil || e.errs.ErrorOrNil() == nil {
		return nil
	}
	return e
}

// Messages returns one message per rejected record, in batch order.
func (e *ValidationError) Messages() []string {
	if e.errs == nil {
		return nil
	}
	out := make([]string, 0, len(e.errs.Errors))
	for _, err := range e.errs.Errors {
		out = append(out, err.Error())
	}
	return out
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), "\n")
}

func (e *ValidationError) Unwrap() error {
	if e.errs == nil {
		return nil
	}
	return e.errs
}

func joinLines(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// Validate checks c against the customer invariants. known holds the ids
// already taken. The first failing check wins.
func Validate(c Customer, known map[int]struct{}) error {
	if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" {
		return ErrEmptyName
	}
	if c.Age <= 0 {
		return ErrAgeNotPositive
	}
	if c.Age <= 18 {
		return ErrAgeNotOver18
	}
	if c.ID <= 0 {
		return ErrIDNotPositive
	}
	if _, ok := known[c.ID]; ok {
		return ErrDuplicateID
	}
	return nil
}
