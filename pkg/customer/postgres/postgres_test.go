package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"customerstore/pkg/customer"
)

const insertQuery = "INSERT INTO customers (position,id,first_name,last_name,age) VALUES ($1,$2,$3,$4,$5)"

func newMock(t *testing.T) (*Snapshotter, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS customers").WillReturnResult(sqlmock.NewResult(0, 0))
	s, err := New(context.Background(), db)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return s, mock
}

func TestSave(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM customers").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
		WithArgs(0, 4, "Amy", "Adams", 21).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
		WithArgs(1, 3, "Zoe", "Adams", 20).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Save(context.Background(), []customer.Customer{
		{ID: 4, FirstName: "Amy", LastName: "Adams", Age: 21},
		{ID: 3, FirstName: "Zoe", LastName: "Adams", Age: 20},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveRollsBackOnError(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM customers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(insertQuery)).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := s.Save(context.Background(), []customer.Customer{{ID: 1, FirstName: "Ann", LastName: "Lee", Age: 30}})
	if err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLoad(t *testing.T) {
	s, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "age"}).
		AddRow(4, "Amy", "Adams", 21).
		AddRow(1, "Ann", "Lee", 30)
	mock.ExpectQuery("SELECT id,first_name,last_name,age FROM customers ORDER BY position").WillReturnRows(rows)

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []customer.Customer{
		{ID: 4, FirstName: "Amy", LastName: "Adams", Age: 21},
		{ID: 1, FirstName: "Ann", LastName: "Lee", Age: 30},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
