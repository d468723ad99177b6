package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestIsDuplicateKeyErr(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'icu-2024-03-01' for key 'uq_census_department_date'"}
	if !isDuplicateKeyErr(dup) {
		t.Fatal("1062 not classified as duplicate")
	}
	if !isDuplicateKeyErr(fmt.Errorf("insert failed: %w", dup)) {
		t.Fatal("wrapped 1062 not classified as duplicate")
	}

	other := &mysql.MySQLError{Number: 1452, Message: "foreign key constraint fails"}
	if isDuplicateKeyErr(other) {
		t.Fatal("non-duplicate MySQL error classified as duplicate")
	}
	if isDuplicateKeyErr(errors.New("connection refused")) {
		t.Fatal("plain error classified as duplicate")
	}
}

func TestRepeatPlaceholder(t *testing.T) {
	if got := repeatPlaceholder(0); got != "" {
		t.Errorf("repeatPlaceholder(0) = %q", got)
	}
	if got := repeatPlaceholder(2); got != ", ?, ?" {
		t.Errorf("repeatPlaceholder(2) = %q", got)
	}
}
