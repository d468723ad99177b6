package services

import "errors"

var (
	// ErrDuplicateEntry means a census row already exists for the
	// (department, date) pair. Raised from the unique-key violation,
	// never from a read-then-write check.
	ErrDuplicateEntry = errors.New("a census entry already exists for this department and date")

	// ErrEntryLocked means the target entry is finalized and refuses
	// further edits.
	ErrEntryLocked = errors.New("census entry is locked and cannot be modified")

	ErrEntryNotFound     = errors.New("census entry not found")
	ErrUnknownDepartment = errors.New("unknown department")
)
