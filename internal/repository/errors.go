package repository

import (
	"errors"
	"fmt"
)

// ErrDatabase is matched by every error returned from this package.
var ErrDatabase = errors.New("database error")

// DatabaseError wraps a relational store failure with the operation and table
// it happened on.
type DatabaseError struct {
	Op    string
	Table string
	Err   error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDatabase) match any DatabaseError.
func (e *DatabaseError) Is(target error) bool { return target == ErrDatabase }

func dbError(op, table string, err error) error {
	return &DatabaseError{Op: op, Table: table, Err: err}
}
