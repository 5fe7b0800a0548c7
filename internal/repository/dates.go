// Package repository persists the record collections in the relational store.
//
// Each repository replaces its tables wholesale inside one transaction on
// Store and returns the rows in their stored order on Retrieve. Association
// lists live in ordered link tables rather than embedded object graphs.
// Every failure is returned as a *DatabaseError.
package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// dates are stored as RFC 3339 text so nanoseconds and offsets survive.
func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored date %q: %w", s, err)
	}
	return t, nil
}

func parseNullTime(s sql.NullString) (time.Time, error) {
	if !s.Valid || s.String == "" {
		return time.Time{}, nil
	}
	return parseTime(s.String)
}
