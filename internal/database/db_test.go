package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T, name string) *DB {
	t.Helper()
	db, err := New(Config{Path: filepath.Join(t.TempDir(), "nested", name+".db"), Name: name})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_CreatesRecordTables(t *testing.T) {
	db := newDB(t, "records")
	require.NoError(t, db.Migrate())
	// Applying twice is harmless.
	require.NoError(t, db.Migrate())

	for _, table := range []string{
		"stockquote", "broker", "broker_client", "investmentcompany",
		"investmentcompany_broker", "investor", "investorstockquote",
	} {
		var name string
		err := db.Conn().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_UnknownNameIsNoop(t *testing.T) {
	db := newDB(t, "scratch")
	require.NoError(t, db.Migrate())

	var count int
	require.NoError(t, db.Conn().QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table'").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	db := newDB(t, "records")
	require.NoError(t, db.Migrate())
	ctx := context.Background()

	boom := errors.New("boom")
	err := WithTransaction(ctx, db.Conn(), func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO investmentcompany (name, position) VALUES ('Acme', 0)"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.Conn().QueryRow("SELECT COUNT(*) FROM investmentcompany").Scan(&count))
	assert.Equal(t, 0, count)

	err = WithTransaction(ctx, db.Conn(), func(tx *sql.Tx) error {
		panic("kaboom")
	})
	assert.ErrorContains(t, err, "panic in transaction")

	require.NoError(t, WithTransaction(ctx, db.Conn(), func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO investmentcompany (name, position) VALUES ('Acme', 0)")
		return err
	}))
	require.NoError(t, db.Conn().QueryRow("SELECT COUNT(*) FROM investmentcompany").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestHealthCheck(t *testing.T) {
	db := newDB(t, "records")
	require.NoError(t, db.HealthCheck(context.Background()))
	require.NoError(t, db.QuickCheck(context.Background()))
	assert.Equal(t, "records", db.Name())
	assert.True(t, filepath.IsAbs(db.Path()))
}

func TestWithTransaction_NilDB(t *testing.T) {
	err := WithTransaction(context.Background(), nil, func(tx *sql.Tx) error { return nil })
	assert.Error(t, err)
}
