package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db, mock := setupDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO documents`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO documents (collection) VALUES ('featured')`)
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet(), "must commit on success")
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db, mock := setupDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO documents`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectRollback()

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO documents (collection) VALUES ('featured')`)
		require.NoError(t, e)
		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")
	require.NoError(t, mock.ExpectationsWereMet(), "must rollback when fn returns error")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db, mock := setupDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			panic("kaboom")
		})
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginError(t *testing.T) {
	db, mock := setupDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("no conn"))

	called := false
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})
	require.EqualError(t, err, "no conn")
	assert.False(t, called)
}

func TestWithTx_CommitError(t *testing.T) {
	db, mock := setupDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.EqualError(t, err, "commit failed")
}
