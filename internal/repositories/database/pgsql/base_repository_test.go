package pgsql_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/cardwise/cardwise_backend/internal/apperrors"
	"github.com/cardwise/cardwise_backend/internal/repositories/database/pgsql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTx satisfies pgx.Tx so the transaction helpers can be exercised
// without a database.
type stubTx struct {
	commitErr   error
	rollbackErr error
	committed   bool
	rolledBack  bool
}

func (s *stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, errors.New("not implemented") }

func (s *stubTx) Commit(ctx context.Context) error {
	s.committed = true
	return s.commitErr
}

func (s *stubTx) Rollback(ctx context.Context) error {
	s.rolledBack = true
	return s.rollbackErr
}

func (s *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not implemented")
}

func (s *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (s *stubTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (s *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (s *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (s *stubTx) Conn() *pgx.Conn { return nil }

var _ pgx.Tx = (*stubTx)(nil)

func TestBaseRepositoryCommit(t *testing.T) {
	base := &pgsql.BaseRepository{}

	t.Run("success", func(t *testing.T) {
		tx := &stubTx{}
		err := base.Commit(context.Background(), tx)
		assert.NoError(t, err)
		assert.True(t, tx.committed)
	})

	t.Run("failure is wrapped as an internal error", func(t *testing.T) {
		tx := &stubTx{commitErr: assert.AnError}
		err := base.Commit(context.Background(), tx)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestBaseRepositoryRollback(t *testing.T) {
	base := &pgsql.BaseRepository{}

	t.Run("tolerates an already-finished transaction", func(t *testing.T) {
		for _, done := range []error{sql.ErrTxDone, pgx.ErrTxClosed} {
			tx := &stubTx{rollbackErr: done}
			assert.NoError(t, base.Rollback(context.Background(), tx))
			assert.True(t, tx.rolledBack)
		}
	})

	t.Run("reports other rollback failures", func(t *testing.T) {
		tx := &stubTx{rollbackErr: assert.AnError}
		err := base.Rollback(context.Background(), tx)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})
}
