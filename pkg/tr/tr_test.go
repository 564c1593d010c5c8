package tr

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_DoCommits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE categories").WithArgs("x").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	m := NewManager(mock, logger.NewNop())
	err = m.Do(context.Background(), func(ctx context.Context) error {
		_, err := TxFromCtx(ctx)
		require.NoError(t, err)
		_, err = Executor(ctx, mock).Exec(ctx, "UPDATE categories SET name = $1", "x")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_DoRollsBackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	m := NewManager(mock, logger.NewNop())
	err = m.Do(context.Background(), func(context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_NestedUsesOuterTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewManager(mock, logger.NewNop())
	err = m.Do(context.Background(), func(ctx context.Context) error {
		return m.Do(ctx, func(context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecutor_FallsBackToPool(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	_, err = TxFromCtx(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Querier(mock), Executor(context.Background(), mock))
}
