package tr

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier — общее подмножество pgxpool.Pool и pgx.Tx, которым пользуются репозитории.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB — пул соединений, умеющий открывать транзакции.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type txKey struct{}

// WithTx кладет транзакцию в контекст.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}

// Executor возвращает транзакцию из контекста, а если ее нет, то сам пул.
func Executor(ctx context.Context, db Querier) Querier {
	if tx, err := TxFromCtx(ctx); err == nil {
		return tx
	}
	return db
}

// Manager выполняет функцию в транзакции PostgreSQL.
type Manager struct {
	db     DB
	logger logger.Logger
}

func NewManager(db DB, logger logger.Logger) *Manager {
	return &Manager{db: db, logger: logger}
}

// Do открывает транзакцию, если в контексте ее еще нет, и фиксирует ее,
// когда fn завершилась без ошибки. Вложенные вызовы используют внешнюю транзакцию.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	const op = "Manager.Do"

	if _, txErr := TxFromCtx(ctx); txErr == nil {
		return fn(ctx)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, m.db)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				m.logger.Warnf("Rollback failed: %v", e.Wrap(op, rbErr))
			}
		}
	}()

	pgxTx, ok := tx.Transaction().(pgx.Tx)
	if !ok {
		return e.Wrap(op, e.ErrTransactionNotFound)
	}

	if err = fn(WithTx(ctx, pgxTx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}
