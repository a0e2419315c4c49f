package repository

import (
	"context"

	"github.com/uptrace/bun"

	"backend/school-platform/app/internal/runtime"
)

// TxRepository groups multiple writes into one database transaction.
// Callers must Rollback on any failure path after Begin.
type TxRepository interface {
	Begin(ctx context.Context) (bun.Tx, error)
	Commit(tx bun.Tx) error
	Rollback(tx bun.Tx) error
}

type DefaultTxRepository struct {
	res runtime.Resource
}

func NewTxRepository(res runtime.Resource) TxRepository {
	return &DefaultTxRepository{res: res}
}

func (r DefaultTxRepository) Begin(ctx context.Context) (bun.Tx, error) {
	return r.res.DB.BeginTx(ctx, nil)
}

func (r DefaultTxRepository) Commit(tx bun.Tx) error {
	return tx.Commit()
}

func (r DefaultTxRepository) Rollback(tx bun.Tx) error {
	return tx.Rollback()
}
