// Package repository holds the gorm-backed implementations of the domain
// repository interfaces. A shared Transactor lets services compose several
// repository calls into one database transaction; repositories pick the
// transaction handle out of the context when one is active.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vitacare/clinicapi/internal/domain"
)

type txKey struct{}

type Transactor struct {
	db *gorm.DB
}

var _ domain.Transactor = (*Transactor)(nil)

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// InTx opens a transaction and runs fn with the tx handle stashed in the
// context. Nested calls reuse the outer transaction.
func (t *Transactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the active transaction from the context, or the base handle.
func conn(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return base.WithContext(ctx)
}
