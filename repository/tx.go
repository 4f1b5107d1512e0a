package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a closure with cart, product and order repositories all
// bound to one store transaction. Returning an error from the closure rolls
// everything back; checkout relies on this for its all-or-nothing guarantee.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(carts CartRepository, products ProductRepository, orders OrderRepository) error) error
}

// GormTxManager implements TxManager over a gorm connection.
type GormTxManager struct {
	db *gorm.DB
}

func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

func (m *GormTxManager) RunInTx(ctx context.Context, fn func(carts CartRepository, products ProductRepository, orders OrderRepository) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormCartRepository(tx), NewGormProductRepository(tx), NewGormOrderRepository(tx))
	})
}
