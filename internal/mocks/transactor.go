package mocks

import (
	"context"

	"gorm.io/gorm"
)

// Transactor runs transaction closures directly with a nil handle.
// Repository mocks ignore the handle, so no database is needed.
type Transactor struct {
	Calls int
}

func (t *Transactor) DB(ctx context.Context) *gorm.DB {
	return nil
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	t.Calls++
	return fn(nil)
}
