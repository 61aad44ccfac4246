package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor hands out database handles bound to a request context.
type Transactor interface {
	// DB returns a handle for single statements outside a transaction.
	DB(ctx context.Context) *gorm.DB
	// WithinTransaction runs fn in one transaction, committing when fn returns nil.
	WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
