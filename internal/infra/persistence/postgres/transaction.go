// Package postgres stores the menu, its variants and the analytics events in PostgreSQL through GORM.
package postgres

import (
	"context"

	"menuboard/internal/domain/repository"
	"menuboard/internal/errors"

	"gorm.io/gorm"
)

// txManager runs a menu mutation inside one PostgreSQL transaction.
type txManager struct {
	db *gorm.DB
}

// NewTransactionManager returns the GORM-backed repository.TransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return txManager{db: db}
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewCategoryRepository() repository.CategoryRepository {
	return NewCategoryRepository(r.tx)
}

func (r txRepositories) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(r.tx)
}

func (r txRepositories) NewAnalyticsRepository() repository.AnalyticsRepository {
	return NewAnalyticsRepository(r.tx)
}

// Execute commits when fn succeeds and rolls back when fn fails or panics; a panic keeps unwinding.
// fn's error comes back unchanged so repository sentinels still match, annotated if the rollback failed too.
func (m txManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		if rbErr := tx.Rollback().Error; rbErr != nil && err != nil {
			err = errors.Wrap(err, "transaction rollback failed: "+rbErr.Error())
		}
	}()

	if err = fn(txRepositories{tx: tx}); err != nil {
		return err
	}

	finished = true

	return errors.Wrap(tx.Commit().Error, "failed to commit transaction")
}
