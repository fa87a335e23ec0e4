package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"menuboard/internal/domain/entity"
	"menuboard/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepository_CreateEvent(t *testing.T) {
	ctx := context.Background()
	quantity := 3

	t.Run("inserts when the product exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAnalyticsRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO product_analytics`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		event := &entity.AnalyticsEvent{
			ProductID:  uuid.New(),
			ActionType: entity.ActionTypeAddToCart,
			Quantity:   &quantity,
		}
		require.NoError(t, repo.CreateEvent(ctx, event))
		assert.NotEqual(t, uuid.Nil, event.ID)
		assert.False(t, event.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row written means unknown product", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAnalyticsRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`WHERE EXISTS (SELECT 1 FROM products WHERE id = $6::uuid)`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.CreateEvent(ctx, &entity.AnalyticsEvent{ProductID: uuid.New(), ActionType: entity.ActionTypeView})
		assert.ErrorIs(t, err, repository.ErrAnalyticsProductNotFound)
	})
}

func TestAnalyticsRepository_TopProducts(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	t.Run("by count", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAnalyticsRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT product_id, COUNT(*) AS total FROM "product_analytics" WHERE action_type = $1 GROUP BY`)).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "total"}).
				AddRow(a.String(), 2).
				AddRow(b.String(), 1))

		totals, err := repo.TopProductsByCount(ctx, entity.ActionTypeView, entity.AnalyticsWindow{}, 5)
		require.NoError(t, err)
		assert.Equal(t, []entity.ProductActionTotal{{ProductID: a, Total: 2}, {ProductID: b, Total: 1}}, totals)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by quantity within a window", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAnalyticsRepository(db)

		since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		until := since.Add(24 * time.Hour)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT product_id, COALESCE(SUM(quantity), 0) AS total FROM "product_analytics" WHERE action_type = $1 AND created_at >= $2 AND created_at <= $3`)).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "total"}).AddRow(a.String(), 6))

		totals, err := repo.TopProductsByQuantity(ctx, entity.ActionTypeAddToCart, entity.AnalyticsWindow{Since: &since, Until: &until}, 5)
		require.NoError(t, err)
		require.Len(t, totals, 1)
		assert.Equal(t, int64(6), totals[0].Total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
