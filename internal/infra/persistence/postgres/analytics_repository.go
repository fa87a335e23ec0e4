package postgres

import (
	"context"
	"time"

	"menuboard/internal/domain/entity"
	domainerrors "menuboard/internal/domain/errors"
	"menuboard/internal/domain/repository"
	"menuboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// insertEventIfProductExists appends an event only when the product row is present,
// so the existence check and the insert are one statement.
const insertEventIfProductExists = `INSERT INTO product_analytics (id, product_id, action_type, quantity, created_at)
SELECT ?::uuid, ?::uuid, ?, ?::integer, ?::timestamptz
WHERE EXISTS (SELECT 1 FROM products WHERE id = ?::uuid)`

// analyticsRepository implements the repository.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// CreateEvent appends an event when its product exists.
func (repo *analyticsRepository) CreateEvent(ctx context.Context, event *entity.AnalyticsEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	result := repo.db.WithContext(ctx).Exec(insertEventIfProductExists,
		event.ID,
		event.ProductID,
		event.ActionType.String(),
		event.Quantity,
		event.CreatedAt,
		event.ProductID,
	)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record analytics event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAnalyticsProductNotFound
	}

	return nil
}

type productActionTotalRow struct {
	ProductID uuid.UUID
	Total     int64
}

// TopProductsByCount ranks products by number of events of the action type.
func (repo *analyticsRepository) TopProductsByCount(
	ctx context.Context,
	action entity.ActionType,
	window entity.AnalyticsWindow,
	limit int,
) ([]entity.ProductActionTotal, error) {
	return repo.topProducts(ctx, "COUNT(*)", action, window, limit)
}

// TopProductsByQuantity ranks products by summed quantity of the action type.
func (repo *analyticsRepository) TopProductsByQuantity(
	ctx context.Context,
	action entity.ActionType,
	window entity.AnalyticsWindow,
	limit int,
) ([]entity.ProductActionTotal, error) {
	return repo.topProducts(ctx, "COALESCE(SUM(quantity), 0)", action, window, limit)
}

func (repo *analyticsRepository) topProducts(
	ctx context.Context,
	aggregate string,
	action entity.ActionType,
	window entity.AnalyticsWindow,
	limit int,
) ([]entity.ProductActionTotal, error) {
	var rows []productActionTotalRow

	query := repo.db.WithContext(ctx).
		Model(&model.ProductAnalyticsModel{}).
		Select("product_id, "+aggregate+" AS total").
		Where("action_type = ?", action.String())

	if window.Since != nil {
		query = query.Where("created_at >= ?", *window.Since)
	}
	if window.Until != nil {
		query = query.Where("created_at <= ?", *window.Until)
	}

	if err := query.
		Group("product_id").
		Order("total DESC").
		Order("product_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to rank %s events", action)
	}

	totals := make([]entity.ProductActionTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, entity.ProductActionTotal{
			ProductID: row.ProductID,
			Total:     row.Total,
		})
	}

	return totals, nil
}
