package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductAnalyticsModel is the GORM-specific struct for the 'product_analytics' table.
// ProductID carries no foreign key so that events outlive deleted products.
type ProductAnalyticsModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index:idx_product_analytics_action_product,priority:2"`
	ActionType string    `gorm:"type:varchar(16);not null;index:idx_product_analytics_action_product,priority:1"`
	Quantity   *int
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductAnalyticsModel) TableName() string {
	return "product_analytics"
}
