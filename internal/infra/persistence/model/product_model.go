package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Name is unique per category.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	Name        string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_products_category_name,priority:2"`
	Description *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Image       *string         `gorm:"type:text"`
	Type        string          `gorm:"type:varchar(16);not null"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_products_category_name,priority:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel         `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Variants []*ProductVariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// ProductVariantModel is the GORM-specific struct for the 'product_variants' table.
// Position keeps the order the variants were supplied in.
type ProductVariantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(255);not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *ProductVariantModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
