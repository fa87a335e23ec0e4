// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductType decides whether a product is ordered as-is or through its variants.
type ProductType string

const (
	// ProductTypeSingle products have no variants.
	ProductTypeSingle ProductType = "single"
	// ProductTypeMultiple products must carry at least one variant.
	ProductTypeMultiple ProductType = "multiple"
)

// String returns the string representation of the ProductType.
func (t ProductType) String() string {
	return string(t)
}

// IsValid checks if the ProductType is a valid value.
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeSingle, ProductTypeMultiple:
		return true
	default:
		return false
	}
}

// Product is a menu item belonging to exactly one category.
type Product struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Price       decimal.Decimal   `json:"price"`
	Image       *string           `json:"image,omitempty"`
	Type        ProductType       `json:"type"`
	CategoryID  uuid.UUID         `json:"categoryId"`
	Variants    []*ProductVariant `json:"variants"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ProductVariant is a named option of a multiple-type product.
type ProductVariant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ProductID uuid.UUID `json:"productId"`
}

// VariantNames returns the variant names in stored order.
func (p *Product) VariantNames() []string {
	names := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		names = append(names, v.Name)
	}

	return names
}

// HasVariant reports whether the product offers a variant with the given name.
func (p *Product) HasVariant(name string) bool {
	for _, v := range p.Variants {
		if v.Name == name {
			return true
		}
	}

	return false
}
