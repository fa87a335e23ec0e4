package postgres

import (
	"context"

	"menuboard/internal/domain/entity"
	domainerrors "menuboard/internal/domain/errors"
	"menuboard/internal/domain/repository"
	"menuboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct persists a product row without its variants.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category", "Variants").Create(productM).Error; err != nil {
		return mapProductWriteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product with its variants.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Variants", orderVariants).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// ListProducts returns products ordered by name with their variants.
func (repo *productRepository) ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx).Preload("Variants", orderVariants)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.
		Order(byteOrderName).
		Order("id ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

type productNameRow struct {
	ID   uuid.UUID
	Name string
}

// FindProductNames resolves names for the given IDs in one query.
func (repo *productRepository) FindProductNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []productNameRow
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("id, name").
		Where("id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find product names")
	}

	for _, row := range rows {
		names[row.ID] = row.Name
	}

	return names, nil
}

// UpdateProduct overwrites the product's scalar fields.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"image":       product.Image,
			"type":        product.Type.String(),
			"category_id": product.CategoryID,
		})

	if result.Error != nil {
		return mapProductWriteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product row.
func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// CreateVariants inserts one variant per name, keeping the supplied order in Position.
func (repo *productRepository) CreateVariants(ctx context.Context, productID uuid.UUID, names []string) ([]*entity.ProductVariant, error) {
	if len(names) == 0 {
		return []*entity.ProductVariant{}, nil
	}

	variantModels := make([]*model.ProductVariantModel, 0, len(names))
	for i, name := range names {
		variantModels = append(variantModels, &model.ProductVariantModel{
			Name:      name,
			ProductID: productID,
			Position:  i,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&variantModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product variants")
	}

	variants := make([]*entity.ProductVariant, 0, len(variantModels))
	for _, variantM := range variantModels {
		variants = append(variants, toVariantDomain(variantM))
	}

	return variants, nil
}

// DeleteVariantsByProduct removes every variant of the product.
func (repo *productRepository) DeleteVariantsByProduct(ctx context.Context, productID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductVariantModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product variants")
	}

	return nil
}

func orderVariants(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC").Order("id ASC")
}

func mapProductWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateProduct
	case isForeignKeyConstraintViolation(err):
		return repository.ErrProductCategoryMissing
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("product violates a check constraint")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel and its variants to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	variants := make([]*entity.ProductVariant, 0, len(data.Variants))
	for _, variantM := range data.Variants {
		variants = append(variants, toVariantDomain(variantM))
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Type:        entity.ProductType(data.Type),
		CategoryID:  data.CategoryID,
		Variants:    variants,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel without variants.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Type:        data.Type.String(),
		CategoryID:  data.CategoryID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toVariantDomain converts a GORM ProductVariantModel to a domain ProductVariant entity.
func toVariantDomain(data *model.ProductVariantModel) *entity.ProductVariant {
	return &entity.ProductVariant{
		ID:        data.ID,
		Name:      data.Name,
		ProductID: data.ProductID,
	}
}
