package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marcelly-ramos/projeto-backend/internal/models"
	"github.com/marcelly-ramos/projeto-backend/internal/query"
)

func productFilter(q query.ProductQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.Match != "" {
			pattern := containsPattern(q.Match)
			db = db.Where(`(LOWER(products.name) LIKE ? ESCAPE '\' OR LOWER(products.description) LIKE ? ESCAPE '\')`, pattern, pattern)
		}
		if len(q.CategoryIDs) > 0 {
			linked := db.Session(&gorm.Session{NewDB: true}).
				Model(&models.ProductCategory{}).
				Select("product_id").
				Where("category_id IN ?", q.CategoryIDs)
			db = db.Where("products.id IN (?)", linked)
		}
		if q.Price != nil {
			db = db.Where("products.price BETWEEN ? AND ?", q.Price.Min, q.Price.Max)
		}
		return db
	}
}

func byID(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }

func categoriesByID(db *gorm.DB) *gorm.DB { return db.Order("categories.id ASC") }

func productPreloads(fields query.Fields) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if fields.Has("images") {
			db = db.Preload("Images", byID)
		}
		if fields.Has("options") {
			db = db.Preload("Options", byID)
		}
		if fields.Has("categories") {
			db = db.Preload("Categories", categoriesByID)
		}
		return db
	}
}

// ListProducts returns the filtered match count and the requested page.
func (r *GormRepo) ListProducts(ctx context.Context, q query.ProductQuery) (int64, []models.Product, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Scopes(productFilter(q)).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	tx := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Scopes(productFilter(q), productPreloads(q.Fields)).
		Order("products.id ASC")
	if q.Page.Bounded() {
		tx = tx.Offset(q.Page.Offset()).Limit(q.Page.Limit)
	}

	items := []models.Product{}
	if err := tx.Find(&items).Error; err != nil {
		return 0, nil, err
	}
	for i := range items {
		items[i].EnsureCollections()
	}
	return total, items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).
		Preload("Images", byID).
		Preload("Options", byID).
		Preload("Categories", categoriesByID).
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	product.EnsureCollections()
	return &product, nil
}

// LockProduct loads the bare product row and, on PostgreSQL, holds its row
// lock until the surrounding transaction ends.
func (r *GormRepo) LockProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.forUpdate(r.DB.WithContext(ctx)).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *GormRepo) UpdateProduct(ctx context.Context, id uint, updates map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteProduct removes the product together with its images, options and
// category links.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(tx *GormRepo) error {
		db := tx.DB.WithContext(ctx)
		for _, child := range []any{&models.ProductImage{}, &models.ProductOption{}, &models.ProductCategory{}} {
			if err := db.Where("product_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		res := db.Delete(&models.Product{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
