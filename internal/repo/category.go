package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/marcelly-ramos/projeto-backend/internal/models"
	"github.com/marcelly-ramos/projeto-backend/internal/query"
)

func categoryFilter(q query.CategoryQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.UseInMenu != nil {
			db = db.Where("use_in_menu = ?", *q.UseInMenu)
		}
		return db
	}
}

func (r *GormRepo) ListCategories(ctx context.Context, q query.CategoryQuery) (int64, []models.Category, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Category{}).Scopes(categoryFilter(q)).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	tx := r.DB.WithContext(ctx).Model(&models.Category{}).Scopes(categoryFilter(q)).Order("id ASC")
	if q.Page.Bounded() {
		tx = tx.Offset(q.Page.Offset()).Limit(q.Page.Limit)
	}

	items := []models.Category{}
	if err := tx.Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) CountCategories(ctx context.Context, ids []uint) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Category{}).Where("id IN ?", ids).Count(&n).Error
	return n, err
}

func (r *GormRepo) CreateCategory(ctx context.Context, c *models.Category) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) UpdateCategory(ctx context.Context, id uint, updates map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(tx *GormRepo) error {
		if err := tx.DB.WithContext(ctx).Where("category_id = ?", id).Delete(&models.ProductCategory{}).Error; err != nil {
			return err
		}
		res := tx.DB.WithContext(ctx).Delete(&models.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
