package repo

import (
	"context"
	"slices"

	"github.com/marcelly-ramos/projeto-backend/internal/models"
)

func (r *GormRepo) CategoryIDs(ctx context.Context, productID uint) ([]uint, error) {
	ids := []uint{}
	err := r.DB.WithContext(ctx).
		Model(&models.ProductCategory{}).
		Where("product_id = ?", productID).
		Order("category_id ASC").
		Pluck("category_id", &ids).Error
	return ids, err
}

// ReplaceProductCategories makes the product's category links equal to ids,
// touching only the links that differ.
func (r *GormRepo) ReplaceProductCategories(ctx context.Context, productID uint, ids []uint) error {
	current, err := r.CategoryIDs(ctx, productID)
	if err != nil {
		return err
	}

	add, remove := diffIDs(current, ids)
	if len(remove) > 0 {
		if err := r.DB.WithContext(ctx).
			Where("product_id = ? AND category_id IN ?", productID, remove).
			Delete(&models.ProductCategory{}).Error; err != nil {
			return err
		}
	}
	if len(add) > 0 {
		links := make([]models.ProductCategory, 0, len(add))
		for _, id := range add {
			links = append(links, models.ProductCategory{ProductID: productID, CategoryID: id})
		}
		if err := r.DB.WithContext(ctx).Create(&links).Error; err != nil {
			return err
		}
	}
	return nil
}

func diffIDs(current, want []uint) (add, remove []uint) {
	seen := make(map[uint]struct{}, len(want))
	for _, id := range want {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if !slices.Contains(current, id) {
			add = append(add, id)
		}
	}
	for _, id := range current {
		if _, keep := seen[id]; !keep {
			remove = append(remove, id)
		}
	}
	return add, remove
}

func (r *GormRepo) CreateImage(ctx context.Context, img *models.ProductImage) error {
	return r.DB.WithContext(ctx).Create(img).Error
}

func (r *GormRepo) UpdateImage(ctx context.Context, productID, id uint, updates map[string]any) error {
	return r.updateChild(ctx, &models.ProductImage{}, productID, id, updates)
}

func (r *GormRepo) DeleteImage(ctx context.Context, productID, id uint) error {
	return r.deleteChild(ctx, &models.ProductImage{}, productID, id)
}

func (r *GormRepo) CreateOption(ctx context.Context, opt *models.ProductOption) error {
	return r.DB.WithContext(ctx).Create(opt).Error
}

func (r *GormRepo) UpdateOption(ctx context.Context, productID, id uint, updates map[string]any) error {
	return r.updateChild(ctx, &models.ProductOption{}, productID, id, updates)
}

func (r *GormRepo) DeleteOption(ctx context.Context, productID, id uint) error {
	return r.deleteChild(ctx, &models.ProductOption{}, productID, id)
}

// Child rows are always addressed through their owning product. A miss is
// not an error.
func (r *GormRepo) updateChild(ctx context.Context, model any, productID, id uint, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Model(model).
		Where("id = ? AND product_id = ?", id, productID).
		Updates(updates).Error
}

func (r *GormRepo) deleteChild(ctx context.Context, model any, productID, id uint) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND product_id = ?", id, productID).
		Delete(model).Error
}
