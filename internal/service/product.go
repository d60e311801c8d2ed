package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/marcelly-ramos/projeto-backend/internal/events"
	"github.com/marcelly-ramos/projeto-backend/internal/logging"
	"github.com/marcelly-ramos/projeto-backend/internal/middleware/auth"
	"github.com/marcelly-ramos/projeto-backend/internal/models"
	"github.com/marcelly-ramos/projeto-backend/internal/query"
	"github.com/marcelly-ramos/projeto-backend/internal/repo"
	"github.com/marcelly-ramos/projeto-backend/internal/transport"
)

type ProductService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

type productPlan struct {
	images  []ChildOp[models.ProductImage]
	options []ChildOp[models.ProductOption]
}

func (s *ProductService) List(ctx context.Context, q query.ProductQuery) (int64, []models.Product, error) {
	return s.Repo.ListProducts(ctx, q)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, storeErr("get product", err)
	}
	return p, nil
}

// Create inserts the product and all of its children in one transaction
// and returns it as stored.
func (s *ProductService) Create(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	plan, err := planProduct(req)
	if err != nil {
		return nil, err
	}

	var created *models.Product
	err = s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		p := models.Product{
			Enabled:           *req.Enabled,
			Name:              req.Name,
			Slug:              req.Slug,
			Stock:             *req.Stock,
			Description:       req.Description,
			Price:             *req.Price,
			PriceWithDiscount: *req.PriceWithDiscount,
		}
		if err := tx.CreateProduct(ctx, &p); err != nil {
			return storeErr("create product", err)
		}
		if err := reconcile(ctx, tx, p.ID, req.CategoryIDs, plan); err != nil {
			return err
		}
		reloaded, err := tx.GetProduct(ctx, p.ID)
		if err != nil {
			return storeErr("reload product", err)
		}
		created = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.ProductCreated, created)
	return created, nil
}

// Update overwrites the product columns and converges its children to the
// request. The product row stays locked until the transaction ends.
func (s *ProductService) Update(ctx context.Context, id uint, req transport.ProductRequest) error {
	plan, err := planProduct(req)
	if err != nil {
		return err
	}

	var updated *models.Product
	err = s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.LockProduct(ctx, id); err != nil {
			return storeErr("lock product", err)
		}
		err := tx.UpdateProduct(ctx, id, map[string]any{
			"enabled":             *req.Enabled,
			"name":                req.Name,
			"slug":                req.Slug,
			"stock":               *req.Stock,
			"description":         req.Description,
			"price":               *req.Price,
			"price_with_discount": *req.PriceWithDiscount,
		})
		if err != nil {
			return storeErr("update product", err)
		}
		if err := reconcile(ctx, tx, id, req.CategoryIDs, plan); err != nil {
			return err
		}
		reloaded, err := tx.GetProduct(ctx, id)
		if err != nil {
			return storeErr("reload product", err)
		}
		updated = reloaded
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.ProductUpdated, updated)
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	var deleted *models.Product
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		p, err := tx.LockProduct(ctx, id)
		if err != nil {
			return storeErr("lock product", err)
		}
		deleted = p
		return storeErr("delete product", tx.DeleteProduct(ctx, id))
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.ProductDeleted, deleted)
	return nil
}

func planProduct(req transport.ProductRequest) (productPlan, error) {
	images, err := PlanImages(req.Images)
	if err != nil {
		return productPlan{}, err
	}
	options, err := PlanOptions(req.Options)
	if err != nil {
		return productPlan{}, err
	}
	return productPlan{images: images, options: options}, nil
}

// reconcile applies categories, then images, then options.
func reconcile(ctx context.Context, tx *repo.GormRepo, productID uint, categoryIDs []uint, plan productPlan) error {
	if err := checkCategories(ctx, tx, categoryIDs); err != nil {
		return err
	}
	if err := tx.ReplaceProductCategories(ctx, productID, categoryIDs); err != nil {
		return fmt.Errorf("replace categories: %w", err)
	}

	err := applyChildren(plan.images,
		func(img *models.ProductImage) error {
			img.ProductID = productID
			return tx.CreateImage(ctx, img)
		},
		func(id uint, updates map[string]any) error { return tx.UpdateImage(ctx, productID, id, updates) },
		func(id uint) error { return tx.DeleteImage(ctx, productID, id) },
	)
	if err != nil {
		return fmt.Errorf("images: %w", err)
	}

	err = applyChildren(plan.options,
		func(opt *models.ProductOption) error {
			opt.ProductID = productID
			return tx.CreateOption(ctx, opt)
		},
		func(id uint, updates map[string]any) error { return tx.UpdateOption(ctx, productID, id, updates) },
		func(id uint) error { return tx.DeleteOption(ctx, productID, id) },
	)
	if err != nil {
		return fmt.Errorf("options: %w", err)
	}
	return nil
}

func checkCategories(ctx context.Context, tx *repo.GormRepo, ids []uint) error {
	unique := slices.Compact(slices.Sorted(slices.Values(ids)))
	if len(unique) == 0 {
		return nil
	}
	n, err := tx.CountCategories(ctx, unique)
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if n != int64(len(unique)) {
		return fmt.Errorf("unknown category in %v: %w", unique, ErrValidation)
	}
	return nil
}

func applyChildren[T any](
	ops []ChildOp[T],
	create func(*T) error,
	update func(uint, map[string]any) error,
	remove func(uint) error,
) error {
	for _, op := range ops {
		var err error
		switch op.Kind {
		case OpCreate:
			err = create(op.Create)
		case OpUpdate:
			err = update(op.ID, op.Updates)
		case OpDelete:
			err = remove(op.ID)
		}
		if err != nil {
			return fmt.Errorf("%s %d: %w", op.Kind, op.ID, err)
		}
	}
	return nil
}

// publish runs after commit. A failing sink is logged and otherwise ignored.
func (s *ProductService) publish(ctx context.Context, typ events.Type, p *models.Product) {
	if s.Events == nil || p == nil {
		return
	}

	evt := events.Event{
		Type:      typ,
		ProductID: p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		At:        time.Now().UTC(),
	}
	if typ != events.ProductDeleted {
		evt.Product = p
	}
	if id, ok := auth.IdentityFrom(ctx); ok {
		evt.ActorID = id.ID
	}

	if err := s.Events.Publish(ctx, evt); err != nil {
		logging.FromContext(ctx).Warn("product_event_failed",
			"type", string(typ), "product_id", p.ID, "error", err)
	}
}
