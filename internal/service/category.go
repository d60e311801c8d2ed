package service

import (
	"context"

	"github.com/marcelly-ramos/projeto-backend/internal/models"
	"github.com/marcelly-ramos/projeto-backend/internal/query"
	"github.com/marcelly-ramos/projeto-backend/internal/repo"
	"github.com/marcelly-ramos/projeto-backend/internal/transport"
)

type CategoryService struct {
	Repo *repo.GormRepo
}

func (s *CategoryService) List(ctx context.Context, q query.CategoryQuery) (int64, []models.Category, error) {
	return s.Repo.ListCategories(ctx, q)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	c, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return nil, storeErr("get category", err)
	}
	return c, nil
}

func (s *CategoryService) Create(ctx context.Context, req transport.CategoryRequest) (*models.Category, error) {
	c := models.Category{
		Name:      req.Name,
		Slug:      req.Slug,
		UseInMenu: *req.UseInMenu,
	}
	if err := s.Repo.CreateCategory(ctx, &c); err != nil {
		return nil, storeErr("create category", err)
	}
	return &c, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, req transport.CategoryRequest) error {
	return storeErr("update category", s.Repo.UpdateCategory(ctx, id, map[string]any{
		"name":        req.Name,
		"slug":        req.Slug,
		"use_in_menu": *req.UseInMenu,
	}))
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return storeErr("delete category", s.Repo.DeleteCategory(ctx, id))
}
