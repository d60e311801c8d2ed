package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marcelly-ramos/projeto-backend/internal/logging"
	"github.com/marcelly-ramos/projeto-backend/internal/query"
	"github.com/marcelly-ramos/projeto-backend/internal/service"
	"github.com/marcelly-ramos/projeto-backend/internal/transport"
)

type CategoryHTTP struct {
	Svc *service.CategoryService
}

func (h *CategoryHTTP) SearchCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.search")

	q, err := query.ParseCategoryQuery(c.QueryParams())
	if err != nil {
		return failure(l, "search_categories_error", err, "cannot list categories")
	}

	total, items, err := h.Svc.List(ctx, q)
	if err != nil {
		return failure(l, "search_categories_error", err, "cannot list categories")
	}

	data := make([]map[string]any, 0, len(items))
	for _, item := range items {
		row, err := query.Project(item, q.Fields)
		if err != nil {
			return failure(l, "search_categories_error", err, "cannot list categories")
		}
		data = append(data, row)
	}

	return c.JSON(http.StatusOK, transport.Listing{Data: data, Total: total, Limit: q.Page.Limit, Page: q.Page.Page})
}

func (h *CategoryHTTP) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_category_error", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	category, err := h.Svc.Get(ctx, id)
	if err != nil {
		return failure(l, "get_category_error", err, "cannot get category")
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req transport.CategoryRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("create_category_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	category, err := h.Svc.Create(ctx, req)
	if err != nil {
		return failure(l, "create_category_error", err, "cannot create category")
	}

	l.Info("create_category_success", "category_id", category.ID)
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHTTP) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_category_error", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	var req transport.CategoryRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("update_category_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Update(ctx, id, req); err != nil {
		return failure(l, "update_category_error", err, "cannot update category")
	}

	l.Info("update_category_success", "category_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *CategoryHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_category_error", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return failure(l, "delete_category_error", err, "cannot delete category")
	}

	l.Info("delete_category_success", "category_id", id)
	return c.NoContent(http.StatusNoContent)
}
