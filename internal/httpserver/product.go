package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marcelly-ramos/projeto-backend/internal/logging"
	"github.com/marcelly-ramos/projeto-backend/internal/query"
	"github.com/marcelly-ramos/projeto-backend/internal/service"
	"github.com/marcelly-ramos/projeto-backend/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	q, err := query.ParseProductQuery(c.QueryParams())
	if err != nil {
		return failure(l, "search_products_error", err, "cannot list products")
	}

	total, items, err := h.Svc.List(ctx, q)
	if err != nil {
		return failure(l, "search_products_error", err, "cannot list products")
	}

	data := make([]map[string]any, 0, len(items))
	for _, item := range items {
		row, err := query.Project(item, q.Fields)
		if err != nil {
			return failure(l, "search_products_error", err, "cannot list products")
		}
		data = append(data, row)
	}

	l.Info("search_products_success", "total", total)
	return c.JSON(http.StatusOK, transport.Listing{Data: data, Total: total, Limit: q.Page.Limit, Page: q.Page.Page})
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_product_error", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	product, err := h.Svc.Get(ctx, id)
	if err != nil {
		return failure(l, "get_product_error", err, "cannot get product")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.ProductRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.Create(ctx, req)
	if err != nil {
		return failure(l, "create_product_error", err, "cannot create product")
	}

	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_product_error", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	var req transport.ProductRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("update_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Update(ctx, id, req); err != nil {
		return failure(l, "update_product_error", err, "cannot update product")
	}

	l.Info("update_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_product_error", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return failure(l, "delete_product_error", err, "cannot delete product")
	}

	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}
