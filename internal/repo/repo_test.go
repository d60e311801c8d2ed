package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/marcelly-ramos/projeto-backend/internal/db/dbtest"
	"github.com/marcelly-ramos/projeto-backend/internal/models"
	"github.com/marcelly-ramos/projeto-backend/internal/query"
)

func newRepo(t *testing.T) *GormRepo {
	t.Helper()
	return &GormRepo{DB: dbtest.New(t)}
}

func seedProduct(t *testing.T, r *GormRepo, name, desc string, price float64, categoryIDs ...uint) *models.Product {
	t.Helper()
	ctx := context.Background()

	p := &models.Product{Name: name, Slug: name, Description: desc, Price: price, PriceWithDiscount: price}
	require.NoError(t, r.CreateProduct(ctx, p))
	require.NoError(t, r.ReplaceProductCategories(ctx, p.ID, categoryIDs))
	return p
}

func seedCategory(t *testing.T, r *GormRepo, slug string, inMenu bool) *models.Category {
	t.Helper()
	c := &models.Category{Name: slug, Slug: slug, UseInMenu: inMenu}
	require.NoError(t, r.CreateCategory(context.Background(), c))
	return c
}

func TestDiffIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		current    []uint
		want       []uint
		wantAdd    []uint
		wantRemove []uint
	}{
		{name: "empty to some", want: []uint{1, 2}, wantAdd: []uint{1, 2}},
		{name: "some to empty", current: []uint{1, 2}, wantRemove: []uint{1, 2}},
		{name: "overlap", current: []uint{1, 2}, want: []uint{2, 3}, wantAdd: []uint{3}, wantRemove: []uint{1}},
		{name: "same set", current: []uint{1, 2}, want: []uint{2, 1}},
		{name: "duplicates in want", want: []uint{4, 4, 5}, wantAdd: []uint{4, 5}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			add, remove := diffIDs(tt.current, tt.want)
			assert.Equal(t, tt.wantAdd, add)
			assert.Equal(t, tt.wantRemove, remove)
		})
	}
}

func TestContainsPattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%shirt%", containsPattern("ShIrT"))
	assert.Equal(t, `%50\%\_off%`, containsPattern("50%_off"))
}

func TestReplaceProductCategories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := newRepo(t)

	c1 := seedCategory(t, r, "c1", false)
	c2 := seedCategory(t, r, "c2", false)
	c3 := seedCategory(t, r, "c3", false)
	p := seedProduct(t, r, "mug", "", 10, c1.ID, c2.ID)

	ids, err := r.CategoryIDs(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{c1.ID, c2.ID}, ids)

	require.NoError(t, r.ReplaceProductCategories(ctx, p.ID, []uint{c2.ID, c3.ID}))
	ids, err = r.CategoryIDs(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{c2.ID, c3.ID}, ids)

	require.NoError(t, r.ReplaceProductCategories(ctx, p.ID, []uint{}))
	ids, err = r.CategoryIDs(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestListProducts_Filters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := newRepo(t)

	shirts := seedCategory(t, r, "shirts", true)
	shoes := seedCategory(t, r, "shoes", false)

	seedProduct(t, r, "Blue Shirt", "cotton", 50, shirts.ID)
	seedProduct(t, r, "Runner", "shoe with SHIRT print", 120, shoes.ID)
	seedProduct(t, r, "Boot", "leather", 200, shoes.ID)
	seedProduct(t, r, "100%_wool", "scarf", 30)

	tests := []struct {
		name      string
		q         query.ProductQuery
		wantTotal int64
		wantNames []string
	}{
		{
			name:      "match name or description, any case",
			q:         query.ProductQuery{Page: query.Page{Limit: -1, Page: 1}, Match: "shirt"},
			wantTotal: 2,
			wantNames: []string{"Blue Shirt", "Runner"},
		},
		{
			name:      "match treats wildcards literally",
			q:         query.ProductQuery{Page: query.Page{Limit: -1, Page: 1}, Match: "%_"},
			wantTotal: 1,
			wantNames: []string{"100%_wool"},
		},
		{
			name:      "category intersection",
			q:         query.ProductQuery{Page: query.Page{Limit: -1, Page: 1}, CategoryIDs: []uint{shoes.ID}},
			wantTotal: 2,
			wantNames: []string{"Runner", "Boot"},
		},
		{
			name:      "price range inclusive",
			q:         query.ProductQuery{Page: query.Page{Limit: -1, Page: 1}, Price: &query.PriceRange{Min: 50, Max: 120}},
			wantTotal: 2,
			wantNames: []string{"Blue Shirt", "Runner"},
		},
		{
			name:      "combined filters",
			q:         query.ProductQuery{Page: query.Page{Limit: -1, Page: 1}, Match: "shirt", CategoryIDs: []uint{shoes.ID}, Price: &query.PriceRange{Min: 0, Max: 1000}},
			wantTotal: 1,
			wantNames: []string{"Runner"},
		},
		{
			name:      "pagination keeps total",
			q:         query.ProductQuery{Page: query.Page{Limit: 2, Page: 2}},
			wantTotal: 4,
			wantNames: []string{"Boot", "100%_wool"},
		},
		{
			name:      "page past the end",
			q:         query.ProductQuery{Page: query.Page{Limit: 10, Page: 3}},
			wantTotal: 4,
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, items, err := r.ListProducts(ctx, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			names := []string{}
			for _, p := range items {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestListProducts_Preloads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := newRepo(t)

	c := seedCategory(t, r, "c", false)
	p := seedProduct(t, r, "lamp", "", 10, c.ID)
	require.NoError(t, r.CreateImage(ctx, &models.ProductImage{ProductID: p.ID, Type: "image/png", Content: "a"}))

	_, items, err := r.ListProducts(ctx, query.ProductQuery{Page: query.Page{Limit: 12, Page: 1}, Fields: query.Fields{"name", "images"}})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Len(t, items[0].Images, 1)
	assert.NotNil(t, items[0].Options)
	assert.Empty(t, items[0].Categories)

	_, items, err = r.ListProducts(ctx, query.ProductQuery{Page: query.Page{Limit: 12, Page: 1}, Fields: query.Fields{"categories"}})
	require.NoError(t, err)
	require.Len(t, items[0].Categories, 1)
	assert.Equal(t, "c", items[0].Categories[0].Slug)
}

func TestListCategories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := newRepo(t)

	for i, slug := range []string{"a", "b", "c", "d", "e"} {
		seedCategory(t, r, slug, i%2 == 0)
	}

	inMenu := true
	total, items, err := r.ListCategories(ctx, query.CategoryQuery{Page: query.Page{Limit: -1, Page: 1}, UseInMenu: &inMenu})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, items, 3)

	total, items, err = r.ListCategories(ctx, query.CategoryQuery{Page: query.Page{Limit: 2, Page: 3}})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, items, 1)
	assert.Equal(t, "e", items[0].Slug)
}

func TestDeleteProduct_RemovesChildren(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := newRepo(t)

	c := seedCategory(t, r, "c", false)
	p := seedProduct(t, r, "chair", "", 99, c.ID)
	require.NoError(t, r.CreateImage(ctx, &models.ProductImage{ProductID: p.ID, Type: "image/png", Content: "x"}))
	require.NoError(t, r.CreateOption(ctx, &models.ProductOption{ProductID: p.ID, Title: "Color", Shape: models.ShapeSquare, Type: models.OptionColor, Values: models.ValueList{"red"}}))

	require.NoError(t, r.DeleteProduct(ctx, p.ID))

	var n int64
	for _, m := range []any{&models.ProductImage{}, &models.ProductOption{}, &models.ProductCategory{}} {
		require.NoError(t, r.DB.Model(m).Where("product_id = ?", p.ID).Count(&n).Error)
		assert.Zero(t, n)
	}
	_, err := r.GetCategory(ctx, c.ID)
	require.NoError(t, err)

	err = r.DeleteProduct(ctx, p.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteCategory_UnlinksProducts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := newRepo(t)

	c := seedCategory(t, r, "c", false)
	p := seedProduct(t, r, "desk", "", 99, c.ID)

	require.NoError(t, r.DeleteCategory(ctx, c.ID))
	ids, err := r.CategoryIDs(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.ErrorIs(t, r.DeleteCategory(ctx, c.ID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, r.UpdateCategory(ctx, c.ID, map[string]any{"name": "x"}), gorm.ErrRecordNotFound)
}

func TestChildUpdatesAreScopedToProduct(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := newRepo(t)

	a := seedProduct(t, r, "a", "", 1)
	b := seedProduct(t, r, "b", "", 1)
	img := &models.ProductImage{ProductID: a.ID, Type: "image/png", Content: "orig"}
	require.NoError(t, r.CreateImage(ctx, img))

	require.NoError(t, r.UpdateImage(ctx, b.ID, img.ID, map[string]any{"content": "hijack"}))
	require.NoError(t, r.DeleteImage(ctx, b.ID, img.ID))

	got, err := r.GetProduct(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "orig", got.Images[0].Content)

	require.NoError(t, r.UpdateImage(ctx, a.ID, img.ID, map[string]any{"content": "new", "enabled": true}))
	got, err = r.GetProduct(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Images[0].Content)
	assert.True(t, got.Images[0].Enabled)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := newRepo(t)

	require.NoError(t, r.CreateUser(ctx, &models.User{Firstname: "A", Surname: "B", Email: "a@b.c", PasswordHash: "h"}))
	err := r.CreateUser(ctx, &models.User{Firstname: "C", Surname: "D", Email: "a@b.c", PasswordHash: "h"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestTransaction_RollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := newRepo(t)

	boom := errors.New("boom")
	err := r.Transaction(ctx, func(tx *GormRepo) error {
		require.NoError(t, tx.CreateCategory(ctx, &models.Category{Name: "x", Slug: "x"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	total, _, err := r.ListCategories(ctx, query.CategoryQuery{Page: query.Page{Limit: -1, Page: 1}})
	require.NoError(t, err)
	assert.Zero(t, total)
	require.NoError(t, r.Ping(ctx))
}
