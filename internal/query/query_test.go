package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		limit      string
		page       string
		want       Page
		wantOffset int
		wantErr    bool
	}{
		{name: "defaults", want: Page{Limit: 12, Page: 1}},
		{name: "second page", limit: "10", page: "2", want: Page{Limit: 10, Page: 2}, wantOffset: 10},
		{name: "unbounded", limit: "-1", page: "3", want: Page{Limit: -1, Page: 3}},
		{name: "limit zero", limit: "0", wantErr: true},
		{name: "limit minus two", limit: "-2", wantErr: true},
		{name: "limit text", limit: "ten", wantErr: true},
		{name: "page zero", page: "0", wantErr: true},
		{name: "page negative", page: "-1", wantErr: true},
		{name: "page text", page: "first", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePage(tt.limit, tt.page)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOffset, got.Offset())
			assert.Equal(t, tt.want.Limit != -1, got.Bounded())
		})
	}
}

func TestParseProductQuery(t *testing.T) {
	t.Parallel()

	q, err := ParseProductQuery(url.Values{
		"match":        {" Shirt "},
		"category_ids": {"1, 2,3"},
		"price-range":  {"10-100"},
		"fields":       {"name,price,name,options"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Shirt", q.Match)
	assert.Equal(t, []uint{1, 2, 3}, q.CategoryIDs)
	require.NotNil(t, q.Price)
	assert.Equal(t, 10.0, q.Price.Min)
	assert.Equal(t, 100.0, q.Price.Max)
	assert.Equal(t, Fields{"name", "price", "options"}, q.Fields)
	assert.Equal(t, Page{Limit: DefaultLimit, Page: DefaultPage}, q.Page)
}

func TestParseProductQuery_Defaults(t *testing.T) {
	t.Parallel()

	q, err := ParseProductQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, Fields{"name", "images", "price"}, q.Fields)
	assert.Empty(t, q.Match)
	assert.Nil(t, q.CategoryIDs)
	assert.Nil(t, q.Price)
}

func TestParseProductQuery_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    url.Values
	}{
		{name: "bad limit", v: url.Values{"limit": {"0"}}},
		{name: "bad page", v: url.Values{"page": {"0"}}},
		{name: "unknown field", v: url.Values{"fields": {"name,password"}}},
		{name: "bad category id", v: url.Values{"category_ids": {"1,x"}}},
		{name: "only commas", v: url.Values{"category_ids": {",,"}}},
		{name: "price without dash", v: url.Values{"price-range": {"100"}}},
		{name: "price not numeric", v: url.Values{"price-range": {"a-b"}}},
		{name: "price reversed", v: url.Values{"price-range": {"100-10"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseProductQuery(tt.v)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestParseCategoryQuery(t *testing.T) {
	t.Parallel()

	q, err := ParseCategoryQuery(url.Values{"use_in_menu": {"true"}, "limit": {"-1"}})
	require.NoError(t, err)
	require.NotNil(t, q.UseInMenu)
	assert.True(t, *q.UseInMenu)
	assert.False(t, q.Page.Bounded())
	assert.Equal(t, Fields{"name", "slug"}, q.Fields)

	q, err = ParseCategoryQuery(url.Values{"use_in_menu": {"yes"}})
	require.NoError(t, err)
	require.NotNil(t, q.UseInMenu)
	assert.False(t, *q.UseInMenu)

	q, err = ParseCategoryQuery(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, q.UseInMenu)

	_, err = ParseCategoryQuery(url.Values{"fields": {"images"}})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestProject(t *testing.T) {
	t.Parallel()

	type item struct {
		ID     uint     `json:"id"`
		Name   string   `json:"name"`
		Price  float64  `json:"price"`
		Images []string `json:"images"`
	}

	got, err := Project(item{ID: 4, Name: "Mug", Price: 9.5}, Fields{"name", "images"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(4), "name": "Mug", "images": []any{}}, got)
}
