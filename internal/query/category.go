package query

import (
	"net/url"
	"strings"
)

const DefaultCategoryFields = "name,slug"

var categoryFields = []string{"id", "name", "slug", "use_in_menu", "created_at", "updated_at"}

type CategoryQuery struct {
	Page      Page
	Fields    Fields
	UseInMenu *bool
}

func ParseCategoryQuery(v url.Values) (CategoryQuery, error) {
	page, err := ParsePage(v.Get("limit"), v.Get("page"))
	if err != nil {
		return CategoryQuery{}, err
	}

	fields, err := parseFields(v.Get("fields"), DefaultCategoryFields, categoryFields)
	if err != nil {
		return CategoryQuery{}, err
	}

	q := CategoryQuery{Page: page, Fields: fields}
	if raw := strings.TrimSpace(v.Get("use_in_menu")); raw != "" {
		inMenu := raw == "true"
		q.UseInMenu = &inMenu
	}
	return q, nil
}
