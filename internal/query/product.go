package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const DefaultProductFields = "name,images,price"

var (
	productAssociations = []string{"images", "options", "categories"}

	productFields = append([]string{
		"id", "enabled", "name", "slug", "stock", "description",
		"price", "price_with_discount", "created_at", "updated_at",
	}, productAssociations...)
)

type PriceRange struct {
	Min float64
	Max float64
}

type ProductQuery struct {
	Page        Page
	Fields      Fields
	Match       string
	CategoryIDs []uint
	Price       *PriceRange
}

func ParseProductQuery(v url.Values) (ProductQuery, error) {
	page, err := ParsePage(v.Get("limit"), v.Get("page"))
	if err != nil {
		return ProductQuery{}, err
	}

	fields, err := parseFields(v.Get("fields"), DefaultProductFields, productFields)
	if err != nil {
		return ProductQuery{}, err
	}

	q := ProductQuery{
		Page:   page,
		Fields: fields,
		Match:  strings.TrimSpace(v.Get("match")),
	}

	if raw := strings.TrimSpace(v.Get("category_ids")); raw != "" {
		if q.CategoryIDs, err = parseIDList(raw); err != nil {
			return ProductQuery{}, err
		}
	}

	if raw := strings.TrimSpace(v.Get("price-range")); raw != "" {
		if q.Price, err = parsePriceRange(raw); err != nil {
			return ProductQuery{}, err
		}
	}

	return q, nil
}

func parseIDList(raw string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("category_ids %q: %w", raw, ErrInvalidParameter)
		}
		ids = append(ids, uint(id))
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("category_ids %q: %w", raw, ErrInvalidParameter)
	}
	return ids, nil
}

// parsePriceRange reads "min-max". Both bounds are inclusive.
func parsePriceRange(raw string) (*PriceRange, error) {
	minRaw, maxRaw, ok := strings.Cut(raw, "-")
	if !ok {
		return nil, fmt.Errorf("price-range %q: %w", raw, ErrInvalidParameter)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(minRaw), 64)
	if err != nil {
		return nil, fmt.Errorf("price-range %q: %w", raw, ErrInvalidParameter)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(maxRaw), 64)
	if err != nil || hi < lo {
		return nil, fmt.Errorf("price-range %q: %w", raw, ErrInvalidParameter)
	}
	return &PriceRange{Min: lo, Max: hi}, nil
}
