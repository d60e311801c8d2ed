package transport

import (
	"github.com/marcelly-ramos/projeto-backend/internal/models"
	"github.com/marcelly-ramos/projeto-backend/internal/optional"
)

type UserSignupRequest struct {
	Firstname            string `json:"firstname"            validate:"required"`
	Surname              string `json:"surname"              validate:"required"`
	Email                string `json:"email"                validate:"required,email"`
	Password             string `json:"password"             validate:"required"`
	ConfirmPassword      string `json:"confirmPassword"      validate:"required"`
}

type UserUpdateRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Surname   string `json:"surname"   validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
}

type TokenRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CategoryRequest struct {
	Name      string `json:"name"        validate:"required"`
	Slug      string `json:"slug"        validate:"required"`
	UseInMenu *bool  `json:"use_in_menu" validate:"required"`
}

type ProductRequest struct {
	Enabled           *bool         `json:"enabled"             validate:"required"`
	Name              string        `json:"name"                validate:"required"`
	Slug              string        `json:"slug"                validate:"required"`
	Stock             *int          `json:"stock"               validate:"required"`
	Description       string        `json:"description"         validate:"required"`
	Price             *float64      `json:"price"               validate:"required"`
	PriceWithDiscount *float64      `json:"price_with_discount" validate:"required"`
	CategoryIDs       []uint        `json:"category_ids"        validate:"required"`
	Images            []ImageInput  `json:"images"              validate:"required"`
	Options           []OptionInput `json:"options"             validate:"required"`
}

// ImageInput is one entry of a product's images list. Without an id it is
// created, with an id it is patched, and with deleted=true it is removed.
type ImageInput struct {
	ID      *uint                  `json:"id"`
	Deleted bool                   `json:"deleted"`
	Enabled optional.Field[bool]   `json:"enabled"`
	Type    optional.Field[string] `json:"type"`
	Content optional.Field[string] `json:"content"`
}

type OptionInput struct {
	ID      *uint                            `json:"id"`
	Deleted bool                             `json:"deleted"`
	Title   optional.Field[string]           `json:"title"`
	Shape   optional.Field[string]           `json:"shape"`
	Radius  optional.Field[int]              `json:"radius"`
	Type    optional.Field[string]           `json:"type"`
	Values  optional.Field[models.ValueList] `json:"values"`
}

type Listing struct {
	Data  []map[string]any `json:"data"`
	Total int64            `json:"total"`
	Limit int              `json:"limit"`
	Page  int              `json:"page"`
}
