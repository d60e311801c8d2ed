package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"     json:"id"`
	Firstname    string    `gorm:"not null"                     json:"firstname"`
	Surname      string    `gorm:"not null"                     json:"surname"`
	Email        string    `gorm:"uniqueIndex;not null"         json:"email"`
	PasswordHash string    `gorm:"column:password;not null"     json:"-"`
	CreatedAt    time.Time `                                    json:"created_at"`
	UpdatedAt    time.Time `                                    json:"updated_at"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name      string    `gorm:"not null"                  json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null"      json:"slug"`
	UseInMenu bool      `gorm:"not null;default:false"    json:"use_in_menu"`
	CreatedAt time.Time `                                 json:"created_at"`
	UpdatedAt time.Time `                                 json:"updated_at"`
}

type Product struct {
	ID                uint            `gorm:"primaryKey;autoIncrement"                       json:"id"`
	Enabled           bool            `gorm:"not null;default:false"                         json:"enabled"`
	Name              string          `gorm:"not null"                                       json:"name"`
	Slug              string          `gorm:"uniqueIndex;not null"                           json:"slug"`
	Stock             int             `gorm:"not null;default:0"                             json:"stock"`
	Description       string          `                                                      json:"description"`
	Price             float64         `gorm:"not null"                                       json:"price"`
	PriceWithDiscount float64         `gorm:"not null"                                       json:"price_with_discount"`
	CreatedAt         time.Time       `                                                      json:"created_at"`
	UpdatedAt         time.Time       `                                                      json:"updated_at"`
	Images            []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Options           []ProductOption `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"options"`
	Categories        []Category      `gorm:"many2many:product_categories"                   json:"categories"`
}

// EnsureCollections replaces nil child slices so they serialize as [].
func (p *Product) EnsureCollections() {
	if p.Images == nil {
		p.Images = []ProductImage{}
	}
	if p.Options == nil {
		p.Options = []ProductOption{}
	}
	if p.Categories == nil {
		p.Categories = []Category{}
	}
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	ProductID uint   `gorm:"index;not null"            json:"product_id"`
	Enabled   bool   `gorm:"not null;default:false"    json:"enabled"`
	Type      string `gorm:"not null"                  json:"type"`
	Content   string `gorm:"not null"                  json:"content"`
}

const (
	ShapeSquare = "square"
	ShapeCircle = "circle"

	OptionText  = "text"
	OptionColor = "color"
)

type ProductOption struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	ProductID uint      `gorm:"index;not null"            json:"product_id"`
	Title     string    `gorm:"not null"                  json:"title"`
	Shape     string    `gorm:"not null"                  json:"shape"`
	Radius    int       `gorm:"not null"                  json:"radius"`
	Type      string    `gorm:"not null"                  json:"type"`
	Values    ValueList `gorm:"not null"                  json:"values"`
}

func ValidShape(s string) bool { return s == ShapeSquare || s == ShapeCircle }

func ValidOptionType(s string) bool { return s == OptionText || s == OptionColor }

type ProductCategory struct {
	ProductID  uint `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	CategoryID uint `gorm:"primaryKey;autoIncrement:false" json:"category_id"`
}

// All lists every table in dependency order.
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Product{},
		&ProductImage{},
		&ProductOption{},
		&ProductCategory{},
	}
}

func SetupJoinTables(db *gorm.DB) error {
	return db.SetupJoinTable(&Product{}, "Categories", &ProductCategory{})
}
