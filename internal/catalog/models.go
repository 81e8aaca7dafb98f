package catalog

import "time"

type Category string

const (
	CategoryBase   Category = "base"
	CategorySauce  Category = "sauce"
	CategoryCheese Category = "cheese"
	CategoryVeggie Category = "veggie"
	CategoryMeat   Category = "meat"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryBase, CategorySauce, CategoryCheese, CategoryVeggie, CategoryMeat:
		return true
	}
	return false
}

type Ingredient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     int       `json:"price"`
	Category  Category  `json:"category"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
