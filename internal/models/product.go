package models

import "gorm.io/gorm"

// Product represents a catalog product in the store.
type Product struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Image       string `json:"image" validate:"omitempty,url"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Featured    bool   `json:"featured"`
	gorm.Model  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ToLineItem converts a product into a cart line with the given
// quantity. Quantity is clamped to the allowed range.
func (p Product) ToLineItem(quantity int) LineItem {
	return LineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: ClampQuantity(quantity),
	}
}
