package model

import "time"

// Product is a catalog entry. Price is stored in the smallest currency unit.
// Deleting the owning category cascades to its products.
type Product struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null;index"`
	Price      int64     `json:"price" gorm:"not null"`
	Image      string    `json:"image_product,omitempty" gorm:"size:255"`
	CategoryID uint      `json:"id_category" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
