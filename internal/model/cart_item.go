package model

import "time"

// CartItem is one product line in a user's cart. Qty is at least 1 while the
// row exists; an update to zero deletes the row instead of persisting it.
// There is no uniqueness constraint on (user, product): adding the same
// product twice creates sibling lines.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"id_user" gorm:"not null;index"`
	ProductID uint      `json:"id_product" gorm:"not null;index"`
	Qty       int       `json:"qty" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User    *User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
