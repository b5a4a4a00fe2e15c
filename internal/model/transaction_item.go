package model

import "time"

// TransactionItem is the durable record of one purchased cart line. Rows are
// created only by checkout and never updated or deleted afterwards.
type TransactionItem struct {
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
