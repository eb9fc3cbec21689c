package models

import "time"

// CartItem holds one pending selection. At most one row exists per
// (user, food item) pair; the cart controller merges quantities on add.
// PriceAtAdd is captured when the row is created and never tracks later
// catalog price changes.
type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	FoodItemID uint      `gorm:"not null;index" json:"food_item_id"`
	FoodItem   FoodItem  `gorm:"foreignKey:FoodItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"food_item"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	PriceAtAdd float64   `gorm:"type:decimal(10,2);not null" json:"price_at_add"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
