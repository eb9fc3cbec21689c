package models

import "time"

type FoodItem struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	CategoryID      uint     `gorm:"not null;index" json:"category_id"`
	Category        Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name            string   `gorm:"type:varchar(255);not null" json:"name"`
	Description     string   `gorm:"type:text" json:"description"`
	BasePrice       float64  `gorm:"type:decimal(10,2);not null" json:"base_price"`
	CurrentPrice    float64  `gorm:"type:decimal(10,2);not null" json:"current_price"`
	IsAvailable     bool     `gorm:"not null;default:true" json:"is_available"`
	IsVegetarian    bool     `gorm:"not null;default:false" json:"is_vegetarian"`
	IsVegan         bool     `gorm:"not null;default:false" json:"is_vegan"`
	PrepTimeMinutes int      `gorm:"not null;default:0" json:"prep_time_minutes"`
	Calories        int      `gorm:"not null;default:0" json:"calories"`
	ImageUrl        string   `gorm:"type:varchar(255)" json:"image_url"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
