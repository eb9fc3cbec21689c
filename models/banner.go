package models

import "time"

// Banner is a promotional slide. EndTime acts as a countdown deadline for
// the carousel; both timestamps are optional.
type Banner struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"type:varchar(255);not null" json:"title"`
	ImageUrl     string     `gorm:"type:varchar(255);not null" json:"image_url"`
	LinkUrl      *string    `gorm:"type:varchar(255)" json:"link_url"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	DisplayOrder int        `gorm:"not null;default:0" json:"display_order"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}
