package models

import "time"

// AdminUser is keyed by the user's identity. Presence of a row is the sole
// authorization check gating every admin route; the check runs per request.
type AdminUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Role      string    `gorm:"type:varchar(50);not null;default:'admin'" json:"role"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
