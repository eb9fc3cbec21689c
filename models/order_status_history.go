package models

import "time"

// OrderStatusHistory is an append-only log of status transitions, written
// alongside (not atomically with) the order's current-status field. The
// Processed flag is consumed by the realtime status monitor, which turns
// unprocessed rows into websocket events.
type OrderStatusHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Order     Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Status    string    `gorm:"type:varchar(20);not null" json:"status"`
	Notes     string    `gorm:"type:text" json:"notes"`
	Processed bool      `gorm:"not null;default:false;index" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
