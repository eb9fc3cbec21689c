package models

import (
	"strings"
	"time"
	"unicode"
)

// Admin-facing order statuses.
const (
	OrderStatusPending        = "pending"
	OrderStatusAccepted       = "accepted"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusAccepted,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ProgressSteps are the four customer-facing tracking stages shown on the
// order detail page, in display order.
var ProgressSteps = []string{"pending", "preparing", "ontheway", "delivered"}

// ProgressIndex maps an order status onto the 4-stage tracker by comparing
// the lowercased, whitespace-stripped status against the step keys. Statuses
// outside the four labels (accepted, out_for_delivery, cancelled) return -1
// and the tracker renders in its zero state. This mirrors the shipped
// behavior; the 4-label tracker and the 6-value admin enumeration are a
// known mismatch pending a product decision.
func ProgressIndex(status string) int {
	key := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(status))
	for i, step := range ProgressSteps {
		if step == key {
			return i
		}
	}
	return -1
}

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	User            User        `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"user"`
	Status          string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount     float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	PaymentStatus   string      `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	DeliveryAddress string      `gorm:"type:text" json:"delivery_address"`
	OrderItems      []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null" json:"updated_at"`
}
