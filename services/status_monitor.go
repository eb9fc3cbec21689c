package services

import (
	"time"

	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/realtime"
	"github.com/foodzy/foodzy-app/utils"
	"gorm.io/gorm"
)

// StatusMonitor turns unprocessed order status history rows into realtime
// events. Admin status writes only append the history row; this monitor is
// the single path from a status change to the websocket feed.
type StatusMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration
}

func NewStatusMonitor(db *gorm.DB) *StatusMonitor {
	return &StatusMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Second,
	}
}

func (sm *StatusMonitor) Start() {
	go func() {
		ticker := time.NewTicker(sm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sm.ProcessPending()
			case <-sm.StopChan:
				return
			}
		}
	}()
}

func (sm *StatusMonitor) Stop() {
	close(sm.StopChan)
}

// ProcessPending broadcasts and marks at most 100 pending transitions, oldest
// first. Exported so tests can drive the monitor without the ticker.
func (sm *StatusMonitor) ProcessPending() {
	var entries []models.OrderStatusHistory

	tx := sm.DB.Begin()
	if err := tx.Where("processed = ?", false).
		Order("created_at ASC").
		Limit(100).
		Find(&entries).Error; err != nil {
		tx.Rollback()
		utils.ErrorLogger.Printf("Error fetching pending status changes: %v", err)
		return
	}

	for _, entry := range entries {
		var order models.Order
		if err := tx.Preload("OrderItems").First(&order, entry.OrderID).Error; err != nil {
			utils.ErrorLogger.Printf("Error loading order %d for broadcast: %v", entry.OrderID, err)
		} else {
			realtime.BroadcastOrderUpdate(order)
		}

		if err := tx.Model(&models.OrderStatusHistory{}).
			Where("id = ?", entry.ID).
			Update("processed", true).Error; err != nil {
			utils.ErrorLogger.Printf("Error marking status change %d processed: %v", entry.ID, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.ErrorLogger.Printf("Error committing status monitor batch: %v", err)
	}
}
