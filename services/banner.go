package services

import (
	"fmt"
	"time"

	"github.com/foodzy/foodzy-app/models"
)

// ExpiredLabel is rendered once a banner's deadline has passed. It never
// recomputes to a live countdown afterwards.
const ExpiredLabel = "Offer Expired"

// TimeLeft renders the remaining time until end as "Nd Nh Nm Ns".
func TimeLeft(end time.Time, now time.Time) string {
	diff := end.Sub(now)
	if diff <= 0 {
		return ExpiredLabel
	}

	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	minutes := int(diff.Minutes()) % 60
	seconds := int(diff.Seconds()) % 60
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}

// PlaceholderBanner is shown when no active banner exists; the carousel
// still rotates against it as a single slide.
func PlaceholderBanner() models.Banner {
	link := "/menu"
	return models.Banner{
		Title:        "Welcome to FoodZy",
		ImageUrl:     "https://images.unsplash.com/photo-1504674900247-0877df9cc836?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&q=80",
		LinkUrl:      &link,
		DisplayOrder: 1,
		IsActive:     true,
	}
}
