package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressIndex(t *testing.T) {
	assert.Equal(t, 0, ProgressIndex("pending"))
	assert.Equal(t, 1, ProgressIndex("preparing"))
	assert.Equal(t, 3, ProgressIndex("delivered"))

	// Matching strips case and whitespace, so display labels resolve too.
	assert.Equal(t, 2, ProgressIndex("On The Way"))
	assert.Equal(t, 2, ProgressIndex("on the way"))
	assert.Equal(t, 0, ProgressIndex("  Pending "))
}

func TestProgressIndexUnmappedStatuses(t *testing.T) {
	// out_for_delivery keeps its underscores after stripping and never
	// matches the "ontheway" step; the tracker shows no progress for it.
	assert.Equal(t, -1, ProgressIndex(OrderStatusOutForDelivery))
	assert.Equal(t, -1, ProgressIndex(OrderStatusAccepted))
	assert.Equal(t, -1, ProgressIndex(OrderStatusCancelled))
	assert.Equal(t, -1, ProgressIndex(""))
	assert.Equal(t, -1, ProgressIndex("unknown"))
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		assert.True(t, ValidOrderStatus(status))
	}
	assert.False(t, ValidOrderStatus("ontheway"))
	assert.False(t, ValidOrderStatus("Pending"))
	assert.False(t, ValidOrderStatus(""))
}
