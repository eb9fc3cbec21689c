package controllers

import (
	"net/http"
	"strconv"

	"github.com/foodzy/foodzy-app/realtime"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderFeedHandler upgrades to a websocket scoped to the caller's orders.
// An order_id query parameter narrows the feed to one order. The
// subscription is released when the connection drops.
func OrderFeedHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var orderID uint
	if raw := c.Query("order_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		orderID = uint(id)
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	realtime.RegisterClient(ws, realtime.Subscription{UserID: userID, OrderID: orderID})

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	realtime.UnregisterClient(ws)
}
