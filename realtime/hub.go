package realtime

import (
	"encoding/json"
	"sync"

	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gorilla/websocket"
)

// Event types pushed to order feed subscribers.
const (
	EventOrderUpdate = "order_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Subscription scopes a connection to one user's orders. OrderID narrows the
// feed to a single order; zero means all of the user's orders.
type Subscription struct {
	UserID  uint
	OrderID uint
}

// Hub holds every live order-feed connection. Views acquire a subscription
// on connect and the hub releases it when the connection drops, so no
// standing connection outlives its view.
type Hub struct {
	clients map[*websocket.Conn]Subscription
	mutex   sync.Mutex
}

var orderHub = Hub{
	clients: make(map[*websocket.Conn]Subscription),
}

func RegisterClient(conn *websocket.Conn, sub Subscription) {
	orderHub.mutex.Lock()
	defer orderHub.mutex.Unlock()
	orderHub.clients[conn] = sub
}

func UnregisterClient(conn *websocket.Conn) {
	orderHub.mutex.Lock()
	defer orderHub.mutex.Unlock()
	delete(orderHub.clients, conn)
	conn.Close()
}

// ClientCount reports the number of live subscriptions.
func ClientCount() int {
	orderHub.mutex.Lock()
	defer orderHub.mutex.Unlock()
	return len(orderHub.clients)
}

// BroadcastOrderUpdate pushes an order to every subscription it matches.
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: order}, func(sub Subscription) bool {
		if sub.UserID != order.UserID {
			return false
		}
		return sub.OrderID == 0 || sub.OrderID == order.ID
	})
}

func broadcast(msg Message, matches func(Subscription) bool) {
	orderHub.mutex.Lock()
	defer orderHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling realtime message: %v", err)
		return
	}

	for conn, sub := range orderHub.clients {
		if !matches(sub) {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending realtime message: %v", err)
		}
	}
}
