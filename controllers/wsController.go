package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/RenaRill/restaurant-order-system/models"
	"github.com/RenaRill/restaurant-order-system/permissions"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	clients = make(map[*websocket.Conn]bool)
	mu      sync.Mutex
)

// Message is one event on the staff feed.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// HandleWebSocket upgrades the connection for authenticated staff clients.
// Connected clients receive newOrder and statusChanged events.
func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := callerRole(c)
		if role == permissions.Anonymous {
			respondPolicyError(c, permissions.ErrUnauthenticated)
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("websocket upgrade failed:", err)
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

// notifyOrderEvent broadcasts an order event to every connected client.
func notifyOrderEvent(event string, order *models.Order) {
	mu.Lock()
	defer mu.Unlock()
	sendMessageToAllClients(Message{
		Event:   event,
		Payload: order,
	})
}

func sendMessageToAllClients(message Message) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Println("failed to marshal ws message:", err)
		return
	}
	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			client.Close()
			delete(clients, client)
		}
	}
}
