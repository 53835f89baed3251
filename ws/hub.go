package ws

// The hub keeps the set of connected dashboard clients and fans report
// summary payloads out to all of them. Clients that stop draining their send
// channel are dropped.

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

var HubInstance = NewHub()

func init() {
	go HubInstance.Run()
}

// Client is one WebSocket dashboard connection.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub manages all connected clients.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// BroadcastJSON marshals v and queues it for every connected client.
func (h *Hub) BroadcastJSON(v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Broadcast <- payload
	return nil
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
			log.Println("dashboard client registered")
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				log.Println("dashboard client unregistered")
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}
