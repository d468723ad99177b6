package ws

import (
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// HubInstance is the process-wide hub feeding connected dashboard
// clients with census updates.
var HubInstance = NewHub()

func init() {
	go HubInstance.Run()
}

// Client is one connected dashboard websocket.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub tracks clients and fans broadcast messages out to all of them.
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

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
			log.Debug().Int("clients", len(h.Clients)).Msg("dashboard client registered")
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				log.Debug().Int("clients", len(h.Clients)).Msg("dashboard client unregistered")
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					// Slow consumer; drop the connection.
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}
