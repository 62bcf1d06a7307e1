// Package ws serves the simulation to browser viewers over websockets. The
// hub fans generation frames out to connected clients and funnels their
// control messages back to the single goroutine that owns the controller.
package ws

// Command is one control message from a viewer.
type Command struct {
	Type  string  `json:"type"`
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Value float64 `json:"value"`
	Token string  `json:"token"`
}

// Frame is one broadcast snapshot of the simulation.
type Frame struct {
	Generation int      `json:"generation"`
	Population int      `json:"population"`
	Running    bool     `json:"running"`
	DelayMS    int      `json:"delayMs"`
	Cells      [][2]int `json:"cells"`
}

// Hub maintains the set of connected clients.
type Hub struct {
	clients map[*Client]bool

	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client

	// Commands carries decoded viewer messages to the simulation loop.
	Commands chan Command
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Commands:   make(chan Command, 64),
	}
}

// Run handles client lifecycle and fan-out. It blocks, so callers start it
// on its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client: drop the frame rather than stall the
					// broadcast. A dead connection is caught by the write
					// deadline in the client's writePump.
				}
			}
		}
	}
}
