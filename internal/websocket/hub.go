package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"procurement/internal/middleware"
	"procurement/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const EventProfileUpdated = "profile.updated"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the CORS layer in front of the router
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is the JSON frame pushed to dashboard clients
type Event struct {
	Type      string    `json:"type"`
	ClerkID   string    `json:"clerkId"`
	Timestamp time.Time `json:"timestamp"`
}

// Client represents a single connected WebSocket client
type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Send     chan []byte
	Identity model.Identity
}

// delivery is an encoded event and the identity it is addressed to; an empty clerkID reaches every client
type delivery struct {
	clerkID string
	payload []byte
}

// Hub maintains the set of active clients and routes events to them
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan delivery
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	log        *zap.Logger
}

// NewHub initializes a new WS Hub instance
func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan delivery, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run owns the client set until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.Send)
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
			h.log.Debug("websocket client connected", zap.String("clerk_id", client.Identity.ID))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.log.Debug("websocket client disconnected", zap.String("clerk_id", client.Identity.ID))
			}
		case d := <-h.broadcast:
			for client := range h.clients {
				if d.clerkID != "" && client.Identity.ID != d.clerkID {
					continue
				}
				select {
				case client.Send <- d.payload:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Publish queues an event for the clients of event.ClerkID, or for every client when it is empty.
// The event is dropped when the queue is full.
func (h *Hub) Publish(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error("encode websocket event", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- delivery{clerkID: event.ClerkID, payload: payload}:
	default:
		h.log.Warn("websocket broadcast queue full, dropping event", zap.String("type", event.Type))
	}
}

// ProfileUpdated tells the user's own dashboards to refresh the layout shell
func (h *Hub) ProfileUpdated(user *model.User) {
	h.Publish(Event{Type: EventProfileUpdated, ClerkID: user.ClerkID, Timestamp: time.Now().UTC()})
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.Conn.Close()
	}()
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump keeps the connection alive until the peer goes away
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		_ = c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
	}
}

// ServeWs authenticates the token query parameter and upgrades the connection
func ServeWs(hub *Hub, auth *middleware.Auth, c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	identity, err := auth.ParseToken(tokenString)
	if err != nil {
		hub.log.Info("websocket connection rejected", zap.Error(err))
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		hub.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, 256), Identity: identity}
	select {
	case hub.register <- client:
	case <-hub.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
