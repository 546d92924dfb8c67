package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handler upgrades HTTP requests to websocket subscriptions on the hub.
type Handler struct {
	hub      *Hub
	logger   *zap.SugaredLogger
	upgrader websocket.Upgrader
}

// NewHandler creates a websocket handler bound to the hub. Cross-origin
// upgrades are allowed; origin policy is enforced by the CORS middleware
// on the HTTP surface.
func NewHandler(hub *Hub, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Serve handles GET /ws. The connection only carries server-to-client
// events; inbound messages are discarded and a read error means the
// client went away.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorw("websocket upgrade failed", "error", err)
		return
	}

	client := NewClient(conn, h.logger)
	h.hub.Register(client)

	go func() {
		defer func() {
			h.hub.Unregister(client)
			client.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// RegisterRoutes registers the websocket endpoint.
func RegisterRoutes(r *gin.Engine, hub *Hub, logger *zap.SugaredLogger) {
	h := NewHandler(hub, logger)
	r.GET("/ws", h.Serve)
}
