// Package realtime provides the best-effort broadcast channel pushing
// team:created events and the connected-viewer count to open sessions.
package realtime

import (
	"encoding/json"
	"sync/atomic"

	"go.uber.org/zap"

	teamModel "github.com/trenchcomp/teams-service/internal/team/model"
)

// Server-to-client event names.
const (
	EventTeamCreated = "team:created"
	EventUsersCount  = "users:count"
)

// Subscriber abstracts a connected streaming client. Send must not
// block: implementations queue frames and report a peer that has fallen
// behind as an error, at which point the hub drops it.
type Subscriber interface {
	Send([]byte) error
	Close()
}

// envelope is the wire format for every pushed event.
type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// UsersCountPayload reports the number of currently connected viewers.
type UsersCountPayload struct {
	ConnectedUsers int `json:"connectedUsers"`
}

// Hub fans events out to all currently connected subscribers. Delivery is
// at-most-once per subscriber with no replay for late joiners. All
// subscriber state is owned by the run loop; the connected count is
// mirrored in an atomic for readers.
type Hub struct {
	logger     *zap.SugaredLogger
	clients    map[Subscriber]struct{}
	register   chan Subscriber
	unregister chan Subscriber
	broadcast  chan []byte
	connected  atomic.Int64
}

// NewHub creates an initialized Hub and starts its run loop.
func NewHub(logger *zap.SugaredLogger) *Hub {
	h := &Hub{
		logger:     logger,
		clients:    make(map[Subscriber]struct{}),
		register:   make(chan Subscriber),
		unregister: make(chan Subscriber),
		broadcast:  make(chan []byte),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.connected.Store(int64(len(h.clients)))
			h.deliverUsersCount()
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				h.connected.Store(int64(len(h.clients)))
				h.deliverUsersCount()
			}
		case payload := <-h.broadcast:
			h.deliver(payload)
		}
	}
}

// deliver sends payload to every subscriber, dropping the ones whose
// connection has failed or fallen behind.
func (h *Hub) deliver(payload []byte) {
	for client := range h.clients {
		if err := client.Send(payload); err != nil {
			h.logger.Warnw("dropping subscriber", "error", err)
			client.Close()
			delete(h.clients, client)
		}
	}
	h.connected.Store(int64(len(h.clients)))
}

func (h *Hub) deliverUsersCount() {
	payload, err := json.Marshal(envelope{
		Event: EventUsersCount,
		Data:  UsersCountPayload{ConnectedUsers: len(h.clients)},
	})
	if err != nil {
		h.logger.Errorw("failed to encode users:count event", "error", err)
		return
	}
	h.deliver(payload)
}

// Register adds a subscriber to the stream and announces the new
// connected count to everyone.
func (h *Hub) Register(client Subscriber) {
	h.register <- client
}

// Unregister removes a subscriber and announces the new connected count.
func (h *Hub) Unregister(client Subscriber) {
	h.unregister <- client
}

// ConnectedUsers returns the number of currently connected subscribers.
func (h *Hub) ConnectedUsers() int {
	return int(h.connected.Load())
}

// PublishTeamCreated pushes a team:created event to every connected
// subscriber. Best-effort: encoding or delivery failures are logged and
// never propagated to the registration flow.
func (h *Hub) PublishTeamCreated(summary teamModel.TeamSummary) {
	payload, err := json.Marshal(envelope{
		Event: EventTeamCreated,
		Data:  summary,
	})
	if err != nil {
		h.logger.Errorw("failed to encode team:created event", "error", err)
		return
	}
	h.broadcast <- payload
}
