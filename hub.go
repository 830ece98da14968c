package main

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	maxConnsPerIP = 5
	maxTotalConns = 32
	// BroadcastEvery throttles state snapshots to 30/s at 60 TPS
	BroadcastEvery = 2
)

// Hub manages remote spectators and the (at most one) attached phone
// controller. The game loop pushes snapshots and events in; controller
// input flows out through ConsumeInput with edge signals latched so a
// short tap is never lost between ticks.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	issuer     *TokenIssuer

	// Connection limiting (mutex-protected, accessed from HTTP handlers)
	connMu     sync.Mutex
	ipConns    map[string]int
	totalConns int

	// Controller state
	ctrlMu      sync.Mutex
	controller  *Client
	ctrlState   RemoteInput // level signals as last reported
	pendFire    bool        // latched edges, cleared by ConsumeInput
	pendOK      bool
	pendRestart bool
}

// NewHub creates a new Hub
func NewHub(issuer *TokenIssuer) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		issuer:     issuer,
		ipConns:    make(map[string]int),
	}
}

// CanAccept applies per-IP and total connection limits
func (h *Hub) CanAccept(ip string) bool {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	if h.totalConns >= maxTotalConns {
		return false
	}
	if h.ipConns[ip] >= maxConnsPerIP {
		return false
	}
	return true
}

// TrackConnect counts a new connection for an IP
func (h *Hub) TrackConnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]++
	h.totalConns++
}

// TrackDisconnect releases a connection slot for an IP
func (h *Hub) TrackDisconnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]--
	if h.ipConns[ip] <= 0 {
		delete(h.ipConns, ip)
	}
	h.totalConns--
}

// Run processes register/unregister events
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.detachController(client)
		}
	}
}

// ClientCount returns the number of connected remote clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// attachController claims the controller slot for a client. Only one
// controller may be attached at a time.
func (h *Hub) attachController(c *Client) bool {
	h.ctrlMu.Lock()
	defer h.ctrlMu.Unlock()
	if h.controller != nil && h.controller != c {
		return false
	}
	h.controller = c
	return true
}

// detachController releases the slot if held by this client
func (h *Hub) detachController(c *Client) {
	h.ctrlMu.Lock()
	defer h.ctrlMu.Unlock()
	if h.controller == c {
		h.controller = nil
		h.ctrlState = RemoteInput{}
	}
}

// setControllerInput records the latest controller state and latches
// rising edges for fire/confirm/restart.
func (h *Hub) setControllerInput(in RemoteInput) {
	h.ctrlMu.Lock()
	defer h.ctrlMu.Unlock()
	if in.Fire && !h.ctrlState.Fire {
		h.pendFire = true
	}
	if in.Confirm && !h.ctrlState.Confirm {
		h.pendOK = true
	}
	if in.Restart && !h.ctrlState.Restart {
		h.pendRestart = true
	}
	h.ctrlState = in
}

// ConsumeInput returns the controller contribution for one tick and
// clears the latched edges. Returns false when no controller is attached.
func (h *Hub) ConsumeInput() (Input, bool) {
	h.ctrlMu.Lock()
	defer h.ctrlMu.Unlock()
	if h.controller == nil {
		return Input{}, false
	}
	in := Input{
		Left:    h.ctrlState.Left,
		Right:   h.ctrlState.Right,
		Fire:    h.pendFire,
		Confirm: h.pendOK,
		Restart: h.pendRestart,
	}
	h.pendFire = false
	h.pendOK = false
	h.pendRestart = false
	return in, true
}

// BroadcastState sends a binary msgpack snapshot to every remote client
func (h *Hub) BroadcastState(fs FrameState) {
	data, err := msgpack.Marshal(fs)
	if err != nil {
		log.Printf("hub: msgpack marshal: %v", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		client.SendBinary(data)
	}
}

// HandleEvent implements EventSink: gameplay events go out as JSON
func (h *Hub) HandleEvent(ev Event) {
	data, err := json.Marshal(Envelope{T: MsgEvent, Data: ev})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		client.SendRaw(data)
	}
}
