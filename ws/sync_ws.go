package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yunusinal/lezzetlimani-sub001/utils"
)

// SyncHub pushes cart/favorites change notices to every open tab of a
// session so they can re-read the stored state wholesale. Advisory only:
// a dropped notice just means the tab refreshes later.
type SyncHub struct {
	clients    map[string]map[*websocket.Conn]bool // session key -> connections
	notify     chan notice
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn    *websocket.Conn
	Session string
}

type notice struct {
	Session string
	Kind    string // "cart" | "favorites"
}

func NewSyncHub() *SyncHub {
	return &SyncHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		notify:     make(chan notice, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run owns the client map; start it once in its own goroutine.
func (h *SyncHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Session] == nil {
				h.clients[sub.Session] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Session][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Session][sub.Conn]; ok {
				delete(h.clients[sub.Session], sub.Conn)
				sub.Conn.Close()
			}
			if len(h.clients[sub.Session]) == 0 {
				delete(h.clients, sub.Session)
			}
			h.mu.Unlock()

		case n := <-h.notify:
			h.mu.Lock()
			for conn := range h.clients[n.Session] {
				if err := conn.WriteJSON(gin.H{"kind": n.Kind}); err != nil {
					log.Printf("ws write to %s failed: %v", n.Session, err)
					conn.Close()
					delete(h.clients[n.Session], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify implements services.Notifier. Non-blocking: when the channel is
// full the notice is dropped.
func (h *SyncHub) Notify(session, kind string) {
	select {
	case h.notify <- notice{Session: session, Kind: kind}:
	default:
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handle upgrades GET /ws/sync. The session key comes from the session
// middleware (token query param for browser dials).
func (h *SyncHub) Handle(c *gin.Context) {
	session := utils.CurrentSession(c)
	if session == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no session"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	sub := subscription{Conn: conn, Session: session}
	h.register <- sub

	// Reader loop only detects close; clients never send payloads.
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
