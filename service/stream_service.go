package service

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mazikuben/construction-be/types"
)

const streamWriteWait = 10 * time.Second

// streamConn serializes writes to one websocket connection. Pushes arrive
// from arbitrary request goroutines and gorilla allows a single writer at
// a time, so every frame goes out under the mutex.
type streamConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *streamConn) writeJSON(notification *types.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	return c.conn.WriteJSON(notification)
}

func (c *streamConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait))
}

// StreamService holds live websocket connections keyed by user so that
// notifications can be pushed as they are created.
type StreamService struct {
	upgrader websocket.Upgrader

	// The stream is push-only, so the server pings at pingPeriod to keep
	// the pongWait read deadline of idle but healthy clients refreshed.
	pongWait   time.Duration
	pingPeriod time.Duration

	mu    sync.Mutex
	conns map[string][]*streamConn
}

func NewStreamService() *StreamService {
	return &StreamService{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
		pongWait:   60 * time.Second,
		pingPeriod: 54 * time.Second,
		conns:      make(map[string][]*streamConn),
	}
}

// HandleStream upgrades the request and keeps the connection registered
// until the client goes away. The user is taken from the verified token,
// never from the request.
func (s *StreamService) HandleStream(userID string, w http.ResponseWriter, r *http.Request) {
	raw, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer raw.Close()
	conn := &streamConn{conn: raw}

	raw.SetReadLimit(4 * 1024)
	raw.SetReadDeadline(time.Now().Add(s.pongWait))
	raw.SetPongHandler(func(string) error {
		raw.SetReadDeadline(time.Now().Add(s.pongWait))
		return nil
	})

	s.register(userID, conn)
	defer s.unregister(userID, conn)

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(s.pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := conn.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	// The read loop only exists to detect the close; clients do not send
	// anything meaningful on this channel.
	for {
		if _, _, err := raw.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		raw.SetReadDeadline(time.Now().Add(s.pongWait))
	}
}

// Push writes the notification to every open connection of the user.
// Users without a connection are skipped silently.
func (s *StreamService) Push(userID string, notification *types.Notification) {
	s.mu.Lock()
	conns := append([]*streamConn(nil), s.conns[userID]...)
	s.mu.Unlock()

	for _, conn := range conns {
		if err := conn.writeJSON(notification); err != nil {
			log.Println("Write error:", err)
		}
	}
}

func (s *StreamService) register(userID string, conn *streamConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[userID] = append(s.conns[userID], conn)
}

func (s *StreamService) unregister(userID string, conn *streamConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	remaining := s.conns[userID][:0]
	for _, c := range s.conns[userID] {
		if c != conn {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == 0 {
		delete(s.conns, userID)
	} else {
		s.conns[userID] = remaining
	}
}
