// internal/handlers/server.go
package handlers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/whitecards/czar/internal/game"
)

// writeTimeout bounds a single outbound socket write.
const writeTimeout = 3 * time.Second

// GameServer owns the live WebSocket connections for the shared session
// and wires the engine's broadcast callbacks onto them. The connection
// map has its own lock, independent of the game lock, so the engine can
// emit events from inside its critical section without blocking on
// socket I/O: writes are fired on separate goroutines with a timeout.
type GameServer struct {
	Game   *game.Game
	Logger *logrus.Logger

	mu    sync.Mutex
	conns map[uuid.UUID]*websocket.Conn
}

// NewGameServer wraps an engine and installs the broadcast callbacks.
func NewGameServer(g *game.Game, logger *logrus.Logger) *GameServer {
	s := &GameServer{
		Game:   g,
		Logger: logger,
		conns:  make(map[uuid.UUID]*websocket.Conn),
	}
	g.BroadcastFn = s.broadcast
	g.BroadcastToPlayerFn = s.broadcastToPlayer
	return s
}

func (s *GameServer) addConn(id uuid.UUID, c *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[id] = c
}

func (s *GameServer) removeConn(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, id)
}

// broadcast sends an event to every live connection.
func (s *GameServer) broadcast(ev game.GameEvent) {
	s.mu.Lock()
	targets := make([]*websocket.Conn, 0, len(s.conns))
	for _, c := range s.conns {
		targets = append(targets, c)
	}
	s.mu.Unlock()

	data, err := json.Marshal(ev)
	if err != nil {
		s.Logger.Errorf("failed to marshal %s event: %v", ev.Type, err)
		return
	}

	go func() {
		for _, c := range targets {
			s.write(c, data, ev.Type)
		}
	}()
}

// broadcastToPlayer sends an event to one player's connection, if it is
// still live.
func (s *GameServer) broadcastToPlayer(id uuid.UUID, ev game.GameEvent) {
	s.mu.Lock()
	c := s.conns[id]
	s.mu.Unlock()
	if c == nil {
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		s.Logger.Errorf("failed to marshal %s event for player %s: %v", ev.Type, id, err)
		return
	}

	go s.write(c, data, ev.Type)
}

func (s *GameServer) write(c *websocket.Conn, data []byte, evType game.GameEventType) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := c.Write(ctx, websocket.MessageText, data); err != nil {
		s.Logger.Warnf("failed to write %s event: %v", evType, err)
	}
}

// sendError reports a rejected action back to the originating client.
func (s *GameServer) sendError(id uuid.UUID, message string) {
	s.broadcastToPlayer(id, game.GameEvent{Type: game.EventError, Message: message})
}
