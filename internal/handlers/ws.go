// internal/handlers/ws.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/whitecards/czar/internal/game"
	"github.com/whitecards/czar/internal/middleware"
	"github.com/whitecards/czar/internal/models"
)

// ClientMessage is an inbound WebSocket message. Name is set for
// join_game; Cards for submit_card and select_winner.
type ClientMessage struct {
	Type  string        `json:"type"`
	Name  string        `json:"name,omitempty"`
	Cards []models.Card `json:"cards,omitempty"`
}

// GameWSHandler upgrades the HTTP connection to WebSocket, registers it
// with the server under a fresh connection id, and runs the read loop
// until the client goes away. Leaving the loop for any reason removes
// the player from the session.
func GameWSHandler(logger *logrus.Logger, s *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("WebSocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "Internal server error during handler exit.")

		connID := uuid.New()
		s.addConn(connID, c)
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)

		s.broadcastToPlayer(connID, game.GameEvent{
			Type:    game.EventConnectionSuccess,
			Message: "Successfully connected to server",
		})

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		readMessages(ctx, c, s, connID, logger)

		s.removeConn(connID)
		s.Game.HandleLeave(connID)
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, nil)
		c.Close(websocket.StatusNormalClosure, "")
	}
}

// readMessages continuously reads client messages, unmarshals them, and
// routes them onto the engine. Rejections come back to the sender as
// error events; they never end the connection.
func readMessages(ctx context.Context, c *websocket.Conn, s *GameServer, connID uuid.UUID, logger *logrus.Logger) {
	joined := false
	for {
		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				logger.Infof("WebSocket closed normally for connection %s.", connID)
			} else if strings.Contains(err.Error(), "context canceled") {
				logger.Infof("WebSocket context canceled for connection %s.", connID)
			} else {
				logger.Warnf("Error reading from WebSocket for connection %s: %v", connID, err)
			}
			return
		}

		if msgType != websocket.MessageText {
			logger.Warnf("Received non-text message type %d from connection %s. Ignoring.", msgType, connID)
			continue
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warnf("Invalid JSON from connection %s: %v", connID, err)
			s.sendError(connID, "invalid JSON format")
			continue
		}

		switch msg.Type {
		case "join_game":
			if joined {
				s.sendError(connID, "already joined")
				continue
			}
			if msg.Name == "" {
				s.sendError(connID, "name is required")
				continue
			}
			if err := s.Game.HandleJoin(connID, msg.Name); err != nil {
				s.sendError(connID, err.Error())
				continue
			}
			joined = true
		case "submit_card":
			if err := s.Game.HandleSubmit(connID, msg.Cards); err != nil {
				s.sendError(connID, err.Error())
			}
		case "select_winner":
			if err := s.Game.HandleSelectWinner(msg.Cards); err != nil {
				s.sendError(connID, err.Error())
			}
		default:
			s.sendError(connID, fmt.Sprintf("unknown message type %q", msg.Type))
		}
	}
}
