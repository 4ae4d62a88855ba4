// File: server/server.go
package server

import (
	"github.com/gorilla/mux"

	"planningpoker/game"
	"planningpoker/utils"
)

// Server ties the game handle, session limiter and HTTP routes together.
type Server struct {
	game  *game.Handle
	limit *Limit
	cfg   utils.Config
}

// New builds a server around an already-running game.
func New(handle *game.Handle, cfg utils.Config) *Server {
	return &Server{
		game:  handle,
		limit: NewLimit(cfg.MaxSessions),
		cfg:   cfg,
	}
}

// Router exposes the websocket endpoint and the static web client.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/ws", s.handleWS)
	router.PathPrefix("/").HandlerFunc(handleAssets)
	return router
}
