// File: server/handlers.go
package server

import (
	"embed"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

//go:embed web
var webAssets embed.FS

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleWS admits the client against the session limit, upgrades the
// connection and runs the session until it ends.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	if err := s.limit.TryAcquire(); err != nil {
		log.Warn().Str("remote", r.RemoteAddr).Stringer("sessions", s.limit).
			Msg("connection rejected, session limit reached")
		http.Error(w, "Too many concurrent sessions", http.StatusTooManyRequests)
		return
	}

	mode := ParseMode(r.URL.Query().Get("mode"))
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote its own error response.
		s.limit.Release()
		log.Error().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}

	sess := newSession(conn, s.game, mode, s.cfg)
	go func() {
		defer s.limit.Release()
		sess.run()
	}()
}

// handleAssets serves the embedded web client. The root path maps to
// index.html.
func handleAssets(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	if name == "" {
		name = "index.html"
	}

	data, err := webAssets.ReadFile("web/" + name)
	if err != nil {
		http.Error(w, "404 - Not Found", http.StatusNotFound)
		return
	}

	if ctype := mime.TypeByExtension(path.Ext(name)); ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	w.Write(data)
}
