// File: server/session.go
package server

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"planningpoker/game"
	"planningpoker/utils"
)

// Mode selects the wire framing a session speaks.
type Mode int

const (
	ModeText Mode = iota
	ModeJSON
)

// ParseMode maps the ?mode= query value to a framing. Anything but "json"
// is the line-text framing.
func ParseMode(text string) Mode {
	if text == "json" {
		return ModeJSON
	}
	return ModeText
}

func (m Mode) String() string {
	if m == ModeJSON {
		return "json"
	}
	return "text"
}

// session drives one websocket connection: it relays decoded client
// messages to the game handle and writes back everything arriving on its
// outbound sink. All writes happen on the session goroutine; the read pump
// only feeds the frames channel.
type session struct {
	conn *websocket.Conn
	game *game.Handle
	mode Mode
	cfg  utils.Config

	tx         chan game.Outbound
	connID     game.ConnID
	identified bool

	lastHeartbeat atomic.Int64 // UnixNano of the latest ping or pong

	closeCode   int
	closeReason string

	log zerolog.Logger
}

func newSession(conn *websocket.Conn, handle *game.Handle, mode Mode, cfg utils.Config) *session {
	return &session{
		conn: conn,
		game: handle,
		mode: mode,
		cfg:  cfg,
		tx:   make(chan game.Outbound, cfg.SendBuffer),
		log:  log.With().Str("remote", conn.RemoteAddr().String()).Stringer("mode", mode).Logger(),
	}
}

// run services the connection until the client goes away, breaks the
// identification rules, or times out.
func (s *session) run() {
	s.log.Info().Msg("session started")
	s.touch()

	s.conn.SetReadLimit(s.cfg.MaxMessageSize)
	s.conn.SetPongHandler(func(string) error {
		s.touch()
		return nil
	})
	s.conn.SetPingHandler(func(appData string) error {
		s.touch()
		// WriteControl is safe to call from the read pump concurrently
		// with the session goroutine's data writes.
		return s.conn.WriteControl(websocket.PongMessage,
			[]byte(appData), time.Now().Add(s.cfg.WriteWait))
	})

	frames := make(chan []byte)
	go s.readPump(frames)

	ticker := time.NewTicker(s.cfg.HeartbeatInterval)

	defer func() {
		ticker.Stop()
		if s.identified {
			s.game.Disconnect(s.connID)
		}
		if s.closeCode != 0 {
			deadline := time.Now().Add(s.cfg.WriteWait)
			msg := websocket.FormatCloseMessage(s.closeCode, s.closeReason)
			_ = s.conn.WriteControl(websocket.CloseMessage, msg, deadline)
		}
		s.conn.Close()
		// Unblock the read pump so it can observe the closed conn.
		for range frames {
		}
		s.log.Info().Msg("session ended")
	}()

	for {
		select {
		case data, ok := <-frames:
			if !ok {
				return
			}
			if !s.handleFrame(data) {
				return
			}
		case msg, ok := <-s.tx:
			if !ok {
				// The actor closed our sink; the user was removed.
				s.identified = false
				return
			}
			if err := s.writeOutbound(msg); err != nil {
				s.log.Debug().Err(err).Msg("write failed")
				return
			}
		case <-ticker.C:
			if s.idle() {
				s.log.Warn().Msg("client heartbeat timed out")
				return
			}
			deadline := time.Now().Add(s.cfg.WriteWait)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				s.log.Debug().Err(err).Msg("ping failed")
				return
			}
		}
	}
}

// readPump feeds inbound frames to the session goroutine. It owns the
// frames channel and closes it when the connection dies.
func (s *session) readPump(frames chan<- []byte) {
	defer close(frames)
	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			s.log.Warn().Int("type", msgType).Msg("non-text frame, ignoring")
			continue
		}
		frames <- data
	}
}

// handleFrame dispatches one client frame. Returning false ends the
// session; closeCode/closeReason are then sent if set.
func (s *session) handleFrame(data []byte) bool {
	var msg game.Inbound
	if s.mode == ModeJSON {
		var err error
		msg, err = game.DecodeInboundJSON(data)
		if err != nil {
			s.log.Error().Err(err).Msg("malformed frame")
			return true
		}
	} else {
		msg = game.DecodeInboundText(string(data))
	}

	if !s.identified {
		if msg.Kind != game.InboundConnect {
			s.log.Debug().Msg("message before identification, ignoring")
			return true
		}
		id, err := s.game.Connect(s.tx, msg.Nickname)
		if err != nil {
			s.closeCode = websocket.ClosePolicyViolation
			s.closeReason = err.Error()
			s.log.Info().Err(err).Msg("identification rejected")
			return false
		}
		s.connID = id
		s.identified = true
		s.log = s.log.With().Stringer("conn_id", id).Logger()
		return true
	}

	switch msg.Kind {
	case game.InboundVote:
		s.game.Vote(s.connID, game.ParseVote(msg.Value))
	case game.InboundSetStatus:
		s.game.SetStatus(s.connID, msg.Status)
	case game.InboundConnect:
		s.log.Debug().Msg("duplicate connect, ignoring")
	default:
		s.log.Debug().Msg("unrecognized message, ignoring")
	}
	return true
}

func (s *session) writeOutbound(msg game.Outbound) error {
	s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteWait))
	if s.mode == ModeJSON {
		data, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		return s.conn.WriteMessage(websocket.TextMessage, data)
	}
	return s.conn.WriteMessage(websocket.TextMessage, []byte(msg.String()))
}

func (s *session) touch() {
	s.lastHeartbeat.Store(time.Now().UnixNano())
}

func (s *session) idle() bool {
	last := time.Unix(0, s.lastHeartbeat.Load())
	return time.Since(last) > s.cfg.ClientTimeout
}
