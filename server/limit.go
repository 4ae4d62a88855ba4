// File: server/limit.go
package server

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrTooManySessions is returned by TryAcquire when the room is full.
var ErrTooManySessions = errors.New("too many concurrent sessions")

// Limit caps the number of concurrent sessions. A slot is taken before the
// websocket upgrade and released when the session ends.
type Limit struct {
	mu    sync.Mutex
	count int
	max   int
}

// NewLimit creates a limiter admitting at most max sessions.
func NewLimit(max int) *Limit {
	return &Limit{max: max}
}

// TryAcquire claims a slot, or fails with ErrTooManySessions.
func (l *Limit) TryAcquire() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.count >= l.max {
		log.Debug().Int("max", l.max).Msg("session limit reached")
		return ErrTooManySessions
	}
	l.count++
	log.Debug().Int("count", l.count).Int("max", l.max).Msg("session slot acquired")
	return nil
}

// Release frees a previously acquired slot.
func (l *Limit) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.count > 0 {
		l.count--
	}
	log.Debug().Int("count", l.count).Int("max", l.max).Msg("session slot released")
}

func (l *Limit) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("%d/%d", l.count, l.max)
}
