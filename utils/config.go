// File: utils/config.go
package utils

import "time"

// Config holds all configurable server parameters.
type Config struct {
	// Session timing
	HeartbeatInterval time.Duration // period between server ping frames
	ClientTimeout     time.Duration // idle cutoff since the last ping/pong
	WriteWait         time.Duration // deadline for a single outbound write

	// Limits
	MaxNicknameBytes int   // nicknames longer than this are truncated
	MaxSessions      int   // concurrent session cap
	MaxMessageSize   int64 // largest inbound frame accepted
	SendBuffer       int   // per-user outbound sink capacity
	CommandBuffer    int   // game command queue capacity

	// Transport
	DefaultAddr string // bind address when none is given on the CLI
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		HeartbeatInterval: 5 * time.Second,
		ClientTimeout:     10 * time.Second,
		WriteWait:         10 * time.Second,

		MaxNicknameBytes: 20,
		MaxSessions:      15,
		MaxMessageSize:   4 * 1024,
		SendBuffer:       256,
		CommandBuffer:    256,

		DefaultAddr: "127.0.0.1:8080",
	}
}
