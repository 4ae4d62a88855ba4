// File: main.go
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"planningpoker/game"
	"planningpoker/server"
	"planningpoker/utils"
)

func main() {
	cfg := utils.DefaultConfig()

	var limit int
	var logLevel string
	flag.IntVar(&limit, "l", cfg.MaxSessions, "maximum number of concurrent sessions")
	flag.IntVar(&limit, "limit", cfg.MaxSessions, "maximum number of concurrent sessions")
	flag.StringVar(&logLevel, "log", "info", "log level: error, warn, info, debug or trace")
	flag.Parse()

	level, ok := utils.ParseLogLevel(logLevel)
	utils.InitLogger(level)
	if !ok {
		log.Warn().Str("log", logLevel).Msg("unknown log level, using info")
	}

	addr := cfg.DefaultAddr
	if flag.NArg() > 0 {
		addr = flag.Arg(0)
	}
	cfg.MaxSessions = limit

	actor, handle := game.NewActor(cfg)
	go actor.Run()

	srv := server.New(handle, cfg)
	log.Info().Str("addr", addr).Int("limit", limit).Msg("starting service")
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}
