// File: game/actor.go
package game

import (
	"strings"

	"github.com/rs/zerolog/log"

	"planningpoker/utils"
)

// Actor owns the Game and serializes every mutation through its command
// queue. Spawn exactly one with `go actor.Run()`; sessions talk to it
// through the Handle returned by NewActor.
type Actor struct {
	game *Game
	cmds chan Command
	cfg  utils.Config
}

// NewActor creates the actor and the handle feeding its command queue.
func NewActor(cfg utils.Config) (*Actor, *Handle) {
	actor := &Actor{
		game: NewGame(),
		cmds: make(chan Command, cfg.CommandBuffer),
		cfg:  cfg,
	}
	return actor, &Handle{cmds: actor.cmds}
}

// Run drains the command queue in FIFO order until a StopCommand arrives.
func (a *Actor) Run() {
	log.Info().Msg("game started")
	for cmd := range a.cmds {
		if _, ok := cmd.(StopCommand); ok {
			break
		}
		a.process(cmd)
	}
	log.Info().Msg("game stopped")
}

func (a *Actor) process(cmd Command) {
	switch c := cmd.(type) {
	case ConnectCommand:
		id, err := a.connect(c.ConnTx, c.Nickname)
		if c.Reply != nil {
			c.Reply <- ConnectReply{ID: id, Err: err}
		}
	case DisconnectCommand:
		a.disconnect(c.ConnID)
		if c.Reply != nil {
			c.Reply <- nil
		}
	case VoteCommand:
		a.vote(c.ConnID, c.Vote)
		if c.Reply != nil {
			c.Reply <- nil
		}
	case SetStatusCommand:
		a.setStatus(c.ConnID, c.Status)
		if c.Reply != nil {
			c.Reply <- nil
		}
	default:
		log.Warn().Type("command", cmd).Msg("unknown command")
	}
}

func (a *Actor) connect(tx chan Outbound, nickname string) (ConnID, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return ConnID{}, ErrNicknameEmpty
	}
	if len(nickname) > a.cfg.MaxNicknameBytes {
		log.Warn().Str("nickname", nickname).Int("max", a.cfg.MaxNicknameBytes).
			Msg("nickname too long, truncating")
		nickname = nickname[:a.cfg.MaxNicknameBytes]
	}
	// Uniqueness is decided on the stored form, so a long nickname that
	// truncates onto an existing one is rejected too.
	if a.game.nicknameTaken(nickname) {
		return ConnID{}, &NicknameInUseError{Nickname: nickname}
	}

	id := NewConnID()
	a.game.users[id] = &User{
		Nickname: nickname,
		Tx:       tx,
		Vote:     VoteNull,
		Status:   Active,
	}
	log.Info().Str("nickname", nickname).Msg("user identified")

	a.broadcast(a.game.UsersSummary())
	if a.game.AnyoneVoted() {
		// Let the newcomer see the round in progress right away.
		a.broadcast(a.game.VotesSummary())
	}
	return id, nil
}

func (a *Actor) disconnect(id ConnID) {
	user, ok := a.game.users[id]
	if !ok {
		return
	}
	log.Info().Str("nickname", user.Nickname).Msg("user disconnected")
	delete(a.game.users, id)
	close(user.Tx)
	a.broadcast(a.game.UsersSummary())
}

func (a *Actor) vote(id ConnID, vote Vote) {
	user, ok := a.game.users[id]
	if !ok {
		return
	}
	if vote.IsValid() {
		// A re-vote bubbles the user to the latest position.
		user.Ord = a.game.maxOrd() + 1
	}
	user.Vote = vote
	log.Debug().Str("nickname", user.Nickname).Stringer("vote", vote).Msg("vote cast")

	a.send(user, YourVoteMessage(vote))
	a.broadcast(a.game.VotesSummary())

	if a.game.AllVoted() {
		// The VotesResult just broadcast is the final view of the round.
		a.game.resetVotes()
		log.Debug().Msg("round complete, votes reset")
	}
}

func (a *Actor) setStatus(id ConnID, status UserStatus) {
	user, ok := a.game.users[id]
	if !ok {
		return
	}
	user.Status = status
	log.Info().Str("nickname", user.Nickname).Stringer("status", status).Msg("status changed")

	a.send(user, YourStatusMessage(status))
	a.broadcast(a.game.UsersSummary())
}

// send enqueues without blocking. A full or closed sink loses the message;
// the broadcast must never stall the actor.
func (a *Actor) send(user *User, msg Outbound) {
	select {
	case user.Tx <- msg:
	default:
		log.Warn().Str("nickname", user.Nickname).Msg("outbound sink full, dropping message")
	}
}

func (a *Actor) broadcast(msg Outbound) {
	for _, user := range a.game.users {
		a.send(user, msg)
	}
}
