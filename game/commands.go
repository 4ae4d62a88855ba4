// File: game/commands.go
package game

// Commands are the tagged messages the actor drains in FIFO order. Every
// command carries an optional reply channel; leaving it nil makes the
// command fire-and-forget.

// Command is implemented by every message the actor accepts.
type Command interface {
	isCommand()
}

// ConnectCommand registers a session's outbound sink under a nickname.
type ConnectCommand struct {
	ConnTx   chan Outbound
	Nickname string
	Reply    chan<- ConnectReply
}

// ConnectReply carries the minted ConnID, or the nickname error.
type ConnectReply struct {
	ID  ConnID
	Err error
}

// DisconnectCommand removes a user. Removal is idempotent.
type DisconnectCommand struct {
	ConnID ConnID
	Reply  chan<- error
}

// VoteCommand records a ballot for a user.
type VoteCommand struct {
	ConnID ConnID
	Vote   Vote
	Reply  chan<- error
}

// SetStatusCommand flips a user between Active and Away.
type SetStatusCommand struct {
	ConnID ConnID
	Status UserStatus
	Reply  chan<- error
}

// StopCommand shuts the actor down. The queue stays open so sessions
// still winding down can issue commands without panicking; they are
// simply never processed.
type StopCommand struct{}

func (ConnectCommand) isCommand()    {}
func (DisconnectCommand) isCommand() {}
func (VoteCommand) isCommand()       {}
func (SetStatusCommand) isCommand()  {}
func (StopCommand) isCommand()       {}
