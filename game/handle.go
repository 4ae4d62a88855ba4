// File: game/handle.go
package game

// Handle is the producer side of the actor's command queue. It is safe for
// use from any number of sessions concurrently.
type Handle struct {
	cmds chan<- Command
}

// Connect registers a session's sink under a nickname and waits for the
// minted ConnID. The nickname errors of errors.go come back unwrapped.
func (h *Handle) Connect(tx chan Outbound, nickname string) (ConnID, error) {
	reply := make(chan ConnectReply, 1)
	h.cmds <- ConnectCommand{ConnTx: tx, Nickname: nickname, Reply: reply}
	res := <-reply
	return res.ID, res.Err
}

// Disconnect removes a user. Fire-and-forget; removal is idempotent.
func (h *Handle) Disconnect(id ConnID) {
	h.cmds <- DisconnectCommand{ConnID: id}
}

// Vote records a ballot. Fire-and-forget.
func (h *Handle) Vote(id ConnID, vote Vote) {
	h.cmds <- VoteCommand{ConnID: id, Vote: vote}
}

// SetStatus flips a user between Active and Away. Fire-and-forget.
func (h *Handle) SetStatus(id ConnID, status UserStatus) {
	h.cmds <- SetStatusCommand{ConnID: id, Status: status}
}

// Close stops the actor. The queue itself stays open, so sessions that
// outlive the actor can still issue fire-and-forget commands safely; the
// commands land in the buffer and are never processed.
func (h *Handle) Close() {
	h.cmds <- StopCommand{}
}
