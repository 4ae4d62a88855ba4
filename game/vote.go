// File: game/vote.go
package game

import (
	"strconv"
	"strings"
)

// Vote is a single user's ballot. Zero is the null vote (nothing cast),
// VoteUnknown is the "?" card, and the positive values are the estimation
// options.
type Vote int

const (
	VoteNull    Vote = 0
	VoteUnknown Vote = -1
)

var voteOptions = [...]int{1, 2, 3, 5, 8, 13}

// NewVote maps a numeric value to a vote. Anything outside the option set
// becomes the null vote.
func NewVote(value int) Vote {
	for _, option := range voteOptions {
		if value == option {
			return Vote(value)
		}
	}
	return VoteNull
}

// ParseVote reads a vote from its wire text. "?" is the unknown vote; any
// unparsable or out-of-range text collapses to the null vote.
func ParseVote(text string) Vote {
	text = strings.TrimSpace(text)
	if text == "?" {
		return VoteUnknown
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return VoteNull
	}
	return NewVote(value)
}

// VoteStatus tells whether a ballot counts without revealing it.
type VoteStatus int

const (
	NotVoted VoteStatus = iota
	Voted
)

func (s VoteStatus) String() string {
	if s == Voted {
		return "voted"
	}
	return "not voted"
}

// Status reports whether this ballot counts toward round completion.
func (v Vote) Status() VoteStatus {
	if v.IsValid() {
		return Voted
	}
	return NotVoted
}

// IsValid reports whether the vote was actually cast this round. The
// unknown vote is a deliberate ballot and counts.
func (v Vote) IsValid() bool {
	return v != VoteNull
}

func (v Vote) String() string {
	switch v {
	case VoteNull:
		return "not voted"
	case VoteUnknown:
		return "?"
	default:
		return strconv.Itoa(int(v))
	}
}
