// File: game/messages.go
package game

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// UserStatus is a user's presence flag. Away users stay connected but are
// excluded from the roster and from the round-completion check.
type UserStatus int

const (
	Active UserStatus = iota
	Away
)

func (s UserStatus) String() string {
	if s == Away {
		return "Away"
	}
	return "Active"
}

// ParseUserStatus maps the wire representation back to a status.
func ParseUserStatus(text string) (UserStatus, bool) {
	switch text {
	case "Active":
		return Active, true
	case "Away":
		return Away, true
	default:
		return Active, false
	}
}

func (s UserStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *UserStatus) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	status, ok := ParseUserStatus(text)
	if !ok {
		return fmt.Errorf("unknown user status %q", text)
	}
	*s = status
	return nil
}

// --- Inbound messages (client -> server) ---

type InboundKind int

const (
	InboundUnknown InboundKind = iota
	InboundConnect
	InboundVote
	InboundSetStatus
)

// Inbound is a decoded client message. Kind selects which field is set.
type Inbound struct {
	Kind     InboundKind
	Nickname string     // InboundConnect
	Value    string     // InboundVote: raw vote text, parsed via ParseVote
	Status   UserStatus // InboundSetStatus
}

// DecodeInboundJSON parses the JSON framing: a single-key object tagged
// with the lowercase variant name. Malformed JSON is an error; well-formed
// JSON with no recognized key decodes to InboundUnknown.
func DecodeInboundJSON(data []byte) (Inbound, error) {
	var envelope struct {
		Connect *struct {
			Nickname string `json:"nickname"`
		} `json:"connect"`
		Vote *struct {
			Value string `json:"value"`
		} `json:"vote"`
		SetStatus *UserStatus `json:"setstatus"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return Inbound{Kind: InboundUnknown}, err
	}

	switch {
	case envelope.Connect != nil:
		return Inbound{Kind: InboundConnect, Nickname: envelope.Connect.Nickname}, nil
	case envelope.Vote != nil:
		return Inbound{Kind: InboundVote, Value: envelope.Vote.Value}, nil
	case envelope.SetStatus != nil:
		return Inbound{Kind: InboundSetStatus, Status: *envelope.SetStatus}, nil
	default:
		return Inbound{Kind: InboundUnknown}, nil
	}
}

// DecodeInboundText parses the line-text framing by its first token:
// "/join <nickname>", "/setaway", "/setback", or a bare vote.
func DecodeInboundText(line string) Inbound {
	line = strings.TrimSpace(line)
	if line == "" {
		return Inbound{Kind: InboundUnknown}
	}

	token, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		token, rest = line[:i], line[i+1:]
	}

	switch token {
	case "/join":
		// The remainder of the line is the nickname, verbatim; trimming
		// is the actor's job.
		return Inbound{Kind: InboundConnect, Nickname: rest}
	case "/setaway":
		return Inbound{Kind: InboundSetStatus, Status: Away}
	case "/setback":
		return Inbound{Kind: InboundSetStatus, Status: Active}
	default:
		return Inbound{Kind: InboundVote, Value: token}
	}
}

// --- Outbound messages (server -> client) ---

type OutboundKind int

const (
	OutboundUnknown OutboundKind = iota
	OutboundUserList
	OutboundVotesStatus
	OutboundVotesResult
	OutboundYourVote
	OutboundYourStatus
	OutboundError
)

// Pair is a (nickname, value) entry, rendered as a two-element JSON array.
type Pair [2]string

// Outbound is a server message. Kind selects which field is meaningful.
type Outbound struct {
	Kind   OutboundKind
	Users  []string   // OutboundUserList
	Votes  []Pair     // OutboundVotesStatus, OutboundVotesResult
	Value  string     // OutboundYourVote, OutboundError
	Status UserStatus // OutboundYourStatus
}

func UserListMessage(users []string) Outbound {
	if users == nil {
		users = []string{}
	}
	return Outbound{Kind: OutboundUserList, Users: users}
}

func VotesStatusMessage(votes []Pair) Outbound {
	if votes == nil {
		votes = []Pair{}
	}
	return Outbound{Kind: OutboundVotesStatus, Votes: votes}
}

func VotesResultMessage(votes []Pair) Outbound {
	if votes == nil {
		votes = []Pair{}
	}
	return Outbound{Kind: OutboundVotesResult, Votes: votes}
}

func YourVoteMessage(vote Vote) Outbound {
	return Outbound{Kind: OutboundYourVote, Value: vote.String()}
}

func YourStatusMessage(status UserStatus) Outbound {
	return Outbound{Kind: OutboundYourStatus, Status: status}
}

func ErrorMessage(text string) Outbound {
	return Outbound{Kind: OutboundError, Value: text}
}

// MarshalJSON emits the single-key snake_case object of the JSON framing.
func (m Outbound) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case OutboundUserList:
		return json.Marshal(map[string][]string{"user_list": m.Users})
	case OutboundVotesStatus:
		return json.Marshal(map[string][]Pair{"votes_status": m.Votes})
	case OutboundVotesResult:
		return json.Marshal(map[string][]Pair{"votes_result": m.Votes})
	case OutboundYourVote:
		return json.Marshal(map[string]string{"your_vote": m.Value})
	case OutboundYourStatus:
		return json.Marshal(map[string]UserStatus{"your_status": m.Status})
	case OutboundError:
		return json.Marshal(map[string]string{"error": m.Value})
	default:
		return nil, fmt.Errorf("cannot encode outbound message of kind %d", m.Kind)
	}
}

// UnmarshalJSON accepts anything MarshalJSON emits. Objects with no
// recognized key decode to OutboundUnknown.
func (m *Outbound) UnmarshalJSON(data []byte) error {
	var envelope struct {
		UserList    *[]string   `json:"user_list"`
		VotesStatus *[]Pair     `json:"votes_status"`
		VotesResult *[]Pair     `json:"votes_result"`
		YourVote    *string     `json:"your_vote"`
		YourStatus  *UserStatus `json:"your_status"`
		Error       *string     `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	switch {
	case envelope.UserList != nil:
		*m = UserListMessage(*envelope.UserList)
	case envelope.VotesStatus != nil:
		*m = VotesStatusMessage(*envelope.VotesStatus)
	case envelope.VotesResult != nil:
		*m = VotesResultMessage(*envelope.VotesResult)
	case envelope.YourVote != nil:
		*m = Outbound{Kind: OutboundYourVote, Value: *envelope.YourVote}
	case envelope.YourStatus != nil:
		*m = YourStatusMessage(*envelope.YourStatus)
	case envelope.Error != nil:
		*m = ErrorMessage(*envelope.Error)
	default:
		*m = Outbound{Kind: OutboundUnknown}
	}
	return nil
}

// String renders the human-readable line-text framing.
func (m Outbound) String() string {
	switch m.Kind {
	case OutboundUserList:
		if len(m.Users) == 0 {
			return "Users: nobody is active"
		}
		return "Users: " + strings.Join(m.Users, ", ")
	case OutboundVotesStatus, OutboundVotesResult:
		entries := make([]string, 0, len(m.Votes))
		for _, pair := range m.Votes {
			entries = append(entries, pair[0]+": "+pair[1])
		}
		return "Votes: " + strings.Join(entries, ", ")
	case OutboundYourVote:
		return "You voted: " + m.Value
	case OutboundYourStatus:
		if m.Status == Away {
			return "You are away"
		}
		return "You are active"
	case OutboundError:
		return "Error: " + m.Value
	default:
		return "Unknown message"
	}
}
