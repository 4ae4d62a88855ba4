// File: game/game.go
package game

import (
	"sort"

	"github.com/google/uuid"
)

// ConnID is the opaque identifier minted for one connection.
type ConnID uuid.UUID

// NewConnID mints a random connection identifier.
func NewConnID() ConnID {
	return ConnID(uuid.New())
}

func (id ConnID) String() string {
	return uuid.UUID(id).String()
}

// User is one connected participant. The Tx sink is exclusively owned by
// this entry; the actor closes it when the entry is removed.
type User struct {
	Nickname string
	Tx       chan Outbound
	Vote     Vote
	Status   UserStatus
	Ord      int // order of the latest valid vote this round; 0 = none
}

// Game is the room state. Only the actor goroutine may touch it.
type Game struct {
	users map[ConnID]*User
}

// NewGame returns an empty room.
func NewGame() *Game {
	return &Game{users: make(map[ConnID]*User)}
}

func (g *Game) nicknameTaken(nickname string) bool {
	for _, user := range g.users {
		if user.Nickname == nickname {
			return true
		}
	}
	return false
}

func (g *Game) maxOrd() int {
	max := 0
	for _, user := range g.users {
		if user.Ord > max {
			max = user.Ord
		}
	}
	return max
}

func (g *Game) activeUsers() []*User {
	active := make([]*User, 0, len(g.users))
	for _, user := range g.users {
		if user.Status == Active {
			active = append(active, user)
		}
	}
	return active
}

// AllVoted reports round completion: every user has a valid vote or is
// away. Vacuously true for the empty room.
func (g *Game) AllVoted() bool {
	for _, user := range g.users {
		if user.Status == Away {
			continue
		}
		if !user.Vote.IsValid() {
			return false
		}
	}
	return true
}

// AnyoneVoted reports whether some active user has a valid vote.
func (g *Game) AnyoneVoted() bool {
	for _, user := range g.users {
		if user.Status == Active && user.Vote.IsValid() {
			return true
		}
	}
	return false
}

// UsersSummary lists the active nicknames in lexicographic order.
func (g *Game) UsersSummary() Outbound {
	users := make([]string, 0, len(g.users))
	for _, user := range g.activeUsers() {
		users = append(users, user.Nickname)
	}
	sort.Strings(users)
	return UserListMessage(users)
}

// VotesSummary derives the votes view over active users. Once everyone has
// voted it is the final reveal, ordered by who voted first; until then it
// is a status board with voters (in voting order) ahead of holdouts (by
// nickname).
func (g *Game) VotesSummary() Outbound {
	active := g.activeUsers()

	if g.AllVoted() {
		sort.SliceStable(active, func(i, j int) bool {
			return active[i].Ord < active[j].Ord
		})
		votes := make([]Pair, 0, len(active))
		for _, user := range active {
			votes = append(votes, Pair{user.Nickname, user.Vote.String()})
		}
		return VotesResultMessage(votes)
	}

	var voted, notVoted []*User
	for _, user := range active {
		if user.Vote.IsValid() {
			voted = append(voted, user)
		} else {
			notVoted = append(notVoted, user)
		}
	}
	sort.SliceStable(voted, func(i, j int) bool {
		return voted[i].Ord < voted[j].Ord
	})
	sort.SliceStable(notVoted, func(i, j int) bool {
		return notVoted[i].Nickname < notVoted[j].Nickname
	})

	statuses := make([]Pair, 0, len(active))
	for _, user := range voted {
		statuses = append(statuses, Pair{user.Nickname, user.Vote.Status().String()})
	}
	for _, user := range notVoted {
		statuses = append(statuses, Pair{user.Nickname, user.Vote.Status().String()})
	}
	return VotesStatusMessage(statuses)
}

// resetVotes clears every ballot and voting order, ending the round.
func (g *Game) resetVotes() {
	for _, user := range g.users {
		user.Vote = VoteNull
		user.Ord = 0
	}
}
