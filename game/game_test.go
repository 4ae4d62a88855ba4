// File: game/game_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addUser(g *Game, nickname string) ConnID {
	id := NewConnID()
	g.users[id] = &User{
		Nickname: nickname,
		Tx:       make(chan Outbound, 8),
		Vote:     VoteNull,
		Status:   Active,
	}
	return id
}

func TestAllVoted(t *testing.T) {
	g := NewGame()
	assert.True(t, g.AllVoted(), "empty room is vacuously complete")

	a := addUser(g, "Alice")
	b := addUser(g, "Bob")
	assert.False(t, g.AllVoted())

	g.users[a].Vote = Vote(5)
	assert.False(t, g.AllVoted())

	g.users[b].Vote = VoteUnknown
	assert.True(t, g.AllVoted(), "the ? vote counts as cast")

	g.users[b].Vote = VoteNull
	g.users[b].Status = Away
	assert.True(t, g.AllVoted(), "away users do not block completion")
}

func TestAnyoneVoted(t *testing.T) {
	g := NewGame()
	assert.False(t, g.AnyoneVoted())

	a := addUser(g, "Alice")
	assert.False(t, g.AnyoneVoted())

	g.users[a].Vote = Vote(3)
	assert.True(t, g.AnyoneVoted())

	g.users[a].Status = Away
	assert.False(t, g.AnyoneVoted(), "away votes are invisible")
}

func TestUsersSummary(t *testing.T) {
	g := NewGame()
	msg := g.UsersSummary()
	assert.Equal(t, OutboundUserList, msg.Kind)
	assert.Empty(t, msg.Users)

	addUser(g, "Charlie")
	addUser(g, "Alice")
	b := addUser(g, "Bob")
	g.users[b].Status = Away

	msg = g.UsersSummary()
	assert.Equal(t, []string{"Alice", "Charlie"}, msg.Users, "sorted, away excluded")
}

func TestVotesSummaryStatus(t *testing.T) {
	g := NewGame()
	addUser(g, "Alice")
	b := addUser(g, "Bob")
	c := addUser(g, "Carol")

	// Bob voted first, then Carol; Alice is holding out.
	g.users[b].Vote = Vote(8)
	g.users[b].Ord = 1
	g.users[c].Vote = Vote(3)
	g.users[c].Ord = 2

	msg := g.VotesSummary()
	require.Equal(t, OutboundVotesStatus, msg.Kind)
	assert.Equal(t, []Pair{
		{"Bob", "voted"},
		{"Carol", "voted"},
		{"Alice", "not voted"},
	}, msg.Votes, "voters by voting order, then holdouts by nickname")
}

func TestVotesSummaryResult(t *testing.T) {
	g := NewGame()
	a := addUser(g, "Alice")
	b := addUser(g, "Bob")

	g.users[b].Vote = Vote(13)
	g.users[b].Ord = 1
	g.users[a].Vote = VoteUnknown
	g.users[a].Ord = 2

	msg := g.VotesSummary()
	require.Equal(t, OutboundVotesResult, msg.Kind)
	assert.Equal(t, []Pair{{"Bob", "13"}, {"Alice", "?"}}, msg.Votes)
}

func TestVotesSummaryExcludesAway(t *testing.T) {
	g := NewGame()
	a := addUser(g, "Alice")
	b := addUser(g, "Bob")

	g.users[a].Vote = Vote(1)
	g.users[a].Ord = 1
	g.users[b].Status = Away

	msg := g.VotesSummary()
	require.Equal(t, OutboundVotesResult, msg.Kind, "away holdout does not block the reveal")
	assert.Equal(t, []Pair{{"Alice", "1"}}, msg.Votes)
}

func TestResetVotes(t *testing.T) {
	g := NewGame()
	a := addUser(g, "Alice")
	g.users[a].Vote = Vote(5)
	g.users[a].Ord = 3

	g.resetVotes()
	assert.Equal(t, VoteNull, g.users[a].Vote)
	assert.Zero(t, g.users[a].Ord)
}

func TestMaxOrd(t *testing.T) {
	g := NewGame()
	assert.Zero(t, g.maxOrd())

	a := addUser(g, "Alice")
	b := addUser(g, "Bob")
	g.users[a].Ord = 2
	g.users[b].Ord = 5
	assert.Equal(t, 5, g.maxOrd())
}

func TestNicknameTaken(t *testing.T) {
	g := NewGame()
	addUser(g, "Alice")
	assert.True(t, g.nicknameTaken("Alice"))
	assert.False(t, g.nicknameTaken("alice"), "comparison is case-sensitive")
	assert.False(t, g.nicknameTaken("Bob"))
}
