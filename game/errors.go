// File: game/errors.go
package game

import (
	"errors"
	"fmt"
)

// ErrNicknameEmpty rejects identification with a blank nickname. Its text
// travels to the client in the close frame, so it is capitalized prose.
var ErrNicknameEmpty = errors.New("Nickname cannot be empty")

// NicknameInUseError rejects identification with a nickname another
// current user already holds.
type NicknameInUseError struct {
	Nickname string
}

func (e *NicknameInUseError) Error() string {
	return fmt.Sprintf("Nickname %s is already in use", e.Nickname)
}
