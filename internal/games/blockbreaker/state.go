package blockbreaker

import (
	"errors"
	"fmt"
	"slices"
)

// State is the session lifecycle phase.
type State int

const (
	StateTitle State = iota
	StateReady
	StatePlaying
	StatePaused
	StateClear
	StateGameOver
)

// ErrInvalidTransition is returned for state changes outside the transition table.
var ErrInvalidTransition = errors.New("blockbreaker: invalid state transition")

var transitions = map[State][]State{
	StateTitle:   {StateReady},
	StateReady:   {StatePlaying},
	StatePlaying: {StatePaused, StateClear, StateGameOver},
	StatePaused:  {StatePlaying},
}

// CanTransition reports whether from -> to is allowed.
func CanTransition(from, to State) bool {
	return slices.Contains(transitions[from], to)
}

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateClear:
		return "clear"
	case StateGameOver:
		return "gameover"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Finished reports whether the run is over.
func (s State) Finished() bool {
	return s == StateClear || s == StateGameOver
}
