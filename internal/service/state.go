// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"errors"
	"fmt"
)

// State is a step of a single lookup run. Runs move strictly forward through
// AwaitingInput, Resolving, Querying and Presenting and end in either Done or
// Aborted.
type State int

const (
	AwaitingInput State = iota
	Resolving
	Querying
	Presenting
	Done
	Aborted
)

// ErrNoResultsFound is returned when no named point of interest is left after filtering.
var ErrNoResultsFound = errors.New("no named points of interest found")

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting input"
	case Resolving:
		return "resolving"
	case Querying:
		return "querying"
	case Presenting:
		return "presenting"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("unknown state %d", int(s))
	}
}

// activity describes what a run does while in the given state.
func (s State) activity() string {
	switch s {
	case Resolving:
		return "geocoding address"
	case Querying:
		return "querying points of interest"
	case Presenting:
		return "rendering map"
	default:
		return s.String()
	}
}

// StageError ties an error to the state the run was in when it occurred.
type StageError struct {
	Stage State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
