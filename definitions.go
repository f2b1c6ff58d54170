// Copyright 2024-2026, the eza-community contributors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

package ezacomp

import (
	"errors"
)

// OptionType defines the arity of a Flag (whether it accepts a value)
type OptionType int

const (
	// Single denotes a Flag accepting a string value
	Single OptionType = 0
	// Standalone denotes a boolean Flag (does not accept a value)
	Standalone OptionType = 1
)

// String returns the canonical spelling of the arity, as used in snapshots.
func (o OptionType) String() string {
	switch o {
	case Standalone:
		return "standalone"
	default:
		return "single"
	}
}

// PatternValue is used to define an acceptable value for a Flag. The Pattern is the literal
// word offered to the shell and the Description is the human-readable text displayed next to it.
type PatternValue struct {
	Pattern     string
	Description string
}

// Flag describes one command-line option of the wrapped tool: its canonical
// long name (without the -- prefix), an optional single-character alias
// (without the - prefix), its arity and its display description. Single flags
// may carry the set of values the shell should offer for the following argument.
type Flag struct {
	Long           string
	Short          string
	Description    string
	TypeOf         OptionType
	AcceptedValues []PatternValue
}

var (
	ErrFlagNotFound       = errors.New("flag not found")
	ErrEmptyFlagName      = errors.New("flag long name may not be empty")
	ErrEmptyDescription   = errors.New("flag description may not be empty")
	ErrMalformedFlagName  = errors.New("flag names are registered without a dash prefix")
	ErrDuplicateFlag      = errors.New("flag long name is already registered")
	ErrDuplicateShortFlag = errors.New("flag short alias is already registered")
	ErrInvalidShortFlag   = errors.New("flag short alias must be a single character")
	ErrUnexpectedValues   = errors.New("standalone flag may not declare accepted values")
	ErrSealedRegistry     = errors.New("registry is sealed")
)
