// Copyright 2024-2026, the eza-community contributors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package ezacomp holds the flag descriptor table describing eza's
// command-line surface, for consumption by shell completion engines.
//
// A descriptor table is a Registry of Flag rows. Each row names one option of
// the wrapped tool: its canonical long name, an optional single-character
// alias, its arity and a display description. Flags come in 2 arities:
//
//	Single - a flag which expects a value
//	Standalone - a boolean flag which takes no value
//
// A Registry is built once, sealed, and never mutated afterwards. The
// completion sub-package turns a sealed Registry into per-shell completion
// scripts; the eza sub-package carries the actual table.
package ezacomp

import (
	"fmt"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/eza-community/ezacomp/completion"
)

// Registry is an insertion-ordered, immutable-after-Seal table of Flag
// descriptors. Long names are unique; short aliases, when present, are unique.
type Registry struct {
	flags  *orderedmap.OrderedMap // long name -> *Flag
	lookup map[string]string      // short alias -> long name
	sealed bool
}

// NewRegistry returns an empty descriptor table.
func NewRegistry() *Registry {
	return &Registry{
		flags:  orderedmap.New(),
		lookup: map[string]string{},
	}
}

// Register adds a Flag descriptor to the table. Descriptors are validated on
// entry so that a sealed Registry never holds a malformed row: the long name
// must be present, dash-free and unique, the short alias (when given) must be
// a single character and unique, the description must be non-empty, and only
// Single flags may declare accepted values.
func (r *Registry) Register(flag *Flag) error {
	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", ErrSealedRegistry, flag.Long)
	}
	if err := validateFlag(flag); err != nil {
		return err
	}
	if _, found := r.flags.Get(flag.Long); found {
		return fmt.Errorf("%w: %q", ErrDuplicateFlag, flag.Long)
	}
	if flag.Short != "" {
		if long, found := r.lookup[flag.Short]; found {
			return fmt.Errorf("%w: %q is taken by --%s", ErrDuplicateShortFlag, flag.Short, long)
		}
		r.lookup[flag.Short] = flag.Long
	}
	r.flags.Set(flag.Long, flag)

	return nil
}

func validateFlag(flag *Flag) error {
	if flag.Long == "" {
		return ErrEmptyFlagName
	}
	if flag.Long[0] == '-' || (flag.Short != "" && flag.Short[0] == '-') {
		return fmt.Errorf("%w: %q", ErrMalformedFlagName, flag.Long)
	}
	if flag.Description == "" {
		return fmt.Errorf("%w: --%s", ErrEmptyDescription, flag.Long)
	}
	if flag.Short != "" && utf8.RuneCountInString(flag.Short) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidShortFlag, flag.Short)
	}
	if flag.TypeOf == Standalone && len(flag.AcceptedValues) > 0 {
		return fmt.Errorf("%w: --%s", ErrUnexpectedValues, flag.Long)
	}

	return nil
}

// Seal freezes the table. Register returns ErrSealedRegistry afterwards.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether the table has been frozen.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return r.flags.Len()
}

// Get returns the descriptor registered under the given long name.
func (r *Registry) Get(long string) (*Flag, error) {
	value, found := r.flags.Get(long)
	if !found {
		return nil, fmt.Errorf("%w: --%s", ErrFlagNotFound, long)
	}

	return value.(*Flag), nil
}

// GetByShort returns the descriptor whose short alias matches.
func (r *Registry) GetByShort(short string) (*Flag, error) {
	long, found := r.lookup[short]
	if !found {
		return nil, fmt.Errorf("%w: -%s", ErrFlagNotFound, short)
	}

	return r.Get(long)
}

// Flags returns all descriptors in registration order.
func (r *Registry) Flags() []*Flag {
	flags := make([]*Flag, 0, r.flags.Len())
	for pair := r.flags.Oldest(); pair != nil; pair = pair.Next() {
		flags = append(flags, pair.Value.(*Flag))
	}

	return flags
}

// CompletionData flattens the table into the structure consumed by the
// completion script generators, preserving registration order.
func (r *Registry) CompletionData() completion.Data {
	data := completion.Data{
		Flags:  make([]completion.FlagEntry, 0, r.flags.Len()),
		Values: make(map[string][]completion.ValueEntry),
	}

	for pair := r.flags.Oldest(); pair != nil; pair = pair.Next() {
		flag := pair.Value.(*Flag)
		data.Flags = append(data.Flags, completion.FlagEntry{
			Long:        flag.Long,
			Short:       flag.Short,
			Description: flag.Description,
			Standalone:  flag.TypeOf == Standalone,
		})
		for _, value := range flag.AcceptedValues {
			data.Values[flag.Long] = append(data.Values[flag.Long], completion.ValueEntry{
				Pattern:     value.Pattern,
				Description: value.Description,
			})
		}
	}

	return data
}
