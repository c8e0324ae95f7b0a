// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package metadata

import (
	"iter"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/errs"
)

// Error is the default error class for the metadata package.
var Error = errs.Class("metadata")

// Entry is a single custom metadata key-value pair.
type Entry struct {
	Key   string
	Value string
}

// Custom is a container for custom information of a specific item.
//
// Keys are unique, so only one value can be associated with each. The zero
// value is an empty container ready to use.
//
// Custom isn't safe for concurrent use. A View returned by Export aliases the
// entries, so callers sharing a Custom between goroutines must guard the
// container and every use of its views with the same lock.
type Custom struct {
	entries map[string]string

	// generation is bumped on every mutation, views capture it.
	generation uint64
	cache      *exportCache
}

// NewCustom creates a custom metadata container with the passed entries.
// When a key appears more than once the last value wins.
func NewCustom(entries ...Entry) *Custom {
	custom := &Custom{
		entries: make(map[string]string, len(entries)),
	}
	for _, entry := range entries {
		custom.entries[entry.Key] = entry.Value
	}
	return custom
}

// NewCustomFromMap creates a custom metadata container with the entries of m.
func NewCustomFromMap(m map[string]string) *Custom {
	custom := &Custom{
		entries: make(map[string]string, len(m)),
	}
	for key, value := range m {
		custom.entries[key] = value
	}
	return custom
}

// Count returns the current number of entries.
func (custom *Custom) Count() int {
	return len(custom.entries)
}

// Get returns the value associated with key and whether it exists.
func (custom *Custom) Get(key string) (value string, ok bool) {
	value, ok = custom.entries[key]
	return value, ok
}

// Insert sets the value of key, returning true when the key existed and its
// value got replaced.
//
// Insert always invalidates the exported view, even when value doesn't change.
func (custom *Custom) Insert(key, value string) (replaced bool) {
	custom.invalidate()

	if custom.entries == nil {
		custom.entries = make(map[string]string)
	}
	_, replaced = custom.entries[key]
	custom.entries[key] = value
	return replaced
}

// Delete removes key, returning true when it existed.
//
// Delete always invalidates the exported view, even when key doesn't exist.
func (custom *Custom) Delete(key string) (existed bool) {
	custom.invalidate()

	_, existed = custom.entries[key]
	delete(custom.entries, key)
	return existed
}

// All returns an iterator over all the key-value pairs in no particular
// order. The iterator can be used more than once.
func (custom *Custom) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for key, value := range custom.entries {
			if !yield(key, value) {
				return
			}
		}
	}
}

// Keys returns the keys sorted in ascending order.
func (custom *Custom) Keys() []string {
	keys := make([]string, 0, len(custom.entries))
	for key := range custom.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the entries.
func (custom *Custom) Map() map[string]string {
	m := make(map[string]string, len(custom.entries))
	for key, value := range custom.entries {
		m[key] = value
	}
	return m
}

// Clone returns a deep copy of custom. The copy doesn't share the exported
// view of custom.
func (custom *Custom) Clone() *Custom {
	clone := &Custom{
		entries: make(map[string]string, len(custom.entries)),
	}
	for key, value := range custom.entries {
		clone.entries[strings.Clone(key)] = strings.Clone(value)
	}
	return clone
}

// Generation returns the number of mutations applied to custom.
func (custom *Custom) Generation() uint64 {
	return custom.generation
}

// Verify checks that every key and value is valid UTF-8.
func (custom *Custom) Verify() error {
	var invalid []string
	for key, value := range custom.entries {
		if !utf8.ValidString(key) || !utf8.ValidString(value) {
			invalid = append(invalid, strconv.Quote(key))
		}
	}
	if len(invalid) == 0 {
		return nil
	}

	sort.Strings(invalid)
	return Error.New("invalid UTF-8 in entries: %s", strings.Join(invalid, ", "))
}

// invalidate drops the exported view and starts a new generation.
func (custom *Custom) invalidate() {
	custom.generation++
	if custom.cache != nil {
		custom.cache.reset()
	}
}
