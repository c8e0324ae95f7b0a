// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

// Package testrand implements generating random metadata for testing.
package testrand

import (
	"math/rand"
	"strconv"
	"strings"

	"storj.io/uplinkmeta/metadata"
)

// alphabet mixes ASCII, multi-byte characters and the NUL byte.
var alphabet = []rune("abcdefghijklmnopqrstuvwxyz0123456789:-_ ÅäöñßЖ日本語🙂\x00")

// Intn returns, as an int, a non-negative pseudo-random number in [0,n).
// It panics if n <= 0.
func Intn(n int) int {
	return rand.Intn(n)
}

// Text generates valid UTF-8 text with size characters. The text may contain
// NUL bytes.
func Text(size int) string {
	var b strings.Builder
	for i := 0; i < size; i++ {
		b.WriteRune(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

// Entries generates count entries with unique keys.
func Entries(count int) []metadata.Entry {
	entries := make([]metadata.Entry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, metadata.Entry{
			// the index prefix keeps the keys unique.
			Key:   "app:" + strconv.Itoa(i) + ":" + Text(rand.Intn(16)),
			Value: Text(rand.Intn(64)),
		})
	}
	return entries
}

// Custom generates custom metadata with count random entries.
func Custom(count int) *metadata.Custom {
	return metadata.NewCustom(Entries(count)...)
}
