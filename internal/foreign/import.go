// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

// Package foreign reconstructs custom metadata handed over by the uplink C
// bindings.
package foreign

import (
	"unsafe"

	"github.com/zeebo/errs"

	"storj.io/uplinkmeta/metadata"
)

// Error is the error class for importing foreign metadata.
var Error = errs.Class("foreign metadata")

// Import creates a custom metadata container from its C representation.
//
// Every key and value is copied, so the caller can free desc and the memory it
// points to once Import returns. Keys and values are read with their explicit
// lengths: they may contain NUL bytes and they aren't NUL terminated.
//
// desc must come from the uplink C bindings: Count must be the exact number of
// records and every record must point to readable memory of the stated
// lengths. None of that is checked. Keys and values are assumed to be valid
// UTF-8 and they aren't verified either.
//
// It never returns an error at this time, the error is part of the signature
// so verifications can be added without changing it.
func Import(desc *metadata.Foreign) (*metadata.Custom, error) {
	if desc == nil || desc.Count == 0 {
		return metadata.NewCustom(), nil
	}

	records := unsafe.Slice(desc.Entries, desc.Count)
	entries := make([]metadata.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, metadata.Entry{
			Key:   copyString(record.Key, record.KeyLength),
			Value: copyString(record.Value, record.ValueLength),
		})
	}

	return metadata.NewCustom(entries...), nil
}

// copyString copies n bytes starting at data into a new string.
func copyString(data *byte, n uintptr) string {
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice(data, n))
}
