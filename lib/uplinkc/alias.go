// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package main

// #include "uplink_definitions.h"
import "C"

import (
	"unsafe"

	"storj.io/uplinkmeta/metadata"
)

// CString exposes C.CString for testing.
func CString(s string) *C.char { return C.CString(s) }

// CFree exposes C.free for testing.
func CFree(ptr unsafe.Pointer) { C.free(ptr) }

// CGoString exposes C.GoString for testing.
func CGoString(ptr *C.char) string { return C.GoString(ptr) }

// CGoStringN copies n bytes at ptr for testing.
func CGoStringN(ptr *C.char, n C.size_t) string { return goStringN(ptr, n) }

// CBytesN copies s into C memory and returns it with its length. The memory
// has no trailing NUL byte.
func CBytesN(s string) (*C.char, C.size_t) {
	return (*C.char)(C.CBytes([]byte(s))), C.size_t(len(s))
}

// C types
type Cpchar = *C.char
type Csize_t = C.size_t
type Cint64_t = C.int64_t

// Ref types
type CUplinkCustomMetadataRef = C.UplinkCustomMetadataRef

// Struct types
type CUplinkCustomMetadata = C.UplinkCustomMetadata
type CUplinkCustomMetadataEntry = C.UplinkCustomMetadataEntry
type CUplinkSystemMetadata = C.UplinkSystemMetadata

// NewCSystemMetadata converts system metadata for testing.
func NewCSystemMetadata(system metadata.System) CUplinkSystemMetadata {
	return systemMetadataToC(system)
}

// CCustomMetadataEntries returns the records of a C custom metadata.
func CCustomMetadataEntries(cCustom CUplinkCustomMetadata) []CUplinkCustomMetadataEntry {
	if cCustom.count == 0 {
		return nil
	}
	return unsafe.Slice(cCustom.entries, int(cCustom.count))
}

//export internal_UniverseIsEmpty
// internal_UniverseIsEmpty returns true if nothing is stored in the global map.
func internal_UniverseIsEmpty() bool {
	return universe.Empty()
}
