// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

// Package metadata implements the custom and system metadata of an item.
//
// Custom metadata is provided by users as key-value pairs which must only
// contain valid UTF-8 characters. By convention an application that stores
// metadata should prepend a prefix to the keys, for example an application
// named "Image Board" might use the "image-board:" prefix and a key could be
// "image-board:title".
//
// A Custom container can be exported to the flat layout expected by the
// uplink C bindings without copying its entries. The exported view stays
// valid as long as the container isn't mutated.
package metadata
