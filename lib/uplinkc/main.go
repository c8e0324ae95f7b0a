// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

// Package main implements the C bindings of the uplink metadata.
//
// Build it with `go build -buildmode=c-shared` and use it together with
// uplink_definitions.h.
package main

func main() {}
