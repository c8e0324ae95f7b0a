// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package main

// #include "uplink_definitions.h"
import "C"

import (
	"time"

	"storj.io/uplinkmeta/metadata"
)

//export uplink_system_metadata_expired
// uplink_system_metadata_expired returns whether the item is expired at now,
// in seconds since the Unix epoch.
func uplink_system_metadata_expired(cSystem C.UplinkSystemMetadata, now C.int64_t) C.bool {
	system := systemMetadataFromC(cSystem)
	return C.bool(system.Expired(time.Unix(int64(now), 0)))
}

func systemMetadataFromC(cSystem C.UplinkSystemMetadata) metadata.System {
	return metadata.SystemFromUnix(
		int64(cSystem.created),
		int64(cSystem.expires),
		int64(cSystem.content_length),
	)
}

func systemMetadataToC(system metadata.System) C.UplinkSystemMetadata {
	created, expires, contentLength := system.Unix()
	return C.UplinkSystemMetadata{
		created:        C.int64_t(created),
		expires:        C.int64_t(expires),
		content_length: C.int64_t(contentLength),
	}
}
