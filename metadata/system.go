// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package metadata

import "time"

// System is a container of system information of a specific item.
// It's provided by the service and only the service can alter it.
type System struct {
	// Created is when the item was created.
	Created time.Time
	// Expires is when the item expires. It's zero when it never expires.
	Expires time.Time
	// ContentLength is the length of the data associated to the item.
	//
	// It's signed because the service uses signed lengths.
	ContentLength int64
}

// SystemFromUnix creates system metadata from the layout used by the uplink
// C bindings: seconds since the Unix epoch, where expires 0 means the item
// never expires.
func SystemFromUnix(created, expires, contentLength int64) System {
	system := System{
		Created:       time.Unix(created, 0).UTC(),
		ContentLength: contentLength,
	}
	if expires != 0 {
		system.Expires = time.Unix(expires, 0).UTC()
	}
	return system
}

// Unix returns the system metadata in the layout used by the uplink C
// bindings.
func (system System) Unix() (created, expires, contentLength int64) {
	if !system.Created.IsZero() {
		created = system.Created.Unix()
	}
	if system.Expiring() {
		expires = system.Expires.Unix()
	}
	return created, expires, system.ContentLength
}

// Expiring returns whether the item has an expiration time.
func (system System) Expiring() bool {
	return !system.Expires.IsZero()
}

// Expired returns whether the item is expired at now.
func (system System) Expired(now time.Time) bool {
	return system.Expiring() && !now.Before(system.Expires)
}
