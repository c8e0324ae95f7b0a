// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package metadata

import (
	"runtime"
	"unsafe"

	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
)

var mon = monkit.Package()

// ErrStaleView is returned when a View is used after its Custom got mutated.
var ErrStaleView = errs.Class("stale metadata view")

// ForeignEntry has the memory layout of UplinkCustomMetadataEntry.
//
// Key and Value aren't NUL terminated and they may contain NUL bytes, their
// lengths are the only source of truth. A zero length field has a nil
// pointer.
type ForeignEntry struct {
	Key         *byte
	KeyLength   uintptr
	Value       *byte
	ValueLength uintptr
}

// Foreign has the memory layout of UplinkCustomMetadata.
//
// Entries is nil when Count is 0.
type Foreign struct {
	Entries *ForeignEntry
	Count   uintptr
}

// View is the exported representation of a Custom. It borrows the memory of
// the Custom it comes from and it's valid as long as the Custom isn't mutated.
type View struct {
	custom     *Custom
	generation uint64
	foreign    *Foreign
}

// Export returns the representation of custom expected by the uplink C
// bindings. The returned view doesn't copy the entries and it's valid as long
// as custom isn't mutated.
//
// Calling Export more than once without mutating custom in between is cheap
// and returns the same underlying records.
func (custom *Custom) Export() View {
	if custom.cache == nil {
		custom.cache = newExportCache(custom)
	}

	if custom.cache.built {
		mon.Event("export_cache_hit")
	} else {
		mon.Event("export_cache_miss")
		custom.cache.build(custom.entries)
	}

	return View{
		custom:     custom,
		generation: custom.generation,
		foreign:    &custom.cache.foreign,
	}
}

// Valid returns whether the view still represents its Custom.
func (view View) Valid() bool {
	return view.custom != nil && view.custom.generation == view.generation
}

// Foreign returns the exported descriptor. Its memory is pinned, so it can be
// handed to C code, until the Custom is mutated or garbage collected.
func (view View) Foreign() (*Foreign, error) {
	if !view.Valid() {
		return nil, ErrStaleView.New("custom metadata mutated after export")
	}
	return view.foreign, nil
}

// Count returns the number of exported entries.
func (view View) Count() (int, error) {
	foreign, err := view.Foreign()
	if err != nil {
		return 0, err
	}
	return int(foreign.Count), nil
}

// Entries returns the exported records. The slice aliases the exported
// memory and must not be modified.
func (view View) Entries() ([]ForeignEntry, error) {
	foreign, err := view.Foreign()
	if err != nil {
		return nil, err
	}
	if foreign.Count == 0 {
		return nil, nil
	}
	return unsafe.Slice(foreign.Entries, foreign.Count), nil
}

// exportCache holds the last exported representation of a Custom.
type exportCache struct {
	pinner  *runtime.Pinner
	records []ForeignEntry
	foreign Foreign
	built   bool
}

// newExportCache creates the cache for custom. Pinned memory is released
// once custom is unreachable.
func newExportCache(custom *Custom) *exportCache {
	cache := &exportCache{pinner: new(runtime.Pinner)}
	runtime.AddCleanup(custom, func(pinner *runtime.Pinner) {
		pinner.Unpin()
	}, cache.pinner)
	return cache
}

func (cache *exportCache) build(entries map[string]string) {
	defer mon.Task()(nil)(nil)

	cache.reset()
	cache.built = true
	if len(entries) == 0 {
		return
	}

	records := make([]ForeignEntry, 0, len(entries))
	for key, value := range entries {
		records = append(records, ForeignEntry{
			Key:         cache.pin(key),
			KeyLength:   uintptr(len(key)),
			Value:       cache.pin(value),
			ValueLength: uintptr(len(value)),
		})
	}
	cache.pinner.Pin(&records[0])

	cache.records = records
	cache.foreign = Foreign{
		Entries: &records[0],
		Count:   uintptr(len(records)),
	}
}

// pin pins the data of s and returns a pointer to it.
func (cache *exportCache) pin(s string) *byte {
	if len(s) == 0 {
		return nil
	}
	data := unsafe.StringData(s)
	cache.pinner.Pin(data)
	return data
}

func (cache *exportCache) reset() {
	cache.pinner.Unpin()
	cache.records = nil
	cache.foreign = Foreign{}
	cache.built = false
}
