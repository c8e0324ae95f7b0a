// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package main

import (
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/require"

	"storj.io/uplinkmeta/metadata"
)

func insertString(t *testing.T, ref CUplinkCustomMetadataRef, key, value string) bool {
	t.Helper()

	cKey, cKeyLength := CBytesN(key)
	defer CFree(unsafe.Pointer(cKey))
	cValue, cValueLength := CBytesN(value)
	defer CFree(unsafe.Pointer(cValue))

	var cerr Cpchar
	replaced := uplink_custom_metadata_insert(ref, cKey, cKeyLength, cValue, cValueLength, &cerr)
	require.Nil(t, cerr)
	return bool(replaced)
}

func getString(t *testing.T, ref CUplinkCustomMetadataRef, key string) (string, bool) {
	t.Helper()

	cKey, cKeyLength := CBytesN(key)
	defer CFree(unsafe.Pointer(cKey))

	var cerr Cpchar
	var cValue Cpchar
	var cValueLength Csize_t
	ok := uplink_custom_metadata_get(ref, cKey, cKeyLength, &cValue, &cValueLength, &cerr)
	require.Nil(t, cerr)
	if !ok {
		return "", false
	}
	defer uplink_free_bytes(unsafe.Pointer(cValue))

	return CGoStringN(cValue, cValueLength), true
}

func exportedEntries(t *testing.T, cCustom CUplinkCustomMetadata) map[string]string {
	t.Helper()

	m := map[string]string{}
	for _, entry := range CCustomMetadataEntries(cCustom) {
		m[CGoStringN(entry.key, entry.key_length)] = CGoStringN(entry.value, entry.value_length)
	}
	return m
}

func TestCustomMetadata(t *testing.T) {
	var cerr Cpchar

	ref := uplink_custom_metadata_new()
	require.NotZero(t, ref._handle)
	defer uplink_free_custom_metadata(ref)

	require.EqualValues(t, 0, uplink_custom_metadata_count(ref, &cerr))
	require.Nil(t, cerr)

	require.False(t, insertString(t, ref, "key-a", "val-a"))
	require.False(t, insertString(t, ref, "key\x00b", "val\x00b"))
	require.True(t, insertString(t, ref, "key-a", "val-a-2"))
	require.EqualValues(t, 2, uplink_custom_metadata_count(ref, &cerr))

	value, ok := getString(t, ref, "key-a")
	require.True(t, ok)
	require.Equal(t, "val-a-2", value)

	value, ok = getString(t, ref, "key\x00b")
	require.True(t, ok)
	require.Equal(t, "val\x00b", value)

	_, ok = getString(t, ref, "key")
	require.False(t, ok)

	cKey, cKeyLength := CBytesN("key-a")
	defer CFree(unsafe.Pointer(cKey))
	require.True(t, bool(uplink_custom_metadata_delete(ref, cKey, cKeyLength, &cerr)))
	require.Nil(t, cerr)
	require.False(t, bool(uplink_custom_metadata_delete(ref, cKey, cKeyLength, &cerr)))
	require.Nil(t, cerr)
	require.EqualValues(t, 1, uplink_custom_metadata_count(ref, &cerr))

	uplink_custom_metadata_verify(ref, &cerr)
	require.Nil(t, cerr)
}

func TestCustomMetadata_Export(t *testing.T) {
	var cerr Cpchar

	ref := uplink_custom_metadata_new()
	defer uplink_free_custom_metadata(ref)

	empty := uplink_custom_metadata_export(ref, &cerr)
	require.Nil(t, cerr)
	require.EqualValues(t, 0, empty.count)
	require.Nil(t, empty.entries)

	insertString(t, ref, "a", "1")
	insertString(t, ref, "b", "2")

	first := uplink_custom_metadata_export(ref, &cerr)
	require.Nil(t, cerr)
	require.EqualValues(t, 2, first.count)
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, exportedEntries(t, first))

	second := uplink_custom_metadata_export(ref, &cerr)
	require.Nil(t, cerr)
	require.Equal(t, uintptr(unsafe.Pointer(first.entries)), uintptr(unsafe.Pointer(second.entries)))

	cKey, cKeyLength := CBytesN("a")
	defer CFree(unsafe.Pointer(cKey))
	uplink_custom_metadata_delete(ref, cKey, cKeyLength, &cerr)
	require.Nil(t, cerr)

	third := uplink_custom_metadata_export(ref, &cerr)
	require.Nil(t, cerr)
	require.EqualValues(t, 1, third.count)
	require.Equal(t, map[string]string{"b": "2"}, exportedEntries(t, third))
}

func TestCustomMetadata_Import(t *testing.T) {
	var cerr Cpchar

	ref := uplink_custom_metadata_new()
	insertString(t, ref, "key-a", "val-a")
	insertString(t, ref, "nul\x00key", "\x00")

	// copy the exported records into C memory, without trailing NUL bytes.
	exported := CCustomMetadataEntries(uplink_custom_metadata_export(ref, &cerr))
	require.Nil(t, cerr)

	records := make([]CUplinkCustomMetadataEntry, len(exported))
	for i, entry := range exported {
		records[i].key, records[i].key_length = CBytesN(CGoStringN(entry.key, entry.key_length))
		records[i].value, records[i].value_length = CBytesN(CGoStringN(entry.value, entry.value_length))
	}
	defer func() {
		for _, record := range records {
			CFree(unsafe.Pointer(record.key))
			CFree(unsafe.Pointer(record.value))
		}
	}()

	uplink_free_custom_metadata(ref)

	var cCustom CUplinkCustomMetadata
	cCustom.entries = &records[0]
	cCustom.count = Csize_t(len(records))

	imported := uplink_custom_metadata_import(cCustom, &cerr)
	require.Nil(t, cerr)
	defer uplink_free_custom_metadata(imported)

	require.EqualValues(t, 2, uplink_custom_metadata_count(imported, &cerr))

	value, ok := getString(t, imported, "key-a")
	require.True(t, ok)
	require.Equal(t, "val-a", value)

	value, ok = getString(t, imported, "nul\x00key")
	require.True(t, ok)
	require.Equal(t, "\x00", value)

	var emptyC CUplinkCustomMetadata
	empty := uplink_custom_metadata_import(emptyC, &cerr)
	require.Nil(t, cerr)
	defer uplink_free_custom_metadata(empty)
	require.EqualValues(t, 0, uplink_custom_metadata_count(empty, &cerr))
}

func TestCustomMetadata_Clone(t *testing.T) {
	var cerr Cpchar

	source := uplink_custom_metadata_new()
	defer uplink_free_custom_metadata(source)
	insertString(t, source, "a", "1")

	clone := uplink_custom_metadata_clone(source, &cerr)
	require.Nil(t, cerr)
	defer uplink_free_custom_metadata(clone)
	require.NotEqual(t, source._handle, clone._handle)

	insertString(t, source, "b", "2")
	require.EqualValues(t, 1, uplink_custom_metadata_count(clone, &cerr))
	require.EqualValues(t, 2, uplink_custom_metadata_count(source, &cerr))
}

func TestCustomMetadata_Verify(t *testing.T) {
	var cerr Cpchar

	ref := uplink_custom_metadata_new()
	defer uplink_free_custom_metadata(ref)
	insertString(t, ref, "bad", "\xff")

	uplink_custom_metadata_verify(ref, &cerr)
	require.NotNil(t, cerr)
	defer uplink_free_error(cerr)
	require.Contains(t, CGoString(cerr), "invalid UTF-8")
}

func TestCustomMetadata_InvalidHandle(t *testing.T) {
	var invalid CUplinkCustomMetadataRef

	for _, call := range []func(cerr *Cpchar){
		func(cerr *Cpchar) { uplink_custom_metadata_count(invalid, cerr) },
		func(cerr *Cpchar) { uplink_custom_metadata_export(invalid, cerr) },
		func(cerr *Cpchar) { uplink_custom_metadata_clone(invalid, cerr) },
		func(cerr *Cpchar) { uplink_custom_metadata_verify(invalid, cerr) },
	} {
		var cerr Cpchar
		call(&cerr)
		require.NotNil(t, cerr)
		require.Equal(t, "invalid custom metadata", CGoString(cerr))
		uplink_free_error(cerr)
	}
}

func TestSystemMetadata(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	never := NewCSystemMetadata(metadata.System{Created: now, ContentLength: 10})
	require.Zero(t, never.expires)
	require.EqualValues(t, 10, never.content_length)
	require.False(t, bool(uplink_system_metadata_expired(never, Cint64_t(now.Unix()))))

	expiring := NewCSystemMetadata(metadata.System{Created: now, Expires: now.Add(time.Hour)})
	require.False(t, bool(uplink_system_metadata_expired(expiring, Cint64_t(now.Unix()))))
	require.True(t, bool(uplink_system_metadata_expired(expiring, Cint64_t(now.Add(time.Hour).Unix()))))

	system := systemMetadataFromC(expiring)
	require.True(t, system.Created.Equal(now))
	require.True(t, system.Expires.Equal(now.Add(time.Hour)))
}

func TestUniverseIsEmptyAfterFree(t *testing.T) {
	require.True(t, internal_UniverseIsEmpty())

	ref := uplink_custom_metadata_new()
	require.False(t, internal_UniverseIsEmpty())

	uplink_free_custom_metadata(ref)
	require.True(t, internal_UniverseIsEmpty())
}
