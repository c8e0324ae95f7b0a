// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package main

// #include "uplink_definitions.h"
import "C"

import (
	"unsafe"

	"storj.io/uplinkmeta/internal/foreign"
	"storj.io/uplinkmeta/metadata"
)

// The C structs and the metadata foreign types must have the same size.
var (
	_ [unsafe.Sizeof(C.UplinkCustomMetadataEntry{}) - unsafe.Sizeof(metadata.ForeignEntry{})]struct{}
	_ [unsafe.Sizeof(metadata.ForeignEntry{}) - unsafe.Sizeof(C.UplinkCustomMetadataEntry{})]struct{}
	_ [unsafe.Sizeof(C.UplinkCustomMetadata{}) - unsafe.Sizeof(metadata.Foreign{})]struct{}
	_ [unsafe.Sizeof(metadata.Foreign{}) - unsafe.Sizeof(C.UplinkCustomMetadata{})]struct{}
)

//export uplink_custom_metadata_new
// uplink_custom_metadata_new creates an empty custom metadata container.
func uplink_custom_metadata_new() C.UplinkCustomMetadataRef {
	return newCustomMetadataRef(metadata.NewCustom())
}

//export uplink_custom_metadata_count
// uplink_custom_metadata_count returns the number of entries.
func uplink_custom_metadata_count(ref C.UplinkCustomMetadataRef, cErr **C.char) C.size_t {
	custom, ok := customMetadata(ref)
	if !ok {
		*cErr = C.CString("invalid custom metadata")
		return 0
	}

	return C.size_t(custom.Count())
}

//export uplink_custom_metadata_get
// uplink_custom_metadata_get looks up key. When it exists, value is set to a
// copy of its value which must be freed with uplink_free_bytes.
func uplink_custom_metadata_get(ref C.UplinkCustomMetadataRef, key *C.char, keyLength C.size_t, value **C.char, valueLength *C.size_t, cErr **C.char) C.bool {
	custom, ok := customMetadata(ref)
	if !ok {
		*cErr = C.CString("invalid custom metadata")
		return false
	}

	v, ok := custom.Get(goStringN(key, keyLength))
	if !ok {
		return false
	}

	*value = (*C.char)(C.CBytes([]byte(v)))
	*valueLength = C.size_t(len(v))
	return true
}

//export uplink_custom_metadata_insert
// uplink_custom_metadata_insert sets the value of key, returning true when
// the key existed. It invalidates any previously exported metadata.
func uplink_custom_metadata_insert(ref C.UplinkCustomMetadataRef, key *C.char, keyLength C.size_t, value *C.char, valueLength C.size_t, cErr **C.char) C.bool {
	custom, ok := customMetadata(ref)
	if !ok {
		*cErr = C.CString("invalid custom metadata")
		return false
	}

	return C.bool(custom.Insert(goStringN(key, keyLength), goStringN(value, valueLength)))
}

//export uplink_custom_metadata_delete
// uplink_custom_metadata_delete removes key, returning true when it existed.
// It invalidates any previously exported metadata.
func uplink_custom_metadata_delete(ref C.UplinkCustomMetadataRef, key *C.char, keyLength C.size_t, cErr **C.char) C.bool {
	custom, ok := customMetadata(ref)
	if !ok {
		*cErr = C.CString("invalid custom metadata")
		return false
	}

	return C.bool(custom.Delete(goStringN(key, keyLength)))
}

//export uplink_custom_metadata_clone
// uplink_custom_metadata_clone creates an independent copy.
func uplink_custom_metadata_clone(ref C.UplinkCustomMetadataRef, cErr **C.char) C.UplinkCustomMetadataRef {
	custom, ok := customMetadata(ref)
	if !ok {
		*cErr = C.CString("invalid custom metadata")
		return C.UplinkCustomMetadataRef{}
	}

	return newCustomMetadataRef(custom.Clone())
}

//export uplink_custom_metadata_verify
// uplink_custom_metadata_verify reports entries that aren't valid UTF-8.
func uplink_custom_metadata_verify(ref C.UplinkCustomMetadataRef, cErr **C.char) {
	custom, ok := customMetadata(ref)
	if !ok {
		*cErr = C.CString("invalid custom metadata")
		return
	}

	if err := custom.Verify(); err != nil {
		*cErr = C.CString(err.Error())
	}
}

//export uplink_custom_metadata_export
// uplink_custom_metadata_export returns the entries of the container without
// copying them. The result must not be freed and it's valid until the
// container is mutated or freed.
func uplink_custom_metadata_export(ref C.UplinkCustomMetadataRef, cErr **C.char) C.UplinkCustomMetadata {
	custom, ok := customMetadata(ref)
	if !ok {
		*cErr = C.CString("invalid custom metadata")
		return C.UplinkCustomMetadata{}
	}

	desc, err := custom.Export().Foreign()
	if err != nil {
		*cErr = C.CString(err.Error())
		return C.UplinkCustomMetadata{}
	}

	return *(*C.UplinkCustomMetadata)(unsafe.Pointer(desc))
}

//export uplink_custom_metadata_import
// uplink_custom_metadata_import creates a container with a copy of every
// entry of cCustom. cCustom can be freed right after the call.
func uplink_custom_metadata_import(cCustom C.UplinkCustomMetadata, cErr **C.char) C.UplinkCustomMetadataRef {
	custom, err := foreign.Import((*metadata.Foreign)(unsafe.Pointer(&cCustom)))
	if err != nil {
		*cErr = C.CString(err.Error())
		return C.UplinkCustomMetadataRef{}
	}

	return newCustomMetadataRef(custom)
}

//export uplink_free_custom_metadata
// uplink_free_custom_metadata releases the container. Exported metadata
// isn't valid after this call.
func uplink_free_custom_metadata(ref C.UplinkCustomMetadataRef) {
	universe.Del(Handle(ref._handle))
}

//export uplink_free_bytes
// uplink_free_bytes frees memory returned by this library.
func uplink_free_bytes(bytes unsafe.Pointer) {
	C.free(bytes)
}

//export uplink_free_error
// uplink_free_error frees an error message returned by this library.
func uplink_free_error(cErr *C.char) {
	C.free(unsafe.Pointer(cErr))
}

func newCustomMetadataRef(custom *metadata.Custom) C.UplinkCustomMetadataRef {
	return C.UplinkCustomMetadataRef{_handle: C.size_t(universe.Add(custom))}
}

func customMetadata(ref C.UplinkCustomMetadataRef) (*metadata.Custom, bool) {
	custom, ok := universe.Get(Handle(ref._handle)).(*metadata.Custom)
	return custom, ok
}

// goStringN copies length bytes at data. data doesn't need to be NUL
// terminated.
func goStringN(data *C.char, length C.size_t) string {
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(data)), int(length)))
}
