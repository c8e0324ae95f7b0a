// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandles(t *testing.T) {
	handles := NewHandles()
	require.True(t, handles.Empty())

	a := handles.Add("a")
	b := handles.Add("b")
	require.NotEqual(t, a, b)
	require.False(t, handles.Empty())

	require.Equal(t, "a", handles.Get(a))
	require.Equal(t, "b", handles.Get(b))
	require.Nil(t, handles.Get(b+1))

	handles.Del(a)
	require.Nil(t, handles.Get(a))
	require.False(t, handles.Empty())

	handles.Del(b)
	require.True(t, handles.Empty())

	// handles aren't reused.
	require.NotEqual(t, b, handles.Add("c"))
}
