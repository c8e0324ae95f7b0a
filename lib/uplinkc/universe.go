// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package main

import "sync"

// Handle is a generic handle.
type Handle = uintptr

// Handles stores different Go values that need to be accessed from C.
type Handles struct {
	lock   sync.Mutex
	nextID Handle
	values map[Handle]interface{}
}

// NewHandles creates a place to store go files by handle.
func NewHandles() *Handles {
	return &Handles{
		values: make(map[Handle]interface{}),
	}
}

// Add adds a value to the table.
func (m *Handles) Add(x interface{}) Handle {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.nextID++
	m.values[m.nextID] = x
	return m.nextID
}

// Get gets a value.
func (m *Handles) Get(x Handle) interface{} {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.values[x]
}

// Del deletes the value.
func (m *Handles) Del(x Handle) {
	m.lock.Lock()
	defer m.lock.Unlock()

	delete(m.values, x)
}

// Empty returns whether the handles table is empty.
func (m *Handles) Empty() bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	return len(m.values) == 0
}

// universe stores all the Go values handed out to C.
var universe = NewHandles()
