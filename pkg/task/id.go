// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package task

import "sync/atomic"

// ID uniquely identifies a task for the lifetime of the process. IDs
// are never reused, not even after the task they belonged to was
// removed, so a stale reference can never silently alias a newer
// task. Zero is reserved as the "no identity" sentinel of serialized
// forms.
type ID uint64

// idSeed is the first ID handed out by allocateID. Starting in the
// middle of the representable range keeps freshly allocated IDs clear
// of the (typically small) IDs found in persisted state.
const idSeed ID = 1 << 63

// nextID is the process-wide ID allocation counter.
var nextID atomic.Uint64

func init() {
	nextID.Store(uint64(idSeed))
}

// allocateID returns a fresh, never-before-issued task ID.
func allocateID() ID {
	return ID(nextID.Add(1) - 1)
}

// reserveIDs advances the allocation counter past the given ID so
// that identifiers loaded from persisted state can never collide with
// ones allocated later in this process.
func reserveIDs(id ID) {
	for {
		current := nextID.Load()
		if uint64(id) < current {
			return
		}
		if nextID.CompareAndSwap(current, uint64(id)+1) {
			return
		}
	}
}
