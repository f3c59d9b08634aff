// Package keylock provides mutual exclusion scoped to a string key.
// The ledger and progression manager use it to serialize work on a single
// (user, skill) pair without blocking unrelated users or skills.
package keylock

import "sync"

// KeyedMutex hands out one mutex per key, created on first use.
// Mutexes are never discarded; the key space here (users × skills a user
// actually touches) is small enough that reclamation isn't worth the races
// it invites.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty KeyedMutex.
func New() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, blocking until it is held.
// The returned function releases it.
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
