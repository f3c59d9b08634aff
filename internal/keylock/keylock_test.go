package keylock

import (
	"sync"
	"testing"
)

func TestSameKeySerializes(t *testing.T) {
	km := New()

	const workers = 32
	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := km.Lock("u1/css")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Errorf("counter = %d, want %d", counter, workers)
	}
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	km := New()

	unlockA := km.Lock("u1/css")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("u2/css")
		unlockB()
		close(done)
	}()

	<-done // Must complete while u1/css is still held.
}

func TestReacquireAfterUnlock(t *testing.T) {
	km := New()

	unlock := km.Lock("k")
	unlock()
	unlock = km.Lock("k")
	unlock()
}
