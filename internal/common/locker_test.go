package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_KeyLocker_DistinctTuples(t *testing.T) {
	locker := NewKeyLocker()

	// ("e1", "1u") and ("e11", "u") concatenate to the same string; they
	// must still map to independent locks.
	locker.Lock("e1", "1u")
	defer locker.Unlock("e1", "1u")

	acquired := make(chan struct{})
	go func() {
		locker.Lock("e11", "u")
		defer locker.Unlock("e11", "u")
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		require.FailNow(t, "distinct key tuples share a lock")
	}
}

func Test_KeyLocker_SameTuple(t *testing.T) {
	locker := NewKeyLocker()

	locker.Lock("event1", "user1")

	acquired := make(chan struct{})
	go func() {
		locker.Lock("event1", "user1")
		defer locker.Unlock("event1", "user1")
		close(acquired)
	}()

	select {
	case <-acquired:
		require.FailNow(t, "same key tuple did not serialize")
	case <-time.After(50 * time.Millisecond):
	}

	locker.Unlock("event1", "user1")

	select {
	case <-acquired:
	case <-time.After(time.Second):
		require.FailNow(t, "lock was not released")
	}
}
