package common

import (
	"fmt"
	"strings"
	"sync"

	"github.com/puzpuzpuz/xsync/v2"
)

// KeyLocker serializes check-then-act sequences on a per-key basis. It backs
// the duplicate-participation and duplicate-request checks, which would
// otherwise race between the read and the write.
type KeyLocker struct {
	mutexes *xsync.MapOf[string, *sync.Mutex]
}

func NewKeyLocker() *KeyLocker {
	return &KeyLocker{mutexes: xsync.NewMapOf[*sync.Mutex]()}
}

func (l *KeyLocker) Lock(keys ...any) {
	l.mutex(keys...).Lock()
}

func (l *KeyLocker) Unlock(keys ...any) {
	l.mutex(keys...).Unlock()
}

func (l *KeyLocker) mutex(keys ...any) *sync.Mutex {
	// The delimiter keeps distinct tuples from mapping to the same key.
	parts := make([]string, len(keys))
	for i := range keys {
		parts[i] = fmt.Sprint(keys[i])
	}

	m, _ := l.mutexes.LoadOrCompute(strings.Join(parts, "|"), func() *sync.Mutex {
		return &sync.Mutex{}
	})
	return m
}
