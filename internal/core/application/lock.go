package application

import (
	"bytes"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// entityLocker serializes negotiation transitions touching the same
// entities. A transition locks the exchange, its two games and any linked
// parent/child before the read-validate-write sequence, always in ascending
// id order so that two overlapping transitions cannot deadlock.
type entityLocker struct {
	mtx   sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newEntityLocker() *entityLocker {
	return &entityLocker{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock acquires the mutex of every given id in ascending order. Duplicated
// ids are collapsed. The returned function releases all of them.
func (l *entityLocker) Lock(ids ...uuid.UUID) func() {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	sort.Slice(unique, func(i, j int) bool {
		return bytes.Compare(unique[i][:], unique[j][:]) < 0
	})

	locks := make([]*sync.Mutex, 0, len(unique))
	for _, id := range unique {
		locks = append(locks, l.lockFor(id))
	}
	for _, lock := range locks {
		lock.Lock()
	}

	return func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}
}

func (l *entityLocker) lockFor(id uuid.UUID) *sync.Mutex {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	lock, ok := l.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[id] = lock
	}
	return lock
}
