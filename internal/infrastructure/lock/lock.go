package lock

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// PlayerLockManager serializes score saves per player. Saves for different
// players never contend with each other.
type PlayerLockManager struct {
	locks sync.Map // map[int64]*sync.Mutex
}

func NewPlayerLockManager() *PlayerLockManager {
	return &PlayerLockManager{}
}

// Lock acquires the lock for the given playerID, honoring context
// cancellation and a 5 second ceiling.
func (m *PlayerLockManager) Lock(ctx context.Context, playerID int64) error {
	mu := m.getOrCreateMutex(playerID)

	lockChan := make(chan struct{})
	go func() {
		mu.Lock()
		close(lockChan)
	}()

	select {
	case <-lockChan:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to acquire lock for player %d: %w", playerID, ctx.Err())
	case <-time.After(5 * time.Second):
		return fmt.Errorf("failed to acquire lock for player %d: timeout", playerID)
	}
}

// Unlock releases the lock for the given playerID
func (m *PlayerLockManager) Unlock(playerID int64) {
	muInterface, ok := m.locks.Load(playerID)
	if !ok {
		return
	}
	muInterface.(*sync.Mutex).Unlock()
}

// TryLock attempts to acquire the lock without blocking
func (m *PlayerLockManager) TryLock(playerID int64) bool {
	return m.getOrCreateMutex(playerID).TryLock()
}

func (m *PlayerLockManager) getOrCreateMutex(playerID int64) *sync.Mutex {
	if mu, ok := m.locks.Load(playerID); ok {
		return mu.(*sync.Mutex)
	}
	actual, _ := m.locks.LoadOrStore(playerID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
