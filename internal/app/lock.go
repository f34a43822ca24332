package app

import "github.com/saradorri/rpsarena/internal/infrastructure/lock"

func (a *application) InitPlayerLockManager() *lock.PlayerLockManager {
	return lock.NewPlayerLockManager()
}
