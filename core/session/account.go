package session

import (
	"sync"

	"github.com/Hellothereeee2312/Portal/core/portal"
)

// Account is the signed-in user of one login. Dashboards read and rename it through
// its methods only, so the gate can hand it out while reporting the current user.
type Account struct {
	mu   sync.RWMutex
	user portal.CurrentUser
}

func NewAccount(usr portal.CurrentUser) *Account {
	return &Account{user: usr}
}

func (a *Account) User() portal.CurrentUser {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

// Rename changes the display name of the session user.
func (a *Account) Rename(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user.Name = name
}
