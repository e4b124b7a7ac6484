package localdate

import (
	"context"
	"sync"
)

// accountLocks serializa os jobs de uma mesma conta dentro do processo
type accountLocks struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func newAccountLocks() *accountLocks {
	return &accountLocks{slots: make(map[string]chan struct{})}
}

func (l *accountLocks) slot(accountID string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[accountID]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[accountID] = slot
	}
	return slot
}

// lock espera a vez da conta ou o cancelamento do contexto
func (l *accountLocks) lock(ctx context.Context, accountID string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slot := l.slot(accountID)

	select {
	case slot <- struct{}{}:
		return func() { <-slot }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
