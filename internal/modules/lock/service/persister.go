package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/reshetovitsme/group-guard-bot/internal/modules/chat/store"
	"github.com/reshetovitsme/group-guard-bot/internal/modules/lock/repository"
	"github.com/samber/oops"
)

// Persister mirrors the in-memory lock state into a repository.
type Persister struct {
	repo  repository.Repository
	store *store.Store
	locks *xsync.MapOf[int64, *sync.Mutex]
}

// NewPersister creates a new lock persister
func NewPersister(repo repository.Repository, store *store.Store) *Persister {
	return &Persister{
		repo:  repo,
		store: store,
		locks: xsync.NewMapOf[int64, *sync.Mutex](),
	}
}

// Sync saves the chat's current snapshot. Saves of one chat are serialized
// and always read the latest state, so the last save never persists an
// older snapshot than an earlier one.
func (p *Persister) Sync(ctx context.Context, chatID int64) error {
	mu, _ := p.locks.LoadOrCompute(chatID, func() *sync.Mutex { return &sync.Mutex{} })
	mu.Lock()
	defer mu.Unlock()

	if err := p.repo.SaveLocks(ctx, p.store.GetLockConfig(chatID)); err != nil {
		return oops.With("chat_id", chatID).Wrap(err)
	}
	return nil
}

// Load restores every persisted snapshot into the store.
func (p *Persister) Load(ctx context.Context) error {
	configs, err := p.repo.GetAllLocks(ctx)
	if err != nil {
		return oops.With("context", "failed to load lock snapshots").Wrap(err)
	}
	for _, cfg := range configs {
		p.store.Restore(cfg)
	}
	slog.Info("Lock snapshots restored", "chats", len(configs))
	return nil
}
