// Package store keeps the per-chat moderation state: lock configuration and
// the cached administrator list. It performs no I/O.
package store

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/reshetovitsme/group-guard-bot/internal/modules/lock/domain"
	"github.com/samber/lo"
)

// AdminCache is the set of users known to administer a chat, owner included.
type AdminCache struct {
	ChatID    int64
	Members   map[int64]struct{}
	FetchedAt time.Time
}

func (a AdminCache) Contains(userID int64) bool {
	_, ok := a.Members[userID]
	return ok
}

type chatState struct {
	mu    sync.Mutex
	locks domain.LockConfig
}

// Store is safe for concurrent use. Lock mutations of one chat are
// serialized; different chats never contend.
type Store struct {
	chats  *xsync.MapOf[int64, *chatState]
	admins *expirable.LRU[int64, AdminCache]
	now    func() time.Time
}

// New creates a store whose admin caches stay fresh for adminTTL and which
// remembers admin lists for at most adminCapacity chats.
func New(adminTTL time.Duration, adminCapacity int) *Store {
	return &Store{
		chats:  xsync.NewMapOf[int64, *chatState](),
		admins: expirable.NewLRU[int64, AdminCache](adminCapacity, nil, adminTTL),
		now:    time.Now,
	}
}

func (s *Store) chat(chatID int64) *chatState {
	st, _ := s.chats.LoadOrCompute(chatID, func() *chatState {
		return &chatState{locks: domain.NewLockConfig(chatID)}
	})
	return st
}

// GetLockConfig returns a snapshot of the chat's locks, creating the default
// configuration on first access.
func (s *Store) GetLockConfig(chatID int64) domain.LockConfig {
	st := s.chat(chatID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.locks.Clone()
}

// SetLock enables or disables a category (All expands atomically) and
// returns the resulting snapshot and whether anything changed.
func (s *Store) SetLock(chatID int64, category domain.Category, enabled bool) (domain.LockConfig, bool) {
	st := s.chat(chatID)
	st.mu.Lock()
	defer st.mu.Unlock()
	changed := st.locks.Set(category, enabled)
	if changed {
		st.locks.UpdatedAt = s.now()
	}
	return st.locks.Clone(), changed
}

// Restore installs a persisted configuration, replacing the in-memory one.
func (s *Store) Restore(cfg domain.LockConfig) {
	st := s.chat(cfg.ChatID)
	st.mu.Lock()
	defer st.mu.Unlock()
	restored := domain.NewLockConfig(cfg.ChatID)
	for _, cat := range cfg.Categories {
		if cat.IsValid() {
			restored.Set(cat, true)
		}
	}
	restored.UpdatedAt = cfg.UpdatedAt
	st.locks = restored
}

// LockConfigs returns snapshots of every known chat.
func (s *Store) LockConfigs() []domain.LockConfig {
	out := make([]domain.LockConfig, 0, s.chats.Size())
	s.chats.Range(func(chatID int64, st *chatState) bool {
		st.mu.Lock()
		out = append(out, st.locks.Clone())
		st.mu.Unlock()
		return true
	})
	return out
}

// GetAdminCache returns the chat's admin list if it is present and fresh.
func (s *Store) GetAdminCache(chatID int64) (AdminCache, bool) {
	return s.admins.Get(chatID)
}

// PutAdminCache replaces the chat's admin list.
func (s *Store) PutAdminCache(chatID int64, userIDs []int64) AdminCache {
	cache := AdminCache{
		ChatID:    chatID,
		Members:   lo.SliceToMap(userIDs, func(id int64) (int64, struct{}) { return id, struct{}{} }),
		FetchedAt: s.now(),
	}
	s.admins.Add(chatID, cache)
	return cache
}

// InvalidateAdminCache drops the chat's admin list so the next check refetches it.
func (s *Store) InvalidateAdminCache(chatID int64) {
	s.admins.Remove(chatID)
}
