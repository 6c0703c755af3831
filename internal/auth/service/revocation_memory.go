package service

import (
	"context"
	"sync"
	"time"
)

// memoryRevocationStore implements RevocationStore as a mutex-guarded map.
//
// The map grows with logouts and shrinks again through a background prune loop
// that drops entries whose token expiry has passed; before expiry an entry is
// never removed. Membership checks are O(1).
type memoryRevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time // token hash -> token expiry
}

// NewMemoryRevocationStore creates an in-process revocation store. If
// pruneInterval is positive, a background loop removes expired entries at that
// interval.
func NewMemoryRevocationStore(pruneInterval time.Duration) RevocationStore {
	store := &memoryRevocationStore{
		entries: make(map[string]time.Time),
	}

	if pruneInterval > 0 {
		go store.pruneExpired(context.Background(), pruneInterval)
	}

	return store
}

// Revoke inserts a token hash. Inserting an existing hash is a no-op.
func (s *memoryRevocationStore) Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[tokenHash]; ok && existing.After(expiresAt) {
		return nil
	}
	s.entries[tokenHash] = expiresAt
	return nil
}

// IsRevoked reports whether a token hash is present.
func (s *memoryRevocationStore) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[tokenHash]
	return ok, nil
}

// pruneExpired periodically drops entries whose token expiry has passed.
// Expired tokens fail verification on their own, so removal never changes
// observable behavior.
func (s *memoryRevocationStore) pruneExpired(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now().UTC()
			s.mu.Lock()
			for hash, expiresAt := range s.entries {
				if expiresAt.Before(now) {
					delete(s.entries, hash)
				}
			}
			s.mu.Unlock()
		}
	}
}
