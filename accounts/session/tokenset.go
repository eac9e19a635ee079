package session

import (
	"context"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
)

type (
	// TokenSet remembers revoked session ids until their natural
	// expiry would have invalidated them anyway.
	TokenSet interface {
		Save(ctx context.Context, token string) error
		Contains(ctx context.Context, token string) (bool, error)
	}

	memSet struct {
		cache *bigcache.BigCache
	}
)

// InMemoryTokenSet keeps revocations in process memory. Entries live
// for ttl, which should match the session lifetime: after that the
// token is dead by expiry and the record is useless.
func InMemoryTokenSet(ttl time.Duration) TokenSet {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(ttl))
	return &memSet{cache: cache}
}

func (m *memSet) Save(ctx context.Context, token string) error {
	return m.cache.Set(token, []byte{1})
}

func (m *memSet) Contains(ctx context.Context, token string) (bool, error) {
	buf, err := m.cache.Get(token)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return len(buf) > 0 && buf[0] == 1, nil
}
