package cart

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

const keyPrefix = "soucey-cart:"

// Key is the storage key of the cart owned by owner.
func Key(owner string) string { return keyPrefix + owner }

// Storage is the durable key/value storage a cart is mirrored to.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

type MemoryStorage struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: map[string]string{}}
}

func (m *MemoryStorage) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStorage) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Load reads the line items saved under key. Absent or unreadable data
// yields an empty cart.
func Load(storage Storage, key string, log *zap.Logger) []LineItem {
	log = orNop(log)
	raw, ok, err := storage.Get(key)
	if err != nil {
		log.Warn("cart storage read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn("cart storage holds unreadable data", zap.String("key", key), zap.Error(err))
		return nil
	}
	return items
}

// Persist mirrors every change of s to storage under key.
// Write failures are logged; the in-memory state stays authoritative.
func Persist(s *Store, storage Storage, key string, log *zap.Logger) func() {
	log = orNop(log)
	return s.Subscribe(func(items []LineItem) {
		if len(items) == 0 {
			if err := storage.Remove(key); err != nil {
				log.Warn("cart storage remove failed", zap.String("key", key), zap.Error(err))
			}
			return
		}
		raw, err := json.Marshal(items)
		if err != nil {
			log.Warn("cart encode failed", zap.String("key", key), zap.Error(err))
			return
		}
		if err := storage.Set(key, string(raw)); err != nil {
			log.Warn("cart storage write failed", zap.String("key", key), zap.Error(err))
		}
	})
}

// Open hydrates a store from storage and keeps storage in sync with it.
func Open(storage Storage, key string, log *zap.Logger) *Store {
	s := New(Load(storage, key, log)...)
	Persist(s, storage, key, log)
	return s
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
