// Package keystore provides the keystore collaborator: a mapping from a
// short identifier to either raw 16-byte key material or an ECDH
// private-key handle, optionally tagged with a label used in the DH
// context.
//
// The store is read on every Encrypt/Decrypt call and written only
// through Put; it must be safe for concurrent readers and serialized
// writers.
package keystore

import (
	"sync"

	"github.com/kmosiejczuk/encrypted-content-encoding/internal/ecdhkey"
)

// Entry associates a keyid with either raw key bytes or an ECDH private
// key.
type Entry struct {
	// Raw is 16 bytes of content-key material, or nil if this entry
	// holds an ECDH private key instead.
	Raw []byte
	// ECDHKey is the ECDH private key this entry was saved under, or nil
	// if this entry holds raw key material instead. Exactly one of Raw
	// and ECDHKey is set.
	ECDHKey *ecdhkey.PrivateKey
	// Label is the NUL-terminated ASCII label used in the DH context
	// blob. Only meaningful when ECDHKey is set.
	Label []byte
}

// Store is the keystore collaborator interface. Implementations must be
// safe for concurrent Get calls, serialized against Put.
type Store interface {
	Get(id string) (Entry, bool)
	Put(id string, entry Entry)
}

// Memory is the package-provided in-memory Store: a mutex-guarded map,
// safe for concurrent readers and serialized writers.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemory returns an empty in-memory keystore.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

// Get implements Store.
func (m *Memory) Get(id string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[id]
	return e, ok
}

// Put implements Store.
func (m *Memory) Put(id string, entry Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = entry
}

var (
	defaultOnce  sync.Once
	defaultStore *Memory
)

// Default returns the package-level default keystore singleton. It is a
// convenience for callers that don't need per-client isolation; no
// operation requires it.
func Default() *Memory {
	defaultOnce.Do(func() { defaultStore = NewMemory() })
	return defaultStore
}
