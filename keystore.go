package ece

import (
	"github.com/kmosiejczuk/encrypted-content-encoding/internal/ecdhkey"
	"github.com/kmosiejczuk/encrypted-content-encoding/internal/keystore"
)

// Keystore is a mapping from a short identifier to either raw
// content-key material or an ECDH private key. Implementations must
// tolerate concurrent Get calls serialized against Put.
type Keystore = keystore.Store

// KeyEntry is one stored keystore record; see Keystore.
type KeyEntry = keystore.Entry

// NewKeystore returns an empty in-memory Keystore, safe for use from
// multiple goroutines.
func NewKeystore() Keystore {
	return keystore.NewMemory()
}

// DefaultKeystore returns the package-level keystore singleton used by any
// Params that leaves Keystore nil. It is a convenience, not a semantic
// requirement: callers that want isolation should build their own with
// NewKeystore and set Params.Keystore.
func DefaultKeystore() Keystore {
	return keystore.Default()
}

// SaveKey registers key material under id.
//
//   - If dhLabel is empty, keyMaterial is treated as a 16-byte raw content
//     key, usable directly as KeyID-resolved IKM.
//   - If dhLabel is non-empty, keyMaterial is parsed as a raw ECDH P-256
//     private-key scalar, and dhLabel becomes the NUL-terminated label
//     mixed into the DH context blob.
func SaveKey(ks Keystore, id string, keyMaterial []byte, dhLabel string) error {
	if ks == nil {
		ks = DefaultKeystore()
	}

	if dhLabel == "" {
		raw := make([]byte, len(keyMaterial))
		copy(raw, keyMaterial)
		ks.Put(id, KeyEntry{Raw: raw})
		return nil
	}

	priv, err := ecdhkey.ParsePrivateKey(keyMaterial)
	if err != nil {
		return asError(err)
	}
	label := append([]byte(dhLabel), 0x00)
	ks.Put(id, KeyEntry{ECDHKey: priv, Label: label})
	return nil
}
