// Package ecdhkey provides the ECDH backend the key schedule consumes as
// a black box: given a local private key and a peer's public key bytes,
// produce the raw shared secret, and given a private key, produce its
// public key in the uncompressed form the Web Push draft expects.
//
// A private key wraps *ecdh.PrivateKey from the standard library's
// constant-time crypto/ecdh implementation, and public keys round-trip
// through its uncompressed SEC1 byte form.
package ecdhkey

import (
	"crypto/ecdh"
	"crypto/rand"
	"fmt"
)

// PrivateKey is a P-256 ECDH private key.
type PrivateKey struct {
	key *ecdh.PrivateKey
}

// PublicKey is a P-256 ECDH public key in uncompressed SEC1 form.
type PublicKey struct {
	key *ecdh.PublicKey
}

// Generate creates a new random P-256 key pair.
func Generate() (*PrivateKey, error) {
	key, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("ecdhkey: generate: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

// ParsePrivateKey reconstructs a private key from its raw scalar bytes.
func ParsePrivateKey(raw []byte) (*PrivateKey, error) {
	key, err := ecdh.P256().NewPrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("ecdhkey: parse private key: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

// ParsePublicKey reconstructs a public key from its uncompressed SEC1
// bytes (0x04 || X || Y), the form `dh` parameters carry on the wire.
func ParsePublicKey(raw []byte) (*PublicKey, error) {
	key, err := ecdh.P256().NewPublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("ecdhkey: parse public key: %w", err)
	}
	return &PublicKey{key: key}, nil
}

// Public returns the public half of priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{key: priv.key.PublicKey()}
}

// Bytes returns the raw scalar of priv. Treat as sensitive.
func (priv *PrivateKey) Bytes() []byte {
	return priv.key.Bytes()
}

// SharedSecret performs ECDH between priv and peer, returning the raw
// X-coordinate shared secret (32 bytes for P-256). This is the IKM fed
// into HKDF-Extract during key derivation — it is not itself suitable as
// a key.
func (priv *PrivateKey) SharedSecret(peer *PublicKey) ([]byte, error) {
	secret, err := priv.key.ECDH(peer.key)
	if err != nil {
		return nil, fmt.Errorf("ecdhkey: ecdh: %w", err)
	}
	return secret, nil
}

// Bytes returns the uncompressed SEC1 encoding of pub: 0x04 || X || Y.
func (pub *PublicKey) Bytes() []byte {
	return pub.key.Bytes()
}
