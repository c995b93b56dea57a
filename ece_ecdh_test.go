package ece

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kmosiejczuk/encrypted-content-encoding/internal/ecdhkey"
)

func TestEncryptDecrypt_ECDH_RoleSymmetry(t *testing.T) {
	t.Parallel()
	ks := NewKeystore()

	recipient, err := ecdhkey.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveKey(ks, "recipient", recipient.Bytes(), "P-256"); err != nil {
		t.Fatal(err)
	}

	sender, err := ecdhkey.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveKey(ks, "sender", sender.Bytes(), "P-256"); err != nil {
		t.Fatal(err)
	}

	salt := randomBytes(t, 16)
	authSecret := randomBytes(t, 16)
	plaintext := []byte("encrypted by A to B's public key")

	encParams := NewParams(VariantAESGCM,
		WithSalt(salt),
		WithKeyID("sender"),
		WithDH(recipient.Public().Bytes()),
		WithAuthSecret(authSecret),
		WithKeystore(ks),
	)
	ciphertext, err := Encrypt(plaintext, encParams)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	decParams := NewParams(VariantAESGCM,
		WithSalt(salt),
		WithKeyID("recipient"),
		WithDH(sender.Public().Bytes()),
		WithAuthSecret(authSecret),
		WithKeystore(ks),
	)
	recovered, err := Decrypt(ciphertext, decParams)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Errorf("recovered = %q, want %q", recovered, plaintext)
	}
}

func TestEncrypt_ECDH_RejectsRawEntryUsedAsECDHKey(t *testing.T) {
	t.Parallel()
	ks := NewKeystore()
	key := randomBytes(t, 16)
	// Saved as raw 16-byte key material, not an ECDH private key.
	if err := SaveKey(ks, "raw-entry", key, ""); err != nil {
		t.Fatal(err)
	}

	peer, err := ecdhkey.Generate()
	if err != nil {
		t.Fatal(err)
	}

	params := NewParams(VariantAESGCM,
		WithSalt(randomBytes(t, 16)),
		WithKeyID("raw-entry"),
		WithDH(peer.Public().Bytes()),
		WithKeystore(ks),
	)
	_, err = Encrypt([]byte("x"), params)
	if !errors.Is(err, ErrUnknownKeyID) {
		t.Errorf("error = %v, want ErrUnknownKeyID", err)
	}
}

func TestEncrypt_ECDH_RejectsMissingLabel(t *testing.T) {
	t.Parallel()
	ks := NewKeystore()
	priv, err := ecdhkey.Generate()
	if err != nil {
		t.Fatal(err)
	}
	// Bypass SaveKey to build an ECDH entry with no label, which SaveKey
	// itself never produces (it always sets one when dhLabel is non-empty).
	ks.Put("unlabeled", KeyEntry{ECDHKey: priv})

	peer, err := ecdhkey.Generate()
	if err != nil {
		t.Fatal(err)
	}
	params := NewParams(VariantAESGCM,
		WithSalt(randomBytes(t, 16)),
		WithKeyID("unlabeled"),
		WithDH(peer.Public().Bytes()),
		WithKeystore(ks),
	)
	_, err = Encrypt([]byte("x"), params)
	if !errors.Is(err, ErrMissingDHLabel) {
		t.Errorf("error = %v, want ErrMissingDHLabel", err)
	}
}

func TestEncrypt_ECDH_RequiresKeyID(t *testing.T) {
	t.Parallel()
	peer, err := ecdhkey.Generate()
	if err != nil {
		t.Fatal(err)
	}
	params := NewParams(VariantAESGCM,
		WithSalt(randomBytes(t, 16)),
		WithDH(peer.Public().Bytes()),
	)
	_, err = Encrypt([]byte("x"), params)
	if err == nil {
		t.Fatal("expected MissingKeyMaterial when dh is set without a keyid")
	}
}
