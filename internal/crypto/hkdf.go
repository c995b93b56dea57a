package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// extract implements RFC 5869 HKDF-Extract: PRK = HMAC-SHA256(salt, ikm).
func extract(salt, ikm []byte) []byte {
	return hkdf.Extract(sha256.New, ikm, salt)
}

// expand implements RFC 5869 HKDF-Expand: it produces length bytes of
// T(1) || T(2) || ... bound to info, truncated to length. length never
// exceeds 255*32 per RFC 5869; callers in this package only ever ask for
// 16, 12, or 32 bytes.
func expand(prk, info []byte, length int) ([]byte, error) {
	r := hkdf.Expand(sha256.New, prk, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

// hkdfExpand is a one-shot extract-then-expand, used for mixing an auth
// secret into the IKM before the real key schedule runs, where no
// intermediate PRK is otherwise needed.
func hkdfExpand(ikm, salt, info []byte, length int) ([]byte, error) {
	return expand(extract(salt, ikm), info, length)
}
