// Package ece implements Encrypted Content-Encoding for HTTP, the
// AES-128-GCM record-framing scheme used by Web Push and related
// protocols (RFC 8188 and the draft it evolved from).
//
// # Wire Variants
//
// Three wire formats are supported, selected explicitly via [Variant]
// rather than sniffed from which parameters happen to be set:
//
//   - [VariantAES128GCM]: the modern, self-describing format. A binary
//     header carrying the salt, record size, and keyid precedes the
//     ciphertext; records are fixed length on the wire and the last one
//     is marked with a delimiter bit.
//
//   - [VariantAESGCM] and [VariantAESGCM128]: the legacy Web Push
//     formats. Salt, record size, keyid, and any ECDH public key are
//     carried out of band (typically HTTP headers); the ciphertext ends
//     with a mandatory short terminal record instead of a delimiter bit.
//
// # Key Derivation
//
// Content keys are never used directly. Every variant derives a 16-byte
// AES key and a 12-byte nonce base from the underlying input keying
// material — an explicit key, an ECDH shared secret, or raw keystore
// bytes — through HKDF-SHA-256 (RFC 5869), optionally mixed with an
// auth secret first. See [Encrypt] and [Decrypt].
//
// # Critical Security Notes
//
// A record's AES-GCM nonce is derived from the record counter and must
// never repeat under the same key; this package derives nonces
// internally and callers cannot reuse or replay one without also
// re-running the whole key schedule.
//
// Decrypting a truncated ciphertext must fail rather than silently
// return a short plaintext — see [ErrTruncatedPayload]. Some
// implementations that otherwise look like aes128gcm skip checking the
// delimiter bit on decrypt, which lets a truncated stream pass silently;
// this package always enforces it.
//
// # Key Management
//
// Key material may be supplied directly via [Params.Key], referenced by
// [Params.KeyID] against a [Keystore], or derived from [Params.DH]
// against a keystore entry holding an ECDH private key. Use [SaveKey] to
// register key material or an ECDH private key under an identifier.
//
// # Base64 Encoding
//
// This package's core never encodes or decodes base64; that is an
// external collaborator's job. [DecodeParam] and
// [EncodeParam] are provided as a convenience for callers whose
// transport carries parameters as base64url text (the HTTP-header
// convention Web Push uses).
package ece
