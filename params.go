package ece

import (
	"encoding/base64"

	icrypto "github.com/kmosiejczuk/encrypted-content-encoding/internal/crypto"
)

// Params is the header-parameter bundle consumed by Encrypt and Decrypt.
// The zero value is not usable directly; build one with NewParams and
// the With* options.
type Params struct {
	// Variant selects the wire format. Required.
	Variant Variant

	// Salt is the 16-byte HKDF-Extract salt. Required for aesgcm/aesgcm128
	// on both directions; generated automatically for aes128gcm on encrypt
	// if left nil, and ignored for aes128gcm on decrypt, where the salt is
	// read from the in-band header.
	Salt []byte

	// RS is the record size. Zero means DefaultRecordSize.
	RS uint32

	// Key is an explicit 16-byte content key. When set it is the input
	// keying material and DH and the keystore are not consulted; a KeyID
	// set alongside it is still written to the aes128gcm header.
	Key []byte

	// KeyID names a keystore entry. For aes128gcm it is also carried on
	// the wire (encode) or read off the wire (decode); must be ≤ 255 bytes.
	KeyID string

	// DH is the peer's uncompressed P-256 public key, for ECDH mode.
	DH []byte

	// AuthSecret is mixed into the IKM before HKDF-Extract when present.
	AuthSecret []byte

	// Pad is the total padding octet budget to distribute across records.
	// Encrypt only; ignored on decrypt.
	Pad int

	// Keystore resolves KeyID and DH against saved key material. Nil means
	// the package-level DefaultKeystore().
	Keystore Keystore
}

// ParamsOption configures a Params value built by NewParams.
type ParamsOption func(*Params)

// NewParams builds a Params for the given variant with default RS and an
// implicit DefaultKeystore(), applying opts in order.
func NewParams(v Variant, opts ...ParamsOption) Params {
	p := Params{
		Variant: v,
		RS:      DefaultRecordSize,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithSalt sets an explicit salt. Required for the legacy variants; for
// aes128gcm on encrypt, omitting it causes Encrypt to generate one randomly.
func WithSalt(salt []byte) ParamsOption {
	return func(p *Params) { p.Salt = salt }
}

// WithRecordSize sets rs, overriding DefaultRecordSize.
func WithRecordSize(rs uint32) ParamsOption {
	return func(p *Params) { p.RS = rs }
}

// WithKey sets an explicit 16-byte content key.
func WithKey(key []byte) ParamsOption {
	return func(p *Params) { p.Key = key }
}

// WithKeyID sets the keystore identifier.
func WithKeyID(keyid string) ParamsOption {
	return func(p *Params) { p.KeyID = keyid }
}

// WithDH sets the peer ECDH public key, selecting ECDH key agreement.
func WithDH(peerPublic []byte) ParamsOption {
	return func(p *Params) { p.DH = peerPublic }
}

// WithAuthSecret sets the Web Push auth secret mixed in before HKDF.
func WithAuthSecret(secret []byte) ParamsOption {
	return func(p *Params) { p.AuthSecret = secret }
}

// WithPad sets the total padding budget to distribute across records.
func WithPad(pad int) ParamsOption {
	return func(p *Params) { p.Pad = pad }
}

// WithKeystore overrides the keystore consulted for KeyID and DH lookups.
func WithKeystore(ks Keystore) ParamsOption {
	return func(p *Params) { p.Keystore = ks }
}

// PadSize returns the width in bytes of this Params' padding-length field,
// derived from Variant (1 for aesgcm128, 2 otherwise).
func (p Params) PadSize() int {
	return icrypto.Variant(p.Variant).PadSize()
}

// DecodeParam decodes a base64url (no padding) wire parameter — the
// encoding every byte-valued parameter uses at the API boundary (salt,
// key, dh, authSecret, and aesgcm128/aesgcm's keyid).
func DecodeParam(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

// EncodeParam base64url-encodes (no padding) a byte-valued wire parameter.
func EncodeParam(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}
