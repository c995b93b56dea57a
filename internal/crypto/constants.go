package crypto

// Sizes fixed by the Encrypted Content-Encoding scheme (RFC 8188) and the
// Web Push draft it grew out of. Every one of these is load-bearing: the
// framing and key-schedule code below assume them exactly.
const (
	// SaltSize is the length in bytes of the HKDF-Extract salt.
	SaltSize = 16
	// KeySize is the length in bytes of the derived AES-128 content
	// encryption key.
	KeySize = 16
	// NonceSize is the length in bytes of the per-record AES-GCM nonce.
	NonceSize = 12
	// TagSize is the length in bytes of the AES-GCM authentication tag.
	TagSize = 16

	// DefaultRecordSize is the default value of rs when a caller does not
	// specify one.
	DefaultRecordSize = 4096

	// MaxKeyIDLength is the largest keyid the aes128gcm header can carry
	// (idlen is a single byte).
	MaxKeyIDLength = 255
)

// Variant identifies one of the three wire-format flavors this package
// implements. It replaces "does params.salt look set" sniffing with an
// explicit, caller-supplied tag.
type Variant int

const (
	// VariantAES128GCM is the aes128gcm wire format: binary header
	// in-band, record size fixed on the wire, delimiter bit marks the
	// last record.
	VariantAES128GCM Variant = iota
	// VariantAESGCM is the aesgcm wire format: salt/rs/keyid/dh carried
	// out of band, 2-byte padding length field, short terminal record.
	VariantAESGCM
	// VariantAESGCM128 is the legacy aesgcm128 wire format: same framing
	// as VariantAESGCM but with a 1-byte padding length field and short
	// HKDF info strings.
	VariantAESGCM128
)

// String returns the canonical Content-Encoding token for v.
func (v Variant) String() string {
	switch v {
	case VariantAES128GCM:
		return "aes128gcm"
	case VariantAESGCM:
		return "aesgcm"
	case VariantAESGCM128:
		return "aesgcm128"
	default:
		return "unknown"
	}
}

// PadSize returns the width in bytes of the per-record padding-length
// field for v: 1 for aesgcm128, 2 for aesgcm and aes128gcm.
func (v Variant) PadSize() int {
	if v == VariantAESGCM128 {
		return 1
	}
	return 2
}
