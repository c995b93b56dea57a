package ece

import icrypto "github.com/kmosiejczuk/encrypted-content-encoding/internal/crypto"

// Variant identifies which of the three wire-format flavors a Params
// value describes. Earlier APIs this scheme grew out of inferred the
// variant from whether a salt parameter happened to be set; this package
// makes it an explicit field instead.
type Variant = icrypto.Variant

const (
	// VariantAES128GCM is the self-describing aes128gcm format.
	VariantAES128GCM = icrypto.VariantAES128GCM
	// VariantAESGCM is the legacy aesgcm format (2-byte padding field).
	VariantAESGCM = icrypto.VariantAESGCM
	// VariantAESGCM128 is the legacy aesgcm128 format (1-byte padding field).
	VariantAESGCM128 = icrypto.VariantAESGCM128
)

// DefaultRecordSize is the record size (rs) used when Params.RS is zero.
const DefaultRecordSize = icrypto.DefaultRecordSize
