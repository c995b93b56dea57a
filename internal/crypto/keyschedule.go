package crypto

// Schedule is the derived AES-128 content-encryption key and the 12-byte
// nonce base that a per-record nonce XORs a record counter into.
type Schedule struct {
	Key       [KeySize]byte
	NonceBase [NonceSize]byte
}

// Zero overwrites the derived key material in place. Callers that hold a
// Schedule past the lifetime of a single Encrypt/Decrypt call should call
// Zero when done: sensitive intermediate buffers should be zeroed on drop
// where the platform supports it.
func (s *Schedule) Zero() {
	zero(s.Key[:])
	zero(s.NonceBase[:])
}

// DeriveSchedule runs the key schedule:
//
//  1. ikm is the already-resolved input keying material (explicit key,
//     ECDH shared secret, or raw keystore bytes — resolution of *which*
//     of those applies is the dispatcher's job, not the engine's).
//  2. if authSecret is non-empty, ikm is re-derived through HKDF with
//     authSecret as salt and the fixed "Content-Encoding: auth\0" info.
//  3. PRK = extract(salt, ikm).
//  4. key = expand(PRK, keyInfo, 16); nonceBase = expand(PRK, nonceInfo, 12).
//
// dhContextBlob is the pre-built DH context (see DHContext); it is
// nil/empty whenever the IKM did not come from ECDH.
func DeriveSchedule(v Variant, salt, ikm, authSecret, dhContextBlob []byte) (*Schedule, error) {
	if len(salt) != SaltSize {
		return nil, New(KindBadSaltLength, "keyschedule")
	}

	workingIKM := ikm
	if len(authSecret) > 0 {
		derived, err := hkdfExpand(ikm, authSecret, []byte("Content-Encoding: auth\x00"), 32)
		if err != nil {
			return nil, Wrap(KindMissingKeyMaterial, "keyschedule", err)
		}
		workingIKM = derived
		defer zero(derived)
	}

	prk := extract(salt, workingIKM)
	defer zero(prk)

	keyInfo := buildInfo(v, "key", dhContextBlob)
	nonceInfo := buildInfo(v, "nonce", dhContextBlob)

	key, err := expand(prk, keyInfo, KeySize)
	if err != nil {
		return nil, Wrap(KindMissingKeyMaterial, "keyschedule", err)
	}
	defer zero(key)

	nonceBase, err := expand(prk, nonceInfo, NonceSize)
	if err != nil {
		return nil, Wrap(KindMissingKeyMaterial, "keyschedule", err)
	}
	defer zero(nonceBase)

	s := &Schedule{}
	copy(s.Key[:], key)
	copy(s.NonceBase[:], nonceBase)
	return s, nil
}
