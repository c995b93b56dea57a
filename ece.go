package ece

import (
	"crypto/rand"

	icrypto "github.com/kmosiejczuk/encrypted-content-encoding/internal/crypto"
	"github.com/kmosiejczuk/encrypted-content-encoding/internal/ecdhkey"
)

// mode distinguishes which direction resolveSchedule and the DH context builder
// are running in; the sender/recipient roles in the DH context blob swap
// between them depending on which side of an exchange is calling in.
type mode int

const (
	modeEncrypt mode = iota
	modeDecrypt
)

// Encrypt resolves keying material, runs the key schedule, and hands
// plaintext to the framing routine for p.Variant, producing the
// self-describing aes128gcm byte stream or the out-of-band legacy one.
func Encrypt(plaintext []byte, p Params) ([]byte, error) {
	if err := validateVariant(p.Variant); err != nil {
		return nil, asError(err)
	}

	padSize := p.PadSize()
	rs := p.RS
	if rs == 0 {
		rs = DefaultRecordSize
	}
	if rs <= uint32(padSize) {
		return nil, asError(icrypto.New(icrypto.KindBadRecordSize, "encrypt"))
	}

	salt := p.Salt
	if p.Variant == VariantAES128GCM && len(salt) == 0 {
		salt = make([]byte, icrypto.SaltSize)
		if _, err := rand.Read(salt); err != nil {
			return nil, asError(icrypto.Wrap(icrypto.KindMissingSalt, "encrypt", err))
		}
	}
	if len(salt) == 0 {
		return nil, asError(icrypto.New(icrypto.KindMissingSalt, "encrypt"))
	}
	if len(salt) != icrypto.SaltSize {
		return nil, asError(icrypto.New(icrypto.KindBadSaltLength, "encrypt"))
	}

	sched, err := resolveSchedule(modeEncrypt, p, salt)
	if err != nil {
		return nil, asError(err)
	}
	defer sched.Zero()

	switch p.Variant {
	case VariantAES128GCM:
		var keyid []byte
		if p.KeyID != "" {
			keyid = []byte(p.KeyID)
		}
		header, err := icrypto.BuildHeader(salt, rs, keyid)
		if err != nil {
			return nil, asError(err)
		}
		body, err := icrypto.EncryptAES128GCM(sched, plaintext, rs, p.Pad)
		if err != nil {
			return nil, asError(err)
		}
		out := make([]byte, 0, len(header)+len(body))
		out = append(out, header...)
		out = append(out, body...)
		return out, nil

	case VariantAESGCM, VariantAESGCM128:
		return icrypto.EncryptLegacy(sched, plaintext, int(rs), padSize, p.Pad)

	default:
		return nil, asError(icrypto.New(icrypto.KindUnknownVariant, "encrypt"))
	}
}

// Decrypt is the inverse of Encrypt. For aes128gcm, salt and rs are read
// off the in-band header, overriding whatever p carries, and so is keyid
// when the header carries a non-empty one (otherwise p.KeyID is kept); for
// the legacy variants they must already be present in p, having arrived
// out of band.
func Decrypt(ciphertext []byte, p Params) ([]byte, error) {
	if err := validateVariant(p.Variant); err != nil {
		return nil, asError(err)
	}

	switch p.Variant {
	case VariantAES128GCM:
		salt, rs, keyid, consumed, err := icrypto.ParseHeader(ciphertext)
		if err != nil {
			return nil, asError(err)
		}
		if rs <= uint32(p.PadSize()) {
			return nil, asError(icrypto.New(icrypto.KindBadRecordSize, "decrypt"))
		}
		p.Salt = salt
		p.RS = rs
		if len(keyid) > 0 {
			p.KeyID = string(keyid)
		}

		sched, err := resolveSchedule(modeDecrypt, p, salt)
		if err != nil {
			return nil, asError(err)
		}
		defer sched.Zero()

		return icrypto.DecryptAES128GCM(sched, ciphertext[consumed:], rs)

	case VariantAESGCM, VariantAESGCM128:
		if len(p.Salt) == 0 {
			return nil, asError(icrypto.New(icrypto.KindMissingSalt, "decrypt"))
		}
		if len(p.Salt) != icrypto.SaltSize {
			return nil, asError(icrypto.New(icrypto.KindBadSaltLength, "decrypt"))
		}
		rs := p.RS
		if rs == 0 {
			rs = DefaultRecordSize
		}
		padSize := p.PadSize()
		if rs <= uint32(padSize) {
			return nil, asError(icrypto.New(icrypto.KindBadRecordSize, "decrypt"))
		}

		sched, err := resolveSchedule(modeDecrypt, p, p.Salt)
		if err != nil {
			return nil, asError(err)
		}
		defer sched.Zero()

		return icrypto.DecryptLegacy(sched, ciphertext, int(rs), padSize, icrypto.Variant(p.Variant))

	default:
		return nil, asError(icrypto.New(icrypto.KindUnknownVariant, "decrypt"))
	}
}

func validateVariant(v Variant) error {
	switch v {
	case VariantAES128GCM, VariantAESGCM, VariantAESGCM128:
		return nil
	default:
		return icrypto.New(icrypto.KindUnknownVariant, "validate")
	}
}

// resolveSchedule resolves the input keying material — explicit key, ECDH
// shared secret, or raw keystore bytes, in that priority order — builds
// the DH context blob when applicable, and runs the key schedule.
func resolveSchedule(m mode, p Params, salt []byte) (*icrypto.Schedule, error) {
	var ikm, dhContextBlob []byte

	switch {
	case len(p.Key) > 0:
		if len(p.Key) != icrypto.KeySize {
			return nil, icrypto.New(icrypto.KindBadKeyLength, "resolve-key")
		}
		ikm = p.Key

	case len(p.DH) > 0:
		if p.KeyID == "" {
			return nil, icrypto.New(icrypto.KindMissingKeyMaterial, "resolve-key")
		}
		ks := p.Keystore
		if ks == nil {
			ks = DefaultKeystore()
		}
		entry, ok := ks.Get(p.KeyID)
		if !ok || entry.ECDHKey == nil {
			return nil, icrypto.New(icrypto.KindUnknownKeyID, "resolve-key")
		}
		if len(entry.Label) == 0 {
			return nil, icrypto.New(icrypto.KindMissingDHLabel, "resolve-key")
		}

		peer, err := ecdhkey.ParsePublicKey(p.DH)
		if err != nil {
			return nil, icrypto.Wrap(icrypto.KindMissingKeyMaterial, "resolve-key", err)
		}
		secret, err := entry.ECDHKey.SharedSecret(peer)
		if err != nil {
			return nil, icrypto.Wrap(icrypto.KindMissingKeyMaterial, "resolve-key", err)
		}
		defer func() {
			for i := range secret {
				secret[i] = 0
			}
		}()
		ikm = secret

		// Only aesgcm mixes the DH context into its info strings; the
		// aes128gcm context is empty and aesgcm128 uses the short form.
		if p.Variant == VariantAESGCM {
			localPub := entry.ECDHKey.Public().Bytes()
			dhContextBlob = buildDHContext(m, entry.Label, localPub, p.DH)
		}

	case p.KeyID != "":
		ks := p.Keystore
		if ks == nil {
			ks = DefaultKeystore()
		}
		entry, ok := ks.Get(p.KeyID)
		if !ok || len(entry.Raw) == 0 {
			return nil, icrypto.New(icrypto.KindUnknownKeyID, "resolve-key")
		}
		ikm = entry.Raw

	default:
		return nil, icrypto.New(icrypto.KindMissingKeyMaterial, "resolve-key")
	}

	return icrypto.DeriveSchedule(icrypto.Variant(p.Variant), salt, ikm, p.AuthSecret, dhContextBlob)
}

// buildDHContext assembles label||lenPrefix(recipientPub)||lenPrefix(senderPub)
// with sender/recipient swapped per direction: on encrypt the local key is
// the sender and the peer (p.DH) is the recipient; on decrypt the peer is
// the sender and the local key is the recipient.
func buildDHContext(m mode, label, localPub, peerPub []byte) []byte {
	if m == modeEncrypt {
		return icrypto.DHContext(label, peerPub, localPub)
	}
	return icrypto.DHContext(label, localPub, peerPub)
}
