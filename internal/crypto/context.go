package crypto

import "encoding/binary"

// buildInfo assembles the HKDF `info` argument for the key and
// nonce-base derivations, in one of two shapes depending on variant.
//
//   - Short form (aesgcm128): the literal ASCII strings with no trailing
//     NUL and no context blob.
//   - Long form (aesgcm, aes128gcm): "Content-Encoding: <base>\0" followed
//     by a context blob that is empty for aes128gcm, and for aesgcm with
//     ECDH is label || lenPrefix(recipientPub) || lenPrefix(senderPub).
func buildInfo(v Variant, purpose string, context []byte) []byte {
	if v == VariantAESGCM128 {
		switch purpose {
		case "key":
			return []byte("Content-Encoding: aesgcm128")
		case "nonce":
			return []byte("Content-Encoding: nonce")
		}
	}

	base := "aes128gcm"
	if v == VariantAESGCM {
		base = "aesgcm"
	}
	if purpose == "nonce" {
		base = "nonce"
	}

	info := make([]byte, 0, len("Content-Encoding: ")+len(base)+1+len(context))
	info = append(info, "Content-Encoding: "...)
	info = append(info, base...)
	info = append(info, 0x00)
	info = append(info, context...)
	return info
}

// lenPrefix returns a 2-byte big-endian length followed by x, as used in
// the aesgcm DH context blob.
func lenPrefix(x []byte) []byte {
	out := make([]byte, 2+len(x))
	binary.BigEndian.PutUint16(out, uint16(len(x)))
	copy(out[2:], x)
	return out
}

// DHContext builds the aesgcm DH context blob: label || lenPrefix(recipientPub)
// || lenPrefix(senderPub). label must already be NUL-terminated, matching
// the keystore entry's stored label.
func DHContext(label []byte, recipientPub, senderPub []byte) []byte {
	rp := lenPrefix(recipientPub)
	sp := lenPrefix(senderPub)
	out := make([]byte, 0, len(label)+len(rp)+len(sp))
	out = append(out, label...)
	out = append(out, rp...)
	out = append(out, sp...)
	return out
}
