package crypto

import "encoding/binary"

// fixedHeaderLen is the length of the aes128gcm header before the variable
// length keyid: salt (16) || rs (4) || idlen (1).
const fixedHeaderLen = SaltSize + 4 + 1

// BuildHeader serializes the aes128gcm binary header:
//
//	salt (16) || rs (4, big-endian) || idlen (1) || keyid (idlen bytes)
func BuildHeader(salt []byte, rs uint32, keyid []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, New(KindBadSaltLength, "build-header")
	}
	if len(keyid) > MaxKeyIDLength {
		return nil, New(KindKeyIDTooLong, "build-header")
	}

	out := make([]byte, fixedHeaderLen+len(keyid))
	copy(out, salt)
	binary.BigEndian.PutUint32(out[SaltSize:], rs)
	out[SaltSize+4] = byte(len(keyid))
	copy(out[fixedHeaderLen:], keyid)
	return out, nil
}

// ParseHeader parses the aes128gcm binary header out of the front of data,
// returning the salt, record size, keyid, and the number of bytes consumed
// so framing can resume past the header.
func ParseHeader(data []byte) (salt []byte, rs uint32, keyid []byte, consumed int, err error) {
	if len(data) < fixedHeaderLen {
		return nil, 0, nil, 0, New(KindTruncatedPayload, "parse-header")
	}

	salt = append([]byte(nil), data[:SaltSize]...)
	rs = binary.BigEndian.Uint32(data[SaltSize : SaltSize+4])
	idlen := int(data[SaltSize+4])

	consumed = fixedHeaderLen + idlen
	if len(data) < consumed {
		return nil, 0, nil, 0, New(KindTruncatedPayload, "parse-header")
	}
	if idlen > 0 {
		keyid = append([]byte(nil), data[fixedHeaderLen:consumed]...)
	}
	return salt, rs, keyid, consumed, nil
}
