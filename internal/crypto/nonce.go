package crypto

import "encoding/binary"

// RecordNonce computes the per-record nonce: nonceBase with its last 6
// bytes XORed, big-endian, with the 0-based record counter i. i fits
// comfortably in a native uint64, so the XOR is done byte-wise over the
// low 6 bytes of a full big-endian uint64 encoding of i.
func RecordNonce(nonceBase [NonceSize]byte, i uint64) [NonceSize]byte {
	var counter [8]byte
	binary.BigEndian.PutUint64(counter[:], i)

	var nonce [NonceSize]byte
	copy(nonce[:], nonceBase[:])
	for j := 0; j < 6; j++ {
		nonce[NonceSize-6+j] ^= counter[8-6+j]
	}
	return nonce
}
