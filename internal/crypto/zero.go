package crypto

// zero overwrites b in place. Go's garbage collector gives no hard
// guarantee this defeats every possible disclosure vector, but it closes
// the obvious window where a derived key or shared secret would otherwise
// sit in a live buffer long after its last use — the same spirit as the
// Destroy() methods the pack's kochabx-kit ECIES package applies to its
// private keys.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
