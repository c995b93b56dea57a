package crypto

// EncryptAES128GCM frames plaintext into the aes128gcm wire variant.
// Unlike the legacy variants, records are fixed length rs on the wire
// (including tag and padding), and the end of the stream is signaled by
// the high bit of the final record's first padding byte rather than by
// record shortness.
func EncryptAES128GCM(sched *Schedule, plaintext []byte, rs uint32, padBudget int) ([]byte, error) {
	const padSize = 2
	available := int(rs) - TagSize - padSize
	if available < 1 {
		return nil, New(KindBadRecordSize, "encrypt")
	}
	// The delimiter bit lives in the padding-length field's top bit, so
	// every record's pad count must leave that bit clear: half of maxPad's
	// range, not the full 16-bit field width.
	maxPadWithDelimiter := maxPad(padSize) >> 1

	out := make([]byte, 0, len(plaintext)+len(plaintext)/int(rs)*TagSize+int(rs))
	remainingBudget := padBudget
	start := 0
	var counter uint64

	for {
		recordPad := min3(maxPadWithDelimiter, available, remainingBudget)
		maxContent := available - recordPad

		end := start + maxContent
		if end > len(plaintext) {
			end = len(plaintext)
		}
		chunk := plaintext[start:end]
		remainingAfter := remainingBudget - recordPad
		last := end == len(plaintext) && remainingAfter == 0

		rec, err := EncryptRecord(sched.Key, sched.NonceBase, counter, chunk, recordPad, padSize, last)
		if err != nil {
			return nil, err
		}
		out = append(out, rec...)

		remainingBudget = remainingAfter
		start = end
		counter++

		if last {
			return out, nil
		}
	}
}

// DecryptAES128GCM is the inverse of EncryptAES128GCM. It walks fixed-rs
// records (the last may be shorter) and enforces the delimiter bit: a
// non-final record with the bit set, or the true final record lacking
// it, is rejected.
func DecryptAES128GCM(sched *Schedule, ciphertext []byte, rs uint32) ([]byte, error) {
	const padSize = 2
	if int(rs) <= TagSize+padSize {
		return nil, New(KindBadRecordSize, "decrypt")
	}

	out := make([]byte, 0, len(ciphertext))
	pos := 0
	var counter uint64

	for {
		remaining := len(ciphertext) - pos
		if remaining == 0 {
			return nil, New(KindTruncatedPayload, "decrypt")
		}

		recLen := int(rs)
		if remaining < recLen {
			recLen = remaining
		}

		plain, isLast, err := DecryptRecord(sched.Key, sched.NonceBase, counter, ciphertext[pos:pos+recLen], padSize, VariantAES128GCM)
		if err != nil {
			return nil, err
		}
		out = append(out, plain...)
		pos += recLen
		counter++

		atEnd := pos == len(ciphertext)
		if atEnd {
			if !isLast {
				return nil, New(KindTruncatedPayload, "decrypt")
			}
			return out, nil
		}
		if isLast {
			return nil, New(KindInvalidPadding, "decrypt")
		}
	}
}
