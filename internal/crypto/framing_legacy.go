package crypto

// EncryptLegacy frames plaintext into the aesgcm and aesgcm128 wire
// variants. Record length on the wire is exactly rs+TagSize except for
// the final (always short, possibly empty) record, which the loop below
// emits unconditionally once the remaining chunk no longer fills a
// record to capacity — this is what lets the decoder tell "truncated"
// apart from "done".
func EncryptLegacy(sched *Schedule, plaintext []byte, rs, padSize, padBudget int) ([]byte, error) {
	if rs <= padSize {
		return nil, New(KindBadRecordSize, "encrypt")
	}

	out := make([]byte, 0, len(plaintext)+len(plaintext)/rs*(TagSize+padSize)+rs+TagSize)
	remainingBudget := padBudget
	start := 0
	var counter uint64

	for {
		recordPad := min3(maxPad(padSize), rs-padSize-1, remainingBudget)
		maxContent := rs - padSize - recordPad

		end := start + maxContent
		if end > len(plaintext) {
			end = len(plaintext)
		}
		chunk := plaintext[start:end]
		full := len(chunk) == maxContent

		rec, err := EncryptRecord(sched.Key, sched.NonceBase, counter, chunk, recordPad, padSize, false)
		if err != nil {
			return nil, err
		}
		out = append(out, rec...)

		remainingBudget -= recordPad
		start = end
		counter++

		if !full {
			if remainingBudget > 0 {
				return nil, New(KindPadBudgetExhausted, "encrypt")
			}
			return out, nil
		}
	}
}

// DecryptLegacy is the inverse of EncryptLegacy. It walks fixed-size
// rs+TagSize records until it finds one shorter than that — the
// mandatory short terminal record — and rejects input that runs out of
// bytes exactly on a record boundary as TruncatedPayload: a record-sized
// block exactly at the end of input is ambiguous truncation for these
// variants.
func DecryptLegacy(sched *Schedule, ciphertext []byte, rs, padSize int, v Variant) ([]byte, error) {
	if rs <= padSize {
		return nil, New(KindBadRecordSize, "decrypt")
	}

	recordLen := rs + TagSize
	out := make([]byte, 0, len(ciphertext))
	pos := 0
	var counter uint64

	for {
		remaining := len(ciphertext) - pos
		if remaining == 0 {
			return nil, New(KindTruncatedPayload, "decrypt")
		}

		if remaining < recordLen {
			plain, _, err := DecryptRecord(sched.Key, sched.NonceBase, counter, ciphertext[pos:], padSize, v)
			if err != nil {
				return nil, err
			}
			out = append(out, plain...)
			return out, nil
		}

		plain, _, err := DecryptRecord(sched.Key, sched.NonceBase, counter, ciphertext[pos:pos+recordLen], padSize, v)
		if err != nil {
			return nil, err
		}
		out = append(out, plain...)
		pos += recordLen
		counter++
	}
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
