package ece

import (
	"errors"

	icrypto "github.com/kmosiejczuk/encrypted-content-encoding/internal/crypto"
)

// Error is returned by Encrypt and Decrypt for every fatal condition this
// package recognizes. It is never retryable at this layer.
type Error = icrypto.Error

// Sentinel errors for errors.Is() checks, one per Kind.
var (
	ErrMissingSalt        = icrypto.Sentinel(icrypto.KindMissingSalt)
	ErrBadSaltLength      = icrypto.Sentinel(icrypto.KindBadSaltLength)
	ErrBadKeyLength       = icrypto.Sentinel(icrypto.KindBadKeyLength)
	ErrMissingKeyMaterial = icrypto.Sentinel(icrypto.KindMissingKeyMaterial)
	ErrUnknownKeyID       = icrypto.Sentinel(icrypto.KindUnknownKeyID)
	ErrMissingDHLabel     = icrypto.Sentinel(icrypto.KindMissingDHLabel)
	ErrBadRecordSize      = icrypto.Sentinel(icrypto.KindBadRecordSize)
	ErrKeyIDTooLong       = icrypto.Sentinel(icrypto.KindKeyIDTooLong)
	ErrTruncatedPayload   = icrypto.Sentinel(icrypto.KindTruncatedPayload)
	ErrBlockTooSmall      = icrypto.Sentinel(icrypto.KindBlockTooSmall)
	ErrAEADFailure        = icrypto.Sentinel(icrypto.KindAEADFailure)
	ErrInvalidPadding     = icrypto.Sentinel(icrypto.KindInvalidPadding)
	ErrPadBudgetExhausted = icrypto.Sentinel(icrypto.KindPadBudgetExhausted)
	ErrUnknownVariant     = icrypto.Sentinel(icrypto.KindUnknownVariant)
)

// asError returns err as the public *Error type, or passes it through
// unchanged if it isn't one (defensive only; every internal crypto path
// already returns *icrypto.Error, but collaborators like internal/ecdhkey
// return plain errors).
func asError(err error) error {
	if err == nil {
		return nil
	}
	var e *icrypto.Error
	if errors.As(err, &e) {
		return e
	}
	return err
}
