package crypto

import "fmt"

// Kind enumerates the fatal, non-retryable failure modes of Encrypt and
// Decrypt. The root package re-exports these as sentinel errors so
// callers can write errors.Is(err, ece.ErrBadSaltLength).
type Kind int

const (
	KindMissingSalt Kind = iota
	KindBadSaltLength
	KindBadKeyLength
	KindMissingKeyMaterial
	KindUnknownKeyID
	KindMissingDHLabel
	KindBadRecordSize
	KindKeyIDTooLong
	KindTruncatedPayload
	KindBlockTooSmall
	KindAEADFailure
	KindInvalidPadding
	KindPadBudgetExhausted
	KindUnknownVariant
)

func (k Kind) String() string {
	switch k {
	case KindMissingSalt:
		return "missing salt"
	case KindBadSaltLength:
		return "bad salt length"
	case KindBadKeyLength:
		return "bad key length"
	case KindMissingKeyMaterial:
		return "missing key material"
	case KindUnknownKeyID:
		return "unknown keyid"
	case KindMissingDHLabel:
		return "missing dh label"
	case KindBadRecordSize:
		return "bad record size"
	case KindKeyIDTooLong:
		return "keyid too long"
	case KindTruncatedPayload:
		return "truncated payload"
	case KindBlockTooSmall:
		return "block too small"
	case KindAEADFailure:
		return "aead authentication failed"
	case KindInvalidPadding:
		return "invalid padding"
	case KindPadBudgetExhausted:
		return "pad budget exhausted"
	case KindUnknownVariant:
		return "unknown variant"
	default:
		return "unknown error"
	}
}

// Error wraps a Kind with the operation that produced it and, where
// applicable, an underlying cause (e.g. the raw cipher.AEAD.Open error).
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ece: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("ece: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches e against a sentinel created by Sentinel(kind), so that
// errors.Is(err, Sentinel(KindBadSaltLength)) works regardless of Op
// or the wrapped cause.
func (e *Error) Is(target error) bool {
	s, ok := target.(*sentinelError)
	if !ok {
		return false
	}
	return e.Kind == s.kind
}

// sentinelError is the concrete type behind Sentinel(kind); it carries no
// operation or cause, only the Kind, and exists purely as an errors.Is
// comparison target.
type sentinelError struct{ kind Kind }

func (s *sentinelError) Error() string { return s.kind.String() }

// Sentinel returns the comparison value for a Kind, for use with errors.Is.
func Sentinel(kind Kind) error { return &sentinelError{kind: kind} }

// New builds an *Error with no wrapped cause.
func New(kind Kind, op string) error {
	return &Error{Kind: kind, Op: op}
}

// Wrap builds an *Error around an underlying cause.
func Wrap(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}
