package api

import "errors"

// Kind classifies a gateway failure.
type Kind int

const (
	// KindNetwork means the transport itself failed (DNS, refused, timeout).
	KindNetwork Kind = iota + 1
	// KindHTTP means the server answered with a non-success status.
	KindHTTP
	// KindDecode means a success response carried a body that did not parse.
	KindDecode
)

// GenericMessage is shown whenever the server gave no usable detail.
const GenericMessage = "Errore di rete."

// Error is the single error representation produced by the gateway. Message
// is always safe to show to the user verbatim; for KindHTTP it is the
// server-supplied "detail" field when present.
type Error struct {
	Kind    Kind
	Status  int // HTTP status, zero unless Kind is KindHTTP
	Message string
	Err     error // underlying cause, may be nil
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// ErrUnavailable matches transport-level failures via errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// Is lets errors.Is(err, ErrUnavailable) succeed for network failures.
func (e *Error) Is(target error) bool {
	return target == ErrUnavailable && e.Kind == KindNetwork
}
