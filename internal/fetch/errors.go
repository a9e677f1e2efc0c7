package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a fetch failure
type Kind int

const (
	KindMissingCredential Kind = iota + 1
	KindInvalidURL
	KindNetwork
	KindHTTPStatus
	KindParse
	KindQuotaExceeded
)

// String returns the taxonomy name of the kind
func (k Kind) String() string {
	switch k {
	case KindMissingCredential:
		return "MissingCredential"
	case KindInvalidURL:
		return "InvalidURL"
	case KindNetwork:
		return "NetworkError"
	case KindHTTPStatus:
		return "HttpStatus"
	case KindParse:
		return "ParseError"
	case KindQuotaExceeded:
		return "QuotaExceeded"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is. A *Error matches the sentinel of its kind;
// QuotaExceeded also matches ErrHTTPStatus.
var (
	ErrMissingCredential = &Error{Kind: KindMissingCredential}
	ErrInvalidURL        = &Error{Kind: KindInvalidURL}
	ErrNetwork           = &Error{Kind: KindNetwork}
	ErrHTTPStatus        = &Error{Kind: KindHTTPStatus}
	ErrParse             = &Error{Kind: KindParse}
	ErrQuotaExceeded     = &Error{Kind: KindQuotaExceeded}
)

// Error is a classified fetch failure
type Error struct {
	Kind       Kind
	StatusCode int    // set for HttpStatus and QuotaExceeded
	Op         string // what was being fetched, e.g. "unsplash random photo"
	Err        error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s(%d)", msg, e.StatusCode)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels by kind. A target with a status code also requires
// the same status code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.StatusCode != 0 && t.StatusCode != e.StatusCode {
		return false
	}
	if t.Kind == e.Kind {
		return true
	}
	return t.Kind == KindHTTPStatus && e.Kind == KindQuotaExceeded
}

// KindOf returns the kind of a fetch error anywhere in the chain, or 0
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// MissingCredential reports an unconfigured provider; no request was made
func MissingCredential(op string) *Error {
	return &Error{Kind: KindMissingCredential, Op: op}
}

// InvalidURL reports a malformed request URL
func InvalidURL(op string, err error) *Error {
	return &Error{Kind: KindInvalidURL, Op: op, Err: err}
}

// Network reports a transport failure
func Network(op string, err error) *Error {
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}

// Status reports a non-2xx response. 429 becomes QuotaExceeded only when
// quotaAware is set, since only the translation service defines that meaning.
func Status(op string, code int, quotaAware bool) *Error {
	kind := KindHTTPStatus
	if quotaAware && code == http.StatusTooManyRequests {
		kind = KindQuotaExceeded
	}
	return &Error{Kind: kind, StatusCode: code, Op: op}
}

// Parse reports a malformed or schema-mismatched body
func Parse(op string, err error) *Error {
	return &Error{Kind: KindParse, Op: op, Err: err}
}
