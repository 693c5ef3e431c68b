package common

import (
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
)

const (
	// DefaultTimeout is how long a Subscription waits for a reader before
	// dropping an event.
	DefaultTimeout = 2 * time.Second
)

var (
	// ErrNotFound not found
	ErrNotFound = errors.New(`not found`)
	// ErrClosed connection closed
	ErrClosed = errors.New(`connection closed`)
	// ErrTimeout timed out
	ErrTimeout = errors.New(`timed out`)
	// ErrUnsupported is returned for operations the device, zone or dialect
	// does not provide.
	ErrUnsupported = errors.New(`operation not supported`)
	// ErrRejected is returned when the daemon answered a request with a
	// failure result instead of an error.
	ErrRejected = errors.New(`request rejected by daemon`)
)

// TransportError is returned when a remote call or property read failed, or
// the remote object does not exist. Err carries the transport's own error.
type TransportError struct {
	Path      dbus.ObjectPath
	Interface string
	Member    string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf(`%s %s.%s: %v`, e.Path, e.Interface, e.Member, e.Err)
}

// Cause returns the underlying transport error, for errors.Cause.
func (e *TransportError) Cause() error { return e.Err }

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is returned when a reply arrived but could not be interpreted:
// wrong type or length, unmapped enum token, out of range integer.
type DecodeError struct {
	Member string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf(`decoding reply of %s: %s`, e.Member, e.Reason)
}

// NewDecodeError returns a *DecodeError for member with a formatted reason.
func NewDecodeError(member, format string, args ...interface{}) error {
	return &DecodeError{Member: member, Reason: fmt.Sprintf(format, args...)}
}

// IsTransportError reports whether err, or any error it wraps, is a
// *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsDecodeError reports whether err, or any error it wraps, is a
// *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
