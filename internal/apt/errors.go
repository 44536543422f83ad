package apt

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData means the buffer does not yet hold a complete frame. It is
	// a normal condition: wait for more bytes and try again.
	ErrInsufficientData = errors.New("apt: insufficient data")

	// ErrTimedOut is returned by Reply.Wait when no reply arrived before the deadline.
	ErrTimedOut = errors.New("apt: timed out waiting for reply")

	// ErrClosed is returned for operations on a stopped connection.
	ErrClosed = errors.New("apt: connection closed")
)

// FormatError indicates a malformed header or data packet, or an encode request
// combining header parameters with a data packet.
type FormatError struct {
	ID     uint16
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("apt: malformed frame 0x%04X: %s", e.ID, e.Reason)
}

// UnknownMessageError indicates a message id with no catalog entry.
type UnknownMessageError struct {
	ID uint16
}

func (e *UnknownMessageError) Error() string {
	return fmt.Sprintf("apt: unknown message id 0x%04X", e.ID)
}

// RangeError indicates a field value outside its protocol-legal domain.
type RangeError struct {
	Field string
	Value int64
	Legal string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("apt: %s %d out of range: must be %s", e.Field, e.Value, e.Legal)
}

// CorrelationConflictError indicates that a reply with the same message id is
// already awaited.
type CorrelationConflictError struct {
	ID uint16
}

func (e *CorrelationConflictError) Error() string {
	return fmt.Sprintf("apt: a reply with message id 0x%04X is already pending", e.ID)
}

// TransportError wraps an unrecoverable link failure reported by the transport.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("apt: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsRangeError returns true if err is or wraps a RangeError.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}

// IsTransportError returns true if err is or wraps a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
