package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput  = errors.New("Given Param is not valid")
	ErrInvalidAddress = errors.New("Invalid address")

	ErrNotMounted         = errors.New("view is not mounted")
	ErrStaleGeneration    = errors.New("stale refresh generation")
	ErrWalletDisconnected = errors.New("wallet is not connected")
	ErrUnsupportedAction  = errors.New("unsupported action")
	// ErrSubmissionStatusUnknown means the transaction was submitted but no
	// confirmation arrived in time. It may still land.
	ErrSubmissionStatusUnknown = errors.New("submission status unknown")
)

// DecodeError is a malformed remote record. Batch fetches drop the record and
// continue.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError is a local pre-submission rule violation
type ValidationError struct {
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(rule, format string, args ...interface{}) error {
	return &ValidationError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// SignatureError means the wallet rejected the request or is unavailable
type SignatureError struct {
	Err error
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("wallet: %v", e.Err)
}

func (e *SignatureError) Unwrap() error { return e.Err }

// SubmissionError carries the ledger's raw rejection reason
type SubmissionError struct {
	Hash   TxHash
	Reason string
	Err    error
}

func (e *SubmissionError) Error() string {
	if e.Hash != "" {
		return fmt.Sprintf("transaction %s rejected: %s", e.Hash, e.Reason)
	}
	return fmt.Sprintf("transaction rejected: %s", e.Reason)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// SyncError is a failed refresh. The previous snapshot stays in place.
type SyncError struct {
	Scope string
	Err   error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s: %v", e.Scope, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// StatusUnknownError wraps ErrSubmissionStatusUnknown with the pending hash
type StatusUnknownError struct {
	Hash TxHash
}

func (e *StatusUnknownError) Error() string {
	return fmt.Sprintf("transaction %s: %v", e.Hash, ErrSubmissionStatusUnknown)
}

func (e *StatusUnknownError) Unwrap() error { return ErrSubmissionStatusUnknown }

func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsSignatureError(err error) bool {
	var target *SignatureError
	return errors.As(err, &target)
}

func IsSubmissionError(err error) bool {
	var target *SubmissionError
	return errors.As(err, &target)
}

func IsSyncError(err error) bool {
	var target *SyncError
	return errors.As(err, &target)
}
