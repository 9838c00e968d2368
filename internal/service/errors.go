package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoEligibleBillings is wrapped by the NotFoundError returned when a reminder has nothing to send
var ErrNoEligibleBillings = errors.New("no eligible billings")

// ErrRollbackConflict is wrapped by the StoreError returned when billings selected for rollback were removed concurrently
var ErrRollbackConflict = errors.New("billings changed during rollback")

// ValidationError reports bad input; it is always raised before any store access
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// NotFoundError reports a missing resident or an empty eligibility result
type NotFoundError struct {
	Resource string
	Message  string
	Err      error
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// StoreError wraps a failed store call; Op names the adapter operation
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// DispatchError wraps a failed email delivery
type DispatchError struct {
	Recipient string
	Err       error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch to %s: %v", e.Recipient, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

func newNoEligibleBillingsError() *NotFoundError {
	return &NotFoundError{
		Resource: "billing",
		Message:  "no eligible billings found",
		Err:      ErrNoEligibleBillings,
	}
}

// asStoreError keeps typed errors raised inside a batch and wraps anything else
func asStoreError(op string, err error) error {
	var (
		storeErr *StoreError
		valErr   *ValidationError
		nfErr    *NotFoundError
	)
	if errors.As(err, &storeErr) || errors.As(err, &valErr) || errors.As(err, &nfErr) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
