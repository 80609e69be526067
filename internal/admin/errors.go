package admin

import (
	"errors"
	"fmt"
)

// Error kinds. Every refused request carries exactly one of these so the
// administrator can tell a bad signature from a busy circuit.
var (
	ErrMalformedPayload      = errors.New("malformed payload")
	ErrInvalidSignature      = errors.New("invalid signature")
	ErrUnauthorizedRequester = errors.New("unauthorized requester")
	ErrProposalAlreadyExists = errors.New("proposal already exists")
	ErrUnknownProposal       = errors.New("unknown proposal")
	ErrHashMismatch          = errors.New("circuit hash mismatch")
	ErrMemberInUse           = errors.New("member in use")
	ErrStorageFailure        = errors.New("storage failure")
	ErrDisseminationFailure  = errors.New("dissemination failure")
	ErrUnknownCircuit        = errors.New("unknown circuit")
	ErrCircuitExists         = errors.New("circuit already exists")
	ErrInvalidCircuit        = errors.New("invalid circuit")
	ErrCircuitInactive       = errors.New("circuit inactive")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrMalformedPayload, "MalformedPayload"},
	{ErrInvalidSignature, "InvalidSignature"},
	{ErrUnauthorizedRequester, "UnauthorizedRequester"},
	{ErrProposalAlreadyExists, "ProposalAlreadyExists"},
	{ErrUnknownProposal, "UnknownProposal"},
	{ErrHashMismatch, "HashMismatch"},
	{ErrMemberInUse, "MemberInUse"},
	{ErrStorageFailure, "StorageFailure"},
	{ErrDisseminationFailure, "DisseminationFailure"},
	{ErrUnknownCircuit, "UnknownCircuit"},
	{ErrCircuitExists, "CircuitExists"},
	{ErrInvalidCircuit, "InvalidCircuit"},
	{ErrCircuitInactive, "CircuitInactive"},
}

// Error is returned by every admin operation that refuses a request.
// errors.Is matches both the kind and the wrapped cause.
type Error struct {
	Kind      error
	CircuitID string
	Err       error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.CircuitID != "" {
		msg += " (circuit " + e.CircuitID + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, circuitID string, err error) *Error {
	return &Error{Kind: kind, CircuitID: circuitID, Err: err}
}

func errorf(kind error, circuitID, format string, args ...any) *Error {
	return &Error{Kind: kind, CircuitID: circuitID, Err: fmt.Errorf(format, args...)}
}

// KindName names the kind of err, or "Internal" when err is not an admin error.
func KindName(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Internal"
}

// isAdminError reports whether err already carries a kind, which means
// retrying the operation cannot change the answer.
func isAdminError(err error) bool {
	var ae *Error
	return errors.As(err, &ae)
}
