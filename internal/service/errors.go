package service

import (
	"errors"

	"github.com/mmynk/restapis/internal/storage"
	"github.com/mmynk/restapis/internal/validation"
)

// Kind classifies a domain failure.
type Kind int

const (
	// KindNotFound is a lookup by id or user name that matched nothing.
	KindNotFound Kind = iota + 1
	// KindConflict is a write that collides with an existing document.
	KindConflict
	// KindUnauthorized is a failed credential check.
	KindUnauthorized
)

// Error is a domain failure with a message fit for the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidComposerID  = &Error{Kind: KindNotFound, Message: "Invalid composerId."}
	ErrInvalidTeamID      = &Error{Kind: KindNotFound, Message: "Invalid teamId."}
	ErrCustomerNotFound   = &Error{Kind: KindNotFound, Message: "Invalid username. Customer not found."}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "User not found."}
	ErrUsernameInUse      = &Error{Kind: KindConflict, Message: "Username is already in use."}
	ErrInvalidCredentials = &Error{Kind: KindUnauthorized, Message: "Invalid username and/or password."}
)

// IsStoreError reports whether err came from the document store.
func IsStoreError(err error) bool {
	var opErr *storage.OpError
	return errors.As(err, &opErr)
}

// IsValidationError reports whether err is a schema violation.
func IsValidationError(err error) bool {
	var verr *validation.RequestValidationError
	return errors.As(err, &verr)
}

// validate checks a document against its schema before it is written.
func validate(doc any) error {
	if verr := validation.ValidateStruct(doc); verr != nil {
		return verr
	}
	return nil
}

// credentialError reports a rejected password as a validation failure on the
// password field.
func credentialError(err error) error {
	return &validation.RequestValidationError{
		Fields: []validation.FieldError{{Field: "password", Tag: "password", Message: err.Error()}},
	}
}
