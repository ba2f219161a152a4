package domain

import "errors"

var (
	ErrPersonNotFound = errors.New("person not found")
	ErrEntryNotFound  = errors.New("entry not found")
	ErrMediaNotFound  = errors.New("media not found")
	ErrTagNotFound    = errors.New("tag not found")
	ErrLinkNotFound   = errors.New("link not found")

	// ErrAlreadyDeleted is returned when soft-deleting a record that is
	// already soft-deleted. Distinct from not-found on purpose.
	ErrAlreadyDeleted = errors.New("record already deleted")

	ErrTagNameTaken = errors.New("tag name already in use")
)

// ValidationError marks caller input problems (missing required field,
// blank required string, attempt to clear a required field).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Invalid(msg string) error {
	return &ValidationError{Msg: msg}
}
