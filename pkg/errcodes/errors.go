package errcodes

import (
	"fmt"
	"net/http"
)

type Error struct {
	HTTPCode int
	Message  string
	Code     string
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// NotFound returns a 404 error with a message indicating the given resource.
func NotFound(resource string) error {
	return &Error{
		http.StatusNotFound,
		resource + " not found.",
		"not_found",
	}
}

// IDMismatch is returned when the identifier in the URL doesn't match the one
// carried by the payload.
func IDMismatch() error {
	return &Error{
		http.StatusBadRequest,
		"ID in the URL does not match the ID in the payload.",
		"id_mismatch",
	}
}

// InvalidReference is returned when a write points at a related record that
// doesn't exist.
func InvalidReference(resource string, id int) error {
	return &Error{
		http.StatusBadRequest,
		fmt.Sprintf("%s %d does not exist.", resource, id),
		"invalid_reference",
	}
}

// ConcurrentModification is returned when a save lost a race against another
// writer and the record still exists. It is not retried.
func ConcurrentModification(resource string) error {
	return &Error{
		http.StatusInternalServerError,
		resource + " was modified concurrently.",
		"concurrent_modification",
	}
}

func UnsupportedMediaType() error {
	return &Error{
		http.StatusUnsupportedMediaType,
		"Unsupported Media Type",
		"unsupported_media_type",
	}
}

func UnknownParameter(param string) error {
	return &Error{
		http.StatusBadRequest,
		fmt.Sprintf("Unknown Parameter %q", param),
		"unknown_parameter",
	}
}

func ValidationTypeError(msg string) error {
	return &Error{
		http.StatusBadRequest,
		msg,
		"validation_type_error",
	}
}

func ValidationError(msg string) error {
	return &Error{
		http.StatusBadRequest,
		msg,
		"validation_error",
	}
}

func MalformedPayload() error {
	return &Error{
		http.StatusBadRequest,
		"Malformed Payload",
		"malformed_payload",
	}
}

func EmptyRequestBody() error {
	return &Error{
		http.StatusBadRequest,
		"Request body can't be empty.",
		"empty_request_body",
	}
}
