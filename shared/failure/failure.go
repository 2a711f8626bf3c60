package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies the failures that surface from the importers and the
// connection manager. Plain HTTP failures have KindNone.
type Kind int

const (
	KindNone Kind = iota
	KindConfigNotFound
	KindConnection
	KindRoomConflict
	KindAPICall
	KindAlreadyConnected
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
	cause   error
}

var InvalidSlideParam = &Failure{Code: http.StatusBadRequest, Message: "invalid slide parameter"}

// Sentinels for errors.Is; they match any Failure of the same Kind.
var (
	ConfigNotFoundError   = &Failure{Code: http.StatusInternalServerError, Message: "config file not found", Kind: KindConfigNotFound}
	ConnectionError       = &Failure{Code: http.StatusServiceUnavailable, Message: "database connection failed", Kind: KindConnection}
	RoomConflictError     = &Failure{Code: http.StatusConflict, Message: "room exists, but ID and name don't match", Kind: KindRoomConflict}
	APICallError          = &Failure{Code: http.StatusBadGateway, Message: "API call failed", Kind: KindAPICall}
	AlreadyConnectedError = &Failure{Code: http.StatusInternalServerError, Message: "a database connection is still open", Kind: KindAlreadyConnected}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}

	return e.Message
}

// Unwrap exposes the underlying cause.
func (e *Failure) Unwrap() error {
	return e.cause
}

// Is matches sentinels by Kind.
func (e *Failure) Is(target error) bool {
	var fail *Failure
	if !errors.As(target, &fail) {
		return false
	}

	return fail.Kind != KindNone && fail.Kind == e.Kind
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// NewConfigNotFound reports an explicitly requested config file that does not exist.
func NewConfigNotFound(path string, cause error) error {
	return &Failure{
		Code:    ConfigNotFoundError.Code,
		Message: "config file not found: " + path,
		Kind:    KindConfigNotFound,
		cause:   cause,
	}
}

// NewConnectionError reports an unreachable or unusable database.
func NewConnectionError(cause error) error {
	return &Failure{
		Code:    ConnectionError.Code,
		Message: ConnectionError.Message,
		Kind:    KindConnection,
		cause:   cause,
	}
}

// NewRoomConflict reports a room id that is already taken by a room with another name.
func NewRoomConflict(id int64, existing, incoming string) error {
	return &Failure{
		Code:    RoomConflictError.Code,
		Message: fmt.Sprintf("room %d exists as %q, refusing to import it as %q", id, existing, incoming),
		Kind:    KindRoomConflict,
	}
}

// NewAPICallError reports a failed call to the remote scheduling API.
func NewAPICallError(msg string, cause error) error {
	return &Failure{
		Code:    APICallError.Code,
		Message: msg,
		Kind:    KindAPICall,
		cause:   cause,
	}
}

// AlreadyConnected reports a second Connect on a live connection.
func AlreadyConnected() error {
	return &Failure{
		Code:    AlreadyConnectedError.Code,
		Message: AlreadyConnectedError.Message + ", close it before connecting again",
		Kind:    KindAlreadyConnected,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
