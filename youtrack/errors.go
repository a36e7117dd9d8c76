package youtrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("youtrack: resource not found")
	// ErrUnauthorized is returned when the token is invalid or expired.
	ErrUnauthorized = errors.New("youtrack: token unauthorized or expired")
	// ErrRateLimited is returned when the server throttles the client.
	ErrRateLimited = errors.New("youtrack: api rate limit exceeded")
	// ErrNetwork is returned for transport-level communication failures.
	ErrNetwork = errors.New("youtrack: network error")
)

// APIError reports a non-2xx response. The body is included verbatim when
// the server sent one.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("youtrack: HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("youtrack: HTTP %d", e.StatusCode)
}

// HTTPStatusCode returns the response status code.
func (e *APIError) HTTPStatusCode() int { return e.StatusCode }

// MalformedPayloadError reports a payload that is not valid JSON or not the
// expected JSON shape.
type MalformedPayloadError struct {
	Detail string
	Err    error
}

func (e *MalformedPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("youtrack: malformed payload: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("youtrack: malformed payload: %s", e.Detail)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

// UnknownVariantError reports a $type discriminator with no mapping in the
// entity catalog. Discriminator is empty when the payload carried none.
type UnknownVariantError struct {
	Union         string
	Discriminator string
}

func (e *UnknownVariantError) Error() string {
	if e.Discriminator == "" {
		return fmt.Sprintf("youtrack: missing $type discriminator for %s", e.Union)
	}
	return fmt.Sprintf("youtrack: unknown %s variant %q", e.Union, e.Discriminator)
}

// TypeMismatchError reports a JSON value whose type disagrees with the
// catalog's declared type for that attribute.
type TypeMismatchError struct {
	Field string
	Want  string
	Got   string
}

func (e *TypeMismatchError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("youtrack: field %q: expected %s, got %s", e.Field, e.Want, e.Got)
	}
	return fmt.Sprintf("youtrack: expected %s, got %s", e.Want, e.Got)
}

// codecError folds encoding/json failures into the codec taxonomy. Errors
// already belonging to the taxonomy pass through unchanged so nested decoders
// keep their context.
func codecError(err error) error {
	if err == nil {
		return nil
	}
	var (
		unknown   *UnknownVariantError
		mismatch  *TypeMismatchError
		malformed *MalformedPayloadError
	)
	if errors.As(err, &unknown) || errors.As(err, &mismatch) || errors.As(err, &malformed) {
		return err
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &TypeMismatchError{
			Field: typeErr.Field,
			Want:  typeErr.Type.String(),
			Got:   typeErr.Value,
		}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &MalformedPayloadError{Detail: "invalid JSON", Err: err}
	}

	return &MalformedPayloadError{Detail: "unexpected payload", Err: err}
}

// wrapAPIError classifies transport failures so callers can react with
// errors.Is instead of matching status codes.
func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", ErrUnauthorized, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		default:
			return err
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	return err
}
