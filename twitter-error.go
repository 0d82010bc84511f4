package twitter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cast"
)

// ErrInvalidArgument is wrapped by every error returned for a call rejected
// before it reaches the network.
var ErrInvalidArgument = errors.New("twitter: invalid argument")

// ErrorCode is the coarse classification of an API error.
// It implements error so errors.Is(err, ErrorOperationNotPermitted) works on
// any error returned by the client.
type ErrorCode int

const (
	ErrorUnknown ErrorCode = iota
	ErrorBadRequest
	ErrorNotAuthorized
	ErrorOperationNotPermitted
	ErrorResourceNotFound
	ErrorRateLimitExceeded
	ErrorServer
	ErrorServerDown
	ErrorServerOverloaded
)

var errorCodeNames = [...]string{
	ErrorUnknown:               "unknown",
	ErrorBadRequest:            "bad request",
	ErrorNotAuthorized:         "not authorized",
	ErrorOperationNotPermitted: "operation not permitted",
	ErrorResourceNotFound:      "resource not found",
	ErrorRateLimitExceeded:     "rate limit exceeded",
	ErrorServer:                "server error",
	ErrorServerDown:            "server down",
	ErrorServerOverloaded:      "server overloaded",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(errorCodeNames) {
		return errorCodeNames[ErrorUnknown]
	}
	return errorCodeNames[c]
}

func (c ErrorCode) Error() string {
	return "twitter: " + c.String()
}

// ParseErrorCode is the inverse of ErrorCode.String.
func ParseErrorCode(s string) (ErrorCode, error) {
	for i, name := range errorCodeNames {
		if name == s {
			return ErrorCode(i), nil
		}
	}
	return ErrorUnknown, fmt.Errorf("%w: error code %q", ErrInvalidArgument, s)
}

func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ErrorCode) UnmarshalText(b []byte) error {
	v, err := ParseErrorCode(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ErrorCodes maps HTTP status codes to an ErrorCode.
type ErrorCodes map[int]ErrorCode

// DefaultErrorCodes is the base table; Config.ErrorCodes overrides single entries.
var DefaultErrorCodes = ErrorCodes{
	http.StatusBadRequest:          ErrorBadRequest,
	http.StatusUnauthorized:        ErrorNotAuthorized,
	http.StatusForbidden:           ErrorOperationNotPermitted,
	http.StatusNotFound:            ErrorResourceNotFound,
	420:                            ErrorRateLimitExceeded, // Enhance Your Calm
	http.StatusTooManyRequests:     ErrorRateLimitExceeded,
	http.StatusInternalServerError: ErrorServer,
	http.StatusBadGateway:          ErrorServerDown,
	http.StatusServiceUnavailable:  ErrorServerOverloaded,
	http.StatusGatewayTimeout:      ErrorServer,
}

// Classify returns the ErrorCode for statusCode. Unlisted 5xx codes are
// server errors, anything else is unknown.
func (ec ErrorCodes) Classify(statusCode int) ErrorCode {
	if c, ok := ec[statusCode]; ok {
		return c
	}
	if statusCode >= 500 && statusCode < 600 {
		return ErrorServer
	}
	return ErrorUnknown
}

// ApiError is returned for every non-2xx response.
type ApiError struct {
	StatusCode int
	Code       ErrorCode

	// TwitterCode is the numeric code of an {"errors":[...]} payload, 0 otherwise.
	TwitterCode int

	// Message is the text sent by the server, unmodified.
	Message string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("twitter: %s (%d): %s", e.Code.String(), e.StatusCode, e.Message)
}

func (e *ApiError) Is(target error) bool {
	c, ok := target.(ErrorCode)
	return ok && c == e.Code
}

// ParseError is returned when a 2xx response can not be decoded into the
// expected shape.
type ParseError struct {
	Endpoint string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("twitter: decode %s: %v", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type twitterErrorPayload struct {
	Error  interface{} `json:"error"`
	Errors interface{} `json:"errors"`
}

func newApiError(statusCode int, body []byte, codes ErrorCodes) *ApiError {
	e := &ApiError{
		StatusCode: statusCode,
		Code:       codes.Classify(statusCode),
	}

	var payload twitterErrorPayload
	if err := jsonTwitter.Unmarshal(body, &payload); err == nil {
		e.TwitterCode, e.Message = payload.message()
	}

	if e.Message == "" {
		e.Message = http.StatusText(statusCode)
	}

	return e
}

// {"error":"..."} 또는 {"errors":[{"code":N,"message":"..."}]}
func (p *twitterErrorPayload) message() (code int, message string) {
	if s, err := cast.ToStringE(p.Error); err == nil && s != "" {
		return 0, s
	}

	switch v := p.Errors.(type) {
	case string:
		return 0, v

	case []interface{}:
		if len(v) == 0 {
			return
		}
		item, err := cast.ToStringMapE(v[0])
		if err != nil {
			return
		}
		code = cast.ToInt(item["code"])
		message, _ = cast.ToStringE(item["message"])
	}

	return
}
