// Package apierror provides the error taxonomy and response envelope for
// the API. All errors returned to clients go through this package to
// ensure consistency and to prevent leaking internal details (stack
// traces, DB errors, etc.).
package apierror

import "net/http"

// Kind classifies an error into the HTTP status it maps to.
type Kind int

const (
	KindValidation Kind = iota // missing/invalid input → 400
	KindAuth                   // missing/malformed/invalid token → 401
	KindForbidden              // role insufficient → 403
	KindNotFound               // referenced entity absent → 404
	KindConflict               // duplicate name, insufficient stock, in use → 400
	KindInternal               // unexpected store/runtime failure → 500
)

// Error is the canonical service-layer error. Handlers map Kind to a
// status centrally instead of choosing codes per route.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, logged but never sent to clients
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

// Status maps the error kind to its HTTP status code. Conflicts map to
// 400 rather than 409, matching the API contract this service exposes.
func (e *Error) Status() int {
	switch e.Kind {
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }
func Auth(msg string) *Error       { return &Error{Kind: KindAuth, Msg: msg} }
func Forbidden(msg string) *Error  { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Msg: msg} }

// Internal wraps an unexpected failure. The cause is kept for logging;
// clients only ever see the generic message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "internal server error", Err: err}
}

// Envelope is the JSON error body: {"success": false, "msg": "..."}.
type Envelope struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

func New(msg string) *Envelope {
	return &Envelope{Success: false, Msg: msg}
}
