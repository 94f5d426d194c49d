package errcode

import "context"

// Code is a stable, service-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK                Code = "ok"
	Unsupported       Code = "unsupported"
	InvalidParams     Code = "invalid_params"
	UnknownCapability Code = "unknown_capability"

	UnknownPin    Code = "unknown_pin" // pin index outside the port's mask
	UnknownDevice Code = "unknown_device"
	Timeout       Code = "timeout"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// MapDriverErr maps low-level driver errors to a Code. Bounded register
// polls surface context errors; everything else is the generic fallback.
func MapDriverErr(err error) Code {
	switch err {
	case nil:
		return OK
	case context.DeadlineExceeded, context.Canceled:
		return Timeout
	}
	return Error
}
