// Package errors holds the sentinel errors and the moderation error taxonomy
// shared by every module.
package errors

import (
	stderrors "errors"
	"fmt"
)

var ErrMissingBotToken = stderrors.New("TELEGRAM_BOT_TOKEN environment variable is required")

// Kind classifies a moderation failure. Every kind is reported back to the
// chat that issued the command.
type Kind int

const (
	KindInternal Kind = iota
	KindUsage
	KindResolution
	KindPermission
	KindPlatform
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindResolution:
		return "resolution"
	case KindPermission:
		return "permission"
	case KindPlatform:
		return "platform"
	default:
		return "internal"
	}
}

// Error is a classified moderation error. Msg is safe to show in the chat.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

var (
	ErrUsage      = &Error{Kind: KindUsage}
	ErrResolution = &Error{Kind: KindResolution}
	ErrPermission = &Error{Kind: KindPermission}
	ErrPlatform   = &Error{Kind: KindPlatform}
)

func (e *Error) Error() string {
	if e.Err != nil && e.Msg != "" {
		return e.Msg + ": " + e.Err.Error()
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Msg == "" {
		return e.Kind.String() + " error"
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind when the target carries no message,
// so errors.Is(err, ErrUsage) works for every usage error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Msg == "" && t.Err == nil {
		return t.Kind == e.Kind
	}
	return t == e
}

func Usage(format string, args ...any) error {
	return &Error{Kind: KindUsage, Msg: fmt.Sprintf(format, args...)}
}

func Resolution(format string, args ...any) error {
	return &Error{Kind: KindResolution, Msg: fmt.Sprintf(format, args...)}
}

func Permission(format string, args ...any) error {
	return &Error{Kind: KindPermission, Msg: fmt.Sprintf(format, args...)}
}

// Platform wraps a failed call into the chat platform. A nil cause yields nil.
func Platform(cause error, op string) error {
	if cause == nil {
		return nil
	}
	if e, ok := cause.(*Error); ok && e.Kind == KindPlatform {
		return e
	}
	return &Error{Kind: KindPlatform, Msg: op + " failed", Err: cause}
}

// KindOf reports the kind of err, KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
