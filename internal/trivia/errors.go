package trivia

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP layer can map it to a stable status.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindUnprocessable
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindUnprocessable:
		return "unprocessable"
	case KindBadRequest:
		return "bad request"
	default:
		return "internal"
	}
}

// Error is the failure value returned by every Service operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets the bare kind sentinels below match any Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Err != nil {
		return false
	}
	return e.Kind == t.Kind
}

// Kind sentinels, for use with errors.Is.
var (
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrUnprocessable = &Error{Kind: KindUnprocessable}
	ErrBadRequest    = &Error{Kind: KindBadRequest}
)

// Detail causes wrapped inside an Error.
var (
	ErrQuestionNotFound    = errors.New("question does not exist")
	ErrMissingQuizCategory = errors.New("quiz_category is required")
	ErrMissingField        = errors.New("missing required field")
	ErrEmptyPage           = errors.New("page is empty")
	ErrNoCategories        = errors.New("no categories")
)

// KindOf reports the Kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func notFound(op string, err error) error {
	return &Error{Kind: KindNotFound, Op: op, Err: err}
}

func unprocessable(op string, err error) error {
	return &Error{Kind: KindUnprocessable, Op: op, Err: err}
}

func badRequest(op string, err error) error {
	return &Error{Kind: KindBadRequest, Op: op, Err: err}
}
