package failure

import (
	"errors"
	"fmt"

	"hotel/shared/constant"

	"github.com/lib/pq"
)

// Kind classifies a Failure so the console can decide whether an error is fatal.
type Kind int

const (
	KindUnknown Kind = iota
	KindConnection
	KindStatement
	KindQuery
	KindNotFound
	KindInputParse
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindStatement:
		return "statement"
	case KindQuery:
		return "query"
	case KindNotFound:
		return "not found"
	case KindInputParse:
		return "input parse"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Failure is a wrapper for error messages tagged with the kind of failure.
type Failure struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying driver error, if any.
func (e *Failure) Unwrap() error {
	return e.Err
}

// Fatal reports whether the failure must terminate the process.
func (e *Failure) Fatal() bool {
	return e.Kind == KindConnection
}

func wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Kind:    kind,
		Message: err.Error(),
		Err:     err,
	}
}

// Connection returns a new Failure for an unreachable database.
func Connection(err error) error {
	return wrap(KindConnection, err)
}

// Statement returns a new Failure for a rejected INSERT or other write.
// Constraint violations reported by postgres get a readable prefix.
func Statement(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		var msg string

		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation:
			msg = fmt.Sprintf("record already exists: %s", pqErr.Message)
		case constant.PqErrorCodeFkViolation:
			msg = fmt.Sprintf("referenced record does not exist: %s", pqErr.Message)
		case constant.PqErrorCodeNotNull:
			msg = fmt.Sprintf("missing required value: %s", pqErr.Message)
		case constant.PqErrorCodeInvalidText:
			msg = fmt.Sprintf("invalid value: %s", pqErr.Message)
		default:
			msg = pqErr.Message
		}

		return &Failure{Kind: KindStatement, Message: msg, Err: err}
	}

	return wrap(KindStatement, err)
}

// Query returns a new Failure for a SELECT that could not be executed.
func Query(err error) error {
	return wrap(KindQuery, err)
}

// NotFound returns a new Failure for a natural key lookup without rows.
func NotFound(msg string) error {
	return &Failure{
		Kind:    KindNotFound,
		Message: msg,
	}
}

// InputParse returns a new Failure for console input that could not be converted.
func InputParse(err error) error {
	return wrap(KindInputParse, err)
}

// Invalid returns a new Failure for a request that did not pass validation.
func Invalid(msg string) error {
	return &Failure{
		Kind:    KindInvalid,
		Message: msg,
	}
}

// GetKind returns the kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindUnknown
}

// IsFatal reports whether err carries a fatal failure.
func IsFatal(err error) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fatal()
	}

	return false
}
