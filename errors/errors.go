package errors

import (
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"
)

// Status is a native JVMTI status code. The set is closed: every code the
// runtime can return is either listed here or collapses into StatusUnknown.
type Status uint32

const (
	StatusNoError                 Status = 0
	StatusThreadNotAlive          Status = 15
	StatusInvalidMonitor          Status = 50
	StatusNotMonitorOwner         Status = 51
	StatusMustPossessCapability   Status = 99
	StatusNullPointer             Status = 100
	StatusIllegalArgument         Status = 103
	StatusOutOfMemory             Status = 110
	StatusNotEnabled              Status = 111
	StatusNotAvailable            Status = 112
	StatusUnexpectedInternalError Status = 113
	StatusThreadNotAttached       Status = 115
	StatusDisconnected            Status = 116

	// StatusNotImplemented is a reserved out-of-band code for operations a
	// backend has not wired up. It deliberately sits outside the JVMTI code
	// space so it can never collide with a real status.
	StatusNotImplemented Status = 999999

	// StatusUnknown covers any code outside the closed set. Wrap logs the
	// raw value whenever this mapping is taken.
	StatusUnknown Status = 1<<32 - 1
)

var statusMessages = map[Status]string{
	StatusNoError:                 "no error has occurred",
	StatusThreadNotAlive:          "thread is not live (has not been started or is now dead)",
	StatusInvalidMonitor:          "invalid raw monitor",
	StatusNotMonitorOwner:         "this thread does not own the raw monitor",
	StatusMustPossessCapability:   "the capability being used is false in this environment",
	StatusNullPointer:             "pointer is unexpectedly NULL",
	StatusIllegalArgument:         "illegal argument",
	StatusOutOfMemory:             "the function attempted to allocate memory and no more memory was available for allocation",
	StatusNotEnabled:              "the desired functionality has not been enabled in this virtual machine",
	StatusNotAvailable:            "the desired functionality is not available in the current phase",
	StatusUnexpectedInternalError: "an unexpected internal error has occurred",
	StatusThreadNotAttached:       "the thread being used to call this function is not attached to the virtual machine",
	StatusDisconnected:            "the environment provided is no longer connected or is not an environment",
	StatusNotImplemented:          "this operation is not implemented by the backend",
	StatusUnknown:                 "unknown error",
}

// Message returns the human-readable description of the status.
func (s Status) Message() string {
	if msg, ok := statusMessages[s]; ok {
		return msg
	}
	return statusMessages[StatusUnknown]
}

func (s Status) String() string {
	switch s {
	case StatusNoError:
		return "NoError"
	case StatusThreadNotAlive:
		return "ThreadNotAlive"
	case StatusInvalidMonitor:
		return "InvalidMonitor"
	case StatusNotMonitorOwner:
		return "NotMonitorOwner"
	case StatusMustPossessCapability:
		return "MustPossessCapability"
	case StatusNullPointer:
		return "NullPointer"
	case StatusIllegalArgument:
		return "IllegalArgument"
	case StatusOutOfMemory:
		return "OutOfMemory"
	case StatusNotEnabled:
		return "NotEnabled"
	case StatusNotAvailable:
		return "NotAvailable"
	case StatusUnexpectedInternalError:
		return "UnexpectedInternalError"
	case StatusThreadNotAttached:
		return "ThreadNotAttached"
	case StatusDisconnected:
		return "Disconnected"
	case StatusNotImplemented:
		return "NotImplemented"
	default:
		return "UnknownError"
	}
}

// StatusError is a translated native status. Op names the failing operation
// when known.
type StatusError struct {
	Status Status
	Op     string
	Code   uint32 // raw native code, kept for StatusUnknown classification
}

func (e *StatusError) Error() string {
	if e.Op != "" {
		if e.Status == StatusUnknown {
			return fmt.Sprintf("%s: %s (code %d)", e.Op, e.Status.Message(), e.Code)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Status.Message())
	}
	if e.Status == StatusUnknown {
		return fmt.Sprintf("%s (code %d)", e.Status.Message(), e.Code)
	}
	return e.Status.Message()
}

// Is matches any StatusError with the same Status, so callers can compare
// against e.g. NotImplemented() without caring about Op.
func (e *StatusError) Is(target error) bool {
	if t, ok := target.(*StatusError); ok {
		return e.Status == t.Status
	}
	return false
}

var known = map[uint32]Status{
	uint32(StatusThreadNotAlive):          StatusThreadNotAlive,
	uint32(StatusInvalidMonitor):          StatusInvalidMonitor,
	uint32(StatusNotMonitorOwner):         StatusNotMonitorOwner,
	uint32(StatusMustPossessCapability):   StatusMustPossessCapability,
	uint32(StatusNullPointer):             StatusNullPointer,
	uint32(StatusIllegalArgument):         StatusIllegalArgument,
	uint32(StatusOutOfMemory):             StatusOutOfMemory,
	uint32(StatusNotEnabled):              StatusNotEnabled,
	uint32(StatusNotAvailable):            StatusNotAvailable,
	uint32(StatusUnexpectedInternalError): StatusUnexpectedInternalError,
	uint32(StatusThreadNotAttached):       StatusThreadNotAttached,
	uint32(StatusDisconnected):            StatusDisconnected,
	uint32(StatusNotImplemented):          StatusNotImplemented,
}

// Wrap translates a raw native status code into a typed error. Code 0 is
// success and yields nil. Unrecognized codes map to StatusUnknown and are
// logged with the raw value; they are never swallowed.
func Wrap(code uint32) error {
	return WrapOp(code, "")
}

// WrapOp is Wrap with the failing operation's name attached.
func WrapOp(code uint32, op string) error {
	if code == 0 {
		return nil
	}
	if s, ok := known[code]; ok {
		return &StatusError{Status: s, Op: op, Code: code}
	}
	Logger().Warn("unknown native status code",
		zap.Uint32("code", code),
		zap.String("op", op))
	return &StatusError{Status: StatusUnknown, Op: op, Code: code}
}

// NotImplemented returns the sentinel for operations a backend does not
// support. It must never be conflated with success.
func NotImplemented(op string) error {
	return &StatusError{Status: StatusNotImplemented, Op: op, Code: uint32(StatusNotImplemented)}
}

// Reference-validity errors. These are returned before any native call is
// made when an accessor receives a null handle.
var (
	ErrObjectIsNull      = stderrors.New("object reference is null")
	ErrClassObjectIsNull = stderrors.New("class object is null")
	ErrMethodIsNull      = stderrors.New("method is null")
	ErrFieldIsNull       = stderrors.New("field is null")
	ErrThreadIsNull      = stderrors.New("thread is null")
	ErrMonitorIsNull     = stderrors.New("raw monitor is null")
)

// Lookup-failure errors from the interop interface.
type ClassNotFoundError struct{ Name string }

func (e *ClassNotFoundError) Error() string { return fmt.Sprintf("class not found: %s", e.Name) }

type MethodNotFoundError struct {
	Name      string
	Signature string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("method not found: %s%s", e.Name, e.Signature)
}

type FieldNotFoundError struct {
	Name      string
	Signature string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field not found: %s %s", e.Name, e.Signature)
}
