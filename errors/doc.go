// Package errors provides the closed error taxonomy for the jvm-runtime library.
//
// Every native call into the JVM's tooling (JVMTI) or interop (JNI) interface
// returns an integer status code. Wrap translates those codes into typed,
// comparable errors:
//
//	if err := errors.Wrap(code); err != nil {
//	    return err // *StatusError carrying the translated Status
//	}
//
// The status set is closed (see Status). Codes outside the set map to
// StatusUnknown and are logged with the raw value so they can be classified
// later; they are never silently treated as success.
//
// # Reference-validity errors
//
// Accessors that receive a null handle fail before any native call is made.
// Those failures use the dedicated null-kind sentinels:
//
//	errors.ErrObjectIsNull
//	errors.ErrClassObjectIsNull
//	errors.ErrMethodIsNull
//	errors.ErrFieldIsNull
//	errors.ErrThreadIsNull
//	errors.ErrMonitorIsNull
//
// All errors support errors.Is and errors.As from the standard library.
package errors
