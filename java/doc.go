// Package java defines the opaque handle and value types shared by every
// backend of the jvm-runtime library.
//
// # Handles
//
// ClassID, MethodID, ThreadID, FieldID, RawMonitorID and ObjectRef wrap the
// runtime's native identifiers. They are opaque: equality is by underlying
// handle value and they are never dereferenced outside Environment
// operations. The zero value of each is the null handle.
//
// # Reference lifetimes
//
// An ObjectRef produced by an interop call is a local reference: it is valid
// only for the duration of the native call or callback that produced it, and
// must be released with DeleteLocalRef before that scope ends unless promoted
// with NewGlobalRef. A global reference survives its originating call and
// must eventually be released with DeleteGlobalRef. Using either kind after
// release is undefined by the native layer; this layer does not catch it.
//
// # Sentinels
//
// UnknownMethod, UnknownClass and UnknownThread are the degraded-but-total
// values delivered to event callbacks when identifier resolution fails.
package java
