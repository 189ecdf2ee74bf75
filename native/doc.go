// Package native is the live backend: environment.Tooling and
// environment.Interop implemented over an attached JVM through JVMTI and JNI.
//
// The implementation is cgo and compiles only with the jvmti build tag, so
// the rest of the module (and its tests) builds without JDK headers present:
//
//	go build -tags jvmti ./...
//
// The JDK include path defaults to /usr/lib/jvm/default-java; override with
// CGO_CFLAGS when the JDK lives elsewhere.
//
// # Environments
//
// Env wraps a jvmtiEnv pointer, JNI wraps a JNIEnv pointer. Both are
// transient: they are only valid on the thread that obtained them, so event
// trampolines build a fresh pair from the pointers the VM hands them and
// discard it when the callback returns. VM wraps the process-wide JavaVM and
// hands out thread-bound environments via GetEnv and AttachCurrentThread.
//
// # Event delivery
//
// Installing a callback table wires C trampolines for exactly the set slots.
// Each trampoline recovers panics before returning, so a misbehaving callback
// can never unwind into VM frames, and dispatches through the process-wide
// registry published with dispatch.Install.
package native
