// Package environment exposes the JVM's two native control surfaces behind
// typed, fallible interfaces.
//
// Tooling is the runtime's agent control and inspection interface:
// capabilities, event wiring, thread/class/method introspection, memory from
// the runtime allocator, raw monitors, and heap iteration. Interop is the
// runtime's object interop interface: invoking methods and reading fields of
// runtime objects.
//
// Environment composes one implementation of each so calling code can treat
// "ask the runtime something" and "call into Java" uniformly:
//
//	env := environment.New(tooling, interop)
//	info, err := env.GetThreadInfo(threadID)
//
// Exactly two backend pairs exist: the live backend bound to real native
// environment pointers (package native) and the in-memory emulated backend
// (package emulator). No call site outside backend construction may branch
// on which one is in use.
//
// Construction is cheap: an Environment wraps already-initialized backends
// and holds no other state, so transient Environments are built freely inside
// event trampolines.
//
// # Error discipline
//
// Every operation returns a translated error from package errors. A non-zero
// native status is never success, and output values are never inspected when
// the status is non-zero. Accessors that receive a null handle fail with the
// matching *-IsNull error before any backend call is made.
package environment
