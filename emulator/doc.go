// Package emulator provides the in-memory backend pair used to exercise the
// registry, façade and agent layers without a live JVM attached.
//
// The Emulator implements both environment.Tooling and environment.Interop.
// Capability, callback and notification state live purely in memory.
// Identifier and signature queries answer only for the documented synthetic
// handles — SyntheticEmptyMethodID yields an empty-but-valid method
// signature — and return the NotImplemented status for everything else,
// which is never conflated with success. Allocate and Deallocate always
// succeed as no-ops.
//
// Every backend invocation is recorded by operation name, so tests can
// assert that a guarded operation performed zero native calls:
//
//	em := emulator.New()
//	env := environment.New(em, em)
//	_, err := env.GetObjectSize(0) // ErrObjectIsNull
//	em.Calls()                     // empty
//
// The Raise* methods synthetically fire events through the emulator's
// registry, honoring the callback-present AND notification-enabled delivery
// rule.
package emulator
