// Package dispatch owns the event callback registry and the
// resolve-then-dispatch adapters shared by both backends.
//
// A Registry holds the typed callback table installed through the tooling
// interface. Its lifecycle is install-once-then-read-mostly: an agent
// populates the table during its non-concurrent setup phase, before any
// notification mode is enabled. Table replacement is atomic — concurrent
// dispatchers observe either the old table or the new one, never a mix.
//
// The per-kind dispatch methods are the only code that touches raw native
// handles outside the backends. Each one builds on a transient Environment
// bound to the raising call's native pointers, resolves identifiers to typed
// values, and invokes the registered callback synchronously on the raising
// thread. If any resolution step fails, every derived value is downgraded to
// its sentinel and the callback is still invoked exactly once — resolution
// failure is all-or-nothing per event, never field-by-field.
//
// The process-wide registry consumed by the live backend's native
// trampolines is managed explicitly with Install and Reset; the emulated
// backend owns a private Registry instead.
package dispatch
