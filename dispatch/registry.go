package dispatch

import (
	"sync/atomic"

	"github.com/wippyai/jvm-runtime/event"
)

// Registry is the process-scoped table of typed event callbacks. The zero
// value is not usable; construct with NewRegistry.
type Registry struct {
	table atomic.Pointer[event.Callbacks]
}

// NewRegistry returns a registry with an empty callback table: every kind is
// unregistered and nothing is delivered.
func NewRegistry() *Registry {
	r := &Registry{}
	r.table.Store(&event.Callbacks{})
	return r
}

// Set atomically replaces the whole callback table. There is no partial
// install: dispatchers racing with Set observe either the previous table or
// the new one. Correct use completes all Set calls during the agent's setup
// phase, before any notification mode is enabled.
func (r *Registry) Set(table event.Callbacks) {
	r.table.Store(&table)
}

// Table returns the current callback table by value.
func (r *Registry) Table() event.Callbacks {
	return *r.table.Load()
}

// Has reports whether a callback is registered for the kind.
func (r *Registry) Has(kind event.Kind) bool {
	return r.table.Load().Has(kind)
}

// The live backend's native trampolines have fixed signatures and no
// closure state, so they reach the registry through an explicit
// process-wide slot.
var installed atomic.Pointer[Registry]

// Install publishes the registry the native trampolines dispatch through.
// Call once during agent setup, before enabling any notification mode.
func Install(r *Registry) {
	installed.Store(r)
}

// Installed returns the process-wide registry, or nil before Install.
func Installed() *Registry {
	return installed.Load()
}

// Reset clears the process-wide registry. Exposed for agent teardown and
// tests.
func Reset() {
	installed.Store(nil)
}
