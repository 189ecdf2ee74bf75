// Package event defines the closed set of runtime event kinds, the typed
// callback table, and the payload types delivered to callbacks.
//
// Each Kind maps to exactly one native event number. The Callbacks table has
// one optional slot per kind; installing a table through the tooling
// interface is atomic — either the whole table replaces the previous one or
// none of it does. A kind with no callback receives no delivery and, on the
// live backend, has no native trampoline wired at all.
//
// Delivery requires both a registered callback and an enabled notification
// mode. The two are independent and commute: enabling notification before
// registering a callback (or the reverse) yields the same final state.
//
// Callbacks receive resolved value types from package java, never raw native
// handles. When resolution fails for an event, every derived value is the
// corresponding sentinel — resolution failure is all-or-nothing per event.
package event
