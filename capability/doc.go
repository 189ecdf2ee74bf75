// Package capability models the JVM tooling interface's capability set.
//
// A capability is a named optional feature an agent may request. Capabilities
// gate which operations and events the runtime makes available. The set is a
// fixed, ordered collection of boolean flags, all false by default:
//
//	caps := capability.New()
//	caps.Set(capability.CanGenerateMethodEntryEvents, true)
//
// Merging is a pure union: a flag is true in the result wherever it is true
// in either input. Merge never unsets a flag, so granted capabilities are
// monotonic over an agent's setup phase.
//
// # Wire format
//
// ToBits and FromBits convert between a Set and the native 128-bit capability
// vector. The field order is a versioned wire contract, not an implementation
// detail: flag i (declaration order below, CanTagObjects = bit 0) occupies
// bit i of the vector, stored little-endian byte by byte. Reordering flags is
// a compatibility break with the runtime.
package capability
