// Package agent orchestrates the setup phase of an instrumentation agent.
//
// An Agent collects callbacks through its On* setters; each setter also
// implies the capability the runtime requires to deliver that kind (a
// method-entry callback implies can_generate_method_entry_events, and so
// on). Nothing is pushed to the backend until Update, which applies the
// documented setup ordering:
//
//  1. request the accumulated capabilities,
//  2. install the callback table,
//  3. enable notification for every registered kind.
//
// Registration therefore always completes before the first event can be
// delivered.
//
// ParseOptions decodes the option string the VM passes to Agent_OnLoad.
package agent
