// Package jvmruntime provides Go bindings for building JVM instrumentation
// agents over the JVM Tool Interface and JNI.
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	jvmruntime/          Root package (documentation only)
//	├── errors/          Closed status-code set and translated error values
//	├── capability/      The 40-flag capability set and its 16-byte wire form
//	├── java/            Opaque native handles, signatures, thread states
//	├── event/           Event kinds, payloads and the typed callback table
//	├── environment/     Tooling/Interop interfaces and the guarded façade
//	├── dispatch/        Callback registry and resolve-then-dispatch layer
//	├── emulator/        In-memory backend for tests and offline replay
//	├── native/          Live cgo backend over jvmtiEnv/JNIEnv (tag jvmti)
//	├── agent/           Setup-phase orchestrator and option parsing
//	├── config/          TOML agent configuration
//	├── cmd/agentlab/    Demo CLI replaying events through the emulator
//	└── examples/agent/  Agent_OnLoad entry point (tag jvmti)
//
// # Quick Start
//
// Configure an agent against the emulated backend:
//
//	em := emulator.New()
//	a := agent.New(em.Environment())
//	a.OnMethodEntry(func(ev event.MethodInvocation) {
//	    fmt.Printf("enter %s%s\n", ev.Method.Signature.Name, ev.Method.Signature.Signature)
//	})
//	if err := a.Update(); err != nil {
//	    log.Fatal(err)
//	}
//	em.RaiseMethodEntry(thread, method)
//
// The same agent code runs against a live VM: build with -tags jvmti, obtain
// the backend pair from native.VMFromPointer in Agent_OnLoad, and the VM's
// trampolines drive the identical dispatch path. No call site branches on
// which backend it is talking to.
//
// # Backends
//
// Every runtime operation is defined by the environment.Tooling and
// environment.Interop interfaces. The native package implements them with
// cgo calls whose status codes translate through package errors; the
// emulator implements them in memory, answering identifier queries only for
// its documented synthetic handles and recording every invocation so tests
// can prove that guarded operations never touch the runtime.
//
// # Event flow
//
// Callbacks are registered as a whole table (event.Callbacks) and installed
// atomically. Delivery requires both a registered callback and an enabled
// notification mode. The dispatch layer resolves raw thread/method handles
// into full payloads before invoking a callback; if any resolution step
// fails the entire payload downgrades to the documented sentinels, so a
// callback never sees a half-resolved event.
package jvmruntime
