package event

import "github.com/wippyai/jvm-runtime/java"

// MethodInvocation is the resolved payload of method entry and exit events.
type MethodInvocation struct {
	Method java.Method
	Class  java.Class
	Thread java.Thread
}

// ObjectAllocation is the resolved payload of a VM object allocation event.
type ObjectAllocation struct {
	Class  java.Class
	Thread java.Thread
	Size   int64
}

// ClassFileLoadData is the payload of a class-file-load event. Data is the
// class file as presented to the runtime; a non-nil return from the callback
// replaces it (the rewriting itself is owned by the instrumentation layer).
type ClassFileLoadData struct {
	ClassName string
	Data      []byte
}

// MonitorEvent is the resolved payload of the four monitor event kinds.
type MonitorEvent struct {
	Thread java.Thread
}

// ExceptionEvent is the resolved payload of exception events.
type ExceptionEvent struct {
	Class java.Class
}

// FieldEvent is the payload of field access and modification events.
type FieldEvent struct {
	Thread java.Thread
	Field  java.FieldID
}

// Callback function types, one per event kind.
type (
	FnVMInit                  func()
	FnVMStart                 func()
	FnVMDeath                 func()
	FnVMObjectAlloc           func(ObjectAllocation)
	FnMethodEntry             func(MethodInvocation)
	FnMethodExit              func(MethodInvocation)
	FnThreadStart             func(java.Thread)
	FnThreadEnd               func(java.Thread)
	FnException               func(ExceptionEvent)
	FnExceptionCatch          func()
	FnMonitorWait             func(MonitorEvent)
	FnMonitorWaited           func(MonitorEvent)
	FnMonitorContendedEnter   func(MonitorEvent)
	FnMonitorContendedEntered func(MonitorEvent)
	FnFieldAccess             func(FieldEvent)
	FnFieldModification       func(FieldEvent)
	FnGarbageCollectionStart  func()
	FnGarbageCollectionFinish func()
	FnClassFileLoad           func(ClassFileLoadData) []byte
)

// Callbacks is the typed callback table: one optional slot per event kind.
// A nil slot delivers nothing. Tables are installed atomically through the
// tooling interface; partial installs do not exist.
type Callbacks struct {
	VMInit                  FnVMInit
	VMStart                 FnVMStart
	VMDeath                 FnVMDeath
	VMObjectAlloc           FnVMObjectAlloc
	MethodEntry             FnMethodEntry
	MethodExit              FnMethodExit
	ThreadStart             FnThreadStart
	ThreadEnd               FnThreadEnd
	Exception               FnException
	ExceptionCatch          FnExceptionCatch
	MonitorWait             FnMonitorWait
	MonitorWaited           FnMonitorWaited
	MonitorContendedEnter   FnMonitorContendedEnter
	MonitorContendedEntered FnMonitorContendedEntered
	FieldAccess             FnFieldAccess
	FieldModification       FnFieldModification
	GarbageCollectionStart  FnGarbageCollectionStart
	GarbageCollectionFinish FnGarbageCollectionFinish
	ClassFileLoad           FnClassFileLoad
}

// Has reports whether the table has a callback for the kind. Used by the
// live backend to decide which native trampoline slots to wire.
func (c *Callbacks) Has(k Kind) bool {
	switch k {
	case VMInit:
		return c.VMInit != nil
	case VMStart:
		return c.VMStart != nil
	case VMDeath:
		return c.VMDeath != nil
	case VMObjectAlloc:
		return c.VMObjectAlloc != nil
	case MethodEntry:
		return c.MethodEntry != nil
	case MethodExit:
		return c.MethodExit != nil
	case ThreadStart:
		return c.ThreadStart != nil
	case ThreadEnd:
		return c.ThreadEnd != nil
	case Exception:
		return c.Exception != nil
	case ExceptionCatch:
		return c.ExceptionCatch != nil
	case MonitorWait:
		return c.MonitorWait != nil
	case MonitorWaited:
		return c.MonitorWaited != nil
	case MonitorContendedEnter:
		return c.MonitorContendedEnter != nil
	case MonitorContendedEntered:
		return c.MonitorContendedEntered != nil
	case FieldAccess:
		return c.FieldAccess != nil
	case FieldModification:
		return c.FieldModification != nil
	case GarbageCollectionStart:
		return c.GarbageCollectionStart != nil
	case GarbageCollectionFinish:
		return c.GarbageCollectionFinish != nil
	case ClassFileLoad:
		return c.ClassFileLoad != nil
	default:
		return false
	}
}

// Registered returns the kinds that have callbacks, in native-number order.
func (c *Callbacks) Registered() []Kind {
	var out []Kind
	for _, k := range Kinds() {
		if c.Has(k) {
			out = append(out, k)
		}
	}
	return out
}
