package emulator

import (
	"github.com/wippyai/jvm-runtime/event"
	"github.com/wippyai/jvm-runtime/java"
)

// Raise* synthetically fire events through the emulator's registry, the way
// a live runtime would invoke the native trampolines. Delivery honors the
// same rule as the live backend: a callback must be registered AND the
// kind's notification mode must be enabled.

func (e *Emulator) enabled(kind event.Kind) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.notify[kind]
}

// RaiseMethodEntry fires a method-entry event for the given thread and
// method handles.
func (e *Emulator) RaiseMethodEntry(thread java.ThreadID, method java.MethodID) {
	if !e.enabled(event.MethodEntry) {
		return
	}
	e.registry.MethodEntry(e.Environment(), thread, method)
}

// RaiseMethodExit fires a method-exit event.
func (e *Emulator) RaiseMethodExit(thread java.ThreadID, method java.MethodID) {
	if !e.enabled(event.MethodExit) {
		return
	}
	e.registry.MethodExit(e.Environment(), thread, method)
}

// RaiseThreadStart fires a thread-start event.
func (e *Emulator) RaiseThreadStart(thread java.ThreadID) {
	if !e.enabled(event.ThreadStart) {
		return
	}
	e.registry.ThreadStart(e.Environment(), thread)
}

// RaiseThreadEnd fires a thread-end event.
func (e *Emulator) RaiseThreadEnd(thread java.ThreadID) {
	if !e.enabled(event.ThreadEnd) {
		return
	}
	e.registry.ThreadEnd(e.Environment(), thread)
}

// RaiseVMObjectAlloc fires an object allocation event.
func (e *Emulator) RaiseVMObjectAlloc(thread java.ThreadID, class java.ClassID, size int64) {
	if !e.enabled(event.VMObjectAlloc) {
		return
	}
	e.registry.VMObjectAlloc(e.Environment(), thread, class, size)
}

// RaiseException fires an exception event for the given exception object.
func (e *Emulator) RaiseException(exception java.ObjectRef) {
	if !e.enabled(event.Exception) {
		return
	}
	e.registry.Exception(e.Environment(), exception)
}

// RaiseExceptionCatch fires an exception-catch event.
func (e *Emulator) RaiseExceptionCatch() {
	if !e.enabled(event.ExceptionCatch) {
		return
	}
	e.registry.ExceptionCatch(e.Environment())
}

// RaiseMonitor fires one of the four monitor event kinds.
func (e *Emulator) RaiseMonitor(kind event.Kind, thread java.ThreadID) {
	if !e.enabled(kind) {
		return
	}
	e.registry.Monitor(e.Environment(), kind, thread)
}

// RaiseFieldAccess fires a field-access event.
func (e *Emulator) RaiseFieldAccess(thread java.ThreadID, field java.FieldID) {
	if !e.enabled(event.FieldAccess) {
		return
	}
	e.registry.FieldAccess(e.Environment(), thread, field)
}

// RaiseFieldModification fires a field-modification event.
func (e *Emulator) RaiseFieldModification(thread java.ThreadID, field java.FieldID) {
	if !e.enabled(event.FieldModification) {
		return
	}
	e.registry.FieldModification(e.Environment(), thread, field)
}

// RaiseGarbageCollectionStart fires a GC-start event.
func (e *Emulator) RaiseGarbageCollectionStart() {
	if !e.enabled(event.GarbageCollectionStart) {
		return
	}
	e.registry.GarbageCollectionStart()
}

// RaiseGarbageCollectionFinish fires a GC-finish event.
func (e *Emulator) RaiseGarbageCollectionFinish() {
	if !e.enabled(event.GarbageCollectionFinish) {
		return
	}
	e.registry.GarbageCollectionFinish()
}

// RaiseVMInit fires the VM-init event.
func (e *Emulator) RaiseVMInit() {
	if !e.enabled(event.VMInit) {
		return
	}
	e.registry.VMInit()
}

// RaiseVMStart fires the VM-start event.
func (e *Emulator) RaiseVMStart() {
	if !e.enabled(event.VMStart) {
		return
	}
	e.registry.VMStart()
}

// RaiseVMDeath fires the VM-death event.
func (e *Emulator) RaiseVMDeath() {
	if !e.enabled(event.VMDeath) {
		return
	}
	e.registry.VMDeath()
}

// RaiseClassFileLoad fires a class-file-load event and returns the
// callback's replacement bytes, or nil.
func (e *Emulator) RaiseClassFileLoad(name string, data []byte) []byte {
	if !e.enabled(event.ClassFileLoad) {
		return nil
	}
	return e.registry.ClassFileLoad(name, data)
}
