package dispatch

import (
	"go.uber.org/zap"

	"github.com/wippyai/jvm-runtime/environment"
	"github.com/wippyai/jvm-runtime/event"
	"github.com/wippyai/jvm-runtime/java"
)

// resolveInvocation resolves the values delivered with method entry and exit
// events: current thread info, the method's declaring class, that class's
// signature, and the method's name. Any failure downgrades the whole payload
// to sentinels; partial payloads are never delivered.
func resolveInvocation(env *environment.Environment, thread java.ThreadID, method java.MethodID) event.MethodInvocation {
	info, err := env.GetThreadInfo(thread)
	if err != nil {
		return sentinelInvocation()
	}
	classID, err := env.GetMethodDeclaringClass(method)
	if err != nil {
		return sentinelInvocation()
	}
	classSig, err := env.GetClassSignature(classID)
	if err != nil {
		return sentinelInvocation()
	}
	methodSig, err := env.GetMethodName(method)
	if err != nil {
		return sentinelInvocation()
	}
	return event.MethodInvocation{
		Method: java.Method{ID: method, Signature: methodSig},
		Class:  java.Class{ID: classID, Signature: classSig},
		Thread: info,
	}
}

func sentinelInvocation() event.MethodInvocation {
	return event.MethodInvocation{
		Method: java.UnknownMethod(),
		Class:  java.UnknownClass(),
		Thread: java.UnknownThread(),
	}
}

// resolveThread resolves thread info, downgrading to the sentinel on failure.
func resolveThread(env *environment.Environment, thread java.ThreadID) java.Thread {
	info, err := env.GetThreadInfo(thread)
	if err != nil {
		return java.UnknownThread()
	}
	return info
}

// resolveClass resolves a class handle plus signature, downgrading to the
// sentinel on failure.
func resolveClass(env *environment.Environment, class java.ClassID) java.Class {
	sig, err := env.GetClassSignature(class)
	if err != nil {
		return java.UnknownClass()
	}
	return java.Class{ID: class, Signature: sig}
}

func (r *Registry) unhandled(kind event.Kind) {
	Logger().Debug("event raised with no registered callback",
		zap.Stringer("kind", kind))
}

// MethodEntry dispatches a method-entry event.
func (r *Registry) MethodEntry(env *environment.Environment, thread java.ThreadID, method java.MethodID) {
	cb := r.table.Load().MethodEntry
	if cb == nil {
		r.unhandled(event.MethodEntry)
		return
	}
	cb(resolveInvocation(env, thread, method))
}

// MethodExit dispatches a method-exit event.
func (r *Registry) MethodExit(env *environment.Environment, thread java.ThreadID, method java.MethodID) {
	cb := r.table.Load().MethodExit
	if cb == nil {
		r.unhandled(event.MethodExit)
		return
	}
	cb(resolveInvocation(env, thread, method))
}

// VMObjectAlloc dispatches an object allocation event.
func (r *Registry) VMObjectAlloc(env *environment.Environment, thread java.ThreadID, class java.ClassID, size int64) {
	cb := r.table.Load().VMObjectAlloc
	if cb == nil {
		r.unhandled(event.VMObjectAlloc)
		return
	}
	// Thread and class resolution fail together or not at all.
	info, err := env.GetThreadInfo(thread)
	if err != nil {
		cb(event.ObjectAllocation{Class: java.UnknownClass(), Thread: java.UnknownThread(), Size: size})
		return
	}
	sig, err := env.GetClassSignature(class)
	if err != nil {
		cb(event.ObjectAllocation{Class: java.UnknownClass(), Thread: java.UnknownThread(), Size: size})
		return
	}
	cb(event.ObjectAllocation{
		Class:  java.Class{ID: class, Signature: sig},
		Thread: info,
		Size:   size,
	})
}

// ThreadStart dispatches a thread-start event.
func (r *Registry) ThreadStart(env *environment.Environment, thread java.ThreadID) {
	cb := r.table.Load().ThreadStart
	if cb == nil {
		r.unhandled(event.ThreadStart)
		return
	}
	cb(resolveThread(env, thread))
}

// ThreadEnd dispatches a thread-end event.
func (r *Registry) ThreadEnd(env *environment.Environment, thread java.ThreadID) {
	cb := r.table.Load().ThreadEnd
	if cb == nil {
		r.unhandled(event.ThreadEnd)
		return
	}
	cb(resolveThread(env, thread))
}

// Exception dispatches an exception event. The exception's class is resolved
// through the interop interface.
func (r *Registry) Exception(env *environment.Environment, exception java.ObjectRef) {
	cb := r.table.Load().Exception
	if cb == nil {
		r.unhandled(event.Exception)
		return
	}
	classID, err := env.GetObjectClass(exception)
	if err != nil {
		cb(event.ExceptionEvent{Class: java.UnknownClass()})
		return
	}
	cb(event.ExceptionEvent{Class: resolveClass(env, classID)})
}

// ExceptionCatch dispatches an exception-catch event.
func (r *Registry) ExceptionCatch(env *environment.Environment) {
	cb := r.table.Load().ExceptionCatch
	if cb == nil {
		r.unhandled(event.ExceptionCatch)
		return
	}
	cb()
}

func (r *Registry) monitorCallback(kind event.Kind) event.FnMonitorWait {
	t := r.table.Load()
	switch kind {
	case event.MonitorWait:
		return event.FnMonitorWait(t.MonitorWait)
	case event.MonitorWaited:
		return event.FnMonitorWait(t.MonitorWaited)
	case event.MonitorContendedEnter:
		return event.FnMonitorWait(t.MonitorContendedEnter)
	case event.MonitorContendedEntered:
		return event.FnMonitorWait(t.MonitorContendedEntered)
	default:
		return nil
	}
}

// Monitor dispatches one of the four monitor event kinds.
func (r *Registry) Monitor(env *environment.Environment, kind event.Kind, thread java.ThreadID) {
	cb := r.monitorCallback(kind)
	if cb == nil {
		r.unhandled(kind)
		return
	}
	cb(event.MonitorEvent{Thread: resolveThread(env, thread)})
}

// FieldAccess dispatches a field-access event.
func (r *Registry) FieldAccess(env *environment.Environment, thread java.ThreadID, field java.FieldID) {
	cb := r.table.Load().FieldAccess
	if cb == nil {
		r.unhandled(event.FieldAccess)
		return
	}
	cb(event.FieldEvent{Thread: resolveThread(env, thread), Field: field})
}

// FieldModification dispatches a field-modification event.
func (r *Registry) FieldModification(env *environment.Environment, thread java.ThreadID, field java.FieldID) {
	cb := r.table.Load().FieldModification
	if cb == nil {
		r.unhandled(event.FieldModification)
		return
	}
	cb(event.FieldEvent{Thread: resolveThread(env, thread), Field: field})
}

// GarbageCollectionStart dispatches a GC-start event.
func (r *Registry) GarbageCollectionStart() {
	cb := r.table.Load().GarbageCollectionStart
	if cb == nil {
		r.unhandled(event.GarbageCollectionStart)
		return
	}
	cb()
}

// GarbageCollectionFinish dispatches a GC-finish event.
func (r *Registry) GarbageCollectionFinish() {
	cb := r.table.Load().GarbageCollectionFinish
	if cb == nil {
		r.unhandled(event.GarbageCollectionFinish)
		return
	}
	cb()
}

// VMInit dispatches the VM-init event.
func (r *Registry) VMInit() {
	cb := r.table.Load().VMInit
	if cb == nil {
		r.unhandled(event.VMInit)
		return
	}
	cb()
}

// VMStart dispatches the VM-start event.
func (r *Registry) VMStart() {
	cb := r.table.Load().VMStart
	if cb == nil {
		r.unhandled(event.VMStart)
		return
	}
	cb()
}

// VMDeath dispatches the VM-death event.
func (r *Registry) VMDeath() {
	cb := r.table.Load().VMDeath
	if cb == nil {
		r.unhandled(event.VMDeath)
		return
	}
	cb()
}

// ClassFileLoad dispatches a class-file-load event and returns the
// callback's replacement class bytes, or nil to keep the original.
func (r *Registry) ClassFileLoad(name string, data []byte) []byte {
	cb := r.table.Load().ClassFileLoad
	if cb == nil {
		r.unhandled(event.ClassFileLoad)
		return nil
	}
	return cb(event.ClassFileLoadData{ClassName: name, Data: data})
}
