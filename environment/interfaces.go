package environment

import (
	"github.com/wippyai/jvm-runtime/capability"
	"github.com/wippyai/jvm-runtime/event"
	"github.com/wippyai/jvm-runtime/java"
)

// HeapFilter restricts which objects a heap iteration visits, by tag state.
type HeapFilter int32

const (
	HeapFilterTagged   HeapFilter = 1
	HeapFilterUntagged HeapFilter = 2
	HeapFilterEither   HeapFilter = 3
)

// IterationControl is returned by heap iteration callbacks to steer the
// traversal. The traversal itself is owned entirely by the native layer.
type IterationControl int32

const (
	IterationAbort    IterationControl = 0
	IterationContinue IterationControl = 1
	IterationIgnore   IterationControl = 2
)

// HeapObjectFunc visits one heap object. Tag may be updated in place to
// retag the object.
type HeapObjectFunc func(classTag int64, size int64, tag *int64) IterationControl

// ObjectReferenceFunc visits one reference discovered while walking objects
// reachable from a root object.
type ObjectReferenceFunc func(classTag int64, size int64, tag *int64, referrerTag int64) IterationControl

// AgentThreadProc is the body of an agent-owned thread started through
// RunAgentThread. It receives a transient Environment bound to the new
// thread's native pointers.
type AgentThreadProc func(env *Environment)

// Agent thread priorities accepted by RunAgentThread.
const (
	ThreadPriorityMin  int32 = 1
	ThreadPriorityNorm int32 = 5
	ThreadPriorityMax  int32 = 10
)

// Tooling is the runtime's agent control and inspection interface. All
// operations are fallible; failures carry the closed error set of package
// errors.
type Tooling interface {
	GetVersionNumber() java.Version

	// AddCapabilities asks the runtime to grant any newly requested flags
	// and returns the merged set. Previously granted flags are never unset;
	// some runtimes refuse additions outside the setup phase.
	AddCapabilities(requested capability.Set) (capability.Set, error)
	// GetCapabilities returns the current snapshot by value.
	GetCapabilities() capability.Set

	// SetEventCallbacks atomically replaces the whole callback table and, at
	// the native layer, wires trampolines only for set slots. No events are
	// delivered before the first call.
	SetEventCallbacks(callbacks event.Callbacks) error
	// SetEventNotificationMode toggles delivery for one kind. Independent of
	// SetEventCallbacks; the two commute.
	SetEventNotificationMode(kind event.Kind, enabled bool) error

	GetThreadInfo(thread java.ThreadID) (java.Thread, error)
	GetCurrentThread() (java.ThreadID, error)
	GetAllThreads() ([]java.ThreadID, error)
	GetThreadState(thread java.ThreadID) (java.ThreadState, error)
	RunAgentThread(thread java.ThreadID, proc AgentThreadProc, priority int32) error
	GetStackTrace(thread java.ThreadID) ([]java.FrameInfo, error)
	GetLocalObject(thread java.ThreadID, depth, slot int32) (java.ObjectRef, error)

	GetMethodDeclaringClass(method java.MethodID) (java.ClassID, error)
	GetMethodName(method java.MethodID) (java.MethodSignature, error)
	GetClassSignature(class java.ClassID) (java.ClassSignature, error)
	GetLoadedClasses() ([]java.ClassID, error)
	GetClassLoaderClasses(loader java.ObjectRef) ([]java.ClassID, error)
	GetClassLoader(class java.ClassID) (java.ObjectRef, error)
	IsArrayClass(class java.ClassID) (bool, error)
	RetransformClasses(classes []java.ClassID) error
	AddToBootstrapClassLoaderSearch(classPath string) error

	Allocate(length int) (java.MemoryAllocation, error)
	Deallocate(ptr java.Handle) error

	CreateRawMonitor(name string) (java.RawMonitorID, error)
	DestroyRawMonitor(monitor java.RawMonitorID) error
	RawMonitorEnter(monitor java.RawMonitorID) error
	RawMonitorExit(monitor java.RawMonitorID) error

	GetObjectSize(object java.ObjectRef) (int64, error)
	GetObjectHashCode(object java.ObjectRef) (int32, error)
	GetObjectsWithTags(tags []int64) ([]java.ObjectRef, error)
	IterateOverHeap(filter HeapFilter, fn HeapObjectFunc) error
	IterateOverInstancesOfClass(class java.ClassID, filter HeapFilter, fn HeapObjectFunc) error
	IterateOverObjectsReachableFromObject(object java.ObjectRef, fn ObjectReferenceFunc) error
	ForceGarbageCollection() error
}

// Interop is the runtime's object interop interface: method invocation and
// field access on runtime objects.
type Interop interface {
	GetObjectClass(object java.ObjectRef) (java.ClassID, error)
	FindClass(name string) (java.ClassID, error)
	GetMethod(class java.ClassID, name, signature string) (java.MethodID, error)
	GetStaticMethod(class java.ClassID, name, signature string) (java.MethodID, error)
	GetFieldID(class java.ClassID, name, signature string) (java.FieldID, error)

	GetIntField(object java.ObjectRef, field java.FieldID) (int32, error)
	GetObjectField(object java.ObjectRef, field java.FieldID) (java.ObjectRef, error)

	NewObject(class java.ClassID, ctor java.MethodID, args ...java.Value) (java.ObjectRef, error)
	NewStringUTF(s string) (java.ObjectRef, error)
	// GetStringUTFChars copies the string contents out and releases the
	// native chars before returning; the result is owned by Go.
	GetStringUTFChars(str java.ObjectRef) (string, error)

	CallObjectMethod(object java.ObjectRef, method java.MethodID, args ...java.Value) (java.ObjectRef, error)
	CallLongMethod(object java.ObjectRef, method java.MethodID, args ...java.Value) (int64, error)
	CallStaticObjectMethod(class java.ClassID, method java.MethodID, args ...java.Value) (java.ObjectRef, error)
	CallStaticBooleanMethod(class java.ClassID, method java.MethodID, args ...java.Value) (bool, error)

	IsInstanceOf(object java.ObjectRef, class java.ClassID) (bool, error)
	IsAssignableFrom(sub, sup java.ClassID) (bool, error)

	GetArrayLength(array java.ObjectRef) (int32, error)
	GetObjectArrayElement(array java.ObjectRef, index int32) (java.ObjectRef, error)

	// Reference lifetime management; see package java.
	DeleteLocalRef(object java.ObjectRef) error
	NewGlobalRef(object java.ObjectRef) (java.ObjectRef, error)
	DeleteGlobalRef(object java.ObjectRef) error
}
