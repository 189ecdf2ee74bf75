package environment

import (
	"github.com/wippyai/jvm-runtime/capability"
	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/event"
	"github.com/wippyai/jvm-runtime/java"
)

// Environment combines a Tooling and an Interop backend behind one façade.
// It wraps already-initialized backends and holds no other state, so
// construction is cheap enough for transient per-event use.
//
// The façade owns the null-handle guards: any accessor receiving a null
// handle fails with the matching *-IsNull error without touching the backend.
type Environment struct {
	tooling Tooling
	interop Interop
}

// New builds an Environment over the given backend pair.
func New(tooling Tooling, interop Interop) *Environment {
	return &Environment{tooling: tooling, interop: interop}
}

// Tooling returns the underlying tooling backend.
func (e *Environment) Tooling() Tooling { return e.tooling }

// Interop returns the underlying interop backend.
func (e *Environment) Interop() Interop { return e.interop }

// --- Tooling surface ---

func (e *Environment) GetVersionNumber() java.Version {
	return e.tooling.GetVersionNumber()
}

func (e *Environment) AddCapabilities(requested capability.Set) (capability.Set, error) {
	return e.tooling.AddCapabilities(requested)
}

func (e *Environment) GetCapabilities() capability.Set {
	return e.tooling.GetCapabilities()
}

func (e *Environment) SetEventCallbacks(callbacks event.Callbacks) error {
	return e.tooling.SetEventCallbacks(callbacks)
}

func (e *Environment) SetEventNotificationMode(kind event.Kind, enabled bool) error {
	return e.tooling.SetEventNotificationMode(kind, enabled)
}

func (e *Environment) GetThreadInfo(thread java.ThreadID) (java.Thread, error) {
	if thread.IsNil() {
		return java.Thread{}, errors.ErrThreadIsNull
	}
	return e.tooling.GetThreadInfo(thread)
}

func (e *Environment) GetCurrentThread() (java.ThreadID, error) {
	return e.tooling.GetCurrentThread()
}

func (e *Environment) GetAllThreads() ([]java.ThreadID, error) {
	return e.tooling.GetAllThreads()
}

func (e *Environment) GetThreadState(thread java.ThreadID) (java.ThreadState, error) {
	if thread.IsNil() {
		return 0, errors.ErrThreadIsNull
	}
	return e.tooling.GetThreadState(thread)
}

func (e *Environment) RunAgentThread(thread java.ThreadID, proc AgentThreadProc, priority int32) error {
	if thread.IsNil() {
		return errors.ErrThreadIsNull
	}
	return e.tooling.RunAgentThread(thread, proc, priority)
}

func (e *Environment) GetStackTrace(thread java.ThreadID) ([]java.FrameInfo, error) {
	if thread.IsNil() {
		return nil, errors.ErrThreadIsNull
	}
	return e.tooling.GetStackTrace(thread)
}

func (e *Environment) GetLocalObject(thread java.ThreadID, depth, slot int32) (java.ObjectRef, error) {
	if thread.IsNil() {
		return 0, errors.ErrThreadIsNull
	}
	return e.tooling.GetLocalObject(thread, depth, slot)
}

func (e *Environment) GetMethodDeclaringClass(method java.MethodID) (java.ClassID, error) {
	if method.IsNil() {
		return 0, errors.ErrMethodIsNull
	}
	return e.tooling.GetMethodDeclaringClass(method)
}

func (e *Environment) GetMethodName(method java.MethodID) (java.MethodSignature, error) {
	if method.IsNil() {
		return java.MethodSignature{}, errors.ErrMethodIsNull
	}
	return e.tooling.GetMethodName(method)
}

func (e *Environment) GetClassSignature(class java.ClassID) (java.ClassSignature, error) {
	if class.IsNil() {
		return java.ClassSignature{}, errors.ErrClassObjectIsNull
	}
	return e.tooling.GetClassSignature(class)
}

func (e *Environment) GetLoadedClasses() ([]java.ClassID, error) {
	return e.tooling.GetLoadedClasses()
}

func (e *Environment) GetClassLoaderClasses(loader java.ObjectRef) ([]java.ClassID, error) {
	if loader.IsNil() {
		return nil, errors.ErrObjectIsNull
	}
	return e.tooling.GetClassLoaderClasses(loader)
}

func (e *Environment) GetClassLoader(class java.ClassID) (java.ObjectRef, error) {
	if class.IsNil() {
		return 0, errors.ErrClassObjectIsNull
	}
	return e.tooling.GetClassLoader(class)
}

func (e *Environment) IsArrayClass(class java.ClassID) (bool, error) {
	if class.IsNil() {
		return false, errors.ErrClassObjectIsNull
	}
	return e.tooling.IsArrayClass(class)
}

func (e *Environment) RetransformClasses(classes []java.ClassID) error {
	for _, c := range classes {
		if c.IsNil() {
			return errors.ErrClassObjectIsNull
		}
	}
	return e.tooling.RetransformClasses(classes)
}

func (e *Environment) AddToBootstrapClassLoaderSearch(classPath string) error {
	return e.tooling.AddToBootstrapClassLoaderSearch(classPath)
}

func (e *Environment) Allocate(length int) (java.MemoryAllocation, error) {
	return e.tooling.Allocate(length)
}

// Deallocate releases memory obtained from Allocate. A null pointer is a
// no-op, which keeps composite cleanup unconditional but null-safe.
func (e *Environment) Deallocate(ptr java.Handle) error {
	if ptr == 0 {
		return nil
	}
	return e.tooling.Deallocate(ptr)
}

func (e *Environment) CreateRawMonitor(name string) (java.RawMonitorID, error) {
	return e.tooling.CreateRawMonitor(name)
}

func (e *Environment) DestroyRawMonitor(monitor java.RawMonitorID) error {
	if monitor.IsNil() {
		return errors.ErrMonitorIsNull
	}
	return e.tooling.DestroyRawMonitor(monitor)
}

func (e *Environment) RawMonitorEnter(monitor java.RawMonitorID) error {
	if monitor.IsNil() {
		return errors.ErrMonitorIsNull
	}
	return e.tooling.RawMonitorEnter(monitor)
}

func (e *Environment) RawMonitorExit(monitor java.RawMonitorID) error {
	if monitor.IsNil() {
		return errors.ErrMonitorIsNull
	}
	return e.tooling.RawMonitorExit(monitor)
}

func (e *Environment) GetObjectSize(object java.ObjectRef) (int64, error) {
	if object.IsNil() {
		return 0, errors.ErrObjectIsNull
	}
	return e.tooling.GetObjectSize(object)
}

func (e *Environment) GetObjectHashCode(object java.ObjectRef) (int32, error) {
	if object.IsNil() {
		return 0, errors.ErrObjectIsNull
	}
	return e.tooling.GetObjectHashCode(object)
}

func (e *Environment) GetObjectsWithTags(tags []int64) ([]java.ObjectRef, error) {
	return e.tooling.GetObjectsWithTags(tags)
}

func (e *Environment) IterateOverHeap(filter HeapFilter, fn HeapObjectFunc) error {
	return e.tooling.IterateOverHeap(filter, fn)
}

func (e *Environment) IterateOverInstancesOfClass(class java.ClassID, filter HeapFilter, fn HeapObjectFunc) error {
	if class.IsNil() {
		return errors.ErrClassObjectIsNull
	}
	return e.tooling.IterateOverInstancesOfClass(class, filter, fn)
}

func (e *Environment) IterateOverObjectsReachableFromObject(object java.ObjectRef, fn ObjectReferenceFunc) error {
	if object.IsNil() {
		return errors.ErrObjectIsNull
	}
	return e.tooling.IterateOverObjectsReachableFromObject(object, fn)
}

func (e *Environment) ForceGarbageCollection() error {
	return e.tooling.ForceGarbageCollection()
}

// --- Interop surface ---

func (e *Environment) GetObjectClass(object java.ObjectRef) (java.ClassID, error) {
	if object.IsNil() {
		return 0, errors.ErrObjectIsNull
	}
	return e.interop.GetObjectClass(object)
}

func (e *Environment) FindClass(name string) (java.ClassID, error) {
	return e.interop.FindClass(name)
}

func (e *Environment) GetMethod(class java.ClassID, name, signature string) (java.MethodID, error) {
	if class.IsNil() {
		return 0, errors.ErrClassObjectIsNull
	}
	return e.interop.GetMethod(class, name, signature)
}

func (e *Environment) GetStaticMethod(class java.ClassID, name, signature string) (java.MethodID, error) {
	if class.IsNil() {
		return 0, errors.ErrClassObjectIsNull
	}
	return e.interop.GetStaticMethod(class, name, signature)
}

func (e *Environment) GetFieldID(class java.ClassID, name, signature string) (java.FieldID, error) {
	if class.IsNil() {
		return 0, errors.ErrClassObjectIsNull
	}
	return e.interop.GetFieldID(class, name, signature)
}

func (e *Environment) GetIntField(object java.ObjectRef, field java.FieldID) (int32, error) {
	if object.IsNil() {
		return 0, errors.ErrObjectIsNull
	}
	if field.IsNil() {
		return 0, errors.ErrFieldIsNull
	}
	return e.interop.GetIntField(object, field)
}

func (e *Environment) GetObjectField(object java.ObjectRef, field java.FieldID) (java.ObjectRef, error) {
	if object.IsNil() {
		return 0, errors.ErrObjectIsNull
	}
	if field.IsNil() {
		return 0, errors.ErrFieldIsNull
	}
	return e.interop.GetObjectField(object, field)
}

func (e *Environment) NewObject(class java.ClassID, ctor java.MethodID, args ...java.Value) (java.ObjectRef, error) {
	if class.IsNil() {
		return 0, errors.ErrClassObjectIsNull
	}
	if ctor.IsNil() {
		return 0, errors.ErrMethodIsNull
	}
	return e.interop.NewObject(class, ctor, args...)
}

func (e *Environment) NewStringUTF(s string) (java.ObjectRef, error) {
	return e.interop.NewStringUTF(s)
}

func (e *Environment) GetStringUTFChars(str java.ObjectRef) (string, error) {
	if str.IsNil() {
		return "", errors.ErrObjectIsNull
	}
	return e.interop.GetStringUTFChars(str)
}

func (e *Environment) CallObjectMethod(object java.ObjectRef, method java.MethodID, args ...java.Value) (java.ObjectRef, error) {
	if object.IsNil() {
		return 0, errors.ErrObjectIsNull
	}
	if method.IsNil() {
		return 0, errors.ErrMethodIsNull
	}
	return e.interop.CallObjectMethod(object, method, args...)
}

func (e *Environment) CallLongMethod(object java.ObjectRef, method java.MethodID, args ...java.Value) (int64, error) {
	if object.IsNil() {
		return 0, errors.ErrObjectIsNull
	}
	if method.IsNil() {
		return 0, errors.ErrMethodIsNull
	}
	return e.interop.CallLongMethod(object, method, args...)
}

func (e *Environment) CallStaticObjectMethod(class java.ClassID, method java.MethodID, args ...java.Value) (java.ObjectRef, error) {
	if class.IsNil() {
		return 0, errors.ErrClassObjectIsNull
	}
	if method.IsNil() {
		return 0, errors.ErrMethodIsNull
	}
	return e.interop.CallStaticObjectMethod(class, method, args...)
}

func (e *Environment) CallStaticBooleanMethod(class java.ClassID, method java.MethodID, args ...java.Value) (bool, error) {
	if class.IsNil() {
		return false, errors.ErrClassObjectIsNull
	}
	if method.IsNil() {
		return false, errors.ErrMethodIsNull
	}
	return e.interop.CallStaticBooleanMethod(class, method, args...)
}

func (e *Environment) IsInstanceOf(object java.ObjectRef, class java.ClassID) (bool, error) {
	if object.IsNil() {
		return false, errors.ErrObjectIsNull
	}
	if class.IsNil() {
		return false, errors.ErrClassObjectIsNull
	}
	return e.interop.IsInstanceOf(object, class)
}

func (e *Environment) IsAssignableFrom(sub, sup java.ClassID) (bool, error) {
	if sub.IsNil() || sup.IsNil() {
		return false, errors.ErrClassObjectIsNull
	}
	return e.interop.IsAssignableFrom(sub, sup)
}

func (e *Environment) GetArrayLength(array java.ObjectRef) (int32, error) {
	if array.IsNil() {
		return 0, errors.ErrObjectIsNull
	}
	return e.interop.GetArrayLength(array)
}

func (e *Environment) GetObjectArrayElement(array java.ObjectRef, index int32) (java.ObjectRef, error) {
	if array.IsNil() {
		return 0, errors.ErrObjectIsNull
	}
	return e.interop.GetObjectArrayElement(array, index)
}

// DeleteLocalRef releases a local reference. A null reference is a no-op,
// which keeps release unconditional but null-safe in composite operations.
func (e *Environment) DeleteLocalRef(object java.ObjectRef) error {
	if object.IsNil() {
		return nil
	}
	return e.interop.DeleteLocalRef(object)
}

func (e *Environment) NewGlobalRef(object java.ObjectRef) (java.ObjectRef, error) {
	if object.IsNil() {
		return 0, errors.ErrObjectIsNull
	}
	return e.interop.NewGlobalRef(object)
}

func (e *Environment) DeleteGlobalRef(object java.ObjectRef) error {
	if object.IsNil() {
		return errors.ErrObjectIsNull
	}
	return e.interop.DeleteGlobalRef(object)
}
