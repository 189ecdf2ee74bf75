package emulator

import (
	"sync"

	"github.com/wippyai/jvm-runtime/capability"
	"github.com/wippyai/jvm-runtime/dispatch"
	"github.com/wippyai/jvm-runtime/environment"
	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/event"
	"github.com/wippyai/jvm-runtime/java"
)

// SyntheticEmptyMethodID is the reserved method handle the emulator answers
// for: GetMethodName returns an empty-but-valid signature.
const SyntheticEmptyMethodID java.MethodID = 0x01

type monitor struct {
	name    string
	entries int
}

// Emulator is the in-memory backend. It implements environment.Tooling and
// environment.Interop; see the package documentation for its contract.
type Emulator struct {
	mu       sync.Mutex
	caps     capability.Set
	registry *dispatch.Registry
	notify   map[event.Kind]bool
	monitors map[java.RawMonitorID]*monitor
	nextMon  java.RawMonitorID
	calls    []string
}

// New returns an emulator with no capabilities, an empty callback table and
// all notifications disabled.
func New() *Emulator {
	return &Emulator{
		registry: dispatch.NewRegistry(),
		notify:   make(map[event.Kind]bool),
		monitors: make(map[java.RawMonitorID]*monitor),
	}
}

// Registry exposes the emulator's callback registry for test harnesses.
func (e *Emulator) Registry() *dispatch.Registry { return e.registry }

// Environment wraps the emulator in a façade, as both backends.
func (e *Emulator) Environment() *environment.Environment {
	return environment.New(e, e)
}

func (e *Emulator) record(op string) {
	e.mu.Lock()
	e.calls = append(e.calls, op)
	e.mu.Unlock()
}

// Calls returns the recorded backend invocations, in order.
func (e *Emulator) Calls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.calls))
	copy(out, e.calls)
	return out
}

// ResetCalls clears the invocation record.
func (e *Emulator) ResetCalls() {
	e.mu.Lock()
	e.calls = nil
	e.mu.Unlock()
}

// --- environment.Tooling ---

func (e *Emulator) GetVersionNumber() java.Version {
	e.record("GetVersionNumber")
	return java.UnknownVersion()
}

func (e *Emulator) AddCapabilities(requested capability.Set) (capability.Set, error) {
	e.record("AddCapabilities")
	e.mu.Lock()
	defer e.mu.Unlock()
	e.caps = e.caps.Merge(requested)
	return e.caps, nil
}

func (e *Emulator) GetCapabilities() capability.Set {
	e.record("GetCapabilities")
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.caps
}

func (e *Emulator) SetEventCallbacks(callbacks event.Callbacks) error {
	e.record("SetEventCallbacks")
	e.registry.Set(callbacks)
	return nil
}

func (e *Emulator) SetEventNotificationMode(kind event.Kind, enabled bool) error {
	e.record("SetEventNotificationMode")
	if !kind.IsValid() {
		return &errors.StatusError{Status: errors.StatusIllegalArgument, Op: "SetEventNotificationMode", Code: uint32(errors.StatusIllegalArgument)}
	}
	e.mu.Lock()
	e.notify[kind] = enabled
	e.mu.Unlock()
	return nil
}

func (e *Emulator) GetThreadInfo(thread java.ThreadID) (java.Thread, error) {
	e.record("GetThreadInfo")
	return java.Thread{}, errors.NotImplemented("GetThreadInfo")
}

func (e *Emulator) GetCurrentThread() (java.ThreadID, error) {
	e.record("GetCurrentThread")
	return 0, errors.NotImplemented("GetCurrentThread")
}

func (e *Emulator) GetAllThreads() ([]java.ThreadID, error) {
	e.record("GetAllThreads")
	return nil, errors.NotImplemented("GetAllThreads")
}

func (e *Emulator) GetThreadState(thread java.ThreadID) (java.ThreadState, error) {
	e.record("GetThreadState")
	return 0, errors.NotImplemented("GetThreadState")
}

// RunAgentThread runs proc on a new goroutine, the emulator's stand-in for
// an agent-owned thread.
func (e *Emulator) RunAgentThread(thread java.ThreadID, proc environment.AgentThreadProc, priority int32) error {
	e.record("RunAgentThread")
	if proc == nil {
		return &errors.StatusError{Status: errors.StatusNullPointer, Op: "RunAgentThread", Code: uint32(errors.StatusNullPointer)}
	}
	go proc(e.Environment())
	return nil
}

func (e *Emulator) GetStackTrace(thread java.ThreadID) ([]java.FrameInfo, error) {
	e.record("GetStackTrace")
	return nil, errors.NotImplemented("GetStackTrace")
}

func (e *Emulator) GetLocalObject(thread java.ThreadID, depth, slot int32) (java.ObjectRef, error) {
	e.record("GetLocalObject")
	return 0, errors.NotImplemented("GetLocalObject")
}

func (e *Emulator) GetMethodDeclaringClass(method java.MethodID) (java.ClassID, error) {
	e.record("GetMethodDeclaringClass")
	return 0, errors.NotImplemented("GetMethodDeclaringClass")
}

func (e *Emulator) GetMethodName(method java.MethodID) (java.MethodSignature, error) {
	e.record("GetMethodName")
	if method == SyntheticEmptyMethodID {
		return java.MethodSignature{Name: "", Signature: ""}, nil
	}
	return java.MethodSignature{}, errors.NotImplemented("GetMethodName")
}

func (e *Emulator) GetClassSignature(class java.ClassID) (java.ClassSignature, error) {
	e.record("GetClassSignature")
	return java.ClassSignature{}, errors.NotImplemented("GetClassSignature")
}

func (e *Emulator) GetLoadedClasses() ([]java.ClassID, error) {
	e.record("GetLoadedClasses")
	return nil, errors.NotImplemented("GetLoadedClasses")
}

func (e *Emulator) GetClassLoaderClasses(loader java.ObjectRef) ([]java.ClassID, error) {
	e.record("GetClassLoaderClasses")
	return nil, errors.NotImplemented("GetClassLoaderClasses")
}

func (e *Emulator) GetClassLoader(class java.ClassID) (java.ObjectRef, error) {
	e.record("GetClassLoader")
	return 0, errors.NotImplemented("GetClassLoader")
}

func (e *Emulator) IsArrayClass(class java.ClassID) (bool, error) {
	e.record("IsArrayClass")
	return false, errors.NotImplemented("IsArrayClass")
}

func (e *Emulator) RetransformClasses(classes []java.ClassID) error {
	e.record("RetransformClasses")
	return errors.NotImplemented("RetransformClasses")
}

func (e *Emulator) AddToBootstrapClassLoaderSearch(classPath string) error {
	e.record("AddToBootstrapClassLoaderSearch")
	return errors.NotImplemented("AddToBootstrapClassLoaderSearch")
}

// Allocate always succeeds as a no-op; the returned pointer is null and Len
// echoes the request.
func (e *Emulator) Allocate(length int) (java.MemoryAllocation, error) {
	e.record("Allocate")
	if length < 0 {
		return java.MemoryAllocation{}, &errors.StatusError{Status: errors.StatusIllegalArgument, Op: "Allocate", Code: uint32(errors.StatusIllegalArgument)}
	}
	return java.MemoryAllocation{Ptr: 0, Len: length}, nil
}

// Deallocate always succeeds as a no-op.
func (e *Emulator) Deallocate(ptr java.Handle) error {
	e.record("Deallocate")
	return nil
}

func (e *Emulator) CreateRawMonitor(name string) (java.RawMonitorID, error) {
	e.record("CreateRawMonitor")
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextMon++
	id := e.nextMon
	e.monitors[id] = &monitor{name: name}
	return id, nil
}

func (e *Emulator) DestroyRawMonitor(mon java.RawMonitorID) error {
	e.record("DestroyRawMonitor")
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.monitors[mon]; !ok {
		return &errors.StatusError{Status: errors.StatusInvalidMonitor, Op: "DestroyRawMonitor", Code: uint32(errors.StatusInvalidMonitor)}
	}
	delete(e.monitors, mon)
	return nil
}

func (e *Emulator) RawMonitorEnter(mon java.RawMonitorID) error {
	e.record("RawMonitorEnter")
	e.mu.Lock()
	defer e.mu.Unlock()
	m, ok := e.monitors[mon]
	if !ok {
		return &errors.StatusError{Status: errors.StatusInvalidMonitor, Op: "RawMonitorEnter", Code: uint32(errors.StatusInvalidMonitor)}
	}
	m.entries++
	return nil
}

// RawMonitorExit fails distinctly when the monitor is not held; it never
// silently succeeds or deadlocks.
func (e *Emulator) RawMonitorExit(mon java.RawMonitorID) error {
	e.record("RawMonitorExit")
	e.mu.Lock()
	defer e.mu.Unlock()
	m, ok := e.monitors[mon]
	if !ok {
		return &errors.StatusError{Status: errors.StatusInvalidMonitor, Op: "RawMonitorExit", Code: uint32(errors.StatusInvalidMonitor)}
	}
	if m.entries == 0 {
		return &errors.StatusError{Status: errors.StatusNotMonitorOwner, Op: "RawMonitorExit", Code: uint32(errors.StatusNotMonitorOwner)}
	}
	m.entries--
	return nil
}

func (e *Emulator) GetObjectSize(object java.ObjectRef) (int64, error) {
	e.record("GetObjectSize")
	return 0, errors.NotImplemented("GetObjectSize")
}

func (e *Emulator) GetObjectHashCode(object java.ObjectRef) (int32, error) {
	e.record("GetObjectHashCode")
	return 0, errors.NotImplemented("GetObjectHashCode")
}

func (e *Emulator) GetObjectsWithTags(tags []int64) ([]java.ObjectRef, error) {
	e.record("GetObjectsWithTags")
	return nil, errors.NotImplemented("GetObjectsWithTags")
}

func (e *Emulator) IterateOverHeap(filter environment.HeapFilter, fn environment.HeapObjectFunc) error {
	e.record("IterateOverHeap")
	return errors.NotImplemented("IterateOverHeap")
}

func (e *Emulator) IterateOverInstancesOfClass(class java.ClassID, filter environment.HeapFilter, fn environment.HeapObjectFunc) error {
	e.record("IterateOverInstancesOfClass")
	return errors.NotImplemented("IterateOverInstancesOfClass")
}

func (e *Emulator) IterateOverObjectsReachableFromObject(object java.ObjectRef, fn environment.ObjectReferenceFunc) error {
	e.record("IterateOverObjectsReachableFromObject")
	return errors.NotImplemented("IterateOverObjectsReachableFromObject")
}

// ForceGarbageCollection succeeds as a no-op; there is no heap to collect.
func (e *Emulator) ForceGarbageCollection() error {
	e.record("ForceGarbageCollection")
	return nil
}
