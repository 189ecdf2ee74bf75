//go:build jvmti

package native

/*
#cgo CFLAGS: -I/usr/lib/jvm/default-java/include -I/usr/lib/jvm/default-java/include/linux

#include <stdlib.h>
#include <string.h>
#include <jvmti.h>

// Trampolines and visitor callbacks implemented in Go (trampolines.go).
extern void jrVMInit(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread);
extern void jrVMStart(jvmtiEnv* jvmti, JNIEnv* jni);
extern void jrVMDeath(jvmtiEnv* jvmti, JNIEnv* jni);
extern void jrMethodEntry(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread, jmethodID method);
extern void jrMethodExit(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread, jmethodID method,
	jboolean popped_by_exception, jvalue return_value);
extern void jrThreadStart(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread);
extern void jrThreadEnd(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread);
extern void jrException(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread, jmethodID method,
	jlocation location, jobject exception, jmethodID catch_method, jlocation catch_location);
extern void jrExceptionCatch(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread, jmethodID method,
	jlocation location, jobject exception);
extern void jrMonitorWait(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread, jobject object, jlong timeout);
extern void jrMonitorWaited(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread, jobject object, jboolean timed_out);
extern void jrMonitorContendedEnter(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread, jobject object);
extern void jrMonitorContendedEntered(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread, jobject object);
extern void jrFieldAccess(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread, jmethodID method,
	jlocation location, jclass field_klass, jobject object, jfieldID field);
extern void jrFieldModification(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread, jmethodID method,
	jlocation location, jclass field_klass, jobject object, jfieldID field,
	char signature_type, jvalue new_value);
extern void jrGarbageCollectionStart(jvmtiEnv* jvmti);
extern void jrGarbageCollectionFinish(jvmtiEnv* jvmti);
extern void jrVMObjectAlloc(jvmtiEnv* jvmti, JNIEnv* jni, jthread thread, jobject object,
	jclass object_klass, jlong size);
extern void jrClassFileLoadHook(jvmtiEnv* jvmti, JNIEnv* jni, jclass class_being_redefined,
	jobject loader, const char* name, jobject protection_domain, jint class_data_len,
	const unsigned char* class_data, jint* new_class_data_len, unsigned char** new_class_data);
extern jvmtiIterationControl jrHeapObjectVisit(jlong class_tag, jlong size, jlong* tag_ptr, void* user_data);
extern jvmtiIterationControl jrObjectReferenceVisit(jvmtiObjectReferenceKind reference_kind,
	jlong class_tag, jlong size, jlong* tag_ptr, jlong referrer_tag, jint referrer_index, void* user_data);
extern void jrAgentThreadStart(jvmtiEnv* jvmti, JNIEnv* jni, void* arg);

// Every JVMTI operation goes through (*env)->Fn(env, ...); Go cannot call C
// function pointers, so each one gets a static wrapper.

static jvmtiError jr_get_version(jvmtiEnv* env, jint* out) {
	return (*env)->GetVersionNumber(env, out);
}

// Capabilities cross as the raw 16-byte bit vector; jvmtiCapabilities is a
// bitfield struct the Go side cannot express.
static jvmtiError jr_add_capabilities(jvmtiEnv* env, const unsigned char* bits, size_t n) {
	jvmtiCapabilities caps;
	memset(&caps, 0, sizeof(caps));
	memcpy(&caps, bits, n < sizeof(caps) ? n : sizeof(caps));
	return (*env)->AddCapabilities(env, &caps);
}

static jvmtiError jr_get_capabilities(jvmtiEnv* env, unsigned char* bits, size_t n) {
	jvmtiCapabilities caps;
	memset(&caps, 0, sizeof(caps));
	jvmtiError rc = (*env)->GetCapabilities(env, &caps);
	if (rc == JVMTI_ERROR_NONE) {
		memcpy(bits, &caps, n < sizeof(caps) ? n : sizeof(caps));
	}
	return rc;
}

// jr_set_event_callbacks wires trampolines for exactly the kinds named in
// mask (bit = event number - JVMTI_MIN_EVENT_TYPE_VAL).
static jvmtiError jr_set_event_callbacks(jvmtiEnv* env, uint64_t mask) {
	jvmtiEventCallbacks cb;
	memset(&cb, 0, sizeof(cb));
	if (mask & (1ULL << (JVMTI_EVENT_VM_INIT - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.VMInit = jrVMInit;
	if (mask & (1ULL << (JVMTI_EVENT_VM_START - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.VMStart = jrVMStart;
	if (mask & (1ULL << (JVMTI_EVENT_VM_DEATH - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.VMDeath = jrVMDeath;
	if (mask & (1ULL << (JVMTI_EVENT_METHOD_ENTRY - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.MethodEntry = jrMethodEntry;
	if (mask & (1ULL << (JVMTI_EVENT_METHOD_EXIT - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.MethodExit = jrMethodExit;
	if (mask & (1ULL << (JVMTI_EVENT_THREAD_START - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.ThreadStart = jrThreadStart;
	if (mask & (1ULL << (JVMTI_EVENT_THREAD_END - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.ThreadEnd = jrThreadEnd;
	if (mask & (1ULL << (JVMTI_EVENT_EXCEPTION - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.Exception = jrException;
	if (mask & (1ULL << (JVMTI_EVENT_EXCEPTION_CATCH - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.ExceptionCatch = jrExceptionCatch;
	if (mask & (1ULL << (JVMTI_EVENT_MONITOR_WAIT - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.MonitorWait = jrMonitorWait;
	if (mask & (1ULL << (JVMTI_EVENT_MONITOR_WAITED - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.MonitorWaited = jrMonitorWaited;
	if (mask & (1ULL << (JVMTI_EVENT_MONITOR_CONTENDED_ENTER - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.MonitorContendedEnter = jrMonitorContendedEnter;
	if (mask & (1ULL << (JVMTI_EVENT_MONITOR_CONTENDED_ENTERED - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.MonitorContendedEntered = jrMonitorContendedEntered;
	if (mask & (1ULL << (JVMTI_EVENT_FIELD_ACCESS - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.FieldAccess = jrFieldAccess;
	if (mask & (1ULL << (JVMTI_EVENT_FIELD_MODIFICATION - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.FieldModification = jrFieldModification;
	if (mask & (1ULL << (JVMTI_EVENT_GARBAGE_COLLECTION_START - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.GarbageCollectionStart = jrGarbageCollectionStart;
	if (mask & (1ULL << (JVMTI_EVENT_GARBAGE_COLLECTION_FINISH - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.GarbageCollectionFinish = jrGarbageCollectionFinish;
	if (mask & (1ULL << (JVMTI_EVENT_VM_OBJECT_ALLOC - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.VMObjectAlloc = jrVMObjectAlloc;
	if (mask & (1ULL << (JVMTI_EVENT_CLASS_FILE_LOAD_HOOK - JVMTI_MIN_EVENT_TYPE_VAL)))
		cb.ClassFileLoadHook = jrClassFileLoadHook;
	return (*env)->SetEventCallbacks(env, &cb, sizeof(cb));
}

static jvmtiError jr_set_notification(jvmtiEnv* env, jvmtiEventMode mode, jvmtiEvent kind) {
	return (*env)->SetEventNotificationMode(env, mode, kind, NULL);
}

static jvmtiError jr_get_thread_info(jvmtiEnv* env, jthread thread, jvmtiThreadInfo* out) {
	return (*env)->GetThreadInfo(env, thread, out);
}

static jvmtiError jr_get_current_thread(jvmtiEnv* env, jthread* out) {
	return (*env)->GetCurrentThread(env, out);
}

static jvmtiError jr_get_all_threads(jvmtiEnv* env, jint* count, jthread** threads) {
	return (*env)->GetAllThreads(env, count, threads);
}

static jvmtiError jr_get_thread_state(jvmtiEnv* env, jthread thread, jint* out) {
	return (*env)->GetThreadState(env, thread, out);
}

static jvmtiError jr_run_agent_thread(jvmtiEnv* env, jthread thread, void* arg, jint priority) {
	return (*env)->RunAgentThread(env, thread, jrAgentThreadStart, arg, priority);
}

static jvmtiError jr_get_stack_trace(jvmtiEnv* env, jthread thread, jint max,
	jvmtiFrameInfo* frames, jint* count) {
	return (*env)->GetStackTrace(env, thread, 0, max, frames, count);
}

static jvmtiError jr_get_local_object(jvmtiEnv* env, jthread thread, jint depth, jint slot, jobject* out) {
	return (*env)->GetLocalObject(env, thread, depth, slot, out);
}

static jvmtiError jr_get_method_declaring_class(jvmtiEnv* env, jmethodID method, jclass* out) {
	return (*env)->GetMethodDeclaringClass(env, method, out);
}

static jvmtiError jr_get_method_name(jvmtiEnv* env, jmethodID method, char** name, char** sig) {
	return (*env)->GetMethodName(env, method, name, sig, NULL);
}

static jvmtiError jr_get_class_signature(jvmtiEnv* env, jclass klass, char** sig) {
	return (*env)->GetClassSignature(env, klass, sig, NULL);
}

static jvmtiError jr_get_loaded_classes(jvmtiEnv* env, jint* count, jclass** classes) {
	return (*env)->GetLoadedClasses(env, count, classes);
}

static jvmtiError jr_get_class_loader_classes(jvmtiEnv* env, jobject loader, jint* count, jclass** classes) {
	return (*env)->GetClassLoaderClasses(env, loader, count, classes);
}

static jvmtiError jr_get_class_loader(jvmtiEnv* env, jclass klass, jobject* out) {
	return (*env)->GetClassLoader(env, klass, out);
}

static jvmtiError jr_is_array_class(jvmtiEnv* env, jclass klass, jboolean* out) {
	return (*env)->IsArrayClass(env, klass, out);
}

static jvmtiError jr_retransform_classes(jvmtiEnv* env, jint count, const jclass* classes) {
	return (*env)->RetransformClasses(env, count, classes);
}

static jvmtiError jr_add_to_bootstrap_class_loader_search(jvmtiEnv* env, const char* segment) {
	return (*env)->AddToBootstrapClassLoaderSearch(env, segment);
}

static jvmtiError jr_allocate(jvmtiEnv* env, jlong size, unsigned char** out) {
	return (*env)->Allocate(env, size, out);
}

static jvmtiError jr_deallocate(jvmtiEnv* env, unsigned char* mem) {
	return (*env)->Deallocate(env, mem);
}

static jvmtiError jr_create_raw_monitor(jvmtiEnv* env, const char* name, jrawMonitorID* out) {
	return (*env)->CreateRawMonitor(env, name, out);
}

static jvmtiError jr_destroy_raw_monitor(jvmtiEnv* env, jrawMonitorID monitor) {
	return (*env)->DestroyRawMonitor(env, monitor);
}

static jvmtiError jr_raw_monitor_enter(jvmtiEnv* env, jrawMonitorID monitor) {
	return (*env)->RawMonitorEnter(env, monitor);
}

static jvmtiError jr_raw_monitor_exit(jvmtiEnv* env, jrawMonitorID monitor) {
	return (*env)->RawMonitorExit(env, monitor);
}

static jvmtiError jr_get_object_size(jvmtiEnv* env, jobject object, jlong* out) {
	return (*env)->GetObjectSize(env, object, out);
}

static jvmtiError jr_get_object_hash_code(jvmtiEnv* env, jobject object, jint* out) {
	return (*env)->GetObjectHashCode(env, object, out);
}

static jvmtiError jr_get_objects_with_tags(jvmtiEnv* env, jint count, const jlong* tags,
	jint* found, jobject** objects) {
	return (*env)->GetObjectsWithTags(env, count, tags, found, objects, NULL);
}

static jvmtiError jr_iterate_over_heap(jvmtiEnv* env, jvmtiHeapObjectFilter filter, void* user_data) {
	return (*env)->IterateOverHeap(env, filter, jrHeapObjectVisit, user_data);
}

static jvmtiError jr_iterate_over_instances_of_class(jvmtiEnv* env, jclass klass,
	jvmtiHeapObjectFilter filter, void* user_data) {
	return (*env)->IterateOverInstancesOfClass(env, klass, filter, jrHeapObjectVisit, user_data);
}

static jvmtiError jr_iterate_over_objects_reachable_from_object(jvmtiEnv* env, jobject object, void* user_data) {
	return (*env)->IterateOverObjectsReachableFromObject(env, object, jrObjectReferenceVisit, user_data);
}

static jvmtiError jr_force_garbage_collection(jvmtiEnv* env) {
	return (*env)->ForceGarbageCollection(env);
}
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/wippyai/jvm-runtime/capability"
	"github.com/wippyai/jvm-runtime/environment"
	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/event"
	"github.com/wippyai/jvm-runtime/java"
)

// Env implements environment.Tooling over a jvmtiEnv pointer. Valid only on
// the thread that obtained it; event trampolines construct one per delivery.
type Env struct {
	ptr *C.jvmtiEnv
	jni *JNI // set when the env was obtained alongside a JNIEnv
	vm  *VM  // set by VM.ToolingEnv so jni can be resolved lazily
}

// EnvFromPointer wraps a raw jvmtiEnv* (e.g. the pointer passed to
// Agent_OnLoad after GetEnv).
func EnvFromPointer(p unsafe.Pointer) *Env {
	return &Env{ptr: (*C.jvmtiEnv)(p)}
}

func wrapErr(op string, rc C.jvmtiError) error {
	return errors.WrapOp(uint32(rc), op)
}

// interop returns a JNIEnv for the current thread, resolving it on first use
// for envs obtained before the JNI interface existed. Nil only during the
// load phase, where no operation can have produced a local ref yet.
func (e *Env) interop() *JNI {
	if e.jni == nil && e.vm != nil {
		if j, err := e.vm.InteropEnv(); err == nil {
			e.jni = j
		}
	}
	return e.jni
}

func jthread(t java.ThreadID) C.jthread   { return C.jthread(unsafe.Pointer(t)) }
func jclassOf(c java.ClassID) C.jclass    { return C.jclass(unsafe.Pointer(c)) }
func jmethod(m java.MethodID) C.jmethodID { return C.jmethodID(unsafe.Pointer(m)) }
func jobj(o java.ObjectRef) C.jobject     { return C.jobject(unsafe.Pointer(o)) }

// freeNative releases a JVMTI-allocated buffer. Null is a safe no-op, so
// composite cleanup paths run unconditionally.
func (e *Env) freeNative(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.jr_deallocate(e.ptr, (*C.uchar)(p))
}

// takeString copies a JVMTI-allocated C string into Go ownership and
// releases the native buffer.
func (e *Env) takeString(p *C.char) string {
	if p == nil {
		return ""
	}
	s := C.GoString(p)
	e.freeNative(unsafe.Pointer(p))
	return s
}

func (e *Env) GetVersionNumber() java.Version {
	var v C.jint
	if rc := C.jr_get_version(e.ptr, &v); rc != 0 {
		return java.UnknownVersion()
	}
	return java.VersionFromPacked(uint32(v))
}

func (e *Env) AddCapabilities(requested capability.Set) (capability.Set, error) {
	bits := requested.ToBits()
	rc := C.jr_add_capabilities(e.ptr, (*C.uchar)(&bits[0]), C.size_t(len(bits)))
	if rc != 0 {
		return capability.Set{}, wrapErr("AddCapabilities", rc)
	}
	return e.GetCapabilities(), nil
}

func (e *Env) GetCapabilities() capability.Set {
	var bits [capability.VectorLen]byte
	if rc := C.jr_get_capabilities(e.ptr, (*C.uchar)(&bits[0]), C.size_t(len(bits))); rc != 0 {
		return capability.Set{}
	}
	return capability.FromBits(bits)
}

// SetEventCallbacks publishes the table to the process-wide registry and
// wires native trampolines for exactly the set slots.
func (e *Env) SetEventCallbacks(callbacks event.Callbacks) error {
	reg := installedOrNew()
	reg.Set(callbacks)
	var mask uint64
	for _, k := range callbacks.Registered() {
		mask |= 1 << (uint32(k) - uint32(event.VMInit))
	}
	return wrapErr("SetEventCallbacks", C.jr_set_event_callbacks(e.ptr, C.uint64_t(mask)))
}

func (e *Env) SetEventNotificationMode(kind event.Kind, enabled bool) error {
	mode := C.jvmtiEventMode(C.JVMTI_DISABLE)
	if enabled {
		mode = C.JVMTI_ENABLE
	}
	return wrapErr("SetEventNotificationMode",
		C.jr_set_notification(e.ptr, mode, C.jvmtiEvent(kind)))
}

func (e *Env) GetThreadInfo(thread java.ThreadID) (java.Thread, error) {
	var info C.jvmtiThreadInfo
	if rc := C.jr_get_thread_info(e.ptr, jthread(thread), &info); rc != 0 {
		return java.Thread{}, wrapErr("GetThreadInfo", rc)
	}
	out := java.Thread{
		ID:       thread,
		Name:     e.takeString(info.name),
		Priority: int32(info.priority),
		Daemon:   info.is_daemon != 0,
	}
	// The info struct carries local refs the caller never sees. Release
	// them unconditionally; a successful GetThreadInfo implies the live
	// phase, so a JNIEnv is always obtainable here.
	if j := e.interop(); j != nil {
		j.dropLocal(unsafe.Pointer(info.thread_group))
		j.dropLocal(unsafe.Pointer(info.context_class_loader))
	}
	return out, nil
}

func (e *Env) GetCurrentThread() (java.ThreadID, error) {
	var t C.jthread
	if rc := C.jr_get_current_thread(e.ptr, &t); rc != 0 {
		return 0, wrapErr("GetCurrentThread", rc)
	}
	return java.ThreadID(unsafe.Pointer(t)), nil
}

func (e *Env) GetAllThreads() ([]java.ThreadID, error) {
	var count C.jint
	var threads *C.jthread
	if rc := C.jr_get_all_threads(e.ptr, &count, &threads); rc != 0 {
		return nil, wrapErr("GetAllThreads", rc)
	}
	defer e.freeNative(unsafe.Pointer(threads))
	out := make([]java.ThreadID, int(count))
	src := unsafe.Slice(threads, int(count))
	for i, t := range src {
		out[i] = java.ThreadID(unsafe.Pointer(t))
	}
	return out, nil
}

func (e *Env) GetThreadState(thread java.ThreadID) (java.ThreadState, error) {
	var state C.jint
	if rc := C.jr_get_thread_state(e.ptr, jthread(thread), &state); rc != 0 {
		return 0, wrapErr("GetThreadState", rc)
	}
	return java.ThreadState(state), nil
}

func (e *Env) RunAgentThread(thread java.ThreadID, proc environment.AgentThreadProc, priority int32) error {
	if proc == nil {
		return &errors.StatusError{Status: errors.StatusNullPointer, Op: "RunAgentThread", Code: uint32(errors.StatusNullPointer)}
	}
	h := cgo.NewHandle(proc)
	rc := C.jr_run_agent_thread(e.ptr, jthread(thread), unsafe.Pointer(h), C.jint(priority))
	if rc != 0 {
		h.Delete()
		return wrapErr("RunAgentThread", rc)
	}
	return nil
}

const maxStackFrames = 256

func (e *Env) GetStackTrace(thread java.ThreadID) ([]java.FrameInfo, error) {
	frames := make([]C.jvmtiFrameInfo, maxStackFrames)
	var count C.jint
	rc := C.jr_get_stack_trace(e.ptr, jthread(thread), C.jint(len(frames)), &frames[0], &count)
	if rc != 0 {
		return nil, wrapErr("GetStackTrace", rc)
	}
	out := make([]java.FrameInfo, int(count))
	for i := range out {
		out[i] = java.FrameInfo{
			Method:   java.MethodID(unsafe.Pointer(frames[i].method)),
			Location: int64(frames[i].location),
		}
	}
	return out, nil
}

func (e *Env) GetLocalObject(thread java.ThreadID, depth, slot int32) (java.ObjectRef, error) {
	var obj C.jobject
	rc := C.jr_get_local_object(e.ptr, jthread(thread), C.jint(depth), C.jint(slot), &obj)
	if rc != 0 {
		return 0, wrapErr("GetLocalObject", rc)
	}
	return java.ObjectRef(unsafe.Pointer(obj)), nil
}

func (e *Env) GetMethodDeclaringClass(method java.MethodID) (java.ClassID, error) {
	var klass C.jclass
	if rc := C.jr_get_method_declaring_class(e.ptr, jmethod(method), &klass); rc != 0 {
		return 0, wrapErr("GetMethodDeclaringClass", rc)
	}
	return java.ClassID(unsafe.Pointer(klass)), nil
}

func (e *Env) GetMethodName(method java.MethodID) (java.MethodSignature, error) {
	var name, sig *C.char
	if rc := C.jr_get_method_name(e.ptr, jmethod(method), &name, &sig); rc != 0 {
		return java.MethodSignature{}, wrapErr("GetMethodName", rc)
	}
	return java.MethodSignature{
		Name:      e.takeString(name),
		Signature: e.takeString(sig),
	}, nil
}

func (e *Env) GetClassSignature(class java.ClassID) (java.ClassSignature, error) {
	var sig *C.char
	if rc := C.jr_get_class_signature(e.ptr, jclassOf(class), &sig); rc != 0 {
		return java.ClassSignature{}, wrapErr("GetClassSignature", rc)
	}
	raw := e.takeString(sig)
	typ, err := java.ParseDescriptor(raw)
	if err != nil {
		typ = java.Type{Kind: java.KindUnknown}
	}
	return java.ClassSignature{Type: typ, Raw: raw}, nil
}

func (e *Env) classSlice(count C.jint, classes *C.jclass) []java.ClassID {
	defer e.freeNative(unsafe.Pointer(classes))
	out := make([]java.ClassID, int(count))
	src := unsafe.Slice(classes, int(count))
	for i, c := range src {
		out[i] = java.ClassID(unsafe.Pointer(c))
	}
	return out
}

func (e *Env) GetLoadedClasses() ([]java.ClassID, error) {
	var count C.jint
	var classes *C.jclass
	if rc := C.jr_get_loaded_classes(e.ptr, &count, &classes); rc != 0 {
		return nil, wrapErr("GetLoadedClasses", rc)
	}
	return e.classSlice(count, classes), nil
}

func (e *Env) GetClassLoaderClasses(loader java.ObjectRef) ([]java.ClassID, error) {
	var count C.jint
	var classes *C.jclass
	if rc := C.jr_get_class_loader_classes(e.ptr, jobj(loader), &count, &classes); rc != 0 {
		return nil, wrapErr("GetClassLoaderClasses", rc)
	}
	return e.classSlice(count, classes), nil
}

func (e *Env) GetClassLoader(class java.ClassID) (java.ObjectRef, error) {
	var loader C.jobject
	if rc := C.jr_get_class_loader(e.ptr, jclassOf(class), &loader); rc != 0 {
		return 0, wrapErr("GetClassLoader", rc)
	}
	return java.ObjectRef(unsafe.Pointer(loader)), nil
}

func (e *Env) IsArrayClass(class java.ClassID) (bool, error) {
	var b C.jboolean
	if rc := C.jr_is_array_class(e.ptr, jclassOf(class), &b); rc != 0 {
		return false, wrapErr("IsArrayClass", rc)
	}
	return b != 0, nil
}

func (e *Env) RetransformClasses(classes []java.ClassID) error {
	if len(classes) == 0 {
		return nil
	}
	native := make([]C.jclass, len(classes))
	for i, c := range classes {
		native[i] = jclassOf(c)
	}
	return wrapErr("RetransformClasses",
		C.jr_retransform_classes(e.ptr, C.jint(len(native)), &native[0]))
}

func (e *Env) AddToBootstrapClassLoaderSearch(classPath string) error {
	cs := C.CString(classPath)
	defer C.free(unsafe.Pointer(cs))
	return wrapErr("AddToBootstrapClassLoaderSearch",
		C.jr_add_to_bootstrap_class_loader_search(e.ptr, cs))
}

func (e *Env) Allocate(length int) (java.MemoryAllocation, error) {
	if length < 0 {
		return java.MemoryAllocation{}, &errors.StatusError{Status: errors.StatusIllegalArgument, Op: "Allocate", Code: uint32(errors.StatusIllegalArgument)}
	}
	var mem *C.uchar
	if rc := C.jr_allocate(e.ptr, C.jlong(length), &mem); rc != 0 {
		return java.MemoryAllocation{}, wrapErr("Allocate", rc)
	}
	return java.MemoryAllocation{Ptr: java.Handle(unsafe.Pointer(mem)), Len: length}, nil
}

func (e *Env) Deallocate(ptr java.Handle) error {
	if ptr == 0 {
		return nil
	}
	return wrapErr("Deallocate", C.jr_deallocate(e.ptr, (*C.uchar)(unsafe.Pointer(ptr))))
}

func (e *Env) CreateRawMonitor(name string) (java.RawMonitorID, error) {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	var mon C.jrawMonitorID
	if rc := C.jr_create_raw_monitor(e.ptr, cs, &mon); rc != 0 {
		return 0, wrapErr("CreateRawMonitor", rc)
	}
	return java.RawMonitorID(unsafe.Pointer(mon)), nil
}

func (e *Env) DestroyRawMonitor(monitor java.RawMonitorID) error {
	return wrapErr("DestroyRawMonitor",
		C.jr_destroy_raw_monitor(e.ptr, C.jrawMonitorID(unsafe.Pointer(monitor))))
}

func (e *Env) RawMonitorEnter(monitor java.RawMonitorID) error {
	return wrapErr("RawMonitorEnter",
		C.jr_raw_monitor_enter(e.ptr, C.jrawMonitorID(unsafe.Pointer(monitor))))
}

func (e *Env) RawMonitorExit(monitor java.RawMonitorID) error {
	return wrapErr("RawMonitorExit",
		C.jr_raw_monitor_exit(e.ptr, C.jrawMonitorID(unsafe.Pointer(monitor))))
}

func (e *Env) GetObjectSize(object java.ObjectRef) (int64, error) {
	var size C.jlong
	if rc := C.jr_get_object_size(e.ptr, jobj(object), &size); rc != 0 {
		return 0, wrapErr("GetObjectSize", rc)
	}
	return int64(size), nil
}

func (e *Env) GetObjectHashCode(object java.ObjectRef) (int32, error) {
	var hash C.jint
	if rc := C.jr_get_object_hash_code(e.ptr, jobj(object), &hash); rc != 0 {
		return 0, wrapErr("GetObjectHashCode", rc)
	}
	return int32(hash), nil
}

func (e *Env) GetObjectsWithTags(tags []int64) ([]java.ObjectRef, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	native := make([]C.jlong, len(tags))
	for i, t := range tags {
		native[i] = C.jlong(t)
	}
	var found C.jint
	var objects *C.jobject
	rc := C.jr_get_objects_with_tags(e.ptr, C.jint(len(native)), &native[0], &found, &objects)
	if rc != 0 {
		return nil, wrapErr("GetObjectsWithTags", rc)
	}
	defer e.freeNative(unsafe.Pointer(objects))
	out := make([]java.ObjectRef, int(found))
	src := unsafe.Slice(objects, int(found))
	for i, o := range src {
		out[i] = java.ObjectRef(unsafe.Pointer(o))
	}
	return out, nil
}

func (e *Env) IterateOverHeap(filter environment.HeapFilter, fn environment.HeapObjectFunc) error {
	h := cgo.NewHandle(fn)
	defer h.Delete()
	return wrapErr("IterateOverHeap",
		C.jr_iterate_over_heap(e.ptr, C.jvmtiHeapObjectFilter(filter), unsafe.Pointer(h)))
}

func (e *Env) IterateOverInstancesOfClass(class java.ClassID, filter environment.HeapFilter, fn environment.HeapObjectFunc) error {
	h := cgo.NewHandle(fn)
	defer h.Delete()
	return wrapErr("IterateOverInstancesOfClass",
		C.jr_iterate_over_instances_of_class(e.ptr, jclassOf(class), C.jvmtiHeapObjectFilter(filter), unsafe.Pointer(h)))
}

func (e *Env) IterateOverObjectsReachableFromObject(object java.ObjectRef, fn environment.ObjectReferenceFunc) error {
	h := cgo.NewHandle(fn)
	defer h.Delete()
	return wrapErr("IterateOverObjectsReachableFromObject",
		C.jr_iterate_over_objects_reachable_from_object(e.ptr, jobj(object), unsafe.Pointer(h)))
}

func (e *Env) ForceGarbageCollection() error {
	return wrapErr("ForceGarbageCollection", C.jr_force_garbage_collection(e.ptr))
}
