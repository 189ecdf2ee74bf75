//go:build jvmti

package native

/*
#include <string.h>
#include <jvmti.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/jvm-runtime/dispatch"
	"github.com/wippyai/jvm-runtime/environment"
	"github.com/wippyai/jvm-runtime/event"
	"github.com/wippyai/jvm-runtime/java"
)

// installedOrNew returns the process-wide registry, publishing a fresh one
// first if none is installed yet.
func installedOrNew() *dispatch.Registry {
	if r := dispatch.Installed(); r != nil {
		return r
	}
	r := dispatch.NewRegistry()
	dispatch.Install(r)
	return r
}

// envPair builds a transient Environment from the pointers the VM hands a
// trampoline. Valid only for the duration of the callback.
func envPair(jvmti *C.jvmtiEnv, jni *C.JNIEnv) *environment.Environment {
	j := &JNI{ptr: jni}
	return environment.New(&Env{ptr: jvmti, jni: j}, j)
}

// A panicking callback must not unwind into VM frames.
func guard(kind string) {
	if r := recover(); r != nil {
		Logger().Error("event callback panicked",
			zap.String("kind", kind),
			zap.Any("panic", r))
	}
}

func threadID(t C.jthread) java.ThreadID { return java.ThreadID(unsafe.Pointer(t)) }

//export jrVMInit
func jrVMInit(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread) {
	defer guard("VMInit")
	if r := dispatch.Installed(); r != nil {
		r.VMInit()
	}
}

//export jrVMStart
func jrVMStart(jvmti *C.jvmtiEnv, jni *C.JNIEnv) {
	defer guard("VMStart")
	if r := dispatch.Installed(); r != nil {
		r.VMStart()
	}
}

//export jrVMDeath
func jrVMDeath(jvmti *C.jvmtiEnv, jni *C.JNIEnv) {
	defer guard("VMDeath")
	if r := dispatch.Installed(); r != nil {
		r.VMDeath()
	}
}

//export jrMethodEntry
func jrMethodEntry(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread, method C.jmethodID) {
	defer guard("MethodEntry")
	if r := dispatch.Installed(); r != nil {
		r.MethodEntry(envPair(jvmti, jni), threadID(thread), java.MethodID(unsafe.Pointer(method)))
	}
}

//export jrMethodExit
func jrMethodExit(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread, method C.jmethodID,
	poppedByException C.jboolean, returnValue C.jvalue) {
	defer guard("MethodExit")
	if r := dispatch.Installed(); r != nil {
		r.MethodExit(envPair(jvmti, jni), threadID(thread), java.MethodID(unsafe.Pointer(method)))
	}
}

//export jrThreadStart
func jrThreadStart(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread) {
	defer guard("ThreadStart")
	if r := dispatch.Installed(); r != nil {
		r.ThreadStart(envPair(jvmti, jni), threadID(thread))
	}
}

//export jrThreadEnd
func jrThreadEnd(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread) {
	defer guard("ThreadEnd")
	if r := dispatch.Installed(); r != nil {
		r.ThreadEnd(envPair(jvmti, jni), threadID(thread))
	}
}

//export jrException
func jrException(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread, method C.jmethodID,
	location C.jlocation, exception C.jobject, catchMethod C.jmethodID, catchLocation C.jlocation) {
	defer guard("Exception")
	if r := dispatch.Installed(); r != nil {
		r.Exception(envPair(jvmti, jni), java.ObjectRef(unsafe.Pointer(exception)))
	}
}

//export jrExceptionCatch
func jrExceptionCatch(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread, method C.jmethodID,
	location C.jlocation, exception C.jobject) {
	defer guard("ExceptionCatch")
	if r := dispatch.Installed(); r != nil {
		r.ExceptionCatch(envPair(jvmti, jni))
	}
}

//export jrMonitorWait
func jrMonitorWait(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread, object C.jobject, timeout C.jlong) {
	defer guard("MonitorWait")
	if r := dispatch.Installed(); r != nil {
		r.Monitor(envPair(jvmti, jni), event.MonitorWait, threadID(thread))
	}
}

//export jrMonitorWaited
func jrMonitorWaited(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread, object C.jobject, timedOut C.jboolean) {
	defer guard("MonitorWaited")
	if r := dispatch.Installed(); r != nil {
		r.Monitor(envPair(jvmti, jni), event.MonitorWaited, threadID(thread))
	}
}

//export jrMonitorContendedEnter
func jrMonitorContendedEnter(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread, object C.jobject) {
	defer guard("MonitorContendedEnter")
	if r := dispatch.Installed(); r != nil {
		r.Monitor(envPair(jvmti, jni), event.MonitorContendedEnter, threadID(thread))
	}
}

//export jrMonitorContendedEntered
func jrMonitorContendedEntered(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread, object C.jobject) {
	defer guard("MonitorContendedEntered")
	if r := dispatch.Installed(); r != nil {
		r.Monitor(envPair(jvmti, jni), event.MonitorContendedEntered, threadID(thread))
	}
}

//export jrFieldAccess
func jrFieldAccess(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread, method C.jmethodID,
	location C.jlocation, fieldKlass C.jclass, object C.jobject, field C.jfieldID) {
	defer guard("FieldAccess")
	if r := dispatch.Installed(); r != nil {
		r.FieldAccess(envPair(jvmti, jni), threadID(thread), java.FieldID(unsafe.Pointer(field)))
	}
}

//export jrFieldModification
func jrFieldModification(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread, method C.jmethodID,
	location C.jlocation, fieldKlass C.jclass, object C.jobject, field C.jfieldID,
	signatureType C.char, newValue C.jvalue) {
	defer guard("FieldModification")
	if r := dispatch.Installed(); r != nil {
		r.FieldModification(envPair(jvmti, jni), threadID(thread), java.FieldID(unsafe.Pointer(field)))
	}
}

//export jrGarbageCollectionStart
func jrGarbageCollectionStart(jvmti *C.jvmtiEnv) {
	defer guard("GarbageCollectionStart")
	if r := dispatch.Installed(); r != nil {
		r.GarbageCollectionStart()
	}
}

//export jrGarbageCollectionFinish
func jrGarbageCollectionFinish(jvmti *C.jvmtiEnv) {
	defer guard("GarbageCollectionFinish")
	if r := dispatch.Installed(); r != nil {
		r.GarbageCollectionFinish()
	}
}

//export jrVMObjectAlloc
func jrVMObjectAlloc(jvmti *C.jvmtiEnv, jni *C.JNIEnv, thread C.jthread, object C.jobject,
	objectKlass C.jclass, size C.jlong) {
	defer guard("VMObjectAlloc")
	if r := dispatch.Installed(); r != nil {
		r.VMObjectAlloc(envPair(jvmti, jni), threadID(thread),
			java.ClassID(unsafe.Pointer(objectKlass)), int64(size))
	}
}

//export jrClassFileLoadHook
func jrClassFileLoadHook(jvmti *C.jvmtiEnv, jni *C.JNIEnv, classBeingRedefined C.jclass,
	loader C.jobject, name *C.char, protectionDomain C.jobject, classDataLen C.jint,
	classData *C.uchar, newClassDataLen *C.jint, newClassData **C.uchar) {
	defer guard("ClassFileLoad")
	r := dispatch.Installed()
	if r == nil {
		return
	}
	data := C.GoBytes(unsafe.Pointer(classData), classDataLen)
	replacement := r.ClassFileLoad(C.GoString(name), data)
	if replacement == nil {
		return
	}
	// Replacement bytes must live in runtime-allocated memory; the VM owns
	// and frees them.
	env := &Env{ptr: jvmti}
	mem, err := env.Allocate(len(replacement))
	if err != nil {
		Logger().Error("class file replacement dropped, allocation failed",
			zap.String("class", C.GoString(name)),
			zap.Error(err))
		return
	}
	C.memcpy(unsafe.Pointer(mem.Ptr), unsafe.Pointer(&replacement[0]), C.size_t(len(replacement)))
	*newClassDataLen = C.jint(len(replacement))
	*newClassData = (*C.uchar)(unsafe.Pointer(mem.Ptr))
}

//export jrHeapObjectVisit
func jrHeapObjectVisit(classTag C.jlong, size C.jlong, tagPtr *C.jlong, userData unsafe.Pointer) C.jvmtiIterationControl {
	defer guard("HeapObjectVisit")
	fn, ok := cgo.Handle(userData).Value().(environment.HeapObjectFunc)
	if !ok || fn == nil {
		return C.JVMTI_ITERATION_ABORT
	}
	tag := int64(*tagPtr)
	control := fn(int64(classTag), int64(size), &tag)
	*tagPtr = C.jlong(tag)
	return C.jvmtiIterationControl(control)
}

//export jrObjectReferenceVisit
func jrObjectReferenceVisit(referenceKind C.jvmtiObjectReferenceKind, classTag C.jlong, size C.jlong,
	tagPtr *C.jlong, referrerTag C.jlong, referrerIndex C.jint, userData unsafe.Pointer) C.jvmtiIterationControl {
	defer guard("ObjectReferenceVisit")
	fn, ok := cgo.Handle(userData).Value().(environment.ObjectReferenceFunc)
	if !ok || fn == nil {
		return C.JVMTI_ITERATION_ABORT
	}
	tag := int64(*tagPtr)
	control := fn(int64(classTag), int64(size), &tag, int64(referrerTag))
	*tagPtr = C.jlong(tag)
	return C.jvmtiIterationControl(control)
}

//export jrAgentThreadStart
func jrAgentThreadStart(jvmti *C.jvmtiEnv, jni *C.JNIEnv, arg unsafe.Pointer) {
	defer guard("AgentThreadStart")
	h := cgo.Handle(arg)
	proc, ok := h.Value().(environment.AgentThreadProc)
	h.Delete()
	if !ok || proc == nil {
		return
	}
	proc(envPair(jvmti, jni))
}
