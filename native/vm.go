//go:build jvmti

package native

/*
#include <jni.h>
#include <jvmti.h>

static jint jr_vm_get_jvmti_env(JavaVM* vm, void** out) {
	return (*vm)->GetEnv(vm, out, JVMTI_VERSION);
}

static jint jr_vm_get_jni_env(JavaVM* vm, void** out) {
	return (*vm)->GetEnv(vm, out, JNI_VERSION_1_8);
}

static jint jr_vm_attach_current_thread(JavaVM* vm, void** out) {
	return (*vm)->AttachCurrentThread(vm, out, NULL);
}

static jint jr_vm_detach_current_thread(JavaVM* vm) {
	return (*vm)->DetachCurrentThread(vm);
}

static jint jr_vm_destroy(JavaVM* vm) {
	return (*vm)->DestroyJavaVM(vm);
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/wippyai/jvm-runtime/environment"
)

// VM wraps the process-wide JavaVM pointer. Unlike Env and JNI it is valid on
// any thread.
type VM struct {
	ptr *C.JavaVM
}

// VMFromPointer wraps the JavaVM* handed to Agent_OnLoad.
func VMFromPointer(p unsafe.Pointer) *VM {
	return &VM{ptr: (*C.JavaVM)(p)}
}

// ToolingEnv obtains a JVMTI environment bound to the current thread. The
// env keeps a VM back-reference so composite queries can obtain a JNIEnv
// once the VM is live, even when the env was created during Agent_OnLoad.
func (vm *VM) ToolingEnv() (*Env, error) {
	var raw unsafe.Pointer
	if rc := C.jr_vm_get_jvmti_env(vm.ptr, &raw); rc != C.JNI_OK {
		return nil, fmt.Errorf("GetEnv(JVMTI_VERSION) failed: jni error %d", int32(rc))
	}
	return &Env{ptr: (*C.jvmtiEnv)(raw), vm: vm}, nil
}

// InteropEnv obtains a JNI environment bound to the current thread. The
// thread must already be attached.
func (vm *VM) InteropEnv() (*JNI, error) {
	var raw unsafe.Pointer
	if rc := C.jr_vm_get_jni_env(vm.ptr, &raw); rc != C.JNI_OK {
		return nil, fmt.Errorf("GetEnv(JNI_VERSION_1_8) failed: jni error %d", int32(rc))
	}
	return &JNI{ptr: (*C.JNIEnv)(raw)}, nil
}

// AttachCurrentThread attaches the calling thread to the VM and returns its
// JNI environment.
func (vm *VM) AttachCurrentThread() (*JNI, error) {
	var raw unsafe.Pointer
	if rc := C.jr_vm_attach_current_thread(vm.ptr, &raw); rc != C.JNI_OK {
		return nil, fmt.Errorf("AttachCurrentThread failed: jni error %d", int32(rc))
	}
	return &JNI{ptr: (*C.JNIEnv)(raw)}, nil
}

// DetachCurrentThread detaches the calling thread.
func (vm *VM) DetachCurrentThread() error {
	if rc := C.jr_vm_detach_current_thread(vm.ptr); rc != C.JNI_OK {
		return fmt.Errorf("DetachCurrentThread failed: jni error %d", int32(rc))
	}
	return nil
}

// Destroy unloads the VM. Returns only after all Java threads finish.
func (vm *VM) Destroy() error {
	if rc := C.jr_vm_destroy(vm.ptr); rc != C.JNI_OK {
		return fmt.Errorf("DestroyJavaVM failed: jni error %d", int32(rc))
	}
	return nil
}

// Environment builds the live backend pair for the current thread. The
// tooling env keeps the JNI reference so composite queries can release the
// local refs they produce.
func (vm *VM) Environment() (*environment.Environment, error) {
	tooling, err := vm.ToolingEnv()
	if err != nil {
		return nil, err
	}
	interop, err := vm.InteropEnv()
	if err != nil {
		return nil, err
	}
	tooling.jni = interop
	return environment.New(tooling, interop), nil
}
