//go:build jvmti

package native

/*
#include <stdlib.h>
#include <jni.h>

static jclass jr_jni_get_object_class(JNIEnv* env, jobject object) {
	return (*env)->GetObjectClass(env, object);
}

static jclass jr_jni_find_class(JNIEnv* env, const char* name) {
	return (*env)->FindClass(env, name);
}

static jmethodID jr_jni_get_method_id(JNIEnv* env, jclass klass, const char* name, const char* sig) {
	return (*env)->GetMethodID(env, klass, name, sig);
}

static jmethodID jr_jni_get_static_method_id(JNIEnv* env, jclass klass, const char* name, const char* sig) {
	return (*env)->GetStaticMethodID(env, klass, name, sig);
}

static jfieldID jr_jni_get_field_id(JNIEnv* env, jclass klass, const char* name, const char* sig) {
	return (*env)->GetFieldID(env, klass, name, sig);
}

static jint jr_jni_get_int_field(JNIEnv* env, jobject object, jfieldID field) {
	return (*env)->GetIntField(env, object, field);
}

static jobject jr_jni_get_object_field(JNIEnv* env, jobject object, jfieldID field) {
	return (*env)->GetObjectField(env, object, field);
}

static jobject jr_jni_new_object(JNIEnv* env, jclass klass, jmethodID ctor, const jvalue* args) {
	return (*env)->NewObjectA(env, klass, ctor, args);
}

static jobject jr_jni_new_string_utf(JNIEnv* env, const char* s) {
	return (*env)->NewStringUTF(env, s);
}

static const char* jr_jni_get_string_utf_chars(JNIEnv* env, jstring s) {
	return (*env)->GetStringUTFChars(env, s, NULL);
}

static void jr_jni_release_string_utf_chars(JNIEnv* env, jstring s, const char* chars) {
	(*env)->ReleaseStringUTFChars(env, s, chars);
}

static jobject jr_jni_call_object_method(JNIEnv* env, jobject object, jmethodID method, const jvalue* args) {
	return (*env)->CallObjectMethodA(env, object, method, args);
}

static jlong jr_jni_call_long_method(JNIEnv* env, jobject object, jmethodID method, const jvalue* args) {
	return (*env)->CallLongMethodA(env, object, method, args);
}

static jobject jr_jni_call_static_object_method(JNIEnv* env, jclass klass, jmethodID method, const jvalue* args) {
	return (*env)->CallStaticObjectMethodA(env, klass, method, args);
}

static jboolean jr_jni_call_static_boolean_method(JNIEnv* env, jclass klass, jmethodID method, const jvalue* args) {
	return (*env)->CallStaticBooleanMethodA(env, klass, method, args);
}

static jboolean jr_jni_is_instance_of(JNIEnv* env, jobject object, jclass klass) {
	return (*env)->IsInstanceOf(env, object, klass);
}

static jboolean jr_jni_is_assignable_from(JNIEnv* env, jclass sub, jclass sup) {
	return (*env)->IsAssignableFrom(env, sub, sup);
}

static jsize jr_jni_get_array_length(JNIEnv* env, jarray array) {
	return (*env)->GetArrayLength(env, array);
}

static jobject jr_jni_get_object_array_element(JNIEnv* env, jobjectArray array, jsize index) {
	return (*env)->GetObjectArrayElement(env, array, index);
}

static void jr_jni_delete_local_ref(JNIEnv* env, jobject object) {
	(*env)->DeleteLocalRef(env, object);
}

static jobject jr_jni_new_global_ref(JNIEnv* env, jobject object) {
	return (*env)->NewGlobalRef(env, object);
}

static void jr_jni_delete_global_ref(JNIEnv* env, jobject object) {
	(*env)->DeleteGlobalRef(env, object);
}

static jboolean jr_jni_exception_check(JNIEnv* env) {
	return (*env)->ExceptionCheck(env);
}

static void jr_jni_exception_clear(JNIEnv* env) {
	(*env)->ExceptionClear(env);
}

// jvalue is a union; populate it from C so layout stays the compiler's
// business.
static void jr_val_obj(jvalue* v, jobject o)   { v->l = o; }
static void jr_val_bool(jvalue* v, jboolean b) { v->z = b; }
static void jr_val_byte(jvalue* v, jbyte b)    { v->b = b; }
static void jr_val_char(jvalue* v, jchar c)    { v->c = c; }
static void jr_val_short(jvalue* v, jshort s)  { v->s = s; }
static void jr_val_int(jvalue* v, jint i)      { v->i = i; }
static void jr_val_long(jvalue* v, jlong j)    { v->j = j; }
static void jr_val_float(jvalue* v, jfloat f)  { v->f = f; }
static void jr_val_double(jvalue* v, jdouble d){ v->d = d; }
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/java"
)

// JNI implements environment.Interop over a JNIEnv pointer. Like Env, it is
// bound to the thread that obtained it.
type JNI struct {
	ptr *C.JNIEnv
}

// JNIFromPointer wraps a raw JNIEnv*.
func JNIFromPointer(p unsafe.Pointer) *JNI {
	return &JNI{ptr: (*C.JNIEnv)(p)}
}

// clearPending drops a pending Java exception, reporting whether one was set.
// Interop errors surface as Go errors; a pending exception must never leak
// into subsequent JNI calls.
func (j *JNI) clearPending() bool {
	if C.jr_jni_exception_check(j.ptr) == 0 {
		return false
	}
	C.jr_jni_exception_clear(j.ptr)
	return true
}

func (j *JNI) dropLocal(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.jr_jni_delete_local_ref(j.ptr, C.jobject(p))
}

func toJValues(args []java.Value) []C.jvalue {
	if len(args) == 0 {
		return nil
	}
	out := make([]C.jvalue, len(args))
	for i, a := range args {
		v := &out[i]
		switch a.Kind {
		case java.ValueObject:
			C.jr_val_obj(v, jobj(a.Ref))
		case java.ValueBoolean:
			C.jr_val_bool(v, C.jboolean(a.I64))
		case java.ValueByte:
			C.jr_val_byte(v, C.jbyte(a.I64))
		case java.ValueChar:
			C.jr_val_char(v, C.jchar(a.I64))
		case java.ValueShort:
			C.jr_val_short(v, C.jshort(a.I64))
		case java.ValueInt:
			C.jr_val_int(v, C.jint(a.I64))
		case java.ValueLong:
			C.jr_val_long(v, C.jlong(a.I64))
		case java.ValueFloat:
			C.jr_val_float(v, C.jfloat(a.F64))
		case java.ValueDouble:
			C.jr_val_double(v, C.jdouble(a.F64))
		}
	}
	return out
}

func argPtr(args []C.jvalue) *C.jvalue {
	if len(args) == 0 {
		return nil
	}
	return &args[0]
}

func (j *JNI) GetObjectClass(object java.ObjectRef) (java.ClassID, error) {
	klass := C.jr_jni_get_object_class(j.ptr, jobj(object))
	if klass == nil {
		j.clearPending()
		return 0, errors.ErrClassObjectIsNull
	}
	return java.ClassID(unsafe.Pointer(klass)), nil
}

func (j *JNI) FindClass(name string) (java.ClassID, error) {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	klass := C.jr_jni_find_class(j.ptr, cs)
	if klass == nil {
		j.clearPending()
		return 0, &errors.ClassNotFoundError{Name: name}
	}
	return java.ClassID(unsafe.Pointer(klass)), nil
}

func (j *JNI) GetMethod(class java.ClassID, name, signature string) (java.MethodID, error) {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))
	cs := C.CString(signature)
	defer C.free(unsafe.Pointer(cs))
	mid := C.jr_jni_get_method_id(j.ptr, jclassOf(class), cn, cs)
	if mid == nil {
		j.clearPending()
		return 0, &errors.MethodNotFoundError{Name: name, Signature: signature}
	}
	return java.MethodID(unsafe.Pointer(mid)), nil
}

func (j *JNI) GetStaticMethod(class java.ClassID, name, signature string) (java.MethodID, error) {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))
	cs := C.CString(signature)
	defer C.free(unsafe.Pointer(cs))
	mid := C.jr_jni_get_static_method_id(j.ptr, jclassOf(class), cn, cs)
	if mid == nil {
		j.clearPending()
		return 0, &errors.MethodNotFoundError{Name: name, Signature: signature}
	}
	return java.MethodID(unsafe.Pointer(mid)), nil
}

func (j *JNI) GetFieldID(class java.ClassID, name, signature string) (java.FieldID, error) {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))
	cs := C.CString(signature)
	defer C.free(unsafe.Pointer(cs))
	fid := C.jr_jni_get_field_id(j.ptr, jclassOf(class), cn, cs)
	if fid == nil {
		j.clearPending()
		return 0, &errors.FieldNotFoundError{Name: name, Signature: signature}
	}
	return java.FieldID(unsafe.Pointer(fid)), nil
}

func (j *JNI) GetIntField(object java.ObjectRef, field java.FieldID) (int32, error) {
	v := C.jr_jni_get_int_field(j.ptr, jobj(object), C.jfieldID(unsafe.Pointer(field)))
	if j.clearPending() {
		return 0, errors.WrapOp(uint32(errors.StatusUnexpectedInternalError), "GetIntField")
	}
	return int32(v), nil
}

func (j *JNI) GetObjectField(object java.ObjectRef, field java.FieldID) (java.ObjectRef, error) {
	v := C.jr_jni_get_object_field(j.ptr, jobj(object), C.jfieldID(unsafe.Pointer(field)))
	if j.clearPending() {
		return 0, errors.WrapOp(uint32(errors.StatusUnexpectedInternalError), "GetObjectField")
	}
	return java.ObjectRef(unsafe.Pointer(v)), nil
}

func (j *JNI) NewObject(class java.ClassID, ctor java.MethodID, args ...java.Value) (java.ObjectRef, error) {
	vals := toJValues(args)
	obj := C.jr_jni_new_object(j.ptr, jclassOf(class), jmethod(ctor), argPtr(vals))
	if obj == nil || j.clearPending() {
		j.clearPending()
		return 0, errors.WrapOp(uint32(errors.StatusUnexpectedInternalError), "NewObject")
	}
	return java.ObjectRef(unsafe.Pointer(obj)), nil
}

func (j *JNI) NewStringUTF(s string) (java.ObjectRef, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	str := C.jr_jni_new_string_utf(j.ptr, cs)
	if str == nil {
		j.clearPending()
		return 0, errors.WrapOp(uint32(errors.StatusOutOfMemory), "NewStringUTF")
	}
	return java.ObjectRef(unsafe.Pointer(str)), nil
}

func (j *JNI) GetStringUTFChars(str java.ObjectRef) (string, error) {
	chars := C.jr_jni_get_string_utf_chars(j.ptr, C.jstring(jobj(str)))
	if chars == nil {
		j.clearPending()
		return "", errors.WrapOp(uint32(errors.StatusOutOfMemory), "GetStringUTFChars")
	}
	out := C.GoString(chars)
	C.jr_jni_release_string_utf_chars(j.ptr, C.jstring(jobj(str)), chars)
	return out, nil
}

func (j *JNI) CallObjectMethod(object java.ObjectRef, method java.MethodID, args ...java.Value) (java.ObjectRef, error) {
	vals := toJValues(args)
	out := C.jr_jni_call_object_method(j.ptr, jobj(object), jmethod(method), argPtr(vals))
	if j.clearPending() {
		return 0, errors.WrapOp(uint32(errors.StatusUnexpectedInternalError), "CallObjectMethod")
	}
	return java.ObjectRef(unsafe.Pointer(out)), nil
}

func (j *JNI) CallLongMethod(object java.ObjectRef, method java.MethodID, args ...java.Value) (int64, error) {
	vals := toJValues(args)
	out := C.jr_jni_call_long_method(j.ptr, jobj(object), jmethod(method), argPtr(vals))
	if j.clearPending() {
		return 0, errors.WrapOp(uint32(errors.StatusUnexpectedInternalError), "CallLongMethod")
	}
	return int64(out), nil
}

func (j *JNI) CallStaticObjectMethod(class java.ClassID, method java.MethodID, args ...java.Value) (java.ObjectRef, error) {
	vals := toJValues(args)
	out := C.jr_jni_call_static_object_method(j.ptr, jclassOf(class), jmethod(method), argPtr(vals))
	if j.clearPending() {
		return 0, errors.WrapOp(uint32(errors.StatusUnexpectedInternalError), "CallStaticObjectMethod")
	}
	return java.ObjectRef(unsafe.Pointer(out)), nil
}

func (j *JNI) CallStaticBooleanMethod(class java.ClassID, method java.MethodID, args ...java.Value) (bool, error) {
	vals := toJValues(args)
	out := C.jr_jni_call_static_boolean_method(j.ptr, jclassOf(class), jmethod(method), argPtr(vals))
	if j.clearPending() {
		return false, errors.WrapOp(uint32(errors.StatusUnexpectedInternalError), "CallStaticBooleanMethod")
	}
	return out != 0, nil
}

func (j *JNI) IsInstanceOf(object java.ObjectRef, class java.ClassID) (bool, error) {
	return C.jr_jni_is_instance_of(j.ptr, jobj(object), jclassOf(class)) != 0, nil
}

func (j *JNI) IsAssignableFrom(sub, sup java.ClassID) (bool, error) {
	return C.jr_jni_is_assignable_from(j.ptr, jclassOf(sub), jclassOf(sup)) != 0, nil
}

func (j *JNI) GetArrayLength(array java.ObjectRef) (int32, error) {
	n := C.jr_jni_get_array_length(j.ptr, C.jarray(jobj(array)))
	if j.clearPending() {
		return 0, errors.WrapOp(uint32(errors.StatusIllegalArgument), "GetArrayLength")
	}
	return int32(n), nil
}

func (j *JNI) GetObjectArrayElement(array java.ObjectRef, index int32) (java.ObjectRef, error) {
	out := C.jr_jni_get_object_array_element(j.ptr, C.jobjectArray(jobj(array)), C.jsize(index))
	if j.clearPending() {
		return 0, errors.WrapOp(uint32(errors.StatusIllegalArgument), "GetObjectArrayElement")
	}
	return java.ObjectRef(unsafe.Pointer(out)), nil
}

func (j *JNI) DeleteLocalRef(object java.ObjectRef) error {
	C.jr_jni_delete_local_ref(j.ptr, jobj(object))
	return nil
}

func (j *JNI) NewGlobalRef(object java.ObjectRef) (java.ObjectRef, error) {
	out := C.jr_jni_new_global_ref(j.ptr, jobj(object))
	if out == nil {
		return 0, errors.WrapOp(uint32(errors.StatusOutOfMemory), "NewGlobalRef")
	}
	return java.ObjectRef(unsafe.Pointer(out)), nil
}

func (j *JNI) DeleteGlobalRef(object java.ObjectRef) error {
	C.jr_jni_delete_global_ref(j.ptr, jobj(object))
	return nil
}
