package emulator

import (
	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/java"
)

// environment.Interop implementation. The emulator has no objects to operate
// on, so identifier and invocation queries report NotImplemented; reference
// lifetime operations succeed as no-ops so composite cleanup paths can run
// unchanged against this backend.

func (e *Emulator) GetObjectClass(object java.ObjectRef) (java.ClassID, error) {
	e.record("GetObjectClass")
	return 0, errors.NotImplemented("GetObjectClass")
}

func (e *Emulator) FindClass(name string) (java.ClassID, error) {
	e.record("FindClass")
	return 0, errors.NotImplemented("FindClass")
}

func (e *Emulator) GetMethod(class java.ClassID, name, signature string) (java.MethodID, error) {
	e.record("GetMethod")
	return 0, errors.NotImplemented("GetMethod")
}

func (e *Emulator) GetStaticMethod(class java.ClassID, name, signature string) (java.MethodID, error) {
	e.record("GetStaticMethod")
	return 0, errors.NotImplemented("GetStaticMethod")
}

func (e *Emulator) GetFieldID(class java.ClassID, name, signature string) (java.FieldID, error) {
	e.record("GetFieldID")
	return 0, errors.NotImplemented("GetFieldID")
}

func (e *Emulator) GetIntField(object java.ObjectRef, field java.FieldID) (int32, error) {
	e.record("GetIntField")
	return 0, errors.NotImplemented("GetIntField")
}

func (e *Emulator) GetObjectField(object java.ObjectRef, field java.FieldID) (java.ObjectRef, error) {
	e.record("GetObjectField")
	return 0, errors.NotImplemented("GetObjectField")
}

func (e *Emulator) NewObject(class java.ClassID, ctor java.MethodID, args ...java.Value) (java.ObjectRef, error) {
	e.record("NewObject")
	return 0, errors.NotImplemented("NewObject")
}

func (e *Emulator) NewStringUTF(s string) (java.ObjectRef, error) {
	e.record("NewStringUTF")
	return 0, errors.NotImplemented("NewStringUTF")
}

func (e *Emulator) GetStringUTFChars(str java.ObjectRef) (string, error) {
	e.record("GetStringUTFChars")
	return "", errors.NotImplemented("GetStringUTFChars")
}

func (e *Emulator) CallObjectMethod(object java.ObjectRef, method java.MethodID, args ...java.Value) (java.ObjectRef, error) {
	e.record("CallObjectMethod")
	return 0, errors.NotImplemented("CallObjectMethod")
}

func (e *Emulator) CallLongMethod(object java.ObjectRef, method java.MethodID, args ...java.Value) (int64, error) {
	e.record("CallLongMethod")
	return 0, errors.NotImplemented("CallLongMethod")
}

func (e *Emulator) CallStaticObjectMethod(class java.ClassID, method java.MethodID, args ...java.Value) (java.ObjectRef, error) {
	e.record("CallStaticObjectMethod")
	return 0, errors.NotImplemented("CallStaticObjectMethod")
}

func (e *Emulator) CallStaticBooleanMethod(class java.ClassID, method java.MethodID, args ...java.Value) (bool, error) {
	e.record("CallStaticBooleanMethod")
	return false, errors.NotImplemented("CallStaticBooleanMethod")
}

func (e *Emulator) IsInstanceOf(object java.ObjectRef, class java.ClassID) (bool, error) {
	e.record("IsInstanceOf")
	return false, errors.NotImplemented("IsInstanceOf")
}

func (e *Emulator) IsAssignableFrom(sub, sup java.ClassID) (bool, error) {
	e.record("IsAssignableFrom")
	return false, errors.NotImplemented("IsAssignableFrom")
}

func (e *Emulator) GetArrayLength(array java.ObjectRef) (int32, error) {
	e.record("GetArrayLength")
	return 0, errors.NotImplemented("GetArrayLength")
}

func (e *Emulator) GetObjectArrayElement(array java.ObjectRef, index int32) (java.ObjectRef, error) {
	e.record("GetObjectArrayElement")
	return 0, errors.NotImplemented("GetObjectArrayElement")
}

func (e *Emulator) DeleteLocalRef(object java.ObjectRef) error {
	e.record("DeleteLocalRef")
	return nil
}

func (e *Emulator) NewGlobalRef(object java.ObjectRef) (java.ObjectRef, error) {
	e.record("NewGlobalRef")
	return object, nil
}

func (e *Emulator) DeleteGlobalRef(object java.ObjectRef) error {
	e.record("DeleteGlobalRef")
	return nil
}
