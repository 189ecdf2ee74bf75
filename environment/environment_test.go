package environment_test

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/jvm-runtime/emulator"
	"github.com/wippyai/jvm-runtime/environment"
	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/java"
)

// Every guarded accessor must reject a null handle with the matching
// sentinel before the backend sees the call.
func TestNullHandleGuards(t *testing.T) {
	em := emulator.New()
	env := environment.New(em, em)

	obj := java.ObjectRef(0x10)
	cls := java.ClassID(0x20)
	mid := java.MethodID(0x30)
	fld := java.FieldID(0x40)

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"GetThreadInfo", func() error { _, err := env.GetThreadInfo(0); return err }, errors.ErrThreadIsNull},
		{"GetThreadState", func() error { _, err := env.GetThreadState(0); return err }, errors.ErrThreadIsNull},
		{"RunAgentThread", func() error {
			return env.RunAgentThread(0, func(*environment.Environment) {}, environment.ThreadPriorityNorm)
		}, errors.ErrThreadIsNull},
		{"GetStackTrace", func() error { _, err := env.GetStackTrace(0); return err }, errors.ErrThreadIsNull},
		{"GetLocalObject", func() error { _, err := env.GetLocalObject(0, 0, 0); return err }, errors.ErrThreadIsNull},
		{"GetMethodDeclaringClass", func() error { _, err := env.GetMethodDeclaringClass(0); return err }, errors.ErrMethodIsNull},
		{"GetMethodName", func() error { _, err := env.GetMethodName(0); return err }, errors.ErrMethodIsNull},
		{"GetClassSignature", func() error { _, err := env.GetClassSignature(0); return err }, errors.ErrClassObjectIsNull},
		{"GetClassLoaderClasses", func() error { _, err := env.GetClassLoaderClasses(0); return err }, errors.ErrObjectIsNull},
		{"GetClassLoader", func() error { _, err := env.GetClassLoader(0); return err }, errors.ErrClassObjectIsNull},
		{"IsArrayClass", func() error { _, err := env.IsArrayClass(0); return err }, errors.ErrClassObjectIsNull},
		{"RetransformClasses", func() error { return env.RetransformClasses([]java.ClassID{cls, 0}) }, errors.ErrClassObjectIsNull},
		{"DestroyRawMonitor", func() error { return env.DestroyRawMonitor(0) }, errors.ErrMonitorIsNull},
		{"RawMonitorEnter", func() error { return env.RawMonitorEnter(0) }, errors.ErrMonitorIsNull},
		{"RawMonitorExit", func() error { return env.RawMonitorExit(0) }, errors.ErrMonitorIsNull},
		{"GetObjectSize", func() error { _, err := env.GetObjectSize(0); return err }, errors.ErrObjectIsNull},
		{"GetObjectHashCode", func() error { _, err := env.GetObjectHashCode(0); return err }, errors.ErrObjectIsNull},
		{"IterateOverInstancesOfClass", func() error {
			return env.IterateOverInstancesOfClass(0, environment.HeapFilterEither, nil)
		}, errors.ErrClassObjectIsNull},
		{"IterateOverObjectsReachableFromObject", func() error {
			return env.IterateOverObjectsReachableFromObject(0, nil)
		}, errors.ErrObjectIsNull},
		{"GetObjectClass", func() error { _, err := env.GetObjectClass(0); return err }, errors.ErrObjectIsNull},
		{"GetMethod", func() error { _, err := env.GetMethod(0, "run", "()V"); return err }, errors.ErrClassObjectIsNull},
		{"GetStaticMethod", func() error { _, err := env.GetStaticMethod(0, "main", "()V"); return err }, errors.ErrClassObjectIsNull},
		{"GetFieldID", func() error { _, err := env.GetFieldID(0, "count", "I"); return err }, errors.ErrClassObjectIsNull},
		{"GetIntField null object", func() error { _, err := env.GetIntField(0, fld); return err }, errors.ErrObjectIsNull},
		{"GetIntField null field", func() error { _, err := env.GetIntField(obj, 0); return err }, errors.ErrFieldIsNull},
		{"GetObjectField null object", func() error { _, err := env.GetObjectField(0, fld); return err }, errors.ErrObjectIsNull},
		{"GetObjectField null field", func() error { _, err := env.GetObjectField(obj, 0); return err }, errors.ErrFieldIsNull},
		{"NewObject null class", func() error { _, err := env.NewObject(0, mid); return err }, errors.ErrClassObjectIsNull},
		{"NewObject null ctor", func() error { _, err := env.NewObject(cls, 0); return err }, errors.ErrMethodIsNull},
		{"GetStringUTFChars", func() error { _, err := env.GetStringUTFChars(0); return err }, errors.ErrObjectIsNull},
		{"CallObjectMethod null object", func() error { _, err := env.CallObjectMethod(0, mid); return err }, errors.ErrObjectIsNull},
		{"CallObjectMethod null method", func() error { _, err := env.CallObjectMethod(obj, 0); return err }, errors.ErrMethodIsNull},
		{"CallLongMethod null object", func() error { _, err := env.CallLongMethod(0, mid); return err }, errors.ErrObjectIsNull},
		{"CallLongMethod null method", func() error { _, err := env.CallLongMethod(obj, 0); return err }, errors.ErrMethodIsNull},
		{"CallStaticObjectMethod null class", func() error { _, err := env.CallStaticObjectMethod(0, mid); return err }, errors.ErrClassObjectIsNull},
		{"CallStaticObjectMethod null method", func() error { _, err := env.CallStaticObjectMethod(cls, 0); return err }, errors.ErrMethodIsNull},
		{"CallStaticBooleanMethod null class", func() error { _, err := env.CallStaticBooleanMethod(0, mid); return err }, errors.ErrClassObjectIsNull},
		{"CallStaticBooleanMethod null method", func() error { _, err := env.CallStaticBooleanMethod(cls, 0); return err }, errors.ErrMethodIsNull},
		{"IsInstanceOf null object", func() error { _, err := env.IsInstanceOf(0, cls); return err }, errors.ErrObjectIsNull},
		{"IsInstanceOf null class", func() error { _, err := env.IsInstanceOf(obj, 0); return err }, errors.ErrClassObjectIsNull},
		{"IsAssignableFrom null sub", func() error { _, err := env.IsAssignableFrom(0, cls); return err }, errors.ErrClassObjectIsNull},
		{"IsAssignableFrom null sup", func() error { _, err := env.IsAssignableFrom(cls, 0); return err }, errors.ErrClassObjectIsNull},
		{"GetArrayLength", func() error { _, err := env.GetArrayLength(0); return err }, errors.ErrObjectIsNull},
		{"GetObjectArrayElement", func() error { _, err := env.GetObjectArrayElement(0, 0); return err }, errors.ErrObjectIsNull},
		{"NewGlobalRef", func() error { _, err := env.NewGlobalRef(0); return err }, errors.ErrObjectIsNull},
		{"DeleteGlobalRef", func() error { return env.DeleteGlobalRef(0) }, errors.ErrObjectIsNull},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			em.ResetCalls()
			err := c.call()
			if !stderrors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
			if calls := em.Calls(); len(calls) != 0 {
				t.Fatalf("null guard leaked %v to the backend", calls)
			}
		})
	}
}

// Release operations tolerate null so composite cleanup can run
// unconditionally.
func TestReleaseNullIsNoOp(t *testing.T) {
	em := emulator.New()
	env := environment.New(em, em)

	if err := env.DeleteLocalRef(0); err != nil {
		t.Fatalf("DeleteLocalRef(null): %v", err)
	}
	if err := env.Deallocate(0); err != nil {
		t.Fatalf("Deallocate(null): %v", err)
	}
	if calls := em.Calls(); len(calls) != 0 {
		t.Fatalf("null release reached the backend: %v", calls)
	}
}

// Valid handles pass through to the backend untouched.
func TestValidHandlesReachBackend(t *testing.T) {
	em := emulator.New()
	env := environment.New(em, em)

	if _, err := env.GetMethodName(emulator.SyntheticEmptyMethodID); err != nil {
		t.Fatalf("GetMethodName passthrough: %v", err)
	}
	if _, err := env.GetObjectSize(java.ObjectRef(0x10)); err == nil {
		t.Fatal("emulator backend must answer NotImplemented, not success")
	}

	calls := em.Calls()
	if len(calls) != 2 || calls[0] != "GetMethodName" || calls[1] != "GetObjectSize" {
		t.Fatalf("backend saw %v", calls)
	}
}

func TestAccessors(t *testing.T) {
	em := emulator.New()
	env := environment.New(em, em)
	if env.Tooling() != environment.Tooling(em) || env.Interop() != environment.Interop(em) {
		t.Fatal("accessors must return the wrapped backends")
	}
}
