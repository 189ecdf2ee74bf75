package emulator

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/wippyai/jvm-runtime/capability"
	"github.com/wippyai/jvm-runtime/environment"
	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/event"
	"github.com/wippyai/jvm-runtime/java"
)

func isStatus(err error, s errors.Status) bool {
	return stderrors.Is(err, &errors.StatusError{Status: s})
}

func TestGetMethodName_SyntheticID(t *testing.T) {
	em := New()
	sig, err := em.GetMethodName(SyntheticEmptyMethodID)
	if err != nil {
		t.Fatalf("synthetic id must resolve: %v", err)
	}
	if sig.Name != "" || sig.Signature != "" {
		t.Fatalf("synthetic id must yield an empty-but-valid signature, got %+v", sig)
	}

	_, err = em.GetMethodName(java.MethodID(0x42))
	if !isStatus(err, errors.StatusNotImplemented) {
		t.Fatalf("other ids must be NotImplemented, got %v", err)
	}
}

func TestAllocateDeallocate_RoundTrip(t *testing.T) {
	em := New()
	for _, n := range []int{0, 1, 64, 1 << 20} {
		mem, err := em.Allocate(n)
		if err != nil {
			t.Fatalf("Allocate(%d): %v", n, err)
		}
		if mem.Len != n {
			t.Fatalf("Allocate(%d) Len = %d", n, mem.Len)
		}
		if err := em.Deallocate(mem.Ptr); err != nil {
			t.Fatalf("Deallocate after Allocate(%d): %v", n, err)
		}
	}

	if _, err := em.Allocate(-1); !isStatus(err, errors.StatusIllegalArgument) {
		t.Fatalf("negative length must be IllegalArgument, got %v", err)
	}
}

func TestNullHandleGuard_NoBackendCall(t *testing.T) {
	em := New()
	env := em.Environment()

	checks := []struct {
		name string
		call func() error
		want error
	}{
		{"GetObjectSize", func() error { _, err := env.GetObjectSize(0); return err }, errors.ErrObjectIsNull},
		{"GetObjectHashCode", func() error { _, err := env.GetObjectHashCode(0); return err }, errors.ErrObjectIsNull},
		{"GetMethodName", func() error { _, err := env.GetMethodName(0); return err }, errors.ErrMethodIsNull},
		{"GetMethodDeclaringClass", func() error { _, err := env.GetMethodDeclaringClass(0); return err }, errors.ErrMethodIsNull},
		{"GetClassSignature", func() error { _, err := env.GetClassSignature(0); return err }, errors.ErrClassObjectIsNull},
		{"GetThreadInfo", func() error { _, err := env.GetThreadInfo(0); return err }, errors.ErrThreadIsNull},
		{"GetIntField object", func() error { _, err := env.GetIntField(0, java.FieldID(1)); return err }, errors.ErrObjectIsNull},
		{"GetIntField field", func() error { _, err := env.GetIntField(java.ObjectRef(1), 0); return err }, errors.ErrFieldIsNull},
		{"CallObjectMethod", func() error { _, err := env.CallObjectMethod(0, java.MethodID(1)); return err }, errors.ErrObjectIsNull},
		{"NewGlobalRef", func() error { _, err := env.NewGlobalRef(0); return err }, errors.ErrObjectIsNull},
		{"DeleteGlobalRef", func() error { return env.DeleteGlobalRef(0) }, errors.ErrObjectIsNull},
		{"RawMonitorExit", func() error { return env.RawMonitorExit(0) }, errors.ErrMonitorIsNull},
		{"IsAssignableFrom", func() error { _, err := env.IsAssignableFrom(0, java.ClassID(1)); return err }, errors.ErrClassObjectIsNull},
	}

	for _, c := range checks {
		em.ResetCalls()
		err := c.call()
		if !stderrors.Is(err, c.want) {
			t.Fatalf("%s: err = %v, want %v", c.name, err, c.want)
		}
		if calls := em.Calls(); len(calls) != 0 {
			t.Fatalf("%s: null guard leaked %v to the backend", c.name, calls)
		}
	}
}

func TestDeleteLocalRef_NullIsNoOp(t *testing.T) {
	em := New()
	env := em.Environment()
	if err := env.DeleteLocalRef(0); err != nil {
		t.Fatalf("null local ref release must be a safe no-op: %v", err)
	}
	if len(em.Calls()) != 0 {
		t.Fatal("null release must not reach the backend")
	}
}

func TestRegistry_NotificationWithoutCallback(t *testing.T) {
	em := New()
	if err := em.SetEventNotificationMode(event.MethodEntry, true); err != nil {
		t.Fatal(err)
	}

	// No callbacks installed: the raise must not reach payload resolution.
	em.ResetCalls()
	em.RaiseMethodEntry(java.ThreadID(7), SyntheticEmptyMethodID)
	if calls := em.Calls(); len(calls) != 0 {
		t.Fatalf("raise with empty table resolved payloads: %v", calls)
	}

	// An explicitly empty table behaves the same.
	if err := em.SetEventCallbacks(event.Callbacks{}); err != nil {
		t.Fatal(err)
	}
	em.ResetCalls()
	em.RaiseMethodEntry(java.ThreadID(7), SyntheticEmptyMethodID)
	if calls := em.Calls(); len(calls) != 0 {
		t.Fatalf("raise with empty table resolved payloads: %v", calls)
	}
}

func TestRegistry_DeliveryRequiresBothInEitherOrder(t *testing.T) {
	for _, callbackFirst := range []bool{true, false} {
		em := New()
		var got []event.MethodInvocation
		table := event.Callbacks{
			MethodEntry: func(ev event.MethodInvocation) { got = append(got, ev) },
		}

		if callbackFirst {
			if err := em.SetEventCallbacks(table); err != nil {
				t.Fatal(err)
			}
			if err := em.SetEventNotificationMode(event.MethodEntry, true); err != nil {
				t.Fatal(err)
			}
		} else {
			if err := em.SetEventNotificationMode(event.MethodEntry, true); err != nil {
				t.Fatal(err)
			}
			if err := em.SetEventCallbacks(table); err != nil {
				t.Fatal(err)
			}
		}

		em.RaiseMethodEntry(java.ThreadID(7), SyntheticEmptyMethodID)
		if len(got) != 1 {
			t.Fatalf("callbackFirst=%v: got %d deliveries, want 1", callbackFirst, len(got))
		}
	}
}

func TestRegistry_DisabledNotificationSuppresses(t *testing.T) {
	em := New()
	calls := 0
	if err := em.SetEventCallbacks(event.Callbacks{
		MethodEntry: func(event.MethodInvocation) { calls++ },
	}); err != nil {
		t.Fatal(err)
	}

	em.RaiseMethodEntry(java.ThreadID(7), SyntheticEmptyMethodID)
	if calls != 0 {
		t.Fatal("delivery without enabled notification")
	}

	if err := em.SetEventNotificationMode(event.MethodEntry, true); err != nil {
		t.Fatal(err)
	}
	em.RaiseMethodEntry(java.ThreadID(7), SyntheticEmptyMethodID)
	if err := em.SetEventNotificationMode(event.MethodEntry, false); err != nil {
		t.Fatal(err)
	}
	em.RaiseMethodEntry(java.ThreadID(7), SyntheticEmptyMethodID)

	if calls != 1 {
		t.Fatalf("got %d deliveries, want exactly 1 while enabled", calls)
	}
}

func TestSentinelAtomicity_MethodEntry(t *testing.T) {
	em := New()
	var got event.MethodInvocation
	delivered := 0
	if err := em.SetEventCallbacks(event.Callbacks{
		MethodEntry: func(ev event.MethodInvocation) { got = ev; delivered++ },
	}); err != nil {
		t.Fatal(err)
	}
	if err := em.SetEventNotificationMode(event.MethodEntry, true); err != nil {
		t.Fatal(err)
	}

	// GetMethodName(0x01) succeeds on the emulator, but thread-info
	// resolution fails — the payload must be entirely sentinels, never a
	// real method paired with a sentinel thread.
	em.RaiseMethodEntry(java.ThreadID(7), SyntheticEmptyMethodID)

	if delivered != 1 {
		t.Fatalf("resolution failure must not suppress delivery: %d calls", delivered)
	}
	if got.Method != java.UnknownMethod() {
		t.Fatalf("method not sentinel: %+v", got.Method)
	}
	if got.Class != java.UnknownClass() {
		t.Fatalf("class not sentinel: %+v", got.Class)
	}
	if got.Thread != java.UnknownThread() {
		t.Fatalf("thread not sentinel: %+v", got.Thread)
	}
}

func TestEndToEnd_OnlyRegisteredKindFires(t *testing.T) {
	em := New()
	entries, exits, gcs := 0, 0, 0
	if err := em.SetEventCallbacks(event.Callbacks{
		MethodEntry:            func(event.MethodInvocation) { entries++ },
		MethodExit:             func(event.MethodInvocation) { exits++ },
		GarbageCollectionStart: func() { gcs++ },
	}); err != nil {
		t.Fatal(err)
	}
	if err := em.SetEventNotificationMode(event.MethodEntry, true); err != nil {
		t.Fatal(err)
	}

	em.RaiseMethodEntry(java.ThreadID(7), SyntheticEmptyMethodID)

	if entries != 1 {
		t.Fatalf("method entry delivered %d times, want 1", entries)
	}
	if exits != 0 || gcs != 0 {
		t.Fatalf("registered-but-unfired kinds must stay silent: exits=%d gcs=%d", exits, gcs)
	}
}

func TestRawMonitors(t *testing.T) {
	em := New()
	env := em.Environment()

	mon, err := env.CreateRawMonitor("state-lock")
	if err != nil {
		t.Fatal(err)
	}

	if err := env.RawMonitorEnter(mon); err != nil {
		t.Fatal(err)
	}
	if err := env.RawMonitorEnter(mon); err != nil {
		t.Fatalf("raw monitors are reentrant: %v", err)
	}
	if err := env.RawMonitorExit(mon); err != nil {
		t.Fatal(err)
	}
	if err := env.RawMonitorExit(mon); err != nil {
		t.Fatal(err)
	}

	// Exiting a monitor this thread does not hold fails distinctly.
	if err := env.RawMonitorExit(mon); !isStatus(err, errors.StatusNotMonitorOwner) {
		t.Fatalf("unowned exit must be NotMonitorOwner, got %v", err)
	}

	if err := env.DestroyRawMonitor(mon); err != nil {
		t.Fatal(err)
	}
	if err := env.RawMonitorEnter(mon); !isStatus(err, errors.StatusInvalidMonitor) {
		t.Fatalf("destroyed monitor must be InvalidMonitor, got %v", err)
	}
}

func TestAddCapabilities_MergesMonotonically(t *testing.T) {
	em := New()
	first := capability.New().With(capability.CanGenerateMethodEntryEvents)
	second := capability.New().With(capability.CanGenerateMethodExitEvents)

	got, err := em.AddCapabilities(first)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Has(capability.CanGenerateMethodEntryEvents) {
		t.Fatal("requested flag not granted")
	}

	got, err = em.AddCapabilities(second)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Has(capability.CanGenerateMethodEntryEvents) || !got.Has(capability.CanGenerateMethodExitEvents) {
		t.Fatalf("second add must not unset earlier grants: %v", got)
	}

	// The returned snapshot must not alias internal state.
	snapshot := em.GetCapabilities()
	snapshot.Set(capability.CanSuspend, true)
	if em.GetCapabilities().Has(capability.CanSuspend) {
		t.Fatal("snapshot aliases emulator state")
	}
}

func TestSetEventNotificationMode_InvalidKind(t *testing.T) {
	em := New()
	if err := em.SetEventNotificationMode(event.Kind(7), true); !isStatus(err, errors.StatusIllegalArgument) {
		t.Fatalf("invalid kind must be IllegalArgument, got %v", err)
	}
}

func TestRunAgentThread(t *testing.T) {
	em := New()
	done := make(chan *environment.Environment, 1)
	err := em.RunAgentThread(java.ThreadID(9), func(env *environment.Environment) {
		done <- env
	}, environment.ThreadPriorityNorm)
	if err != nil {
		t.Fatal(err)
	}
	select {
	case env := <-done:
		if env == nil {
			t.Fatal("agent thread received nil environment")
		}
	case <-time.After(time.Second):
		t.Fatal("agent thread proc never ran")
	}

	if err := em.RunAgentThread(java.ThreadID(9), nil, environment.ThreadPriorityNorm); !isStatus(err, errors.StatusNullPointer) {
		t.Fatalf("nil proc must be NullPointer, got %v", err)
	}
}

func TestRaiseClassFileLoad(t *testing.T) {
	em := New()
	patched := []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x01}
	if err := em.SetEventCallbacks(event.Callbacks{
		ClassFileLoad: func(ev event.ClassFileLoadData) []byte {
			if ev.ClassName != "com/example/Probe" {
				t.Fatalf("unexpected class name %q", ev.ClassName)
			}
			return patched
		},
	}); err != nil {
		t.Fatal(err)
	}
	if err := em.SetEventNotificationMode(event.ClassFileLoad, true); err != nil {
		t.Fatal(err)
	}

	got := em.RaiseClassFileLoad("com/example/Probe", []byte{0xCA, 0xFE, 0xBA, 0xBE})
	if string(got) != string(patched) {
		t.Fatalf("replacement bytes not returned: %v", got)
	}

	if err := em.SetEventNotificationMode(event.ClassFileLoad, false); err != nil {
		t.Fatal(err)
	}
	if got := em.RaiseClassFileLoad("com/example/Probe", nil); got != nil {
		t.Fatal("raise without notification must return nil")
	}
}

func TestExceptionResolutionDowngrades(t *testing.T) {
	em := New()
	var got event.ExceptionEvent
	delivered := 0
	if err := em.SetEventCallbacks(event.Callbacks{
		Exception: func(ev event.ExceptionEvent) { got = ev; delivered++ },
	}); err != nil {
		t.Fatal(err)
	}
	if err := em.SetEventNotificationMode(event.Exception, true); err != nil {
		t.Fatal(err)
	}

	em.RaiseException(java.ObjectRef(0x99))
	if delivered != 1 {
		t.Fatalf("delivered %d, want 1", delivered)
	}
	if got.Class != java.UnknownClass() {
		t.Fatalf("failed resolution must deliver the class sentinel: %+v", got.Class)
	}
}
