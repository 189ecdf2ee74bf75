package dispatch_test

import (
	"testing"

	"github.com/wippyai/jvm-runtime/dispatch"
	"github.com/wippyai/jvm-runtime/emulator"
	"github.com/wippyai/jvm-runtime/environment"
	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/event"
	"github.com/wippyai/jvm-runtime/java"
)

// fakeBackend rides on the emulator but lets a test script the resolution
// queries the dispatcher performs.
type fakeBackend struct {
	*emulator.Emulator

	threadInfo     func(java.ThreadID) (java.Thread, error)
	declaringClass func(java.MethodID) (java.ClassID, error)
	classSignature func(java.ClassID) (java.ClassSignature, error)
	methodName     func(java.MethodID) (java.MethodSignature, error)
	objectClass    func(java.ObjectRef) (java.ClassID, error)
}

func (f *fakeBackend) GetThreadInfo(thread java.ThreadID) (java.Thread, error) {
	if f.threadInfo != nil {
		return f.threadInfo(thread)
	}
	return f.Emulator.GetThreadInfo(thread)
}

func (f *fakeBackend) GetMethodDeclaringClass(method java.MethodID) (java.ClassID, error) {
	if f.declaringClass != nil {
		return f.declaringClass(method)
	}
	return f.Emulator.GetMethodDeclaringClass(method)
}

func (f *fakeBackend) GetClassSignature(class java.ClassID) (java.ClassSignature, error) {
	if f.classSignature != nil {
		return f.classSignature(class)
	}
	return f.Emulator.GetClassSignature(class)
}

func (f *fakeBackend) GetMethodName(method java.MethodID) (java.MethodSignature, error) {
	if f.methodName != nil {
		return f.methodName(method)
	}
	return f.Emulator.GetMethodName(method)
}

func (f *fakeBackend) GetObjectClass(object java.ObjectRef) (java.ClassID, error) {
	if f.objectClass != nil {
		return f.objectClass(object)
	}
	return f.Emulator.GetObjectClass(object)
}

// resolving returns a backend whose invocation resolution fully succeeds.
func resolving() *fakeBackend {
	return &fakeBackend{
		Emulator: emulator.New(),
		threadInfo: func(id java.ThreadID) (java.Thread, error) {
			return java.Thread{ID: id, Name: "worker", Priority: 5}, nil
		},
		declaringClass: func(java.MethodID) (java.ClassID, error) {
			return java.ClassID(0x20), nil
		},
		classSignature: func(java.ClassID) (java.ClassSignature, error) {
			return java.ClassSignature{Raw: "Lcom/example/Probe;"}, nil
		},
		methodName: func(java.MethodID) (java.MethodSignature, error) {
			return java.MethodSignature{Name: "run", Signature: "()V"}, nil
		},
	}
}

func env(f *fakeBackend) *environment.Environment {
	return environment.New(f, f)
}

func TestRegistry_SetAndHas(t *testing.T) {
	r := dispatch.NewRegistry()
	if r.Has(event.MethodEntry) {
		t.Fatal("fresh registry must be empty")
	}

	r.Set(event.Callbacks{MethodEntry: func(event.MethodInvocation) {}})
	if !r.Has(event.MethodEntry) {
		t.Fatal("callback not visible after Set")
	}
	if r.Has(event.MethodExit) {
		t.Fatal("unset kind reported as registered")
	}

	// Whole-table replacement drops the previous registration.
	r.Set(event.Callbacks{VMInit: func() {}})
	if r.Has(event.MethodEntry) {
		t.Fatal("Set must replace, not merge")
	}
	if !r.Has(event.VMInit) {
		t.Fatal("replacement table not installed")
	}
}

func TestRegistry_InstallInstalledReset(t *testing.T) {
	dispatch.Reset()
	if dispatch.Installed() != nil {
		t.Fatal("Installed must be nil after Reset")
	}

	r := dispatch.NewRegistry()
	dispatch.Install(r)
	if dispatch.Installed() != r {
		t.Fatal("Install did not publish the registry")
	}

	dispatch.Reset()
	if dispatch.Installed() != nil {
		t.Fatal("Reset did not clear the registry")
	}
}

func TestMethodEntry_FullyResolved(t *testing.T) {
	f := resolving()
	r := dispatch.NewRegistry()
	var got event.MethodInvocation
	r.Set(event.Callbacks{MethodEntry: func(ev event.MethodInvocation) { got = ev }})

	r.MethodEntry(env(f), java.ThreadID(7), java.MethodID(0x10))

	if got.Method.ID != java.MethodID(0x10) || got.Method.Signature.Name != "run" {
		t.Fatalf("method not resolved: %+v", got.Method)
	}
	if got.Class.ID != java.ClassID(0x20) || got.Class.Signature.Raw != "Lcom/example/Probe;" {
		t.Fatalf("class not resolved: %+v", got.Class)
	}
	if got.Thread.ID != java.ThreadID(7) || got.Thread.Name != "worker" {
		t.Fatalf("thread not resolved: %+v", got.Thread)
	}
}

func TestMethodEntry_PartialFailureDowngradesAll(t *testing.T) {
	// Thread and declaring class resolve, the class signature does not. The
	// delivered payload must not mix the resolved thread with sentinels.
	f := resolving()
	f.classSignature = func(java.ClassID) (java.ClassSignature, error) {
		return java.ClassSignature{}, errors.NotImplemented("GetClassSignature")
	}

	r := dispatch.NewRegistry()
	var got event.MethodInvocation
	delivered := 0
	r.Set(event.Callbacks{MethodEntry: func(ev event.MethodInvocation) { got = ev; delivered++ }})

	r.MethodEntry(env(f), java.ThreadID(7), java.MethodID(0x10))

	if delivered != 1 {
		t.Fatalf("delivered %d, want 1", delivered)
	}
	if got.Thread != java.UnknownThread() || got.Method != java.UnknownMethod() || got.Class != java.UnknownClass() {
		t.Fatalf("partial payload delivered: %+v", got)
	}
}

func TestMethodEntry_NoCallbackIsNoOp(t *testing.T) {
	f := resolving()
	r := dispatch.NewRegistry()

	r.MethodEntry(env(f), java.ThreadID(7), java.MethodID(0x10))
	if calls := f.Calls(); len(calls) != 0 {
		t.Fatalf("dispatcher resolved payloads with no callback registered: %v", calls)
	}
}

func TestVMObjectAlloc_SentinelsPair(t *testing.T) {
	f := resolving()
	f.classSignature = func(java.ClassID) (java.ClassSignature, error) {
		return java.ClassSignature{}, errors.NotImplemented("GetClassSignature")
	}

	r := dispatch.NewRegistry()
	var got event.ObjectAllocation
	r.Set(event.Callbacks{VMObjectAlloc: func(ev event.ObjectAllocation) { got = ev }})

	r.VMObjectAlloc(env(f), java.ThreadID(7), java.ClassID(0x20), 128)

	if got.Size != 128 {
		t.Fatalf("size must survive resolution failure, got %d", got.Size)
	}
	if got.Thread != java.UnknownThread() || got.Class != java.UnknownClass() {
		t.Fatalf("thread and class must downgrade together: %+v", got)
	}
}

func TestException_ResolvesClassThroughInterop(t *testing.T) {
	f := resolving()
	f.objectClass = func(java.ObjectRef) (java.ClassID, error) {
		return java.ClassID(0x20), nil
	}

	r := dispatch.NewRegistry()
	var got event.ExceptionEvent
	r.Set(event.Callbacks{Exception: func(ev event.ExceptionEvent) { got = ev }})

	r.Exception(env(f), java.ObjectRef(0x99))
	if got.Class.Signature.Raw != "Lcom/example/Probe;" {
		t.Fatalf("exception class not resolved: %+v", got.Class)
	}
}

func TestClassFileLoad_Replacement(t *testing.T) {
	r := dispatch.NewRegistry()

	if got := r.ClassFileLoad("com/example/Probe", []byte{1}); got != nil {
		t.Fatal("no callback must keep the original bytes")
	}

	r.Set(event.Callbacks{ClassFileLoad: func(ev event.ClassFileLoadData) []byte {
		return append(ev.Data, 0xFF)
	}})
	got := r.ClassFileLoad("com/example/Probe", []byte{1})
	if len(got) != 2 || got[1] != 0xFF {
		t.Fatalf("replacement bytes not returned: %v", got)
	}
}

func TestThreadStart_SentinelOnFailure(t *testing.T) {
	f := resolving()
	f.threadInfo = func(java.ThreadID) (java.Thread, error) {
		return java.Thread{}, errors.NotImplemented("GetThreadInfo")
	}

	r := dispatch.NewRegistry()
	var got java.Thread
	r.Set(event.Callbacks{ThreadStart: func(th java.Thread) { got = th }})

	r.ThreadStart(env(f), java.ThreadID(7))
	if got != java.UnknownThread() {
		t.Fatalf("thread not sentinel: %+v", got)
	}
}

func TestMonitor_DispatchesByKind(t *testing.T) {
	f := resolving()
	r := dispatch.NewRegistry()

	fired := map[event.Kind]int{}
	mark := func(kind event.Kind) func(event.MonitorEvent) {
		return func(event.MonitorEvent) { fired[kind]++ }
	}
	r.Set(event.Callbacks{
		MonitorWait:             mark(event.MonitorWait),
		MonitorContendedEntered: mark(event.MonitorContendedEntered),
	})

	r.Monitor(env(f), event.MonitorWait, java.ThreadID(7))
	r.Monitor(env(f), event.MonitorContendedEntered, java.ThreadID(7))
	r.Monitor(env(f), event.MonitorWaited, java.ThreadID(7)) // unregistered

	if fired[event.MonitorWait] != 1 || fired[event.MonitorContendedEntered] != 1 {
		t.Fatalf("monitor kinds misrouted: %v", fired)
	}
	if fired[event.MonitorWaited] != 0 {
		t.Fatal("unregistered monitor kind delivered")
	}
}
