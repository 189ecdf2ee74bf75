package agent

import (
	"testing"

	"github.com/wippyai/jvm-runtime/capability"
	"github.com/wippyai/jvm-runtime/emulator"
	"github.com/wippyai/jvm-runtime/event"
	"github.com/wippyai/jvm-runtime/java"
)

func TestSettersImplyCapabilities(t *testing.T) {
	em := emulator.New()
	a := New(em.Environment())

	a.OnMethodEntry(func(event.MethodInvocation) {})
	a.OnMonitorWait(func(event.MonitorEvent) {})
	a.OnClassFileLoad(func(event.ClassFileLoadData) []byte { return nil })
	a.OnVMInit(func() {})

	caps := a.Capabilities()
	for _, want := range []capability.Flag{
		capability.CanGenerateMethodEntryEvents,
		capability.CanGenerateMonitorEvents,
		capability.CanGenerateAllClassHookEvents,
	} {
		if !caps.Has(want) {
			t.Fatalf("missing implied capability %v", want)
		}
	}
	if caps.Count() != 3 {
		t.Fatalf("unexpected extra capabilities: %v", caps)
	}
}

func TestUpdate_PushesInSetupOrder(t *testing.T) {
	em := emulator.New()
	a := New(em.Environment())

	entries := 0
	a.OnMethodEntry(func(event.MethodInvocation) { entries++ })
	a.OnGarbageCollectionStart(func() {})

	// Nothing reaches the backend before Update.
	if len(em.Calls()) != 0 {
		t.Fatalf("setters touched the backend: %v", em.Calls())
	}

	if err := a.Update(); err != nil {
		t.Fatal(err)
	}

	calls := em.Calls()
	// AddCapabilities, then GetCapabilities snapshots inside Has checks are
	// emulator-internal; what matters is the relative order below.
	idx := func(op string) int {
		for i, c := range calls {
			if c == op {
				return i
			}
		}
		t.Fatalf("%s never called; calls: %v", op, calls)
		return -1
	}
	if !(idx("AddCapabilities") < idx("SetEventCallbacks") &&
		idx("SetEventCallbacks") < idx("SetEventNotificationMode")) {
		t.Fatalf("setup order violated: %v", calls)
	}

	if !em.GetCapabilities().Has(capability.CanGenerateMethodEntryEvents) {
		t.Fatal("capability not pushed")
	}

	// Delivery works end to end after Update.
	em.RaiseMethodEntry(java.ThreadID(7), emulator.SyntheticEmptyMethodID)
	if entries != 1 {
		t.Fatalf("delivered %d method entries, want 1", entries)
	}
}

func TestShutdown_DisablesNotifications(t *testing.T) {
	em := emulator.New()
	a := New(em.Environment())

	entries := 0
	a.OnMethodEntry(func(event.MethodInvocation) { entries++ })
	if err := a.Update(); err != nil {
		t.Fatal(err)
	}
	if err := a.Shutdown(); err != nil {
		t.Fatal(err)
	}

	em.RaiseMethodEntry(java.ThreadID(7), emulator.SyntheticEmptyMethodID)
	if entries != 0 {
		t.Fatal("event delivered after Shutdown")
	}
}

func TestParseOptions(t *testing.T) {
	opts := ParseOptions("probe,config=/etc/agent.toml,verbose=1")
	if opts.AgentID != "probe" {
		t.Fatalf("AgentID = %q", opts.AgentID)
	}
	if opts.ConfigPath != "/etc/agent.toml" {
		t.Fatalf("ConfigPath = %q", opts.ConfigPath)
	}
	if opts.Custom["verbose"] != "1" {
		t.Fatalf("Custom = %v", opts.Custom)
	}
}

func TestParseOptions_Defaults(t *testing.T) {
	opts := ParseOptions("")
	if opts.AgentID != DefaultAgentID {
		t.Fatalf("AgentID = %q", opts.AgentID)
	}
	if opts.ConfigPath != "" || len(opts.Custom) != 0 {
		t.Fatalf("empty options produced %+v", opts)
	}

	// The last bare token wins.
	opts = ParseOptions("first, second")
	if opts.AgentID != "second" {
		t.Fatalf("AgentID = %q", opts.AgentID)
	}
}
