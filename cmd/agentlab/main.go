package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/jvm-runtime/agent"
	"github.com/wippyai/jvm-runtime/config"
	"github.com/wippyai/jvm-runtime/emulator"
	"github.com/wippyai/jvm-runtime/event"
	"github.com/wippyai/jvm-runtime/java"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to agent TOML config (optional)")
		script      = flag.String("events", "MethodEntry,ThreadStart,GarbageCollectionStart", "Events to fire (comma-separated kind names)")
		repeat      = flag.Int("n", 1, "Times to replay the script")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			agent.SetLogger(logger)
		}
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*configPath, *script, *repeat); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, script string, repeat int) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	em := emulator.New()
	a := agent.New(em.Environment())

	// Print every delivery. Resolution on the emulated backend downgrades to
	// sentinels except for the reserved synthetic method id.
	a.OnMethodEntry(func(ev event.MethodInvocation) {
		fmt.Printf("method entry  %s%s on %s\n", ev.Method.Signature.Name, ev.Method.Signature.Signature, ev.Thread.Name)
	})
	a.OnMethodExit(func(ev event.MethodInvocation) {
		fmt.Printf("method exit   %s%s\n", ev.Method.Signature.Name, ev.Method.Signature.Signature)
	})
	a.OnThreadStart(func(th java.Thread) {
		fmt.Printf("thread start  %s\n", th.Name)
	})
	a.OnThreadEnd(func(th java.Thread) {
		fmt.Printf("thread end    %s\n", th.Name)
	})
	a.OnVMObjectAlloc(func(ev event.ObjectAllocation) {
		fmt.Printf("object alloc  %s (%d bytes)\n", ev.Class.Signature.Raw, ev.Size)
	})
	a.OnException(func(ev event.ExceptionEvent) {
		fmt.Printf("exception     %s\n", ev.Class.Signature.Raw)
	})
	a.OnMonitorWait(func(ev event.MonitorEvent) {
		fmt.Printf("monitor wait  %s\n", ev.Thread.Name)
	})
	a.OnGarbageCollectionStart(func() {
		fmt.Println("gc start")
	})
	a.OnGarbageCollectionFinish(func() {
		fmt.Println("gc finish")
	})
	a.OnVMInit(func() {
		fmt.Println("vm init")
	})

	if err := a.Update(); err != nil {
		return err
	}

	fmt.Printf("Agent: %s\n", cfg.AgentName)
	fmt.Printf("Capabilities: %v\n\n", a.Capabilities())

	kinds, err := parseScript(script)
	if err != nil {
		return err
	}
	for i := 0; i < repeat; i++ {
		for _, k := range kinds {
			raise(em, k)
		}
	}
	return nil
}

func parseScript(script string) ([]event.Kind, error) {
	var out []event.Kind
	for _, name := range strings.Split(script, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k, ok := event.KindByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown event kind %q", name)
		}
		out = append(out, k)
	}
	return out, nil
}

// raise fires one synthetic event of the given kind with fixed handles; the
// reserved synthetic method id keeps method names resolvable on the
// emulated backend.
func raise(em *emulator.Emulator, kind event.Kind) {
	const thread = java.ThreadID(0x7)
	switch kind {
	case event.VMInit:
		em.RaiseVMInit()
	case event.VMStart:
		em.RaiseVMStart()
	case event.VMDeath:
		em.RaiseVMDeath()
	case event.MethodEntry:
		em.RaiseMethodEntry(thread, emulator.SyntheticEmptyMethodID)
	case event.MethodExit:
		em.RaiseMethodExit(thread, emulator.SyntheticEmptyMethodID)
	case event.ThreadStart:
		em.RaiseThreadStart(thread)
	case event.ThreadEnd:
		em.RaiseThreadEnd(thread)
	case event.Exception:
		em.RaiseException(java.ObjectRef(0x99))
	case event.ExceptionCatch:
		em.RaiseExceptionCatch()
	case event.MonitorWait, event.MonitorWaited, event.MonitorContendedEnter, event.MonitorContendedEntered:
		em.RaiseMonitor(kind, thread)
	case event.FieldAccess:
		em.RaiseFieldAccess(thread, java.FieldID(0x40))
	case event.FieldModification:
		em.RaiseFieldModification(thread, java.FieldID(0x40))
	case event.GarbageCollectionStart:
		em.RaiseGarbageCollectionStart()
	case event.GarbageCollectionFinish:
		em.RaiseGarbageCollectionFinish()
	case event.VMObjectAlloc:
		em.RaiseVMObjectAlloc(thread, java.ClassID(0x20), 64)
	case event.ClassFileLoad:
		em.RaiseClassFileLoad("com/example/Probe", []byte{0xCA, 0xFE, 0xBA, 0xBE})
	}
}
