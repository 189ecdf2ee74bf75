package agent

import (
	"go.uber.org/zap"

	"github.com/wippyai/jvm-runtime/capability"
	"github.com/wippyai/jvm-runtime/environment"
	"github.com/wippyai/jvm-runtime/event"
)

// Agent accumulates callbacks and the capabilities they imply, then pushes
// them to a backend in one Update call. Not safe for concurrent use; an
// agent is configured from a single setup thread.
type Agent struct {
	env       *environment.Environment
	caps      capability.Set
	callbacks event.Callbacks
}

// New returns an agent bound to the given environment with no callbacks and
// no capabilities requested.
func New(env *environment.Environment) *Agent {
	return &Agent{env: env}
}

// Environment returns the environment the agent was built over.
func (a *Agent) Environment() *environment.Environment { return a.env }

// Capabilities returns the set the agent will request on Update.
func (a *Agent) Capabilities() capability.Set { return a.caps }

func (a *Agent) imply(flags ...capability.Flag) {
	for _, f := range flags {
		a.caps.Set(f, true)
	}
}

// OnVMInit registers the VM-init callback. No capability required.
func (a *Agent) OnVMInit(fn event.FnVMInit) {
	a.callbacks.VMInit = fn
}

// OnVMStart registers the VM-start callback.
func (a *Agent) OnVMStart(fn event.FnVMStart) {
	a.callbacks.VMStart = fn
}

// OnVMDeath registers the VM-death callback.
func (a *Agent) OnVMDeath(fn event.FnVMDeath) {
	a.callbacks.VMDeath = fn
}

// OnMethodEntry registers the method-entry callback and implies the
// method-entry capability.
func (a *Agent) OnMethodEntry(fn event.FnMethodEntry) {
	a.callbacks.MethodEntry = fn
	a.imply(capability.CanGenerateMethodEntryEvents)
}

// OnMethodExit registers the method-exit callback.
func (a *Agent) OnMethodExit(fn event.FnMethodExit) {
	a.callbacks.MethodExit = fn
	a.imply(capability.CanGenerateMethodExitEvents)
}

// OnThreadStart registers the thread-start callback.
func (a *Agent) OnThreadStart(fn event.FnThreadStart) {
	a.callbacks.ThreadStart = fn
}

// OnThreadEnd registers the thread-end callback.
func (a *Agent) OnThreadEnd(fn event.FnThreadEnd) {
	a.callbacks.ThreadEnd = fn
}

// OnException registers the exception callback.
func (a *Agent) OnException(fn event.FnException) {
	a.callbacks.Exception = fn
	a.imply(capability.CanGenerateExceptionEvents)
}

// OnExceptionCatch registers the exception-catch callback.
func (a *Agent) OnExceptionCatch(fn event.FnExceptionCatch) {
	a.callbacks.ExceptionCatch = fn
	a.imply(capability.CanGenerateExceptionEvents)
}

// OnMonitorWait registers the monitor-wait callback. All four monitor kinds
// share one capability.
func (a *Agent) OnMonitorWait(fn event.FnMonitorWait) {
	a.callbacks.MonitorWait = fn
	a.imply(capability.CanGenerateMonitorEvents)
}

// OnMonitorWaited registers the monitor-waited callback.
func (a *Agent) OnMonitorWaited(fn event.FnMonitorWaited) {
	a.callbacks.MonitorWaited = fn
	a.imply(capability.CanGenerateMonitorEvents)
}

// OnMonitorContendedEnter registers the contended-enter callback.
func (a *Agent) OnMonitorContendedEnter(fn event.FnMonitorContendedEnter) {
	a.callbacks.MonitorContendedEnter = fn
	a.imply(capability.CanGenerateMonitorEvents)
}

// OnMonitorContendedEntered registers the contended-entered callback.
func (a *Agent) OnMonitorContendedEntered(fn event.FnMonitorContendedEntered) {
	a.callbacks.MonitorContendedEntered = fn
	a.imply(capability.CanGenerateMonitorEvents)
}

// OnFieldAccess registers the field-access callback.
func (a *Agent) OnFieldAccess(fn event.FnFieldAccess) {
	a.callbacks.FieldAccess = fn
	a.imply(capability.CanGenerateFieldAccessEvents)
}

// OnFieldModification registers the field-modification callback.
func (a *Agent) OnFieldModification(fn event.FnFieldModification) {
	a.callbacks.FieldModification = fn
	a.imply(capability.CanGenerateFieldModificationEvents)
}

// OnGarbageCollectionStart registers the GC-start callback.
func (a *Agent) OnGarbageCollectionStart(fn event.FnGarbageCollectionStart) {
	a.callbacks.GarbageCollectionStart = fn
	a.imply(capability.CanGenerateGarbageCollectionEvents)
}

// OnGarbageCollectionFinish registers the GC-finish callback.
func (a *Agent) OnGarbageCollectionFinish(fn event.FnGarbageCollectionFinish) {
	a.callbacks.GarbageCollectionFinish = fn
	a.imply(capability.CanGenerateGarbageCollectionEvents)
}

// OnVMObjectAlloc registers the object-allocation callback.
func (a *Agent) OnVMObjectAlloc(fn event.FnVMObjectAlloc) {
	a.callbacks.VMObjectAlloc = fn
	a.imply(capability.CanGenerateVMObjectAllocEvents)
}

// OnClassFileLoad registers the class-file-load callback.
func (a *Agent) OnClassFileLoad(fn event.FnClassFileLoad) {
	a.callbacks.ClassFileLoad = fn
	a.imply(capability.CanGenerateAllClassHookEvents)
}

// Update pushes the accumulated state to the backend: capabilities first,
// then the callback table, then notification modes for every registered
// kind. The ordering guarantees registration completes before the first
// event can fire.
func (a *Agent) Update() error {
	granted, err := a.env.AddCapabilities(a.caps)
	if err != nil {
		return err
	}
	for _, f := range capability.Flags() {
		if a.caps.Has(f) && !granted.Has(f) {
			Logger().Warn("capability not granted", zap.Stringer("flag", f))
		}
	}

	if err := a.env.SetEventCallbacks(a.callbacks); err != nil {
		return err
	}

	for _, kind := range a.callbacks.Registered() {
		if err := a.env.SetEventNotificationMode(kind, true); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown disables notification for every registered kind, in reverse of
// Update.
func (a *Agent) Shutdown() error {
	var firstErr error
	for _, kind := range a.callbacks.Registered() {
		if err := a.env.SetEventNotificationMode(kind, false); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
