package java

// ThreadState is the raw thread state bitmask reported by the tooling
// interface.
type ThreadState uint32

const (
	ThreadStateAlive                 ThreadState = 0x0001
	ThreadStateTerminated            ThreadState = 0x0002
	ThreadStateRunnable              ThreadState = 0x0004
	ThreadStateWaitingIndefinitely   ThreadState = 0x0010
	ThreadStateWaitingWithTimeout    ThreadState = 0x0020
	ThreadStateSleeping              ThreadState = 0x0040
	ThreadStateWaiting               ThreadState = 0x0080
	ThreadStateInObjectWait          ThreadState = 0x0100
	ThreadStateParked                ThreadState = 0x0200
	ThreadStateBlockedOnMonitorEnter ThreadState = 0x0400
	ThreadStateSuspended             ThreadState = 0x100000
	ThreadStateInterrupted           ThreadState = 0x200000
	ThreadStateInNative              ThreadState = 0x400000

	// ThreadStateJavaMask selects the bits that determine the Java-level
	// thread state.
	ThreadStateJavaMask ThreadState = ThreadStateAlive |
		ThreadStateTerminated |
		ThreadStateRunnable |
		ThreadStateWaitingIndefinitely |
		ThreadStateWaitingWithTimeout |
		ThreadStateBlockedOnMonitorEnter
)

// JavaThreadState is the java.lang.Thread.State equivalent derived from a
// raw state mask.
type JavaThreadState int

const (
	JavaThreadNew JavaThreadState = iota
	JavaThreadRunnable
	JavaThreadBlocked
	JavaThreadWaiting
	JavaThreadTimedWaiting
	JavaThreadTerminated
)

func (s JavaThreadState) String() string {
	switch s {
	case JavaThreadNew:
		return "NEW"
	case JavaThreadRunnable:
		return "RUNNABLE"
	case JavaThreadBlocked:
		return "BLOCKED"
	case JavaThreadWaiting:
		return "WAITING"
	case JavaThreadTimedWaiting:
		return "TIMED_WAITING"
	case JavaThreadTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// JavaState derives the Java-level thread state from the raw bitmask.
func (s ThreadState) JavaState() JavaThreadState {
	masked := s & ThreadStateJavaMask
	switch {
	case masked&ThreadStateTerminated != 0:
		return JavaThreadTerminated
	case masked&ThreadStateAlive == 0:
		return JavaThreadNew
	case masked&ThreadStateBlockedOnMonitorEnter != 0:
		return JavaThreadBlocked
	case masked&ThreadStateWaitingIndefinitely != 0:
		return JavaThreadWaiting
	case masked&ThreadStateWaitingWithTimeout != 0:
		return JavaThreadTimedWaiting
	default:
		return JavaThreadRunnable
	}
}
