package java

// Handle is the underlying representation of every native identifier.
// Handle 0 is the null handle.
type Handle uintptr

// ClassID identifies a loaded class.
type ClassID Handle

// MethodID identifies a method of a class.
type MethodID Handle

// ThreadID identifies a runtime thread object.
type ThreadID Handle

// FieldID identifies a field of a class.
type FieldID Handle

// RawMonitorID identifies a raw monitor created through the tooling interface.
type RawMonitorID Handle

// ObjectRef is a reference to a runtime object. Whether it is local or
// global depends on how it was obtained; see the package documentation.
type ObjectRef Handle

func (c ClassID) IsNil() bool      { return c == 0 }
func (m MethodID) IsNil() bool     { return m == 0 }
func (t ThreadID) IsNil() bool     { return t == 0 }
func (f FieldID) IsNil() bool      { return f == 0 }
func (r RawMonitorID) IsNil() bool { return r == 0 }
func (o ObjectRef) IsNil() bool    { return o == 0 }

// MemoryAllocation is a buffer obtained from the runtime's own allocator.
// It must be released through Deallocate, never through Go's allocator.
// Len is a transport convenience only; this layer does no bounds checking.
type MemoryAllocation struct {
	Ptr Handle
	Len int
}

// FrameInfo is one frame of a captured stack trace.
type FrameInfo struct {
	Method   MethodID
	Location int64
}
