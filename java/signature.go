package java

const (
	unknownMethodName = "<UNKNOWN METHOD>"
	unknownClassName  = "<UNKNOWN CLASS>"
	unknownThreadName = "<UNKNOWN THREAD>"
)

// MethodSignature is a method's name and type signature as reported by the
// tooling interface.
type MethodSignature struct {
	Name      string
	Signature string
}

// UnknownMethodSignature is the sentinel signature delivered when method
// resolution fails.
func UnknownMethodSignature() MethodSignature {
	return MethodSignature{Name: unknownMethodName, Signature: unknownMethodName}
}

// ClassSignature is a class's parsed type descriptor plus the raw string it
// was parsed from.
type ClassSignature struct {
	Type Type
	Raw  string
}

// UnknownClassSignature is the sentinel signature delivered when class
// resolution fails.
func UnknownClassSignature() ClassSignature {
	return ClassSignature{Type: Type{Kind: KindUnknown}, Raw: unknownClassName}
}

// Method is a resolved method: its handle plus signature.
type Method struct {
	ID        MethodID
	Signature MethodSignature
}

// UnknownMethod is the sentinel Method delivered on resolution failure.
func UnknownMethod() Method {
	return Method{Signature: UnknownMethodSignature()}
}

// Class is a resolved class: its handle plus signature.
type Class struct {
	ID        ClassID
	Signature ClassSignature
}

// UnknownClass is the sentinel Class delivered on resolution failure.
func UnknownClass() Class {
	return Class{Signature: UnknownClassSignature()}
}

// Thread is a resolved thread: its handle plus the info reported by the
// tooling interface.
type Thread struct {
	ID       ThreadID
	Name     string
	Priority int32
	Daemon   bool
}

// UnknownThread is the sentinel Thread delivered on resolution failure.
func UnknownThread() Thread {
	return Thread{Name: unknownThreadName}
}
