package java

// ValueKind tags the active member of a Value.
type ValueKind int

const (
	ValueObject ValueKind = iota
	ValueBoolean
	ValueByte
	ValueChar
	ValueShort
	ValueInt
	ValueLong
	ValueFloat
	ValueDouble
)

// Value is one argument to an interop method call. It mirrors the native
// jvalue union: exactly one member is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	Ref  ObjectRef
	I64  int64
	F64  float64
}

// Null is the null object argument.
func Null() Value { return Value{Kind: ValueObject} }

// Object wraps an object reference argument.
func Object(ref ObjectRef) Value { return Value{Kind: ValueObject, Ref: ref} }

// Bool wraps a boolean argument.
func Bool(v bool) Value {
	var i int64
	if v {
		i = 1
	}
	return Value{Kind: ValueBoolean, I64: i}
}

// Byte wraps a byte argument.
func Byte(v int8) Value { return Value{Kind: ValueByte, I64: int64(v)} }

// Char wraps a UTF-16 code unit argument.
func Char(v uint16) Value { return Value{Kind: ValueChar, I64: int64(v)} }

// Short wraps a short argument.
func Short(v int16) Value { return Value{Kind: ValueShort, I64: int64(v)} }

// Int wraps an int argument.
func Int(v int32) Value { return Value{Kind: ValueInt, I64: int64(v)} }

// Long wraps a long argument.
func Long(v int64) Value { return Value{Kind: ValueLong, I64: v} }

// Float wraps a float argument.
func Float(v float32) Value { return Value{Kind: ValueFloat, F64: float64(v)} }

// Double wraps a double argument.
func Double(v float64) Value { return Value{Kind: ValueDouble, F64: v} }
