package java

import "testing"

func TestHandles_ZeroIsNull(t *testing.T) {
	if !(ClassID(0)).IsNil() || !(MethodID(0)).IsNil() || !(ThreadID(0)).IsNil() ||
		!(FieldID(0)).IsNil() || !(RawMonitorID(0)).IsNil() || !(ObjectRef(0)).IsNil() {
		t.Fatal("zero handles must be null")
	}
	if (ClassID(1)).IsNil() || (ObjectRef(0xdead)).IsNil() {
		t.Fatal("non-zero handles must not be null")
	}
}

func TestHandles_EqualityByValue(t *testing.T) {
	a, b := MethodID(0x42), MethodID(0x42)
	if a != b {
		t.Fatal("handles with the same value must compare equal")
	}
	if a == MethodID(0x43) {
		t.Fatal("handles with different values must not compare equal")
	}
}

func TestSentinels(t *testing.T) {
	m := UnknownMethod()
	if m.Signature.Name != "<UNKNOWN METHOD>" || m.Signature.Signature != "<UNKNOWN METHOD>" {
		t.Fatalf("unexpected method sentinel: %+v", m.Signature)
	}
	if !m.ID.IsNil() {
		t.Fatal("sentinel method must carry the null handle")
	}

	c := UnknownClass()
	if c.Signature.Raw != "<UNKNOWN CLASS>" || c.Signature.Type.Kind != KindUnknown {
		t.Fatalf("unexpected class sentinel: %+v", c.Signature)
	}

	th := UnknownThread()
	if th.Name != "<UNKNOWN THREAD>" || !th.ID.IsNil() {
		t.Fatalf("unexpected thread sentinel: %+v", th)
	}
}

func TestParseDescriptor(t *testing.T) {
	cases := []struct {
		desc string
		want string
	}{
		{"I", "int"},
		{"Z", "boolean"},
		{"J", "long"},
		{"V", "void"},
		{"Ljava/lang/String;", "java.lang.String"},
		{"[I", "int[]"},
		{"[[Ljava/util/List;", "java.util.List[][]"},
	}
	for _, tc := range cases {
		typ, err := ParseDescriptor(tc.desc)
		if err != nil {
			t.Fatalf("ParseDescriptor(%q): %v", tc.desc, err)
		}
		if typ.String() != tc.want {
			t.Fatalf("ParseDescriptor(%q) = %q, want %q", tc.desc, typ.String(), tc.want)
		}
	}
}

func TestParseDescriptor_Invalid(t *testing.T) {
	for _, desc := range []string{"", "Q", "Ljava/lang/String", "L;", "[", "II"} {
		if _, err := ParseDescriptor(desc); err == nil {
			t.Fatalf("ParseDescriptor(%q) should fail", desc)
		}
	}
}

func TestThreadState_JavaState(t *testing.T) {
	cases := []struct {
		state ThreadState
		want  JavaThreadState
	}{
		{0, JavaThreadNew},
		{ThreadStateAlive | ThreadStateRunnable, JavaThreadRunnable},
		{ThreadStateAlive | ThreadStateBlockedOnMonitorEnter, JavaThreadBlocked},
		{ThreadStateAlive | ThreadStateWaiting | ThreadStateWaitingIndefinitely, JavaThreadWaiting},
		{ThreadStateAlive | ThreadStateWaiting | ThreadStateWaitingWithTimeout, JavaThreadTimedWaiting},
		{ThreadStateTerminated, JavaThreadTerminated},
		// Bits outside the Java mask must not affect the derivation.
		{ThreadStateAlive | ThreadStateRunnable | ThreadStateInNative, JavaThreadRunnable},
	}
	for _, tc := range cases {
		if got := tc.state.JavaState(); got != tc.want {
			t.Fatalf("JavaState(%#x) = %v, want %v", uint32(tc.state), got, tc.want)
		}
	}
}

func TestVersionFromPacked(t *testing.T) {
	v := VersionFromPacked(0x00010203)
	if v.Major != 1 || v.Minor != 2 || v.Micro != 3 {
		t.Fatalf("VersionFromPacked = %v, want 1.2.3", v)
	}
	// Bits above the major field are interface-kind flags and must be masked.
	if masked := VersionFromPacked(0x30010203); masked != v {
		t.Fatalf("high bits must not leak into the version: %v", masked)
	}
	if v.String() != "1.2.3" {
		t.Fatalf("String() = %q", v.String())
	}
}

func TestValueConstructors(t *testing.T) {
	if v := Int(7); v.Kind != ValueInt || v.I64 != 7 {
		t.Fatalf("Int: %+v", v)
	}
	if v := Long(-9); v.Kind != ValueLong || v.I64 != -9 {
		t.Fatalf("Long: %+v", v)
	}
	if v := Bool(true); v.Kind != ValueBoolean || v.I64 != 1 {
		t.Fatalf("Bool: %+v", v)
	}
	if v := Double(2.5); v.Kind != ValueDouble || v.F64 != 2.5 {
		t.Fatalf("Double: %+v", v)
	}
	if v := Object(ObjectRef(5)); v.Kind != ValueObject || v.Ref != 5 {
		t.Fatalf("Object: %+v", v)
	}
	if v := Null(); v.Kind != ValueObject || !v.Ref.IsNil() {
		t.Fatalf("Null: %+v", v)
	}
}
