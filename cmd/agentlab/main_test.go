package main

import (
	"testing"

	"github.com/wippyai/jvm-runtime/event"
)

func TestParseScript_DefaultFlagValue(t *testing.T) {
	// The -events default must always parse.
	kinds, err := parseScript("MethodEntry,ThreadStart,GarbageCollectionStart")
	if err != nil {
		t.Fatal(err)
	}
	want := []event.Kind{event.MethodEntry, event.ThreadStart, event.GarbageCollectionStart}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
}

func TestParseScript_LogFormAndWhitespace(t *testing.T) {
	kinds, err := parseScript(" method_entry, VMObjectAlloc ,,")
	if err != nil {
		t.Fatal(err)
	}
	if len(kinds) != 2 || kinds[0] != event.MethodEntry || kinds[1] != event.VMObjectAlloc {
		t.Fatalf("kinds = %v", kinds)
	}
}

func TestParseScript_UnknownKind(t *testing.T) {
	if _, err := parseScript("MethodEntry,NoSuchEvent"); err == nil {
		t.Fatal("unknown kind must error")
	}
}
