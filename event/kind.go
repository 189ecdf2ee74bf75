package event

// Kind identifies one runtime event. Each kind maps to exactly one native
// event number; the values below are the native numbers.
type Kind uint32

const (
	VMInit                  Kind = 50
	VMDeath                 Kind = 51
	ThreadStart             Kind = 52
	ThreadEnd               Kind = 53
	ClassFileLoad           Kind = 54
	VMStart                 Kind = 57
	Exception               Kind = 58
	ExceptionCatch          Kind = 59
	FieldAccess             Kind = 63
	FieldModification       Kind = 64
	MethodEntry             Kind = 65
	MethodExit              Kind = 66
	MonitorWait             Kind = 73
	MonitorWaited           Kind = 74
	MonitorContendedEnter   Kind = 75
	MonitorContendedEntered Kind = 76
	GarbageCollectionStart  Kind = 81
	GarbageCollectionFinish Kind = 82
	VMObjectAlloc           Kind = 84
)

var kindNames = map[Kind]string{
	VMInit:                  "vm_init",
	VMDeath:                 "vm_death",
	ThreadStart:             "thread_start",
	ThreadEnd:               "thread_end",
	ClassFileLoad:           "class_file_load",
	VMStart:                 "vm_start",
	Exception:               "exception",
	ExceptionCatch:          "exception_catch",
	FieldAccess:             "field_access",
	FieldModification:       "field_modification",
	MethodEntry:             "method_entry",
	MethodExit:              "method_exit",
	MonitorWait:             "monitor_wait",
	MonitorWaited:           "monitor_waited",
	MonitorContendedEnter:   "monitor_contended_enter",
	MonitorContendedEntered: "monitor_contended_entered",
	GarbageCollectionStart:  "garbage_collection_start",
	GarbageCollectionFinish: "garbage_collection_finish",
	VMObjectAlloc:           "vm_object_alloc",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown_event"
}

// kindsByName maps both accepted spellings of each kind to its value: the
// exported identifier form ("MethodEntry") used by configuration files and
// command lines, and the log form produced by String ("method_entry").
var kindsByName = func() map[string]Kind {
	m := map[string]Kind{
		"VMInit":                  VMInit,
		"VMDeath":                 VMDeath,
		"ThreadStart":             ThreadStart,
		"ThreadEnd":               ThreadEnd,
		"ClassFileLoad":           ClassFileLoad,
		"VMStart":                 VMStart,
		"Exception":               Exception,
		"ExceptionCatch":          ExceptionCatch,
		"FieldAccess":             FieldAccess,
		"FieldModification":       FieldModification,
		"MethodEntry":             MethodEntry,
		"MethodExit":              MethodExit,
		"MonitorWait":             MonitorWait,
		"MonitorWaited":           MonitorWaited,
		"MonitorContendedEnter":   MonitorContendedEnter,
		"MonitorContendedEntered": MonitorContendedEntered,
		"GarbageCollectionStart":  GarbageCollectionStart,
		"GarbageCollectionFinish": GarbageCollectionFinish,
		"VMObjectAlloc":           VMObjectAlloc,
	}
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// KindByName resolves a kind from its name. It accepts the exported
// identifier form ("MethodEntry") and the log form ("method_entry").
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// IsValid reports whether k is a member of the closed kind set.
func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok
}

// Kinds returns every defined kind in ascending native-number order.
func Kinds() []Kind {
	return []Kind{
		VMInit, VMDeath, ThreadStart, ThreadEnd, ClassFileLoad, VMStart,
		Exception, ExceptionCatch, FieldAccess, FieldModification,
		MethodEntry, MethodExit,
		MonitorWait, MonitorWaited, MonitorContendedEnter, MonitorContendedEntered,
		GarbageCollectionStart, GarbageCollectionFinish, VMObjectAlloc,
	}
}
