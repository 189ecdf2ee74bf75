package capability

import "strings"

// Flag identifies one capability. The declaration order below is the wire
// order of the native capability bit vector and must not change.
type Flag int

const (
	CanTagObjects Flag = iota
	CanGenerateFieldModificationEvents
	CanGenerateFieldAccessEvents
	CanGetBytecodes
	CanGetSyntheticAttribute
	CanGetOwnedMonitorInfo
	CanGetCurrentContendedMonitor
	CanGetMonitorInfo
	CanPopFrame
	CanRedefineClasses
	CanSignalThread
	CanGetSourceFileName
	CanGetLineNumbers
	CanGetSourceDebugExtension
	CanMaintainOriginalMethodOrder
	CanGenerateSingleStepEvents
	CanGenerateExceptionEvents
	CanGenerateFramePopEvents
	CanGenerateBreakpointEvents
	CanSuspend
	CanRedefineAnyClass
	CanGetCurrentThreadCPUTime
	CanGetThreadCPUTime
	CanGenerateMethodEntryEvents
	CanGenerateMethodExitEvents
	CanGenerateAllClassHookEvents
	CanGenerateCompiledMethodLoadEvents
	CanGenerateMonitorEvents
	CanGenerateVMObjectAllocEvents
	CanGenerateNativeMethodBindEvents
	CanGenerateGarbageCollectionEvents
	CanGenerateObjectFreeEvents
	CanForceEarlyReturn
	CanGetOwnedMonitorStackDepthInfo
	CanGetConstantPool
	CanSetNativeMethodPrefix
	CanRetransformClasses
	CanRetransformAnyClass
	CanGenerateResourceExhaustionHeapEvents
	CanGenerateResourceExhaustionThreadsEvents

	// NumFlags is the number of defined capabilities.
	NumFlags int = iota
)

var flagNames = [NumFlags]string{
	"can_tag_objects",
	"can_generate_field_modification_events",
	"can_generate_field_access_events",
	"can_get_bytecodes",
	"can_get_synthetic_attribute",
	"can_get_owned_monitor_info",
	"can_get_current_contended_monitor",
	"can_get_monitor_info",
	"can_pop_frame",
	"can_redefine_classes",
	"can_signal_thread",
	"can_get_source_file_name",
	"can_get_line_numbers",
	"can_get_source_debug_extension",
	"can_maintain_original_method_order",
	"can_generate_single_step_events",
	"can_generate_exception_events",
	"can_generate_frame_pop_events",
	"can_generate_breakpoint_events",
	"can_suspend",
	"can_redefine_any_class",
	"can_get_current_thread_cpu_time",
	"can_get_thread_cpu_time",
	"can_generate_method_entry_events",
	"can_generate_method_exit_events",
	"can_generate_all_class_hook_events",
	"can_generate_compiled_method_load_events",
	"can_generate_monitor_events",
	"can_generate_vm_object_alloc_events",
	"can_generate_native_method_bind_events",
	"can_generate_garbage_collection_events",
	"can_generate_object_free_events",
	"can_force_early_return",
	"can_get_owned_monitor_stack_depth_info",
	"can_get_constant_pool",
	"can_set_native_method_prefix",
	"can_retransform_classes",
	"can_retransform_any_class",
	"can_generate_resource_exhaustion_heap_events",
	"can_generate_resource_exhaustion_threads_events",
}

func (f Flag) String() string {
	if f < 0 || int(f) >= NumFlags {
		return "unknown_capability"
	}
	return flagNames[f]
}

// Flags returns every defined flag in wire order.
func Flags() []Flag {
	out := make([]Flag, NumFlags)
	for i := range out {
		out[i] = Flag(i)
	}
	return out
}

// Set is an ordered collection of capability flags, default all false.
// The zero value is usable.
type Set struct {
	flags [NumFlags]bool
}

// New returns an all-false capability set.
func New() Set {
	return Set{}
}

// Has reports whether the flag is set.
func (s Set) Has(f Flag) bool {
	if f < 0 || int(f) >= NumFlags {
		return false
	}
	return s.flags[f]
}

// Set updates one flag in place.
func (s *Set) Set(f Flag, v bool) {
	if f < 0 || int(f) >= NumFlags {
		return
	}
	s.flags[f] = v
}

// With returns a copy of the set with the given flags enabled.
func (s Set) With(fs ...Flag) Set {
	out := s
	for _, f := range fs {
		out.Set(f, true)
	}
	return out
}

// Merge returns the union of the two sets. A flag is true in the result
// wherever it is true in either input; merge is commutative, idempotent,
// and never unsets a flag.
func (s Set) Merge(other Set) Set {
	var out Set
	for i := range s.flags {
		out.flags[i] = s.flags[i] || other.flags[i]
	}
	return out
}

// IsEmpty reports whether no flag is set.
func (s Set) IsEmpty() bool {
	for _, v := range s.flags {
		if v {
			return false
		}
	}
	return true
}

// Count returns the number of set flags.
func (s Set) Count() int {
	n := 0
	for _, v := range s.flags {
		if v {
			n++
		}
	}
	return n
}

// String lists the granted flags in wire order.
func (s Set) String() string {
	var names []string
	for i, v := range s.flags {
		if v {
			names = append(names, flagNames[i])
		}
	}
	if names == nil {
		return "(none)"
	}
	return strings.Join(names, ",")
}
