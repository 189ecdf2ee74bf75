package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/jvm-runtime/event"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
agent_name = "tracer"
log_level = "debug"
events = ["MethodEntry", "GarbageCollectionStart"]
bootstrap_classpath = ["/opt/agent/support.jar"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AgentName != "tracer" || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
	kinds := cfg.EventKinds()
	if len(kinds) != 2 || kinds[0] != event.MethodEntry || kinds[1] != event.GarbageCollectionStart {
		t.Fatalf("kinds = %v", kinds)
	}
	if len(cfg.BootstrapClassPath) != 1 {
		t.Fatalf("classpath = %v", cfg.BootstrapClassPath)
	}
}

func TestLoad_LogFormEventNames(t *testing.T) {
	// The snake_case form that Kind.String produces is accepted alongside
	// the identifier form.
	path := writeConfig(t, `events = ["method_entry", "GarbageCollectionStart"]`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	kinds := cfg.EventKinds()
	if len(kinds) != 2 || kinds[0] != event.MethodEntry || kinds[1] != event.GarbageCollectionStart {
		t.Fatalf("kinds = %v", kinds)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AgentName != Default().AgentName || cfg.LogLevel != "info" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "agent_name = [broken")
	if _, err := Load(path); err == nil {
		t.Fatal("malformed file must error, not fall back to defaults")
	}
}

func TestLoad_UnknownEventKind(t *testing.T) {
	path := writeConfig(t, `events = ["NoSuchEvent"]`)
	if _, err := Load(path); err == nil {
		t.Fatal("unknown event kind must error")
	}
}

func TestLoad_UnknownLogLevel(t *testing.T) {
	path := writeConfig(t, `log_level = "loud"`)
	if _, err := Load(path); err == nil {
		t.Fatal("unknown log level must error")
	}
}
