package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/jvm-runtime/event"
)

// Config is the agent configuration.
type Config struct {
	// AgentName overrides the agent id from the option string.
	AgentName string `toml:"agent_name"`
	// LogLevel selects the zap level: debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// Events lists the event kinds to enable, by name (e.g. "MethodEntry").
	Events []string `toml:"events"`
	// BootstrapClassPath entries are appended to the bootstrap class loader
	// search during setup.
	BootstrapClassPath []string `toml:"bootstrap_classpath"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		AgentName: "jvm-agent",
		LogLevel:  "info",
	}
}

// Load reads the configuration at path. A missing file yields Default; a
// malformed file yields an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	for _, name := range c.Events {
		if _, ok := event.KindByName(name); !ok {
			return fmt.Errorf("unknown event kind %q", name)
		}
	}
	return nil
}

// EventKinds resolves the configured event names.
func (c Config) EventKinds() []event.Kind {
	out := make([]event.Kind, 0, len(c.Events))
	for _, name := range c.Events {
		if k, ok := event.KindByName(name); ok {
			out = append(out, k)
		}
	}
	return out
}
