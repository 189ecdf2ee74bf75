package agent

import "strings"

// DefaultAgentID names an agent whose option string carries no identifier.
const DefaultAgentID = "jvm-agent"

// Options is the decoded Agent_OnLoad option string.
type Options struct {
	AgentID    string
	ConfigPath string
	Custom     map[string]string
}

// ParseOptions decodes a comma-separated option string. A key=value pair
// becomes a custom argument ("config" selects the config file path); a bare
// token names the agent. The last bare token wins.
//
//	"probe,config=/etc/agent.toml,verbose=1"
//	  → AgentID "probe", ConfigPath "/etc/agent.toml", Custom{"verbose":"1"}
func ParseOptions(s string) Options {
	opts := Options{
		AgentID: DefaultAgentID,
		Custom:  make(map[string]string),
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			opts.AgentID = part
			continue
		}
		if key == "config" {
			opts.ConfigPath = value
			continue
		}
		opts.Custom[key] = value
	}
	return opts
}
