// Package config loads agent configuration from a TOML file.
//
// A missing file is not an error: Load returns the defaults, so agents run
// unconfigured out of the box. A file that exists but does not parse is an
// error; silently falling back to defaults would mask operator mistakes.
package config
