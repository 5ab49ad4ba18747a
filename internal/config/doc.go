// Package config loads the uncursed demo and backend settings.
//
// Settings come from three layers, later ones winning:
//
//  1. Built-in defaults (Default).
//  2. A TOML or YAML file, if present.
//  3. UNCURSED_* environment variables.
//
// An example file:
//
//	backend = "sdl"
//
//	[logging]
//	level = "debug"
//	file = "/tmp/uncursed.log"
//
//	[display]
//	palette = ["#000000", "#aa0000", ...] # 16 entries
//
//	[demo]
//	pattern = "script"
//	script = "card.lua"
//
// Command line flags are applied by the caller after Load. A Watcher reloads
// the file when it changes on disk.
package config
