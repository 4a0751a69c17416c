package config

import "strings"

// DiffIgnoreWhitespaceSetting controls how whitespace is treated when a
// diff is computed.
type DiffIgnoreWhitespaceSetting int

const (
	// IgnoreWhitespaceNone does not ignore any whitespace differences.
	IgnoreWhitespaceNone DiffIgnoreWhitespaceSetting = iota
	// IgnoreWhitespaceAll ignores all whitespace, like --ignore-all-space.
	IgnoreWhitespaceAll
	// IgnoreWhitespaceChange ignores changed whitespace, like --ignore-space-change.
	IgnoreWhitespaceChange
)

// ParseDiffIgnoreWhitespaceSetting parses a git-config style string.
func ParseDiffIgnoreWhitespaceSetting(s string) (DiffIgnoreWhitespaceSetting, bool) {
	switch strings.ToLower(s) {
	case "true", "on", "all":
		return IgnoreWhitespaceAll, true
	case "change":
		return IgnoreWhitespaceChange, true
	case "false", "off", "none":
		return IgnoreWhitespaceNone, true
	default:
		return IgnoreWhitespaceNone, false
	}
}

// DiffShowWhitespaceSetting controls which whitespace is rendered visibly
// in a diff.
type DiffShowWhitespaceSetting int

const (
	// ShowWhitespaceNone renders no whitespace markers.
	ShowWhitespaceNone DiffShowWhitespaceSetting = iota
	// ShowWhitespaceTrailing renders only trailing whitespace.
	ShowWhitespaceTrailing
	// ShowWhitespaceLeading renders only leading whitespace.
	ShowWhitespaceLeading
	// ShowWhitespaceBoth renders both leading and trailing whitespace.
	ShowWhitespaceBoth
)

// ParseDiffShowWhitespaceSetting parses a git-config style string.
func ParseDiffShowWhitespaceSetting(s string) (DiffShowWhitespaceSetting, bool) {
	switch strings.ToLower(s) {
	case "true", "on", "both":
		return ShowWhitespaceBoth, true
	case "trailing":
		return ShowWhitespaceTrailing, true
	case "leading":
		return ShowWhitespaceLeading, true
	case "false", "off", "none":
		return ShowWhitespaceNone, true
	default:
		return ShowWhitespaceNone, false
	}
}
