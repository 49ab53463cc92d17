// Package config holds runtime configuration: defaults, validation, and the
// optional per-library settings file.
package config

import (
	"errors"
	"strings"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by [LoadSettings] and the CLI flags, and then passed (by
// pointer) to packages that need it.
type Config struct {
	// RootDir is the directory containing the configuration table and the
	// folders to process (positional argument).
	RootDir string

	// TableFile is the configuration table filename, resolved inside
	// RootDir. Default: "to_refactor.csv".
	TableFile string

	// SpecialsDir is the subdirectory name special files are moved into.
	// Default: "Specials".
	SpecialsDir string

	// ImageExtensions are the archive entry extensions treated as pages
	// (lowercase, with leading dot). Empty means the built-in set.
	ImageExtensions []string

	// Per-row boolean defaults, applied when a table cell is blank.
	DefaultNoExtra         bool // Default: true.
	DefaultAvoidVolumes    bool // Default: true.
	DefaultDeleteOriginals bool // Default: true.

	// Behavior flags.
	DryRun  bool
	Verbose bool
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// settings-file and flag overrides are applied.
func DefaultConfig() Config {
	return Config{
		TableFile:              "to_refactor.csv",
		SpecialsDir:            "Specials",
		DefaultNoExtra:         true,
		DefaultAvoidVolumes:    true,
		DefaultDeleteOriginals: true,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path. The
// filesystem root "/" is returned unchanged so we don't produce an empty
// string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks field values that no earlier layer guarantees.
func (c *Config) Validate() error {
	if c.RootDir == "" {
		return errors.New("need a root directory argument")
	}
	if c.TableFile == "" {
		return errors.New("configuration table filename must not be empty")
	}
	if c.SpecialsDir == "" || strings.ContainsAny(c.SpecialsDir, `/\`) {
		return errors.New("specials directory must be a plain folder name")
	}
	for _, ext := range c.ImageExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return errors.New("image extensions must look like \".jpg\"")
		}
	}
	return nil
}

// ImageExtensionSet returns the configured extensions as a lookup set, or
// nil when the built-in set should be used.
func (c *Config) ImageExtensionSet() map[string]bool {
	if len(c.ImageExtensions) == 0 {
		return nil
	}
	set := make(map[string]bool, len(c.ImageExtensions))
	for _, ext := range c.ImageExtensions {
		set[strings.ToLower(ext)] = true
	}
	return set
}
