package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// SettingsFile is the optional per-library settings file, looked up inside
// the root directory.
const SettingsFile = "cbzbinder.toml"

// settings mirrors the TOML schema. Pointer fields distinguish "absent"
// from zero values so unset keys keep their defaults.
type settings struct {
	TableFile       *string  `toml:"table_file"`
	SpecialsDir     *string  `toml:"specials_dir"`
	ImageExtensions []string `toml:"image_extensions"`

	NoExtra         *bool `toml:"no_extra"`
	AvoidVolumes    *bool `toml:"avoid_volumes"`
	DeleteOriginals *bool `toml:"delete_originals"`
}

// LoadSettings overlays cfg with values from the settings file in
// cfg.RootDir, if one exists. A missing file is not an error; a malformed
// one is, since silently ignoring it could delete archives the user meant
// to keep.
func LoadSettings(cfg *Config) (found bool, err error) {
	path := filepath.Join(cfg.RootDir, SettingsFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", SettingsFile, err)
	}

	var s settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return false, fmt.Errorf("parse %s: %w", SettingsFile, err)
	}

	if s.TableFile != nil {
		cfg.TableFile = *s.TableFile
	}
	if s.SpecialsDir != nil {
		cfg.SpecialsDir = *s.SpecialsDir
	}
	if len(s.ImageExtensions) > 0 {
		cfg.ImageExtensions = s.ImageExtensions
	}
	if s.NoExtra != nil {
		cfg.DefaultNoExtra = *s.NoExtra
	}
	if s.AvoidVolumes != nil {
		cfg.DefaultAvoidVolumes = *s.AvoidVolumes
	}
	if s.DeleteOriginals != nil {
		cfg.DefaultDeleteOriginals = *s.DeleteOriginals
	}
	return true, nil
}
