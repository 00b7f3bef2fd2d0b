package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// RecordFile is the name of the scaffold record written at the project root.
// Its presence marks a directory as a nativekit project, and a later run can
// reuse it as a preset.
const RecordFile = "nativekit.yml"

// LoadPreset reads a preset file and returns the configuration it describes.
// Preset files use the same shape as the scaffold record:
//
//	bottom_tabs: true
//	storage: mmkv
//	navigation: true
//	state_management: zustand
//
// Missing keys fall back to the prompt defaults.
func LoadPreset(path string) (ScaffoldConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("bottom_tabs", false)
	v.SetDefault("storage", string(StorageNone))
	v.SetDefault("navigation", false)
	v.SetDefault("state_management", string(StateNone))

	if err := v.ReadInConfig(); err != nil {
		return ScaffoldConfig{}, fmt.Errorf("failed to read preset %s: %w", path, err)
	}

	storage, err := ParseStorageBackend(v.GetString("storage"))
	if err != nil {
		return ScaffoldConfig{}, fmt.Errorf("invalid preset %s: %w", path, err)
	}

	state, err := ParseStateLibrary(v.GetString("state_management"))
	if err != nil {
		return ScaffoldConfig{}, fmt.Errorf("invalid preset %s: %w", path, err)
	}

	return ScaffoldConfig{
		BottomTabs:      v.GetBool("bottom_tabs"),
		Storage:         storage,
		Navigation:      v.GetBool("navigation"),
		StateManagement: state,
	}, nil
}

// FindRecord reports the path of an existing scaffold record under root, or
// an empty string when none exists.
func FindRecord(root string) string {
	path := filepath.Join(root, RecordFile)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
