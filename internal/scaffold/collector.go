package scaffold

import (
	"fmt"

	"github.com/nativekit/nativekit/internal/config"
	"github.com/nativekit/nativekit/internal/input"
)

// Prompt option lists. Select prompts constrain the operator to these closed
// sets, so the collector never sees an invalid value.
var (
	storageOptions = []string{"AsyncStorage", "MMKV", "None"}
	storageValues  = []config.StorageBackend{
		config.StorageAsyncStorage,
		config.StorageMMKV,
		config.StorageNone,
	}

	stateOptions = []string{"Redux Toolkit", "Zustand", "Context API", "None"}
	stateValues  = []config.StateLibrary{
		config.StateReduxToolkit,
		config.StateZustand,
		config.StateContextAPI,
		config.StateNone,
	}
)

// CollectOptions asks the four configuration questions in their fixed order:
// bottom tabs, storage, navigation setup, state management. Each prompt blocks
// until answered; boolean prompts default to no, selections default to None.
func CollectOptions(p input.Prompter) (config.ScaffoldConfig, error) {
	cfg := config.Default()

	bottomTabs, err := p.Confirm("Include bottom tab navigation?", false)
	if err != nil {
		return config.ScaffoldConfig{}, fmt.Errorf("bottom tab prompt failed: %w", err)
	}
	cfg.BottomTabs = bottomTabs

	storageIdx, err := p.Select("Which storage library should be set up?", storageOptions, len(storageOptions)-1)
	if err != nil {
		return config.ScaffoldConfig{}, fmt.Errorf("storage prompt failed: %w", err)
	}
	cfg.Storage = storageValues[storageIdx]

	navigation, err := p.Confirm("Set up React Navigation?", false)
	if err != nil {
		return config.ScaffoldConfig{}, fmt.Errorf("navigation prompt failed: %w", err)
	}
	cfg.Navigation = navigation

	stateIdx, err := p.Select("Which state management library?", stateOptions, len(stateOptions)-1)
	if err != nil {
		return config.ScaffoldConfig{}, fmt.Errorf("state management prompt failed: %w", err)
	}
	cfg.StateManagement = stateValues[stateIdx]

	return cfg, nil
}
