// Package config defines the scaffold configuration collected from the
// operator and the preset/record file formats that persist it.
package config

import "fmt"

// StorageBackend selects the key-value storage helper to generate.
type StorageBackend string

const (
	StorageAsyncStorage StorageBackend = "async-storage"
	StorageMMKV         StorageBackend = "mmkv"
	StorageNone         StorageBackend = "none"
)

// StateLibrary selects the state-management boilerplate to generate.
type StateLibrary string

const (
	StateReduxToolkit StateLibrary = "redux-toolkit"
	StateZustand      StateLibrary = "zustand"
	StateContextAPI   StateLibrary = "context-api"
	StateNone         StateLibrary = "none"
)

// ScaffoldConfig holds the four choices that drive generation. It is collected
// once per run and never mutated afterwards.
type ScaffoldConfig struct {
	BottomTabs      bool           `yaml:"bottom_tabs" mapstructure:"bottom_tabs"`
	Storage         StorageBackend `yaml:"storage" mapstructure:"storage"`
	Navigation      bool           `yaml:"navigation" mapstructure:"navigation"`
	StateManagement StateLibrary   `yaml:"state_management" mapstructure:"state_management"`
}

// Default returns the configuration produced by accepting every prompt default.
func Default() ScaffoldConfig {
	return ScaffoldConfig{
		BottomTabs:      false,
		Storage:         StorageNone,
		Navigation:      false,
		StateManagement: StateNone,
	}
}

// Validate checks that both enumerated fields hold known values.
func (c ScaffoldConfig) Validate() error {
	if _, err := ParseStorageBackend(string(c.Storage)); err != nil {
		return err
	}
	if _, err := ParseStateLibrary(string(c.StateManagement)); err != nil {
		return err
	}
	return nil
}

// ParseStorageBackend converts a preset string into a StorageBackend.
func ParseStorageBackend(s string) (StorageBackend, error) {
	switch StorageBackend(s) {
	case StorageAsyncStorage, StorageMMKV, StorageNone:
		return StorageBackend(s), nil
	default:
		return "", fmt.Errorf("unknown storage backend: %q (supported: async-storage, mmkv, none)", s)
	}
}

// ParseStateLibrary converts a preset string into a StateLibrary.
func ParseStateLibrary(s string) (StateLibrary, error) {
	switch StateLibrary(s) {
	case StateReduxToolkit, StateZustand, StateContextAPI, StateNone:
		return StateLibrary(s), nil
	default:
		return "", fmt.Errorf("unknown state library: %q (supported: redux-toolkit, zustand, context-api, none)", s)
	}
}
