package scaffold

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nativekit/nativekit/internal/config"
)

// stubPrompter replays canned answers and records the prompt sequence.
type stubPrompter struct {
	confirms []bool
	selects  []int
	calls    []string
	err      error
}

func (s *stubPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	s.calls = append(s.calls, "confirm: "+message)
	if s.err != nil {
		return false, s.err
	}
	if len(s.confirms) == 0 {
		return defaultYes, nil
	}
	answer := s.confirms[0]
	s.confirms = s.confirms[1:]
	return answer, nil
}

func (s *stubPrompter) Select(message string, options []string, defaultIndex int) (int, error) {
	s.calls = append(s.calls, "select: "+message)
	if s.err != nil {
		return 0, s.err
	}
	if len(s.selects) == 0 {
		return defaultIndex, nil
	}
	idx := s.selects[0]
	s.selects = s.selects[1:]
	return idx, nil
}

func TestCollectOptions_Order(t *testing.T) {
	p := &stubPrompter{}

	if _, err := CollectOptions(p); err != nil {
		t.Fatalf("CollectOptions failed: %v", err)
	}

	want := []string{
		"confirm: Include bottom tab navigation?",
		"select: Which storage library should be set up?",
		"confirm: Set up React Navigation?",
		"select: Which state management library?",
	}

	if len(p.calls) != len(want) {
		t.Fatalf("expected %d prompts, got %d: %v", len(want), len(p.calls), p.calls)
	}
	for i := range want {
		if p.calls[i] != want[i] {
			t.Errorf("prompt %d: got %q, want %q", i, p.calls[i], want[i])
		}
	}
}

func TestCollectOptions_Defaults(t *testing.T) {
	// Every prompt answered with its default
	cfg, err := CollectOptions(&stubPrompter{})
	if err != nil {
		t.Fatalf("CollectOptions failed: %v", err)
	}

	if cfg != config.Default() {
		t.Errorf("all-default answers should yield the default config, got %+v", cfg)
	}
}

func TestCollectOptions_Answers(t *testing.T) {
	p := &stubPrompter{
		confirms: []bool{true, true},
		selects:  []int{1, 0}, // MMKV, Redux Toolkit
	}

	cfg, err := CollectOptions(p)
	if err != nil {
		t.Fatalf("CollectOptions failed: %v", err)
	}

	if !cfg.BottomTabs {
		t.Error("expected bottom tabs enabled")
	}
	if cfg.Storage != config.StorageMMKV {
		t.Errorf("expected mmkv, got %q", cfg.Storage)
	}
	if !cfg.Navigation {
		t.Error("expected navigation enabled")
	}
	if cfg.StateManagement != config.StateReduxToolkit {
		t.Errorf("expected redux-toolkit, got %q", cfg.StateManagement)
	}
}

func TestCollectOptions_PromptFailure(t *testing.T) {
	wantErr := fmt.Errorf("terminal gone")
	p := &stubPrompter{err: wantErr}

	_, err := CollectOptions(p)
	if err == nil {
		t.Fatal("expected error when prompting fails")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("error should wrap the prompt failure: %v", err)
	}
}
