package tui

import (
	"os"
	"path/filepath"
	"testing"

	"gpuinfo/internal/logging"
)

func TestUIStateManager_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	manager := NewUIStateManager(tmpDir, logging.NewLogger(logging.LevelError))

	state := &UIState{
		CurrentScreen: ScreenDetail,
		Selection:     2,
		LastError:     "test error",
	}

	if err := manager.Save(state); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	loaded, err := manager.Load()
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}

	if loaded.CurrentScreen != ScreenDetail {
		t.Errorf("Expected screen detail, got %s", loaded.CurrentScreen)
	}
	if loaded.Selection != 2 {
		t.Errorf("Expected selection 2, got %d", loaded.Selection)
	}
	if loaded.LastError != "test error" {
		t.Errorf("Expected error 'test error', got %s", loaded.LastError)
	}
	if loaded.Updated.IsZero() {
		t.Error("Expected Updated to be stamped on save")
	}
}

func TestUIStateManager_LoadNonExistent(t *testing.T) {
	manager := NewUIStateManager(t.TempDir(), logging.NewLogger(logging.LevelError))

	state, err := manager.Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if state.CurrentScreen != ScreenList {
		t.Errorf("Expected default screen list, got %s", state.CurrentScreen)
	}
	if state.Selection != 0 {
		t.Errorf("Expected default selection 0, got %d", state.Selection)
	}
}

func TestUIStateManager_UnknownScreenFallsBack(t *testing.T) {
	tmpDir := t.TempDir()
	content := `{"screen":"models","selection":1}`
	if err := os.WriteFile(filepath.Join(tmpDir, UIStateFileName), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	state, err := NewUIStateManager(tmpDir, logging.NewLogger(logging.LevelError)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if state.CurrentScreen != ScreenList {
		t.Errorf("Expected unknown screen to fall back to list, got %s", state.CurrentScreen)
	}
	if state.Selection != 1 {
		t.Errorf("Expected selection 1, got %d", state.Selection)
	}
}

func TestUIStateManager_CorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, UIStateFileName), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewUIStateManager(tmpDir, logging.NewLogger(logging.LevelError)).Load(); err == nil {
		t.Error("Expected error for corrupt state file")
	}
}

func TestUIStateManager_AtomicWrite(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "state")
	manager := NewUIStateManager(tmpDir, logging.NewLogger(logging.LevelError))

	if err := manager.Save(&UIState{CurrentScreen: ScreenList}); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	tmpPath := filepath.Join(tmpDir, "ui_state.json.tmp")
	if _, err := os.Stat(tmpPath); !os.IsNotExist(err) {
		t.Errorf("Temp file should not exist after save")
	}

	statePath := filepath.Join(tmpDir, "ui_state.json")
	if _, err := os.Stat(statePath); err != nil {
		t.Errorf("State file should exist: %v", err)
	}
}

func TestUIStateManager_NegativeSelection(t *testing.T) {
	tmpDir := t.TempDir()
	content := `{"screen":"detail","selection":-1}`
	if err := os.WriteFile(filepath.Join(tmpDir, UIStateFileName), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	state, err := NewUIStateManager(tmpDir, logging.NewLogger(logging.LevelError)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if state.Selection != 0 {
		t.Errorf("Expected negative selection to load as 0, got %d", state.Selection)
	}
	if state.CurrentScreen != ScreenDetail {
		t.Errorf("Expected screen detail, got %s", state.CurrentScreen)
	}
}
