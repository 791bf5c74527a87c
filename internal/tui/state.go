package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gpuinfo/internal/fsutil"
	"gpuinfo/internal/logging"
)

const (
	// UIStateFileName is the name of the UI state file
	UIStateFileName = "ui_state.json"
)

// UIStateManager persists the screen and selection between runs.
type UIStateManager struct {
	stateDir string
	logger   *logging.Logger
}

// NewUIStateManager creates a new UI state manager
func NewUIStateManager(stateDir string, logger *logging.Logger) *UIStateManager {
	return &UIStateManager{
		stateDir: stateDir,
		logger:   logger,
	}
}

func (m *UIStateManager) getStatePath() string {
	return filepath.Join(m.stateDir, UIStateFileName)
}

// Load loads the UI state from disk. A missing file yields the default state.
func (m *UIStateManager) Load() (*UIState, error) {
	data, err := os.ReadFile(m.getStatePath())
	if err != nil {
		if os.IsNotExist(err) {
			return &UIState{
				CurrentScreen: ScreenList,
				Updated:       time.Now().UTC(),
			}, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state UIState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	if !validScreen(state.CurrentScreen) {
		state.CurrentScreen = ScreenList
	}
	if state.Selection < 0 {
		state.Selection = 0
	}

	return &state, nil
}

// Save saves the UI state to disk
func (m *UIStateManager) Save(state *UIState) error {
	state.Updated = time.Now().UTC()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := fsutil.AtomicWriteFile(m.getStatePath(), data, fsutil.DefaultFilePermissions, m.logger); err != nil {
		return err
	}

	m.logger.Debug("tui.state.saved", "UI state saved", map[string]interface{}{
		"screen":    state.CurrentScreen,
		"selection": state.Selection,
	})

	return nil
}
