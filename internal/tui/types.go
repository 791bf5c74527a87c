package tui

import "time"

// Screen represents different TUI screens
type Screen string

const (
	// ScreenList shows every detected adapter
	ScreenList Screen = "list"
	// ScreenDetail shows the selected adapter
	ScreenDetail Screen = "detail"
	// ScreenHelp shows help overlay
	ScreenHelp Screen = "help"
)

// UIState represents the persisted UI state (ui_state.json)
type UIState struct {
	CurrentScreen Screen    `json:"screen"`
	Selection     int       `json:"selection"`
	LastError     string    `json:"last_error"`
	Updated       time.Time `json:"updated"`
}

func validScreen(s Screen) bool {
	switch s {
	case ScreenList, ScreenDetail, ScreenHelp:
		return true
	}
	return false
}
