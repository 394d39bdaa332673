// Package menu provides the menu navigation state machine and unit selection.
package menu

// Screen is the active top-level screen.
type Screen int

const (
	// ScreenMain is the entry menu with Start, Help and Credits buttons.
	ScreenMain Screen = iota
	// ScreenHelp shows key bindings.
	ScreenHelp
	// ScreenCredits shows credits.
	ScreenCredits
	// ScreenGame is the in-game view with Unit and Log tabs.
	ScreenGame
)

// String returns a human-readable screen name.
func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenHelp:
		return "help"
	case ScreenCredits:
		return "credits"
	case ScreenGame:
		return "game"
	default:
		return "unknown"
	}
}

// Button is a main menu button.
type Button int

const (
	ButtonStart Button = iota
	ButtonHelp
	ButtonCredits

	buttonCount = 3
)

// Buttons lists the main menu buttons in display order.
var Buttons = []Button{ButtonStart, ButtonHelp, ButtonCredits}

// String returns the button label.
func (b Button) String() string {
	switch b {
	case ButtonStart:
		return "Start"
	case ButtonHelp:
		return "Help"
	case ButtonCredits:
		return "Credits"
	default:
		return "Unknown"
	}
}

// Next returns the following button, wrapping around.
func (b Button) Next() Button {
	return Button((int(b) + 1) % buttonCount)
}

// Prev returns the preceding button, wrapping around.
func (b Button) Prev() Button {
	return Button((int(b) + buttonCount - 1) % buttonCount)
}

// Tab is a game view tab.
type Tab int

const (
	TabUnit Tab = iota
	TabLog

	tabCount = 2
)

// Tabs lists the game view tabs in display order.
var Tabs = []Tab{TabUnit, TabLog}

// String returns the tab label.
func (t Tab) String() string {
	switch t {
	case TabUnit:
		return "Unit"
	case TabLog:
		return "Log"
	default:
		return "Unknown"
	}
}

// Next returns the following tab, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % tabCount)
}

// State is the menu state. Focus is meaningful only on ScreenMain and
// Tab only on ScreenGame; constructors keep the other field zeroed.
type State struct {
	Screen Screen
	Focus  Button
	Tab    Tab
}

// Initial returns the start state: main menu with Start focused.
func Initial() State {
	return MainMenu(ButtonStart)
}

// MainMenu returns the main menu state with the given focus.
func MainMenu(focus Button) State {
	return State{Screen: ScreenMain, Focus: focus}
}

// GameMenu returns the game view state with the given tab.
func GameMenu(tab Tab) State {
	return State{Screen: ScreenGame, Tab: tab}
}

// String returns a compact description like "main/Start" or "game/Log".
func (s State) String() string {
	switch s.Screen {
	case ScreenMain:
		return s.Screen.String() + "/" + s.Focus.String()
	case ScreenGame:
		return s.Screen.String() + "/" + s.Tab.String()
	default:
		return s.Screen.String()
	}
}
