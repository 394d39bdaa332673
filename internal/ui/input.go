package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/necronix/internal/menu"
)

// Translate maps a key event to a command for the current menu state.
// Reassign commands come back without a target; the caller picks one.
// Returns false for keys with no binding in that state.
func Translate(state menu.State, ev *tcell.EventKey) (menu.Command, bool) {
	switch state.Screen {
	case menu.ScreenMain:
		return translateMain(ev)
	case menu.ScreenHelp, menu.ScreenCredits:
		return translateInfo(ev)
	case menu.ScreenGame:
		return translateGame(ev)
	default:
		return menu.Command{}, false
	}
}

func translateMain(ev *tcell.EventKey) (menu.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyLeft, tcell.KeyBacktab:
		return menu.Cmd(menu.CmdPrevFocus), true
	case tcell.KeyDown, tcell.KeyRight, tcell.KeyTab:
		return menu.Cmd(menu.CmdNextFocus), true
	case tcell.KeyEnter:
		return menu.Cmd(menu.CmdConfirm), true
	case tcell.KeyEscape:
		return menu.Cmd(menu.CmdCancel), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return menu.Cmd(menu.CmdConfirm), true
		case 'k':
			return menu.Cmd(menu.CmdPrevFocus), true
		case 'j':
			return menu.Cmd(menu.CmdNextFocus), true
		case 'q', 'Q':
			return menu.Cmd(menu.CmdCancel), true
		}
	}
	return menu.Command{}, false
}

func translateInfo(ev *tcell.EventKey) (menu.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyEnter:
		return menu.Cmd(menu.CmdCancel), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return menu.Cmd(menu.CmdCancel), true
		}
	}
	return menu.Command{}, false
}

func translateGame(ev *tcell.EventKey) (menu.Command, bool) {
	switch ev.Key() {
	case tcell.KeyTab:
		return menu.Cmd(menu.CmdCycleTab), true
	case tcell.KeyDown:
		return menu.Cmd(menu.CmdNextUnit), true
	case tcell.KeyUp:
		return menu.Cmd(menu.CmdPrevUnit), true
	case tcell.KeyEscape:
		return menu.Cmd(menu.CmdCancel), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			return menu.Cmd(menu.CmdNextUnit), true
		case 'k':
			return menu.Cmd(menu.CmdPrevUnit), true
		case 'r':
			return menu.Cmd(menu.CmdReassign), true
		case 'y':
			return menu.Cmd(menu.CmdExportLog), true
		case 'q', 'Q':
			return menu.Cmd(menu.CmdCancel), true
		}
	}
	return menu.Command{}, false
}
