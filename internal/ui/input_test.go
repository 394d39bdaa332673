package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/necronix/internal/menu"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTranslate(t *testing.T) {
	mainMenu := menu.Initial()
	help := menu.State{Screen: menu.ScreenHelp}
	game := menu.GameMenu(menu.TabUnit)

	tests := []struct {
		name  string
		state menu.State
		ev    *tcell.EventKey
		want  menu.CommandKind
		ok    bool
	}{
		{"main down", mainMenu, key(tcell.KeyDown), menu.CmdNextFocus, true},
		{"main up", mainMenu, key(tcell.KeyUp), menu.CmdPrevFocus, true},
		{"main tab", mainMenu, key(tcell.KeyTab), menu.CmdNextFocus, true},
		{"main enter", mainMenu, key(tcell.KeyEnter), menu.CmdConfirm, true},
		{"main escape", mainMenu, key(tcell.KeyEscape), menu.CmdCancel, true},
		{"main q", mainMenu, char('q'), menu.CmdCancel, true},
		{"main r unbound", mainMenu, char('r'), menu.CmdNone, false},
		{"help escape", help, key(tcell.KeyEscape), menu.CmdCancel, true},
		{"help down unbound", help, key(tcell.KeyDown), menu.CmdNone, false},
		{"game tab", game, key(tcell.KeyTab), menu.CmdCycleTab, true},
		{"game down", game, key(tcell.KeyDown), menu.CmdNextUnit, true},
		{"game k", game, char('k'), menu.CmdPrevUnit, true},
		{"game r", game, char('r'), menu.CmdReassign, true},
		{"game y", game, char('y'), menu.CmdExportLog, true},
		{"game escape", game, key(tcell.KeyEscape), menu.CmdCancel, true},
		{"game x unbound", game, char('x'), menu.CmdNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := Translate(tt.state, tt.ev)
			if ok != tt.ok {
				t.Fatalf("Translate() ok = %v, want %v", ok, tt.ok)
			}
			if cmd.Kind != tt.want {
				t.Errorf("Translate() = %v, want %v", cmd.Kind, tt.want)
			}
		})
	}
}
