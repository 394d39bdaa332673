package menu

import "testing"

func TestInitialState(t *testing.T) {
	s := Initial()
	if s.Screen != ScreenMain || s.Focus != ButtonStart {
		t.Errorf("Initial() = %v, want main/Start", s)
	}
}

func TestFocusCycling(t *testing.T) {
	for _, start := range Buttons {
		s := MainMenu(start)
		for i := 0; i < len(Buttons); i++ {
			s, _ = s.Apply(Cmd(CmdNextFocus))
		}
		if s.Focus != start {
			t.Errorf("3x next from %v = %v, want %v", start, s.Focus, start)
		}

		next, _ := MainMenu(start).Apply(Cmd(CmdNextFocus))
		back, _ := next.Apply(Cmd(CmdPrevFocus))
		if back.Focus != start {
			t.Errorf("prev(next(%v)) = %v, want %v", start, back.Focus, start)
		}
	}
}

func TestFocusWrapsBothWays(t *testing.T) {
	s, _ := MainMenu(ButtonCredits).Apply(Cmd(CmdNextFocus))
	if s.Focus != ButtonStart {
		t.Errorf("next from Credits = %v, want Start", s.Focus)
	}
	s, _ = MainMenu(ButtonStart).Apply(Cmd(CmdPrevFocus))
	if s.Focus != ButtonCredits {
		t.Errorf("prev from Start = %v, want Credits", s.Focus)
	}
}

func TestConfirmTransitions(t *testing.T) {
	tests := []struct {
		focus Button
		want  State
	}{
		{ButtonStart, GameMenu(TabUnit)},
		{ButtonHelp, State{Screen: ScreenHelp}},
		{ButtonCredits, State{Screen: ScreenCredits}},
	}

	for _, tt := range tests {
		got, effect := MainMenu(tt.focus).Apply(Cmd(CmdConfirm))
		if got != tt.want {
			t.Errorf("confirm on %v = %v, want %v", tt.focus, got, tt.want)
		}
		if effect != EffectNone {
			t.Errorf("confirm on %v effect = %v, want none", tt.focus, effect)
		}
	}
}

func TestCancelTransitions(t *testing.T) {
	tests := []struct {
		name       string
		from       State
		want       State
		wantEffect Effect
	}{
		{"main quits", MainMenu(ButtonHelp), MainMenu(ButtonHelp), EffectQuit},
		{"help returns", State{Screen: ScreenHelp}, Initial(), EffectNone},
		{"credits returns", State{Screen: ScreenCredits}, Initial(), EffectNone},
		{"game quits", GameMenu(TabLog), GameMenu(TabLog), EffectQuit},
	}

	for _, tt := range tests {
		got, effect := tt.from.Apply(Cmd(CmdCancel))
		if got != tt.want || effect != tt.wantEffect {
			t.Errorf("%s: cancel = %v, %v, want %v, %v", tt.name, got, effect, tt.want, tt.wantEffect)
		}
	}
}

func TestStartAndCycleTabScenario(t *testing.T) {
	s := Initial()

	s, _ = s.Apply(Cmd(CmdConfirm))
	if s != GameMenu(TabUnit) {
		t.Fatalf("after confirm = %v, want game/Unit", s)
	}
	s, _ = s.Apply(Cmd(CmdCycleTab))
	if s != GameMenu(TabLog) {
		t.Fatalf("after cycle-tab = %v, want game/Log", s)
	}
	s, _ = s.Apply(Cmd(CmdCycleTab))
	if s != GameMenu(TabUnit) {
		t.Fatalf("after second cycle-tab = %v, want game/Unit", s)
	}
}

func TestGameEffects(t *testing.T) {
	tests := []struct {
		state State
		cmd   Command
		want  Effect
	}{
		{GameMenu(TabUnit), Cmd(CmdNextUnit), EffectNextUnit},
		{GameMenu(TabUnit), Cmd(CmdPrevUnit), EffectPrevUnit},
		{GameMenu(TabUnit), Reassign(2, 3), EffectReassign},
		{GameMenu(TabLog), Cmd(CmdExportLog), EffectExportLog},
		{GameMenu(TabUnit), Cmd(CmdExportLog), EffectNone},
		{GameMenu(TabUnit), Cmd(CmdConfirm), EffectNone},
		// Unit commands mean nothing outside the game view.
		{Initial(), Cmd(CmdNextUnit), EffectNone},
		{Initial(), Reassign(1, 1), EffectNone},
		{State{Screen: ScreenHelp}, Cmd(CmdPrevUnit), EffectNone},
	}

	for _, tt := range tests {
		got, effect := tt.state.Apply(tt.cmd)
		if effect != tt.want {
			t.Errorf("%v.Apply(%v) effect = %v, want %v", tt.state, tt.cmd, effect, tt.want)
		}
		if got != tt.state {
			t.Errorf("%v.Apply(%v) changed state to %v", tt.state, tt.cmd, got)
		}
	}
}

func TestIgnoredCommands(t *testing.T) {
	help := State{Screen: ScreenHelp}
	for _, kind := range []CommandKind{CmdNextFocus, CmdConfirm, CmdCycleTab} {
		if got, _ := help.Apply(Cmd(kind)); got != help {
			t.Errorf("help.Apply(%v) = %v, want unchanged", kind, got)
		}
	}
	main := Initial()
	if got, _ := main.Apply(Cmd(CmdCycleTab)); got != main {
		t.Errorf("main.Apply(cycle-tab) = %v, want unchanged", got)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{Initial(), "main/Start"},
		{GameMenu(TabLog), "game/Log"},
		{State{Screen: ScreenHelp}, "help"},
		{State{Screen: ScreenCredits}, "credits"},
		{State{Screen: Screen(42)}, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State.String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestCommandString(t *testing.T) {
	if got := Reassign(4, 7).String(); got != "reassign-selected(4,7)" {
		t.Errorf("Reassign(4,7).String() = %q", got)
	}
	if got := Cmd(CmdCycleTab).String(); got != "cycle-tab" {
		t.Errorf("Cmd(CmdCycleTab).String() = %q", got)
	}
}
