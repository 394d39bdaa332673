package menu

// Apply returns the state after cmd and the effect the caller must perform.
// Commands that have no meaning in the current state leave it unchanged.
func (s State) Apply(cmd Command) (State, Effect) {
	switch s.Screen {
	case ScreenMain:
		return s.applyMain(cmd)
	case ScreenHelp, ScreenCredits:
		if cmd.Kind == CmdCancel {
			return Initial(), EffectNone
		}
		return s, EffectNone
	case ScreenGame:
		return s.applyGame(cmd)
	default:
		return s, EffectNone
	}
}

func (s State) applyMain(cmd Command) (State, Effect) {
	switch cmd.Kind {
	case CmdNextFocus:
		return MainMenu(s.Focus.Next()), EffectNone
	case CmdPrevFocus:
		return MainMenu(s.Focus.Prev()), EffectNone
	case CmdConfirm:
		switch s.Focus {
		case ButtonStart:
			return GameMenu(TabUnit), EffectNone
		case ButtonHelp:
			return State{Screen: ScreenHelp}, EffectNone
		case ButtonCredits:
			return State{Screen: ScreenCredits}, EffectNone
		}
		return s, EffectNone
	case CmdCancel:
		return s, EffectQuit
	default:
		return s, EffectNone
	}
}

func (s State) applyGame(cmd Command) (State, Effect) {
	switch cmd.Kind {
	case CmdCycleTab:
		return GameMenu(s.Tab.Next()), EffectNone
	case CmdCancel:
		return s, EffectQuit
	case CmdNextUnit:
		return s, EffectNextUnit
	case CmdPrevUnit:
		return s, EffectPrevUnit
	case CmdReassign:
		return s, EffectReassign
	case CmdExportLog:
		if s.Tab == TabLog {
			return s, EffectExportLog
		}
		return s, EffectNone
	default:
		return s, EffectNone
	}
}
