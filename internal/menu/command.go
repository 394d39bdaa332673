package menu

import "fmt"

// CommandKind enumerates the discrete input commands.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdNextFocus
	CmdPrevFocus
	CmdConfirm
	CmdCancel
	CmdCycleTab
	CmdNextUnit
	CmdPrevUnit
	CmdReassign
	CmdExportLog
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "none"
	case CmdNextFocus:
		return "next-focus"
	case CmdPrevFocus:
		return "prev-focus"
	case CmdConfirm:
		return "confirm"
	case CmdCancel:
		return "cancel"
	case CmdCycleTab:
		return "cycle-tab"
	case CmdNextUnit:
		return "next-unit"
	case CmdPrevUnit:
		return "prev-unit"
	case CmdReassign:
		return "reassign-selected"
	case CmdExportLog:
		return "export-log"
	default:
		return "unknown"
	}
}

// Command is one input command. X and Y are the destination of
// reassign-selected and are ignored by every other kind.
type Command struct {
	Kind CommandKind
	X, Y int
}

// Cmd returns a command without payload.
func Cmd(kind CommandKind) Command {
	return Command{Kind: kind}
}

// Reassign returns a reassign-selected command targeting (x, y).
func Reassign(x, y int) Command {
	return Command{Kind: CmdReassign, X: x, Y: y}
}

// String returns the command name, with the target for reassign.
func (c Command) String() string {
	if c.Kind == CmdReassign {
		return fmt.Sprintf("%s(%d,%d)", c.Kind, c.X, c.Y)
	}
	return c.Kind.String()
}

// Effect is the side effect a transition asks the caller to perform.
type Effect int

const (
	EffectNone Effect = iota
	// EffectQuit ends the session.
	EffectQuit
	// EffectNextUnit moves the selection cursor forward.
	EffectNextUnit
	// EffectPrevUnit moves the selection cursor backward.
	EffectPrevUnit
	// EffectReassign assigns GoTo(command X, Y) to the selected unit.
	EffectReassign
	// EffectExportLog copies the game log out of the process.
	EffectExportLog
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectQuit:
		return "quit"
	case EffectNextUnit:
		return "next_unit"
	case EffectPrevUnit:
		return "prev_unit"
	case EffectReassign:
		return "reassign"
	case EffectExportLog:
		return "export_log"
	default:
		return "unknown"
	}
}
