package ui

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrNoClipboard is returned when the platform has no clipboard utility.
var ErrNoClipboard = errors.New("clipboard unsupported on this system")

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return clipboard.WriteAll(text)
}
