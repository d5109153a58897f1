package cmd

import (
	"errors"

	"github.com/AlecAivazis/survey/v2/terminal"
)

// InterruptExitCode is the process exit code used when the user aborts a
// prompt with Ctrl+C.
const InterruptExitCode = 130

// IsInterrupted reports whether err means the user interrupted a prompt.
func IsInterrupted(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}
