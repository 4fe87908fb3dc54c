// Package errmsg formats failures for the status line and the terminal.
package errmsg

import "fmt"

// Op names the operation that failed, phrased to follow "Failed to".
type Op string

const (
	OpTrackCreate   Op = "create track"
	OpTrackDuration Op = "read track duration"

	OpPlaylistRename Op = "rename playlist"

	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format returns "Failed to <op>: <err>", or "" for a nil error.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith is Format with the subject quoted after the operation.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s %q: %v", op, subject, err)
}
