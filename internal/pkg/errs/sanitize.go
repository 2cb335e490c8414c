package errs

import "strings"

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// sanitize collapses line breaks so every message fits on one log line.
func sanitize(msg string) string {
	return newlineReplacer.Replace(msg)
}
