package logutil

import "strings"

// SanitizeForLog flattens user-provided strings (URLs, listing names,
// hostnames) onto a single log line. Newlines and tabs become spaces and
// other control characters are dropped so a crafted value cannot forge
// extra log entries.
func SanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case r < 32 || r == 0x7f:
			return -1
		}
		return r
	}, s)
}
