package cli

import (
	"strconv"
	"strings"
)

// command returns the first token of an input line, lowercased.
func command(line string) string {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return ""
	}
	return strings.ToLower(parts[0])
}

// splitCommand returns the first token of an input line, lowercased, and
// the remainder unchanged.
func splitCommand(line string) (string, string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", ""
	}
	return strings.ToLower(parts[0]), strings.Join(parts[1:], " ")
}

// parseIndex converts a 1-based item number argument into an index into a
// page of n items, reporting false for anything out of range.
func parseIndex(arg string, n int) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v - 1, true
}
