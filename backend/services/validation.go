// ABOUTME: Input validation for request parameters
// ABOUTME: Checks session IDs and row indexes before they reach the session store

package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// sessionIDPattern matches 32 random bytes encoded as padded base64url
var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{43}=$`)

// sanitizeForLog removes control characters from strings to prevent log injection
// when including user input in error messages
func sanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}

// ValidateSessionID validates that a client-supplied session ID has the generated format
func ValidateSessionID(id string) error {
	if !sessionIDPattern.MatchString(id) {
		return fmt.Errorf("invalid session ID format: %s", sanitizeForLog(truncate(id, 64)))
	}
	return nil
}

// ParseRowIndex parses a zero-based row index from a path segment
func ParseRowIndex(raw string) (int, error) {
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid row index: %s", sanitizeForLog(truncate(raw, 32)))
	}
	return idx, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
