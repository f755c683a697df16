package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateTaskID creates a standardized, human-readable correlation ID
// for a task or chain instance.
// Format: {kind}-{itemOrTarget}-{8charHexUUID}
//
// Example:
//   - Input: kind="craft", subject="iron_pickaxe"
//   - Output: "craft-iron_pickaxe-a3f8e2b1"
//
// The generated IDs are short, human-readable, and globally unique via
// their UUID suffix, suitable for log lines and metric labels.
func GenerateTaskID(kind, subject string) string {
	shortUUID := generateShortUUID()
	if subject == "" {
		return kind + "-" + shortUUID
	}
	return kind + "-" + normalizeSubject(subject) + "-" + shortUUID
}

// normalizeSubject collapses whitespace in a free-form subject (an
// item name, a destination label) into an ID-safe token.
func normalizeSubject(subject string) string {
	return strings.ReplaceAll(strings.TrimSpace(subject), " ", "_")
}

// generateShortUUID creates an 8-character hex string from a UUID.
// This provides sufficient uniqueness while keeping IDs compact.
func generateShortUUID() string {
	id := uuid.New()
	// Remove hyphens and take first 8 characters
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
