package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewConnectionID creates a standardized, human-readable connection ID.
// Format: conn-{from}-{to}-{8charHexUUID}
//
// Example:
//   - Input: from=0, to=3
//   - Output: "conn-0-3-a3f8e2b1"
//
// The endpoints make logs and CLI output self-describing; the UUID suffix
// keeps IDs unique even after a connection between the same pair is removed
// and recreated.
func NewConnectionID(from, to int) string {
	return fmt.Sprintf("conn-%d-%d-%s", from, to, shortUUID())
}

// shortUUID creates an 8-character hex string from a UUID.
// This provides sufficient uniqueness while keeping IDs compact.
func shortUUID() string {
	id := uuid.New()
	return id.String()[:8]
}
