package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID generates a new UUID string
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateRunID returns a short id for one program run, e.g. "run-3f9c1a2b7d4e"
func GenerateRunID() string {
	id := strings.ReplaceAll(GenerateUUID(), "-", "")
	return "run-" + id[:12]
}
