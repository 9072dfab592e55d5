package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque user-facing identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh identifier, preferring UUIDv7 for its time-sorted
// layout and falling back to a random UUIDv4 when the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s is a syntactically valid UUID of any version.
// It performs no store access; malformed identifiers are rejected before any
// query is issued.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
