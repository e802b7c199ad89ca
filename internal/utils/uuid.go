package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace IDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, or a random UUIDv4 when the v7
// clock sequence cannot be read.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// Accept returns the canonical form of an incoming trace ID. Anything that
// does not parse as a UUID is refused so it never reaches the logs.
func (g *UUIDGenerator) Accept(traceID string) (string, bool) {
	if traceID == "" {
		return "", false
	}
	id, err := uuid.Parse(traceID)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
