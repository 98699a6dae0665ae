// Package models defines the shared data types for scraping and classification.
package models

import "fmt"

// SurgeLevel is a categorical description of reported swarm size.
type SurgeLevel string

const (
	LevelNone     SurgeLevel = "none"
	LevelFew      SurgeLevel = "few"
	LevelModerate SurgeLevel = "moderate"
	LevelMany     SurgeLevel = "many"
	LevelVeryMany SurgeLevel = "very-many"
	LevelUnknown  SurgeLevel = "unknown"
)

// Levels returns all six surge levels in intensity order, unknown last.
func Levels() []SurgeLevel {
	return []SurgeLevel{LevelNone, LevelFew, LevelModerate, LevelMany, LevelVeryMany, LevelUnknown}
}

// Valid reports whether l is one of the six enumerated levels.
func (l SurgeLevel) Valid() bool {
	switch l {
	case LevelNone, LevelFew, LevelModerate, LevelMany, LevelVeryMany, LevelUnknown:
		return true
	}
	return false
}

// Intensity returns the position of l in the intensity order
// none < few < moderate < many < very-many. Unknown is not comparable
// and returns -1.
func (l SurgeLevel) Intensity() int {
	switch l {
	case LevelNone:
		return 0
	case LevelFew:
		return 1
	case LevelModerate:
		return 2
	case LevelMany:
		return 3
	case LevelVeryMany:
		return 4
	}
	return -1
}

// ParseSurgeLevel converts a wire string into a SurgeLevel.
func ParseSurgeLevel(s string) (SurgeLevel, error) {
	l := SurgeLevel(s)
	if !l.Valid() {
		return LevelUnknown, fmt.Errorf("invalid surge level: %q", s)
	}
	return l, nil
}
