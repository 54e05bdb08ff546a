package models

import "strings"

// Level identifies a CEFR proficiency bucket used to select a word pool.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"

	// LevelMix is the combined set of all base levels. It is derived, never
	// stored.
	LevelMix Level = "Mix"
)

// BaseLevels returns the stored levels in ascending difficulty order. Mix is
// excluded; it is built from these.
func BaseLevels() []Level {
	return []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}
}

// AllLevels returns every selectable level, Mix last.
func AllLevels() []Level {
	return append(BaseLevels(), LevelMix)
}

// ParseLevel matches a level identifier case-insensitively.
func ParseLevel(s string) (Level, bool) {
	for _, lvl := range AllLevels() {
		if strings.EqualFold(s, string(lvl)) {
			return lvl, true
		}
	}
	return "", false
}
