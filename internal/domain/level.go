package domain

import "strings"

// Level is the estimated writing proficiency of a record.
type Level string

const (
	LevelBeginner          Level = "Beginner"
	LevelIntermediate      Level = "Intermediate"
	LevelUpperIntermediate Level = "Upper Intermediate"
	LevelAdvanced          Level = "Advanced"
	LevelMaster            Level = "Master"
)

// Levels lists all levels from lowest to highest.
var Levels = []Level{
	LevelBeginner, LevelIntermediate, LevelUpperIntermediate, LevelAdvanced, LevelMaster,
}

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelUpperIntermediate, LevelAdvanced, LevelMaster:
		return true
	}
	return false
}

// ParseLevel maps free-form model output onto a Level. Matching ignores case,
// surrounding whitespace and the hyphen in "Upper-Intermediate".
// Unknown values return false.
func ParseLevel(s string) (Level, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " ")), " "))
	for _, l := range Levels {
		if strings.ToLower(string(l)) == key {
			return l, true
		}
	}
	return "", false
}
