package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Difficulty labels the effort bucket a completed task is logged under.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "Easy"
	DifficultyMedium    Difficulty = "Medium"
	DifficultyHard      Difficulty = "Hard"
	DifficultyLegendary Difficulty = "Legendary"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyLegendary:
		return true
	default:
		return false
	}
}

// Weight is the XP multiplier per minute spent. Zero for invalid values.
func (d Difficulty) Weight() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	case DifficultyLegendary:
		return 5
	default:
		return 0
	}
}

// Difficulties lists the closed set in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyLegendary}
}

var titleCaser = cases.Title(language.English)

// ParseDifficulty parses user input to a Difficulty, tolerating case and
// surrounding whitespace.
func ParseDifficulty(input string) (Difficulty, error) {
	d := Difficulty(titleCaser.String(strings.TrimSpace(input)))
	if !d.IsValid() {
		return "", InvalidDifficultyError{Input: input}
	}
	return d, nil
}

// NormalizeTaskName trims and title-cases a raw task name so that inputs
// differing only in case or whitespace collapse to one ledger key.
func NormalizeTaskName(raw string) string {
	return titleCaser.String(strings.TrimSpace(raw))
}

// NormalizeUsername upper-cases the player name used as the record key.
func NormalizeUsername(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
