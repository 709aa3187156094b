package engine

import (
	"math"

	"github.com/abhi23s/productivity-tracker/internal/storage"
)

// levelCurveBase sets the XP scale of the level curve:
// level(e) = floor(log2(e/100 + 1)), so 100 XP reaches level 1, 300 reaches
// level 2, 700 reaches level 3, doubling each step.
const levelCurveBase = 100.0

// LevelForTotalXP returns the level the curve yields for a cumulative XP
// total. Non-positive totals are level 0.
func LevelForTotalXP(totalXP int) int {
	if totalXP <= 0 {
		return 0
	}
	return int(math.Floor(math.Log2(float64(totalXP)/levelCurveBase + 1)))
}

// XPRequiredForLevel is the inverse threshold: the smallest total XP at which
// the curve yields the given level.
func XPRequiredForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	return int(levelCurveBase) * ((1 << uint(level)) - 1)
}

// ExperienceGain computes the XP awarded for one task completion:
// difficulty weight times minutes spent, plus the current streak.
func ExperienceGain(d Difficulty, timeSpentMinutes, streak int) (int, error) {
	w := d.Weight()
	if w == 0 {
		return 0, InvalidDifficultyError{Input: string(d)}
	}
	if timeSpentMinutes < 0 {
		return 0, InvalidTimeError{Minutes: timeSpentMinutes}
	}
	return w*timeSpentMinutes + streak, nil
}

// ProgressResult reports the XP delta and level movement of one completion.
type ProgressResult struct {
	XPGained    int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// applyCompletion accumulates XP on the record and recomputes the level.
// The level is a monotonic floor: it is raised when the curve says so and
// never lowered.
func applyCompletion(rec *storage.PlayerRecord, d Difficulty, timeSpentMinutes int) (ProgressResult, error) {
	gain, err := ExperienceGain(d, timeSpentMinutes, rec.Streak)
	if err != nil {
		return ProgressResult{}, err
	}

	before := rec.Level
	rec.TotalExp += gain
	if lvl := LevelForTotalXP(rec.TotalExp); lvl > rec.Level {
		rec.Level = lvl
	}

	return ProgressResult{
		XPGained:    gain,
		LevelBefore: before,
		LevelAfter:  rec.Level,
		LevelUp:     rec.Level > before,
	}, nil
}
