package engine

import (
	"errors"
	"testing"
)

func TestLevelCurveBoundaries(t *testing.T) {
	cases := []struct {
		totalXP int
		want    int
	}{
		{0, 0},
		{31, 0},
		{99, 0},
		{100, 1},
		{299, 1},
		{300, 2},
		{699, 2},
		{700, 3},
	}
	for _, c := range cases {
		if got := LevelForTotalXP(c.totalXP); got != c.want {
			t.Fatalf("LevelForTotalXP(%d)=%d, want %d", c.totalXP, got, c.want)
		}
	}
}

func TestLevelCurveIsIdempotentAndMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 5000; xp += 7 {
		l1 := LevelForTotalXP(xp)
		l2 := LevelForTotalXP(xp)
		if l1 != l2 {
			t.Fatalf("LevelForTotalXP(%d) unstable: %d then %d", xp, l1, l2)
		}
		if l1 < prev {
			t.Fatalf("level decreased at xp=%d: %d -> %d", xp, prev, l1)
		}
		prev = l1
	}
}

func TestXPRequiredForLevelInvertsCurve(t *testing.T) {
	if got := XPRequiredForLevel(1); got != 100 {
		t.Fatalf("XPRequiredForLevel(1)=%d, want 100", got)
	}
	if got := XPRequiredForLevel(2); got != 300 {
		t.Fatalf("XPRequiredForLevel(2)=%d, want 300", got)
	}
	for level := 1; level <= 10; level++ {
		req := XPRequiredForLevel(level)
		if got := LevelForTotalXP(req); got != level {
			t.Fatalf("LevelForTotalXP(%d)=%d, want %d", req, got, level)
		}
		if got := LevelForTotalXP(req - 1); got != level-1 {
			t.Fatalf("LevelForTotalXP(%d)=%d, want %d", req-1, got, level-1)
		}
	}
}

func TestExperienceGainWeights(t *testing.T) {
	cases := []struct {
		diff    Difficulty
		minutes int
		streak  int
		want    int
	}{
		{DifficultyEasy, 30, 1, 31},
		{DifficultyMedium, 30, 1, 61},
		{DifficultyHard, 30, 1, 91},
		{DifficultyLegendary, 30, 1, 151},
		{DifficultyEasy, 0, 7, 7},
	}
	for _, c := range cases {
		got, err := ExperienceGain(c.diff, c.minutes, c.streak)
		if err != nil {
			t.Fatalf("ExperienceGain(%s, %d, %d): %v", c.diff, c.minutes, c.streak, err)
		}
		if got != c.want {
			t.Fatalf("ExperienceGain(%s, %d, %d)=%d, want %d", c.diff, c.minutes, c.streak, got, c.want)
		}
	}
}

func TestExperienceGainRejectsBadInput(t *testing.T) {
	var diffErr InvalidDifficultyError
	if _, err := ExperienceGain(Difficulty("Impossible"), 10, 1); !errors.As(err, &diffErr) {
		t.Fatalf("expected InvalidDifficultyError, got %v", err)
	}

	var timeErr InvalidTimeError
	if _, err := ExperienceGain(DifficultyEasy, -5, 1); !errors.As(err, &timeErr) {
		t.Fatalf("expected InvalidTimeError, got %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		" easy ":    DifficultyEasy,
		"MEDIUM":    DifficultyMedium,
		"hard":      DifficultyHard,
		"LeGeNdArY": DifficultyLegendary,
	}
	for input, want := range cases {
		got, err := ParseDifficulty(input)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseDifficulty(%q)=%q, want %q", input, got, want)
		}
	}

	var diffErr InvalidDifficultyError
	if _, err := ParseDifficulty("impossible"); !errors.As(err, &diffErr) {
		t.Fatalf("expected InvalidDifficultyError, got %v", err)
	}
}

func TestNormalizeTaskName(t *testing.T) {
	for _, input := range []string{"  yoga ", "Yoga", "YOGA", "yoga"} {
		if got := NormalizeTaskName(input); got != "Yoga" {
			t.Fatalf("NormalizeTaskName(%q)=%q, want Yoga", input, got)
		}
	}
	if got := NormalizeTaskName("deep work"); got != "Deep Work" {
		t.Fatalf("NormalizeTaskName(deep work)=%q, want Deep Work", got)
	}
}
