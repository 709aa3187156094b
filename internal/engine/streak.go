package engine

import "github.com/abhi23s/productivity-tracker/internal/storage"

// StreakResult describes what a login did to the consecutive-day streak.
type StreakResult struct {
	Streak    int
	First     bool // first login ever recorded
	Extended  bool // exactly one day after the previous login
	Reset     bool // gap of more than one day
	SameDay   bool // repeated login on the same day
	ClockSkew bool // today is earlier than last_login; nothing was changed
}

// applyLogin advances streak state for a login on today. Streak and
// last_login are touched only here, never by task logging. A login dated
// before last_login is left as a no-op so a skewed clock cannot corrupt the
// streak.
func applyLogin(rec *storage.PlayerRecord, today storage.Date) StreakResult {
	var res StreakResult

	if rec.LastLogin == nil {
		rec.Streak = 1
		res.First = true
	} else {
		switch delta := today.DaysSince(*rec.LastLogin); {
		case delta == 0:
			res.SameDay = true
		case delta == 1:
			rec.Streak++
			res.Extended = true
		case delta > 1:
			rec.Streak = 1
			res.Reset = true
		default:
			res.ClockSkew = true
			res.Streak = rec.Streak
			return res
		}
	}

	d := today
	rec.LastLogin = &d
	res.Streak = rec.Streak
	return res
}
