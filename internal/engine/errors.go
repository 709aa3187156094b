package engine

import "fmt"

// InvalidDifficultyError reports input outside the closed difficulty set.
type InvalidDifficultyError struct {
	Input string
}

func (e InvalidDifficultyError) Error() string {
	return fmt.Sprintf("invalid difficulty %q (want Easy, Medium, Hard or Legendary)", e.Input)
}

// InvalidTimeError reports a negative time-spent value.
type InvalidTimeError struct {
	Minutes int
}

func (e InvalidTimeError) Error() string {
	return fmt.Sprintf("time spent must be a non-negative number of minutes, got %d", e.Minutes)
}

// InvalidDateError reports a due date that does not parse as a calendar date.
type InvalidDateError struct {
	Input string
	Err   error
}

func (e InvalidDateError) Error() string {
	return fmt.Sprintf("invalid due date %q (want YYYY-MM-DD)", e.Input)
}

func (e InvalidDateError) Unwrap() error { return e.Err }
