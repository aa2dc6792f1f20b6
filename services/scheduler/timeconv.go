package scheduler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errMissingMinutes = errors.New("expected hours and minutes separated by ':'")

// ToMinutes converts "HH:MM" into minutes since midnight. Digits need no padding
// ("9:5" is 545) and components after the minutes are ignored. No range checks
// are applied.
func ToMinutes(value string) (int, error) {
	h, m, err := splitClock(value)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// ToTime renders minutes since midnight as zero-padded "HH:MM".
func ToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func splitClock(value string) (int, int, error) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return 0, 0, &MalformedTimeError{Value: value, Err: errMissingMinutes}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, &MalformedTimeError{Value: value, Err: err}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, &MalformedTimeError{Value: value, Err: err}
	}
	return h, m, nil
}
