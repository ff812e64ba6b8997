package scoring

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidRunTime is returned for run times that are not M:SS or M.SS with
// seconds below 60.
var ErrInvalidRunTime = errors.New("scoring: invalid run time")

var (
	clockPattern  = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	legacyPattern = regexp.MustCompile(`^(\d{1,2})\.(\d{2})$`)
)

// ParseRunTime converts a run time to seconds. It accepts the clock form
// "11:30" and the stored form "11.30", where the digits after the dot are
// seconds rather than a decimal fraction of a minute.
func ParseRunTime(s string) (int, error) {
	s = strings.TrimSpace(s)
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		m = legacyPattern.FindStringSubmatch(s)
	}
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRunTime, s)
	}
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	if seconds >= 60 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRunTime, s)
	}
	return minutes*60 + seconds, nil
}

// EncodeRunTime turns user input in M:SS or MM:SS form into the stored
// "M.SS" form, with seconds zero-padded to two digits.
func EncodeRunTime(clock string) (string, error) {
	clock = strings.TrimSpace(clock)
	if !clockPattern.MatchString(clock) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRunTime, clock)
	}
	total, err := ParseRunTime(clock)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%02d", total/60, total%60), nil
}

// FormatRunTime renders seconds as M:SS.
func FormatRunTime(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
