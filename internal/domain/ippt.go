package domain

import "strings"

// Gender selects the score table column.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender accepts the exact tokens m, male, f and female.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return GenderMale, true
	case "f", "female":
		return GenderFemale, true
	}
	return "", false
}

// Target is an IPPT award band a user aims for.
type Target string

const (
	TargetPass   Target = "pass"
	TargetSilver Target = "silver"
	TargetGold   Target = "gold"
)

// ParseTarget accepts pass, silver and gold in any case.
func ParseTarget(s string) (Target, bool) {
	switch t := Target(strings.ToLower(strings.TrimSpace(s))); t {
	case TargetPass, TargetSilver, TargetGold:
		return t, true
	}
	return "", false
}

// RequiredTotal is the minimum total score for the band.
func (t Target) RequiredTotal() int {
	switch t {
	case TargetGold:
		return 85
	case TargetSilver:
		return 75
	}
	return 61
}

// StationFloor is the least a single station is expected to contribute
// towards the band.
func (t Target) StationFloor() int {
	switch t {
	case TargetGold:
		return 21
	case TargetSilver:
		return 15
	}
	return 1
}

// Station identifies one of the three measured exercises.
type Station string

const (
	StationPushUp Station = "push-up"
	StationSitUp  Station = "sit-up"
	StationRun    Station = "runtime"
)

// Stations lists the stations in the order the dialogs visit them.
var Stations = [3]Station{StationPushUp, StationSitUp, StationRun}

// Label is the user-facing station name.
func (s Station) Label() string {
	switch s {
	case StationPushUp:
		return "Push-Ups"
	case StationSitUp:
		return "Sit-Ups"
	case StationRun:
		return "2.4km run"
	}
	return string(s)
}
