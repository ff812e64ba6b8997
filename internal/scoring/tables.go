package scoring

import "ippt-coach/internal/domain"

// Maximum points per station.
const (
	MaxRepPoints = 25
	MaxRunPoints = 50
)

// Table looks up station points. Implementations must be non-decreasing in
// performance: more reps never score less, a slower run never scores more.
type Table interface {
	PushUpScore(g domain.Gender, ageGroup, reps int) int
	SitUpScore(g domain.Gender, ageGroup, reps int) int
	RunScore(g domain.Gender, ageGroup, seconds int) int
	MaxPoints(st domain.Station) int
}

// repThresholds[p-1] is the rep count that earns p points in age group 1.
type repThresholds [MaxRepPoints]int

var (
	malePushUps = repThresholds{
		6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30,
		32, 34, 36, 38, 40, 42, 45, 48, 51, 54, 57, 60,
	}
	femalePushUps = repThresholds{
		3, 4, 5, 6, 7, 8, 9, 10, 12, 13, 14, 15, 16,
		18, 19, 20, 22, 23, 25, 27, 29, 31, 33, 35, 37,
	}
	maleSitUps = repThresholds{
		8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32,
		34, 36, 38, 40, 42, 44, 47, 50, 53, 55, 58, 60,
	}
	femaleSitUps = repThresholds{
		5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 27, 29,
		31, 33, 35, 37, 39, 41, 43, 45, 47, 49, 51, 53,
	}
)

// Run standards: the time that still earns full marks in age group 1. Each
// further 10 seconds costs one point, and every older age group gets 10
// seconds of allowance.
const (
	maleFullMarkRun   = 8*60 + 30
	femaleFullMarkRun = 10*60 + 30
	runStepSeconds    = 10
	runAgeAllowance   = 10
)

// StandardTable is the built-in IPPT score table.
type StandardTable struct{}

var _ Table = StandardTable{}

func (StandardTable) PushUpScore(g domain.Gender, ageGroup, reps int) int {
	if g == domain.GenderFemale {
		return repScore(&femalePushUps, ageGroup, reps)
	}
	return repScore(&malePushUps, ageGroup, reps)
}

func (StandardTable) SitUpScore(g domain.Gender, ageGroup, reps int) int {
	if g == domain.GenderFemale {
		return repScore(&femaleSitUps, ageGroup, reps)
	}
	return repScore(&maleSitUps, ageGroup, reps)
}

func (StandardTable) RunScore(g domain.Gender, ageGroup, seconds int) int {
	if !validAgeGroup(ageGroup) || seconds <= 0 {
		return 0
	}
	fullMarks := maleFullMarkRun
	if g == domain.GenderFemale {
		fullMarks = femaleFullMarkRun
	}
	fullMarks += (ageGroup - 1) * runAgeAllowance
	if seconds <= fullMarks {
		return MaxRunPoints
	}
	lost := (seconds - fullMarks + runStepSeconds - 1) / runStepSeconds
	return max(MaxRunPoints-lost, 0)
}

func (StandardTable) MaxPoints(st domain.Station) int {
	if st == domain.StationRun {
		return MaxRunPoints
	}
	return MaxRepPoints
}

// repScore returns the highest point value whose threshold, eased by one rep
// per age group, is met.
func repScore(t *repThresholds, ageGroup, reps int) int {
	if !validAgeGroup(ageGroup) || reps <= 0 {
		return 0
	}
	ease := ageGroup - 1
	points := 0
	for p, need := range t {
		if reps >= max(need-ease, 1) {
			points = p + 1
		}
	}
	return points
}

func validAgeGroup(ag int) bool {
	return ag >= 1 && ag <= len(ageBreakpoints)+1
}
