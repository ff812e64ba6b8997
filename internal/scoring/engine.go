package scoring

import (
	"errors"
	"fmt"

	"ippt-coach/internal/domain"
)

// Band is the award classification of a total score.
type Band string

const (
	BandGold   Band = "Gold"
	BandSilver Band = "Silver"
	BandPass   Band = "Pass"
	BandFail   Band = "Fail"
)

// BandFor classifies a total score.
func BandFor(total int) Band {
	switch {
	case total >= 85:
		return BandGold
	case total >= 75:
		return BandSilver
	case total >= 61:
		return BandPass
	}
	return BandFail
}

var (
	ErrInvalidAge    = errors.New("scoring: age outside 18-45")
	ErrInvalidReps   = errors.New("scoring: negative repetition count")
	ErrInvalidGender = errors.New("scoring: unknown gender")
)

// Result is a forward score with its per-station breakdown.
type Result struct {
	PushUps int
	SitUps  int
	Run     int
	Total   int
	Band    Band
}

func (r Result) String() string {
	var verdict string
	switch r.Band {
	case BandGold:
		verdict = fmt.Sprintf("🎉 Congrats! You scored %d, that is Gold!", r.Total)
	case BandSilver:
		verdict = fmt.Sprintf("👏 Well done! You scored %d, that is Silver!", r.Total)
	case BandPass:
		verdict = fmt.Sprintf("👍 You scored %d, that is a Pass!", r.Total)
	default:
		verdict = fmt.Sprintf("😔 You scored %d, below the Pass mark. Keep training!", r.Total)
	}
	return fmt.Sprintf("Sit-up score: %d, Push-up score: %d, Run score: %d → Total: %d. %s",
		r.SitUps, r.PushUps, r.Run, r.Total, verdict)
}

// Engine scores IPPT results against a Table.
type Engine struct {
	table Table
}

// NewEngine returns an Engine over t, or over StandardTable when t is nil.
func NewEngine(t Table) *Engine {
	if t == nil {
		t = StandardTable{}
	}
	return &Engine{table: t}
}

// Forward scores a full set of results. runTime is in M.SS or M:SS form.
func (e *Engine) Forward(g domain.Gender, age, pushUps, sitUps int, runTime string) (Result, error) {
	if g != domain.GenderMale && g != domain.GenderFemale {
		return Result{}, ErrInvalidGender
	}
	ag := AgeGroup(age)
	if ag == -1 {
		return Result{}, ErrInvalidAge
	}
	if pushUps < 0 || sitUps < 0 {
		return Result{}, ErrInvalidReps
	}
	seconds, err := ParseRunTime(runTime)
	if err != nil {
		return Result{}, err
	}
	r := Result{
		PushUps: e.table.PushUpScore(g, ag, pushUps),
		SitUps:  e.table.SitUpScore(g, ag, sitUps),
		Run:     e.table.RunScore(g, ag, seconds),
	}
	r.Total = r.PushUps + r.SitUps + r.Run
	r.Band = BandFor(r.Total)
	return r, nil
}

// Reverse search bounds.
const (
	maxSearchReps  = 80
	fastestRunMins = 6
	slowestRunMins = 20
)

// Unreachable is returned by ReverseRun when no time in range scores enough.
const Unreachable = "unreachable"

// ReverseReps returns the fewest reps, scanning 0..80, that score at least
// target points at a rep station, or -1.
func (e *Engine) ReverseReps(st domain.Station, g domain.Gender, ageGroup, target int) int {
	score := e.table.PushUpScore
	if st == domain.StationSitUp {
		score = e.table.SitUpScore
	}
	for reps := 0; reps <= maxSearchReps; reps++ {
		if score(g, ageGroup, reps) >= target {
			return reps
		}
	}
	return -1
}

// ReverseRun returns the slowest M:SS time between 6:00 and 20:59 that
// scores at least target points, or Unreachable. The scan runs from the
// least to the most effort and stops at the first passing time.
func (e *Engine) ReverseRun(g domain.Gender, ageGroup, target int) string {
	for m := slowestRunMins; m >= fastestRunMins; m-- {
		for s := 59; s >= 0; s-- {
			t := m*60 + s
			if e.table.RunScore(g, ageGroup, t) >= target {
				return FormatRunTime(t)
			}
		}
	}
	return Unreachable
}

// StationScore scores a single station. Run values are M:SS or M.SS strings;
// rep values are given in reps.
func (e *Engine) StationScore(st domain.Station, g domain.Gender, ageGroup, reps int, runTime string) (int, error) {
	switch st {
	case domain.StationPushUp:
		return e.table.PushUpScore(g, ageGroup, reps), nil
	case domain.StationSitUp:
		return e.table.SitUpScore(g, ageGroup, reps), nil
	case domain.StationRun:
		seconds, err := ParseRunTime(runTime)
		if err != nil {
			return 0, err
		}
		return e.table.RunScore(g, ageGroup, seconds), nil
	}
	return 0, fmt.Errorf("scoring: unknown station %q", st)
}
