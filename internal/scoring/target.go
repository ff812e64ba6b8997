package scoring

import (
	"fmt"
	"strings"

	"ippt-coach/internal/domain"
)

// TargetQuery asks what the missing station needs for a band. Nil PushUps or
// SitUps and an empty RunTime mark a station as unknown.
type TargetQuery struct {
	Gender  domain.Gender
	Age     int
	Target  domain.Target
	PushUps *int
	SitUps  *int
	RunTime string
	// SolveFor pins the station to solve for. When empty, or when that
	// station already has a value, the first unknown station is used.
	SolveFor domain.Station
}

type stationPoints struct {
	station domain.Station
	points  int
}

// RequiredForTarget explains how many points, and what performance, the
// unknown station needs for the target band.
func (e *Engine) RequiredForTarget(q TargetQuery) string {
	ag := AgeGroup(q.Age)
	if ag == -1 {
		return "⚠️ Invalid age for IPPT categories."
	}

	var known []stationPoints
	missing := make(map[domain.Station]bool, len(domain.Stations))
	for _, st := range domain.Stations {
		pts, ok := e.knownScore(st, q, ag)
		if !ok {
			missing[st] = true
			continue
		}
		known = append(known, stationPoints{station: st, points: pts})
	}

	unknown, ok := pickUnknown(q.SolveFor, missing)
	if !ok {
		return "All station scores are already provided. No need for reverse calculation."
	}

	current := 0
	for _, k := range known {
		current += k.points
	}
	target := q.Target
	if target == "" {
		target = domain.TargetPass
	}
	needed := target.RequiredTotal() - current
	label := strings.ToUpper(string(target))

	if limit := e.table.MaxPoints(unknown); needed > limit {
		return fmt.Sprintf("❌ Based on your current scores, reaching %s is not possible.\n"+
			"You need %d points in '%s', but max for that station is %d.", label, needed, unknown, limit)
	}
	needed = max(needed, target.StationFloor())

	return fmt.Sprintf("🎯 To reach %s:\n• Known: %s\n• Required in '%s': %d pts\n\n%s",
		label, describeKnown(known), unknown, needed, e.suggest(unknown, q.Gender, ag, needed))
}

func (e *Engine) knownScore(st domain.Station, q TargetQuery, ag int) (int, bool) {
	switch st {
	case domain.StationPushUp:
		if q.PushUps == nil {
			return 0, false
		}
		return e.table.PushUpScore(q.Gender, ag, *q.PushUps), true
	case domain.StationSitUp:
		if q.SitUps == nil {
			return 0, false
		}
		return e.table.SitUpScore(q.Gender, ag, *q.SitUps), true
	case domain.StationRun:
		if q.RunTime == "" {
			return 0, false
		}
		seconds, err := ParseRunTime(q.RunTime)
		if err != nil {
			return 0, false
		}
		return e.table.RunScore(q.Gender, ag, seconds), true
	}
	return 0, false
}

func pickUnknown(preferred domain.Station, missing map[domain.Station]bool) (domain.Station, bool) {
	if preferred != "" && missing[preferred] {
		return preferred, true
	}
	for _, st := range domain.Stations {
		if missing[st] {
			return st, true
		}
	}
	return "", false
}

func describeKnown(known []stationPoints) string {
	if len(known) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(known))
	for _, k := range known {
		parts = append(parts, fmt.Sprintf("%s: %d pts", k.station, k.points))
	}
	return strings.Join(parts, ", ")
}

func (e *Engine) suggest(st domain.Station, g domain.Gender, ag, needed int) string {
	switch st {
	case domain.StationPushUp, domain.StationSitUp:
		icon := "🏋️"
		if st == domain.StationSitUp {
			icon = "🧍"
		}
		reps := e.ReverseReps(st, g, ag, needed)
		if reps < 0 {
			return fmt.Sprintf("%s You need at least %d points for %s, which is not reachable within %d reps.",
				icon, needed, st.Label(), maxSearchReps)
		}
		return fmt.Sprintf("%s You need at least %d points for %s → estimated %d reps.", icon, needed, st.Label(), reps)
	case domain.StationRun:
		t := e.ReverseRun(g, ag, needed)
		if t == Unreachable {
			return fmt.Sprintf("🏃 You need at least %d points for the %s, which is not reachable within %d minutes.",
				needed, st.Label(), slowestRunMins)
		}
		return fmt.Sprintf("🏃 You need at least %d points for the %s → approximately %s minutes.", needed, st.Label(), t)
	}
	return "⚠️ Unknown station type."
}
