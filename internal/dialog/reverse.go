package dialog

import (
	"ippt-coach/internal/domain"
	"ippt-coach/internal/scoring"
)

// reverse collects gender, age and, when missing, the target band. It then
// asks about each station in turn and answers once two are resolved.
func (m *Machine) reverse(t *turn) (domain.Reply, bool) {
	r := t.session.Flow.Reverse
	if r == nil {
		t.session.StartReverse("")
		return domain.Reply{Text: startReverseText("")}, true
	}

	switch r.Step {
	case domain.ReverseGender:
		g, ok := domain.ParseGender(t.msg)
		if !ok {
			return m.reverseInvalid(t, string(r.Step), invalidGender), true
		}
		r.Gender = g
		r.Step = domain.ReverseAge
		return domain.Reply{Text: promptAge}, true

	case domain.ReverseAge:
		age, ok := parseAge(t.msg)
		if !ok {
			return m.reverseInvalid(t, string(r.Step), invalidAge), true
		}
		r.Age = age
		if r.Target == "" {
			r.Step = domain.ReverseTarget
			return domain.Reply{Text: promptTarget}, true
		}
		return openStations(r), true

	case domain.ReverseTarget:
		target, ok := domain.ParseTarget(t.msg)
		if !ok {
			return m.reverseInvalid(t, string(r.Step), invalidTarget), true
		}
		r.Target = target
		return openStations(r), true

	case domain.ReverseStations:
		return m.station(t, r), true
	}

	t.session.ClearFlow()
	return domain.Reply{Text: replyFlowError}, true
}

func openStations(r *domain.ReverseCheck) domain.Reply {
	r.Step = domain.ReverseStations
	r.Stations[0].Ask = domain.AskAwaitingYesNo
	return domain.Reply{Text: knowQuestion(domain.Stations[0])}
}

// station handles an answer for the station currently being asked about.
func (m *Machine) station(t *turn, r *domain.ReverseCheck) domain.Reply {
	idx := r.Current()
	if idx < 0 {
		return m.solve(t, r)
	}
	st := domain.Stations[idx]
	slot := &r.Stations[idx]

	switch slot.Ask {
	case domain.AskNotAsked:
		slot.Ask = domain.AskAwaitingYesNo
		return domain.Reply{Text: knowQuestion(st)}

	case domain.AskAwaitingYesNo:
		yes, ok := parseYesNo(t.msg)
		if !ok {
			return m.reverseInvalid(t, string(st), invalidYesNo)
		}
		if yes {
			slot.Ask = domain.AskAwaitingValue
			return domain.Reply{Text: valuePrompt(st)}
		}
		slot.Ask = domain.AskDone
		slot.Outcome = domain.OutcomeSkipped

	case domain.AskAwaitingValue:
		if st == domain.StationRun {
			encoded, err := scoring.EncodeRunTime(t.msg)
			if err != nil {
				return m.reverseInvalid(t, string(st), invalidRunTime)
			}
			slot.RunTime = encoded
		} else {
			n, ok := parseReps(t.msg)
			if !ok {
				return m.reverseInvalid(t, string(st), invalidValue(st))
			}
			slot.Reps = n
		}
		slot.Ask = domain.AskDone
		slot.Outcome = domain.OutcomeValue
	}

	if r.Resolved() >= 2 {
		return m.solve(t, r)
	}
	next := r.Current()
	if next < 0 {
		return m.solve(t, r)
	}
	r.Stations[next].Ask = domain.AskAwaitingYesNo
	return domain.Reply{Text: knowQuestion(domain.Stations[next])}
}

// solve answers with the requirement for the unresolved station and ends the flow.
func (m *Machine) solve(t *turn, r *domain.ReverseCheck) domain.Reply {
	q := scoring.TargetQuery{Gender: r.Gender, Age: r.Age, Target: r.Target}
	for i, slot := range r.Stations {
		if slot.Outcome != domain.OutcomeValue {
			continue
		}
		reps := slot.Reps
		switch domain.Stations[i] {
		case domain.StationPushUp:
			q.PushUps = &reps
		case domain.StationSitUp:
			q.SitUps = &reps
		case domain.StationRun:
			q.RunTime = slot.RunTime
		}
	}
	if st, ok := r.Unresolved(); ok {
		q.SolveFor = st
	}
	t.session.ClearFlow()
	return domain.Reply{Text: m.engine.RequiredForTarget(q)}
}

func (m *Machine) reverseInvalid(t *turn, key, text string) domain.Reply {
	if t.session.Flow.Reverse.Fail(key) >= maxRetries {
		return cancel(t)
	}
	return domain.Reply{Text: text}
}

func parseYesNo(s string) (yes, ok bool) {
	switch s {
	case "y", "yes", "yeah", "yep", "sure", "ok":
		return true, true
	case "n", "no", "nope", "nah":
		return false, true
	}
	return false, false
}
