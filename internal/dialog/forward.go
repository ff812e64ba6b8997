package dialog

import (
	"log/slog"
	"strconv"

	"ippt-coach/internal/domain"
	"ippt-coach/internal/scoring"
)

// forward collects gender, age, push-ups, sit-ups and run time, then scores
// them. The raw message is used as the answer; no intent is consulted.
func (m *Machine) forward(t *turn) (domain.Reply, bool) {
	f := t.session.Flow.Forward
	if f == nil {
		t.session.StartForward()
		return domain.Reply{Text: promptGender}, true
	}

	switch f.Step {
	case domain.ForwardGender:
		g, ok := domain.ParseGender(t.msg)
		if !ok {
			return m.forwardInvalid(t, invalidGender), true
		}
		f.Gender = g
		f.Step = domain.ForwardAge
		return domain.Reply{Text: promptAge}, true

	case domain.ForwardAge:
		age, ok := parseAge(t.msg)
		if !ok {
			return m.forwardInvalid(t, invalidAge), true
		}
		f.Age = age
		f.Step = domain.ForwardPushUps
		return domain.Reply{Text: promptPushUps}, true

	case domain.ForwardPushUps:
		n, ok := parseReps(t.msg)
		if !ok {
			return m.forwardInvalid(t, invalidValue(domain.StationPushUp)), true
		}
		f.PushUps = n
		f.Step = domain.ForwardSitUps
		return domain.Reply{Text: promptSitUps}, true

	case domain.ForwardSitUps:
		n, ok := parseReps(t.msg)
		if !ok {
			return m.forwardInvalid(t, invalidValue(domain.StationSitUp)), true
		}
		f.SitUps = n
		f.Step = domain.ForwardRunTime
		return domain.Reply{Text: promptRunTime}, true

	case domain.ForwardRunTime:
		encoded, err := scoring.EncodeRunTime(t.msg)
		if err != nil {
			return m.forwardInvalid(t, invalidRunTime), true
		}
		result, err := m.engine.Forward(f.Gender, f.Age, f.PushUps, f.SitUps, encoded)
		t.session.ClearFlow()
		if err != nil {
			slog.Warn("forward check scoring failed", "err", err)
			return domain.Reply{Text: replyFlowError}, true
		}
		return domain.Reply{Text: result.String()}, true
	}

	t.session.ClearFlow()
	return domain.Reply{Text: replyFlowError}, true
}

func (m *Machine) forwardInvalid(t *turn, text string) domain.Reply {
	if t.session.Flow.Forward.Fail() >= maxRetries {
		return cancel(t)
	}
	return domain.Reply{Text: text}
}

func parseAge(s string) (int, bool) {
	age, err := strconv.Atoi(s)
	if err != nil || scoring.AgeGroup(age) == -1 {
		return 0, false
	}
	return age, true
}

func parseReps(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
