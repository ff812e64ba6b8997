package dialog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ippt-coach/internal/domain"
	"ippt-coach/internal/scoring"
)

func TestForward_FullCheck(t *testing.T) {
	m := newMachine(t)

	s, replies := converse(m, domain.Session{}, "check my ippt", "male", "25", "20", "20", "11:30")
	require.Equal(t, []string{
		promptGender, promptAge, promptPushUps, promptSitUps, promptRunTime,
	}, texts(replies[:5]))
	require.Equal(t, RouteIPPTCheck, replies[0].Route)
	require.Equal(t, RouteForward, replies[5].Route)

	want, err := scoring.NewEngine(nil).Forward(domain.GenderMale, 25, 20, 20, "11.30")
	require.NoError(t, err)
	require.Equal(t, want.String(), replies[5].Text)
	require.Contains(t, replies[5].Text, "Total: 51")
	require.Equal(t, domain.FlowIdle, s.Flow.Kind)
	require.True(t, s.IsZero())
}

func TestForward_ShortGenderAndRetryMessages(t *testing.T) {
	m := newMachine(t)

	s, replies := converse(m, domain.Session{}, "ippt score", "f", "17", "46", "abc", "30", "-1", "35", "10", "1130", "11.30")
	require.Equal(t, promptAge, replies[1].Text)
	require.Equal(t, invalidAge, replies[2].Text)
	require.Equal(t, invalidAge, replies[3].Text)
	require.Equal(t, invalidAge, replies[4].Text)
	require.Equal(t, promptPushUps, replies[5].Text)
	require.Equal(t, invalidValue(domain.StationPushUp), replies[6].Text)
	require.Equal(t, promptSitUps, replies[7].Text)
	require.Equal(t, promptRunTime, replies[8].Text)
	require.Equal(t, invalidRunTime, replies[9].Text)
	require.Equal(t, invalidRunTime, replies[10].Text)
	require.Equal(t, domain.FlowForward, s.Flow.Kind)
	require.Equal(t, 3, s.Flow.Forward.Retries[domain.ForwardAge])
}

func TestForward_CancelsAfterFiveInvalidAnswers(t *testing.T) {
	m := newMachine(t)

	s, replies := converse(m, domain.Session{}, "check ippt", "xyz", "xyz", "xyz", "xyz")
	for _, r := range replies[1:] {
		require.Equal(t, invalidGender, r.Text)
	}
	require.Equal(t, domain.FlowForward, s.Flow.Kind)

	s, r := m.Step(s, "xyz")
	require.Equal(t, replyTooManyAttempts, r.Text)
	require.Equal(t, domain.FlowIdle, s.Flow.Kind)

	// The next message is handled fresh, not as a flow answer.
	s, r = m.Step(s, "xyz")
	require.Equal(t, RouteTopic, r.Route)
	require.Equal(t, replyClarify, r.Text)
	require.Equal(t, domain.FlowIdle, s.Flow.Kind)
}

func TestForward_RetriesArePerStep(t *testing.T) {
	m := newMachine(t)

	s, _ := converse(m, domain.Session{}, "check ippt", "x", "x", "x", "x", "male", "x", "x", "x", "x")
	require.Equal(t, domain.FlowForward, s.Flow.Kind)
	require.Equal(t, domain.ForwardAge, s.Flow.Forward.Step)
}

func TestForward_RecoversFromMissingPayload(t *testing.T) {
	m := newMachine(t)
	s, r := m.Step(domain.Session{Flow: domain.FlowState{Kind: domain.FlowForward}}, "male")
	require.Equal(t, promptGender, r.Text)
	require.NotNil(t, s.Flow.Forward)
}

func texts(replies []domain.Reply) []string {
	out := make([]string, len(replies))
	for i, r := range replies {
		out[i] = strings.TrimSpace(r.Text)
	}
	return out
}
