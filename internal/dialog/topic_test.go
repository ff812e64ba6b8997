package dialog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ippt-coach/internal/domain"
)

func TestTopic_ImproveThenLevelServesPlan(t *testing.T) {
	m := newMachine(t)

	s, r := m.Step(domain.Session{}, "i want to improve my push-ups")
	require.Equal(t, RouteTopic, r.Route)
	require.Equal(t, levelPrompt(domain.FieldPushUp, true), r.Text)
	require.Equal(t, domain.FieldPushUp, s.Topic.Field)

	s, r = m.Step(s, "beginner")
	require.Equal(t, mustGet(t, domain.FieldPushUp, domain.LevelBeginner), r.Text)
	require.True(t, s.IsZero())
}

func TestTopic_LevelFirstThenField(t *testing.T) {
	m := newMachine(t)

	s, r := m.Step(domain.Session{}, "i'm an amateur")
	require.Equal(t, replyClarify, r.Text)
	require.Equal(t, domain.LevelAmateur, s.Topic.Level)

	s, r = m.Step(s, "running")
	require.Equal(t, mustGet(t, domain.FieldRunning, domain.LevelAmateur), r.Text)
	require.True(t, s.IsZero())
}

func TestTopic_BodyPartMapsToExercise(t *testing.T) {
	m := newMachine(t)

	s, r := m.Step(domain.Session{}, "my core is weak")
	require.Equal(t, levelPrompt(domain.FieldSitUp, false), r.Text)
	require.Equal(t, domain.FieldSitUp, s.Topic.Field)

	s, r = m.Step(domain.Session{}, "my arms")
	require.Equal(t, replyClarify, r.Text)
	require.True(t, s.IsZero())
}

func TestTopic_NegativeIntentKeepsState(t *testing.T) {
	m := newMachine(t)

	in := domain.Session{Topic: domain.TopicState{Field: domain.FieldSitUp}}
	s, r := m.Step(in, "i hate running")
	require.Equal(t, replyNegative, r.Text)
	require.Equal(t, in.Topic, s.Topic)
}

func TestTopic_MissingPlan(t *testing.T) {
	m, err := New(mapCatalog{}, nil)
	require.NoError(t, err)

	in := domain.Session{Topic: domain.TopicState{Field: domain.FieldPushUp}}
	s, r := m.Step(in, "advanced")
	require.Equal(t, noPlanText(domain.LevelAdvanced, domain.FieldPushUp), r.Text)
	require.Equal(t, domain.TopicState{Field: domain.FieldPushUp, Level: domain.LevelAdvanced}, s.Topic)
}
